package routes

import (
	"github.com/gin-gonic/gin"

	"ingressos_checkout/internal/adapter/http/handlers"
)

const (
	PathCreatePayment    = "/create-payment"
	PathCreatePixPayment = "/create-pix-payment"
	PathPaymentStatus    = "/payment-status/:id"
)

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler) {
	rg.POST(PathCreatePayment, paymentHandler.CreatePayment)
	rg.POST(PathCreatePixPayment, paymentHandler.CreatePixPayment)
	rg.GET(PathPaymentStatus, paymentHandler.GetPaymentStatus)
}
