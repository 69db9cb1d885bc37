package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	request "ingressos_checkout/internal/adapter/http/dto/request"
	response "ingressos_checkout/internal/adapter/http/dto/response"
	"ingressos_checkout/internal/domain/entities"
	"ingressos_checkout/internal/usecase"
	"ingressos_checkout/pkg"
)

const (
	msgPaymentFallback     = "an internal error occurred while processing the payment"
	msgStatusLookupFailure = "failed to fetch payment status"
)

// PaymentHandler handles HTTP requests for payment creation and status
// polling.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// CreatePayment creates a PIX or card payment from a checkout submission.
//
// @Summary      Create a payment
// @Description  Normalizes a checkout-form submission (PIX or card token) and forwards it to the payment processor.
// @Accept       json
// @Produce      json
// @Success      201 {object} response.PaymentResponse
// @Failure      400 {object} pkg.HTTPError
// @Router       /create-payment [post]
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	payload, err := readCheckoutPayload(c)
	if err != nil {
		log.Printf("[payment][handler] invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	h.createPayment(c, payload.ToCheckout())
}

// CreatePixPayment is the split PIX-only surface. It accepts the same
// payload shapes but always takes the PIX branch.
//
// @Summary      Create a PIX payment
// @Accept       json
// @Produce      json
// @Success      201 {object} response.PaymentResponse
// @Failure      400 {object} pkg.HTTPError
// @Router       /create-pix-payment [post]
func (h *PaymentHandler) CreatePixPayment(c *gin.Context) {
	payload, err := readCheckoutPayload(c)
	if err != nil {
		log.Printf("[payment][handler] invalid pix payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	checkout := payload.ToCheckout()
	checkout.Method = entities.PaymentMethodPix

	h.createPayment(c, checkout)
}

func (h *PaymentHandler) createPayment(c *gin.Context, checkout entities.Checkout) {
	log.Printf("[payment][handler] create start method=%s", checkout.Method)

	result, err := h.usecase.CreatePayment(c.Request.Context(), checkout)
	if err != nil {
		log.Printf("[payment][handler] create failed method=%s err=%v", checkout.Method, err)
		appErr := mapCreatePaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] create success method=%s payment_id=%d status=%s", checkout.Method, result.ID, result.Status)

	c.JSON(http.StatusCreated, response.FromPaymentResult(result))
}

// GetPaymentStatus returns the current processor status for a payment.
//
// @Summary      Poll payment status
// @Produce      json
// @Param        id path string true "payment id"
// @Success      200 {object} response.PaymentResponse
// @Failure      500 {object} pkg.HTTPError
// @Router       /payment-status/{id} [get]
func (h *PaymentHandler) GetPaymentStatus(c *gin.Context) {
	id := c.Param("id")
	log.Printf("[payment][handler] status lookup start payment_id=%s", id)

	result, err := h.usecase.GetPaymentStatus(c.Request.Context(), id)
	if err != nil {
		log.Printf("[payment][handler] status lookup failed payment_id=%s err=%v", id, err)
		appErr := mapPaymentStatusError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] status lookup success payment_id=%d status=%s", result.ID, result.Status)

	c.JSON(http.StatusOK, response.FromPaymentResult(result))
}

// readCheckoutPayload binds the checkout payload, unwrapping the
// {"formData": {...}} envelope the Payment Brick submits. A bare
// payload is accepted as-is.
func readCheckoutPayload(c *gin.Context) (request.CheckoutRequest, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return request.CheckoutRequest{}, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return request.CheckoutRequest{}, errors.New("request body is empty")
	}
	if !json.Valid(raw) {
		return request.CheckoutRequest{}, errors.New("request body is not valid json")
	}

	var envelope struct {
		FormData json.RawMessage `json:"formData"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped := strings.TrimSpace(string(envelope.FormData)); wrapped != "" && wrapped != "null" {
			raw = envelope.FormData
		}
	}

	var payload request.CheckoutRequest
	if err := json.Unmarshal(raw, &payload); err != nil {
		return request.CheckoutRequest{}, err
	}
	return payload, nil
}

// mapCreatePaymentError converts creation failures into the client
// contract. Processor rejections are reported as client errors (400)
// regardless of the processor's own status code, with the most specific
// message available.
func mapCreatePaymentError(err error) *pkg.AppError {
	var procErr *entities.ProcessorError
	switch {
	case errors.Is(err, usecase.ErrIncompleteCheckout):
		return pkg.NewDomainErrorSimple("INCOMPLETE_CHECKOUT", usecase.ErrIncompleteCheckout.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnsupportedPaymentMethod):
		return pkg.NewDomainErrorSimple("UNSUPPORTED_PAYMENT_METHOD", usecase.ErrUnsupportedPaymentMethod.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCardTokenRequired):
		return pkg.NewDomainErrorSimple("CARD_TOKEN_REQUIRED", usecase.ErrCardTokenRequired.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrIncompleteProcessorResponse):
		return pkg.NewDomainError("INCOMPLETE_PROCESSOR_RESPONSE", msgPaymentFallback, err, http.StatusInternalServerError)
	case errors.As(err, &procErr):
		message := procErr.ClientMessage()
		if message == "" {
			message = msgPaymentFallback
		}
		return pkg.NewDomainError("PAYMENT_REJECTED", message, err, http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", msgPaymentFallback, err, http.StatusInternalServerError)
	}
}

// mapPaymentStatusError converts lookup failures. Unlike creation, the
// processor status passes through when present and the message stays
// generic; this asymmetry is deliberate.
func mapPaymentStatusError(err error) *pkg.AppError {
	if errors.Is(err, usecase.ErrInvalidPaymentID) {
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_ID", usecase.ErrInvalidPaymentID.Error(), http.StatusBadRequest)
	}

	status := http.StatusInternalServerError
	var procErr *entities.ProcessorError
	if errors.As(err, &procErr) && procErr.StatusCode >= 400 && procErr.StatusCode <= 599 {
		status = procErr.StatusCode
	}
	return pkg.NewDomainError("PAYMENT_STATUS_LOOKUP_FAILED", msgStatusLookupFailure, err, status)
}
