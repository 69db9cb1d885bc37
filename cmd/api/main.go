package main

import (
	_ "ingressos_checkout/docs"
	"ingressos_checkout/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Checkout Payment API
// @version         1.0
// @description     Normalizes checkout-form submissions (PIX and card token) and forwards them to Mercado Pago.

// @host localhost:8080

// @BasePath  /api

func main() {
	routes.Run()
}
