package routes

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "ingressos_checkout/docs" // swag-generated
	"ingressos_checkout/internal/adapter/http/handlers"
	"ingressos_checkout/internal/infrastructure/config"
	"ingressos_checkout/internal/infrastructure/payments"
	"ingressos_checkout/internal/usecase"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setMiddlewares(cfg)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	if err := router.Run(cfg.Addr()); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg config.Config) {
	gateway, err := payments.NewMercadoPagoGateway(cfg.AccessToken)
	if err != nil {
		log.Fatalf("Mercado Pago gateway not configured: %v", err)
	}

	paymentUseCase := usecase.NewPaymentUseCase(gateway)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)

	api := router.Group("/api")
	addPingRoutes(api)
	addPaymentRoutes(api, paymentHandler)
}

func setMiddlewares(cfg config.Config) {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(requestIDMiddleware())
	router.Use(corsMiddleware(cfg))
}

func corsMiddleware(cfg config.Config) gin.HandlerFunc {
	corsCfg := cors.DefaultConfig()
	if cfg.AllowedOrigin != "" {
		corsCfg.AllowOrigins = []string{cfg.AllowedOrigin}
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization", "X-Request-ID")
	return cors.New(corsCfg)
}

// requestIDMiddleware tags every request with an id for log correlation,
// honoring one supplied by the caller.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}
