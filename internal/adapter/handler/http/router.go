package http

import (
	"github.com/MikeRez0/automarket/internal/adapter/config"
	"github.com/MikeRez0/automarket/internal/core/port"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

type Router struct {
	*gin.Engine
}

func NewRouter(
	conf *config.HTTP,
	tokenService port.TokenService,
	orderHandler *OrderHandler,
	userHandler *UserHandler,
	paymentHandler *PaymentHandler,
	logger *zap.Logger) (*Router, error) {

	router := gin.New()

	h := NewHandler(logger)

	// Swagger
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		user := api.Group("/user")
		{
			user.POST("/login", userHandler.LoginUser)
		}

		// gateway callbacks authenticate by signature, not by token
		payment := api.Group("/payment")
		{
			payment.GET("/return", paymentHandler.ReturnFromGateway)
			payment.POST("/notify", paymentHandler.GatewayNotification)
		}

		orders := api.Group("/orders")
		{
			orders.Use(authCheck(tokenService, h))
			orders.POST("/deposit", orderHandler.CreateDepositOrder)
			orders.POST("/full", orderHandler.CreateFullPaymentOrder)
			orders.GET("", orderHandler.ListOrdersByBuyer)
			orders.GET("/:order", orderHandler.GetOrder)
			orders.POST("/:order/payment", orderHandler.ConfirmFullPayment)
			orders.POST("/:order/cancel", orderHandler.CancelOrder)
			orders.GET("/:order/agreement", orderHandler.RenderAgreement)
		}

		seller := api.Group("/seller")
		{
			seller.Use(authCheck(tokenService, h), roleCheck(port.RoleSeller, h))
			seller.GET("/orders", orderHandler.ListOrdersBySeller)
			seller.PUT("/orders/:order/delivery", orderHandler.UpdateDeliveryStatus)
			seller.POST("/orders/:order/refund", orderHandler.RefundOrder)
		}
	}

	return &Router{router}, nil
}

// Serve starts the HTTP server
func (r *Router) Serve(listenAddr string) error {
	return r.Run(listenAddr)
}
