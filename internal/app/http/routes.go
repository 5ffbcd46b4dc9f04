package routes

import (
	"portfolio-payments/config"
	paymentsapi "portfolio-payments/internal/api/payments"
	stripewebhooks "portfolio-payments/internal/api/stripewebhook"
	"portfolio-payments/internal/app/http/middleware"
	stripegw "portfolio-payments/internal/infra/stripe"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, gateway *stripegw.Gateway) {
	paymentsHandler := paymentsapi.NewHandler(db, gateway, config.STRIPE_PUBLISHABLE_KEY)
	webhookHandler := stripewebhooks.NewHandler(db, config.STRIPE_WEBHOOK_SECRET)

	// Webhook stays outside the sanitize group: signature verification needs
	// the raw body.
	r.POST("/api/payment/webhook", webhookHandler.Handle)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/api/payment/config", paymentsHandler.GetConfig)
	r.GET("/api/payment/:id", paymentsHandler.GetPayment)
	r.GET("/api/payments", paymentsHandler.ListPayments)

	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())
	public.POST("/api/payment/create-intent", paymentsHandler.CreateIntent)
}
