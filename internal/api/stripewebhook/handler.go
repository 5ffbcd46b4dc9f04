package stripewebhooks

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"

	stripegw "portfolio-payments/internal/infra/stripe"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v75"
	"gorm.io/gorm"
)

type Handler struct {
	db             *gorm.DB
	endpointSecret string
}

func NewHandler(db *gorm.DB, endpointSecret string) *Handler {
	return &Handler{db: db, endpointSecret: endpointSecret}
}

// Handle receives provider webhook deliveries. The raw body is verified
// against the signing secret before anything in it is trusted; this handler
// mutates financial state, so an unverified event is never processed.
func (h *Handler) Handle(c *gin.Context) {
	if h.endpointSecret == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "STRIPE_WEBHOOK_SECRET not configured"})
		return
	}

	payload, err := readWebhookBody(c, 65536)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Error reading request body"})
		return
	}

	signature := c.GetHeader("Stripe-Signature")
	if signature == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing signature"})
		return
	}

	event, err := stripegw.VerifyWebhook(payload, signature, h.endpointSecret)
	if err != nil {
		// Stop here: nothing from an unverified payload gets inspected or logged.
		log.Printf("❌ webhook signature verification failed: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid signature"})
		return
	}

	// Only payment-intent events drive reconciliation; acknowledge the rest
	// so the provider stops redelivering them.
	if !strings.HasPrefix(string(event.Type), "payment_intent.") {
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	var intent stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to parse payment intent"})
		return
	}

	if err := h.reconcile(string(event.Type), &intent); err != nil {
		log.Printf("webhook processing error for intent %s: %v", intent.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Webhook processing failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}

func readWebhookBody(c *gin.Context, maxBytes int64) ([]byte, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
	return io.ReadAll(c.Request.Body)
}
