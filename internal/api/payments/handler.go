package payments

import (
	"context"
	"log"
	"net/http"

	"portfolio-payments/internal/domain/payments"
	stripegw "portfolio-payments/internal/infra/stripe"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v75"
	"gorm.io/gorm"
)

// IntentGateway is the slice of the provider gateway the creation service
// needs. *stripegw.Gateway satisfies it.
type IntentGateway interface {
	CreateIntent(ctx context.Context, p stripegw.IntentParams) (*stripe.PaymentIntent, error)
	CancelIntent(ctx context.Context, id string) error
}

type Handler struct {
	db             *gorm.DB
	gateway        IntentGateway
	publishableKey string
}

func NewHandler(db *gorm.DB, gateway IntentGateway, publishableKey string) *Handler {
	return &Handler{db: db, gateway: gateway, publishableKey: publishableKey}
}

// CreateIntent validates the request, opens a payment intent with the
// provider, persists the PENDING record and returns the client secret.
// Creation is atomic: a provider failure persists nothing.
func (h *Handler) CreateIntent(c *gin.Context) {
	var req payments.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request",
			"details": []payments.FieldError{
				{Field: "body", Message: "Malformed JSON body"},
			},
		})
		return
	}

	if errs := payments.ValidateCreateRequest(&req); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": errs})
		return
	}
	currency, _ := payments.ParseCurrency(req.Currency)

	invoiceNumber := payments.GenerateInvoiceNumber()
	metadata := payments.SanitizeMetadata(req.Metadata)

	description := req.Description
	if description == "" {
		description = "Payment - Invoice " + invoiceNumber
	}

	intentMeta := map[string]string{
		"invoiceNumber": invoiceNumber,
		"customerEmail": req.CustomerEmail,
	}
	if req.CustomerName != "" {
		intentMeta["customerName"] = req.CustomerName
	}
	for k, v := range metadata {
		intentMeta[k] = v
	}

	pi, err := h.gateway.CreateIntent(c.Request.Context(), stripegw.IntentParams{
		AmountCents:   req.Amount,
		Currency:      currency,
		CustomerEmail: req.CustomerEmail,
		Description:   description,
		Metadata:      intentMeta,
	})
	if err != nil {
		perr := stripegw.MapError(err)
		log.Printf("payment intent creation failed: code=%s details=%s", perr.Code, perr.Details)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     perr.Message,
			"code":      perr.Code,
			"retryable": perr.Retryable,
		})
		return
	}

	record := payments.Payment{
		Amount:            payments.FromCents(req.Amount),
		Currency:          currency,
		Status:            payments.StatusPending,
		Provider:          payments.ProviderStripe,
		ProviderPaymentID: pi.ID,
		CustomerEmail:     req.CustomerEmail,
		InvoiceNumber:     invoiceNumber,
		Metadata:          metadata,
	}
	if req.CustomerName != "" {
		record.CustomerName = &req.CustomerName
	}
	if req.Description != "" {
		record.Description = &req.Description
	}

	if err := h.db.Create(&record).Error; err != nil {
		// Don't leave a payable intent behind a record that was never written.
		if cancelErr := h.gateway.CancelIntent(c.Request.Context(), pi.ID); cancelErr != nil {
			log.Printf("failed to cancel orphaned intent %s: %v", pi.ID, cancelErr)
		}
		log.Printf("failed to persist payment record for intent %s: %v", pi.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Payment processing error. Please try again.",
			"code":      payments.ErrProcessingError,
			"retryable": true,
		})
		return
	}

	// Client secret is deliberately absent from logs.
	log.Printf("payment intent created: invoice=%s intent=%s", invoiceNumber, pi.ID)

	c.JSON(http.StatusOK, CreateIntentResponse{
		PaymentID:     record.ID,
		ClientSecret:  pi.ClientSecret,
		InvoiceNumber: record.InvoiceNumber,
		Amount:        record.Amount,
		Currency:      record.Currency,
	})
}

// GetPayment is the read-only receipt lookup used by the success page. It
// never mutates the record; status truth comes from webhooks alone.
func (h *Handler) GetPayment(c *gin.Context) {
	var record payments.Payment
	if err := h.db.First(&record, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
		return
	}
	c.JSON(http.StatusOK, record)
}

// ListPayments returns the payment history for a customer email, newest
// first.
func (h *Handler) ListPayments(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing email"})
		return
	}

	var records []payments.Payment
	if err := h.db.
		Where("customer_email = ?", email).
		Order("created_at DESC").
		Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load payments"})
		return
	}
	c.JSON(http.StatusOK, records)
}

// GetConfig hands the browser widget its publishable key and the supported
// currency set.
func (h *Handler) GetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, ConfigResponse{
		PublishableKey: h.publishableKey,
		Currencies:     payments.SupportedCurrencies(),
	})
}
