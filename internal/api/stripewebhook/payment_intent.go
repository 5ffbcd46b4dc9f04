package stripewebhooks

import (
	"errors"
	"fmt"
	"log"
	"time"

	"portfolio-payments/internal/domain/payments"
	stripegw "portfolio-payments/internal/infra/stripe"

	"github.com/stripe/stripe-go/v75"
	"gorm.io/gorm"
)

// reconcile applies one payment-intent event to the local record. Updates are
// unconditional last-write-wins on the row keyed by the immutable provider
// payment id, so redelivered and out-of-order events are safe to apply.
func (h *Handler) reconcile(eventType string, intent *stripe.PaymentIntent) error {
	var record payments.Payment
	err := h.db.Where("provider_payment_id = ?", intent.ID).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Unknown intents (test events, other environments) are
			// acknowledged so the provider doesn't retry forever.
			log.Printf("webhook: no payment record for intent %s, ignoring", intent.ID)
			return nil
		}
		return fmt.Errorf("lookup payment for intent %s: %w", intent.ID, err)
	}

	status := statusForEvent(eventType, intent)

	meta := make(map[string]string, len(record.Metadata)+4)
	for k, v := range record.Metadata {
		meta[k] = v
	}
	meta["stripeStatus"] = string(intent.Status)

	record.Status = status
	switch status {
	case payments.StatusSucceeded:
		now := time.Now()
		record.CompletedAt = &now
		if brand, last4, ok := stripegw.ExtractCardDetails(intent); ok {
			meta["brand"] = brand
			meta["last4"] = last4
			meta["paymentMethod"] = payments.FormatPaymentMethod(brand, last4)
		} else {
			meta["paymentMethod"] = "Card"
		}
	case payments.StatusFailed:
		reason := "Unknown"
		if intent.LastPaymentError != nil && intent.LastPaymentError.Msg != "" {
			reason = intent.LastPaymentError.Msg
		}
		meta["failureReason"] = reason
	}
	record.Metadata = meta

	if err := h.db.Save(&record).Error; err != nil {
		return fmt.Errorf("update payment %s: %w", record.InvoiceNumber, err)
	}

	log.Printf("webhook: %s -> %s (%s)", eventType, status, record.InvoiceNumber)
	return nil
}

// statusForEvent resolves the local status for a delivery. Terminal event
// types name their outcome directly: a payment_failed delivery carries an
// intent already reset to requires_payment_method, so the intent status alone
// would misreport it as PENDING.
func statusForEvent(eventType string, intent *stripe.PaymentIntent) payments.Status {
	switch eventType {
	case "payment_intent.succeeded":
		return payments.StatusSucceeded
	case "payment_intent.payment_failed":
		return payments.StatusFailed
	case "payment_intent.canceled":
		return payments.StatusCanceled
	case "payment_intent.processing":
		return payments.StatusProcessing
	default:
		return stripegw.MapIntentStatus(intent.Status)
	}
}
