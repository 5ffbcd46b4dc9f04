package payments

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Amounts render as JSON numbers, e.g. "amount": 100, not "amount": "100".
	decimal.MarshalJSONWithoutQuotes = true
}

// Payment is the persisted record of a single checkout attempt. It is created
// once before the client sees any payment UI and is never deleted; after
// creation only webhook events mutate it.
type Payment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Amount is stored in major currency units (e.g. 100.00), converted from
	// the minor-unit integer used at the API boundary.
	Amount   decimal.Decimal `gorm:"type:decimal(12,2)" json:"amount"`
	Currency Currency        `gorm:"size:3" json:"currency"`
	Status   Status          `gorm:"size:20;index" json:"status"`
	Provider Provider        `gorm:"size:20" json:"provider"`

	// ProviderPaymentID is the provider-issued intent id. Set at creation,
	// never changed, and the key every webhook update is addressed by.
	ProviderPaymentID string `gorm:"size:255;uniqueIndex" json:"providerPaymentId"`

	CustomerEmail string  `gorm:"size:254;index" json:"customerEmail"`
	CustomerName  *string `gorm:"size:100" json:"customerName,omitempty"`

	// InvoiceNumber generation is probabilistic; the unique index makes a
	// collision fail the insert instead of sharing an invoice.
	InvoiceNumber string `gorm:"size:20;uniqueIndex" json:"invoiceNumber"`

	Description *string           `gorm:"size:500" json:"description,omitempty"`
	Metadata    map[string]string `gorm:"serializer:json" json:"metadata,omitempty"`

	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

func (Payment) TableName() string {
	return "payments"
}
