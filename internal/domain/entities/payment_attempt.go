package entities

import "time"

// PaymentAttemptStatus tracks an attempt from quote to settlement.
//
// Transitions only move forward: awaiting_invoice -> invoiced -> paid.
// paid is terminal and is written at most once.
type PaymentAttemptStatus string

const (
	PaymentAttemptAwaitingInvoice PaymentAttemptStatus = "awaiting_invoice"
	PaymentAttemptInvoiced        PaymentAttemptStatus = "invoiced"
	PaymentAttemptPaid            PaymentAttemptStatus = "paid"
)

// Quote is the asset exchange rate captured when the payer asked for a price.
//
// The three fields are set together. A partially filled quote is treated as absent.
type Quote struct {
	QuotedRate        *float64   `json:"quoted_rate,omitempty"`
	QuotedAt          *time.Time `json:"quoted_at,omitempty"`
	QuotedAssetAmount *int64     `json:"quoted_asset_amount,omitempty"`
}

func NewQuote(rate float64, at time.Time, assetAmount int64) Quote {
	at = at.UTC()
	return Quote{QuotedRate: &rate, QuotedAt: &at, QuotedAssetAmount: &assetAmount}
}

// Complete reports whether every quote field is present and positive.
func (q Quote) Complete() bool {
	return q.QuotedRate != nil && *q.QuotedRate > 0 &&
		q.QuotedAt != nil && !q.QuotedAt.IsZero() &&
		q.QuotedAssetAmount != nil && *q.QuotedAssetAmount > 0
}

// PaymentAttempt is one payer's attempt to activate a switch.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (device_id-index): device_id
//
// The id is generated at quote time and travels with the invoice, so it is the
// correlation key for both Lightning and asset confirmations.
type PaymentAttempt struct {
	ID                string               `json:"id"`
	DeviceID          string               `json:"device_id"`
	Pin               int                  `json:"pin"`
	RequestedDuration string               `json:"requested_duration"`
	AmountSats        int64                `json:"amount_sats"`
	PaymentHash       string               `json:"payment_hash,omitempty"`
	Status            PaymentAttemptStatus `json:"status"`
	IsTaproot         bool                 `json:"is_taproot"`
	AssetID           *string              `json:"asset_id,omitempty"`
	Quote
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsPaid reports whether the attempt reached its terminal state.
func (p PaymentAttempt) IsPaid() bool {
	return p.Status == PaymentAttemptPaid
}

// AmountMsat is the base price of the attempt in millisatoshis.
func (p PaymentAttempt) AmountMsat() int64 {
	return p.AmountSats * 1000
}
