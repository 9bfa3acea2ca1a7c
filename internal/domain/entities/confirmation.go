package entities

// PaymentConfirmation is an inbound "invoice paid" event.
//
// CorrelationID is the PaymentAttempt id. ConfirmedAmountUnits is in sats for
// Lightning payments and in asset units for asset payments.
type PaymentConfirmation struct {
	IsAssetPayment       bool    `json:"is_asset_payment"`
	CorrelationID        string  `json:"correlation_id"`
	ConfirmedAmountUnits int64   `json:"confirmed_amount_units"`
	Comment              *string `json:"comment,omitempty"`
	VariableRequested    bool    `json:"variable_requested"`
	PaymentHash          string  `json:"payment_hash,omitempty"`
}

// CommentText returns the comment or "" when none was supplied.
func (c PaymentConfirmation) CommentText() string {
	if c.Comment == nil {
		return ""
	}
	return *c.Comment
}
