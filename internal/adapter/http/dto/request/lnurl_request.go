package request

import (
	"bitcoinswitch/internal/infrastructure/listener"
)

// LNURLPayQuery is the query of the switch pay link.
type LNURLPayQuery struct {
	Pin      int     `form:"pin"`
	Amount   float64 `form:"amount"`
	Duration int64   `form:"duration"`
	Variable bool    `form:"variable"`
	Comment  bool    `form:"comment"`
}

// LNURLCallbackQuery is the query a wallet sends once the payer picked an amount.
// Amount is in msat.
type LNURLCallbackQuery struct {
	Amount   int64  `form:"amount"`
	Comment  string `form:"comment"`
	AssetID  string `form:"asset_id"`
	Variable bool   `form:"variable"`
}

// PaidInvoiceRequest is the paid-invoice webhook body posted by the payment node.
type PaidInvoiceRequest struct {
	PaymentHash string         `json:"payment_hash" binding:"required"`
	Amount      int64          `json:"amount"`
	Extra       map[string]any `json:"extra"`
}

func (r PaidInvoiceRequest) ToPaidInvoice() listener.PaidInvoice {
	return listener.PaidInvoice{PaymentHash: r.PaymentHash, Amount: r.Amount, Extra: r.Extra}
}
