package entities

import "time"

// Invoice is a payable request issued by the payment node.
type Invoice struct {
	PaymentHash    string `json:"payment_hash"`
	PaymentRequest string `json:"payment_request"`
}

// InvoiceRequest asks the payment node for a Lightning invoice.
//
// Extra is stored by the node alongside the invoice and echoed back in the paid webhook.
type InvoiceRequest struct {
	WalletID            string
	WalletKey           string
	AmountSats          int64
	Memo                string
	UnhashedDescription string
	Extra               map[string]any
}

// AssetInvoiceRequest asks the asset node for an invoice denominated in asset units.
type AssetInvoiceRequest struct {
	WalletID    string
	WalletKey   string
	AssetID     string
	AssetAmount int64
	Description string
	Expiry      time.Duration
	Extra       map[string]any
}

// Wallet is the payment-node wallet an API key belongs to.
type Wallet struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	InvoiceKey string `json:"-"`
}
