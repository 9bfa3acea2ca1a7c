package interfaces

import (
	"context"

	"bitcoinswitch/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// IInvoiceGateway issues Lightning invoices through the payment node.
type IInvoiceGateway interface {
	CreateInvoice(ctx context.Context, req entities.InvoiceRequest) (entities.Invoice, error)
}

// IPriceConverter converts a fiat amount to sats using the payment node's exchange rates.
type IPriceConverter interface {
	ToSats(ctx context.Context, amount float64, currency string) (decimal.Decimal, error)
}

// IWalletResolver resolves a wallet API key to the wallet it belongs to.
type IWalletResolver interface {
	ResolveWallet(ctx context.Context, apiKey string) (entities.Wallet, error)
}
