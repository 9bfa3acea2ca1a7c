package interfaces

import (
	"context"

	"bitcoinswitch/internal/domain/entities"
)

// IRateOracle returns the current exchange rate in sats per asset unit.
type IRateOracle interface {
	GetRate(ctx context.Context, assetID string, assetAmount int64) (float64, error)
}

// IAssetInvoicer issues Taproot Asset invoices.
//
// When no asset node is configured an implementation whose Available returns false is
// injected and the quoting flow stays on Lightning.
type IAssetInvoicer interface {
	Available() bool
	CreateAssetInvoice(ctx context.Context, req entities.AssetInvoiceRequest) (entities.Invoice, error)
}
