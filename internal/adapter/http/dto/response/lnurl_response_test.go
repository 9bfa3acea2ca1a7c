package response

import (
	"encoding/json"
	"strings"
	"testing"

	"bitcoinswitch/internal/usecase"
)

func TestFromQuote_LightningOnly(t *testing.T) {
	res := FromQuote(usecase.QuoteResult{
		Callback:       "http://host/v1/lnurl/dev-1/cb/att-1?variable=false",
		MinSendable:    100000,
		MaxSendable:    100000,
		Metadata:       `[["text/plain","Gate"]]`,
		CommentAllowed: 639,
	})
	if res.Tag != "payRequest" || res.MinSendable != 100000 || res.CommentAllowed != 639 {
		t.Fatalf("unexpected mapping: %+v", res)
	}

	b, _ := json.Marshal(res)
	for _, key := range []string{"acceptsAssets", "acceptedAssetIds", "assetMetadata"} {
		if strings.Contains(string(b), key) {
			t.Fatalf("%s must be omitted for lightning switches: %s", key, b)
		}
	}
}

func TestFromQuote_AssetSwitch(t *testing.T) {
	res := FromQuote(usecase.QuoteResult{
		AcceptsAssets:    true,
		AcceptedAssetIDs: []string{"asset-a"},
		AssetMetadata:    &usecase.AssetMetadata{SupportsRfq: true, RfqEnabled: true, Message: "m"},
	})
	if !res.AcceptsAssets || res.AcceptedAssetIDs[0] != "asset-a" || res.AssetMetadata == nil || !res.AssetMetadata.RfqEnabled {
		t.Fatalf("unexpected asset mapping: %+v", res)
	}
}

func TestFromInvoice(t *testing.T) {
	res := FromInvoice(usecase.InvoiceResult{PaymentRequest: "lnbc1", SuccessMessage: "100sats sent"})
	b, _ := json.Marshal(res)
	want := `{"pr":"lnbc1","successAction":{"tag":"message","message":"100sats sent"},"routes":[]}`
	if string(b) != want {
		t.Fatalf("unexpected body:\n got %s\nwant %s", b, want)
	}
}

func TestNewLNURLError(t *testing.T) {
	b, _ := json.Marshal(NewLNURLError("Payment not found"))
	if string(b) != `{"status":"ERROR","reason":"Payment not found"}` {
		t.Fatalf("unexpected body: %s", b)
	}
}
