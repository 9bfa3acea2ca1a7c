package listener

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"bitcoinswitch/internal/domain/entities"
)

const switchInvoiceTag = "Switch"

// PaidInvoice is the paid-invoice event published by the payment node.
//
// Amount is in msat. Extra is the map attached when the invoice was created.
type PaidInvoice struct {
	PaymentHash string         `json:"payment_hash"`
	Amount      int64          `json:"amount"`
	Extra       map[string]any `json:"extra"`
}

// ToConfirmation extracts the settlement input from the event. It returns false for
// events that do not belong to a switch invoice.
func (p PaidInvoice) ToConfirmation() (entities.PaymentConfirmation, bool) {
	isAsset := extraBool(p.Extra, "is_taproot")
	if !isAsset && extraString(p.Extra, "tag") != switchInvoiceTag {
		return entities.PaymentConfirmation{}, false
	}
	id := extraString(p.Extra, "id")
	if id == "" {
		return entities.PaymentConfirmation{}, false
	}

	c := entities.PaymentConfirmation{
		IsAssetPayment:    isAsset,
		CorrelationID:     id,
		VariableRequested: extraBool(p.Extra, "variable"),
		PaymentHash:       p.PaymentHash,
	}

	sats, hasSats := extraInt(p.Extra, "amount")
	if p.Amount > 0 {
		sats, hasSats = p.Amount/1000, true
	}
	if isAsset {
		if units, ok := extraInt(p.Extra, "asset_amount"); ok {
			c.ConfirmedAmountUnits = units
		} else if hasSats {
			c.ConfirmedAmountUnits = sats
		}
	} else {
		c.ConfirmedAmountUnits = sats
	}

	if comment := extraString(p.Extra, "comment"); comment != "" {
		c.Comment = &comment
	}
	return c, true
}

func extraString(extra map[string]any, key string) string {
	switch v := extra[key].(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

func extraBool(extra map[string]any, key string) bool {
	switch v := extra[key].(type) {
	case bool:
		return v
	case string:
		b, _ := strconv.ParseBool(strings.TrimSpace(v))
		return b
	default:
		return false
	}
}

func extraInt(extra map[string]any, key string) (int64, bool) {
	switch v := extra[key].(type) {
	case float64:
		return int64(math.Round(v)), true
	case int64:
		return v, true
	case int:
		return int64(v), true
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return n, true
		}
		if f, err := v.Float64(); err == nil {
			return int64(math.Round(f)), true
		}
	case string:
		if n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64); err == nil {
			return n, true
		}
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return int64(math.Round(f)), true
		}
	}
	return 0, false
}
