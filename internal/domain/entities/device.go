package entities

import (
	"encoding/json"
	"time"
)

// CurrencySat is the settlement unit. Devices priced in sats skip currency conversion.
const CurrencySat = "sat"

// Switch is one GPIO output of a device and the price to activate it.
//
// Duration is expressed in milliseconds. For variable-time switches Duration is the
// activation length bought by exactly Amount; larger payments scale it linearly.
type Switch struct {
	Pin              int      `json:"pin"`
	Amount           float64  `json:"amount"`
	Duration         int64    `json:"duration"`
	Variable         bool     `json:"variable"`
	Comment          bool     `json:"comment"`
	Label            string   `json:"label,omitempty"`
	LNURL            string   `json:"lnurl,omitempty"`
	AcceptsAssets    bool     `json:"accepts_assets"`
	AcceptedAssetIDs []string `json:"accepted_asset_ids,omitempty"`
}

// AssetEnabled reports whether the switch can be paid with Taproot Assets.
func (s Switch) AssetEnabled() bool {
	return s.AcceptsAssets && len(s.AcceptedAssetIDs) > 0
}

func (s Switch) AcceptsAsset(assetID string) bool {
	for _, id := range s.AcceptedAssetIDs {
		if id == assetID {
			return true
		}
	}
	return false
}

// Device is a physical switch box registered by a wallet owner.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (wallet-index): wallet
//
// WalletKey is the payment-node invoice key used to issue invoices on behalf of the
// owner; it is persisted but never rendered to API clients.
type Device struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Wallet     string    `json:"wallet"`
	WalletKey  string    `json:"-"`
	Currency   string    `json:"currency"`
	Switches   []Switch  `json:"switches"`
	Password   *string   `json:"password,omitempty"`
	Disabled   bool      `json:"disabled"`
	Disposable bool      `json:"disposable"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (d Device) FindSwitch(pin int) (Switch, bool) {
	for _, s := range d.Switches {
		if s.Pin == pin {
			return s, true
		}
	}
	return Switch{}, false
}

// MatchSwitch returns the switch configured with exactly these payer-supplied parameters.
func (d Device) MatchSwitch(pin int, duration int64, variable, comment bool) (Switch, bool) {
	for _, s := range d.Switches {
		if s.Pin == pin && s.Duration == duration && s.Variable == variable && s.Comment == comment {
			return s, true
		}
	}
	return Switch{}, false
}

// SwitchConfig projects the switch on pin into the read-only view used by settlement.
func (d Device) SwitchConfig(pin int) (SwitchConfig, bool) {
	s, ok := d.FindSwitch(pin)
	if !ok {
		return SwitchConfig{}, false
	}
	ids := make([]string, len(s.AcceptedAssetIDs))
	copy(ids, s.AcceptedAssetIDs)
	return SwitchConfig{
		DeviceID:         d.ID,
		Pin:              s.Pin,
		Price:            s.Amount,
		DurationMS:       s.Duration,
		VariableTime:     s.Variable,
		CommentEnabled:   s.Comment,
		Password:         d.Password,
		AcceptsAssets:    s.AcceptsAssets,
		AcceptedAssetIDs: ids,
	}, true
}

// LNURLPayMetadata renders the LUD-06 metadata string for the device.
func (d Device) LNURLPayMetadata() string {
	b, _ := json.Marshal([][]string{{"text/plain", d.Title}})
	return string(b)
}

// SwitchConfig is immutable for the duration of a settlement run.
type SwitchConfig struct {
	DeviceID         string
	Pin              int
	Price            float64
	DurationMS       int64
	VariableTime     bool
	CommentEnabled   bool
	Password         *string
	AcceptsAssets    bool
	AcceptedAssetIDs []string
}

// HasPassword is true when a non-empty password protects the device.
func (c SwitchConfig) HasPassword() bool {
	return c.Password != nil && *c.Password != ""
}
