package response

import (
	"time"

	"bitcoinswitch/internal/domain/entities"
)

type SwitchResponse struct {
	Pin              int      `json:"pin"`
	Amount           float64  `json:"amount"`
	Duration         int64    `json:"duration"`
	Variable         bool     `json:"variable"`
	Comment          bool     `json:"comment"`
	Label            string   `json:"label,omitempty"`
	LNURL            string   `json:"lnurl"`
	AcceptsAssets    bool     `json:"accepts_assets"`
	AcceptedAssetIDs []string `json:"accepted_asset_ids"`
}

// DeviceResponse never carries the wallet invoice key or the password itself.
type DeviceResponse struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Wallet      string           `json:"wallet"`
	Currency    string           `json:"currency"`
	Switches    []SwitchResponse `json:"switches"`
	HasPassword bool             `json:"has_password"`
	Disabled    bool             `json:"disabled"`
	Disposable  bool             `json:"disposable"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

type TriggerResponse struct {
	DeviceID string `json:"device_id"`
	Payload  string `json:"payload"`
}

func FromDevice(d entities.Device) DeviceResponse {
	switches := make([]SwitchResponse, 0, len(d.Switches))
	for _, s := range d.Switches {
		ids := s.AcceptedAssetIDs
		if ids == nil {
			ids = []string{}
		}
		switches = append(switches, SwitchResponse{
			Pin:              s.Pin,
			Amount:           s.Amount,
			Duration:         s.Duration,
			Variable:         s.Variable,
			Comment:          s.Comment,
			Label:            s.Label,
			LNURL:            s.LNURL,
			AcceptsAssets:    s.AcceptsAssets,
			AcceptedAssetIDs: ids,
		})
	}
	return DeviceResponse{
		ID:          d.ID,
		Title:       d.Title,
		Wallet:      d.Wallet,
		Currency:    d.Currency,
		Switches:    switches,
		HasPassword: d.Password != nil && *d.Password != "",
		Disabled:    d.Disabled,
		Disposable:  d.Disposable,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func FromDevices(devices []entities.Device) []DeviceResponse {
	out := make([]DeviceResponse, 0, len(devices))
	for _, d := range devices {
		out = append(out, FromDevice(d))
	}
	return out
}
