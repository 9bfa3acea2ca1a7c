package request

import (
	"strings"

	"bitcoinswitch/internal/domain/entities"
	"bitcoinswitch/internal/usecase"
)

type SwitchRequest struct {
	Pin              int      `json:"pin" binding:"min=0"`
	Amount           float64  `json:"amount" binding:"min=0"`
	Duration         int64    `json:"duration" binding:"min=0"`
	Variable         bool     `json:"variable"`
	Comment          bool     `json:"comment"`
	Label            string   `json:"label"`
	AcceptsAssets    bool     `json:"accepts_assets"`
	AcceptedAssetIDs []string `json:"accepted_asset_ids"`
}

// DeviceRequest is the body of device create and update calls.
type DeviceRequest struct {
	Title      string          `json:"title" binding:"required"`
	Currency   string          `json:"currency"`
	Switches   []SwitchRequest `json:"switches" binding:"required,min=1,dive"`
	Password   *string         `json:"password"`
	Disabled   bool            `json:"disabled"`
	Disposable *bool           `json:"disposable"`
}

// ToInput maps the payload to the use case input. An empty password clears it and
// disposable defaults to true.
func (r DeviceRequest) ToInput() usecase.DeviceInput {
	in := usecase.DeviceInput{
		Title:      strings.TrimSpace(r.Title),
		Currency:   strings.TrimSpace(r.Currency),
		Disabled:   r.Disabled,
		Disposable: true,
	}
	if r.Disposable != nil {
		in.Disposable = *r.Disposable
	}
	if r.Password != nil {
		if pw := strings.TrimSpace(*r.Password); pw != "" {
			in.Password = &pw
		}
	}
	in.Switches = make([]entities.Switch, 0, len(r.Switches))
	for _, s := range r.Switches {
		in.Switches = append(in.Switches, entities.Switch{
			Pin:              s.Pin,
			Amount:           s.Amount,
			Duration:         s.Duration,
			Variable:         s.Variable,
			Comment:          s.Comment,
			Label:            strings.TrimSpace(s.Label),
			AcceptsAssets:    s.AcceptsAssets,
			AcceptedAssetIDs: s.AcceptedAssetIDs,
		})
	}
	return in
}
