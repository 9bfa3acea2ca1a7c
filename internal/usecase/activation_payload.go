package usecase

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// PasswordMismatchNotice replaces the comment segment when the payer's comment does not
// match the device password.
const PasswordMismatchNotice = "incorrect password"

// ScaleDuration returns the activation length bought by received units.
//
// The result is round(received / priceUnits * durationMS), rounding half away from zero.
// When priceUnits is zero the raw received amount is returned and anomaly is true.
func ScaleDuration(received int64, priceUnits decimal.Decimal, durationMS int64) (duration int64, anomaly bool) {
	if priceUnits.Sign() <= 0 {
		return received, true
	}
	return decimal.NewFromInt(received).
		Mul(decimal.NewFromInt(durationMS)).
		Div(priceUnits).
		Round(0).
		IntPart(), false
}

// BuildPayload renders the device wire format "<pin>-<duration>[-<comment>]".
// Hyphens inside the comment are passed through as-is.
func BuildPayload(pin int, duration int64, comment string) string {
	payload := strconv.Itoa(pin) + "-" + strconv.FormatInt(duration, 10)
	if comment != "" {
		payload += "-" + comment
	}
	return payload
}
