// Package lnurl encodes and decodes LUD-01 bech32 LNURL strings.
package lnurl

import (
	"errors"
	"strings"

	"github.com/btcsuite/btcd/btcutil/bech32"
)

const hrp = "lnurl"

var ErrInvalidLNURL = errors.New("invalid lnurl")

// Encode returns the upper-case bech32 LNURL for rawURL.
func Encode(rawURL string) (string, error) {
	data, err := bech32.ConvertBits([]byte(rawURL), 8, 5, true)
	if err != nil {
		return "", err
	}
	encoded, err := bech32.Encode(hrp, data)
	if err != nil {
		return "", err
	}
	return strings.ToUpper(encoded), nil
}

// Decode returns the URL wrapped by an LNURL string. The "lightning:" scheme prefix is accepted.
func Decode(lnurl string) (string, error) {
	lnurl = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(lnurl)), "lightning:")
	gotHRP, data, err := bech32.DecodeNoLimit(lnurl)
	if err != nil {
		return "", err
	}
	if gotHRP != hrp {
		return "", ErrInvalidLNURL
	}
	raw, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
