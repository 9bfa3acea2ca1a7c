package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"bitcoinswitch/internal/domain/entities"
	"bitcoinswitch/internal/usecase/interfaces"
)

var (
	ErrQuoteExpired        = errors.New("price quote has expired")
	ErrQuoteOutOfTolerance = errors.New("exchange rate has changed beyond tolerance")
	ErrRateUnavailable     = errors.New("exchange rate unavailable")
)

const (
	DefaultRateValidity  = 5 * time.Minute
	DefaultRateTolerance = 0.05
	DefaultCallTimeout   = 10 * time.Second
)

// RateReconciler decides whether a stored asset quote may still be honoured.
//
// Expiry is always evaluated before tolerance, and a quote whose fresh rate cannot be
// fetched is rejected.
type RateReconciler struct {
	oracle    interfaces.IRateOracle
	validity  time.Duration
	tolerance float64
	timeout   time.Duration
	now       func() time.Time
}

func NewRateReconciler(oracle interfaces.IRateOracle, validity time.Duration, tolerance float64, timeout time.Duration) *RateReconciler {
	if validity <= 0 {
		validity = DefaultRateValidity
	}
	if tolerance < 0 {
		tolerance = DefaultRateTolerance
	}
	if timeout <= 0 {
		timeout = DefaultCallTimeout
	}
	return &RateReconciler{
		oracle:    oracle,
		validity:  validity,
		tolerance: tolerance,
		timeout:   timeout,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// IsRateExpired reports whether quotedAt is absent or at least one validity window old.
func (r *RateReconciler) IsRateExpired(quotedAt *time.Time) bool {
	if quotedAt == nil || quotedAt.IsZero() {
		return true
	}
	return r.now().UTC().Sub(quotedAt.UTC()) >= r.validity
}

// IsRateWithinTolerance is a symmetric relative-deviation check against the quoted rate.
func IsRateWithinTolerance(quoted, current, tolerance float64) bool {
	if quoted <= 0 {
		return false
	}
	return math.Abs(current-quoted)/quoted <= tolerance
}

// ValidateQuote checks a stored quote against a freshly fetched rate for assetID.
// An incomplete quote has nothing to validate and passes.
func (r *RateReconciler) ValidateQuote(ctx context.Context, q entities.Quote, assetID string) error {
	if !q.Complete() {
		return nil
	}
	if r.IsRateExpired(q.QuotedAt) {
		return ErrQuoteExpired
	}
	if r.oracle == nil {
		return ErrRateUnavailable
	}

	callCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	current, err := r.oracle.GetRate(callCtx, assetID, *q.QuotedAssetAmount)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRateUnavailable, err)
	}
	if current <= 0 {
		return ErrRateUnavailable
	}
	if !IsRateWithinTolerance(*q.QuotedRate, current, r.tolerance) {
		return ErrQuoteOutOfTolerance
	}
	return nil
}
