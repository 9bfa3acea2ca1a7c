package usecase

import (
	"context"
	"errors"
	"time"

	"bitcoinswitch/internal/domain/entities"
	"bitcoinswitch/internal/infrastructure/logging"
	"bitcoinswitch/internal/usecase/interfaces"

	"github.com/failsafe-go/failsafe-go"
	"github.com/failsafe-go/failsafe-go/retrypolicy"
	"github.com/shopspring/decimal"
)

var (
	ErrAttemptNotFound  = errors.New("payment attempt not found")
	ErrAlreadyProcessed = errors.New("payment attempt already processed")
	ErrSwitchNotFound   = errors.New("switch not found")
)

const (
	DefaultDispatchAttempts = 3
	DefaultDispatchBackoff  = time.Second
)

// SettlementState is the position of a confirmation in the settlement state machine.
type SettlementState string

const (
	SettlementReceived   SettlementState = "received"
	SettlementValidated  SettlementState = "validated"
	SettlementPriced     SettlementState = "priced"
	SettlementDispatched SettlementState = "dispatched"
	SettlementRejected   SettlementState = "rejected"
)

// SettlementResult describes what happened to one confirmation.
//
// DispatchErr is set when every delivery attempt failed; the attempt is still marked
// paid in that case.
type SettlementResult struct {
	AttemptID          string
	DeviceID           string
	State              SettlementState
	Duration           int64
	Payload            string
	PasswordMismatch   bool
	ComputationAnomaly bool
	DispatchErr        error
	MarkedPaid         bool
}

type SettlementOptions struct {
	DispatchAttempts int
	DispatchBackoff  time.Duration
	SinkTimeout      time.Duration
}

// ISettlementUseCase consumes payment confirmations and activates the paid switch.
type ISettlementUseCase interface {
	OnPaymentConfirmed(ctx context.Context, c entities.PaymentConfirmation) (SettlementResult, error)
}

type SettlementUseCase struct {
	attempts   interfaces.IPaymentAttemptRepository
	devices    interfaces.IDeviceRepository
	reconciler *RateReconciler
	sink       interfaces.IActivationSink
	dispatcher failsafe.Executor[any]
	timeout    time.Duration
	log        logging.Logger
}

var _ ISettlementUseCase = (*SettlementUseCase)(nil)

func NewSettlementUseCase(
	attempts interfaces.IPaymentAttemptRepository,
	devices interfaces.IDeviceRepository,
	reconciler *RateReconciler,
	sink interfaces.IActivationSink,
	opts SettlementOptions,
	log logging.Logger,
) *SettlementUseCase {
	if opts.DispatchAttempts <= 0 {
		opts.DispatchAttempts = DefaultDispatchAttempts
	}
	if opts.DispatchBackoff < 0 {
		opts.DispatchBackoff = DefaultDispatchBackoff
	}
	if opts.SinkTimeout <= 0 {
		opts.SinkTimeout = DefaultCallTimeout
	}
	if log == nil {
		log = logging.NewLogger()
	}
	if reconciler == nil {
		reconciler = NewRateReconciler(nil, 0, DefaultRateTolerance, opts.SinkTimeout)
	}

	builder := retrypolicy.NewBuilder[any]().
		WithMaxAttempts(opts.DispatchAttempts).
		ReturnLastFailure().
		OnRetry(func(e failsafe.ExecutionEvent[any]) {
			log.WithField("attempt", e.Attempts()).WithError(e.LastError()).Warn("[settlement][usecase] dispatch failed, retrying")
		})
	if opts.DispatchBackoff > 0 {
		builder = builder.WithDelay(opts.DispatchBackoff)
	}

	return &SettlementUseCase{
		attempts:   attempts,
		devices:    devices,
		reconciler: reconciler,
		sink:       sink,
		dispatcher: failsafe.With[any](builder.Build()),
		timeout:    opts.SinkTimeout,
		log:        log,
	}
}

// OnPaymentConfirmed runs one confirmation through
// received -> validated -> priced -> dispatched | rejected.
//
// Not-found and duplicate confirmations are dropped and reported through the returned
// sentinel. Quote failures leave the attempt open.
func (u *SettlementUseCase) OnPaymentConfirmed(ctx context.Context, c entities.PaymentConfirmation) (SettlementResult, error) {
	res := SettlementResult{AttemptID: c.CorrelationID, State: SettlementReceived}
	log := u.log.WithFields(logging.Fields{"attempt_id": c.CorrelationID, "payment_hash": c.PaymentHash})

	attempt, err := u.attempts.GetByID(ctx, c.CorrelationID)
	if err != nil {
		log.WithError(err).Error("[settlement][usecase] attempt lookup failed")
		return res, err
	}
	if attempt.ID == "" {
		log.Warn("[settlement][usecase] payment attempt not found, dropping")
		return res, ErrAttemptNotFound
	}
	res.DeviceID = attempt.DeviceID
	log = log.WithFields(logging.Fields{"device_id": attempt.DeviceID, "pin": attempt.Pin})

	if attempt.IsPaid() {
		log.Debug("[settlement][usecase] duplicate confirmation ignored")
		return res, ErrAlreadyProcessed
	}

	device, err := u.devices.GetByID(ctx, attempt.DeviceID)
	if err != nil {
		log.WithError(err).Error("[settlement][usecase] device lookup failed")
		return res, err
	}
	cfg, ok := device.SwitchConfig(attempt.Pin)
	if device.ID == "" || !ok {
		log.Warn("[settlement][usecase] switch not found, dropping")
		return res, ErrSwitchNotFound
	}

	comment := c.CommentText()
	if cfg.HasPassword() {
		if comment != *cfg.Password {
			res.PasswordMismatch = true
			comment = PasswordMismatchNotice
			log.Warn("[settlement][usecase] incorrect password, activating with notice")
		} else {
			comment = ""
		}
	}

	if attempt.Quote.Complete() {
		if err := u.reconciler.ValidateQuote(ctx, attempt.Quote, quoteAssetID(attempt, cfg)); err != nil {
			res.State = SettlementRejected
			log.WithError(err).Warn("[settlement][usecase] quote rejected, attempt left open")
			return res, err
		}
	}
	res.State = SettlementValidated

	res.Duration = cfg.DurationMS
	if c.VariableRequested && cfg.VariableTime {
		priceUnits := decimal.NewFromInt(attempt.AmountSats)
		if c.IsAssetPayment {
			priceUnits = decimal.NewFromFloat(cfg.Price)
		}
		res.Duration, res.ComputationAnomaly = ScaleDuration(c.ConfirmedAmountUnits, priceUnits, cfg.DurationMS)
		if res.ComputationAnomaly {
			log.WithField("received", c.ConfirmedAmountUnits).
				Error("[settlement][usecase] switch price is zero, using received amount as duration")
		}
	}
	res.Payload = BuildPayload(cfg.Pin, res.Duration, comment)
	res.State = SettlementPriced

	res.DispatchErr = u.dispatch(ctx, attempt.DeviceID, res.Payload)
	if res.DispatchErr != nil {
		log.WithError(res.DispatchErr).Error("[settlement][usecase] dispatch failed after retries")
	} else {
		log.WithField("payload", res.Payload).Info("[settlement][usecase] activation dispatched")
	}
	res.State = SettlementDispatched

	marked, err := u.attempts.MarkPaid(context.WithoutCancel(ctx), attempt.ID)
	if err != nil {
		log.WithError(err).Error("[settlement][usecase] mark paid failed")
		return res, err
	}
	if marked.ID == "" {
		log.Warn("[settlement][usecase] attempt was settled concurrently")
		return res, ErrAlreadyProcessed
	}
	res.MarkedPaid = true
	return res, nil
}

func (u *SettlementUseCase) dispatch(ctx context.Context, deviceID, payload string) error {
	if u.sink == nil {
		return errSinkNotAvailable
	}
	return u.dispatcher.WithContext(ctx).Run(func() error {
		callCtx, cancel := context.WithTimeout(ctx, u.timeout)
		defer cancel()
		return u.sink.Send(callCtx, deviceID, payload)
	})
}

func quoteAssetID(attempt entities.PaymentAttempt, cfg entities.SwitchConfig) string {
	if attempt.AssetID != nil && *attempt.AssetID != "" {
		return *attempt.AssetID
	}
	if len(cfg.AcceptedAssetIDs) > 0 {
		return cfg.AcceptedAssetIDs[0]
	}
	return ""
}
