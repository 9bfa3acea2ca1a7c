package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"bitcoinswitch/internal/domain/entities"
	"bitcoinswitch/internal/infrastructure/logging"
	"bitcoinswitch/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidSwitchParameters = errors.New("invalid switch parameters")
	ErrPriceUnavailable        = errors.New("price unavailable")
	ErrInvalidAmount           = errors.New("invalid amount")
	ErrAmountOutOfRange        = errors.New("amount out of range")
	ErrCommentTooLong          = errors.New("comment too long")
	ErrInvoiceUnavailable      = errors.New("invoice could not be created")
)

// VariableTimeMultiplier bounds how much longer than the base duration a variable-time
// switch can be bought for in a single payment.
const VariableTimeMultiplier = 360

const (
	DefaultMaxCommentLength   = 639
	DefaultAssetPaymentExpiry = time.Hour
	assetMetadataMessage      = "This switch accepts Taproot Assets via RFQ - pay with either sats or assets"
	switchInvoiceTag          = "Switch"
	invoiceMemoFmt            = "%s (%s ms)"
)

// QuoteCommand is a payer's request for a pay link price.
type QuoteCommand struct {
	DeviceID string
	Pin      int
	Amount   float64
	Duration int64
	Variable bool
	Comment  bool
}

// AssetMetadata advertises RFQ support to asset-capable wallets.
type AssetMetadata struct {
	SupportsRfq bool
	RfqEnabled  bool
	Message     string
}

type QuoteResult struct {
	AttemptID        string
	Callback         string
	MinSendable      int64
	MaxSendable      int64
	Metadata         string
	CommentAllowed   int
	AcceptsAssets    bool
	AcceptedAssetIDs []string
	AssetMetadata    *AssetMetadata
	Quote            entities.Quote
}

// InvoiceCommand is the LNURL callback: the payer picked an amount and wants an invoice.
type InvoiceCommand struct {
	DeviceID   string
	AttemptID  string
	AmountMsat int64
	Comment    string
	AssetID    string
	Variable   bool
}

type InvoiceResult struct {
	PaymentRequest string
	PaymentHash    string
	SuccessMessage string
	IsTaproot      bool
	AssetID        string
	AssetAmount    int64
}

type QuoteOptions struct {
	PublicBaseURL      string
	MaxCommentLength   int
	OracleTimeout      time.Duration
	AssetPaymentExpiry time.Duration
}

// IQuoteUseCase covers the payer-facing half of the pipeline: pricing a switch and
// issuing the invoice for it.
type IQuoteUseCase interface {
	RequestQuote(ctx context.Context, cmd QuoteCommand) (QuoteResult, error)
	RequestInvoice(ctx context.Context, cmd InvoiceCommand) (InvoiceResult, error)
}

type QuoteUseCase struct {
	devices    interfaces.IDeviceRepository
	attempts   interfaces.IPaymentAttemptRepository
	invoices   interfaces.IInvoiceGateway
	prices     interfaces.IPriceConverter
	assets     interfaces.IAssetInvoicer
	oracle     interfaces.IRateOracle
	reconciler *RateReconciler
	opts       QuoteOptions
	log        logging.Logger
	now        func() time.Time
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(
	devices interfaces.IDeviceRepository,
	attempts interfaces.IPaymentAttemptRepository,
	invoices interfaces.IInvoiceGateway,
	prices interfaces.IPriceConverter,
	assets interfaces.IAssetInvoicer,
	oracle interfaces.IRateOracle,
	reconciler *RateReconciler,
	opts QuoteOptions,
	log logging.Logger,
) *QuoteUseCase {
	if opts.MaxCommentLength <= 0 {
		opts.MaxCommentLength = DefaultMaxCommentLength
	}
	if opts.OracleTimeout <= 0 {
		opts.OracleTimeout = DefaultCallTimeout
	}
	if opts.AssetPaymentExpiry <= 0 {
		opts.AssetPaymentExpiry = DefaultAssetPaymentExpiry
	}
	opts.PublicBaseURL = strings.TrimRight(opts.PublicBaseURL, "/")
	if reconciler == nil {
		reconciler = NewRateReconciler(oracle, 0, DefaultRateTolerance, opts.OracleTimeout)
	}
	if log == nil {
		log = logging.NewLogger()
	}
	return &QuoteUseCase{
		devices:    devices,
		attempts:   attempts,
		invoices:   invoices,
		prices:     prices,
		assets:     assets,
		oracle:     oracle,
		reconciler: reconciler,
		opts:       opts,
		log:        log,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// sameAmount compares the amount echoed back in the LNURL against the configured one.
// The value round-trips through a URL and a float parse, so compare at 8 decimals.
func sameAmount(requested, configured float64) bool {
	return decimal.NewFromFloat(requested).Round(8).Equal(decimal.NewFromFloat(configured).Round(8))
}

func (u *QuoteUseCase) assetsAvailable() bool {
	return u.assets != nil && u.assets.Available()
}

// RequestQuote validates the payer's parameters against the device configuration,
// prices the switch and records exactly one PaymentAttempt.
func (u *QuoteUseCase) RequestQuote(ctx context.Context, cmd QuoteCommand) (QuoteResult, error) {
	fields := logging.Fields{"device_id": cmd.DeviceID, "pin": cmd.Pin}
	device, err := u.loadDevice(ctx, strings.TrimSpace(cmd.DeviceID))
	if err != nil {
		return QuoteResult{}, err
	}

	sw, ok := device.MatchSwitch(cmd.Pin, cmd.Duration, cmd.Variable, cmd.Comment)
	if !ok || cmd.Amount < 0 || !sameAmount(cmd.Amount, sw.Amount) {
		u.log.WithFields(fields).Info("[quote][usecase] switch parameters do not match configuration")
		return QuoteResult{}, ErrInvalidSwitchParameters
	}

	sats, err := u.baseSats(ctx, sw.Amount, device.Currency)
	if err != nil {
		u.log.WithFields(fields).WithError(err).Warn("[quote][usecase] price conversion failed")
		return QuoteResult{}, ErrPriceUnavailable
	}

	now := u.now()
	attempt := entities.PaymentAttempt{
		ID:                uuid.NewString(),
		DeviceID:          device.ID,
		Pin:               sw.Pin,
		RequestedDuration: strconv.FormatInt(cmd.Duration, 10),
		AmountSats:        sats,
		Status:            entities.PaymentAttemptAwaitingInvoice,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	res := QuoteResult{
		AttemptID: attempt.ID,
		Metadata:  device.LNURLPayMetadata(),
	}

	if sw.AssetEnabled() && u.assetsAvailable() {
		res.AcceptsAssets = true
		res.AcceptedAssetIDs = append([]string(nil), sw.AcceptedAssetIDs...)
		res.AssetMetadata = &AssetMetadata{SupportsRfq: true, RfqEnabled: true, Message: assetMetadataMessage}

		assetID := sw.AcceptedAssetIDs[0]
		assetAmount := int64(sw.Amount)
		if rate, ok := u.quoteRate(ctx, assetID, assetAmount, fields); ok {
			attempt.Quote = entities.NewQuote(rate, now, assetAmount)
			attempt.AmountSats = decimal.NewFromFloat(rate).Mul(decimal.NewFromInt(assetAmount)).Round(0).IntPart()
			attempt.AssetID = &assetID
			res.Quote = attempt.Quote
		}
	}

	res.MinSendable = attempt.AmountMsat()
	res.MaxSendable = res.MinSendable
	if sw.Variable {
		res.MaxSendable = res.MinSendable * VariableTimeMultiplier
	}
	if sw.Comment || device.Password != nil {
		res.CommentAllowed = u.opts.MaxCommentLength
	}
	res.Callback = u.callbackURL(device.ID, attempt.ID, cmd.Variable)

	if _, err := u.attempts.Create(ctx, attempt); err != nil {
		u.log.WithFields(fields).WithError(err).Error("[quote][usecase] payment attempt create failed")
		return QuoteResult{}, err
	}

	u.log.WithFields(logging.Fields{
		"device_id":    device.ID,
		"pin":          sw.Pin,
		"attempt_id":   attempt.ID,
		"min_sendable": res.MinSendable,
		"max_sendable": res.MaxSendable,
		"quoted":       attempt.Quote.Complete(),
	}).Info("[quote][usecase] quote created")
	return res, nil
}

// quoteRate asks the oracle for a rate. Failures are logged and never block quoting.
func (u *QuoteUseCase) quoteRate(ctx context.Context, assetID string, assetAmount int64, fields logging.Fields) (float64, bool) {
	if u.oracle == nil || assetAmount <= 0 {
		return 0, false
	}
	callCtx, cancel := context.WithTimeout(ctx, u.opts.OracleTimeout)
	defer cancel()
	rate, err := u.oracle.GetRate(callCtx, assetID, assetAmount)
	if err != nil || rate <= 0 {
		u.log.WithFields(fields).WithField("asset_id", assetID).WithError(err).
			Warn("[quote][usecase] rate oracle unavailable, falling back to currency price")
		return 0, false
	}
	return rate, true
}

func (u *QuoteUseCase) baseSats(ctx context.Context, amount float64, currency string) (int64, error) {
	if currency == "" || strings.EqualFold(currency, entities.CurrencySat) {
		return decimal.NewFromFloat(amount).Round(0).IntPart(), nil
	}
	if u.prices == nil {
		return 0, errors.New("price converter not configured")
	}
	sats, err := u.prices.ToSats(ctx, amount, currency)
	if err != nil {
		return 0, err
	}
	if sats.IsNegative() {
		return 0, fmt.Errorf("negative conversion result %s", sats.String())
	}
	return sats.Round(0).IntPart(), nil
}

func (u *QuoteUseCase) callbackURL(deviceID, attemptID string, variable bool) string {
	return fmt.Sprintf("%s/v1/lnurl/%s/cb/%s?variable=%t",
		u.opts.PublicBaseURL, url.PathEscape(deviceID), url.PathEscape(attemptID), variable)
}

func (u *QuoteUseCase) loadDevice(ctx context.Context, id string) (entities.Device, error) {
	if id == "" {
		return entities.Device{}, ErrDeviceNotFound
	}
	device, err := u.devices.GetByID(ctx, id)
	if err != nil {
		return entities.Device{}, err
	}
	if device.ID == "" {
		return entities.Device{}, ErrDeviceNotFound
	}
	if device.Disabled {
		return entities.Device{}, ErrDeviceDisabled
	}
	return device, nil
}

// RequestInvoice issues the Lightning or asset invoice for a previously quoted attempt.
func (u *QuoteUseCase) RequestInvoice(ctx context.Context, cmd InvoiceCommand) (InvoiceResult, error) {
	fields := logging.Fields{"device_id": cmd.DeviceID, "attempt_id": cmd.AttemptID}

	attempt, err := u.attempts.GetByID(ctx, strings.TrimSpace(cmd.AttemptID))
	if err != nil {
		return InvoiceResult{}, err
	}
	if attempt.ID == "" || (cmd.DeviceID != "" && attempt.DeviceID != cmd.DeviceID) {
		return InvoiceResult{}, ErrAttemptNotFound
	}
	if attempt.IsPaid() {
		return InvoiceResult{}, ErrAlreadyProcessed
	}

	device, err := u.devices.GetByID(ctx, attempt.DeviceID)
	if err != nil {
		return InvoiceResult{}, err
	}
	if device.ID == "" {
		u.log.WithFields(fields).Warn("[quote][usecase] device gone, deleting orphaned attempt")
		if delErr := u.attempts.Delete(ctx, attempt.ID); delErr != nil {
			u.log.WithFields(fields).WithError(delErr).Error("[quote][usecase] orphaned attempt delete failed")
		}
		return InvoiceResult{}, ErrDeviceNotFound
	}
	if device.Disabled {
		return InvoiceResult{}, ErrDeviceDisabled
	}
	sw, ok := device.FindSwitch(attempt.Pin)
	if !ok {
		return InvoiceResult{}, ErrSwitchNotFound
	}

	if cmd.AmountMsat <= 0 {
		return InvoiceResult{}, ErrInvalidAmount
	}
	minMsat := attempt.AmountMsat()
	maxMsat := minMsat
	if sw.Variable {
		maxMsat = minMsat * VariableTimeMultiplier
	}
	if cmd.AmountMsat < minMsat || cmd.AmountMsat > maxMsat {
		u.log.WithFields(fields).WithFields(logging.Fields{
			"amount_msat": cmd.AmountMsat, "min": minMsat, "max": maxMsat,
		}).Info("[quote][usecase] amount outside quoted range")
		return InvoiceResult{}, ErrAmountOutOfRange
	}
	if len([]rune(cmd.Comment)) > u.opts.MaxCommentLength {
		return InvoiceResult{}, ErrCommentTooLong
	}

	if sw.AssetEnabled() && u.assetsAvailable() {
		res, err := u.assetInvoice(ctx, device, sw, attempt, cmd)
		if err == nil {
			return res, nil
		}
		if errors.Is(err, ErrQuoteExpired) || errors.Is(err, ErrQuoteOutOfTolerance) || errors.Is(err, ErrRateUnavailable) {
			return InvoiceResult{}, err
		}
		u.log.WithFields(fields).WithError(err).Warn("[quote][usecase] asset invoice failed, falling back to lightning")
	}
	return u.lightningInvoice(ctx, device, attempt, cmd)
}

func (u *QuoteUseCase) lightningInvoice(ctx context.Context, device entities.Device, attempt entities.PaymentAttempt, cmd InvoiceCommand) (InvoiceResult, error) {
	sats := cmd.AmountMsat / 1000
	inv, err := u.invoices.CreateInvoice(ctx, entities.InvoiceRequest{
		WalletID:            device.Wallet,
		WalletKey:           device.WalletKey,
		AmountSats:          sats,
		Memo:                fmt.Sprintf(invoiceMemoFmt, device.Title, attempt.RequestedDuration),
		UnhashedDescription: device.LNURLPayMetadata(),
		Extra:               invoiceExtra(attempt, cmd, sats, false, "", 0),
	})
	if err != nil {
		u.log.WithField("attempt_id", attempt.ID).WithError(err).Error("[quote][usecase] lightning invoice failed")
		return InvoiceResult{}, fmt.Errorf("%w: %v", ErrInvoiceUnavailable, err)
	}

	attempt.PaymentHash = inv.PaymentHash
	attempt.Status = entities.PaymentAttemptInvoiced
	attempt.IsTaproot = false
	attempt.UpdatedAt = u.now()
	if _, err := u.attempts.Update(ctx, attempt); err != nil {
		return InvoiceResult{}, err
	}

	u.log.WithFields(logging.Fields{"attempt_id": attempt.ID, "payment_hash": inv.PaymentHash, "sats": sats}).
		Info("[quote][usecase] lightning invoice issued")
	return InvoiceResult{
		PaymentRequest: inv.PaymentRequest,
		PaymentHash:    inv.PaymentHash,
		SuccessMessage: fmt.Sprintf("%dsats sent", sats),
	}, nil
}

func (u *QuoteUseCase) assetInvoice(ctx context.Context, device entities.Device, sw entities.Switch, attempt entities.PaymentAttempt, cmd InvoiceCommand) (InvoiceResult, error) {
	assetID := cmd.AssetID
	if assetID == "" || !sw.AcceptsAsset(assetID) {
		assetID = sw.AcceptedAssetIDs[0]
	}

	if err := u.reconciler.ValidateQuote(ctx, attempt.Quote, assetID); err != nil {
		u.log.WithFields(logging.Fields{"attempt_id": attempt.ID, "asset_id": assetID}).WithError(err).
			Info("[quote][usecase] stored quote rejected")
		return InvoiceResult{}, err
	}

	assetAmount := AssetAmountForPayment(attempt.Quote, cmd.AmountMsat/1000, sw.Amount)
	inv, err := u.assets.CreateAssetInvoice(ctx, entities.AssetInvoiceRequest{
		WalletID:    device.Wallet,
		WalletKey:   device.WalletKey,
		AssetID:     assetID,
		AssetAmount: assetAmount,
		Description: fmt.Sprintf(invoiceMemoFmt, device.Title, attempt.RequestedDuration),
		Expiry:      u.opts.AssetPaymentExpiry,
		Extra:       invoiceExtra(attempt, cmd, cmd.AmountMsat/1000, true, assetID, assetAmount),
	})
	if err != nil {
		return InvoiceResult{}, err
	}

	attempt.PaymentHash = inv.PaymentHash
	attempt.Status = entities.PaymentAttemptInvoiced
	attempt.IsTaproot = true
	attempt.AssetID = &assetID
	attempt.UpdatedAt = u.now()
	if _, err := u.attempts.Update(ctx, attempt); err != nil {
		return InvoiceResult{}, err
	}

	u.log.WithFields(logging.Fields{
		"attempt_id": attempt.ID, "payment_hash": inv.PaymentHash, "asset_id": assetID, "asset_amount": assetAmount,
	}).Info("[quote][usecase] asset invoice issued")
	return InvoiceResult{
		PaymentRequest: inv.PaymentRequest,
		PaymentHash:    inv.PaymentHash,
		SuccessMessage: fmt.Sprintf("Pay %d units of %s directly", assetAmount, assetID),
		IsTaproot:      true,
		AssetID:        assetID,
		AssetAmount:    assetAmount,
	}, nil
}

// AssetAmountForPayment converts the sats the payer chose into asset units using the
// stored quote, never below one unit. Without a quote the switch price is used as-is.
func AssetAmountForPayment(q entities.Quote, requestedSats int64, switchAmount float64) int64 {
	if q.Complete() {
		units := decimal.NewFromInt(requestedSats).Div(decimal.NewFromFloat(*q.QuotedRate)).Floor().IntPart()
		if units < 1 {
			return 1
		}
		return units
	}
	return int64(switchAmount)
}

func invoiceExtra(attempt entities.PaymentAttempt, cmd InvoiceCommand, sats int64, taproot bool, assetID string, assetAmount int64) map[string]any {
	extra := map[string]any{
		"tag":      switchInvoiceTag,
		"id":       attempt.ID,
		"pin":      strconv.Itoa(attempt.Pin),
		"amount":   strconv.FormatInt(sats, 10),
		"comment":  cmd.Comment,
		"variable": cmd.Variable,
	}
	if taproot {
		extra["is_taproot"] = true
		extra["asset_id"] = assetID
		extra["asset_amount"] = assetAmount
	}
	return extra
}
