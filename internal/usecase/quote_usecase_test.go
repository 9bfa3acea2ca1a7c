package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"bitcoinswitch/internal/domain/entities"
	mock_interfaces "bitcoinswitch/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type quoteFixture struct {
	devices  *mock_interfaces.MockIDeviceRepository
	attempts *mock_interfaces.MockIPaymentAttemptRepository
	invoices *mock_interfaces.MockIInvoiceGateway
	prices   *mock_interfaces.MockIPriceConverter
	assets   *mock_interfaces.MockIAssetInvoicer
	oracle   *mock_interfaces.MockIRateOracle
	uc       *QuoteUseCase
	now      time.Time
}

func newQuoteFixture(t *testing.T) quoteFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	logger, _ := newTestLogger(t)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	f := quoteFixture{
		devices:  mock_interfaces.NewMockIDeviceRepository(ctrl),
		attempts: mock_interfaces.NewMockIPaymentAttemptRepository(ctrl),
		invoices: mock_interfaces.NewMockIInvoiceGateway(ctrl),
		prices:   mock_interfaces.NewMockIPriceConverter(ctrl),
		assets:   mock_interfaces.NewMockIAssetInvoicer(ctrl),
		oracle:   mock_interfaces.NewMockIRateOracle(ctrl),
		now:      now,
	}
	reconciler := NewRateReconciler(f.oracle, 5*time.Minute, 0.05, time.Second)
	reconciler.now = func() time.Time { return now }
	f.uc = NewQuoteUseCase(f.devices, f.attempts, f.invoices, f.prices, f.assets, f.oracle, reconciler,
		QuoteOptions{PublicBaseURL: "https://switch.example.com/", MaxCommentLength: 20}, logger)
	f.uc.now = func() time.Time { return now }
	return f
}

func TestQuoteUseCase_RequestQuote_Validation(t *testing.T) {
	t.Run("device not found", func(t *testing.T) {
		f := newQuoteFixture(t)
		f.devices.EXPECT().GetByID(gomock.Any(), "nope").Return(entities.Device{}, nil)
		_, err := f.uc.RequestQuote(context.Background(), QuoteCommand{DeviceID: "nope", Pin: 1, Amount: 100, Duration: 3000})
		if !errors.Is(err, ErrDeviceNotFound) {
			t.Fatalf("expected ErrDeviceNotFound, got %v", err)
		}
	})

	t.Run("device disabled", func(t *testing.T) {
		f := newQuoteFixture(t)
		d := fixtureDevice()
		d.Disabled = true
		f.devices.EXPECT().GetByID(gomock.Any(), "dev-1").Return(d, nil)
		_, err := f.uc.RequestQuote(context.Background(), QuoteCommand{DeviceID: "dev-1", Pin: 1, Amount: 100, Duration: 3000})
		if !errors.Is(err, ErrDeviceDisabled) {
			t.Fatalf("expected ErrDeviceDisabled, got %v", err)
		}
	})

	mismatches := []struct {
		name string
		cmd  QuoteCommand
	}{
		{name: "unknown pin", cmd: QuoteCommand{DeviceID: "dev-1", Pin: 7, Amount: 100, Duration: 3000}},
		{name: "arbitrary duration", cmd: QuoteCommand{DeviceID: "dev-1", Pin: 1, Amount: 100, Duration: 999999}},
		{name: "variable flag", cmd: QuoteCommand{DeviceID: "dev-1", Pin: 1, Amount: 100, Duration: 3000, Variable: true}},
		{name: "comment flag", cmd: QuoteCommand{DeviceID: "dev-1", Pin: 1, Amount: 100, Duration: 3000, Comment: true}},
		{name: "tampered amount", cmd: QuoteCommand{DeviceID: "dev-1", Pin: 1, Amount: 1, Duration: 3000}},
	}
	for _, tc := range mismatches {
		t.Run(tc.name, func(t *testing.T) {
			f := newQuoteFixture(t)
			f.devices.EXPECT().GetByID(gomock.Any(), "dev-1").Return(fixtureDevice(), nil)
			// no attempt must be created
			_, err := f.uc.RequestQuote(context.Background(), tc.cmd)
			if !errors.Is(err, ErrInvalidSwitchParameters) {
				t.Fatalf("expected ErrInvalidSwitchParameters, got %v", err)
			}
		})
	}
}

func TestQuoteUseCase_RequestQuote_Pricing(t *testing.T) {
	t.Run("sat device passes price through", func(t *testing.T) {
		f := newQuoteFixture(t)
		f.devices.EXPECT().GetByID(gomock.Any(), "dev-1").Return(fixtureDevice(), nil)
		f.attempts.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.PaymentAttempt{})).DoAndReturn(
			func(_ context.Context, p entities.PaymentAttempt) (entities.PaymentAttempt, error) {
				if p.ID == "" || p.DeviceID != "dev-1" || p.Pin != 1 || p.AmountSats != 100 || p.RequestedDuration != "3000" {
					t.Fatalf("unexpected attempt: %+v", p)
				}
				if p.Status != entities.PaymentAttemptAwaitingInvoice || p.Quote.Complete() {
					t.Fatalf("unexpected attempt state: %+v", p)
				}
				return p, nil
			},
		)

		res, err := f.uc.RequestQuote(context.Background(), QuoteCommand{DeviceID: "dev-1", Pin: 1, Amount: 100, Duration: 3000})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.MinSendable != 100000 || res.MaxSendable != 100000 {
			t.Fatalf("unexpected range %d..%d", res.MinSendable, res.MaxSendable)
		}
		if res.CommentAllowed != 0 || res.AcceptsAssets {
			t.Fatalf("unexpected flags: %+v", res)
		}
		expectedCallback := "https://switch.example.com/v1/lnurl/dev-1/cb/" + res.AttemptID + "?variable=false"
		if res.Callback != expectedCallback {
			t.Fatalf("unexpected callback %q", res.Callback)
		}
		if res.Metadata != `[["text/plain","Coffee machine"]]` {
			t.Fatalf("unexpected metadata %q", res.Metadata)
		}
	})

	t.Run("amount with float noise still matches", func(t *testing.T) {
		f := newQuoteFixture(t)
		d := fixtureDevice()
		d.Currency = "EUR"
		d.Switches = []entities.Switch{{Pin: 1, Amount: 0.3, Duration: 3000}}
		f.devices.EXPECT().GetByID(gomock.Any(), "dev-1").Return(d, nil)
		// the configured amount is priced, not the echoed one
		f.prices.EXPECT().ToSats(gomock.Any(), 0.3, "EUR").Return(decimal.RequireFromString("315"), nil)
		f.attempts.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.PaymentAttempt) (entities.PaymentAttempt, error) { return p, nil },
		)

		noisy := 0.1
		noisy += 0.2
		if noisy == 0.3 {
			t.Fatalf("expected float noise in the requested amount")
		}
		res, err := f.uc.RequestQuote(context.Background(), QuoteCommand{DeviceID: "dev-1", Pin: 1, Amount: noisy, Duration: 3000})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.MinSendable != 315000 {
			t.Fatalf("unexpected min sendable %d", res.MinSendable)
		}
	})

	t.Run("variable time multiplies max sendable", func(t *testing.T) {
		f := newQuoteFixture(t)
		f.devices.EXPECT().GetByID(gomock.Any(), "dev-1").Return(fixtureDevice(), nil)
		f.attempts.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.PaymentAttempt) (entities.PaymentAttempt, error) { return p, nil },
		)

		res, err := f.uc.RequestQuote(context.Background(), QuoteCommand{DeviceID: "dev-1", Pin: 2, Amount: 10, Duration: 5000, Variable: true, Comment: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.MinSendable != 10000 || res.MaxSendable != 10000*VariableTimeMultiplier {
			t.Fatalf("unexpected range %d..%d", res.MinSendable, res.MaxSendable)
		}
		if res.CommentAllowed != 20 {
			t.Fatalf("expected comment allowed, got %d", res.CommentAllowed)
		}
		if !strings.HasSuffix(res.Callback, "?variable=true") {
			t.Fatalf("unexpected callback %q", res.Callback)
		}
	})

	t.Run("fiat device converts", func(t *testing.T) {
		f := newQuoteFixture(t)
		d := fixtureDevice()
		d.Currency = "EUR"
		d.Switches = []entities.Switch{{Pin: 1, Amount: 2.5, Duration: 3000}}
		f.devices.EXPECT().GetByID(gomock.Any(), "dev-1").Return(d, nil)
		f.prices.EXPECT().ToSats(gomock.Any(), 2.5, "EUR").Return(decimal.RequireFromString("2631.6"), nil)
		f.attempts.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.PaymentAttempt) (entities.PaymentAttempt, error) { return p, nil },
		)

		res, err := f.uc.RequestQuote(context.Background(), QuoteCommand{DeviceID: "dev-1", Pin: 1, Amount: 2.5, Duration: 3000})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.MinSendable != 2632000 {
			t.Fatalf("unexpected min sendable %d", res.MinSendable)
		}
	})

	t.Run("conversion failure", func(t *testing.T) {
		f := newQuoteFixture(t)
		d := fixtureDevice()
		d.Currency = "EUR"
		f.devices.EXPECT().GetByID(gomock.Any(), "dev-1").Return(d, nil)
		f.prices.EXPECT().ToSats(gomock.Any(), 100.0, "EUR").Return(decimal.Zero, errors.New("no rate"))

		_, err := f.uc.RequestQuote(context.Background(), QuoteCommand{DeviceID: "dev-1", Pin: 1, Amount: 100, Duration: 3000})
		if !errors.Is(err, ErrPriceUnavailable) {
			t.Fatalf("expected ErrPriceUnavailable, got %v", err)
		}
	})
}

func TestQuoteUseCase_RequestQuote_Assets(t *testing.T) {
	t.Run("oracle rate overrides price and is persisted", func(t *testing.T) {
		f := newQuoteFixture(t)
		f.devices.EXPECT().GetByID(gomock.Any(), "dev-1").Return(fixtureDevice(), nil)
		f.assets.EXPECT().Available().Return(true)
		f.oracle.EXPECT().GetRate(gomock.Any(), "asset-a", int64(50)).Return(2.5, nil)
		f.attempts.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.PaymentAttempt) (entities.PaymentAttempt, error) {
				if !p.Quote.Complete() || *p.QuotedRate != 2.5 || *p.QuotedAssetAmount != 50 || !p.QuotedAt.Equal(f.now) {
					t.Fatalf("unexpected quote: %+v", p.Quote)
				}
				if p.AmountSats != 125 || p.AssetID == nil || *p.AssetID != "asset-a" {
					t.Fatalf("unexpected attempt: %+v", p)
				}
				return p, nil
			},
		)

		res, err := f.uc.RequestQuote(context.Background(), QuoteCommand{DeviceID: "dev-1", Pin: 3, Amount: 50, Duration: 1500, Comment: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.MinSendable != 125000 || res.MaxSendable != 125000 {
			t.Fatalf("unexpected range %d..%d", res.MinSendable, res.MaxSendable)
		}
		if !res.AcceptsAssets || len(res.AcceptedAssetIDs) != 2 || res.AssetMetadata == nil || !res.AssetMetadata.SupportsRfq {
			t.Fatalf("expected asset advertisement, got %+v", res)
		}
	})

	t.Run("oracle failure falls back to currency price", func(t *testing.T) {
		f := newQuoteFixture(t)
		f.devices.EXPECT().GetByID(gomock.Any(), "dev-1").Return(fixtureDevice(), nil)
		f.assets.EXPECT().Available().Return(true)
		f.oracle.EXPECT().GetRate(gomock.Any(), "asset-a", int64(50)).Return(0.0, errors.New("rfq down"))
		f.attempts.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.PaymentAttempt) (entities.PaymentAttempt, error) {
				if p.Quote.Complete() || p.AmountSats != 50 {
					t.Fatalf("expected unquoted attempt, got %+v", p)
				}
				return p, nil
			},
		)

		res, err := f.uc.RequestQuote(context.Background(), QuoteCommand{DeviceID: "dev-1", Pin: 3, Amount: 50, Duration: 1500, Comment: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.MinSendable != 50000 || !res.AcceptsAssets {
			t.Fatalf("unexpected result %+v", res)
		}
	})

	t.Run("assets unavailable stays on lightning", func(t *testing.T) {
		f := newQuoteFixture(t)
		f.devices.EXPECT().GetByID(gomock.Any(), "dev-1").Return(fixtureDevice(), nil)
		f.assets.EXPECT().Available().Return(false)
		f.attempts.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.PaymentAttempt) (entities.PaymentAttempt, error) { return p, nil },
		)

		res, err := f.uc.RequestQuote(context.Background(), QuoteCommand{DeviceID: "dev-1", Pin: 3, Amount: 50, Duration: 1500, Comment: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.AcceptsAssets {
			t.Fatalf("assets must not be advertised")
		}
	})
}

func TestQuoteUseCase_RequestInvoice(t *testing.T) {
	t.Run("attempt not found", func(t *testing.T) {
		f := newQuoteFixture(t)
		f.attempts.EXPECT().GetByID(gomock.Any(), "att-1").Return(entities.PaymentAttempt{}, nil)
		_, err := f.uc.RequestInvoice(context.Background(), InvoiceCommand{DeviceID: "dev-1", AttemptID: "att-1", AmountMsat: 100000})
		if !errors.Is(err, ErrAttemptNotFound) {
			t.Fatalf("expected ErrAttemptNotFound, got %v", err)
		}
	})

	t.Run("attempt of another device", func(t *testing.T) {
		f := newQuoteFixture(t)
		f.attempts.EXPECT().GetByID(gomock.Any(), "att-1").Return(openAttempt(1, 100), nil)
		_, err := f.uc.RequestInvoice(context.Background(), InvoiceCommand{DeviceID: "dev-2", AttemptID: "att-1", AmountMsat: 100000})
		if !errors.Is(err, ErrAttemptNotFound) {
			t.Fatalf("expected ErrAttemptNotFound, got %v", err)
		}
	})

	t.Run("orphaned attempt is deleted", func(t *testing.T) {
		f := newQuoteFixture(t)
		f.attempts.EXPECT().GetByID(gomock.Any(), "att-1").Return(openAttempt(1, 100), nil)
		f.devices.EXPECT().GetByID(gomock.Any(), "dev-1").Return(entities.Device{}, nil)
		f.attempts.EXPECT().Delete(gomock.Any(), "att-1").Return(nil)

		_, err := f.uc.RequestInvoice(context.Background(), InvoiceCommand{DeviceID: "dev-1", AttemptID: "att-1", AmountMsat: 100000})
		if !errors.Is(err, ErrDeviceNotFound) {
			t.Fatalf("expected ErrDeviceNotFound, got %v", err)
		}
	})

	t.Run("paid attempt", func(t *testing.T) {
		f := newQuoteFixture(t)
		a := openAttempt(1, 100)
		a.Status = entities.PaymentAttemptPaid
		f.attempts.EXPECT().GetByID(gomock.Any(), "att-1").Return(a, nil)
		_, err := f.uc.RequestInvoice(context.Background(), InvoiceCommand{DeviceID: "dev-1", AttemptID: "att-1", AmountMsat: 100000})
		if !errors.Is(err, ErrAlreadyProcessed) {
			t.Fatalf("expected ErrAlreadyProcessed, got %v", err)
		}
	})

	ranges := []struct {
		name    string
		pin     int
		sats    int64
		amount  int64
		comment string
		want    error
	}{
		{name: "missing amount", pin: 1, sats: 100, amount: 0, want: ErrInvalidAmount},
		{name: "below fixed price", pin: 1, sats: 100, amount: 99000, want: ErrAmountOutOfRange},
		{name: "above fixed price", pin: 1, sats: 100, amount: 101000, want: ErrAmountOutOfRange},
		{name: "above variable cap", pin: 2, sats: 10, amount: 10000*VariableTimeMultiplier + 1000, want: ErrAmountOutOfRange},
		{name: "comment too long", pin: 2, sats: 10, amount: 20000, comment: strings.Repeat("x", 21), want: ErrCommentTooLong},
	}
	for _, tc := range ranges {
		t.Run(tc.name, func(t *testing.T) {
			f := newQuoteFixture(t)
			f.attempts.EXPECT().GetByID(gomock.Any(), "att-1").Return(openAttempt(tc.pin, tc.sats), nil)
			f.devices.EXPECT().GetByID(gomock.Any(), "dev-1").Return(fixtureDevice(), nil)
			_, err := f.uc.RequestInvoice(context.Background(), InvoiceCommand{DeviceID: "dev-1", AttemptID: "att-1", AmountMsat: tc.amount, Comment: tc.comment})
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	t.Run("lightning invoice", func(t *testing.T) {
		f := newQuoteFixture(t)
		a := openAttempt(2, 10)
		a.Status = entities.PaymentAttemptAwaitingInvoice
		a.PaymentHash = ""
		f.attempts.EXPECT().GetByID(gomock.Any(), "att-1").Return(a, nil)
		f.devices.EXPECT().GetByID(gomock.Any(), "dev-1").Return(fixtureDevice(), nil)
		f.invoices.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req entities.InvoiceRequest) (entities.Invoice, error) {
				if req.AmountSats != 20 || req.WalletKey != "invoice-key" || req.Memo != "Coffee machine (3000 ms)" {
					t.Fatalf("unexpected invoice request: %+v", req)
				}
				if req.Extra["id"] != "att-1" || req.Extra["tag"] != "Switch" || req.Extra["variable"] != true || req.Extra["comment"] != "hi" {
					t.Fatalf("unexpected extra: %+v", req.Extra)
				}
				return entities.Invoice{PaymentHash: "ph", PaymentRequest: "lnbc1"}, nil
			},
		)
		f.attempts.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.PaymentAttempt) (entities.PaymentAttempt, error) {
				if p.PaymentHash != "ph" || p.Status != entities.PaymentAttemptInvoiced || p.IsTaproot {
					t.Fatalf("unexpected update: %+v", p)
				}
				return p, nil
			},
		)

		res, err := f.uc.RequestInvoice(context.Background(), InvoiceCommand{DeviceID: "dev-1", AttemptID: "att-1", AmountMsat: 20000, Comment: "hi", Variable: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.PaymentRequest != "lnbc1" || res.SuccessMessage != "20sats sent" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("lightning gateway failure", func(t *testing.T) {
		f := newQuoteFixture(t)
		f.attempts.EXPECT().GetByID(gomock.Any(), "att-1").Return(openAttempt(1, 100), nil)
		f.devices.EXPECT().GetByID(gomock.Any(), "dev-1").Return(fixtureDevice(), nil)
		f.invoices.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).Return(entities.Invoice{}, errors.New("node down"))

		_, err := f.uc.RequestInvoice(context.Background(), InvoiceCommand{DeviceID: "dev-1", AttemptID: "att-1", AmountMsat: 100000})
		if !errors.Is(err, ErrInvoiceUnavailable) {
			t.Fatalf("expected ErrInvoiceUnavailable, got %v", err)
		}
	})

	t.Run("asset invoice from quote", func(t *testing.T) {
		f := newQuoteFixture(t)
		a := openAttempt(3, 125)
		a.Quote = entities.NewQuote(2.5, f.now.Add(-time.Minute), 50)
		f.attempts.EXPECT().GetByID(gomock.Any(), "att-1").Return(a, nil)
		f.devices.EXPECT().GetByID(gomock.Any(), "dev-1").Return(fixtureDevice(), nil)
		f.assets.EXPECT().Available().Return(true)
		f.oracle.EXPECT().GetRate(gomock.Any(), "asset-b", int64(50)).Return(2.5, nil)
		f.assets.EXPECT().CreateAssetInvoice(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req entities.AssetInvoiceRequest) (entities.Invoice, error) {
				if req.AssetID != "asset-b" || req.AssetAmount != 50 || req.Expiry != DefaultAssetPaymentExpiry {
					t.Fatalf("unexpected asset request: %+v", req)
				}
				if req.Extra["is_taproot"] != true || req.Extra["asset_amount"] != int64(50) {
					t.Fatalf("unexpected extra: %+v", req.Extra)
				}
				return entities.Invoice{PaymentHash: "aph", PaymentRequest: "lntaproot"}, nil
			},
		)
		f.attempts.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.PaymentAttempt) (entities.PaymentAttempt, error) {
				if !p.IsTaproot || p.AssetID == nil || *p.AssetID != "asset-b" || p.PaymentHash != "aph" {
					t.Fatalf("unexpected update: %+v", p)
				}
				return p, nil
			},
		)

		res, err := f.uc.RequestInvoice(context.Background(), InvoiceCommand{DeviceID: "dev-1", AttemptID: "att-1", AmountMsat: 125000, AssetID: "asset-b"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.IsTaproot || res.AssetAmount != 50 || res.PaymentRequest != "lntaproot" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("asset invoice rejects expired quote", func(t *testing.T) {
		f := newQuoteFixture(t)
		a := openAttempt(3, 125)
		a.Quote = entities.NewQuote(2.5, f.now.Add(-10*time.Minute), 50)
		f.attempts.EXPECT().GetByID(gomock.Any(), "att-1").Return(a, nil)
		f.devices.EXPECT().GetByID(gomock.Any(), "dev-1").Return(fixtureDevice(), nil)
		f.assets.EXPECT().Available().Return(true)

		_, err := f.uc.RequestInvoice(context.Background(), InvoiceCommand{DeviceID: "dev-1", AttemptID: "att-1", AmountMsat: 125000})
		if !errors.Is(err, ErrQuoteExpired) {
			t.Fatalf("expected ErrQuoteExpired, got %v", err)
		}
	})

	t.Run("asset node failure falls back to lightning", func(t *testing.T) {
		f := newQuoteFixture(t)
		f.attempts.EXPECT().GetByID(gomock.Any(), "att-1").Return(openAttempt(3, 50), nil)
		f.devices.EXPECT().GetByID(gomock.Any(), "dev-1").Return(fixtureDevice(), nil)
		f.assets.EXPECT().Available().Return(true)
		f.assets.EXPECT().CreateAssetInvoice(gomock.Any(), gomock.Any()).Return(entities.Invoice{}, errors.New("tapd down"))
		f.invoices.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).Return(entities.Invoice{PaymentHash: "ph", PaymentRequest: "lnbc"}, nil)
		f.attempts.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.PaymentAttempt) (entities.PaymentAttempt, error) { return p, nil },
		)

		res, err := f.uc.RequestInvoice(context.Background(), InvoiceCommand{DeviceID: "dev-1", AttemptID: "att-1", AmountMsat: 50000})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.IsTaproot {
			t.Fatalf("expected lightning fallback")
		}
	})
}

func TestAssetAmountForPayment(t *testing.T) {
	q := entities.NewQuote(2.5, time.Now(), 50)
	if got := AssetAmountForPayment(q, 125, 50); got != 50 {
		t.Fatalf("expected 50, got %d", got)
	}
	if got := AssetAmountForPayment(q, 1, 50); got != 1 {
		t.Fatalf("expected floor of 1, got %d", got)
	}
	if got := AssetAmountForPayment(entities.Quote{}, 999, 42.9); got != 42 {
		t.Fatalf("expected switch amount, got %d", got)
	}
}
