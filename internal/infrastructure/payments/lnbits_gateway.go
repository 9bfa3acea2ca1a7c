package payments

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"bitcoinswitch/internal/domain/entities"
	"bitcoinswitch/internal/infrastructure/clients"
	"bitcoinswitch/internal/infrastructure/logging"
	"bitcoinswitch/internal/usecase/interfaces"

	"github.com/failsafe-go/failsafe-go"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrMissingLNbitsURL        = errors.New("missing LNBITS_URL")
	ErrLNbitsGatewayNotReady   = errors.New("lnbits gateway not configured")
	ErrInvalidWalletKey        = errors.New("invalid wallet api key")
	ErrUnexpectedLNbitsPayload = errors.New("unexpected lnbits response")
)

// LNbitsGateway issues Lightning invoices, converts fiat prices and resolves wallet
// keys against an LNbits node.
type LNbitsGateway struct {
	baseURL  string
	client   *http.Client
	executor failsafe.Executor[*http.Response]
	mockMode bool
	log      logging.Logger
}

var (
	_ interfaces.IInvoiceGateway = (*LNbitsGateway)(nil)
	_ interfaces.IPriceConverter = (*LNbitsGateway)(nil)
	_ interfaces.IWalletResolver = (*LNbitsGateway)(nil)
)

func NewLNbitsGateway(baseURL string, timeout time.Duration, mockMode bool, log logging.Logger) (*LNbitsGateway, error) {
	if log == nil {
		log = logging.NewLogger()
	}
	if mockMode {
		log.Info("[payment][gateway] mock mode enabled")
		return &LNbitsGateway{mockMode: true, log: log}, nil
	}
	if baseURL == "" {
		log.Error("[payment][gateway] missing LNBITS_URL")
		return nil, ErrMissingLNbitsURL
	}
	if !strings.HasPrefix(baseURL, "http") {
		baseURL = "http://" + baseURL
	}
	log.WithField("url", baseURL).Info("[payment][gateway] LNbits client initialized")

	return &LNbitsGateway{
		baseURL:  strings.TrimRight(baseURL, "/"),
		client:   &http.Client{Timeout: timeout},
		executor: clients.NewHTTPExecutor(clients.DefaultHTTPExecutorConfig()),
		log:      log,
	}, nil
}

type createInvoiceRequest struct {
	Out                 bool           `json:"out"`
	Amount              int64          `json:"amount"`
	Unit                string         `json:"unit"`
	Memo                string         `json:"memo"`
	UnhashedDescription string         `json:"unhashed_description,omitempty"`
	Extra               map[string]any `json:"extra,omitempty"`
}

type createInvoiceResponse struct {
	PaymentHash    string `json:"payment_hash"`
	PaymentRequest string `json:"payment_request"`
	Bolt11         string `json:"bolt11"`
}

func (g *LNbitsGateway) CreateInvoice(ctx context.Context, req entities.InvoiceRequest) (entities.Invoice, error) {
	if g != nil && g.mockMode {
		inv := mockInvoice(req.AmountSats)
		g.log.WithFields(logging.Fields{"payment_hash": inv.PaymentHash, "amount": req.AmountSats}).Info("[payment][gateway] mock invoice created")
		return inv, nil
	}
	if g == nil || g.client == nil {
		return entities.Invoice{}, ErrLNbitsGatewayNotReady
	}

	payload := createInvoiceRequest{
		Amount: req.AmountSats,
		Unit:   entities.CurrencySat,
		Memo:   req.Memo,
		Extra:  req.Extra,
	}
	if req.UnhashedDescription != "" {
		payload.UnhashedDescription = hex.EncodeToString([]byte(req.UnhashedDescription))
	}

	var out createInvoiceResponse
	if err := g.postJSON(ctx, "/api/v1/payments", req.WalletKey, payload, &out); err != nil {
		g.log.WithError(err).Error("[payment][gateway] create invoice failed")
		return entities.Invoice{}, err
	}
	pr := out.PaymentRequest
	if pr == "" {
		pr = out.Bolt11
	}
	if out.PaymentHash == "" || pr == "" {
		return entities.Invoice{}, ErrUnexpectedLNbitsPayload
	}
	g.log.WithFields(logging.Fields{"payment_hash": out.PaymentHash, "amount": req.AmountSats}).Info("[payment][gateway] invoice created")
	return entities.Invoice{PaymentHash: out.PaymentHash, PaymentRequest: pr}, nil
}

type conversionRequest struct {
	From   string  `json:"from_"`
	Amount float64 `json:"amount"`
	To     string  `json:"to"`
}

type conversionResponse struct {
	Sats json.Number `json:"sats"`
}

// ToSats converts amount in currency to sats. The sat currency passes through.
func (g *LNbitsGateway) ToSats(ctx context.Context, amount float64, currency string) (decimal.Decimal, error) {
	if strings.EqualFold(currency, entities.CurrencySat) || (g != nil && g.mockMode) {
		return decimal.NewFromFloat(amount), nil
	}
	if g == nil || g.client == nil {
		return decimal.Zero, ErrLNbitsGatewayNotReady
	}

	var out conversionResponse
	err := g.postJSON(ctx, "/api/v1/conversion", "", conversionRequest{From: currency, Amount: amount, To: entities.CurrencySat}, &out)
	if err != nil {
		return decimal.Zero, err
	}
	sats, err := decimal.NewFromString(out.Sats.String())
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: sats=%q", ErrUnexpectedLNbitsPayload, out.Sats)
	}
	return sats, nil
}

type walletResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ResolveWallet looks up the wallet an API key belongs to. In mock mode the key is the
// wallet id.
func (g *LNbitsGateway) ResolveWallet(ctx context.Context, apiKey string) (entities.Wallet, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return entities.Wallet{}, ErrInvalidWalletKey
	}
	if g != nil && g.mockMode {
		return entities.Wallet{ID: apiKey, Name: "mock", InvoiceKey: apiKey}, nil
	}
	if g == nil || g.client == nil {
		return entities.Wallet{}, ErrLNbitsGatewayNotReady
	}

	resp, err := clients.Do(ctx, g.executor, g.client, func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/api/v1/wallet", nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("X-Api-Key", apiKey)
		return req, nil
	})
	if err != nil {
		return entities.Wallet{}, fmt.Errorf("lnbits wallet: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden || resp.StatusCode == http.StatusNotFound:
		return entities.Wallet{}, ErrInvalidWalletKey
	case resp.StatusCode >= 300:
		return entities.Wallet{}, apiError(resp)
	}

	var out walletResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return entities.Wallet{}, fmt.Errorf("lnbits wallet: %w", err)
	}
	if out.ID == "" {
		return entities.Wallet{}, ErrInvalidWalletKey
	}
	return entities.Wallet{ID: out.ID, Name: out.Name, InvoiceKey: apiKey}, nil
}

func (g *LNbitsGateway) postJSON(ctx context.Context, path, apiKey string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return err
	}

	resp, err := clients.Do(ctx, g.executor, g.client, func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		if apiKey != "" {
			req.Header.Set("X-Api-Key", apiKey)
		}
		return req, nil
	})
	if err != nil {
		return fmt.Errorf("lnbits %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 300 {
		return apiError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("lnbits %s: %w", path, err)
	}
	return nil
}

func apiError(resp *http.Response) error {
	msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return &clients.APIError{Service: "lnbits", StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(msg))}
}

func mockInvoice(amountSats int64) entities.Invoice {
	sum := sha256.Sum256([]byte(uuid.NewString()))
	hash := hex.EncodeToString(sum[:])
	return entities.Invoice{
		PaymentHash:    hash,
		PaymentRequest: fmt.Sprintf("lnbcmock%dn1%s", amountSats, hash[:32]),
	}
}
