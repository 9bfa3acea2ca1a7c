package rates

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"bitcoinswitch/internal/domain/entities"
	"bitcoinswitch/internal/infrastructure/clients"
	"bitcoinswitch/internal/infrastructure/logging"
	"bitcoinswitch/internal/usecase/interfaces"

	"github.com/failsafe-go/failsafe-go"
)

var (
	ErrNoRate               = errors.New("asset node returned no rate")
	ErrNoInvoice            = errors.New("asset node returned no invoice")
	ErrTaprootNotConfigured = errors.New("taproot assets not configured")
)

const taprootAPIPrefix = "/taproot_assets/api/v1"

// TaprootRateClient talks to the Taproot Assets extension of the payment node.
//
// It serves rate discovery (RFQ buy quote without an invoice) and asset invoices.
type TaprootRateClient struct {
	baseURL  string
	apiKey   string
	client   *http.Client
	executor failsafe.Executor[*http.Response]
	log      logging.Logger
}

var (
	_ interfaces.IRateOracle    = (*TaprootRateClient)(nil)
	_ interfaces.IAssetInvoicer = (*TaprootRateClient)(nil)
)

type Option func(*TaprootRateClient)

func WithHTTPClient(c *http.Client) Option {
	return func(t *TaprootRateClient) {
		if c != nil {
			t.client = c
		}
	}
}

func WithHTTPExecutorConfig(cfg clients.HTTPExecutorConfig) Option {
	return func(t *TaprootRateClient) {
		t.executor = clients.NewHTTPExecutor(cfg)
	}
}

func NewTaprootRateClient(baseURL, apiKey string, timeout time.Duration, log logging.Logger, opts ...Option) *TaprootRateClient {
	if log == nil {
		log = logging.NewLogger()
	}
	if !strings.HasPrefix(baseURL, "http") {
		baseURL = "http://" + baseURL
	}
	c := &TaprootRateClient{
		baseURL:  strings.TrimRight(baseURL, "/"),
		apiKey:   apiKey,
		client:   &http.Client{Timeout: timeout},
		executor: clients.NewHTTPExecutor(clients.DefaultHTTPExecutorConfig()),
		log:      log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type rateResponse struct {
	RatePerUnit *float64 `json:"rate_per_unit"`
	Error       string   `json:"error,omitempty"`
}

// GetRate returns sats per asset unit for a buy of assetAmount units.
func (c *TaprootRateClient) GetRate(ctx context.Context, assetID string, assetAmount int64) (float64, error) {
	if assetAmount < 1 {
		assetAmount = 1
	}
	endpoint := fmt.Sprintf("%s%s/taproot/rate/%s?%s", c.baseURL, taprootAPIPrefix,
		url.PathEscape(assetID), url.Values{"amount": {strconv.FormatInt(assetAmount, 10)}}.Encode())

	var out rateResponse
	if err := c.do(ctx, http.MethodGet, endpoint, c.apiKey, nil, &out); err != nil {
		return 0, err
	}
	if out.RatePerUnit == nil || *out.RatePerUnit <= 0 {
		c.log.WithFields(logging.Fields{"asset_id": assetID, "reason": out.Error}).Warn("[rates][taproot] no rate returned")
		return 0, ErrNoRate
	}
	c.log.WithFields(logging.Fields{"asset_id": assetID, "amount": assetAmount, "rate": *out.RatePerUnit}).Debug("[rates][taproot] rate fetched")
	return *out.RatePerUnit, nil
}

func (c *TaprootRateClient) Available() bool {
	return c != nil && c.baseURL != ""
}

type assetInvoiceRequest struct {
	AssetID     string         `json:"asset_id"`
	Amount      int64          `json:"amount"`
	Description string         `json:"description"`
	Expiry      int64          `json:"expiry,omitempty"`
	Extra       map[string]any `json:"extra,omitempty"`
}

type assetInvoiceResponse struct {
	PaymentHash    string `json:"payment_hash"`
	PaymentRequest string `json:"payment_request"`
}

func (c *TaprootRateClient) CreateAssetInvoice(ctx context.Context, req entities.AssetInvoiceRequest) (entities.Invoice, error) {
	body, err := json.Marshal(assetInvoiceRequest{
		AssetID:     req.AssetID,
		Amount:      req.AssetAmount,
		Description: req.Description,
		Expiry:      int64(req.Expiry / time.Second),
		Extra:       req.Extra,
	})
	if err != nil {
		return entities.Invoice{}, err
	}

	var out assetInvoiceResponse
	endpoint := c.baseURL + taprootAPIPrefix + "/taproot/invoice"
	if err := c.do(ctx, http.MethodPost, endpoint, req.WalletKey, body, &out); err != nil {
		return entities.Invoice{}, err
	}
	if out.PaymentRequest == "" || out.PaymentHash == "" {
		return entities.Invoice{}, fmt.Errorf("asset invoice: %w", ErrNoInvoice)
	}
	return entities.Invoice{PaymentHash: out.PaymentHash, PaymentRequest: out.PaymentRequest}, nil
}

func (c *TaprootRateClient) do(ctx context.Context, method, endpoint, apiKey string, body []byte, out any) error {
	resp, err := clients.Do(ctx, c.executor, c.client, func(ctx context.Context) (*http.Request, error) {
		var r io.Reader
		if body != nil {
			r = strings.NewReader(string(body))
		}
		req, err := http.NewRequestWithContext(ctx, method, endpoint, r)
		if err != nil {
			return nil, err
		}
		if apiKey != "" {
			req.Header.Set("X-Api-Key", apiKey)
		}
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		return req, nil
	})
	if err != nil {
		return fmt.Errorf("taproot request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &clients.APIError{Service: "taproot_assets", StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(msg))}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("taproot response: %w", err)
	}
	return nil
}

// UnavailableAssets stands in when no asset node is configured.
type UnavailableAssets struct{}

var (
	_ interfaces.IRateOracle    = UnavailableAssets{}
	_ interfaces.IAssetInvoicer = UnavailableAssets{}
)

func (UnavailableAssets) Available() bool { return false }

func (UnavailableAssets) GetRate(context.Context, string, int64) (float64, error) {
	return 0, ErrTaprootNotConfigured
}

func (UnavailableAssets) CreateAssetInvoice(context.Context, entities.AssetInvoiceRequest) (entities.Invoice, error) {
	return entities.Invoice{}, ErrTaprootNotConfigured
}
