package handlers

import (
	"errors"
	"net/http"

	request "bitcoinswitch/internal/adapter/http/dto/request"
	response "bitcoinswitch/internal/adapter/http/dto/response"
	"bitcoinswitch/internal/infrastructure/logging"
	"bitcoinswitch/internal/infrastructure/metrics"
	"bitcoinswitch/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	kindLightning = "lightning"
	kindAsset     = "asset"
)

// LNURLHandler serves the public LNURL-pay endpoints scanned by payer wallets.
//
// Errors use the LNURL envelope {"status":"ERROR","reason":...} instead of pkg.AppError
// so wallets can show the reason to the payer.
type LNURLHandler struct {
	usecase usecase.IQuoteUseCase
	metrics *metrics.Metrics
	log     logging.Logger
}

func NewLNURLHandler(uc usecase.IQuoteUseCase, m *metrics.Metrics, log logging.Logger) *LNURLHandler {
	if log == nil {
		log = logging.NewLogger()
	}
	return &LNURLHandler{usecase: uc, metrics: m, log: log}
}

// PayRequest godoc
// @Summary LNURL-pay parameters of a switch
// @Tags lnurl
// @Produce json
// @Param device_id path string true "device id"
// @Param pin query int true "GPIO pin"
// @Param amount query number true "switch price in the device currency"
// @Param duration query int true "activation duration in ms"
// @Param variable query bool false "variable time"
// @Param comment query bool false "comment enabled"
// @Success 200 {object} response.PayRequestResponse
// @Failure 400 {object} response.LNURLError
// @Failure 404 {object} response.LNURLError
// @Router /lnurl/{device_id} [get]
func (h *LNURLHandler) PayRequest(c *gin.Context) {
	var q request.LNURLPayQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, response.NewLNURLError("Invalid pin or duration format"))
		return
	}
	if c.Query("pin") == "" || c.Query("amount") == "" || c.Query("duration") == "" {
		c.JSON(http.StatusBadRequest, response.NewLNURLError("Invalid switch parameters"))
		return
	}

	res, err := h.usecase.RequestQuote(c.Request.Context(), usecase.QuoteCommand{
		DeviceID: c.Param("device_id"),
		Pin:      q.Pin,
		Amount:   q.Amount,
		Duration: q.Duration,
		Variable: q.Variable,
		Comment:  q.Comment,
	})
	if err != nil {
		status, reason := mapLNURLError(err)
		if status >= http.StatusInternalServerError {
			h.log.WithError(err).WithField("device_id", c.Param("device_id")).Error("[lnurl][handler] quote failed")
		}
		c.JSON(status, response.NewLNURLError(reason))
		return
	}

	kind := kindLightning
	if res.AcceptsAssets {
		kind = kindAsset
	}
	if h.metrics != nil {
		h.metrics.Quotes.WithLabelValues(kind).Inc()
	}

	c.JSON(http.StatusOK, response.FromQuote(res))
}

// Callback godoc
// @Summary LNURL-pay callback, issues the invoice
// @Tags lnurl
// @Produce json
// @Param device_id path string true "device id"
// @Param attempt_id path string true "payment attempt id"
// @Param amount query int true "amount in msat"
// @Param comment query string false "payer comment or device password"
// @Param asset_id query string false "Taproot asset id"
// @Param variable query bool false "variable time"
// @Success 200 {object} response.InvoiceResponse
// @Failure 400 {object} response.LNURLError
// @Failure 404 {object} response.LNURLError
// @Router /lnurl/{device_id}/cb/{attempt_id} [get]
func (h *LNURLHandler) Callback(c *gin.Context) {
	var q request.LNURLCallbackQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, response.NewLNURLError("Invalid amount format"))
		return
	}
	if q.Amount == 0 {
		c.JSON(http.StatusBadRequest, response.NewLNURLError("No amount provided"))
		return
	}

	res, err := h.usecase.RequestInvoice(c.Request.Context(), usecase.InvoiceCommand{
		DeviceID:   c.Param("device_id"),
		AttemptID:  c.Param("attempt_id"),
		AmountMsat: q.Amount,
		Comment:    q.Comment,
		AssetID:    q.AssetID,
		Variable:   q.Variable,
	})
	kind := kindLightning
	if res.IsTaproot || q.AssetID != "" {
		kind = kindAsset
	}
	if err != nil {
		h.recordInvoice(kind, "error")
		status, reason := mapLNURLError(err)
		if status >= http.StatusInternalServerError {
			h.log.WithError(err).WithField("attempt_id", c.Param("attempt_id")).Error("[lnurl][handler] invoice failed")
		}
		c.JSON(status, response.NewLNURLError(reason))
		return
	}
	h.recordInvoice(kind, "issued")

	c.JSON(http.StatusOK, response.FromInvoice(res))
}

func (h *LNURLHandler) recordInvoice(kind, outcome string) {
	if h.metrics == nil {
		return
	}
	h.metrics.Invoices.WithLabelValues(kind, outcome).Inc()
}

func mapLNURLError(err error) (int, string) {
	switch {
	case errors.Is(err, usecase.ErrDeviceNotFound):
		return http.StatusNotFound, "Bitcoin Switch not found"
	case errors.Is(err, usecase.ErrAttemptNotFound):
		return http.StatusNotFound, "Payment not found"
	case errors.Is(err, usecase.ErrSwitchNotFound):
		return http.StatusNotFound, "Switch not found"
	case errors.Is(err, usecase.ErrDeviceDisabled):
		return http.StatusBadRequest, "Bitcoin Switch is disabled"
	case errors.Is(err, usecase.ErrInvalidSwitchParameters):
		return http.StatusBadRequest, "Invalid switch parameters"
	case errors.Is(err, usecase.ErrAlreadyProcessed):
		return http.StatusBadRequest, "Payment already processed"
	case errors.Is(err, usecase.ErrInvalidAmount):
		return http.StatusBadRequest, "No amount provided"
	case errors.Is(err, usecase.ErrAmountOutOfRange):
		return http.StatusBadRequest, "Amount out of range"
	case errors.Is(err, usecase.ErrCommentTooLong):
		return http.StatusBadRequest, "Comment too long"
	case errors.Is(err, usecase.ErrQuoteExpired):
		return http.StatusBadRequest, "Price quote has expired. Please scan the QR code again for current pricing."
	case errors.Is(err, usecase.ErrQuoteOutOfTolerance):
		return http.StatusBadRequest, "Exchange rate has changed significantly. Please scan the QR code again for current pricing."
	case errors.Is(err, usecase.ErrPriceUnavailable), errors.Is(err, usecase.ErrRateUnavailable):
		return http.StatusServiceUnavailable, "Price unavailable, try again later"
	case errors.Is(err, usecase.ErrInvoiceUnavailable):
		return http.StatusBadGateway, "Failed to create invoice"
	default:
		return http.StatusInternalServerError, "Internal error"
	}
}
