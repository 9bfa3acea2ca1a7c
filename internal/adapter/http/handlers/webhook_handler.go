package handlers

import (
	"crypto/subtle"
	"errors"
	"net/http"

	request "bitcoinswitch/internal/adapter/http/dto/request"
	response "bitcoinswitch/internal/adapter/http/dto/response"
	"bitcoinswitch/internal/domain/entities"
	"bitcoinswitch/internal/infrastructure/listener"
	"bitcoinswitch/internal/infrastructure/logging"
	"bitcoinswitch/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidWebhookPayload = pkg.NewDomainErrorSimple("INVALID_WEBHOOK_PAYLOAD", "Invalid paid invoice payload", http.StatusBadRequest)
	errWebhookForbidden      = pkg.NewDomainErrorSimple("FORBIDDEN", "Invalid webhook token", http.StatusForbidden)
	errListenerUnavailable   = pkg.NewDomainErrorSimple("LISTENER_STOPPED", "Not accepting confirmations", http.StatusServiceUnavailable)
)

// ConfirmationQueue accepts payment confirmations for asynchronous settlement.
type ConfirmationQueue interface {
	Enqueue(c entities.PaymentConfirmation) error
}

// WebhookHandler receives paid-invoice notifications from the payment node.
type WebhookHandler struct {
	queue  ConfirmationQueue
	secret string
	log    logging.Logger
}

// NewWebhookHandler builds the handler. An empty secret disables the token check.
func NewWebhookHandler(queue ConfirmationQueue, secret string, log logging.Logger) *WebhookHandler {
	if log == nil {
		log = logging.NewLogger()
	}
	return &WebhookHandler{queue: queue, secret: secret, log: log}
}

// PaidInvoice godoc
// @Summary Paid invoice notification
// @Tags webhooks
// @Accept json
// @Produce json
// @Param token query string false "shared webhook secret"
// @Param invoice body request.PaidInvoiceRequest true "paid invoice"
// @Success 202 {object} response.StatusResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 403 {object} pkg.HTTPError
// @Router /webhooks/invoice [post]
func (h *WebhookHandler) PaidInvoice(c *gin.Context) {
	if h.secret != "" && subtle.ConstantTimeCompare([]byte(c.Query("token")), []byte(h.secret)) != 1 {
		c.JSON(errWebhookForbidden.HTTPStatus, errWebhookForbidden.ToHTTPError())
		return
	}

	var payload request.PaidInvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWebhookPayload.HTTPStatus, errInvalidWebhookPayload.ToHTTPError())
		return
	}

	confirmation, ok := payload.ToPaidInvoice().ToConfirmation()
	if !ok {
		// Not one of ours; acknowledge so the node does not retry.
		h.log.WithField("payment_hash", payload.PaymentHash).Debug("[webhook][handler] ignoring foreign invoice")
		c.JSON(http.StatusAccepted, response.NewStatusOK())
		return
	}

	if err := h.queue.Enqueue(confirmation); err != nil {
		if errors.Is(err, listener.ErrListenerStopped) {
			c.JSON(errListenerUnavailable.HTTPStatus, errListenerUnavailable.ToHTTPError())
			return
		}
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusAccepted, response.NewStatusOK())
}
