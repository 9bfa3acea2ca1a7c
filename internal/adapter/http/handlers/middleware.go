package handlers

import (
	"errors"
	"net/http"
	"strings"

	"bitcoinswitch/internal/domain/entities"
	"bitcoinswitch/internal/infrastructure/logging"
	"bitcoinswitch/internal/infrastructure/payments"
	"bitcoinswitch/internal/usecase/interfaces"
	"bitcoinswitch/pkg"

	"github.com/gin-gonic/gin"
)

const (
	HeaderAPIKey     = "X-Api-Key"
	walletContextKey = "bitcoinswitch.wallet"
)

var (
	errMissingAPIKey = pkg.NewDomainErrorSimple("MISSING_API_KEY", "X-Api-Key header is required", http.StatusUnauthorized)
	errInvalidAPIKey = pkg.NewDomainErrorSimple("INVALID_API_KEY", "Invalid wallet key", http.StatusUnauthorized)
)

// RequireWallet resolves the X-Api-Key header to a wallet and stores it on the context.
// Owner endpoints read it back with walletFromContext.
func RequireWallet(resolver interfaces.IWalletResolver, log logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := strings.TrimSpace(c.GetHeader(HeaderAPIKey))
		if key == "" {
			c.AbortWithStatusJSON(errMissingAPIKey.HTTPStatus, errMissingAPIKey.ToHTTPError())
			return
		}

		wallet, err := resolver.ResolveWallet(c.Request.Context(), key)
		if err != nil {
			if errors.Is(err, payments.ErrInvalidWalletKey) {
				c.AbortWithStatusJSON(errInvalidAPIKey.HTTPStatus, errInvalidAPIKey.ToHTTPError())
				return
			}
			log.WithError(err).Error("[http][auth] wallet lookup failed")
			appErr := pkg.NewDomainError("WALLET_UNAVAILABLE", "Wallet lookup failed", err, http.StatusBadGateway)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		if wallet.ID == "" {
			c.AbortWithStatusJSON(errInvalidAPIKey.HTTPStatus, errInvalidAPIKey.ToHTTPError())
			return
		}

		wallet.InvoiceKey = key
		c.Set(walletContextKey, wallet)
		c.Next()
	}
}

func walletFromContext(c *gin.Context) (entities.Wallet, bool) {
	v, ok := c.Get(walletContextKey)
	if !ok {
		return entities.Wallet{}, false
	}
	wallet, ok := v.(entities.Wallet)
	return wallet, ok && wallet.ID != ""
}
