package routes

import (
	"bitcoinswitch/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPing     = "/ping"
	PathDevices  = "/devices"
	PathLNURL    = "/lnurl"
	PathWebhooks = "/webhooks"
	PathSockets  = "/ws"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, handlers.Ping)
}

// Owner endpoints, authenticated with the wallet key.
func addDeviceRoutes(rg *gin.RouterGroup, auth gin.HandlerFunc, deviceHandler *handlers.DeviceHandler) {
	devices := rg.Group(PathDevices, auth)
	{
		devices.POST("", deviceHandler.CreateDevice)
		devices.GET("", deviceHandler.ListDevices)
		devices.GET("/:device_id", deviceHandler.GetDevice)
		devices.PUT("/:device_id", deviceHandler.UpdateDevice)
		devices.DELETE("/:device_id", deviceHandler.DeleteDevice)
		devices.PUT("/:device_id/trigger/:pin", deviceHandler.TriggerDevice)
	}
}

// Public endpoints hit by payer wallets, the payment node and the switch boxes.
func addSwitchRoutes(
	rg *gin.RouterGroup,
	lnurlHandler *handlers.LNURLHandler,
	webhookHandler *handlers.WebhookHandler,
	websocketHandler *handlers.WebsocketHandler,
) {
	lnurl := rg.Group(PathLNURL)
	{
		lnurl.GET("/:device_id", lnurlHandler.PayRequest)
		lnurl.GET("/:device_id/cb/:attempt_id", lnurlHandler.Callback)
	}

	rg.POST(PathWebhooks+"/invoice", webhookHandler.PaidInvoice)
	rg.GET(PathSockets+"/:device_id", websocketHandler.Connect)
}
