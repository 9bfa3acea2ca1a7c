package handlers

import (
	"net/http"

	"bitcoinswitch/internal/usecase/interfaces"
	"bitcoinswitch/pkg"

	"github.com/gin-gonic/gin"
)

var errUnknownDevice = pkg.NewDomainErrorSimple("DEVICE_NOT_FOUND", "Device not found", http.StatusNotFound)

// DeviceSocket upgrades a device connection and keeps it registered until it closes.
type DeviceSocket interface {
	ServeWS(w http.ResponseWriter, r *http.Request, deviceID string)
}

// WebsocketHandler is the endpoint switch boxes keep open to receive activations.
type WebsocketHandler struct {
	socket  DeviceSocket
	devices interfaces.IDeviceRepository
}

func NewWebsocketHandler(socket DeviceSocket, devices interfaces.IDeviceRepository) *WebsocketHandler {
	return &WebsocketHandler{socket: socket, devices: devices}
}

// Connect godoc
// @Summary Device websocket
// @Description Devices receive "pin-duration[-comment]" text frames on this connection.
// @Tags devices
// @Param device_id path string true "device id"
// @Success 101
// @Failure 404 {object} pkg.HTTPError
// @Router /ws/{device_id} [get]
func (h *WebsocketHandler) Connect(c *gin.Context) {
	deviceID := c.Param("device_id")
	device, err := h.devices.GetByID(c.Request.Context(), deviceID)
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if device.ID == "" {
		c.JSON(errUnknownDevice.HTTPStatus, errUnknownDevice.ToHTTPError())
		return
	}

	h.socket.ServeWS(c.Writer, c.Request, device.ID)
}
