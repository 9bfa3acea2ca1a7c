package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	request "bitcoinswitch/internal/adapter/http/dto/request"
	response "bitcoinswitch/internal/adapter/http/dto/response"
	"bitcoinswitch/internal/usecase"
	"bitcoinswitch/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidDevicePayload = pkg.NewDomainErrorSimple("INVALID_DEVICE_INPUT", "Invalid device payload", http.StatusBadRequest)
	errInvalidPin           = pkg.NewDomainErrorSimple("INVALID_PIN", "Invalid pin", http.StatusBadRequest)
	errNoWallet             = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Wallet not authenticated", http.StatusUnauthorized)
)

// DeviceHandler serves the owner-facing switch registry. Every route sits behind
// RequireWallet.
type DeviceHandler struct {
	usecase usecase.IDeviceUseCase
}

func NewDeviceHandler(uc usecase.IDeviceUseCase) *DeviceHandler {
	return &DeviceHandler{usecase: uc}
}

// CreateDevice godoc
// @Summary Register a device
// @Tags devices
// @Accept json
// @Produce json
// @Param X-Api-Key header string true "wallet admin or invoice key"
// @Param device body request.DeviceRequest true "device"
// @Success 201 {object} response.DeviceResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /devices [post]
func (h *DeviceHandler) CreateDevice(c *gin.Context) {
	wallet, ok := walletFromContext(c)
	if !ok {
		c.JSON(errNoWallet.HTTPStatus, errNoWallet.ToHTTPError())
		return
	}

	var payload request.DeviceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDevicePayload.HTTPStatus, errInvalidDevicePayload.ToHTTPError())
		return
	}

	device, err := h.usecase.Create(c.Request.Context(), wallet, payload.ToInput())
	if err != nil {
		appErr := mapDeviceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromDevice(device))
}

// ListDevices godoc
// @Summary List the wallet's devices
// @Tags devices
// @Produce json
// @Param X-Api-Key header string true "wallet key"
// @Success 200 {array} response.DeviceResponse
// @Router /devices [get]
func (h *DeviceHandler) ListDevices(c *gin.Context) {
	wallet, ok := walletFromContext(c)
	if !ok {
		c.JSON(errNoWallet.HTTPStatus, errNoWallet.ToHTTPError())
		return
	}

	devices, err := h.usecase.ListByWallet(c.Request.Context(), wallet)
	if err != nil {
		appErr := mapDeviceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDevices(devices))
}

// GetDevice godoc
// @Summary Get a device
// @Tags devices
// @Produce json
// @Param X-Api-Key header string true "wallet key"
// @Param device_id path string true "device id"
// @Success 200 {object} response.DeviceResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /devices/{device_id} [get]
func (h *DeviceHandler) GetDevice(c *gin.Context) {
	wallet, ok := walletFromContext(c)
	if !ok {
		c.JSON(errNoWallet.HTTPStatus, errNoWallet.ToHTTPError())
		return
	}

	device, err := h.usecase.GetByID(c.Request.Context(), wallet, c.Param("device_id"))
	if err != nil {
		appErr := mapDeviceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDevice(device))
}

// UpdateDevice godoc
// @Summary Replace a device configuration
// @Tags devices
// @Accept json
// @Produce json
// @Param X-Api-Key header string true "wallet key"
// @Param device_id path string true "device id"
// @Param device body request.DeviceRequest true "device"
// @Success 200 {object} response.DeviceResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Router /devices/{device_id} [put]
func (h *DeviceHandler) UpdateDevice(c *gin.Context) {
	wallet, ok := walletFromContext(c)
	if !ok {
		c.JSON(errNoWallet.HTTPStatus, errNoWallet.ToHTTPError())
		return
	}

	var payload request.DeviceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDevicePayload.HTTPStatus, errInvalidDevicePayload.ToHTTPError())
		return
	}

	device, err := h.usecase.Update(c.Request.Context(), wallet, c.Param("device_id"), payload.ToInput())
	if err != nil {
		appErr := mapDeviceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDevice(device))
}

// DeleteDevice godoc
// @Summary Delete a device and its payment attempts
// @Tags devices
// @Param X-Api-Key header string true "wallet key"
// @Param device_id path string true "device id"
// @Success 204
// @Failure 404 {object} pkg.HTTPError
// @Router /devices/{device_id} [delete]
func (h *DeviceHandler) DeleteDevice(c *gin.Context) {
	wallet, ok := walletFromContext(c)
	if !ok {
		c.JSON(errNoWallet.HTTPStatus, errNoWallet.ToHTTPError())
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), wallet, c.Param("device_id")); err != nil {
		appErr := mapDeviceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// TriggerDevice godoc
// @Summary Activate a switch without a payment
// @Tags devices
// @Produce json
// @Param X-Api-Key header string true "wallet key"
// @Param device_id path string true "device id"
// @Param pin path int true "GPIO pin"
// @Success 200 {object} response.TriggerResponse
// @Failure 404 {object} pkg.HTTPError
// @Failure 502 {object} pkg.HTTPError
// @Router /devices/{device_id}/trigger/{pin} [put]
func (h *DeviceHandler) TriggerDevice(c *gin.Context) {
	wallet, ok := walletFromContext(c)
	if !ok {
		c.JSON(errNoWallet.HTTPStatus, errNoWallet.ToHTTPError())
		return
	}

	pin, err := strconv.Atoi(strings.TrimSpace(c.Param("pin")))
	if err != nil || pin < 0 {
		c.JSON(errInvalidPin.HTTPStatus, errInvalidPin.ToHTTPError())
		return
	}

	deviceID := c.Param("device_id")
	payload, err := h.usecase.Trigger(c.Request.Context(), wallet, deviceID, pin)
	if err != nil {
		appErr := mapDeviceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.TriggerResponse{DeviceID: deviceID, Payload: payload})
}

func mapDeviceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDevice), errors.Is(err, usecase.ErrInvalidDeviceID), errors.Is(err, usecase.ErrInvalidWallet):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDeviceNotFound):
		return pkg.NewDomainErrorSimple("DEVICE_NOT_FOUND", "Device not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSwitchNotFound):
		return pkg.NewDomainErrorSimple("SWITCH_NOT_FOUND", "Switch not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTriggerFailed):
		return pkg.NewDomainError("DEVICE_UNREACHABLE", "Device did not accept the activation", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
