package websocket

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"bitcoinswitch/internal/infrastructure/logging"
	"bitcoinswitch/internal/usecase/interfaces"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ErrDeviceNotConnected = errors.New("device not connected")
	ErrHubClosed          = errors.New("websocket hub closed")
)

const (
	// Time allowed to write a message to the device
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the device
	pongWait = 60 * time.Second

	// Must be less than pongWait
	pingPeriod = (pongWait * 9) / 10

	maxMessageSize = 512
	sendBuffer     = 16
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Hub keeps the websocket connections of devices and delivers activation payloads to them.
//
// A device may hold several connections; a payload goes to all of them.
type Hub struct {
	mu      sync.RWMutex
	devices map[string]map[*Client]struct{}
	closed  bool
	gauge   prometheus.Gauge
	log     logging.Logger
}

var _ interfaces.IActivationSink = (*Hub)(nil)

// Client is one device connection.
type Client struct {
	hub      *Hub
	deviceID string
	conn     *websocket.Conn
	send     chan []byte
	log      *logging.Entry
}

func NewHub(log logging.Logger, connections prometheus.Gauge) *Hub {
	if log == nil {
		log = logging.NewLogger()
	}
	return &Hub{
		devices: make(map[string]map[*Client]struct{}),
		gauge:   connections,
		log:     log,
	}
}

// Send queues payload on every connection of the device.
func (h *Hub) Send(ctx context.Context, deviceID, payload string) error {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.closed {
		return ErrHubClosed
	}
	conns := h.devices[deviceID]
	if len(conns) == 0 {
		return ErrDeviceNotConnected
	}

	delivered := 0
	for c := range conns {
		select {
		case c.send <- []byte(payload):
			delivered++
		case <-ctx.Done():
			return ctx.Err()
		default:
			c.log.Warn("[websocket][hub] send buffer full, skipping connection")
		}
	}
	if delivered == 0 {
		return ErrDeviceNotConnected
	}
	h.log.WithFields(logging.Fields{"device_id": deviceID, "connections": delivered}).Debug("[websocket][hub] payload queued")
	return nil
}

// Connected reports how many connections the device holds.
func (h *Hub) Connected(deviceID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.devices[deviceID])
}

// ServeWS upgrades the request and registers the connection for deviceID.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, deviceID string) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.WithError(err).Error("[websocket][hub] upgrade failed")
		return
	}

	client := &Client{
		hub:      h,
		deviceID: deviceID,
		conn:     conn,
		send:     make(chan []byte, sendBuffer),
		log:      h.log.WithField("device_id", deviceID),
	}
	if !h.register(client) {
		_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"))
		_ = conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}

// Close disconnects every device. Later Send calls fail with ErrHubClosed.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for _, conns := range h.devices {
		for c := range conns {
			close(c.send)
		}
	}
	h.devices = make(map[string]map[*Client]struct{})
	h.setGauge()
}

func (h *Hub) register(c *Client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	conns, ok := h.devices[c.deviceID]
	if !ok {
		conns = make(map[*Client]struct{})
		h.devices[c.deviceID] = conns
	}
	conns[c] = struct{}{}
	h.setGauge()
	c.log.WithField("connections", len(conns)).Info("[websocket][hub] device connected")
	return true
}

func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	conns, ok := h.devices[c.deviceID]
	if !ok {
		return
	}
	if _, ok := conns[c]; !ok {
		return
	}
	delete(conns, c)
	close(c.send)
	if len(conns) == 0 {
		delete(h.devices, c.deviceID)
	}
	h.setGauge()
	c.log.Info("[websocket][hub] device disconnected")
}

// setGauge must be called with h.mu held.
func (h *Hub) setGauge() {
	if h.gauge == nil {
		return
	}
	total := 0
	for _, conns := range h.devices {
		total += len(conns)
	}
	h.gauge.Set(float64(total))
}

// readPump only keeps the connection alive; devices do not send commands.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister(c)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.log.WithError(err).Warn("[websocket][hub] connection error")
			}
			return
		}
	}
}

// writePump writes each payload as its own text frame.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				c.log.WithError(err).Warn("[websocket][hub] write failed")
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
