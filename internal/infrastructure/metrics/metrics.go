package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors of the bitcoinswitch service.
type Metrics struct {
	Quotes            *prometheus.CounterVec
	Invoices          *prometheus.CounterVec
	Settlements       *prometheus.CounterVec
	Dispatches        *prometheus.CounterVec
	RateCache         *prometheus.CounterVec
	ConfirmationQueue prometheus.Gauge
	HubConnections    prometheus.Gauge
}

// New creates the collectors and registers them on reg. A nil reg skips registration,
// which tests use to get isolated collectors.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Quotes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bitcoinswitch_quotes_total",
			Help: "LNURL pay requests answered, by payment kind",
		}, []string{"kind"}),
		Invoices: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bitcoinswitch_invoices_total",
			Help: "Invoices issued from the LNURL callback",
		}, []string{"kind", "outcome"}),
		Settlements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bitcoinswitch_settlements_total",
			Help: "Payment confirmations processed, by outcome",
		}, []string{"outcome"}),
		Dispatches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bitcoinswitch_dispatches_total",
			Help: "Activation payloads sent to devices",
		}, []string{"outcome"}),
		RateCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bitcoinswitch_rate_cache_total",
			Help: "Rate cache lookups by result",
		}, []string{"result"}),
		ConfirmationQueue: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "bitcoinswitch_confirmation_queue_depth",
			Help: "Confirmations waiting to be settled",
		}),
		HubConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "bitcoinswitch_device_connections",
			Help: "Devices connected to the websocket hub",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.Quotes, m.Invoices, m.Settlements, m.Dispatches, m.RateCache, m.ConfirmationQueue, m.HubConnections)
	}
	return m
}
