package panel

import "github.com/prometheus/client_golang/prometheus"

type metrics struct {
	messages *prometheus.CounterVec
	clients  prometheus.Gauge
}

func newMetrics(r prometheus.Registerer) *metrics {
	m := &metrics{
		messages: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orrery_panel_messages_total",
				Help: "Control messages received from the web panel",
			},
			[]string{"type", "result"},
		),
		clients: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "orrery_panel_clients",
			Help: "Connected web panel clients",
		}),
	}
	if r != nil {
		r.MustRegister(m.messages, m.clients)
	}
	return m
}
