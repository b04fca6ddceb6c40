// Package metrics owns the Prometheus registry served at /metrics.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics is nil-safe: every recorder on a nil *Metrics does nothing.
type Metrics struct {
	registry     *prometheus.Registry
	contact      *prometheus.CounterVec
	applications *prometheus.CounterVec
	uploads      *prometheus.CounterVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		contact: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "site_contact_submissions_total",
			Help: "Contact form submissions by store and email outcome.",
		}, []string{"stored", "emailed"}),
		applications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "site_application_submissions_total",
			Help: "Job application submissions by result.",
		}, []string{"result"}),
		uploads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "site_uploads_total",
			Help: "Attachment uploads by kind and result.",
		}, []string{"kind", "result"}),
	}
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.contact,
		m.applications,
		m.uploads,
	)
	return m
}

func (m *Metrics) ContactSubmitted(stored, emailed bool) {
	if m == nil {
		return
	}
	m.contact.WithLabelValues(strconv.FormatBool(stored), strconv.FormatBool(emailed)).Inc()
}

func (m *Metrics) ApplicationSubmitted(result string) {
	if m == nil {
		return
	}
	m.applications.WithLabelValues(result).Inc()
}

func (m *Metrics) Upload(kind string, ok bool) {
	if m == nil {
		return
	}
	result := "ok"
	if !ok {
		result = "error"
	}
	m.uploads.WithLabelValues(kind, result).Inc()
}

func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
