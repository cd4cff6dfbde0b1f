// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics owns the prometheus registry of the server and the
// collectors recorded by the HTTP layer, the authentication workflows, and
// the notifiers.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "account_auth"

// Outcome label values.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Metrics holds every collector of the service, registered on a private
// registry so tests can create as many instances as they like.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	WorkflowsTotal      *prometheus.CounterVec
	NotificationsTotal  *prometheus.CounterVec
	NotificationLatency *prometheus.HistogramVec
}

// New creates the registry with the Go and process collectors plus the
// service collectors.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m := &Metrics{
		registry: registry,
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests by route, method and status code",
			},
			[]string{"route", "method", "code"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"route", "method"},
		),
		WorkflowsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "workflows_total",
				Help:      "Total number of authentication workflow runs by workflow and outcome",
			},
			[]string{"workflow", "outcome"},
		),
		NotificationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "notifications_total",
				Help:      "Total number of verification emails by transport and outcome",
			},
			[]string{"transport", "outcome"},
		),
		NotificationLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "notification_duration_seconds",
				Help:      "Verification email delivery duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"transport"},
		),
	}

	registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.WorkflowsTotal,
		m.NotificationsTotal,
		m.NotificationLatency,
	)

	return m
}

// Handler serves the registry in the prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) ObserveHTTPRequest(route, method string, code int, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(route, method, strconv.Itoa(code)).Inc()
	m.HTTPRequestDuration.WithLabelValues(route, method).Observe(duration.Seconds())
}

// ObserveWorkflow counts one run of workflow; a nil err is a success.
func (m *Metrics) ObserveWorkflow(workflow string, err error) {
	m.WorkflowsTotal.WithLabelValues(workflow, outcome(err)).Inc()
}

// ObserveNotification counts one delivery attempt and records its latency.
func (m *Metrics) ObserveNotification(transport string, err error, duration time.Duration) {
	m.NotificationsTotal.WithLabelValues(transport, outcome(err)).Inc()
	m.NotificationLatency.WithLabelValues(transport).Observe(duration.Seconds())
}

func outcome(err error) string {
	if err != nil {
		return OutcomeFailure
	}
	return OutcomeSuccess
}
