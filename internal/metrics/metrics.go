package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	// accepted reports per incident type
	ReportsSubmitted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "studentsafe_reports_submitted_total",
			Help: "Total reports stored",
		},
		[]string{"type"},
	)

	// rejected or failed submissions, labelled validation or store
	ReportSubmitFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "studentsafe_report_submit_failures_total",
			Help: "Total report submissions that did not store a report",
		},
		[]string{"reason"},
	)

	ReportFetchFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "studentsafe_report_fetch_failures_total",
			Help: "Total recent report fetches that failed at the store",
		},
	)
)

// NewRegistry returns a registry with the service collectors and the Go
// runtime collectors registered.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		ReportsSubmitted,
		ReportSubmitFailures,
		ReportFetchFailures,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}
