package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

var (
	ErrorsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobboard_errors_total",
			Help: "Total number of occurred errors.",
		},
		[]string{"type"},
	)
	RequestsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobboard_requests_total",
			Help: "Total number of handled HTTP requests.",
		},
		[]string{"route", "code"},
	)
	RequestDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "jobboard_request_duration_seconds",
			Help:    "Duration of each HTTP request in seconds.",
			Buckets: []float64{0.005, 0.025, 0.1, 0.5, 1, 5},
		},
	)
	PropagationFailuresCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "jobboard_propagation_failures_total",
			Help: "Total number of failed back-reference propagation writes.",
		},
	)
	ReferenceRepairsCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "jobboard_reference_repairs_total",
			Help: "Total number of back-reference lists repaired by reconciliation.",
		},
	)
	ApplicationsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobboard_applications_total",
			Help: "Total number of application status transitions.",
		},
		[]string{"status"},
	)
)

func StartMetricsServer(port int) {

	prometheus.MustRegister(ErrorsCounter)
	prometheus.MustRegister(RequestsCounter)
	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(PropagationFailuresCounter)
	prometheus.MustRegister(ReferenceRepairsCounter)
	prometheus.MustRegister(ApplicationsCounter)

	http.Handle("/metrics", promhttp.Handler())
	go func() {
		log.Fatal(http.ListenAndServe(fmt.Sprintf(":%d", port), nil))
	}()
}
