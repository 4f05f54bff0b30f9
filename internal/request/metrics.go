package request

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/hollowdex/steamgriddb-go/internal/apierr"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "steamgriddb_client",
			Name:      "requests_total",
			Help:      "Catalog API requests issued.",
		},
		[]string{"operation"},
	)

	requestFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "steamgriddb_client",
			Name:      "request_failures_total",
			Help:      "Catalog API requests that returned an error.",
		},
		[]string{"operation", "kind"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "steamgriddb_client",
			Name:      "request_duration_seconds",
			Help:      "Wall-clock time of catalog API requests.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
)

// kindLabel renders a failure kind as a metric label value.
func kindLabel(k apierr.Kind) string {
	switch k {
	case apierr.KindInvalidArgument:
		return "invalid_argument"
	case apierr.KindMalformedResponse:
		return "malformed_response"
	case apierr.KindAPIError:
		return "api_error"
	case apierr.KindTransport:
		return "transport"
	default:
		return "unknown"
	}
}
