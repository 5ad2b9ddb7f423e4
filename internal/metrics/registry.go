package metrics

import (
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ContentType is the Prometheus text exposition content type.
const ContentType = "text/plain; version=0.0.4; charset=utf-8"

var (
	requestsTotalDesc = prometheus.NewDesc("http_requests_total", "Total HTTP requests", nil, nil)
	requests2xxDesc   = prometheus.NewDesc("http_requests_2xx_total", "Total 2xx responses", nil, nil)
	requests4xxDesc   = prometheus.NewDesc("http_requests_4xx_total", "Total 4xx responses", nil, nil)
	requests5xxDesc   = prometheus.NewDesc("http_requests_5xx_total", "Total 5xx responses", nil, nil)
	startTimeDesc     = prometheus.NewDesc("process_start_time_seconds", "Start time of the process since unix epoch", nil, nil)
)

// Registry counts handled requests by status class.
// All methods are safe for concurrent use without external locking.
type Registry struct {
	total     atomic.Uint64
	status2xx atomic.Uint64
	status4xx atomic.Uint64
	status5xx atomic.Uint64
	startTime time.Time
}

// Snapshot is a point-in-time copy of the registry counters.
// Counters are read independently, so a snapshot taken during traffic may be
// momentarily inconsistent across fields.
type Snapshot struct {
	Total     uint64
	Status2xx uint64
	Status4xx uint64
	Status5xx uint64
	StartTime time.Time
}

// NewRegistry creates a registry whose start time is now.
func NewRegistry() *Registry {
	return NewRegistryAt(time.Now())
}

// NewRegistryAt creates a registry with a fixed start time.
func NewRegistryAt(start time.Time) *Registry {
	return &Registry{startTime: start}
}

// IncTotal counts a request as received.
func (r *Registry) IncTotal() {
	r.total.Add(1)
}

// Inc2xx counts a successful response.
func (r *Registry) Inc2xx() {
	r.status2xx.Add(1)
}

// Inc4xx counts a client error response.
func (r *Registry) Inc4xx() {
	r.status4xx.Add(1)
}

// Inc5xx counts a server error response.
func (r *Registry) Inc5xx() {
	r.status5xx.Add(1)
}

// ObserveStatus increments exactly one status class counter for code.
// Anything below 400 is counted as success.
func (r *Registry) ObserveStatus(code int) {
	switch {
	case code >= 500:
		r.Inc5xx()
	case code >= 400:
		r.Inc4xx()
	default:
		r.Inc2xx()
	}
}

// Snapshot returns the current counter values.
func (r *Registry) Snapshot() Snapshot {
	return Snapshot{
		Total:     r.total.Load(),
		Status2xx: r.status2xx.Load(),
		Status4xx: r.status4xx.Load(),
		Status5xx: r.status5xx.Load(),
		StartTime: r.startTime,
	}
}

// WriteTo renders the current counters in the text exposition format.
func (r *Registry) WriteTo(w io.Writer) (int64, error) {
	s := r.Snapshot()

	n, err := fmt.Fprintf(w,
		"# HELP http_requests_total Total HTTP requests\n"+
			"# TYPE http_requests_total counter\n"+
			"http_requests_total %d\n"+
			"# HELP http_requests_2xx_total Total 2xx responses\n"+
			"# TYPE http_requests_2xx_total counter\n"+
			"http_requests_2xx_total %d\n"+
			"# HELP http_requests_4xx_total Total 4xx responses\n"+
			"# TYPE http_requests_4xx_total counter\n"+
			"http_requests_4xx_total %d\n"+
			"# HELP http_requests_5xx_total Total 5xx responses\n"+
			"# TYPE http_requests_5xx_total counter\n"+
			"http_requests_5xx_total %d\n"+
			"# HELP process_start_time_seconds Start time of the process since unix epoch\n"+
			"# TYPE process_start_time_seconds gauge\n"+
			"process_start_time_seconds %d\n",
		s.Total, s.Status2xx, s.Status4xx, s.Status5xx, s.StartTime.Unix(),
	)
	return int64(n), err
}

// Describe sends the metric descriptors to the channel.
func (r *Registry) Describe(ch chan<- *prometheus.Desc) {
	ch <- requestsTotalDesc
	ch <- requests2xxDesc
	ch <- requests4xxDesc
	ch <- requests5xxDesc
	ch <- startTimeDesc
}

// Collect emits the counters as constant metrics.
func (r *Registry) Collect(ch chan<- prometheus.Metric) {
	s := r.Snapshot()
	ch <- prometheus.MustNewConstMetric(requestsTotalDesc, prometheus.CounterValue, float64(s.Total))
	ch <- prometheus.MustNewConstMetric(requests2xxDesc, prometheus.CounterValue, float64(s.Status2xx))
	ch <- prometheus.MustNewConstMetric(requests4xxDesc, prometheus.CounterValue, float64(s.Status4xx))
	ch <- prometheus.MustNewConstMetric(requests5xxDesc, prometheus.CounterValue, float64(s.Status5xx))
	ch <- prometheus.MustNewConstMetric(startTimeDesc, prometheus.GaugeValue, float64(s.StartTime.Unix()))
}
