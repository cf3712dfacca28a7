// Package metrics FAQ排序和HTTP接口的Prometheus指标
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

// 指标名称
const (
	MetricRankRequestsTotal = "faq_rank_requests_total"
	MetricRankDuration      = "faq_rank_duration_seconds"
	MetricRankResults       = "faq_rank_results"
	MetricCatalogEntries    = "faq_catalog_entries"
	MetricHTTPRequestsTotal = "http_requests_total"
)

// 标签取值
const (
	SourcePost    = "post"
	SourceContent = "content"

	StatusSuccess = "success"
	StatusFailure = "failure"

	KindFAQ  = "faq"
	KindPost = "post"
)

// Metrics 服务指标集合，方法可并发调用
// 接收者为 nil 时不记录任何指标
type Metrics struct {
	rankRequests   *prometheus.CounterVec
	rankDuration   *prometheus.HistogramVec
	rankResults    prometheus.Histogram
	catalogEntries *prometheus.GaugeVec
	httpRequests   *prometheus.CounterVec
}

// NewMetrics 创建指标，需调用 Register 注册
func NewMetrics() *Metrics {
	return &Metrics{
		rankRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricRankRequestsTotal,
				Help: "Total number of FAQ ranking requests by source and status",
			},
			[]string{"source", "status"},
		),
		rankDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    MetricRankDuration,
				Help:    "Histogram of FAQ ranking duration in seconds by source",
				Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
			},
			[]string{"source"},
		),
		rankResults: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    MetricRankResults,
				Help:    "Number of FAQ entries returned per ranking request",
				Buckets: []float64{0, 1, 2, 3, 5, 10, 20, 50},
			},
		),
		catalogEntries: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: MetricCatalogEntries,
				Help: "Number of entries in the loaded catalog by kind",
			},
			[]string{"kind"},
		),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricHTTPRequestsTotal,
				Help: "Total number of HTTP requests by route pattern, method and status code",
			},
			[]string{"route", "method", "status"},
		),
	}
}

// Collectors 返回全部指标
func (m *Metrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.rankRequests,
		m.rankDuration,
		m.rankResults,
		m.catalogEntries,
		m.httpRequests,
	}
}

// Register 将全部指标注册到 reg
func (m *Metrics) Register(reg prometheus.Registerer) error {
	for _, c := range m.Collectors() {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// ObserveRank 记录一次排序调用
func (m *Metrics) ObserveRank(source string, elapsed time.Duration, results int, err error) {
	if m == nil {
		return
	}
	status := StatusSuccess
	if err != nil {
		status = StatusFailure
	}
	m.rankRequests.WithLabelValues(source, status).Inc()
	m.rankDuration.WithLabelValues(source).Observe(elapsed.Seconds())
	if err == nil {
		m.rankResults.Observe(float64(results))
	}
}

// SetCatalogSize 记录已加载目录的条目数
func (m *Metrics) SetCatalogSize(faqs, posts int) {
	if m == nil {
		return
	}
	m.catalogEntries.WithLabelValues(KindFAQ).Set(float64(faqs))
	m.catalogEntries.WithLabelValues(KindPost).Set(float64(posts))
}

// Middleware 按 chi 路由模式统计请求数，路径参数不进入标签
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		if m == nil {
			return
		}
		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.httpRequests.WithLabelValues(route, r.Method, strconv.Itoa(status)).Inc()
	})
}
