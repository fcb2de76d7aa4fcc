package monitoring

import (
	"strconv"
	"sync"
	"time"

	"luminax_client/internal/state"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	ActionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_actions_total",
			Help: "Actions dispatched into the state container",
		},
		[]string{"action"},
	)

	CartItems = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "cart_items",
			Help: "Items currently in the cart",
		},
	)

	NotificationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifications_total",
			Help: "Notifications sent to the presentation layer",
		},
		[]string{"kind"},
	)

	SessionDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "session_operation_duration_seconds",
			Help:    "Duration of simulated login/signup round trips",
			Buckets: []float64{0.1, 0.5, 1, 2, 5},
		},
		[]string{"operation", "outcome"},
	)
)

var initOnce sync.Once

func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(RequestCounter)
		prometheus.MustRegister(RequestDuration)
		prometheus.MustRegister(ActionsTotal)
		prometheus.MustRegister(CartItems)
		prometheus.MustRegister(NotificationsTotal)
		prometheus.MustRegister(SessionDuration)
	})
}

// ObserveStore 统计每个动作并跟踪购物车大小
func ObserveStore(store *state.Store) func() {
	CartItems.Set(float64(len(store.State().Cart)))
	return store.Subscribe(func(prev, next state.State, a state.Action) {
		ActionsTotal.WithLabelValues(a.Name()).Inc()
		CartItems.Set(float64(len(next.Cart)))
	})
}

func ObserveSession(operation, outcome string, start time.Time) {
	SessionDuration.WithLabelValues(operation, outcome).Observe(time.Since(start).Seconds())
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		status := c.Writer.Status()

		RequestCounter.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			strconv.Itoa(status),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
		).Observe(duration)
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
