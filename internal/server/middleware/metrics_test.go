package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Middleware(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewMetrics(reg)

	handler := metrics.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		_, _ = w.Write([]byte("ok"))
	}))

	for _, id := range []string{"a1", "b2", "c3"} {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodDelete, "/api/v1/collections/tasks/"+id, nil))
	}
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	// id записей не порождают новые серии
	assert.Equal(t, 3.0, testutil.ToFloat64(metrics.requests.WithLabelValues(http.MethodDelete, "/api/v1/collections/tasks/{id}", "204")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.requests.WithLabelValues(http.MethodGet, "/api/v1/health", "200")))
	assert.Equal(t, 2, testutil.CollectAndCount(metrics.requests))
	assert.Equal(t, 2, testutil.CollectAndCount(metrics.duration))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var metrics *Metrics
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	handler := metrics.Middleware(next)
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	metrics.observeRateLimited("/")
}
