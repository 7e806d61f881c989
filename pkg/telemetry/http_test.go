package telemetry

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestGinMiddlewareCountsRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)

	registry := prometheus.NewRegistry()
	metrics := newHTTPMetrics(registry)

	router := gin.New()
	router.Use(GinMiddleware(metrics))
	router.GET("/api/customers/:id", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/customers/42", nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
	}

	got := testutil.ToFloat64(metrics.requests.WithLabelValues("/api/customers/:id", http.MethodGet, "200"))
	if got != 3 {
		t.Fatalf("expected 3 requests recorded, got %v", got)
	}
}

func TestGinMiddlewareUnmatchedRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)

	registry := prometheus.NewRegistry()
	metrics := newHTTPMetrics(registry)

	router := gin.New()
	router.Use(GinMiddleware(metrics))

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	got := testutil.ToFloat64(metrics.requests.WithLabelValues("unmatched", http.MethodGet, "404"))
	if got != 1 {
		t.Fatalf("expected unmatched request recorded, got %v", got)
	}
}

func TestNilMetricsPassthrough(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(GinMiddleware(nil))
	router.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
}
