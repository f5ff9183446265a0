package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GoSim-25-26J-441/smurf-hunter-backend/internal/logging"
	"github.com/GoSim-25-26J-441/smurf-hunter-backend/internal/observability"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func serve(r *gin.Engine, method, path string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zapcore.InfoLevel)

	var seen string
	r := gin.New()
	r.Use(RequestIDMiddleware(zap.New(core)))
	r.GET("/ping", func(c *gin.Context) {
		seen = logging.RequestID(c.Request.Context())
		c.Status(http.StatusNoContent)
	})

	rr := serve(r, http.MethodGet, "/ping", nil)
	rid := rr.Header().Get(RequestIDHeader)

	_, err := uuid.Parse(rid)
	require.NoError(t, err)
	assert.Equal(t, rid, seen)

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, rid, fields["request_id"])
	assert.Equal(t, "/ping", fields["path"])
	assert.EqualValues(t, http.StatusNoContent, fields["status"])
}

func TestRequestIDMiddleware_KeepsIncomingID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestIDMiddleware(nil))
	r.GET("/ping", func(c *gin.Context) {
		assert.Equal(t, "abc-123", c.GetString("request_id"))
	})

	rr := serve(r, http.MethodGet, "/ping", http.Header{RequestIDHeader: {"abc-123"}})
	assert.Equal(t, "abc-123", rr.Header().Get(RequestIDHeader))
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimit(0.001, 2))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/x", nil).Code)
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/x", nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(r, http.MethodGet, "/x", nil).Code)
}

func TestRateLimit_Disabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimit(0, 0))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 50; i++ {
		require.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/x", nil).Code)
	}
}

func TestMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := observability.NewCollector("test")
	r := gin.New()
	r.Use(Metrics(m))
	r.GET("/api/wallet/:id/sar", func(c *gin.Context) { c.Status(http.StatusOK) })

	serve(r, http.MethodGet, "/api/wallet/0x1/sar", nil)
	serve(r, http.MethodGet, "/api/wallet/0x2/sar", nil)
	serve(r, http.MethodGet, "/nowhere", nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "/api/wallet/:id/sar", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "unmatched", "404")))
}
