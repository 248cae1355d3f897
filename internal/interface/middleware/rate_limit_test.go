package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farhanadit/go-user-api/internal/interface/middleware"
)

func testContext(remoteAddr string, headers map[string]string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/users", nil)
	c.Request.RemoteAddr = remoteAddr
	for k, v := range headers {
		c.Request.Header.Set(k, v)
	}
	return c, rec
}

func TestKeyByIP(t *testing.T) {
	c, _ := testContext("203.0.113.9:4455", nil)
	key := middleware.KeyByIP()(c)
	assert.Equal(t, "rl:ip:203.0.113.9", key)
}

func TestKeyByIPPrefersRealIP(t *testing.T) {
	c, _ := testContext("203.0.113.9:4455", nil)
	c.Set("real_ip", "198.51.100.7")
	key := middleware.KeyByIP()(c)
	assert.Equal(t, "rl:ip:198.51.100.7", key)
}

func TestKeyByIPAndPath(t *testing.T) {
	c, _ := testContext("203.0.113.9:4455", nil)
	key := middleware.KeyByIPAndPath()(c)
	assert.Equal(t, "rl:path:/api/users:ip:203.0.113.9", key)
}

func TestAllowPrivateIP(t *testing.T) {
	allow := middleware.AllowPrivateIP()

	tests := []struct {
		name string
		ip   string
		want bool
	}{
		{"loopback", "127.0.0.1", true},
		{"rfc1918 10/8", "10.1.2.3", true},
		{"rfc1918 192.168/16", "192.168.1.20", true},
		{"public", "203.0.113.9", false},
		{"garbage", "not-an-ip", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := testContext("203.0.113.9:4455", nil)
			c.Set("real_ip", tt.ip)
			assert.Equal(t, tt.want, allow(c))
		})
	}
}

func TestRateLimitWithoutRedisIsPassThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.GET("/ping", middleware.RateLimit(nil, 1, time.Minute, middleware.KeyByIP(), nil), func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	for i := 0; i < 5; i++ {
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestRealIPUsesForwardedFor(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	var got string
	engine.GET("/", middleware.RealIP(), func(c *gin.Context) {
		got = c.GetString("real_ip")
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "198.51.100.7, 10.0.0.1")
	engine.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "198.51.100.7", got)
}

func TestRequestIDIsSetAndEchoed(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	var got string
	engine.GET("/", middleware.RequestID(), func(c *gin.Context) {
		got = c.GetString("request_id")
		c.Status(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NotEmpty(t, got)
	assert.Equal(t, got, rec.Header().Get("X-Request-ID"))
}
