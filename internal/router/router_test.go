package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"devfolio/docs"
	"devfolio/internal/auth"
	"devfolio/internal/config"
	"devfolio/internal/handler"
	"devfolio/internal/service"
)

type stubStatsService struct{}

func (stubStatsService) Dashboard(ctx context.Context) (*service.DashboardStats, error) {
	return &service.DashboardStats{Projects: 2}, nil
}

// Admin routes are gated by the token service that issues the tokens, and
// the configured swagger host lands in the generated docs.
func TestRegister_AdminJWT(t *testing.T) {
	cfg := &config.Config{
		FrontendURL:         "http://localhost:3000",
		RateLimitWindow:     time.Minute,
		RateLimitMax:        100,
		ContactRateLimitMax: 3,
		SwaggerHost:         "api.example.com",
	}
	jwtService := auth.NewJWTService("test-secret", time.Hour)

	e := echo.New()
	Register(e, cfg, jwtService,
		nil, nil, nil, nil, nil, nil, nil, nil,
		handler.NewStatsHandler(stubStatsService{}))

	assert.Equal(t, "api.example.com", docs.SwaggerInfo.Host)

	// Missing token is rejected before the handler.
	req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Garbage token is rejected.
	req = httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer not-a-token")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// A token issued by the same service passes through.
	token, err := jwtService.GenerateToken(uuid.New(), "admin@example.com", "admin")
	assert.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "projects")
}

// The quota applies per source IP: the (N+1)th request inside the window is
// rejected before the handler runs.
func TestRateLimiter_QuotaExceeded(t *testing.T) {
	const quota = 3

	e := echo.New()
	handled := 0
	e.POST("/contact", func(c echo.Context) error {
		handled++
		return c.NoContent(http.StatusCreated)
	}, rateLimiter(quota, 15*time.Minute))

	codes := make([]int, 0, quota+1)
	for i := 0; i < quota+1; i++ {
		req := httptest.NewRequest(http.MethodPost, "/contact", nil)
		req.RemoteAddr = "192.0.2.1:1234"
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	for i := 0; i < quota; i++ {
		assert.Equal(t, http.StatusCreated, codes[i])
	}
	assert.Equal(t, http.StatusTooManyRequests, codes[quota])
	assert.Equal(t, quota, handled)
}

func TestRateLimiter_PerIP(t *testing.T) {
	const quota = 1

	e := echo.New()
	e.POST("/contact", func(c echo.Context) error {
		return c.NoContent(http.StatusCreated)
	}, rateLimiter(quota, 15*time.Minute))

	first := httptest.NewRequest(http.MethodPost, "/contact", nil)
	first.RemoteAddr = "192.0.2.1:1234"
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, first)
	assert.Equal(t, http.StatusCreated, rec.Code)

	// A different source address keeps its own quota.
	second := httptest.NewRequest(http.MethodPost, "/contact", nil)
	second.RemoteAddr = "192.0.2.2:1234"
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, second)
	assert.Equal(t, http.StatusCreated, rec.Code)
}
