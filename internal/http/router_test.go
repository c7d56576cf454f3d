package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/snowyaya/box-picker-api/internal/domain/dto"
	"github.com/snowyaya/box-picker-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRouter(t *testing.T) {
	packer := service.NewBoxPackerService()
	handler := NewHandler(packer)
	healthHandler := NewHealthHandler()

	tests := []struct {
		name string
		cfg  RouterConfig
		test func(*testing.T, *gin.Engine)
	}{
		{
			name: "creates router with default config",
			cfg:  DefaultRouterConfig(),
			test: func(t *testing.T, router *gin.Engine) {
				assert.NotNil(t, router)
			},
		},
		{
			name: "creates router with API key auth enabled",
			cfg: RouterConfig{
				RateLimit:  100,
				RateWindow: time.Minute,
				EnableAuth: true,
				APIKeys:    map[string]bool{"test-key": true},
			},
			test: func(t *testing.T, router *gin.Engine) {
				assert.NotNil(t, router)
			},
		},
		{
			name: "creates router with JWT auth enabled",
			cfg: RouterConfig{
				RateLimit:  100,
				RateWindow: time.Minute,
				EnableAuth: true,
				JWTSecret:  []byte("router-test-secret"),
			},
			test: func(t *testing.T, router *gin.Engine) {
				assert.NotNil(t, router)
			},
		},
		{
			name: "creates router with idempotency enabled",
			cfg: RouterConfig{
				RateLimit:         100,
				RateWindow:        time.Minute,
				EnableIdempotency: true,
			},
			test: func(t *testing.T, router *gin.Engine) {
				assert.NotNil(t, router)
			},
		},
		{
			name: "creates router with rate limiting",
			cfg: RouterConfig{
				RateLimit:  5,
				RateWindow: time.Second,
			},
			test: func(t *testing.T, router *gin.Engine) {
				assert.NotNil(t, router)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := NewRouter(handler, healthHandler, tt.cfg)
			if tt.test != nil {
				tt.test(t, router)
			}
		})
	}
}

func TestRouter_Endpoints(t *testing.T) {
	packer := service.NewBoxPackerService()
	handler := NewHandler(packer)
	healthHandler := NewHealthHandler()
	router := NewRouter(handler, healthHandler, DefaultRouterConfig())

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{
			name:           "healthz endpoint",
			method:         http.MethodGet,
			path:           "/healthz",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "readyz endpoint",
			method:         http.MethodGet,
			path:           "/readyz",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "metrics endpoint",
			method:         http.MethodGet,
			path:           "/metrics",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "swagger endpoint",
			method:         http.MethodGet,
			path:           "/swagger/index.html",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "pack endpoint",
			method:         http.MethodPost,
			path:           "/api/pack",
			expectedStatus: http.StatusBadRequest, // Missing body
		},
		{
			name:           "boxes endpoint",
			method:         http.MethodGet,
			path:           "/api/boxes",
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestRouter_APIKeyMode(t *testing.T) {
	packer := service.NewBoxPackerService()
	handler := NewHandler(packer)
	healthHandler := NewHealthHandler()

	cfg := DefaultRouterConfig()
	cfg.EnableAuth = true
	cfg.APIKeys = map[string]bool{"valid-key": true}
	router := NewRouter(handler, healthHandler, cfg)

	body := `{"items": [{"sku": "A", "dimensions": {"length": 2, "width": 2, "height": 2}}]}`

	tests := []struct {
		name           string
		apiKey         string
		expectedStatus int
	}{
		{
			name:           "missing API key",
			apiKey:         "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid API key",
			apiKey:         "wrong-key",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "valid API key",
			apiKey:         "valid-key",
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/pack", bytes.NewBufferString(body))
			req.Header.Set("Content-Type", "application/json")
			if tt.apiKey != "" {
				req.Header.Set("X-API-Key", tt.apiKey)
			}
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestRouter_JWTMode(t *testing.T) {
	secret := []byte("router-test-secret")

	packer := service.NewBoxPackerService()
	handler := NewHandler(packer)
	healthHandler := NewHealthHandler()

	cfg := DefaultRouterConfig()
	cfg.EnableAuth = true
	cfg.JWTSecret = secret
	router := NewRouter(handler, healthHandler, cfg)

	claims := &dto.Claims{
		UserID: "user-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)

	body := `{"items": [{"sku": "A", "dimensions": {"length": 2, "width": 2, "height": 2}}]}`

	tests := []struct {
		name           string
		authHeader     string
		expectedStatus int
	}{
		{
			name:           "missing token",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "malformed token",
			authHeader:     "Bearer not-a-token",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "valid token",
			authHeader:     "Bearer " + token,
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/pack", bytes.NewBufferString(body))
			req.Header.Set("Content-Type", "application/json")
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}

	t.Run("health endpoints stay public", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRouter_RateLimit(t *testing.T) {
	packer := service.NewBoxPackerService()
	handler := NewHandler(packer)
	healthHandler := NewHealthHandler()

	cfg := DefaultRouterConfig()
	cfg.RateLimit = 2
	cfg.RateWindow = time.Minute
	router := NewRouter(handler, healthHandler, cfg)

	body := `{"items": [{"sku": "A", "dimensions": {"length": 2, "width": 2, "height": 2}}]}`

	statuses := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/pack", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		statuses = append(statuses, w.Code)
	}

	assert.Equal(t, http.StatusOK, statuses[0])
	assert.Equal(t, http.StatusOK, statuses[1])
	assert.Equal(t, http.StatusTooManyRequests, statuses[2])
}
