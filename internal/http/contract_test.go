//go:build contract

package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/snowyaya/box-picker-api/internal/domain/dto"
	"github.com/snowyaya/box-picker-api/internal/domain/model"
	"github.com/snowyaya/box-picker-api/internal/middleware"
	"github.com/snowyaya/box-picker-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// TestAPI_ContractCompliance validates that API responses match the documented contract.
func TestAPI_ContractCompliance(t *testing.T) {
	packer := service.NewBoxPackerService()
	handler := NewHandler(packer)
	healthHandler := NewHealthHandler()

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Recovery(), middleware.ErrorHandler())
	healthHandler.Register(router)
	api := router.Group("/api")
	api.POST("/pack", handler.PackItems)

	tests := []struct {
		name             string
		method           string
		path             string
		body             string
		headers          map[string]string
		expectedStatus   int
		validateResponse func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:           "POST /api/pack - Success 200",
			method:         http.MethodPost,
			path:           "/api/pack",
			body:           `{"items": [{"sku": "A", "dimensions": {"length": 2, "width": 2, "height": 2}}, {"sku": "B", "dimensions": {"length": 10, "width": 3, "height": 3}}]}`,
			expectedStatus: http.StatusOK,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp dto.SuccessResponse
				err := json.Unmarshal(w.Body.Bytes(), &resp)
				require.NoError(t, err)

				// Validate dto.SuccessResponse structure
				assert.NotEmpty(t, resp.RequestID, "Response must include request_id")
				assert.NotZero(t, resp.Timestamp, "Response must include timestamp")
				assert.NotNil(t, resp.Data, "Response must include data")

				// Validate PackResult structure
				packResult, ok := resp.Data.(map[string]interface{})
				require.True(t, ok, "Data must be PackResult")

				assert.Contains(t, packResult, "boxes")
				assert.Contains(t, packResult, "total_boxes")

				boxes, ok := packResult["boxes"].([]interface{})
				require.True(t, ok)
				assert.NotEmpty(t, boxes)

				totalBoxes, ok := packResult["total_boxes"].(float64)
				require.True(t, ok)
				assert.Equal(t, float64(len(boxes)), totalBoxes)

				// Validate each box assignment structure
				for _, boxInterface := range boxes {
					box, ok := boxInterface.(map[string]interface{})
					require.True(t, ok)
					assert.Contains(t, box, "box_id")
					assert.Contains(t, box, "dimensions")
					assert.Contains(t, box, "items")
					assert.NotNil(t, box["box_id"])

					dims, ok := box["dimensions"].(map[string]interface{})
					require.True(t, ok)
					assert.Contains(t, dims, "length")
					assert.Contains(t, dims, "width")
					assert.Contains(t, dims, "height")

					items, ok := box["items"].([]interface{})
					require.True(t, ok)
					assert.NotEmpty(t, items)
				}
			},
		},
		{
			name:           "POST /api/pack - Error 400 Invalid JSON",
			method:         http.MethodPost,
			path:           "/api/pack",
			body:           `invalid json`,
			expectedStatus: http.StatusBadRequest,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp dto.ErrorResponse
				err := json.Unmarshal(w.Body.Bytes(), &resp)
				require.NoError(t, err)

				assert.Equal(t, dto.ErrCodeInvalidRequest, resp.Error)
				assert.NotEmpty(t, resp.Message)
				assert.NotEmpty(t, resp.RequestID)
				assert.NotZero(t, resp.Timestamp)
			},
		},
		{
			name:           "POST /api/pack - Error 400 Empty Items",
			method:         http.MethodPost,
			path:           "/api/pack",
			body:           `{"items": []}`,
			expectedStatus: http.StatusBadRequest,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp dto.ErrorResponse
				err := json.Unmarshal(w.Body.Bytes(), &resp)
				require.NoError(t, err)

				assert.Equal(t, dto.ErrCodeInvalidRequest, resp.Error)
				assert.NotEmpty(t, resp.Message)
				assert.NotEmpty(t, resp.RequestID)
				assert.NotZero(t, resp.Timestamp)
			},
		},
		{
			name:           "POST /api/pack - Error 422 Item Too Large",
			method:         http.MethodPost,
			path:           "/api/pack",
			body:           `{"items": [{"sku": "SOFA-1", "dimensions": {"length": 100, "width": 100, "height": 100}}]}`,
			expectedStatus: http.StatusUnprocessableEntity,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp dto.ErrorResponse
				err := json.Unmarshal(w.Body.Bytes(), &resp)
				require.NoError(t, err)

				assert.Equal(t, dto.ErrCodeItemTooLarge, resp.Error)
				assert.NotEmpty(t, resp.Message)
				assert.NotEmpty(t, resp.RequestID)
				assert.NotZero(t, resp.Timestamp)

				// Details carry the offending items
				details, ok := resp.Details.([]interface{})
				require.True(t, ok, "Details must list the oversized items")
				require.Len(t, details, 1)

				offender, ok := details[0].(map[string]interface{})
				require.True(t, ok)
				assert.Equal(t, "SOFA-1", offender["sku"])
				assert.Contains(t, offender, "dimensions")
				assert.Contains(t, offender, "max_box_inner_dimensions")
			},
		},
		{
			name:           "GET /healthz - Success 200",
			method:         http.MethodGet,
			path:           "/healthz",
			expectedStatus: http.StatusOK,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp map[string]interface{}
				err := json.Unmarshal(w.Body.Bytes(), &resp)
				require.NoError(t, err)

				assert.Contains(t, resp, "status")
				assert.Equal(t, "ok", resp["status"])
			},
		},
		{
			name:           "GET /readyz - Success 200",
			method:         http.MethodGet,
			path:           "/readyz",
			expectedStatus: http.StatusOK,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp map[string]interface{}
				err := json.Unmarshal(w.Body.Bytes(), &resp)
				require.NoError(t, err)

				assert.Contains(t, resp, "status")
				assert.Contains(t, resp, "checks")
				assert.Equal(t, "ok", resp["status"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req *http.Request
			if tt.body != "" {
				req = httptest.NewRequest(tt.method, tt.path, bytes.NewReader([]byte(tt.body)))
				req.Header.Set("Content-Type", "application/json")
			} else {
				req = httptest.NewRequest(tt.method, tt.path, nil)
			}

			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code, "Status code mismatch")
			assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))

			// Validate X-Request-ID header
			assert.NotEmpty(t, w.Header().Get("X-Request-ID"), "Response must include X-Request-ID header")

			if tt.validateResponse != nil {
				tt.validateResponse(t, w)
			}
		})
	}
}

// TestAPI_ResponseSchema validates response schemas match the contract.
func TestAPI_ResponseSchema(t *testing.T) {
	packer := service.NewBoxPackerService()
	handler := NewHandler(packer)

	router := gin.New()
	router.Use(middleware.RequestID())
	api := router.Group("/api")
	api.POST("/pack", handler.PackItems)

	t.Run("SuccessResponse schema validation", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/pack",
			bytes.NewReader([]byte(`{"items": [{"sku": "A", "dimensions": {"length": 6, "width": 4, "height": 4}}]}`)))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp dto.SuccessResponse
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		require.NoError(t, err)

		// Validate all required fields
		assert.NotEmpty(t, resp.RequestID)
		assert.NotZero(t, resp.Timestamp)
		assert.NotNil(t, resp.Data)

		// Validate data is PackResult
		dataBytes, _ := json.Marshal(resp.Data)
		var packResult model.PackResult
		err = json.Unmarshal(dataBytes, &packResult)
		require.NoError(t, err)

		assert.Greater(t, packResult.TotalBoxes, 0)
		assert.Len(t, packResult.Boxes, packResult.TotalBoxes)
		for _, box := range packResult.Boxes {
			assert.NotEmpty(t, box.BoxID)
			assert.NotEmpty(t, box.Items)
		}
	})

	t.Run("ErrorResponse schema validation", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/pack",
			bytes.NewReader([]byte(`{"items": [{"sku": "A", "dimensions": {"length": -1, "width": 4, "height": 4}}]}`)))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)

		var resp dto.ErrorResponse
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		require.NoError(t, err)

		// Validate error response structure
		assert.NotEmpty(t, resp.Error)
		assert.NotEmpty(t, resp.Message)
		assert.NotEmpty(t, resp.RequestID)
		assert.NotZero(t, resp.Timestamp)
	})
}

// TestAPI_Headers validates required headers are present.
func TestAPI_Headers(t *testing.T) {
	packer := service.NewBoxPackerService()
	handler := NewHandler(packer)
	healthHandler := NewHealthHandler()

	router := gin.New()
	router.Use(middleware.RequestID())
	healthHandler.Register(router)
	api := router.Group("/api")
	api.POST("/pack", handler.PackItems)

	tests := []struct {
		name            string
		method          string
		path            string
		body            string
		expectedHeaders map[string]string
	}{
		{
			name:   "X-Request-ID header present",
			method: http.MethodPost,
			path:   "/api/pack",
			body:   `{"items": [{"sku": "A", "dimensions": {"length": 2, "width": 2, "height": 2}}]}`,
			expectedHeaders: map[string]string{
				"X-Request-ID": "",
			},
		},
		{
			name:   "Health endpoint headers",
			method: http.MethodGet,
			path:   "/healthz",
			expectedHeaders: map[string]string{
				"X-Request-ID": "",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req *http.Request
			if tt.body != "" {
				req = httptest.NewRequest(tt.method, tt.path, bytes.NewReader([]byte(tt.body)))
				req.Header.Set("Content-Type", "application/json")
			} else {
				req = httptest.NewRequest(tt.method, tt.path, nil)
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			for headerName, expectedValue := range tt.expectedHeaders {
				actualValue := w.Header().Get(headerName)
				if expectedValue == "" {
					assert.NotEmpty(t, actualValue, "Header %s must be present", headerName)
				} else {
					assert.Equal(t, expectedValue, actualValue, "Header %s mismatch", headerName)
				}
			}
		})
	}
}
