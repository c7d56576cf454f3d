package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/snowyaya/box-picker-api/internal/domain/dto"
	"github.com/snowyaya/box-picker-api/internal/domain/model"
	"github.com/snowyaya/box-picker-api/internal/mocks"
	"github.com/snowyaya/box-picker-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decodeBoxCatalog unwraps the data envelope into a BoxCatalogResponse.
func decodeBoxCatalog(t *testing.T, w *httptest.ResponseRecorder) dto.BoxCatalogResponse {
	t.Helper()
	var resp dto.SuccessResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)

	dataBytes, _ := json.Marshal(resp.Data)
	var catalog dto.BoxCatalogResponse
	err = json.Unmarshal(dataBytes, &catalog)
	require.NoError(t, err)
	return catalog
}

func TestBoxesHandler_GetBoxes(t *testing.T) {
	router := gin.New()
	handler := NewBoxesHandler(service.NewBoxPackerService())
	router.GET("/boxes", handler.GetBoxes)

	req := httptest.NewRequest(http.MethodGet, "/boxes", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	catalog := decodeBoxCatalog(t, w)
	assert.Equal(t, 5, catalog.TotalBoxes)
	require.Len(t, catalog.Boxes, 5)

	// The catalog is ordered by ascending volume
	assert.Equal(t, "BX-S", catalog.Boxes[0].BoxID)
	assert.Equal(t, 192, catalog.Boxes[0].Volume)
	assert.Equal(t, "BX-XXL", catalog.Boxes[4].BoxID)
	assert.Equal(t, 9600, catalog.Boxes[4].Volume)

	for i := 1; i < len(catalog.Boxes); i++ {
		assert.GreaterOrEqual(t, catalog.Boxes[i].Volume, catalog.Boxes[i-1].Volume)
	}
}

func TestBoxesHandler_GetBoxes_CustomCatalog(t *testing.T) {
	custom, err := service.NewCatalog([]model.Box{
		{ID: "CRATE-1", Dimensions: model.Dimensions{Length: 10, Width: 10, Height: 10}},
	})
	require.NoError(t, err)

	packer := service.NewBoxPackerService(service.WithCatalog(custom))

	router := gin.New()
	handler := NewBoxesHandler(packer)
	router.GET("/boxes", handler.GetBoxes)

	req := httptest.NewRequest(http.MethodGet, "/boxes", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	catalog := decodeBoxCatalog(t, w)
	assert.Equal(t, 1, catalog.TotalBoxes)
	require.Len(t, catalog.Boxes, 1)
	assert.Equal(t, "CRATE-1", catalog.Boxes[0].BoxID)
	assert.Equal(t, 1000, catalog.Boxes[0].Volume)
}

func TestBoxesHandler_GetBoxes_UsesPackerCatalog(t *testing.T) {
	mockPacker := new(mocks.MockBoxPacker)
	mockPacker.On("Catalog").Return(service.DefaultCatalog())

	router := gin.New()
	handler := NewBoxesHandler(mockPacker)
	router.GET("/boxes", handler.GetBoxes)

	req := httptest.NewRequest(http.MethodGet, "/boxes", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockPacker.AssertExpectations(t)
}
