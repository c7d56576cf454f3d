package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/snowyaya/box-picker-api/internal/domain/dto"
	"github.com/snowyaya/box-picker-api/internal/i18n"
	"github.com/snowyaya/box-picker-api/internal/metrics"
	"github.com/snowyaya/box-picker-api/internal/service"
)

// Handler provides HTTP handlers for box packing routes.
type Handler struct {
	packer service.BoxPacker
}

// NewHandler creates a new Handler instance.
func NewHandler(packer service.BoxPacker) *Handler {
	return &Handler{packer: packer}
}

// PackItems handles POST /api/pack requests.
//
// @Summary      Pack items into boxes
// @Description  Selects boxes for the submitted items. Every item must fit in at least one catalog box in some axis-aligned rotation; the service prefers the single smallest box that holds the whole order and falls back to a greedy multi-box split. Supports idempotency via Idempotency-Key header.
// @Tags         Packing
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.PackRequest true "Items to pack"
// @Success      200 {object} dto.SuccessResponse "Packing result"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid credentials"
// @Failure      422 {object} dto.ErrorResponse "Unprocessable - items do not fit the available boxes"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/pack [post]
func (h *Handler) PackItems(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.PackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := req.Validate(); err != nil {
		metrics.RecordPackOperation(0, metrics.StatusValidationError)
		if errors.Is(err, dto.ErrNoItems) {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationItems, err)
		} else {
			builder.ErrorWithMessage(http.StatusBadRequest, err.Error(), err)
		}
		return
	}

	start := time.Now()
	result, err := h.packer.Pack(req.ToItems())
	duration := time.Since(start)

	if err != nil {
		var oversized *service.OversizedError
		if errors.As(err, &oversized) {
			metrics.RecordPackOperation(duration, metrics.StatusItemTooLarge)
			builder.ErrorWithDetails(http.StatusUnprocessableEntity, dto.ErrCodeItemTooLarge,
				i18n.ErrKeyItemTooLarge, oversized.Items, err)
			return
		}

		var infeasible *service.InfeasibleError
		if errors.As(err, &infeasible) {
			metrics.RecordPackOperation(duration, metrics.StatusPackingError)
			builder.ErrorWithDetails(http.StatusUnprocessableEntity, dto.ErrCodePackingError,
				i18n.ErrKeyPackingError, gin.H{"sku": infeasible.SKU}, err)
			return
		}

		metrics.RecordPackOperation(duration, metrics.StatusPackingError)
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	metrics.RecordPackOperation(duration, metrics.StatusSuccess)
	metrics.RecordBoxesPerPack(result.TotalBoxes)
	builder.SuccessOK(result)
}
