package http

import (
	"github.com/gin-gonic/gin"
	"github.com/snowyaya/box-picker-api/internal/domain/dto"
	"github.com/snowyaya/box-picker-api/internal/service"
)

// BoxesHandler provides HTTP handlers for box catalog routes.
type BoxesHandler struct {
	packer service.BoxPacker
}

// NewBoxesHandler creates a new BoxesHandler instance.
func NewBoxesHandler(packer service.BoxPacker) *BoxesHandler {
	return &BoxesHandler{packer: packer}
}

// GetBoxes handles GET /api/boxes requests.
//
// @Summary      Get box catalog
// @Description  Returns the box catalog in ascending volume order, with inner dimensions and volume for each box
// @Tags         Boxes
// @Accept       json
// @Produce      json
// @Param        Authorization header string false "Bearer token (required if auth enabled)"
// @Success      200 {object} dto.SuccessResponse "Box catalog"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid credentials"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/boxes [get]
func (h *BoxesHandler) GetBoxes(c *gin.Context) {
	builder := NewResponseBuilder(c)

	boxes := h.packer.Catalog().Boxes()
	infos := make([]dto.BoxInfo, 0, len(boxes))
	for _, box := range boxes {
		infos = append(infos, dto.BoxInfo{
			BoxID:      box.ID,
			Dimensions: box.Dimensions,
			Volume:     box.Volume(),
		})
	}

	builder.SuccessOK(dto.BoxCatalogResponse{
		Boxes:      infos,
		TotalBoxes: len(infos),
	})
}
