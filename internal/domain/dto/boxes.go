package dto

import (
	"github.com/snowyaya/box-picker-api/internal/domain/model"
)

// BoxInfo describes a catalog box and its capacity.
// @Description Catalog box with inner dimensions and volume
type BoxInfo struct {
	// BoxID is the catalog identifier of the box
	// Example: BX-S
	BoxID string `json:"box_id" example:"BX-S"`
	// Dimensions are the inner dimensions of the box
	Dimensions model.Dimensions `json:"dimensions"`
	// Volume is the inner volume of the box
	// Example: 192
	Volume int `json:"volume" example:"192"`
} // @name BoxInfo

// BoxCatalogResponse lists the boxes the service can pack into.
// @Description Box catalog in ascending volume order
type BoxCatalogResponse struct {
	// Boxes is the catalog in ascending volume order
	Boxes []BoxInfo `json:"boxes"`
	// TotalBoxes is the number of boxes in the catalog
	// Example: 5
	TotalBoxes int `json:"total_boxes" example:"5"`
} // @name BoxCatalogResponse
