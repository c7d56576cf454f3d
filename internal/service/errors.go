package service

import (
	"errors"
	"fmt"

	"github.com/snowyaya/box-picker-api/internal/domain/model"
)

// ErrEmptyCatalog is returned when a catalog is built without any boxes.
var ErrEmptyCatalog = errors.New("box catalog must contain at least one box")

// OversizedItem describes a single item that does not fit the largest
// catalog box in any rotation.
//
// @Description An item too large for the largest available box
// @Example {"sku": "SOFA-1", "dimensions": {"length": 100, "width": 100, "height": 100}, "max_box_inner_dimensions": {"length": 24, "width": 20, "height": 20}}
type OversizedItem struct {
	// SKU identifies the offending item
	SKU string `json:"sku"`
	// Dimensions are the item's dimensions as submitted
	Dimensions model.Dimensions `json:"dimensions"`
	// MaxBox is the interior of the largest available box
	MaxBox model.Dimensions `json:"max_box_inner_dimensions"`
}

// OversizedError reports every item in a request that cannot fit the largest
// catalog box. The packing engine raises it before attempting any placement,
// so callers always see the complete list of offenders.
type OversizedError struct {
	Items []OversizedItem
}

// Error implements the error interface.
func (e *OversizedError) Error() string {
	if len(e.Items) == 1 {
		return fmt.Sprintf("item %q does not fit in any available box", e.Items[0].SKU)
	}
	return fmt.Sprintf("%d items do not fit in any available box", len(e.Items))
}

// InfeasibleError reports an item the placement loop could not put into any
// catalog box. After the oversized pre-check this is unreachable for a valid
// catalog; it exists as a defensive guard.
type InfeasibleError struct {
	SKU string
}

// Error implements the error interface.
func (e *InfeasibleError) Error() string {
	return fmt.Sprintf("item %q does not fit in any available box", e.SKU)
}
