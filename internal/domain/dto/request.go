// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

import (
	"fmt"

	"github.com/snowyaya/box-picker-api/internal/domain/model"
)

// DimensionsInput is the dimension triple of one item in a pack request.
//
// @Description Outer dimensions of an item; every axis must be positive
type DimensionsInput struct {
	// Length of the item. Must be greater than 0.
	Length int `json:"length" binding:"required,gt=0" example:"6" minimum:"1"`
	// Width of the item. Must be greater than 0.
	Width int `json:"width" binding:"required,gt=0" example:"4" minimum:"1"`
	// Height of the item. Must be greater than 0.
	Height int `json:"height" binding:"required,gt=0" example:"4" minimum:"1"`
} // @name DimensionsInput

// ItemInput is a single item in a pack request.
//
// @Description An item to pack, identified by a request-unique SKU
type ItemInput struct {
	// SKU identifies the item. Must be non-empty and unique within the request.
	SKU string `json:"sku" binding:"required" example:"WIDGET-1"`
	// Dimensions are the outer dimensions of the item.
	Dimensions DimensionsInput `json:"dimensions" binding:"required"`
} // @name ItemInput

// PackRequest represents the JSON request body for the pack endpoint.
//
// Structural validation (required fields, positive dimensions) is performed
// by gin's binding tags; the item list itself and SKU uniqueness are checked
// by Validate.
//
// @Description Request to pick shipping boxes for a set of items
// @Example {"items": [{"sku": "A", "dimensions": {"length": 6, "width": 4, "height": 4}}]}
type PackRequest struct {
	// Items is the list of items to pack. Must contain at least one item.
	Items []ItemInput `json:"items" binding:"required,dive"`
} // @name PackRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

var (
	// ErrNoItems is returned when the item list is missing or empty.
	ErrNoItems = &ValidationError{
		Field:   "items",
		Message: "must contain at least one item",
	}
)

// Validate performs custom validation on the request beyond binding tags.
// Returns an error if validation fails, nil otherwise.
func (r *PackRequest) Validate() error {
	if len(r.Items) == 0 {
		return ErrNoItems
	}

	seen := make(map[string]struct{}, len(r.Items))
	for _, item := range r.Items {
		if _, dup := seen[item.SKU]; dup {
			return &ValidationError{
				Field:   "items",
				Message: fmt.Sprintf("duplicate sku %q", item.SKU),
			}
		}
		seen[item.SKU] = struct{}{}
	}
	return nil
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ToItems converts the request into domain items, preserving input order.
func (r *PackRequest) ToItems() []model.Item {
	items := make([]model.Item, len(r.Items))
	for i, in := range r.Items {
		items[i] = model.Item{
			SKU: in.SKU,
			Dimensions: model.Dimensions{
				Length: in.Dimensions.Length,
				Width:  in.Dimensions.Width,
				Height: in.Dimensions.Height,
			},
		}
	}
	return items
}
