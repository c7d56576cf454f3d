// Package model defines the core domain entities for the box picker service.
package model

// Dimensions holds the length, width, and height of an item or of a box
// interior, in whole units.
//
// @Description Length, width, and height in whole units
// @Example {"length": 12, "width": 10, "height": 6}
type Dimensions struct {
	// Length is the first dimension
	Length int `json:"length" example:"12"`
	// Width is the second dimension
	Width int `json:"width" example:"10"`
	// Height is the third dimension
	Height int `json:"height" example:"6"`
}

// Volume returns length * width * height.
func (d Dimensions) Volume() int {
	return d.Length * d.Width * d.Height
}

// sorted returns the three dimensions in ascending order.
func (d Dimensions) sorted() [3]int {
	s := [3]int{d.Length, d.Width, d.Height}
	if s[0] > s[1] {
		s[0], s[1] = s[1], s[0]
	}
	if s[1] > s[2] {
		s[1], s[2] = s[2], s[1]
	}
	if s[0] > s[1] {
		s[0], s[1] = s[1], s[0]
	}
	return s
}

// Fits reports whether an object with these dimensions fits inside inner,
// allowing any of the six axis-aligned rotations. Both triples are compared
// smallest to largest; equality on an axis still fits.
func (d Dimensions) Fits(inner Dimensions) bool {
	a, b := d.sorted(), inner.sorted()
	return a[0] <= b[0] && a[1] <= b[1] && a[2] <= b[2]
}

// Item is a single physical unit to pack, identified by its SKU.
//
// @Description An item to pack: SKU plus outer dimensions
// @Example {"sku": "WIDGET-1", "dimensions": {"length": 6, "width": 4, "height": 4}}
type Item struct {
	// SKU identifies the item within the request
	SKU string `json:"sku" example:"WIDGET-1"`
	// Dimensions are the outer dimensions of the item
	Dimensions Dimensions `json:"dimensions"`
}

// Box is one box definition from the catalog: an identifier plus the usable
// interior dimensions.
type Box struct {
	// ID identifies the box in the catalog
	ID string `json:"box_id" example:"BX-M"`
	// Dimensions are the interior dimensions of the box
	Dimensions Dimensions `json:"dimensions"`
}

// Volume returns the interior volume of the box.
func (b Box) Volume() int {
	return b.Dimensions.Volume()
}

// BoxAssignment is one opened box together with the SKUs placed in it.
//
// @Description A box chosen for the shipment and the SKUs assigned to it
// @Example {"box_id": "BX-S", "dimensions": {"length": 8, "width": 6, "height": 4}, "items": ["A"]}
type BoxAssignment struct {
	// BoxID identifies the catalog box that was opened
	BoxID string `json:"box_id" example:"BX-S"`
	// Dimensions are the interior dimensions of that box
	Dimensions Dimensions `json:"dimensions"`
	// Items lists the SKUs packed into this box, in request order
	Items []string `json:"items"`
}

// PackResult represents the complete result of a packing run.
// It implements JSON serialization for direct use in HTTP responses.
//
// @Description Packing result containing the opened boxes and the box count
// @Example {"boxes": [{"box_id": "BX-S", "dimensions": {"length": 8, "width": 6, "height": 4}, "items": ["A"]}], "total_boxes": 1}
type PackResult struct {
	// Boxes is the list of box assignments in the order the boxes were opened
	Boxes []BoxAssignment `json:"boxes"`
	// TotalBoxes is the number of boxes used
	TotalBoxes int `json:"total_boxes" example:"1"`
}
