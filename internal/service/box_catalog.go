package service

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/snowyaya/box-picker-api/internal/domain/model"
)

var (
	// DefaultBoxes defines the standard box catalog available for packing.
	DefaultBoxes = []model.Box{
		{ID: "BX-S", Dimensions: model.Dimensions{Length: 8, Width: 6, Height: 4}},
		{ID: "BX-M", Dimensions: model.Dimensions{Length: 12, Width: 10, Height: 6}},
		{ID: "BX-L", Dimensions: model.Dimensions{Length: 16, Width: 12, Height: 8}},
		{ID: "BX-XL", Dimensions: model.Dimensions{Length: 20, Width: 16, Height: 12}},
		{ID: "BX-XXL", Dimensions: model.Dimensions{Length: 24, Width: 20, Height: 20}},
	}
)

// Catalog is an immutable set of box definitions ordered by ascending
// interior volume. The ordering is load-bearing: every search over the
// catalog prefers smaller boxes by iterating in catalog order. A Catalog
// is safe for concurrent use.
type Catalog struct {
	boxes []model.Box
}

// NewCatalog builds a Catalog from the given box definitions. Definitions
// are copied, validated (non-empty unique identifiers, positive dimensions),
// and sorted by ascending volume; boxes of equal volume order by length,
// width, then height.
func NewCatalog(boxes []model.Box) (Catalog, error) {
	if len(boxes) == 0 {
		return Catalog{}, ErrEmptyCatalog
	}

	seen := make(map[string]struct{}, len(boxes))
	for _, box := range boxes {
		if box.ID == "" {
			return Catalog{}, fmt.Errorf("box catalog: box %dx%dx%d has an empty id",
				box.Dimensions.Length, box.Dimensions.Width, box.Dimensions.Height)
		}
		if _, dup := seen[box.ID]; dup {
			return Catalog{}, fmt.Errorf("box catalog: duplicate box id %q", box.ID)
		}
		seen[box.ID] = struct{}{}

		if box.Dimensions.Length <= 0 || box.Dimensions.Width <= 0 || box.Dimensions.Height <= 0 {
			return Catalog{}, fmt.Errorf("box catalog: box %q has non-positive dimensions", box.ID)
		}
	}

	ordered := make([]model.Box, len(boxes))
	copy(ordered, boxes)
	sortBoxes(ordered)

	return Catalog{boxes: ordered}, nil
}

// DefaultCatalog returns a Catalog holding DefaultBoxes.
func DefaultCatalog() Catalog {
	boxes := make([]model.Box, len(DefaultBoxes))
	copy(boxes, DefaultBoxes)
	sortBoxes(boxes)
	return Catalog{boxes: boxes}
}

// sortBoxes orders box definitions by ascending interior volume, breaking
// volume ties by length, width, then height.
func sortBoxes(boxes []model.Box) {
	sort.SliceStable(boxes, func(i, j int) bool {
		if boxes[i].Volume() != boxes[j].Volume() {
			return boxes[i].Volume() < boxes[j].Volume()
		}
		di, dj := boxes[i].Dimensions, boxes[j].Dimensions
		if di.Length != dj.Length {
			return di.Length < dj.Length
		}
		if di.Width != dj.Width {
			return di.Width < dj.Width
		}
		return di.Height < dj.Height
	})
}

// Boxes returns the catalog contents in ascending volume order. The
// returned slice is a copy; mutating it does not affect the catalog.
func (c Catalog) Boxes() []model.Box {
	out := make([]model.Box, len(c.boxes))
	copy(out, c.boxes)
	return out
}

// Largest returns the box with the greatest interior volume, or the zero
// Box for an empty catalog.
func (c Catalog) Largest() model.Box {
	if len(c.boxes) == 0 {
		return model.Box{}
	}
	return c.boxes[len(c.boxes)-1]
}

// Len returns the number of box definitions in the catalog.
func (c Catalog) Len() int {
	return len(c.boxes)
}

// catalogFile is the on-disk YAML schema for a custom box catalog.
type catalogFile struct {
	Boxes []struct {
		ID     string `yaml:"id"`
		Length int    `yaml:"length"`
		Width  int    `yaml:"width"`
		Height int    `yaml:"height"`
	} `yaml:"boxes"`
}

// LoadCatalogFile reads a YAML catalog definition from path and builds a
// validated Catalog from it:
//
//	boxes:
//	  - id: BX-S
//	    length: 8
//	    width: 6
//	    height: 4
func LoadCatalogFile(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read catalog file: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Catalog{}, fmt.Errorf("parse catalog file: %w", err)
	}

	boxes := make([]model.Box, len(file.Boxes))
	for i, b := range file.Boxes {
		boxes[i] = model.Box{
			ID:         b.ID,
			Dimensions: model.Dimensions{Length: b.Length, Width: b.Width, Height: b.Height},
		}
	}

	return NewCatalog(boxes)
}
