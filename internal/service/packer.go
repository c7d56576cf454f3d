package service

import (
	"sort"

	"github.com/snowyaya/box-picker-api/internal/domain/model"
)

// BoxPacker defines the interface for box selection operations.
type BoxPacker interface {
	// Pack assigns every item to a catalog box. It returns an
	// *OversizedError when any item exceeds the largest box and an
	// *InfeasibleError when placement fails despite the pre-check.
	Pack(items []model.Item) (model.PackResult, error)
	// Catalog returns the catalog the packer selects boxes from.
	Catalog() Catalog
}

// Option configures a BoxPackerService.
type Option func(*BoxPackerService)

// BoxPackerService implements BoxPacker. It first looks for the smallest
// single box whose interior fits every item individually; when none exists
// it falls back to a first-fit-decreasing pass that opens additional boxes
// as needed. Fit is per item and rotation-aware; the service keeps no state
// between calls and is safe for concurrent use.
type BoxPackerService struct {
	catalog Catalog
}

// NewBoxPackerService creates a new BoxPackerService with the given options.
// Without options it packs into the default catalog.
func NewBoxPackerService(opts ...Option) *BoxPackerService {
	s := &BoxPackerService{
		catalog: DefaultCatalog(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// WithCatalog sets a custom box catalog for the packer.
func WithCatalog(c Catalog) Option {
	return func(s *BoxPackerService) {
		if c.Len() > 0 {
			s.catalog = c
		}
	}
}

// Catalog returns the catalog the packer selects boxes from.
func (s *BoxPackerService) Catalog() Catalog {
	return s.catalog
}

// packedItem carries an item through sorting together with its position in
// the request, so output SKU order can be restored after placement.
type packedItem struct {
	pos  int
	item model.Item
}

// openBox is a box opened during the multi-box pass and the items placed
// in it so far.
type openBox struct {
	box   model.Box
	items []packedItem
}

// accepts reports whether candidate can join the box: every item already
// placed plus the candidate must individually fit the box interior.
func (b *openBox) accepts(candidate packedItem) bool {
	for _, placed := range b.items {
		if !placed.item.Dimensions.Fits(b.box.Dimensions) {
			return false
		}
	}
	return candidate.item.Dimensions.Fits(b.box.Dimensions)
}

// Pack assigns every item to a box from the catalog.
//
// The result is deterministic: identical input produces identical box
// choices, grouping, and ordering. Assignments appear in the order their
// boxes were opened; SKUs within an assignment appear in request order.
func (s *BoxPackerService) Pack(items []model.Item) (model.PackResult, error) {
	if len(items) == 0 {
		return model.PackResult{Boxes: []model.BoxAssignment{}, TotalBoxes: 0}, nil
	}

	if err := s.checkOversized(items); err != nil {
		return model.PackResult{}, err
	}

	if result, ok := s.packSingle(items); ok {
		return result, nil
	}

	return s.packGreedy(items)
}

// checkOversized collects every item that does not fit the largest catalog
// box. All offenders are reported at once so a caller can fix the whole
// request in one round trip.
func (s *BoxPackerService) checkOversized(items []model.Item) error {
	largest := s.catalog.Largest()

	var oversized []OversizedItem
	for _, item := range items {
		if !item.Dimensions.Fits(largest.Dimensions) {
			oversized = append(oversized, OversizedItem{
				SKU:        item.SKU,
				Dimensions: item.Dimensions,
				MaxBox:     largest.Dimensions,
			})
		}
	}

	if len(oversized) > 0 {
		return &OversizedError{Items: oversized}
	}
	return nil
}

// packSingle finds the smallest catalog box whose interior fits every item
// individually. The check is deliberately per item, not a joint geometric
// layout, so a set of items whose combined bulk exceeds the box still
// succeeds as long as each one fits on its own.
func (s *BoxPackerService) packSingle(items []model.Item) (model.PackResult, bool) {
	for _, box := range s.catalog.boxes {
		if !fitsAll(items, box) {
			continue
		}

		skus := make([]string, len(items))
		for i, item := range items {
			skus[i] = item.SKU
		}

		return model.PackResult{
			Boxes: []model.BoxAssignment{
				{BoxID: box.ID, Dimensions: box.Dimensions, Items: skus},
			},
			TotalBoxes: 1,
		}, true
	}

	return model.PackResult{}, false
}

// fitsAll reports whether every item individually fits the box interior.
func fitsAll(items []model.Item, box model.Box) bool {
	for _, item := range items {
		if !item.Dimensions.Fits(box.Dimensions) {
			return false
		}
	}
	return true
}

// packGreedy partitions items across multiple boxes: first-fit decreasing
// by item volume, placing each item into the smallest open box that accepts
// it before opening the smallest new box that fits the item alone.
func (s *BoxPackerService) packGreedy(items []model.Item) (model.PackResult, error) {
	queue := make([]packedItem, len(items))
	for i, item := range items {
		queue[i] = packedItem{pos: i, item: item}
	}

	// Largest items claim space first; the stable sort keeps request
	// order between equal volumes so output stays deterministic.
	sort.SliceStable(queue, func(i, j int) bool {
		return queue[i].item.Dimensions.Volume() > queue[j].item.Dimensions.Volume()
	})

	var open []*openBox
	for _, candidate := range queue {
		if target := findOpenBox(open, candidate); target != nil {
			target.items = append(target.items, candidate)
			continue
		}

		opened, err := s.openSmallest(candidate)
		if err != nil {
			return model.PackResult{}, err
		}
		open = append(open, opened)
	}

	return buildResult(open), nil
}

// findOpenBox returns the smallest-volume open box that accepts the
// candidate, preferring the earliest opened between equal volumes. It
// returns nil when no open box accepts the candidate.
func findOpenBox(open []*openBox, candidate packedItem) *openBox {
	var best *openBox
	for _, b := range open {
		if !b.accepts(candidate) {
			continue
		}
		if best == nil || b.box.Volume() < best.box.Volume() {
			best = b
		}
	}
	return best
}

// openSmallest opens the smallest catalog box that fits the candidate
// alone. The oversized pre-check makes failure unreachable for a valid
// catalog; the error return is a defensive guard.
func (s *BoxPackerService) openSmallest(candidate packedItem) (*openBox, error) {
	for _, box := range s.catalog.boxes {
		if candidate.item.Dimensions.Fits(box.Dimensions) {
			return &openBox{box: box, items: []packedItem{candidate}}, nil
		}
	}
	return nil, &InfeasibleError{SKU: candidate.item.SKU}
}

// buildResult converts open boxes into assignments. Boxes keep the order
// they were opened in; SKUs within a box are restored to request order.
func buildResult(open []*openBox) model.PackResult {
	boxes := make([]model.BoxAssignment, len(open))
	for i, b := range open {
		sort.Slice(b.items, func(x, y int) bool {
			return b.items[x].pos < b.items[y].pos
		})

		skus := make([]string, len(b.items))
		for j, placed := range b.items {
			skus[j] = placed.item.SKU
		}

		boxes[i] = model.BoxAssignment{
			BoxID:      b.box.ID,
			Dimensions: b.box.Dimensions,
			Items:      skus,
		}
	}

	return model.PackResult{Boxes: boxes, TotalBoxes: len(boxes)}
}
