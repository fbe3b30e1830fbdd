package grid

import "github.com/matzehuels/gridpack/pkg/errors"

// Validate checks that l is well-formed: every item has a usable, unique ID
// and a positive size. Positions are not checked; negative or overlapping
// positions are what the engine is for.
func Validate(l Layout) error {
	seen := make(map[string]bool, len(l))
	for _, it := range l {
		if err := errors.ValidateItemID(it.ID); err != nil {
			return err
		}
		if seen[it.ID] {
			return errors.New(errors.ErrCodeInvalidLayout, "duplicate item id %q", it.ID)
		}
		seen[it.ID] = true
		if err := errors.ValidateDimensions(it.ID, it.W, it.H); err != nil {
			return err
		}
	}
	return nil
}

// Overlaps returns every pair of items in l that break the no-overlap
// invariant, as ID pairs in layout order.
func Overlaps(l Layout) [][2]string {
	var out [][2]string
	for i := range l {
		for j := i + 1; j < len(l); j++ {
			if l[i].Static && l[j].Static {
				continue
			}
			if Collides(l[i], l[j]) {
				out = append(out, [2]string{l[i].ID, l[j].ID})
			}
		}
	}
	return out
}
