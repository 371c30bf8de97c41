package waves

import (
	"cmp"
	"fmt"
	"slices"
)

// Mode identifies one multipole component by degree l and order m.
type Mode struct {
	Degree int
	Order  int
}

// String formats the mode as (l,m).
func (m Mode) String() string { return fmt.Sprintf("(%d,%d)", m.Degree, m.Order) }

// Compare orders modes by ascending degree, then ascending order.
func (m Mode) Compare(o Mode) int {
	if c := cmp.Compare(m.Degree, o.Degree); c != 0 {
		return c
	}

	return cmp.Compare(m.Order, o.Order)
}

func sortModes(modes []Mode) {
	slices.SortFunc(modes, Mode.Compare)
}
