package model

import "fmt"

// Kind identifies one of the four index trees kept in a layer file. The set
// is closed; every layer file carries all four.
type Kind int

const (
	// KindData indexes data values directly. Each entry stores the first and
	// last value of a child data block.
	KindData Kind = iota

	// KindC1Row is the row-number index for column 1. An entry holds the
	// child block's offset, size and an index/data flag; 6 bytes is enough.
	KindC1Row

	// KindRow is the row-number index for the remaining columns. Entries also
	// carry the child's starting row number, so they are wider.
	KindRow

	// KindFilter summarizes fixed 65536-value spans with a probabilistic
	// filter, independent of the data block layout.
	KindFilter
)

// Kinds lists every index kind in report order.
var Kinds = []Kind{KindData, KindC1Row, KindRow, KindFilter}

func (k Kind) String() string {
	switch k {
	case KindData:
		return "data"
	case KindC1Row:
		return "c1row"
	case KindRow:
		return "row"
	case KindFilter:
		return "filter"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ParseKind maps a selector string to a Kind. "c-1-row" is accepted as an
// alias for "c1row".
func ParseKind(s string) (Kind, error) {
	switch s {
	case "data":
		return KindData, nil
	case "c1row", "c-1-row":
		return KindC1Row, nil
	case "row":
		return KindRow, nil
	case "filter":
		return KindFilter, nil
	}
	return 0, fmt.Errorf("unknown index kind %q", s)
}
