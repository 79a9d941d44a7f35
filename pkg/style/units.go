package style

import (
	"fmt"
	"math"
)

// UnitKind discriminates Units values.
type UnitKind int

const (
	// Auto sizes from the parent's content box.
	Auto UnitKind = iota
	// Pixels is an absolute logical-pixel length.
	Pixels
	// Percentage is a fraction of the parent dimension, 0-100.
	Percentage
	// Stretch fills the remaining space.
	Stretch
)

// Units is a layout dimension: auto, absolute pixels, a percentage of
// the parent, or stretch.
type Units struct {
	Kind  UnitKind
	Value float64
}

// Px returns an absolute pixel dimension.
func Px(v float64) Units { return Units{Kind: Pixels, Value: v} }

// Pct returns a percentage dimension.
func Pct(v float64) Units { return Units{Kind: Percentage, Value: v} }

// AutoUnits returns the auto dimension.
func AutoUnits() Units { return Units{Kind: Auto} }

// StretchUnits returns the stretch dimension.
func StretchUnits() Units { return Units{Kind: Stretch} }

// Resolve converts the dimension to logical pixels against the parent
// dimension. Auto and stretch both take the full parent extent here;
// a richer layout solver may interpret them differently.
func (u Units) Resolve(parent float64) float64 {
	switch u.Kind {
	case Pixels:
		return u.Value
	case Percentage:
		return parent * u.Value / 100
	default:
		return parent
	}
}

// Valid reports whether the dimension is well-formed: finite and
// non-negative, with percentages in 0-100.
func (u Units) Valid() bool {
	if math.IsNaN(u.Value) || math.IsInf(u.Value, 0) || u.Value < 0 {
		return false
	}
	if u.Kind == Percentage && u.Value > 100 {
		return false
	}
	return true
}

func (u Units) String() string {
	switch u.Kind {
	case Pixels:
		return fmt.Sprintf("%gpx", u.Value)
	case Percentage:
		return fmt.Sprintf("%g%%", u.Value)
	case Stretch:
		return "stretch"
	default:
		return "auto"
	}
}
