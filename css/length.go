package css

import (
	"fmt"
	"strconv"

	"github.com/npillmayer/docpp/property"
	"github.com/npillmayer/tyse/core/dimen"
)

type lengthKind uint8

const (
	lengthNone lengthKind = iota
	lengthAbsolute
	lengthAuto
	lengthInherit
	lengthInitial
	lengthPercent
	lengthPixels
)

// Length is a value for dimension-typed declarations, e.g. margins or widths.
//
//     type Length
//         = Auto
//         | Inherit
//         | Initial
//         | Pt dimen
//         | Percent int
//         | Px int
//
// The zero value renders as the empty string, which makes a declaration
// carrying it invisible.
type Length struct {
	d    dimen.DU
	n    int
	kind lengthKind
}

// Auto is the length "auto".
func Auto() Length {
	return Length{kind: lengthAuto}
}

// Inherit is the length "inherit".
func Inherit() Length {
	return Length{kind: lengthInherit}
}

// Initial is the length "initial".
func Initial() Length {
	return Length{kind: lengthInitial}
}

// Pt creates a fixed length of x, rendered in printer's points.
func Pt(x dimen.DU) Length {
	return Length{d: x, kind: lengthAbsolute}
}

// Percent creates a %-relative length.
func Percent(n int) Length {
	return Length{n: n, kind: lengthPercent}
}

// Px creates a length in CSS pixels.
func Px(n int) Length {
	return Length{n: n, kind: lengthPixels}
}

// IsKind is true if l and other are of the same kind, disregarding their
// values.
func (l Length) IsKind(other Length) bool {
	return l.kind == other.kind
}

// Dimen returns the fixed value of l. The second return value is false for
// lengths which are not fixed.
func (l Length) Dimen() (dimen.DU, bool) {
	return l.d, l.kind == lengthAbsolute
}

func (l Length) String() string {
	switch l.kind {
	case lengthAuto:
		return "auto"
	case lengthInherit:
		return "inherit"
	case lengthInitial:
		return "initial"
	case lengthAbsolute:
		pt := float64(l.d) / float64(dimen.PT)
		return strconv.FormatFloat(pt, 'f', -1, 64) + "pt"
	case lengthPercent:
		return fmt.Sprintf("%d%%", l.n)
	case lengthPixels:
		return fmt.Sprintf("%dpx", l.n)
	}
	return ""
}

// Declaration creates a declaration for property key with value l.
func Declaration(key string, l Length) property.Property {
	return property.New(key, l.String())
}
