package pattern

import (
	"fmt"

	"github.com/spikeknit/spikeknit/errs"
	"github.com/spikeknit/spikeknit/format"
)

// Chart cells occupied by the fixed-arity stitches.
const (
	KYOKCells = 1
	SK2PCells = 3
)

// Stitch is one entry of a Row: a plain run, a gap, or one of the two
// shaping operations.
//
// The zero value is not a valid stitch.
type Stitch struct {
	kind  format.StitchKind
	count int
}

// Plain returns a run of n knit stitches.
func Plain(n int) Stitch {
	return Stitch{kind: format.StitchPlain, count: n}
}

// Gap returns n blank chart cells.
func Gap(n int) Stitch {
	return Stitch{kind: format.StitchGap, count: n}
}

// KYOK returns a single knit-yarn over-knit increase.
func KYOK() Stitch {
	return Stitch{kind: format.StitchKYOK, count: 1}
}

// SK2P returns a single slip-knit two-pass decrease.
func SK2P() Stitch {
	return Stitch{kind: format.StitchSK2P, count: 1}
}

// NewStitch builds a stitch from decoded parts.
//
// Parameters:
//   - kind: Stitch kind
//   - count: Repeat count; must be positive for Plain and Gap, and 1 for KYOK and SK2P
//
// Returns:
//   - Stitch: The validated stitch
//   - error: ErrInvalidStitch if kind is unknown or count does not fit the kind
func NewStitch(kind format.StitchKind, count int) (Stitch, error) {
	switch kind {
	case format.StitchPlain, format.StitchGap:
		if count < 1 {
			return Stitch{}, fmt.Errorf("%w: %s count %d", errs.ErrInvalidStitch, kind, count)
		}
	case format.StitchKYOK, format.StitchSK2P:
		if count != 1 {
			return Stitch{}, fmt.Errorf("%w: %s takes no count, got %d", errs.ErrInvalidStitch, kind, count)
		}
	default:
		return Stitch{}, fmt.Errorf("%w: kind %d", errs.ErrInvalidStitch, kind)
	}

	return Stitch{kind: kind, count: count}, nil
}

// Kind returns the stitch kind.
func (s Stitch) Kind() format.StitchKind {
	return s.kind
}

// Count returns the repeat count. KYOK and SK2P always report 1.
func (s Stitch) Count() int {
	return s.count
}

// Valid reports whether s could have been returned by NewStitch.
func (s Stitch) Valid() bool {
	_, err := NewStitch(s.kind, s.count)
	return err == nil
}

// Cells returns how many chart cells the stitch occupies, gaps included.
func (s Stitch) Cells() int {
	switch s.kind {
	case format.StitchPlain, format.StitchGap:
		return s.count
	case format.StitchKYOK:
		return KYOKCells
	case format.StitchSK2P:
		return SK2PCells
	default:
		return 0
	}
}

// Width returns the knitted width of the stitch. Gaps have no width.
func (s Stitch) Width() int {
	if s.kind == format.StitchGap {
		return 0
	}

	return s.Cells()
}

func (s Stitch) String() string {
	if s.kind.Repeatable() {
		return fmt.Sprintf("%s(%d)", s.kind, s.count)
	}

	return s.kind.String()
}
