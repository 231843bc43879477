package pattern

import (
	"fmt"

	"github.com/spikeknit/spikeknit/errs"
)

// Defaults used by front ends before the user picks values.
const (
	DefaultSpikeHeight   = 4
	DefaultSpikeDistance = 4
)

// Rows outside the spike halves: two top border rows and two middle rows.
const (
	borderRows = 2
	middleRows = 2
)

// Params holds the two generation parameters.
type Params struct {
	// SpikeHeight is the number of rows in each half of a spike, at least 1.
	SpikeHeight int
	// SpikeDistance is the horizontal spacing between the increase and the
	// decrease of a spike row, at least 1.
	SpikeDistance int
}

// DefaultParams returns the parameters a front end starts with.
func DefaultParams() Params {
	return Params{SpikeHeight: DefaultSpikeHeight, SpikeDistance: DefaultSpikeDistance}
}

// Validate rejects non-positive parameters.
func (p Params) Validate() error {
	if p.SpikeHeight < 1 {
		return fmt.Errorf("%w: got %d", errs.ErrInvalidSpikeHeight, p.SpikeHeight)
	}
	if p.SpikeDistance < 1 {
		return fmt.Errorf("%w: got %d", errs.ErrInvalidSpikeDistance, p.SpikeDistance)
	}

	return nil
}

// Width returns the knitted width shared by every row: 2d + 2h + 2.
func (p Params) Width() int {
	return 2*p.SpikeDistance + 2*p.SpikeHeight + 2
}

// RowCount returns the number of rows in one repeat: 4 + 2h.
func (p Params) RowCount() int {
	return borderRows + middleRows + 2*p.SpikeHeight
}

func (p Params) String() string {
	return fmt.Sprintf("height=%d distance=%d", p.SpikeHeight, p.SpikeDistance)
}
