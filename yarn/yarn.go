// Package yarn maps yarn weights to suggested needle sizes.
package yarn

import (
	"fmt"

	"github.com/spikeknit/spikeknit/errs"
)

// Weight is a yarn weight label such as "8 ply".
type Weight string

// DefaultWeight is the weight front ends start with.
const DefaultWeight Weight = "8 ply"

type entry struct {
	weight Weight
	needle string
}

// table is ordered from finest to bulkiest.
var table = []entry{
	{"2 ply", "1.5 mm"},
	{"4 ply", "2.5 mm"},
	{"5 ply", "3 mm"},
	{"8 ply", "3.75 mm"},
	{"10 ply", "4.5 mm"},
	{"12 ply", "5.5 mm"},
	{"14+ ply", "7 mm"},
}

// Weights returns every known weight, finest first.
func Weights() []Weight {
	out := make([]Weight, len(table))
	for i, e := range table {
		out[i] = e.weight
	}

	return out
}

// NeedleSize returns the suggested needle size for w.
func NeedleSize(w Weight) (string, error) {
	for _, e := range table {
		if e.weight == w {
			return e.needle, nil
		}
	}

	return "", fmt.Errorf("%w: %q", errs.ErrUnknownYarnWeight, w)
}
