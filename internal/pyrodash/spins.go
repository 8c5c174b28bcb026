package pyrodash

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// baseSpinAxes are the local [111]-type directions of the four sites of
// an up tetrahedron, unit length.
var baseSpinAxes = func() [SitesPerTetra]r3.Vec {
	signs := [SitesPerTetra]r3.Vec{
		{X: 1, Y: 1, Z: 1},
		{X: 1, Y: -1, Z: -1},
		{X: -1, Y: -1, Z: 1},
		{X: -1, Y: 1, Z: -1},
	}
	for i := range signs {
		signs[i] = r3.Scale(1/math.Sqrt(3), signs[i])
	}
	return signs
}()

// Spins renders the four spins of an up tetrahedron as arrows along the
// fixed crystallographic axes, sign-flipped and colored by spin value.
type Spins struct {
	Positions [SitesPerTetra]r3.Vec
	Values    [SitesPerTetra]int
	Axes      [SitesPerTetra]r3.Vec
	Colors    [SitesPerTetra]string
	Arrows    [SitesPerTetra]*Arrow

	surfaces []Trace
}

// NewSpins builds the spin arrows for one tetrahedron from its four
// site positions and the matching spin values. Every value must be
// exactly +1 or -1.
func NewSpins(positions [SitesPerTetra]r3.Vec, values []int) (*Spins, error) {
	if len(values) != SitesPerTetra {
		return nil, fmt.Errorf("expected %d spin values, got %d", SitesPerTetra, len(values))
	}
	for _, v := range values {
		if v != 1 && v != -1 {
			return nil, fmt.Errorf("spin values must be 1 or -1, got %d", v)
		}
	}

	s := &Spins{Positions: positions}
	copy(s.Values[:], values)

	for i := 0; i < SitesPerTetra; i++ {
		s.Axes[i] = r3.Scale(Real(s.Values[i]), baseSpinAxes[i])
		if s.Values[i] == 1 {
			s.Colors[i] = SpinUpColor
		} else {
			s.Colors[i] = SpinDownColor
		}

		arrow, err := NewArrow(positions[i], SpinArrowRadius, SpinArrowLength, s.Axes[i], PivotMid, s.Colors[i], DefaultMeshSize)
		if err != nil {
			return nil, err
		}
		s.Arrows[i] = arrow
		s.surfaces = append(s.surfaces, arrow.Surface()...)
	}

	return s, nil
}

// Surfaces returns the primitives of all four arrows in site order.
func (s *Spins) Surfaces() []Trace { return s.surfaces }
