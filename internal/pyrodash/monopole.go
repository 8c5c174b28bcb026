package pyrodash

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Monopole is a sphere whose radius and color encode an integer charge.
// Charge 0 is the ice-rule vacuum (no visible sphere), |2| a simple
// monopole and |4| a double monopole.
type Monopole struct {
	Charge int
	Sphere *Sphere
}

// NewMonopole maps a charge to its sphere. Charges outside
// {0, +2, -2, +4, -4} are rejected.
func NewMonopole(charge int, center r3.Vec) (*Monopole, error) {
	var (
		radius Real
		color  string
	)
	switch charge {
	case 0:
		radius, color = 0, NeutralColor
	case +2:
		radius, color = SimpleMonopoleRadius, PositiveSimpleColor
	case -2:
		radius, color = SimpleMonopoleRadius, NegativeSimpleColor
	case +4:
		radius, color = DoubleMonopoleRadius, PositiveDoubleColor
	case -4:
		radius, color = DoubleMonopoleRadius, NegativeDoubleColor
	default:
		return nil, fmt.Errorf("monopole charge must be one of 0, +2, -2, +4, -4, got %d", charge)
	}

	sphere, err := NewSphere(center, radius, color, DefaultMeshSize)
	if err != nil {
		return nil, err
	}
	return &Monopole{Charge: charge, Sphere: sphere}, nil
}

// Surface returns the sphere primitive of the monopole.
func (m *Monopole) Surface() []Trace { return m.Sphere.Surface() }
