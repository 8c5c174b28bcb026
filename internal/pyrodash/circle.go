package pyrodash

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Circle is a filled planar disk, used to cap cylinders and cones.
// The boundary is a closed loop of CirclePoints points in the plane
// spanned by the transverse frame of its axis; the enclosed region is
// filled via the renderer's fill-to-axis convention.
type Circle struct {
	Center r3.Vec
	Radius Real
	Axis   r3.Vec // unit

	X, Y, Z []Real

	scatter []Trace
}

// NewCircle builds a filled circle around center in the plane
// orthogonal to axis. n1 and n2 are an optional precomputed transverse
// frame (pass zero vectors to have it derived from the axis).
func NewCircle(center r3.Vec, radius Real, axis, n1, n2 r3.Vec, color string) (*Circle, error) {
	if radius <= 0 || !isFinite(radius) {
		return nil, fmt.Errorf("circle radius must be > 0, got %v", radius)
	}
	if r3.Norm(axis) == 0 {
		return nil, fmt.Errorf("circle axis must be non-zero, got %+v", axis)
	}
	if color == "" {
		color = DefaultSurfaceColor
	}

	c := &Circle{
		Center: center,
		Radius: radius,
		Axis:   r3.Unit(axis),
	}

	if n1 == (r3.Vec{}) || n2 == (r3.Vec{}) {
		n1, n2 = PerpendicularPlaneVectors(c.Axis)
	}

	theta := linspace(0, 2*math.Pi, CirclePoints)
	c.X = make([]Real, CirclePoints)
	c.Y = make([]Real, CirclePoints)
	c.Z = make([]Real, CirclePoints)
	for i, th := range theta {
		p := r3.Add(center, r3.Add(
			r3.Scale(radius*math.Cos(th), n1),
			r3.Scale(radius*math.Sin(th), n2),
		))
		c.X[i], c.Y[i], c.Z[i] = p.X, p.Y, p.Z
	}

	c.scatter = []Trace{&ScatterTrace{
		Type:        "scatter3d",
		X:           c.X,
		Y:           c.Y,
		Z:           c.Z,
		Mode:        "lines",
		Line:        &Line{Color: color, Width: 2},
		SurfaceAxis: 2,
		Opacity:     1,
		HoverInfo:   "none",
		ShowLegend:  false,
	}}
	return c, nil
}

// Scatter returns the filled-circle primitive.
func (c *Circle) Scatter() []Trace { return c.scatter }
