package pyrodash

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Cylinder is a parametric cylinder surface, used as the arrow shaft.
// Parameterized by azimuth theta in [0,2pi] and axial position t in
// [0,1] from base to top.
type Cylinder struct {
	Center r3.Vec
	Radius Real
	Length Real
	Axis   r3.Vec // unit

	BaseCenter r3.Vec
	TopCenter  r3.Vec

	X, Y, Z [][]Real

	surface []Trace
}

// NewCylinder builds a cylinder around center along axis. n1 and n2 are
// an optional precomputed transverse frame (pass zero vectors to have
// it derived from the axis).
func NewCylinder(center r3.Vec, radius, length Real, axis, n1, n2 r3.Vec, color string, meshSize int) (*Cylinder, error) {
	if radius <= 0 || !isFinite(radius) {
		return nil, fmt.Errorf("cylinder radius must be > 0, got %v", radius)
	}
	if length <= 0 || !isFinite(length) {
		return nil, fmt.Errorf("cylinder length must be > 0, got %v", length)
	}
	if r3.Norm(axis) == 0 {
		return nil, fmt.Errorf("cylinder axis must be non-zero, got %+v", axis)
	}
	if meshSize == 0 {
		meshSize = DefaultMeshSize
	}
	if meshSize < 2 {
		return nil, fmt.Errorf("mesh size must be at least 2, got %d", meshSize)
	}
	if color == "" {
		color = DefaultSurfaceColor
	}

	c := &Cylinder{
		Center: center,
		Radius: radius,
		Length: length,
		Axis:   r3.Unit(axis),
	}
	c.BaseCenter = r3.Sub(center, r3.Scale(length/2, c.Axis))
	c.TopCenter = r3.Add(center, r3.Scale(length/2, c.Axis))

	if n1 == (r3.Vec{}) || n2 == (r3.Vec{}) {
		n1, n2 = PerpendicularPlaneVectors(c.Axis)
	}

	theta := linspace(0, 2*math.Pi, meshSize)
	t := linspace(0, 1, meshSize)

	c.X, c.Y, c.Z = allocMesh(meshSize)
	for i := 0; i < meshSize; i++ { // rows sweep t
		axial := r3.Add(c.BaseCenter, r3.Scale(t[i]*length, c.Axis))
		for j := 0; j < meshSize; j++ { // columns sweep theta
			rim := r3.Add(r3.Scale(radius*math.Sin(theta[j]), n1), r3.Scale(radius*math.Cos(theta[j]), n2))
			p := r3.Add(axial, rim)
			c.X[i][j], c.Y[i][j], c.Z[i][j] = p.X, p.Y, p.Z
		}
	}

	c.surface = []Trace{newSurfaceTrace(c.X, c.Y, c.Z, color)}
	DebugLog("Created cylinder: center=%+v, radius=%v, length=%v, axis=%+v", center, radius, length, c.Axis)
	return c, nil
}

func (c *Cylinder) Mesh() (x, y, z [][]Real) { return c.X, c.Y, c.Z }
func (c *Cylinder) Surface() []Trace         { return c.surface }
