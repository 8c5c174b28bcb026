package pyrodash

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Cone is a parametric cone surface, used as the arrow head.
// Parameterized by azimuth theta in [0,2pi] and axial position t in
// [0,-1] running backward from the tip to the base. The backward
// parameterization keeps the mesh oriented tip-first and must not be
// rewritten as base-to-tip.
type Cone struct {
	BaseCenter r3.Vec
	BaseRadius Real
	Length     Real
	Axis       r3.Vec // unit, direction the cone points
	Tip        r3.Vec

	X, Y, Z [][]Real

	surface []Trace
}

// NewCone builds a cone from its base center pointing along axis. n1
// and n2 are an optional precomputed transverse frame (pass zero
// vectors to have it derived from the axis).
func NewCone(baseCenter r3.Vec, baseRadius, length Real, axis, n1, n2 r3.Vec, color string, meshSize int) (*Cone, error) {
	if baseRadius <= 0 || !isFinite(baseRadius) {
		return nil, fmt.Errorf("cone base radius must be > 0, got %v", baseRadius)
	}
	if length <= 0 || !isFinite(length) {
		return nil, fmt.Errorf("cone length must be > 0, got %v", length)
	}
	if r3.Norm(axis) == 0 {
		return nil, fmt.Errorf("cone axis must be non-zero, got %+v", axis)
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

	c := &Cone{
		BaseCenter: baseCenter,
		BaseRadius: baseRadius,
		Length:     length,
		Axis:       r3.Unit(axis),
	}
	c.Tip = r3.Add(baseCenter, r3.Scale(length, c.Axis))

	if n1 == (r3.Vec{}) || n2 == (r3.Vec{}) {
		n1, n2 = PerpendicularPlaneVectors(c.Axis)
	}

	theta := linspace(0, 2*math.Pi, meshSize)
	t := linspace(0, -1, meshSize)

	c.X, c.Y, c.Z = allocMesh(meshSize)
	for i := 0; i < meshSize; i++ { // rows sweep t, row 0 degenerates to the tip
		axial := r3.Add(c.Tip, r3.Scale(t[i]*length, c.Axis))
		for j := 0; j < meshSize; j++ { // columns sweep theta
			rim := r3.Add(
				r3.Scale(t[i]*baseRadius*math.Sin(theta[j]), n1),
				r3.Scale(t[i]*baseRadius*math.Cos(theta[j]), n2),
			)
			p := r3.Add(axial, rim)
			c.X[i][j], c.Y[i][j], c.Z[i][j] = p.X, p.Y, p.Z
		}
	}

	c.surface = []Trace{newSurfaceTrace(c.X, c.Y, c.Z, color)}
	DebugLog("Created cone: base=%+v, radius=%v, length=%v, axis=%+v", baseCenter, baseRadius, length, c.Axis)
	return c, nil
}

func (c *Cone) Mesh() (x, y, z [][]Real) { return c.X, c.Y, c.Z }
func (c *Cone) Surface() []Trace         { return c.surface }
