package pyrodash

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Sphere is a parametric sphere surface, used for monopoles.
// Parameterized by polar angle theta in [0,pi] and azimuth phi in
// [0,2pi]; the mesh is computed once at construction.
type Sphere struct {
	Center r3.Vec
	Radius Real

	X, Y, Z [][]Real

	surface []Trace
}

func NewSphere(center r3.Vec, radius Real, color string, meshSize int) (*Sphere, error) {
	if radius < 0 || !isFinite(radius) {
		return nil, fmt.Errorf("sphere radius must be >= 0 and finite, got %v", radius)
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

	s := &Sphere{Center: center, Radius: radius}

	theta := linspace(0, math.Pi, meshSize)
	phi := linspace(0, 2*math.Pi, meshSize)

	s.X, s.Y, s.Z = allocMesh(meshSize)
	for i := 0; i < meshSize; i++ { // rows sweep phi
		sinP, cosP := math.Sin(phi[i]), math.Cos(phi[i])
		for j := 0; j < meshSize; j++ { // columns sweep theta
			sinT, cosT := math.Sin(theta[j]), math.Cos(theta[j])
			s.X[i][j] = center.X + radius*sinT*cosP
			s.Y[i][j] = center.Y + radius*sinT*sinP
			s.Z[i][j] = center.Z + radius*cosT
		}
	}

	s.surface = []Trace{newSurfaceTrace(s.X, s.Y, s.Z, color)}
	DebugLog("Created sphere: center=%+v, radius=%v", center, radius)
	return s, nil
}

func (s *Sphere) Mesh() (x, y, z [][]Real) { return s.X, s.Y, s.Z }
func (s *Sphere) Surface() []Trace         { return s.surface }
