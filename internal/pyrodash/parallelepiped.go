package pyrodash

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// The six ways of grabbing four corners out of the eight parallelepiped
// vertices, in winding order for a quad outline. Opposite faces sit in
// adjacent table slots so that face i fills toward axis i/2.
var parallelepipedFaces = [6][4]int{
	{2, 0, 1, 3},
	{4, 6, 7, 5},
	{6, 2, 3, 7},
	{0, 4, 5, 1},
	{0, 4, 6, 2},
	{1, 5, 7, 3},
}

// Parallelepiped is an axis-aligned box given by three side lengths and
// an origin vertex. Each of the six faces is rendered twice: an edge
// outline and a fill region with its own opacity.
type Parallelepiped struct {
	Sides  r3.Vec
	Origin r3.Vec

	// Vertices in binary order: index 4*bx + 2*by + bz selects the
	// corner at origin + (bx*Lx, by*Ly, bz*Lz).
	Vertices [8]r3.Vec

	faces []Trace
}

func NewParallelepiped(sides, origin r3.Vec, edgeColor string, edgeWidth, faceOpacity Real) (*Parallelepiped, error) {
	if sides.X < 0 || sides.Y < 0 || sides.Z < 0 ||
		!isFinite(sides.X) || !isFinite(sides.Y) || !isFinite(sides.Z) {
		return nil, fmt.Errorf("parallelepiped sides must be >= 0 and finite, got %+v", sides)
	}
	if faceOpacity < 0 || faceOpacity > 1 {
		return nil, fmt.Errorf("face opacity must be in [0,1], got %v", faceOpacity)
	}
	if edgeColor == "" {
		edgeColor = "black"
	}
	if edgeWidth == 0 {
		edgeWidth = 1.5
	}
	if edgeWidth < 0 {
		return nil, fmt.Errorf("edge width must be >= 0, got %v", edgeWidth)
	}

	p := &Parallelepiped{Sides: sides, Origin: origin}

	idx := 0
	for _, dx := range []Real{0, sides.X} {
		for _, dy := range []Real{0, sides.Y} {
			for _, dz := range []Real{0, sides.Z} {
				p.Vertices[idx] = r3.Add(origin, r3.Vec{X: dx, Y: dy, Z: dz})
				idx++
			}
		}
	}

	p.faces = make([]Trace, 0, 2*len(parallelepipedFaces))
	for i, face := range parallelepipedFaces {
		xs := make([]Real, 4)
		ys := make([]Real, 4)
		zs := make([]Real, 4)
		for j, v := range face {
			xs[j], ys[j], zs[j] = p.Vertices[v].X, p.Vertices[v].Y, p.Vertices[v].Z
		}

		p.faces = append(p.faces, &ScatterTrace{
			Type:        "scatter3d",
			X:           xs,
			Y:           ys,
			Z:           zs,
			Mode:        "lines",
			Line:        &Line{Color: edgeColor, Width: edgeWidth},
			SurfaceAxis: -1,
			Opacity:     1,
			HoverInfo:   "none",
			ShowLegend:  false,
		})

		p.faces = append(p.faces, &ScatterTrace{
			Type:         "scatter3d",
			X:            xs,
			Y:            ys,
			Z:            zs,
			Mode:         "lines",
			Line:         &Line{Color: "gray", Width: 0},
			SurfaceAxis:  i / 2,
			SurfaceColor: "gray",
			Opacity:      faceOpacity,
			HoverInfo:    "none",
			ShowLegend:   false,
		})
	}

	return p, nil
}

// NewCube is a Parallelepiped with equal sides.
func NewCube(side Real, origin r3.Vec, edgeColor string, edgeWidth, faceOpacity Real) (*Parallelepiped, error) {
	return NewParallelepiped(r3.Vec{X: side, Y: side, Z: side}, origin, edgeColor, edgeWidth, faceOpacity)
}

// Faces returns the interleaved edge and fill primitives, two per face.
func (p *Parallelepiped) Faces() []Trace { return p.faces }
