package pyrodash

import (
	"fmt"
	"math"
	"strconv"

	"gonum.org/v1/gonum/spatial/r3"
)

// Sign patterns of the up-tetrahedron vertices relative to its center.
var tetraVertexSigns = [SitesPerTetra]r3.Vec{
	{X: 1, Y: 1, Z: 1},
	{X: 1, Y: -1, Z: -1},
	{X: -1, Y: -1, Z: 1},
	{X: -1, Y: 1, Z: -1},
}

// Triangular faces of a tetrahedron by vertex index.
var tetraFaces = [4][3]int{
	{0, 1, 2},
	{0, 2, 3},
	{0, 3, 1},
	{1, 2, 3},
}

// Tetrahedra is a pair of corner-sharing tetrahedra in the [111]
// direction: an up tetrahedron around centerUp and the down tetrahedron
// obtained by point reflection of its vertices through vertex 0.
type Tetrahedra struct {
	CenterUp  r3.Vec
	Side      Real
	InitCount int

	UpVertices   [SitesPerTetra]r3.Vec
	DownVertices [SitesPerTetra]r3.Vec

	upFaces     []Trace
	downFaces   []Trace
	siteNumbers Trace
}

// NewTetrahedra builds the pair from the up-tetrahedron center and the
// side of the cube the tetrahedron is inscribed in (0 selects the
// default). initCount is the hover label of site 0; n is a transparency
// hint, faces get dimmer as the cube root of n grows.
func NewTetrahedra(centerUp r3.Vec, side Real, initCount, n int) (*Tetrahedra, error) {
	if side == 0 {
		side = TetraSide
	}
	if side < 0 || !isFinite(side) {
		return nil, fmt.Errorf("tetrahedron side must be > 0, got %v", side)
	}
	if n < 1 {
		return nil, fmt.Errorf("transparency hint must be >= 1, got %d", n)
	}

	t := &Tetrahedra{CenterUp: centerUp, Side: side, InitCount: initCount}

	for i, s := range tetraVertexSigns {
		t.UpVertices[i] = r3.Add(centerUp, r3.Scale(side/2, s))
	}
	// Point reflection through vertex 0: down = 2*up[0] - up.
	for i, v := range t.UpVertices {
		t.DownVertices[i] = r3.Sub(r3.Scale(2, t.UpVertices[0]), v)
	}

	t.upFaces = faceMeshes(t.UpVertices, UpFaceColor, n)
	t.downFaces = faceMeshes(t.DownVertices, DownFaceColor, n)
	t.siteNumbers = siteMarkers(t.UpVertices, initCount)

	return t, nil
}

// faceMeshes emits one triangle mesh per face, opacity rising with the
// face index and damped by the cube root of the transparency hint.
func faceMeshes(vertices [SitesPerTetra]r3.Vec, color string, n int) []Trace {
	xs := make([]Real, SitesPerTetra)
	ys := make([]Real, SitesPerTetra)
	zs := make([]Real, SitesPerTetra)
	for i, v := range vertices {
		xs[i], ys[i], zs[i] = v.X, v.Y, v.Z
	}

	damp := math.Cbrt(float64(n))
	faces := make([]Trace, 0, len(tetraFaces))
	for i, face := range tetraFaces {
		faces = append(faces, &MeshTrace{
			Type:      "mesh3d",
			X:         xs,
			Y:         ys,
			Z:         zs,
			I:         []int{face[0]},
			J:         []int{face[1]},
			K:         []int{face[2]},
			Opacity:   (0.15 + Real(i)*0.15) / damp,
			FaceColor: []string{color},
			HoverInfo: "none",
			ShowScale: false,
		})
	}
	return faces
}

// siteMarkers is an invisible marker set whose hover labels number the
// up-tetrahedron sites initCount..initCount+3.
func siteMarkers(vertices [SitesPerTetra]r3.Vec, initCount int) Trace {
	xs := make([]Real, SitesPerTetra)
	ys := make([]Real, SitesPerTetra)
	zs := make([]Real, SitesPerTetra)
	labels := make([]string, SitesPerTetra)
	for i, v := range vertices {
		xs[i], ys[i], zs[i] = v.X, v.Y, v.Z
		labels[i] = strconv.Itoa(initCount + i)
	}

	return &ScatterTrace{
		Type:        "scatter3d",
		X:           xs,
		Y:           ys,
		Z:           zs,
		Mode:        "markers",
		Marker:      &Marker{Color: UpFaceColor},
		SurfaceAxis: -1,
		Opacity:     0,
		HoverInfo:   "text",
		HoverText:   labels,
		HoverLabel:  &HoverLabel{Font: HoverFont{Family: "serif", Size: 20, Color: "white"}},
		ShowLegend:  false,
	}
}

// UpFaces returns the four face meshes of the up tetrahedron.
func (t *Tetrahedra) UpFaces() []Trace { return t.upFaces }

// DownFaces returns the four face meshes of the down tetrahedron.
func (t *Tetrahedra) DownFaces() []Trace { return t.downFaces }

// SiteNumbers returns the invisible hover-label marker set.
func (t *Tetrahedra) SiteNumbers() Trace { return t.siteNumbers }
