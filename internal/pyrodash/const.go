package pyrodash

// Real is the scalar type used for all coordinate math.
type Real = float64

const (
	// DefaultMeshSize is the per-dimension resolution of parametric surfaces.
	DefaultMeshSize = 50
	// CirclePoints is the number of boundary points of a filled circle.
	CirclePoints = 50
	// DefaultSurfaceColor is the fallback color of any surface.
	DefaultSurfaceColor = "#636efa"

	// Arrow proportions.
	ConeLengthRatio         = 0.4 // head length / total length
	ConeCylinderRadiusRatio = 1.8 // head base radius / shaft radius

	// Spin arrows.
	SpinArrowRadius = 0.036
	SpinArrowLength = 0.6
	SpinUpColor     = "blue"
	SpinDownColor   = "black"

	// Tetrahedra.
	TetraSide     = 0.25 // side of the cube the tetrahedron is inscribed in
	UpFaceColor   = "mediumpurple"
	DownFaceColor = "lightskyblue"

	// Lattice addressing.
	SitesPerCell  = 16
	SitesPerTetra = 4

	// Monopole radii and colors keyed by |charge|.
	SimpleMonopoleRadius = 0.16
	DoubleMonopoleRadius = 0.24
	PositiveSimpleColor  = "#02590f"
	NegativeSimpleColor  = "#be0119"
	PositiveDoubleColor  = "#01ff07"
	NegativeDoubleColor  = "red"
	NeutralColor         = "black"
)

// Arrow pivot anchors.
const (
	PivotTail = "tail"
	PivotMid  = "mid"
	PivotTip  = "tip"
)
