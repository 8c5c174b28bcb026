package pyrodash

// Trace is one renderable primitive of a figure. The concrete kinds
// mirror the three plot primitives the downstream 3D surface accepts:
// shaded coordinate meshes, line/marker scatters and triangle meshes.
// A figure is an ordered []Trace; the whole list marshals to JSON that
// a plotly-style renderer consumes as-is.
type Trace interface {
	isTrace()
}

// ColorStop is one [position, color] entry of a colorscale.
type ColorStop [2]interface{}

// flatColorscale maps the whole value range to a single color.
func flatColorscale(color string) []ColorStop {
	return []ColorStop{{0.0, color}, {1.0, color}}
}

// Lighting parameters of a shaded surface.
type Lighting struct {
	Ambient   Real `json:"ambient"`
	Diffuse   Real `json:"diffuse"`
	Specular  Real `json:"specular"`
	Roughness Real `json:"roughness"`
}

// LightPosition is the position of the light source of a shaded surface.
type LightPosition struct {
	X Real `json:"x"`
	Y Real `json:"y"`
	Z Real `json:"z"`
}

type contourAxis struct {
	Highlight bool `json:"highlight"`
}

// Contours disables the hover highlight lines on all three axes.
type Contours struct {
	X contourAxis `json:"x"`
	Y contourAxis `json:"y"`
	Z contourAxis `json:"z"`
}

// SurfaceTrace is a shaded rectangular coordinate mesh with a single
// flat color, no grid lines and fixed lighting.
type SurfaceTrace struct {
	Type          string        `json:"type"`
	X             [][]Real      `json:"x"`
	Y             [][]Real      `json:"y"`
	Z             [][]Real      `json:"z"`
	Colorscale    []ColorStop   `json:"colorscale"`
	HoverInfo     string        `json:"hoverinfo"`
	ShowScale     bool          `json:"showscale"`
	Contours      Contours      `json:"contours"`
	Lighting      Lighting      `json:"lighting"`
	LightPosition LightPosition `json:"lightposition"`
}

func (*SurfaceTrace) isTrace() {}

// newSurfaceTrace packages mesh coordinates as a surface with the
// fixed shading used by every curved shape.
func newSurfaceTrace(x, y, z [][]Real, color string) *SurfaceTrace {
	return &SurfaceTrace{
		Type:       "surface",
		X:          x,
		Y:          y,
		Z:          z,
		Colorscale: flatColorscale(color),
		HoverInfo:  "none",
		ShowScale:  false,
		Lighting:   Lighting{Ambient: 0.6, Diffuse: 0.9, Specular: 0.25, Roughness: 0.35},
		LightPosition: LightPosition{
			X: -100, Y: 0, Z: 0,
		},
	}
}

// Line style of a scatter trace.
type Line struct {
	Color string `json:"color"`
	Width Real   `json:"width"`
}

// Marker style of a scatter trace.
type Marker struct {
	Color string `json:"color"`
}

// HoverFont styles the hover label text.
type HoverFont struct {
	Family string `json:"family"`
	Size   int    `json:"size"`
	Color  string `json:"color"`
}

// HoverLabel wraps the hover label font.
type HoverLabel struct {
	Font HoverFont `json:"font"`
}

// ScatterTrace is a 3D line or marker scatter. SurfaceAxis -1 means no
// fill; 0, 1 or 2 fills the enclosed planar region toward that axis.
type ScatterTrace struct {
	Type         string      `json:"type"`
	X            []Real      `json:"x"`
	Y            []Real      `json:"y"`
	Z            []Real      `json:"z"`
	Mode         string      `json:"mode"`
	Line         *Line       `json:"line,omitempty"`
	Marker       *Marker     `json:"marker,omitempty"`
	SurfaceAxis  int         `json:"surfaceaxis"`
	SurfaceColor string      `json:"surfacecolor,omitempty"`
	Opacity      Real        `json:"opacity"`
	HoverInfo    string      `json:"hoverinfo"`
	HoverText    []string    `json:"hovertext,omitempty"`
	HoverLabel   *HoverLabel `json:"hoverlabel,omitempty"`
	ShowLegend   bool        `json:"showlegend"`
}

func (*ScatterTrace) isTrace() {}

// MeshTrace is a triangle mesh given by vertex coordinates and per-face
// vertex indices i/j/k.
type MeshTrace struct {
	Type      string   `json:"type"`
	X         []Real   `json:"x"`
	Y         []Real   `json:"y"`
	Z         []Real   `json:"z"`
	I         []int    `json:"i"`
	J         []int    `json:"j"`
	K         []int    `json:"k"`
	Opacity   Real     `json:"opacity"`
	FaceColor []string `json:"facecolor"`
	HoverInfo string   `json:"hoverinfo"`
	ShowScale bool     `json:"showscale"`
}

func (*MeshTrace) isTrace() {}
