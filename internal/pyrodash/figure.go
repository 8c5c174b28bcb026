package pyrodash

import (
	"fmt"
)

// Tetrahedron sub-lattice selectors.
const (
	WhichUpDown = "ud"
	WhichUp     = "u"
	WhichDown   = "d"
)

// Camera projection modes.
const (
	ProjectionPerspective  = "perspective"
	ProjectionOrthographic = "orthographic"
)

// FigureOptions selects which of a cell's primitives end up in the
// figure, mirroring the dashboard toggles.
type FigureOptions struct {
	TetraCount      int    // 1..4 tetrahedron pairs
	Which           string // ud, u or d
	CellCube        bool
	IndividualCubes bool
	Spins           bool
	Monopoles       bool
	Projection      string
}

func (o FigureOptions) validate() error {
	if o.TetraCount < 1 || o.TetraCount > 4 {
		return fmt.Errorf("tetrahedron count must be between 1 and 4, got %d", o.TetraCount)
	}
	switch o.Which {
	case WhichUpDown, WhichUp, WhichDown:
	default:
		return fmt.Errorf("%q is not a valid tetrahedra selector; supported values are 'ud', 'u', 'd'", o.Which)
	}
	switch o.Projection {
	case ProjectionPerspective, ProjectionOrthographic:
	default:
		return fmt.Errorf("%q is not a valid projection; supported values are 'perspective', 'orthographic'", o.Projection)
	}
	return nil
}

// Traces returns the ordered primitive list for the selected subset of
// the cell: tetrahedron faces and site labels, then cubes, spins and
// monopoles, exactly as the dashboard composites them.
func (c *UnitCell) Traces(opts FigureOptions) ([]Trace, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	tetras := c.Tetrahedra[:opts.TetraCount]

	var data []Trace
	for _, t := range tetras {
		if opts.Which != WhichDown {
			data = append(data, t.UpFaces()...)
		}
		if opts.Which != WhichUp {
			data = append(data, t.DownFaces()...)
		}
	}
	// Site labels follow the faces; the down-only view has no labeled
	// sites because sites are numbered on the up sub-lattice.
	if opts.Which != WhichDown {
		for _, t := range tetras {
			data = append(data, t.SiteNumbers())
		}
	}

	if opts.CellCube {
		data = append(data, c.Cube.Faces()...)
	}

	if opts.IndividualCubes {
		if opts.Which != WhichDown {
			for _, cube := range c.UpCubes[:opts.TetraCount] {
				data = append(data, cube.Faces()...)
			}
		}
		if opts.Which != WhichUp {
			for _, cube := range c.DownCubes[:opts.TetraCount] {
				data = append(data, cube.Faces()...)
			}
		}
	}

	if opts.Spins {
		for _, s := range c.Spins[:opts.TetraCount] {
			data = append(data, s.Surfaces()...)
		}
	}

	if opts.Monopoles {
		for t := 0; t < opts.TetraCount; t++ {
			if opts.Which != WhichDown {
				data = append(data, c.MonopolesUp[t].Surface()...)
			}
			if opts.Which != WhichUp {
				data = append(data, c.MonopolesDown[t].Surface()...)
			}
		}
	}

	return data, nil
}

// Margin is the outer margin of the figure.
type Margin struct {
	L   int `json:"l"`
	R   int `json:"r"`
	T   int `json:"t"`
	B   int `json:"b"`
	Pad int `json:"pad"`
}

// Eye is the camera eye position.
type Eye struct {
	X Real `json:"x"`
	Y Real `json:"y"`
	Z Real `json:"z"`
}

// CameraProjection selects the projection type.
type CameraProjection struct {
	Type string `json:"type"`
}

// Camera positions the scene camera.
type Camera struct {
	Eye        Eye              `json:"eye"`
	Projection CameraProjection `json:"projection"`
}

// SceneAxis hides every visual element of one scene axis.
type SceneAxis struct {
	Title          string `json:"title"`
	ShowAxesLabels bool   `json:"showaxeslabels"`
	ShowBackground bool   `json:"showbackground"`
	ShowGrid       bool   `json:"showgrid"`
	ShowLine       bool   `json:"showline"`
	ShowSpikes     bool   `json:"showspikes"`
	ShowTickLabels bool   `json:"showticklabels"`
	Ticks          string `json:"ticks"`
}

// AspectRatio is the manual axis scaling of the scene.
type AspectRatio struct {
	X Real `json:"x"`
	Y Real `json:"y"`
	Z Real `json:"z"`
}

// Scene is the 3D scene configuration of the figure layout.
type Scene struct {
	Camera      Camera       `json:"camera"`
	XAxis       SceneAxis    `json:"xaxis"`
	YAxis       SceneAxis    `json:"yaxis"`
	ZAxis       SceneAxis    `json:"zaxis"`
	AspectMode  string       `json:"aspectmode,omitempty"`
	AspectRatio *AspectRatio `json:"aspectratio,omitempty"`
}

// Layout is the figure layout: no margins, hidden axes, fixed camera.
type Layout struct {
	Margin   Margin `json:"margin"`
	Template string `json:"template"`
	Scene    Scene  `json:"scene"`
}

// Figure is a complete renderable scene: ordered primitives plus layout.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// NewFigure assembles the selected traces of a cell with the layout the
// dashboard uses, including the orthographic aspect-ratio rules.
func NewFigure(c *UnitCell, opts FigureOptions) (*Figure, error) {
	data, err := c.Traces(opts)
	if err != nil {
		return nil, err
	}

	layout := Layout{
		Template: "simple_white",
		Scene: Scene{
			Camera: Camera{
				Eye:        Eye{X: 0.5, Y: -1.5, Z: 0.5},
				Projection: CameraProjection{Type: opts.Projection},
			},
		},
	}

	if opts.Projection == ProjectionOrthographic {
		layout.Scene.AspectMode = "manual"
		ratio := &AspectRatio{X: 1.5, Y: 1.5, Z: 1.5}
		if opts.TetraCount == 2 {
			if opts.Which == WhichUpDown {
				ratio.Z = 0.75
			} else {
				ratio.Z = 0.5
			}
		}
		layout.Scene.AspectRatio = ratio
	}

	return &Figure{Data: data, Layout: layout}, nil
}
