package pyrodash

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Fractional positions of the four up-tetrahedron centers within a cell.
var upCenterOffsets = [4]r3.Vec{
	{X: 0, Y: 0, Z: 0},
	{X: 0.5, Y: 0.5, Z: 0},
	{X: 0, Y: 0.5, Z: 0.5},
	{X: 0.5, Y: 0, Z: 0.5},
}

// CellSpinOffset returns the index of the first spin of the cell at
// lattice position ijk in a lattice of linear size l.
func CellSpinOffset(ijk [3]int, l int) int {
	return (ijk[0] + ijk[1]*l + ijk[2]*l*l) * SitesPerCell
}

// LatticeSize derives the linear lattice size L from the total number
// of sites, which must be exactly 16*L^3 for a positive integer L.
func LatticeSize(sites int) (int, error) {
	if sites <= 0 || sites%SitesPerCell != 0 {
		return 0, fmt.Errorf("spin array length must be 16*L^3 for a positive integer L, got %d", sites)
	}
	l := int(math.Round(math.Cbrt(float64(sites) / SitesPerCell)))
	if l < 1 || l*l*l*SitesPerCell != sites {
		return 0, fmt.Errorf("spin array length must be 16*L^3 for a positive integer L, got %d", sites)
	}
	return l, nil
}

// UnitCell is one periodic cell of the pyrochlore lattice: four up/down
// tetrahedron pairs, their cubes, spin arrows and monopoles, addressed
// by integer lattice coordinates. Construction is pure: the neighbor
// table is injected and no I/O happens here.
type UnitCell struct {
	IJK      [3]int
	LatticeL int

	UpCenters   [4]r3.Vec
	DownCenters [4]r3.Vec

	InitialSpin int
	SpinValues  []int // the 16 spins of this cell

	Cube       *Parallelepiped
	Tetrahedra [4]*Tetrahedra
	UpCubes    [4]*Parallelepiped
	DownCubes  [4]*Parallelepiped
	Spins      [4]*Spins

	MonopolesUp   [4]*Monopole
	MonopolesDown [4]*Monopole
}

// NewUnitCell builds the cell at ijk from the global spin array and the
// neighbor table for the lattice size implied by the array length.
//
// Up-monopole charges come from the cell's own 16-spin slice; down
// charges index the global array through the neighbor table, because a
// down tetrahedron borders sites of other cells. Both behaviors are
// deliberate and must stay as they are.
func NewUnitCell(ijk [3]int, spinValues []int, neighbors NeighborTable) (*UnitCell, error) {
	l, err := LatticeSize(len(spinValues))
	if err != nil {
		return nil, err
	}
	for i, v := range spinValues {
		if v != 1 && v != -1 {
			return nil, fmt.Errorf("spin values must be 1 or -1, got %d at index %d", v, i)
		}
	}
	for axis, c := range ijk {
		if c < 0 || c >= l {
			return nil, fmt.Errorf("cell coordinate %d on axis %d is outside the lattice (L=%d)", c, axis, l)
		}
	}
	if neighbors == nil {
		return nil, fmt.Errorf("neighbor table is required")
	}

	c := &UnitCell{IJK: ijk, LatticeL: l}
	ijkVec := r3.Vec{X: Real(ijk[0]), Y: Real(ijk[1]), Z: Real(ijk[2])}

	// Centers in real units: fractional offsets scaled by 4/sqrt(2);
	// the down partner sits at (1,1,1)/sqrt(2) from its up center.
	scale := 4 / math.Sqrt2
	downShift := r3.Scale(1/math.Sqrt2, r3.Vec{X: 1, Y: 1, Z: 1})
	for t := 0; t < 4; t++ {
		c.UpCenters[t] = r3.Scale(scale, r3.Add(upCenterOffsets[t], ijkVec))
		c.DownCenters[t] = r3.Add(c.UpCenters[t], downShift)
	}

	c.InitialSpin = CellSpinOffset(ijk, l)
	c.SpinValues = spinValues[c.InitialSpin : c.InitialSpin+SitesPerCell]

	cellSide := math.Sqrt(8)
	c.Cube, err = NewCube(cellSide, r3.Scale(cellSide, ijkVec), "", 0, 0)
	if err != nil {
		return nil, err
	}

	halfDiag := math.Sqrt(0.5)
	for t := 0; t < 4; t++ {
		tetra, err := NewTetrahedra(c.UpCenters[t], 0, 1+SitesPerTetra*t, 1)
		if err != nil {
			return nil, err
		}
		c.Tetrahedra[t] = tetra

		corner := tetra.UpVertices[0]
		c.UpCubes[t], err = NewCube(halfDiag, r3.Sub(corner, r3.Vec{X: halfDiag, Y: halfDiag, Z: halfDiag}), "", 0, 0)
		if err != nil {
			return nil, err
		}
		c.DownCubes[t], err = NewCube(halfDiag, corner, "", 0, 0)
		if err != nil {
			return nil, err
		}

		local := c.SpinValues[SitesPerTetra*t : SitesPerTetra*(t+1)]
		c.Spins[t], err = NewSpins(tetra.UpVertices, local)
		if err != nil {
			return nil, err
		}

		charge := 0
		for _, s := range local {
			charge -= s
		}
		c.MonopolesUp[t], err = NewMonopole(charge, c.UpCenters[t])
		if err != nil {
			return nil, err
		}

		down, err := downMonopoleCharge(SitesPerTetra*t, spinValues, neighbors)
		if err != nil {
			return nil, err
		}
		c.MonopolesDown[t], err = NewMonopole(down, c.DownCenters[t])
		if err != nil {
			return nil, err
		}
	}

	DebugLog("Created unit cell at %v: L=%d, initial spin %d", ijk, l, c.InitialSpin)
	return c, nil
}

// downMonopoleCharge sums the spin at the down-tetrahedron site and at
// its three table neighbors. The table row is keyed by the local site
// index (0, 4, 8, 12) and that key also addresses the global array, as
// the neighbor indices do.
func downMonopoleCharge(site int, spinValues []int, neighbors NeighborTable) (int, error) {
	row, ok := neighbors[site]
	if !ok {
		return 0, fmt.Errorf("neighbor table has no row for down site %d", site)
	}

	charge := spinValues[site]
	for _, n := range row {
		if n < 0 || n >= len(spinValues) {
			return 0, fmt.Errorf("neighbor index %d of down site %d is outside the spin array (len %d)", n, site, len(spinValues))
		}
		charge += spinValues[n]
	}
	return charge, nil
}
