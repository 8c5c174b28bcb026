package pyrodash

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

// A neighbor table that wires every down site to the rest of its own
// tetrahedron, so charges are easy to compute by hand.
func testNeighborTable() NeighborTable {
	return NeighborTable{
		0:  {1, 2, 3},
		4:  {5, 6, 7},
		8:  {9, 10, 11},
		12: {13, 14, 15},
	}
}

func TestCellSpinOffset(t *testing.T) {
	cases := []struct {
		ijk  [3]int
		l    int
		want int
	}{
		{[3]int{0, 0, 0}, 1, 0},
		{[3]int{1, 0, 0}, 2, 16},
		{[3]int{0, 1, 0}, 2, 32},
		{[3]int{0, 0, 1}, 2, 64},
		{[3]int{1, 1, 1}, 2, 112},
		{[3]int{2, 1, 0}, 3, 80},
	}
	for _, c := range cases {
		if got := CellSpinOffset(c.ijk, c.l); got != c.want {
			t.Fatalf("offset of %v in L=%d: got %d, want %d", c.ijk, c.l, got, c.want)
		}
	}
}

func TestLatticeSize(t *testing.T) {
	good := map[int]int{16: 1, 128: 2, 432: 3, 1024: 4}
	for sites, want := range good {
		l, err := LatticeSize(sites)
		if err != nil {
			t.Fatalf("%d sites: %v", sites, err)
		}
		if l != want {
			t.Fatalf("%d sites: got L=%d, want %d", sites, l, want)
		}
	}
	for _, sites := range []int{0, -16, 15, 17, 32, 48} {
		if _, err := LatticeSize(sites); err == nil {
			t.Fatalf("expected error for %d sites", sites)
		}
	}
}

func TestNewUnitCellSpinIce(t *testing.T) {
	spins, err := PresetSpinValues(PresetSpinIceZ)
	if err != nil {
		t.Fatal(err)
	}
	c, err := NewUnitCell([3]int{0, 0, 0}, spins, testNeighborTable())
	if err != nil {
		t.Fatal(err)
	}

	if c.LatticeL != 1 || c.InitialSpin != 0 {
		t.Fatalf("lattice bookkeeping wrong: L=%d, initial=%d", c.LatticeL, c.InitialSpin)
	}

	scale := 4 / math.Sqrt2
	if !vecAlmostEq(c.UpCenters[0], r3.Vec{}) {
		t.Fatalf("up center 0: %+v", c.UpCenters[0])
	}
	if !vecAlmostEq(c.UpCenters[1], r3.Vec{X: scale / 2, Y: scale / 2}) {
		t.Fatalf("up center 1: %+v", c.UpCenters[1])
	}
	shift := r3.Scale(1/math.Sqrt2, r3.Vec{X: 1, Y: 1, Z: 1})
	for i := range c.DownCenters {
		if !vecAlmostEq(c.DownCenters[i], r3.Add(c.UpCenters[i], shift)) {
			t.Fatalf("down center %d not shifted along [111]", i)
		}
	}

	if !vecAlmostEq(c.Cube.Origin, r3.Vec{}) || !almostEq(c.Cube.Sides.X, math.Sqrt(8)) {
		t.Fatalf("cell cube wrong: origin=%+v, sides=%+v", c.Cube.Origin, c.Cube.Sides)
	}

	// Two-in-two-out everywhere: no monopoles.
	for i := 0; i < 4; i++ {
		if c.MonopolesUp[i].Charge != 0 {
			t.Fatalf("up tetra %d charge %d, want 0", i, c.MonopolesUp[i].Charge)
		}
		if c.MonopolesDown[i].Charge != 0 {
			t.Fatalf("down tetra %d charge %d, want 0", i, c.MonopolesDown[i].Charge)
		}
		if c.Tetrahedra[i].InitCount != 1+SitesPerTetra*i {
			t.Fatalf("tetra %d first site %d", i, c.Tetrahedra[i].InitCount)
		}
	}
}

func TestNewUnitCellMonopoleCharges(t *testing.T) {
	// All spins in: every up tetrahedron holds a -4 charge, every down
	// a +4.
	allIn := make([]int, SitesPerCell)
	for i := range allIn {
		allIn[i] = 1
	}
	c, err := NewUnitCell([3]int{0, 0, 0}, allIn, testNeighborTable())
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 4; i++ {
		if c.MonopolesUp[i].Charge != -4 || c.MonopolesDown[i].Charge != 4 {
			t.Fatalf("tetra %d charges: up %d, down %d", i, c.MonopolesUp[i].Charge, c.MonopolesDown[i].Charge)
		}
	}

	ms, err := PresetSpinValues(PresetSingleMonopole)
	if err != nil {
		t.Fatal(err)
	}
	c, err = NewUnitCell([3]int{0, 0, 0}, ms, testNeighborTable())
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 4; i++ {
		if c.MonopolesUp[i].Charge != 2 || c.MonopolesDown[i].Charge != -2 {
			t.Fatalf("tetra %d charges: up %d, down %d", i, c.MonopolesUp[i].Charge, c.MonopolesDown[i].Charge)
		}
	}
}

func TestNewUnitCellLargerLattice(t *testing.T) {
	spins := make([]int, 8*SitesPerCell) // L=2
	for i := range spins {
		spins[i] = 1
	}
	ms := [4]int{1, -1, -1, -1}
	for i := 0; i < SitesPerCell; i++ {
		spins[SitesPerCell+i] = ms[i%SitesPerTetra]
	}

	c, err := NewUnitCell([3]int{1, 0, 0}, spins, testNeighborTable())
	if err != nil {
		t.Fatal(err)
	}
	if c.LatticeL != 2 || c.InitialSpin != SitesPerCell {
		t.Fatalf("lattice bookkeeping wrong: L=%d, initial=%d", c.LatticeL, c.InitialSpin)
	}
	// The cell reads its own slice of the global array.
	for i := 0; i < 4; i++ {
		if c.MonopolesUp[i].Charge != 2 {
			t.Fatalf("up tetra %d charge %d, want 2", i, c.MonopolesUp[i].Charge)
		}
	}
	side := math.Sqrt(8)
	if !vecAlmostEq(c.Cube.Origin, r3.Vec{X: side}) {
		t.Fatalf("cube origin %+v, want x=%v", c.Cube.Origin, side)
	}
}

func TestNewUnitCellDeterministic(t *testing.T) {
	spins, _ := PresetSpinValues(PresetDoubleMonopole)
	a, err := NewUnitCell([3]int{0, 0, 0}, spins, testNeighborTable())
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewUnitCell([3]int{0, 0, 0}, spins, testNeighborTable())
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 4; i++ {
		if !vecAlmostEq(a.UpCenters[i], b.UpCenters[i]) || !vecAlmostEq(a.DownCenters[i], b.DownCenters[i]) {
			t.Fatalf("centers differ between identical builds")
		}
		if a.MonopolesUp[i].Charge != b.MonopolesUp[i].Charge {
			t.Fatalf("charges differ between identical builds")
		}
	}
}

func TestNewUnitCellErrors(t *testing.T) {
	good, _ := PresetSpinValues(PresetSpinIceZ)
	table := testNeighborTable()

	if _, err := NewUnitCell([3]int{0, 0, 0}, good[:15], table); err == nil {
		t.Fatal("expected error for 15 spins")
	}

	bad := append([]int(nil), good...)
	bad[5] = 0
	if _, err := NewUnitCell([3]int{0, 0, 0}, bad, table); err == nil {
		t.Fatal("expected error for spin value 0")
	}

	if _, err := NewUnitCell([3]int{1, 0, 0}, good, table); err == nil {
		t.Fatal("expected error for cell outside a L=1 lattice")
	}
	if _, err := NewUnitCell([3]int{0, -1, 0}, good, table); err == nil {
		t.Fatal("expected error for negative cell coordinate")
	}

	if _, err := NewUnitCell([3]int{0, 0, 0}, good, nil); err == nil {
		t.Fatal("expected error for nil neighbor table")
	}

	partial := NeighborTable{0: {1, 2, 3}}
	if _, err := NewUnitCell([3]int{0, 0, 0}, good, partial); err == nil {
		t.Fatal("expected error for missing neighbor rows")
	}

	outOfRange := NeighborTable{
		0:  {1, 2, 99},
		4:  {5, 6, 7},
		8:  {9, 10, 11},
		12: {13, 14, 15},
	}
	if _, err := NewUnitCell([3]int{0, 0, 0}, good, outOfRange); err == nil {
		t.Fatal("expected error for neighbor index outside the spin array")
	}
}
