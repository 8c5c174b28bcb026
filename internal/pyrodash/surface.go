package pyrodash

// Surfacer is the capability shared by the curved parametric shapes:
// produce a square coordinate mesh and package it as a shaded surface.
// Sphere, Cylinder and Cone each compute their mesh once at
// construction; the accessors return the cached result.
type Surfacer interface {
	// Mesh returns the meshSize x meshSize coordinate matrices.
	Mesh() (x, y, z [][]Real)
	// Surface returns the renderable surface built from the mesh.
	Surface() []Trace
}

func allocMesh(n int) (x, y, z [][]Real) {
	x = make([][]Real, n)
	y = make([][]Real, n)
	z = make([][]Real, n)
	for i := 0; i < n; i++ {
		x[i] = make([]Real, n)
		y[i] = make([]Real, n)
		z[i] = make([]Real, n)
	}
	return x, y, z
}
