package pyrodash

import "gonum.org/v1/gonum/spatial/r3"

// PerpendicularPlaneVectors returns a pair of coplanar unit vectors
// orthogonal to each other and to the given unit vector, forming a
// right-handed transverse frame for it.
//
// A reference vector pointing somewhere else than axis is picked first:
// [1,0,0], or [0,1,0] when axis is exactly [1,0,0]. n1 is the
// normalized cross product of axis and the reference; n2 = axis x n1 is
// already unit length because axis and n1 are orthonormal.
func PerpendicularPlaneVectors(axis r3.Vec) (n1, n2 r3.Vec) {
	ref := r3.Vec{X: 1}
	if axis == ref {
		ref = r3.Vec{Y: 1}
	}

	n1 = r3.Unit(r3.Cross(axis, ref))
	n2 = r3.Cross(axis, n1)

	return n1, n2
}
