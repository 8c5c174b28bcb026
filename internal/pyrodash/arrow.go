package pyrodash

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Arrow is a composite of a Cylinder shaft, a Cone head and two Circle
// caps, all sharing one color, mesh resolution and transverse frame.
// The pivot selects which part of the arrow is anchored to pos.
type Arrow struct {
	Pos    r3.Vec
	Radius Real
	Length Real
	Axis   r3.Vec // unit
	Pivot  string

	Cylinder     *Cylinder
	BaseCylinder *Circle
	Cone         *Cone
	BaseCone     *Circle

	surface []Trace
}

// NewArrow builds an arrow with the default head proportions.
func NewArrow(pos r3.Vec, radius, length Real, axis r3.Vec, pivot, color string, meshSize int) (*Arrow, error) {
	return NewArrowRatios(pos, radius, length, axis, ConeLengthRatio, ConeCylinderRadiusRatio, pivot, color, meshSize)
}

// NewArrowRatios builds an arrow with explicit head proportions:
// coneLengthRatio is head length over total length, coneRadiusRatio is
// head base radius over shaft radius.
func NewArrowRatios(pos r3.Vec, radius, length Real, axis r3.Vec, coneLengthRatio, coneRadiusRatio Real, pivot, color string, meshSize int) (*Arrow, error) {
	if radius <= 0 || !isFinite(radius) {
		return nil, fmt.Errorf("arrow radius must be > 0, got %v", radius)
	}
	if length <= 0 || !isFinite(length) {
		return nil, fmt.Errorf("arrow length must be > 0, got %v", length)
	}
	if r3.Norm(axis) == 0 {
		return nil, fmt.Errorf("arrow axis must be non-zero, got %+v", axis)
	}
	if coneLengthRatio <= 0 || coneLengthRatio >= 1 {
		return nil, fmt.Errorf("cone length ratio must be in (0,1), got %v", coneLengthRatio)
	}
	if coneRadiusRatio <= 0 {
		return nil, fmt.Errorf("cone/cylinder radius ratio must be > 0, got %v", coneRadiusRatio)
	}
	switch pivot {
	case PivotTail, PivotMid, PivotTip:
	default:
		return nil, fmt.Errorf("%q is not a valid value for pivot; supported values are 'tail', 'mid', 'tip'", pivot)
	}

	a := &Arrow{
		Pos:    pos,
		Radius: radius,
		Length: length,
		Axis:   r3.Unit(axis),
		Pivot:  pivot,
	}

	cylinderLength := (1 - coneLengthRatio) * length
	coneBaseRadius := coneRadiusRatio * radius
	coneLength := coneLengthRatio * length

	var cylinderCenter r3.Vec
	switch pivot {
	case PivotTail:
		cylinderCenter = r3.Add(pos, r3.Scale(0.5*cylinderLength, a.Axis))
	case PivotMid:
		cylinderCenter = r3.Sub(pos, r3.Scale(0.5*coneLength, a.Axis))
	case PivotTip:
		cylinderCenter = r3.Sub(pos, r3.Scale(coneLength+0.5*cylinderLength, a.Axis))
	}

	n1, n2 := PerpendicularPlaneVectors(a.Axis)

	var err error
	a.Cylinder, err = NewCylinder(cylinderCenter, radius, cylinderLength, a.Axis, n1, n2, color, meshSize)
	if err != nil {
		return nil, err
	}
	a.BaseCylinder, err = NewCircle(a.Cylinder.BaseCenter, radius, a.Axis, n1, n2, color)
	if err != nil {
		return nil, err
	}
	a.Cone, err = NewCone(a.Cylinder.TopCenter, coneBaseRadius, coneLength, a.Axis, n1, n2, color, meshSize)
	if err != nil {
		return nil, err
	}
	a.BaseCone, err = NewCircle(a.Cone.BaseCenter, coneBaseRadius, a.Axis, n1, n2, color)
	if err != nil {
		return nil, err
	}

	a.surface = append(a.surface, a.Cylinder.Surface()...)
	a.surface = append(a.surface, a.BaseCylinder.Scatter()...)
	a.surface = append(a.surface, a.Cone.Surface()...)
	a.surface = append(a.surface, a.BaseCone.Scatter()...)

	DebugLog("Created arrow: pos=%+v, pivot=%s, axis=%+v", pos, pivot, a.Axis)
	return a, nil
}

// Surface returns the primitives of all four parts in draw order.
func (a *Arrow) Surface() []Trace { return a.surface }
