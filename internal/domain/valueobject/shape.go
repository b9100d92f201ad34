package valueobject

import (
	"errors"
	"fmt"
)

// Shape errors define domain-specific error conditions for shape selection.
var (
	ErrUnknownShape        = errors.New("unknown shape")
	ErrUnknownTriangleMode = errors.New("unknown triangle mode")
	ErrUnknownDimension    = errors.New("unknown dimension for shape")
)

// ShapeKind tags the active variant of a Shape.
type ShapeKind string

// Supported plot shapes.
const (
	ShapeSquare    ShapeKind = "square"
	ShapeRectangle ShapeKind = "rectangle"
	ShapeCircle    ShapeKind = "circle"
	ShapeTriangle  ShapeKind = "triangle"
)

// ShapeKinds lists every supported shape in display order.
func ShapeKinds() []ShapeKind {
	return []ShapeKind{ShapeSquare, ShapeRectangle, ShapeCircle, ShapeTriangle}
}

// TriangleModeKind selects how a triangle's dimensions are entered.
type TriangleModeKind string

// Supported triangle input modes.
const (
	TriangleModeBaseHeight TriangleModeKind = "base_height"
	TriangleModeThreeSides TriangleModeKind = "three_sides"
)

// TriangleModeKinds lists every triangle mode in display order.
func TriangleModeKinds() []TriangleModeKind {
	return []TriangleModeKind{TriangleModeBaseHeight, TriangleModeThreeSides}
}

// Dimension names used by the shape variants.
const (
	DimSide   = "side"
	DimLength = "length"
	DimWidth  = "width"
	DimRadius = "radius"
	DimBase   = "base"
	DimHeight = "height"
	DimSideA  = "side_a"
	DimSideB  = "side_b"
	DimSideC  = "side_c"
)

// Dimension is a single named measurement in buhol.
// A zero value means the field has not been entered yet.
type Dimension struct {
	// Name identifies the field (e.g., "side_a").
	Name string `json:"name"`

	// Label is the human readable field name used in messages.
	Label string `json:"label"`

	// ValueBuhol is the measurement in buhol.
	ValueBuhol float64 `json:"value_buhol"`
}

// IsEntered reports whether the dimension holds a value.
func (d Dimension) IsEntered() bool {
	return d.ValueBuhol != 0
}

// Meters returns the dimension converted to meters.
func (d Dimension) Meters() float64 {
	return BuholToMeters(d.ValueBuhol)
}

// Shape is a closed sum type over the supported plot shapes.
// Only types in this package implement it.
type Shape interface {
	// Kind returns the variant tag.
	Kind() ShapeKind

	// Dimensions returns the labelled buhol dimensions of the variant, in input order.
	Dimensions() []Dimension

	isShape()
}

// Square is a plot with four equal sides.
type Square struct {
	Side float64 `json:"side"`
}

// Rectangle is a plot with a length and a width.
type Rectangle struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
}

// Circle is a round plot measured by its radius.
type Circle struct {
	Radius float64 `json:"radius"`
}

// Triangle is a triangular plot entered in one of two exclusive modes.
type Triangle struct {
	Mode TriangleMode `json:"mode"`
}

// TriangleMode is the closed set of triangle input modes.
type TriangleMode interface {
	ModeKind() TriangleModeKind
	dimensions() []Dimension
}

// TriangleBaseHeight holds a triangle entered by base and perpendicular height.
type TriangleBaseHeight struct {
	Base   float64 `json:"base"`
	Height float64 `json:"height"`
}

// TriangleThreeSides holds a triangle entered by its three side lengths.
type TriangleThreeSides struct {
	SideA float64 `json:"side_a"`
	SideB float64 `json:"side_b"`
	SideC float64 `json:"side_c"`
}

func (Square) isShape()    {}
func (Rectangle) isShape() {}
func (Circle) isShape()    {}
func (Triangle) isShape()  {}

func (Square) Kind() ShapeKind    { return ShapeSquare }
func (Rectangle) Kind() ShapeKind { return ShapeRectangle }
func (Circle) Kind() ShapeKind    { return ShapeCircle }
func (Triangle) Kind() ShapeKind  { return ShapeTriangle }

func (s Square) Dimensions() []Dimension {
	return []Dimension{{Name: DimSide, Label: "Side", ValueBuhol: s.Side}}
}

func (r Rectangle) Dimensions() []Dimension {
	return []Dimension{
		{Name: DimLength, Label: "Length", ValueBuhol: r.Length},
		{Name: DimWidth, Label: "Width", ValueBuhol: r.Width},
	}
}

func (c Circle) Dimensions() []Dimension {
	return []Dimension{{Name: DimRadius, Label: "Radius", ValueBuhol: c.Radius}}
}

// Dimensions returns the fields of the active mode. A triangle without a
// mode behaves as an empty base-height triangle.
func (t Triangle) Dimensions() []Dimension {
	if t.Mode == nil {
		return TriangleBaseHeight{}.dimensions()
	}
	return t.Mode.dimensions()
}

// ModeKind returns the active triangle mode, defaulting to base-height.
func (t Triangle) ModeKind() TriangleModeKind {
	if t.Mode == nil {
		return TriangleModeBaseHeight
	}
	return t.Mode.ModeKind()
}

// SwitchMode returns a triangle in the requested mode with every dimension
// reset to zero. Values of the previous mode are never carried over.
//
// Parameters:
//   - mode: the mode to switch to
//
// Returns:
//   - Triangle: a fresh triangle in the requested mode
//   - error: ErrUnknownTriangleMode if mode is not supported
func (t Triangle) SwitchMode(mode TriangleModeKind) (Triangle, error) {
	m, err := NewTriangleMode(mode)
	if err != nil {
		return t, err
	}
	return Triangle{Mode: m}, nil
}

func (TriangleBaseHeight) ModeKind() TriangleModeKind { return TriangleModeBaseHeight }
func (TriangleThreeSides) ModeKind() TriangleModeKind { return TriangleModeThreeSides }

func (m TriangleBaseHeight) dimensions() []Dimension {
	return []Dimension{
		{Name: DimBase, Label: "Base", ValueBuhol: m.Base},
		{Name: DimHeight, Label: "Height", ValueBuhol: m.Height},
	}
}

func (m TriangleThreeSides) dimensions() []Dimension {
	return []Dimension{
		{Name: DimSideA, Label: "Side A", ValueBuhol: m.SideA},
		{Name: DimSideB, Label: "Side B", ValueBuhol: m.SideB},
		{Name: DimSideC, Label: "Side C", ValueBuhol: m.SideC},
	}
}

// NewShape returns the zero-valued variant for a shape kind.
// Triangles start in base-height mode.
//
// Parameters:
//   - kind: the shape to create
//
// Returns:
//   - Shape: an empty shape of the given kind
//   - error: ErrUnknownShape if kind is not supported
func NewShape(kind ShapeKind) (Shape, error) {
	switch kind {
	case ShapeSquare:
		return Square{}, nil
	case ShapeRectangle:
		return Rectangle{}, nil
	case ShapeCircle:
		return Circle{}, nil
	case ShapeTriangle:
		return Triangle{Mode: TriangleBaseHeight{}}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownShape, kind)
	}
}

// NewTriangleMode returns the zero-valued triangle mode for a mode kind.
func NewTriangleMode(kind TriangleModeKind) (TriangleMode, error) {
	switch kind {
	case TriangleModeBaseHeight:
		return TriangleBaseHeight{}, nil
	case TriangleModeThreeSides:
		return TriangleThreeSides{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTriangleMode, kind)
	}
}

// DimensionNames returns the field names a shape of the given kind accepts.
// For triangles the mode selects the field set.
func DimensionNames(kind ShapeKind, mode TriangleModeKind) ([]string, error) {
	shape, err := NewShape(kind)
	if err != nil {
		return nil, err
	}
	if tri, ok := shape.(Triangle); ok && mode != "" {
		if shape, err = tri.SwitchMode(mode); err != nil {
			return nil, err
		}
	}

	dims := shape.Dimensions()
	names := make([]string, len(dims))
	for i, d := range dims {
		names[i] = d.Name
	}
	return names, nil
}

// BuildShape assembles a shape from named buhol values. Names missing from
// values stay at the zero sentinel. An empty mode selects base-height for
// triangles and is ignored for other shapes.
//
// Parameters:
//   - kind: the shape to build
//   - mode: the triangle mode (triangles only)
//   - values: buhol values keyed by dimension name
//
// Returns:
//   - Shape: the populated shape
//   - error: ErrUnknownShape, ErrUnknownTriangleMode or ErrUnknownDimension
func BuildShape(kind ShapeKind, mode TriangleModeKind, values map[string]float64) (Shape, error) {
	names, err := DimensionNames(kind, mode)
	if err != nil {
		return nil, err
	}

	accepted := make(map[string]struct{}, len(names))
	for _, n := range names {
		accepted[n] = struct{}{}
	}
	for name := range values {
		if _, ok := accepted[name]; !ok {
			return nil, fmt.Errorf("%w: %s does not accept %q", ErrUnknownDimension, kind, name)
		}
	}

	switch kind {
	case ShapeSquare:
		return Square{Side: values[DimSide]}, nil
	case ShapeRectangle:
		return Rectangle{Length: values[DimLength], Width: values[DimWidth]}, nil
	case ShapeCircle:
		return Circle{Radius: values[DimRadius]}, nil
	}

	if mode == TriangleModeThreeSides {
		return Triangle{Mode: TriangleThreeSides{
			SideA: values[DimSideA],
			SideB: values[DimSideB],
			SideC: values[DimSideC],
		}}, nil
	}
	return Triangle{Mode: TriangleBaseHeight{
		Base:   values[DimBase],
		Height: values[DimHeight],
	}}, nil
}
