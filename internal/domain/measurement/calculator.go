package measurement

import (
	"errors"
	"fmt"
	"math"

	"github.com/hapkiduki/luwang-go/internal/domain/valueobject"
)

// DefaultLuwangAreaSqm is the number of square meters in one LuWang.
// Provisional: one square buhol (50 m x 50 m). Deployments override it
// through configuration.
const DefaultLuwangAreaSqm = valueobject.MetersPerBuhol * valueobject.MetersPerBuhol

// ErrInvalidLuwangRatio is returned when a calculator is built with a ratio
// that is not a positive finite number.
var ErrInvalidLuwangRatio = errors.New("luwang area must be a positive finite number of square meters")

// Calculator computes plot areas and derives LuWang capacity.
// It holds no mutable state and is safe for concurrent use.
type Calculator struct {
	luwangAreaSqm float64
}

var defaultCalculator = &Calculator{luwangAreaSqm: DefaultLuwangAreaSqm}

// NewCalculator creates a Calculator with the given LuWang ratio.
//
// Parameters:
//   - luwangAreaSqm: square meters per LuWang
//
// Returns:
//   - *Calculator: the calculator
//   - error: ErrInvalidLuwangRatio if the ratio is not positive and finite
func NewCalculator(luwangAreaSqm float64) (*Calculator, error) {
	if !(luwangAreaSqm > 0) || math.IsInf(luwangAreaSqm, 0) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidLuwangRatio, luwangAreaSqm)
	}
	return &Calculator{luwangAreaSqm: luwangAreaSqm}, nil
}

// DefaultCalculator returns the calculator using DefaultLuwangAreaSqm.
func DefaultCalculator() *Calculator {
	return defaultCalculator
}

// CalculateArea computes the area of a shape using DefaultLuwangAreaSqm.
func CalculateArea(shape valueobject.Shape) valueobject.AreaResult {
	return defaultCalculator.Calculate(shape)
}

// LuwangAreaSqm returns the square meters per LuWang this calculator uses.
func (c *Calculator) LuwangAreaSqm() float64 {
	return c.luwangAreaSqm
}

// LuwangFor converts an area in square meters to LuWang.
func (c *Calculator) LuwangFor(areaSqm float64) float64 {
	return areaSqm / c.luwangAreaSqm
}

// Calculate computes the area of a shape in square meters and its LuWang
// capacity. It never fails: a nil shape, a missing (zero) dimension, a
// negative or non-finite dimension, or an impossible three-sides triangle
// all yield the zero result.
//
// Parameters:
//   - shape: the shape to measure, dimensions in buhol
//
// Returns:
//   - valueobject.AreaResult: full-precision area and LuWang
func (c *Calculator) Calculate(shape valueobject.Shape) valueobject.AreaResult {
	if shape == nil || !isComplete(shape) {
		return valueobject.ZeroArea()
	}

	area := c.areaSqm(shape)
	if area <= 0 || math.IsNaN(area) || math.IsInf(area, 0) {
		return valueobject.ZeroArea()
	}

	return valueobject.AreaResult{
		AreaSqm:     area,
		TotalLuwang: c.LuwangFor(area),
	}
}

func (c *Calculator) areaSqm(shape valueobject.Shape) float64 {
	m := valueobject.BuholToMeters

	switch s := shape.(type) {
	case valueobject.Square:
		side := m(s.Side)
		return side * side
	case valueobject.Rectangle:
		return m(s.Length) * m(s.Width)
	case valueobject.Circle:
		r := m(s.Radius)
		return math.Pi * r * r
	case valueobject.Triangle:
		switch mode := s.Mode.(type) {
		case valueobject.TriangleBaseHeight:
			return m(mode.Base) * m(mode.Height) / 2
		case valueobject.TriangleThreeSides:
			if !IsValidTriangle(mode.SideA, mode.SideB, mode.SideC) {
				return 0
			}
			return heron(m(mode.SideA), m(mode.SideB), m(mode.SideC))
		}
	}
	return 0
}

// isComplete reports whether every dimension is entered and usable.
func isComplete(shape valueobject.Shape) bool {
	for _, d := range shape.Dimensions() {
		if v := d.ValueBuhol; !(v > 0) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// heron returns the area of a triangle from its side lengths.
func heron(a, b, c float64) float64 {
	s := (a + b + c) / 2
	return math.Sqrt(s * (s - a) * (s - b) * (s - c))
}

// IsValidTriangle reports whether three positive side lengths form a
// triangle. A side equal to the sum of the other two is rejected.
func IsValidTriangle(a, b, c float64) bool {
	if !(a > 0 && b > 0 && c > 0) {
		return false
	}
	return a < b+c && b < a+c && c < a+b
}

// TriangleAdvisory returns the message to show when a fully entered
// three-sides triangle cannot exist. It returns "" for every other shape,
// for incomplete input, and for base-height triangles.
func TriangleAdvisory(shape valueobject.Shape) string {
	tri, ok := shape.(valueobject.Triangle)
	if !ok {
		return ""
	}
	sides, ok := tri.Mode.(valueobject.TriangleThreeSides)
	if !ok || !isComplete(tri) {
		return ""
	}
	if IsValidTriangle(sides.SideA, sides.SideB, sides.SideC) {
		return ""
	}
	return "Invalid triangle: each side must be shorter than the sum of the other two"
}
