package dto

import (
	"errors"
	"net/http"

	"github.com/hapkiduki/luwang-go/internal/application/service"
	"github.com/hapkiduki/luwang-go/internal/domain/measurement"
	"github.com/hapkiduki/luwang-go/internal/domain/valueobject"
)

// ErrMissingShape is returned when an area request names no shape.
var ErrMissingShape = errors.New("shape is required")

// AreaRequest is the body of an area calculation or validation request.
//
// Example:
//
//	{"shape": "triangle", "triangle_mode": "three_sides",
//	 "dimensions": {"side_a": 3, "side_b": 4, "side_c": 5}}
type AreaRequest struct {
	// Shape is one of square, rectangle, circle, triangle.
	Shape string `json:"shape"`

	// TriangleMode is base_height (default) or three_sides.
	TriangleMode string `json:"triangle_mode,omitempty"`

	// Dimensions maps dimension names to buhol values. Missing names are zero.
	Dimensions map[string]float64 `json:"dimensions"`
}

// Bind implements render.Binder.
func (a *AreaRequest) Bind(_ *http.Request) error {
	if a.Shape == "" {
		return ErrMissingShape
	}
	return nil
}

// ToShape converts the request into a domain shape.
//
// Returns:
//   - valueobject.Shape: the requested shape
//   - error: ErrUnknownShape, ErrUnknownTriangleMode or ErrUnknownDimension
func (a *AreaRequest) ToShape() (valueobject.Shape, error) {
	return valueobject.BuildShape(
		valueobject.ShapeKind(a.Shape),
		valueobject.TriangleModeKind(a.TriangleMode),
		a.Dimensions,
	)
}

// AreaResponse is the result of an area calculation.
type AreaResponse struct {
	Shape         string                  `json:"shape"`
	TriangleMode  string                  `json:"triangle_mode,omitempty"`
	AreaSqm       float64                 `json:"area_sqm"`
	TotalLuwang   float64                 `json:"total_luwang"`
	Display       valueobject.AreaDisplay `json:"display"`
	Complete      bool                    `json:"complete"`
	Advisory      string                  `json:"advisory,omitempty"`
	LuwangAreaSqm float64                 `json:"luwang_area_sqm"`
}

// NewAreaResponse builds the response for a calculated outcome.
func NewAreaResponse(out service.CalculationOutcome, luwangAreaSqm float64) AreaResponse {
	resp := AreaResponse{
		Shape:         string(out.Shape.Kind()),
		AreaSqm:       out.Result.AreaSqm,
		TotalLuwang:   out.Result.TotalLuwang,
		Display:       out.Result.Display(),
		Complete:      out.Complete,
		Advisory:      out.Advisory,
		LuwangAreaSqm: luwangAreaSqm,
	}
	if tri, ok := out.Shape.(valueobject.Triangle); ok {
		resp.TriangleMode = string(tri.ModeKind())
	}
	return resp
}

// ValidationResponse lists the verdict for every field of a shape.
type ValidationResponse struct {
	Valid  bool                            `json:"valid"`
	Fields []measurement.ValidationOutcome `json:"fields"`
}

// NewValidationResponse builds a ValidationResponse from field outcomes.
func NewValidationResponse(outcomes []measurement.ValidationOutcome) ValidationResponse {
	return ValidationResponse{
		Valid:  !measurement.HasErrors(outcomes),
		Fields: outcomes,
	}
}

// ValidationErrorsFrom keeps only the failing outcomes, keyed by field name.
func ValidationErrorsFrom(shape valueobject.Shape, outcomes []measurement.ValidationOutcome) []ValidationError {
	values := make(map[string]float64)
	for _, d := range shape.Dimensions() {
		values[d.Name] = d.ValueBuhol
	}

	var errs []ValidationError
	for _, o := range outcomes {
		if o.Valid() {
			continue
		}
		errs = append(errs, ValidationError{
			Field:   o.Field,
			Message: o.ErrorMessage,
			Value:   values[o.Field],
		})
	}
	return errs
}

// ConversionResponse is a buhol length expressed in the other units.
type ConversionResponse struct {
	Buhol       float64 `json:"buhol"`
	Meters      float64 `json:"meters"`
	Tali        float64 `json:"tali"`
	TaliDisplay string  `json:"tali_display"`
}

// NewConversionResponse builds a ConversionResponse.
func NewConversionResponse(c service.Conversion) ConversionResponse {
	return ConversionResponse{
		Buhol:       c.Buhol,
		Meters:      c.Meters,
		Tali:        c.Tali,
		TaliDisplay: valueobject.FormatTali(c.Buhol),
	}
}

// ShapeInfo describes one selectable shape for input forms.
type ShapeInfo struct {
	Shape      string              `json:"shape"`
	Dimensions []string            `json:"dimensions,omitempty"`
	Modes      map[string][]string `json:"modes,omitempty"`
}

// ShapeCatalogue lists every shape with the dimension names it accepts.
// Triangles list their fields per mode instead.
func ShapeCatalogue() []ShapeInfo {
	kinds := valueobject.ShapeKinds()
	infos := make([]ShapeInfo, 0, len(kinds))

	for _, kind := range kinds {
		info := ShapeInfo{Shape: string(kind)}
		if kind == valueobject.ShapeTriangle {
			info.Modes = make(map[string][]string)
			for _, mode := range valueobject.TriangleModeKinds() {
				names, _ := valueobject.DimensionNames(kind, mode)
				info.Modes[string(mode)] = names
			}
		} else {
			info.Dimensions, _ = valueobject.DimensionNames(kind, "")
		}
		infos = append(infos, info)
	}
	return infos
}
