package dto_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hapkiduki/luwang-go/internal/application/dto"
	"github.com/hapkiduki/luwang-go/internal/application/service"
	"github.com/hapkiduki/luwang-go/internal/domain/measurement"
	"github.com/hapkiduki/luwang-go/internal/domain/valueobject"
)

func TestAreaRequest_Bind(t *testing.T) {
	req := &dto.AreaRequest{}
	assert.ErrorIs(t, req.Bind(nil), dto.ErrMissingShape)

	req.Shape = "square"
	assert.NoError(t, req.Bind(nil))
}

func TestAreaRequest_ToShape(t *testing.T) {
	req := dto.AreaRequest{
		Shape:        "triangle",
		TriangleMode: "three_sides",
		Dimensions:   map[string]float64{"side_a": 30, "side_b": 40, "side_c": 50},
	}

	shape, err := req.ToShape()
	require.NoError(t, err)
	assert.Equal(t, valueobject.Triangle{Mode: valueobject.TriangleThreeSides{SideA: 30, SideB: 40, SideC: 50}}, shape)

	req.Shape = "oval"
	_, err = req.ToShape()
	assert.ErrorIs(t, err, valueobject.ErrUnknownShape)
}

func TestNewAreaResponse(t *testing.T) {
	out := service.CalculationOutcome{
		Shape:      valueobject.Triangle{Mode: valueobject.TriangleBaseHeight{Base: 2, Height: 2}},
		Calculated: true,
		Complete:   true,
		Result:     valueobject.AreaResult{AreaSqm: 5000, TotalLuwang: 2},
	}

	got := dto.NewAreaResponse(out, 2500)
	assert.Equal(t, dto.AreaResponse{
		Shape:         "triangle",
		TriangleMode:  "base_height",
		AreaSqm:       5000,
		TotalLuwang:   2,
		Display:       valueobject.AreaDisplay{AreaSqm: "5000.00", TotalLuwang: "2.00"},
		Complete:      true,
		LuwangAreaSqm: 2500,
	}, got)
}

func TestValidationErrorsFrom(t *testing.T) {
	shape := valueobject.Rectangle{Length: -1, Width: 4}
	errs := dto.ValidationErrorsFrom(shape, measurement.ValidateShape(shape))

	want := []dto.ValidationError{{Field: "length", Message: "Length cannot be negative", Value: -1.0}}
	if diff := cmp.Diff(want, errs); diff != "" {
		t.Fatalf("validation errors mismatch (-want +got):\n%s", diff)
	}
}

func TestNewValidationResponse(t *testing.T) {
	ok := dto.NewValidationResponse(measurement.ValidateShape(valueobject.Circle{Radius: 4}))
	assert.True(t, ok.Valid)

	bad := dto.NewValidationResponse(measurement.ValidateShape(valueobject.Circle{Radius: 4000}))
	assert.False(t, bad.Valid)
	require.Len(t, bad.Fields, 1)
	assert.Equal(t, "radius", bad.Fields[0].Field)
}

func TestNewConversionResponse(t *testing.T) {
	got := dto.NewConversionResponse(service.Conversion{Buhol: 25, Meters: 1250, Tali: 2.5})
	assert.Equal(t, "2.5", got.TaliDisplay)
}

func TestShapeCatalogue(t *testing.T) {
	want := []dto.ShapeInfo{
		{Shape: "square", Dimensions: []string{"side"}},
		{Shape: "rectangle", Dimensions: []string{"length", "width"}},
		{Shape: "circle", Dimensions: []string{"radius"}},
		{Shape: "triangle", Modes: map[string][]string{
			"base_height": {"base", "height"},
			"three_sides": {"side_a", "side_b", "side_c"},
		}},
	}
	if diff := cmp.Diff(want, dto.ShapeCatalogue()); diff != "" {
		t.Fatalf("catalogue mismatch (-want +got):\n%s", diff)
	}
}

func TestAPIResponse_WithMeta(t *testing.T) {
	now := time.Date(2026, 3, 1, 8, 30, 0, 0, time.FixedZone("PHT", 8*3600))
	resp := dto.NewSuccessResponse("ok").WithMeta("req-1", now)

	require.NotNil(t, resp.Meta)
	assert.Equal(t, "req-1", resp.Meta.RequestID)
	assert.Equal(t, "2026-03-01T00:30:00Z", resp.Meta.Timestamp)
}
