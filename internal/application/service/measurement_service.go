// Package service contains the application services that orchestrate domain
// logic for the interface layer (HTTP handlers and the CLI).
package service

import (
	"context"

	"github.com/hapkiduki/luwang-go/internal/application/port"
	"github.com/hapkiduki/luwang-go/internal/domain/measurement"
	"github.com/hapkiduki/luwang-go/internal/domain/valueobject"
)

// CalculationOutcome is everything a form needs after one recalculation.
type CalculationOutcome struct {
	// Shape is the shape that was evaluated.
	Shape valueobject.Shape

	// Outcomes holds the per-field validation verdicts, in input order.
	Outcomes []measurement.ValidationOutcome

	// Calculated is false when a field failed validation; no calculation ran.
	Calculated bool

	// Complete is true when every required dimension was entered.
	Complete bool

	// Result is the computed area. It is the zero result when not calculated,
	// incomplete, or geometrically impossible.
	Result valueobject.AreaResult

	// Advisory explains a zero result caused by an impossible triangle.
	Advisory string
}

// Conversion is a single buhol length expressed in the other units.
type Conversion struct {
	Buhol  float64 `json:"buhol"`
	Meters float64 `json:"meters"`
	Tali   float64 `json:"tali"`
}

// MeasurementService validates plot dimensions and runs the area calculator.
type MeasurementService struct {
	calc *measurement.Calculator
	log  port.Logger
}

// NewMeasurementService creates a new MeasurementService.
//
// Parameters:
//   - calc: the area calculator (carries the LuWang ratio)
//   - log: logger for calculation events
//
// Returns:
//   - *MeasurementService: the service
func NewMeasurementService(calc *measurement.Calculator, log port.Logger) *MeasurementService {
	if calc == nil {
		calc = measurement.DefaultCalculator()
	}
	return &MeasurementService{
		calc: calc,
		log:  log.With("component", "measurement"),
	}
}

// LuwangAreaSqm returns the square meters per LuWang in use.
func (s *MeasurementService) LuwangAreaSqm() float64 {
	return s.calc.LuwangAreaSqm()
}

// Calculate validates every field of the shape and, only if all of them
// pass, computes the area.
//
// Parameters:
//   - ctx: request context, used for log correlation
//   - shape: the shape to evaluate
//
// Returns:
//   - CalculationOutcome: validation verdicts, result and advisory
func (s *MeasurementService) Calculate(ctx context.Context, shape valueobject.Shape) CalculationOutcome {
	log := s.log.WithContext(ctx)

	outcome := CalculationOutcome{
		Shape:    shape,
		Outcomes: measurement.ValidateShape(shape),
		Result:   valueobject.ZeroArea(),
	}

	if shape == nil {
		return outcome
	}

	if measurement.HasErrors(outcome.Outcomes) {
		log.Debug("Calculation skipped, invalid fields",
			"shape", shape.Kind(),
			"outcomes", outcome.Outcomes,
		)
		return outcome
	}

	outcome.Calculated = true
	outcome.Complete = allEntered(shape)
	outcome.Result = s.calc.Calculate(shape)
	outcome.Advisory = measurement.TriangleAdvisory(shape)

	if outcome.Advisory != "" {
		log.Info("Triangle rejected by triangle inequality",
			"dimensions", shape.Dimensions(),
		)
	}

	log.Debug("Area calculated",
		"shape", shape.Kind(),
		"complete", outcome.Complete,
		"area_sqm", outcome.Result.AreaSqm,
		"total_luwang", outcome.Result.TotalLuwang,
	)
	return outcome
}

// Convert expresses a buhol length in meters and tali.
//
// Parameters:
//   - buhol: the length to convert
//
// Returns:
//   - Conversion: the converted values
//   - error: a *measurement.FieldError if buhol fails validation
func (s *MeasurementService) Convert(buhol float64) (Conversion, error) {
	if err := measurement.ValidateField(buhol, "Buhol"); err != nil {
		return Conversion{}, err
	}
	return Conversion{
		Buhol:  buhol,
		Meters: valueobject.BuholToMeters(buhol),
		Tali:   valueobject.BuholToTali(buhol),
	}, nil
}

func allEntered(shape valueobject.Shape) bool {
	for _, d := range shape.Dimensions() {
		if !d.IsEntered() {
			return false
		}
	}
	return true
}
