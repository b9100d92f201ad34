package valueobject

import "fmt"

// AreaResult is the outcome of an area calculation.
// Both fields keep full floating-point precision; rounding happens only in Display.
type AreaResult struct {
	// AreaSqm is the plot area in square meters.
	AreaSqm float64 `json:"area_sqm"`

	// TotalLuwang is the plot capacity derived from AreaSqm.
	TotalLuwang float64 `json:"total_luwang"`
}

// ZeroArea returns the "nothing to show yet" result.
func ZeroArea() AreaResult {
	return AreaResult{}
}

// IsZero reports whether the result is the zero sentinel.
func (r AreaResult) IsZero() bool {
	return r.AreaSqm == 0 && r.TotalLuwang == 0
}

// AreaDisplay holds the two-decimal strings shown next to currency previews.
type AreaDisplay struct {
	AreaSqm     string `json:"area_sqm"`
	TotalLuwang string `json:"total_luwang"`
}

// Display rounds the result to two decimal places for presentation.
//
// Returns:
//   - AreaDisplay: rounded string forms of both fields
func (r AreaResult) Display() AreaDisplay {
	return AreaDisplay{
		AreaSqm:     formatFixed(r.AreaSqm, 2),
		TotalLuwang: formatFixed(r.TotalLuwang, 2),
	}
}

// String returns a formatted string representation.
//
// Returns:
//   - string: formatted result (e.g., "10000.00 sqm / 4.00 LuWang")
func (r AreaResult) String() string {
	d := r.Display()
	return fmt.Sprintf("%s sqm / %s LuWang", d.AreaSqm, d.TotalLuwang)
}
