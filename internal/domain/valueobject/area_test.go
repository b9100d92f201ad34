package valueobject_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hapkiduki/luwang-go/internal/domain/valueobject"
)

func TestAreaResult_Display(t *testing.T) {
	tests := []struct {
		name   string
		result valueobject.AreaResult
		want   valueobject.AreaDisplay
	}{
		{"zero", valueobject.ZeroArea(), valueobject.AreaDisplay{AreaSqm: "0.00", TotalLuwang: "0.00"}},
		{"whole", valueobject.AreaResult{AreaSqm: 10000, TotalLuwang: 4}, valueobject.AreaDisplay{AreaSqm: "10000.00", TotalLuwang: "4.00"}},
		{"rounds half away from zero", valueobject.AreaResult{AreaSqm: 7853.981633974483, TotalLuwang: 3.125}, valueobject.AreaDisplay{AreaSqm: "7853.98", TotalLuwang: "3.13"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.result.Display())
		})
	}
}

func TestAreaResult_DisplayDoesNotMutate(t *testing.T) {
	r := valueobject.AreaResult{AreaSqm: 1.23456, TotalLuwang: 0.000493824}
	_ = r.Display()
	assert.Equal(t, 1.23456, r.AreaSqm)
	assert.Equal(t, 0.000493824, r.TotalLuwang)
}

func TestAreaResult_IsZero(t *testing.T) {
	assert.True(t, valueobject.ZeroArea().IsZero())
	assert.False(t, valueobject.AreaResult{AreaSqm: 1}.IsZero())
}

func TestAreaResult_String(t *testing.T) {
	r := valueobject.AreaResult{AreaSqm: 10000, TotalLuwang: 4}
	assert.Equal(t, "10000.00 sqm / 4.00 LuWang", r.String())
}
