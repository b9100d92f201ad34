package measurement_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hapkiduki/luwang-go/internal/domain/measurement"
	"github.com/hapkiduki/luwang-go/internal/domain/valueobject"
)

func TestValidateField_Accepts(t *testing.T) {
	for _, v := range []float64{0, 1, 2.5, 500, 999.99, 1000} {
		assert.NoError(t, measurement.ValidateField(v, "X"), "value=%v", v)
	}
}

func TestValidateField_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  error
	}{
		{"negative", -1, measurement.ErrNegativeValue},
		{"tiny negative", -0.0001, measurement.ErrNegativeValue},
		{"above max", 1001, measurement.ErrExceedsMaximum},
		{"just above max", 1000.5, measurement.ErrExceedsMaximum},
		{"nan", math.NaN(), measurement.ErrNotFinite},
		{"positive infinity", math.Inf(1), measurement.ErrNotFinite},
		{"negative infinity", math.Inf(-1), measurement.ErrNotFinite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := measurement.ValidateField(tt.value, "Length")
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)

			var fe *measurement.FieldError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, "Length", fe.Label)
			assert.Contains(t, fe.Message, "Length")
		})
	}
}

func TestValidateField_MessagesNameTheField(t *testing.T) {
	a := measurement.ValidateField(-1, "Side A")
	b := measurement.ValidateField(-1, "Side B")
	require.Error(t, a)
	require.Error(t, b)
	assert.NotEqual(t, a.Error(), b.Error())
}

func TestValidateShape(t *testing.T) {
	shape := valueobject.Triangle{Mode: valueobject.TriangleThreeSides{SideA: -3, SideB: 0, SideC: 1200}}

	got := measurement.ValidateShape(shape)
	want := []measurement.ValidationOutcome{
		{Field: "side_a", FieldLabel: "Side A", ErrorMessage: "Side A cannot be negative"},
		{Field: "side_b", FieldLabel: "Side B"},
		{Field: "side_c", FieldLabel: "Side C", ErrorMessage: "Side C cannot exceed 1000 buhol"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("outcomes mismatch (-want +got):\n%s", diff)
	}

	assert.True(t, measurement.HasErrors(got))
	assert.False(t, got[0].Valid())
	assert.True(t, got[1].Valid())
}

func TestValidateShape_AllValid(t *testing.T) {
	outcomes := measurement.ValidateShape(valueobject.Rectangle{Length: 10, Width: 0})
	require.Len(t, outcomes, 2)
	assert.False(t, measurement.HasErrors(outcomes))
}

func TestValidateShape_Nil(t *testing.T) {
	assert.Empty(t, measurement.ValidateShape(nil))
	assert.False(t, measurement.HasErrors(nil))
}
