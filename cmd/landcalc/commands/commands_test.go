package commands_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/hapkiduki/luwang-go/cmd/landcalc/commands"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := commands.NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestSquare_Text(t *testing.T) {
	out, _, err := run(t, "square", "--side", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "10000.00 sqm")
	assert.Contains(t, out, "4.00")
	assert.NotContains(t, out, "not entered")
}

func TestRectangle_JSON(t *testing.T) {
	out, _, err := run(t, "rectangle", "--length", "2", "--width", "3", "-o", "json")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "rectangle", got["shape"])
	assert.Equal(t, 15000.0, got["area_sqm"])
	assert.Equal(t, 6.0, got["total_luwang"])
	assert.Equal(t, true, got["complete"])
}

func TestCircle_YAMLWithCustomRatio(t *testing.T) {
	out, _, err := run(t, "circle", "--radius", "1", "--output", "yaml", "--luwang-area-sqm", "7853.981633974483")
	require.NoError(t, err)

	var got struct {
		Shape       string  `yaml:"shape"`
		AreaSqm     float64 `yaml:"area_sqm"`
		TotalLuwang float64 `yaml:"total_luwang"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, "circle", got.Shape)
	assert.InDelta(t, 7853.981633974483, got.AreaSqm, 1e-9)
	assert.InDelta(t, 1.0, got.TotalLuwang, 1e-12)
}

func TestIncompleteInputIsZero(t *testing.T) {
	out, _, err := run(t, "rectangle", "--length", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "0.00 sqm")
	assert.Contains(t, out, "not entered")
}

func TestValidationFailure(t *testing.T) {
	out, errOut, err := run(t, "rectangle", "--length=-1", "--width", "1001")
	require.ErrorIs(t, err, commands.ErrInvalidInput)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "Length cannot be negative")
	assert.Contains(t, errOut, "Width cannot exceed 1000 buhol")
}

func TestTriangle(t *testing.T) {
	t.Run("base height", func(t *testing.T) {
		out, _, err := run(t, "triangle", "--base", "4", "--height", "2", "-o", "json")
		require.NoError(t, err)
		var got map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, "base_height", got["triangle_mode"])
		assert.Equal(t, 10000.0, got["area_sqm"])
	})

	t.Run("three sides", func(t *testing.T) {
		out, errOut, err := run(t, "triangle", "--side-a", "3", "--side-b", "4", "--side-c", "5", "-o", "json")
		require.NoError(t, err)
		assert.Empty(t, errOut)
		var got map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, "three_sides", got["triangle_mode"])
		assert.InDelta(t, 15000.0, got["area_sqm"], 1e-6)
	})

	t.Run("impossible", func(t *testing.T) {
		out, errOut, err := run(t, "triangle", "--side-a", "1", "--side-b", "1", "--side-c", "10")
		require.NoError(t, err)
		assert.Contains(t, errOut, "Invalid triangle")
		assert.Contains(t, out, "0.00 sqm")
	})

	t.Run("mixed flags", func(t *testing.T) {
		_, _, err := run(t, "triangle", "--base", "1", "--side-a", "1")
		assert.ErrorIs(t, err, commands.ErrMixedTriangleFlags)
	})
}

func TestConvert(t *testing.T) {
	out, _, err := run(t, "convert", "--buhol", "25")
	require.NoError(t, err)
	assert.Contains(t, out, "1250")
	assert.Contains(t, out, "2.5")

	_, errOut, err := run(t, "convert", "--buhol", "1001")
	require.ErrorIs(t, err, commands.ErrInvalidInput)
	assert.Contains(t, errOut, "Buhol cannot exceed 1000 buhol")
}

func TestGlobalFlagErrors(t *testing.T) {
	_, _, err := run(t, "square", "--side", "1", "-o", "xml")
	assert.ErrorIs(t, err, commands.ErrUnknownOutput)

	_, _, err = run(t, "square", "--side", "1", "--luwang-area-sqm", "0")
	assert.Error(t, err)
}

func TestVerboseLogsToStderr(t *testing.T) {
	_, errOut, err := run(t, "square", "--side", "2", "-v")
	require.NoError(t, err)
	assert.Contains(t, errOut, "Area calculated")
}
