package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hapkiduki/luwang-go/internal/domain/valueobject"
)

// ErrMixedTriangleFlags is returned when base-height and side flags are combined.
var ErrMixedTriangleFlags = errors.New("use either --base/--height or --side-a/--side-b/--side-c")

type areaReport struct {
	Shape        string  `json:"shape" yaml:"shape"`
	TriangleMode string  `json:"triangle_mode,omitempty" yaml:"triangle_mode,omitempty"`
	AreaSqm      float64 `json:"area_sqm" yaml:"area_sqm"`
	TotalLuwang  float64 `json:"total_luwang" yaml:"total_luwang"`
	Complete     bool    `json:"complete" yaml:"complete"`
	Advisory     string  `json:"advisory,omitempty" yaml:"advisory,omitempty"`
}

func squareCmd(opts *options) *cobra.Command {
	var side float64
	cmd := &cobra.Command{
		Use:   "square",
		Short: "Area of a square plot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runArea(cmd, opts, valueobject.Square{Side: side})
		},
	}
	cmd.Flags().Float64Var(&side, "side", 0, "side length in buhol")
	return cmd
}

func rectangleCmd(opts *options) *cobra.Command {
	var length, width float64
	cmd := &cobra.Command{
		Use:   "rectangle",
		Short: "Area of a rectangular plot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runArea(cmd, opts, valueobject.Rectangle{Length: length, Width: width})
		},
	}
	cmd.Flags().Float64Var(&length, "length", 0, "length in buhol")
	cmd.Flags().Float64Var(&width, "width", 0, "width in buhol")
	return cmd
}

func circleCmd(opts *options) *cobra.Command {
	var radius float64
	cmd := &cobra.Command{
		Use:   "circle",
		Short: "Area of a circular plot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runArea(cmd, opts, valueobject.Circle{Radius: radius})
		},
	}
	cmd.Flags().Float64Var(&radius, "radius", 0, "radius in buhol")
	return cmd
}

func triangleCmd(opts *options) *cobra.Command {
	var base, height, sideA, sideB, sideC float64
	cmd := &cobra.Command{
		Use:   "triangle",
		Short: "Area of a triangular plot",
		Long: "Area of a triangular plot, either from --base and --height or from\n" +
			"--side-a, --side-b and --side-c using Heron's formula.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := cmd.Flags()
			bySides := f.Changed("side-a") || f.Changed("side-b") || f.Changed("side-c")
			byHeight := f.Changed("base") || f.Changed("height")
			if bySides && byHeight {
				return ErrMixedTriangleFlags
			}

			tri := valueobject.Triangle{Mode: valueobject.TriangleBaseHeight{Base: base, Height: height}}
			if bySides {
				tri = valueobject.Triangle{Mode: valueobject.TriangleThreeSides{SideA: sideA, SideB: sideB, SideC: sideC}}
			}
			return runArea(cmd, opts, tri)
		},
	}
	f := cmd.Flags()
	f.Float64Var(&base, "base", 0, "base in buhol")
	f.Float64Var(&height, "height", 0, "height in buhol")
	f.Float64Var(&sideA, "side-a", 0, "first side in buhol")
	f.Float64Var(&sideB, "side-b", 0, "second side in buhol")
	f.Float64Var(&sideC, "side-c", 0, "third side in buhol")
	return cmd
}

// runArea validates and calculates a shape, printing field errors and
// advisories to stderr and the result to stdout.
func runArea(cmd *cobra.Command, opts *options, shape valueobject.Shape) error {
	out := opts.svc.Calculate(cmd.Context(), shape)
	if !out.Calculated {
		for _, o := range out.Outcomes {
			if !o.Valid() {
				fmt.Fprintln(cmd.ErrOrStderr(), o.ErrorMessage)
			}
		}
		return ErrInvalidInput
	}

	if out.Advisory != "" {
		fmt.Fprintln(cmd.ErrOrStderr(), out.Advisory)
	}

	report := areaReport{
		Shape:       string(shape.Kind()),
		AreaSqm:     out.Result.AreaSqm,
		TotalLuwang: out.Result.TotalLuwang,
		Complete:    out.Complete,
		Advisory:    out.Advisory,
	}
	if tri, ok := shape.(valueobject.Triangle); ok {
		report.TriangleMode = string(tri.ModeKind())
	}

	if opts.output != OutputText {
		return write(cmd.OutOrStdout(), opts.output, report)
	}

	display := out.Result.Display()
	rows := [][2]string{{"Shape", report.Shape}}
	if report.TriangleMode != "" {
		rows = append(rows, [2]string{"Mode", report.TriangleMode})
	}
	rows = append(rows,
		[2]string{"Area", display.AreaSqm + " sqm"},
		[2]string{"LuWang", display.TotalLuwang},
	)
	if !out.Complete {
		rows = append(rows, [2]string{"Note", "some dimensions were not entered"})
	}
	return writeText(cmd.OutOrStdout(), rows)
}
