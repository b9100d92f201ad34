// Package commands implements the landcalc command tree.
package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hapkiduki/luwang-go/internal/application/port"
	"github.com/hapkiduki/luwang-go/internal/application/service"
	"github.com/hapkiduki/luwang-go/internal/domain/measurement"
	"github.com/hapkiduki/luwang-go/internal/infrastructure/logging"
	"github.com/hapkiduki/luwang-go/pkg/logger"
)

var (
	// ErrInvalidInput is returned after field errors have been printed.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownOutput is returned for an unsupported --output value.
	ErrUnknownOutput = errors.New("unknown output format")
)

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

type options struct {
	luwangAreaSqm float64
	output        string
	verbose       bool

	svc *service.MeasurementService
}

// NewRootCmd builds the landcalc command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:          "landcalc",
		Short:        "Plot area calculator for buhol measurements",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch opts.output {
			case OutputText, OutputJSON, OutputYAML:
			default:
				return fmt.Errorf("%w: %q", ErrUnknownOutput, opts.output)
			}

			calc, err := measurement.NewCalculator(opts.luwangAreaSqm)
			if err != nil {
				return err
			}

			var log port.Logger = logging.Nop()
			if opts.verbose {
				log = logging.New(logger.MustNew(logger.Config{
					Level:  "debug",
					Format: "console",
					Output: cmd.ErrOrStderr(),
				}))
			}
			opts.svc = service.NewMeasurementService(calc, log)
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.Float64Var(&opts.luwangAreaSqm, "luwang-area-sqm", measurement.DefaultLuwangAreaSqm, "square meters in one LuWang")
	flags.StringVarP(&opts.output, "output", "o", OutputText, "output format: text, json or yaml")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "write debug logs to stderr")

	root.AddCommand(
		squareCmd(opts),
		rectangleCmd(opts),
		circleCmd(opts),
		triangleCmd(opts),
		convertCmd(opts),
	)
	return root
}

func Execute() error {
	return NewRootCmd().Execute()
}
