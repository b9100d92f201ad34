package commands

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hapkiduki/luwang-go/internal/domain/measurement"
	"github.com/hapkiduki/luwang-go/internal/domain/valueobject"
)

type conversionReport struct {
	Buhol  float64 `json:"buhol" yaml:"buhol"`
	Meters float64 `json:"meters" yaml:"meters"`
	Tali   float64 `json:"tali" yaml:"tali"`
}

func convertCmd(opts *options) *cobra.Command {
	var buhol float64
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert a buhol length to meters and tali",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conv, err := opts.svc.Convert(buhol)
			if err != nil {
				var fe *measurement.FieldError
				if errors.As(err, &fe) {
					fmt.Fprintln(cmd.ErrOrStderr(), fe.Message)
					return ErrInvalidInput
				}
				return err
			}

			if opts.output != OutputText {
				return write(cmd.OutOrStdout(), opts.output, conversionReport{
					Buhol:  conv.Buhol,
					Meters: conv.Meters,
					Tali:   conv.Tali,
				})
			}
			return writeText(cmd.OutOrStdout(), [][2]string{
				{"Buhol", strconv.FormatFloat(conv.Buhol, 'f', -1, 64)},
				{"Meters", strconv.FormatFloat(conv.Meters, 'f', -1, 64)},
				{"Tali", valueobject.FormatTali(conv.Buhol)},
			})
		},
	}
	cmd.Flags().Float64Var(&buhol, "buhol", 0, "length in buhol")
	return cmd
}
