// Command landcalc calculates plot areas from traditional buhol measurements.
package main

import (
	"os"

	"github.com/hapkiduki/luwang-go/cmd/landcalc/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
