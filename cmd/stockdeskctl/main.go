package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/stake-plus/stockdesk/src/calc"
	"github.com/stake-plus/stockdesk/src/clip"
	"github.com/stake-plus/stockdesk/src/format"
	"github.com/stake-plus/stockdesk/src/notify"
	"github.com/stake-plus/stockdesk/src/validate"
)

var rootCmd = &cobra.Command{
	Use:   "stockdeskctl",
	Short: "Stockdesk command line helpers",
	Long: `Stockdeskctl exposes the stockdesk calculators from the terminal:
bar stock weight, field validation, and clipboard copy of results.`,
}

var (
	weighShape    string
	weighDiameter float64
	weighLength   float64
	weighDensity  float64
	weighLocale   string
	weighCopy     bool
)

var weighCmd = &cobra.Command{
	Use:   "weigh",
	Short: "Compute bar stock weight in kilograms",
	RunE: func(cmd *cobra.Command, args []string) error {
		weight := calc.Weight(calc.Shape(weighShape), weighDiameter, weighLength, weighDensity)
		display := fmt.Sprintf("%s: %s kg",
			format.ShapeLabel(weighShape),
			format.Number(weight, 3, weighLocale))
		fmt.Println(display)

		if weighCopy {
			copier := clip.Copier{Toasts: notify.NewCenter(time.Second, nil)}
			if !copier.Copy(display) {
				return fmt.Errorf("clipboard copy failed")
			}
		}
		return nil
	},
}

var (
	validateType     string
	validateRequired bool
	validateMin      float64
	validateMax      float64
)

var validateCmd = &cobra.Command{
	Use:   "validate <value>",
	Short: "Check a value against a field type",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := validate.Options{Required: validateRequired}
		if cmd.Flags().Changed("min") {
			opts.Min = &validateMin
		}
		if cmd.Flags().Changed("max") {
			opts.Max = &validateMax
		}
		if validate.Input(args[0], validateType, opts) {
			fmt.Println("valid")
			return nil
		}
		fmt.Println("invalid")
		os.Exit(1)
		return nil
	},
}

func init() {
	weighCmd.Flags().StringVar(&weighShape, "shape", "round", "cross-section: round, hexagon or square")
	weighCmd.Flags().Float64Var(&weighDiameter, "diameter", 0, "diameter in mm")
	weighCmd.Flags().Float64Var(&weighLength, "length", 0, "length in mm")
	weighCmd.Flags().Float64Var(&weighDensity, "density", 7.85, "density in g/cm³")
	weighCmd.Flags().StringVar(&weighLocale, "locale", "", "locale for number formatting")
	weighCmd.Flags().BoolVar(&weighCopy, "copy", false, "copy the result to the clipboard")

	validateCmd.Flags().StringVar(&validateType, "type", "string", "field type: number, integer, string, uuid, instruction_number")
	validateCmd.Flags().BoolVar(&validateRequired, "required", false, "string must be non-blank")
	validateCmd.Flags().Float64Var(&validateMin, "min", 0, "minimum numeric value")
	validateCmd.Flags().Float64Var(&validateMax, "max", 0, "maximum numeric value")

	rootCmd.AddCommand(weighCmd, validateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
