package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/smj9504/sketchplan/internal/core/domain"
)

var measureCmd = &cobra.Command{
	Use:   "measure",
	Short: "Parse, convert and add measurements",
	Long: `Works with imperial measurement strings such as 12'6", 12.5' or 3-1/2".
Values are parsed to total inches and formatted back at the configured
display precision.`,
}

var measureParseCmd = &cobra.Command{
	Use:   "parse [value]",
	Short: "Parse a measurement string",
	Args:  cobra.ExactArgs(1),
	RunE:  runMeasureParse,
}

var measureConvertCmd = &cobra.Command{
	Use:   "convert [value] [unit]",
	Short: "Convert a measurement to another unit",
	Long: `Converts a measurement to in, ft, yd, cm or mm.
Common aliases such as "feet" or "inches" are accepted.`,
	Args: cobra.ExactArgs(2),
	RunE: runMeasureConvert,
}

var measureAddCmd = &cobra.Command{
	Use:   "add [value] [value]",
	Short: "Add two measurements",
	Args:  cobra.ExactArgs(2),
	RunE:  runMeasureAdd,
}

func init() {
	measureCmd.AddCommand(measureParseCmd)
	measureCmd.AddCommand(measureConvertCmd)
	measureCmd.AddCommand(measureAddCmd)
	rootCmd.AddCommand(measureCmd)
}

func runMeasureParse(cmd *cobra.Command, args []string) error {
	if measurementService == nil {
		return errors.New("measurement service not configured")
	}

	m, err := measurementService.Parse(args[0])
	if err != nil {
		return err
	}

	cmd.Printf("%s\n", m.Display)
	cmd.Printf("  %.4g total inches (%.4g ft)\n", m.TotalInches, m.AsFeet())
	return nil
}

func runMeasureConvert(cmd *cobra.Command, args []string) error {
	if measurementService == nil {
		return errors.New("measurement service not configured")
	}

	m, err := measurementService.Parse(args[0])
	if err != nil {
		return err
	}

	unit, err := domain.ParseUnit(args[1])
	if err != nil {
		names := make([]string, 0, len(domain.AllUnits()))
		for _, u := range domain.AllUnits() {
			names = append(names, u.String())
		}
		return fmt.Errorf("%w %q (use one of: %s)", domain.ErrUnknownUnit, args[1], strings.Join(names, ", "))
	}

	cmd.Printf("%s = %.4g %s\n", m.Display, measurementService.Convert(m, unit), unit)
	return nil
}

func runMeasureAdd(cmd *cobra.Command, args []string) error {
	if measurementService == nil {
		return errors.New("measurement service not configured")
	}

	a, err := measurementService.Parse(args[0])
	if err != nil {
		return err
	}
	b, err := measurementService.Parse(args[1])
	if err != nil {
		return err
	}

	sum := measurementService.Add(a, b)
	cmd.Printf("%s + %s = %s\n", a.Display, b.Display, sum.Display)
	return nil
}
