// Command decimalfp is a small command-line front end over the decimal
// engine, demonstrating literal parsing, the arithmetic facade and
// rounding-mode selection end to end: a cobra root command with leaf
// subcommands, each wiring its own pflag-backed flags rather than a
// single flat flag set.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/nnagy/decimalfp"
	"github.com/spf13/cobra"
)

var roundingName string

func main() {
	rootCmd := &cobra.Command{
		Use:   "decimalfp",
		Short: "Exact decimal fixed-point arithmetic from the command line",
	}
	rootCmd.PersistentFlags().StringVar(&roundingName, "rounding", "half_even",
		"rounding mode: half_even, half_up, half_down, up, down, ceiling, floor, 05up")

	rootCmd.AddCommand(
		binaryCmd("add", "x + y", decimal.Decimal.Add),
		binaryCmd("sub", "x - y", decimal.Decimal.Sub),
		binaryCmd("mul", "x * y", decimal.Decimal.Mul),
		quoCmd(),
		roundCmd(),
		parseCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "decimalfp:", err)
		os.Exit(1)
	}
}

func resolveRounding() (decimal.RoundingMode, error) {
	names := map[string]decimal.RoundingMode{
		"half_even":  decimal.HalfEven,
		"half_up":    decimal.HalfUp,
		"half_down":  decimal.HalfDown,
		"up":         decimal.Up,
		"down":       decimal.Down,
		"ceiling":    decimal.Ceiling,
		"floor":      decimal.Floor,
		"05up":       decimal.ZeroFiveUp,
	}
	mode, ok := names[roundingName]
	if !ok {
		return 0, fmt.Errorf("%w: unknown rounding mode %q", decimal.ErrInvalidRoundingMode, roundingName)
	}
	return mode, nil
}

// binaryCmd builds a two-argument exact operation subcommand (add/sub/
// mul), each of which takes no rounding mode since Add/Sub/Mul never
// round.
func binaryCmd(name, desc string, op func(decimal.Decimal, decimal.Decimal) (decimal.Decimal, error)) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <x> <y>",
		Short: desc,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := decimal.Parse(args[0])
			if err != nil {
				return err
			}
			y, err := decimal.Parse(args[1])
			if err != nil {
				return err
			}
			z, err := op(x, y)
			if err != nil {
				return err
			}
			fmt.Println(z.String())
			return nil
		},
	}
}

func quoCmd() *cobra.Command {
	var scale int
	cmd := &cobra.Command{
		Use:   "quo <x> <y>",
		Short: "x / y rounded to --scale fractional digits",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := resolveRounding()
			if err != nil {
				return err
			}
			x, err := decimal.Parse(args[0])
			if err != nil {
				return err
			}
			y, err := decimal.Parse(args[1])
			if err != nil {
				return err
			}
			z, err := x.Quo(y, scale, mode)
			if err != nil {
				return err
			}
			fmt.Println(z.String())
			return nil
		},
	}
	cmd.Flags().IntVar(&scale, "scale", 2, "result scale (fractional digit count)")
	return cmd
}

func roundCmd() *cobra.Command {
	var n int
	cmd := &cobra.Command{
		Use:   "round <x>",
		Short: "round x to --digits fractional digits",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := resolveRounding()
			if err != nil {
				return err
			}
			x, err := decimal.Parse(args[0])
			if err != nil {
				return err
			}
			if err := decimal.SetDefaultRoundingMode(mode); err != nil {
				return err
			}
			z, err := x.Round(n, mode)
			if err != nil {
				return err
			}
			fmt.Println(z.String())
			return nil
		},
	}
	cmd.Flags().IntVar(&n, "digits", 0, "target fractional digit count")
	return cmd
}

func parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <x>",
		Short: "parse x and print its canonical form, scale and magnitude",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := decimal.Parse(args[0])
			if err != nil {
				return err
			}
			mag, magErr := x.Magnitude()
			fmt.Printf("value:     %s\n", x.String())
			fmt.Printf("scale:     %s\n", strconv.Itoa(x.Scale()))
			if magErr != nil {
				fmt.Printf("magnitude: undefined (%v)\n", magErr)
			} else {
				fmt.Printf("magnitude: %d\n", mag)
			}
			num, den := x.AsIntegerRatio()
			fmt.Printf("ratio:     %s/%s\n", num.String(), den.String())
			return nil
		},
	}
}
