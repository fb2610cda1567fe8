package main

import (
	"fmt"
	"strconv"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "algokit",
	Short:         "algorithm toolbox: range minimum queries, primes, sorting",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.AddCommand(rmqCmd, primesCmd, sortCmd)
}

// parseInts converts argument strings to int64, failing on the first
// non-numeric token.
func parseInts(args []string) ([]int64, error) {
	var bad string
	values := lo.Map(args, func(s string, _ int) int64 {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil && bad == "" {
			bad = s
		}

		return v
	})
	if bad != "" {
		return nil, fmt.Errorf("not an integer: %q", bad)
	}

	return values, nil
}
