package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SarvikIIT/algokit/segtree"
)

var (
	rmqQueries []string
	rmqAdds    []string
)

var rmqCmd = &cobra.Command{
	Use:   "rmq VALUES...",
	Short: "answer range minimum queries over the given values",
	Long: `Builds a lazy segment tree over VALUES, applies every --add
range update in order, then answers each --query.

Ranges are inclusive and zero-based: --query 1:3 asks for the minimum
of elements 1..3, --add 0:2:5 adds 5 to elements 0..2.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		values, err := parseInts(args)
		if err != nil {
			return err
		}

		tree, err := segtree.New(values)
		if err != nil {
			return err
		}

		for _, spec := range rmqAdds {
			lo, hi, delta, perr := parseAddSpec(spec)
			if perr != nil {
				return perr
			}
			if err := tree.Add(lo, hi, delta); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "add [%d,%d] %+d\n", lo, hi, delta)
		}

		for _, spec := range rmqQueries {
			lo, hi, perr := parseRangeSpec(spec)
			if perr != nil {
				return perr
			}
			m, err := tree.Min(lo, hi)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "min [%d,%d] = %d\n", lo, hi, m)
		}

		return nil
	},
}

func init() {
	rmqCmd.Flags().StringArrayVarP(&rmqQueries, "query", "q", nil, "range to query, LO:HI")
	rmqCmd.Flags().StringArrayVarP(&rmqAdds, "add", "a", nil, "range update, LO:HI:DELTA")
}

// parseRangeSpec parses "LO:HI".
func parseRangeSpec(spec string) (lo, hi int, err error) {
	parts := strings.Split(spec, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("bad range %q, want LO:HI", spec)
	}
	if lo, err = strconv.Atoi(parts[0]); err != nil {
		return 0, 0, fmt.Errorf("bad range %q: %w", spec, err)
	}
	if hi, err = strconv.Atoi(parts[1]); err != nil {
		return 0, 0, fmt.Errorf("bad range %q: %w", spec, err)
	}

	return lo, hi, nil
}

// parseAddSpec parses "LO:HI:DELTA".
func parseAddSpec(spec string) (lo, hi int, delta int64, err error) {
	i := strings.LastIndex(spec, ":")
	if i < 0 {
		return 0, 0, 0, fmt.Errorf("bad update %q, want LO:HI:DELTA", spec)
	}
	if delta, err = strconv.ParseInt(spec[i+1:], 10, 64); err != nil {
		return 0, 0, 0, fmt.Errorf("bad update %q: %w", spec, err)
	}
	lo, hi, err = parseRangeSpec(spec[:i])

	return lo, hi, delta, err
}
