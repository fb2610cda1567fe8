package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/SarvikIIT/algokit/sorting"
)

var sortAlgo string

// sorters maps the --algo flag onto the library implementations.
var sorters = map[string]func([]int64){
	"quick":     sorting.Quick[int64],
	"merge":     sorting.Merge[int64],
	"heap":      sorting.Heap[int64],
	"insertion": sorting.Insertion[int64],
}

var sortCmd = &cobra.Command{
	Use:   "sort [VALUES...]",
	Short: "sort integers from arguments or stdin",
	Long: `Sorts the integer arguments ascending and prints them one
per line. Without arguments, whitespace-separated integers are read
from stdin instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sorter, ok := sorters[sortAlgo]
		if !ok {
			return fmt.Errorf("unknown algorithm %q, want one of %s",
				sortAlgo, strings.Join(lo.Keys(sorters), ", "))
		}

		if len(args) == 0 {
			scanner := bufio.NewScanner(cmd.InOrStdin())
			scanner.Split(bufio.ScanWords)
			for scanner.Scan() {
				args = append(args, scanner.Text())
			}
			if err := scanner.Err(); err != nil {
				return err
			}
		}

		values, err := parseInts(args)
		if err != nil {
			return err
		}

		sorter(values)
		out := cmd.OutOrStdout()
		for _, v := range values {
			fmt.Fprintln(out, v)
		}

		return nil
	},
}

func init() {
	sortCmd.Flags().StringVar(&sortAlgo, "algo", "quick", "sorting algorithm: quick, merge, heap, insertion")
}
