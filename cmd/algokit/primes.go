package main

import (
	"fmt"
	"strconv"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/SarvikIIT/algokit/numtheory"
)

var primesFrom int64

var primesCmd = &cobra.Command{
	Use:   "primes N",
	Short: "list the primes up to N",
	Long: `Sieves and prints every prime up to N, one per line.
With --from the segmented sieve lists the primes in [FROM, N] instead,
which stays cheap even for windows high above zero.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("not an integer: %q", args[0])
		}

		var primes []int64
		if primesFrom > 0 {
			primes, err = numtheory.SegmentedSieve(primesFrom, n)
		} else {
			primes, _, err = numtheory.Sieve(int(n))
		}
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		lo.ForEach(primes, func(p int64, _ int) {
			fmt.Fprintln(out, p)
		})
		fmt.Fprintf(cmd.ErrOrStderr(), "%d primes\n", len(primes))

		return nil
	},
}

func init() {
	primesCmd.Flags().Int64Var(&primesFrom, "from", 0, "lower bound of the sieve window")
}
