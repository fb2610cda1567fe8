package numtheory_test

import (
	"fmt"

	"github.com/SarvikIIT/algokit/numtheory"
)

// ExampleNewFactTable shows the recommended pattern: build one table,
// reuse it for every combinatorial query.
func ExampleNewFactTable() {
	table, err := numtheory.NewFactTable(1000, numtheory.Mod)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	c, _ := table.C(52, 5) // poker hands
	cat, _ := table.Catalan(10)
	fmt.Println("C(52,5) =", c)
	fmt.Println("Catalan(10) =", cat)

	// Output:
	// C(52,5) = 2598960
	// Catalan(10) = 16796
}

// ExampleSieve factors a number with the smallest-prime-factor table.
func ExampleSieve() {
	_, spf, err := numtheory.Sieve(100)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	n := int64(84)
	for n > 1 {
		fmt.Print(spf[n], " ")
		n /= spf[n]
	}
	fmt.Println()

	// Output:
	// 2 2 3 7
}
