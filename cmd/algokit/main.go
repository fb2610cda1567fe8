// Command algokit is a small demo front-end over the library: range
// minimum queries, prime sieving and sorting from the command line.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
