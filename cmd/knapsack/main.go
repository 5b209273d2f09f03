// Command knapsack solves a 0/1 knapsack instance exactly and prints the
// result in the two-line interchange format, also saving it to a file.
//
//	knapsack data/ks_30_0
//	knapsack --time-limit 30s --metrics-file knapsack.prom data/ks_400_0
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, "knapsack:", err)
		}
		os.Exit(1)
	}
}
