// Command kriter evaluates a declarative decision configuration over a
// set of choices and reports their ranking.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
