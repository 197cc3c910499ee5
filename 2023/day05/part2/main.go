// Command seedmap finds the lowest location reachable from an almanac's
// seeds and seed ranges.
//
//	seedmap solve input.txt
//	seedmap ranges --format json input.txt
package main

import (
	"fmt"
	"os"

	"github.com/pborges/seedmap/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.GetExitCode(err))
	}
}
