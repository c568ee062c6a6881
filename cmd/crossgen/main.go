// Command crossgen is the batch-generation CLI for the crossword engine,
// the way cmd/crossgen originally fronted the teacher's constraint-fill
// pipeline: a thin main that hands off to cobra's root command.
package main

import (
	"fmt"
	"os"

	"github.com/crossplay/backend/cmd/crossgen/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
