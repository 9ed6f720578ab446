// main is the entry point for the gpscore CLI.
package main

import (
	"fmt"
	"os"

	"github.com/huangsam/gpscore/cmd"
	"github.com/huangsam/gpscore/internal/contract"
)

func main() {
	err := cmd.Execute()
	if stopErr := cmd.StopProfiling(); stopErr != nil {
		contract.LogWarn("Cannot stop profiling", stopErr)
	}
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
