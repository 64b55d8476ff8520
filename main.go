package main

import (
	"fmt"
	"os"

	"github.com/maxzemtsov/TraitTune-v1-sub000/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
