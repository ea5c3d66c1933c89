package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/klrdim/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "klrdim:", err)
		os.Exit(1)
	}
}
