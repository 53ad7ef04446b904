package main

import (
	"fmt"
	"os"

	"github.com/mithrel/wpreader/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "wpreader-cli:", err)
		os.Exit(1)
	}
}
