package main

import (
	"os"

	"github.com/shiftwise/shiftwise/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
