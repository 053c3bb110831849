package main

import (
	"os"

	"github.com/pathpilot/pathpilot/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
