package main

import (
	"os"

	"github.com/slipstream-dev/hotlap/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
