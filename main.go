package main

import (
	"os"

	"github.com/boardkit/picodeploy/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
