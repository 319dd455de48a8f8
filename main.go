package main

import (
	"os"

	"github.com/prabhanj08/pybasics/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
