package main

import (
	"os"

	"github.com/docdot/docdot/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
