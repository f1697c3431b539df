package main

import (
	"os"

	"github.com/smartanki/smartanki/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
