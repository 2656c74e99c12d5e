package main

import (
	"os"

	"github.com/hiremind/hiremind-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
