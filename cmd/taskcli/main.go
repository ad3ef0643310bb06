package main

import (
	"os"

	"github.com/pablasso/taskcli/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
