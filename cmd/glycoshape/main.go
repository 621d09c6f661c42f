package main

import (
	"os"

	"github.com/glycoshape/glycoshape-api/internal/interfaces/cli"
)

var version = "dev"

func main() {
	if err := cli.NewRootCommand(version).Execute(); err != nil {
		os.Exit(1)
	}
}
