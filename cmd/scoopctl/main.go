package main

import (
	"os"

	"github.com/scoopctl/scoopctl/internal/adapters/inbound/cli"
	"github.com/scoopctl/scoopctl/internal/logging"
)

func main() {
	logging.Setup()
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
