package main

import (
	"os"

	"github.com/homeledger-dev/homeledger/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
