package main

import (
	"os"

	"github.com/cardwatch-dev/cardwatch/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
