package main

import (
	"os"

	"github.com/moneylens-dev/moneylens/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
