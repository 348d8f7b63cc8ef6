package main

import (
	"os"

	"cryptoutil/cmd/cryptoutil/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
