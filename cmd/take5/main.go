package main

import (
	"os"

	"take5/cmd/take5/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
