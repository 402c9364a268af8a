package main

import (
	"os"

	"labelkey/cmd/labelkey/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
