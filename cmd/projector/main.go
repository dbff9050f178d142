package main

import (
	"os"

	"github.com/simaogato/nestegg-backend/cmd/projector/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
