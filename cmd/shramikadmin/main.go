package main

import (
	"os"

	"shramikadmin/cmd/shramikadmin/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
