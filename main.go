package main

import (
	"os"

	"github.com/repodocs/repodoc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
