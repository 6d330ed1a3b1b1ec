package main

import (
	"os"

	"github.com/tricreta/promptparse/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
