package main

import (
	"os"

	"github.com/msto63/cleanfloat/cmd/cleanfloat/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
