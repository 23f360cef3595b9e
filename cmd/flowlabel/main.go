package main

import (
	"os"

	"github.com/rpgo/flowlabel/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
