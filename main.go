package main

import (
	"os"

	"github.com/dmejia/credeval/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
