package main

import (
	"os"

	"github.com/Skufu/symptomcheck/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
