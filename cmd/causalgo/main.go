package main

import (
	"os"

	"github.com/msartori/causalgo/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
