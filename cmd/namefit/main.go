package main

import (
	"context"
	"os"

	"github.com/danieljhkim/namefit/internal/cli"
)

var version = "dev"

func main() {
	// fang reports the error itself
	if err := cli.Execute(context.Background(), version); err != nil {
		os.Exit(1)
	}
}
