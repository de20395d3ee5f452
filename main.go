package main

import (
	"os"

	"github.com/thenoetrevino/flashquiz/cmd"
	"github.com/thenoetrevino/flashquiz/internal/cli"
)

func main() {
	os.Exit(cli.ExitCode(cmd.Execute()))
}
