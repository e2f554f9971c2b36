// Package main is the runeword command.
package main

import (
	"os"

	"github.com/roach88/runeword/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
