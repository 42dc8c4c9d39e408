// Package main is the entry point for the hello fixture binary.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	cobra.CheckErr(runHello(os.Stdout, os.Args[1:]))
}
