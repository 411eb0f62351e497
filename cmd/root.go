// Package cmd is for command line interactions with the combibuild application
package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

// stderr is for logging to Stderr (without an annoying timestamp)
var stderr = log.New(os.Stderr, "", 0)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "combibuild",
	Short: `Design combinatorial CRISPR guide libraries from a single-gene design table.
Pair genes all-by-all, across a row x column grid, against references, or explicitly`,
	Version: "0.1.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}
