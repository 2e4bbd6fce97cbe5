package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "blueprint",
	Short: "AI-assisted project documentation from a one-line idea",
	Long: `Blueprint turns a free-text project description into a full set of
project documents: an SRS, ERD/architecture/dataflow/sequence diagrams,
a color palette, a microservices layout, and HTML screen mockups.

It can run against a remote generation backend or serve the generation
agents itself.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".blueprint.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
