package cmd

import (
	"github.com/spf13/cobra"

	"github.com/RayyanMinhaj/global-hackathon-v1/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize blueprint configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure blueprint and generates a .blueprint.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard()
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
