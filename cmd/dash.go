package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/RayyanMinhaj/global-hackathon-v1/internal/api"
	"github.com/RayyanMinhaj/global-hackathon-v1/internal/store"
	"github.com/RayyanMinhaj/global-hackathon-v1/internal/tui"
)

var dashCmd = &cobra.Command{
	Use:   "dash",
	Short: "Interactive dashboard for generating and browsing documents",
	Long: `Opens a terminal dashboard where you can enter a project description,
watch each document generate, and browse the results without leaving the
terminal.`,
	RunE: runDash,
}

func init() {
	rootCmd.AddCommand(dashCmd)
}

func runDash(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	st := store.New()
	if cfg.Theme == "light" {
		st.SetTheme(store.ThemeLight)
	}

	client := api.New(cfg.BackendURL())
	return tui.Run(context.Background(), client, st, cfg.Screens)
}
