package cmd

import (
	"github.com/spf13/cobra"

	"github.com/RayyanMinhaj/global-hackathon-v1/internal/preview"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Serve the generated documents and mockups locally",
	RunE:  runPreview,
}

func init() {
	previewCmd.Flags().Int("port", 3000, "port to serve on")
	previewCmd.Flags().Bool("open", true, "open the browser automatically")
	previewCmd.Flags().String("dir", "", "directory to serve (defaults to the configured output dir)")
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	dir, _ := cmd.Flags().GetString("dir")
	if dir == "" {
		dir = cfg.OutputDir
	}
	port, _ := cmd.Flags().GetInt("port")
	open, _ := cmd.Flags().GetBool("open")

	return preview.Serve(dir, port, open)
}
