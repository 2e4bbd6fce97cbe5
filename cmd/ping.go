package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/RayyanMinhaj/global-hackathon-v1/internal/api"
)

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check that the generation backend is reachable",
	RunE:  runPing,
}

func init() {
	pingCmd.Flags().Bool("echo", false, "also run an echo round-trip through the API")
	rootCmd.AddCommand(pingCmd)
}

func runPing(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client := api.New(cfg.BackendURL())
	start := time.Now()
	status, err := client.Health(ctx)
	if err != nil {
		return fmt.Errorf("backend %s unreachable: %w", cfg.BackendURL(), err)
	}
	fmt.Printf("%s: %s (%s)\n", cfg.BackendURL(), status, time.Since(start).Round(time.Millisecond))

	if echo, _ := cmd.Flags().GetBool("echo"); echo {
		msg, err := client.Echo(ctx, map[string]string{"ping": time.Now().Format(time.RFC3339)})
		if err != nil {
			return fmt.Errorf("echo round-trip failed: %w", err)
		}
		fmt.Printf("echo: %s\n", msg)
	}
	return nil
}
