package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/RayyanMinhaj/global-hackathon-v1/internal/agents"
	"github.com/RayyanMinhaj/global-hackathon-v1/internal/config"
	"github.com/RayyanMinhaj/global-hackathon-v1/internal/db"
	"github.com/RayyanMinhaj/global-hackathon-v1/internal/history"
	"github.com/RayyanMinhaj/global-hackathon-v1/internal/server"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run the generation API server",
	Long: `Starts the HTTP server that exposes the document and diagram generation
endpoints, plus a WebSocket endpoint that streams full generation runs.`,
	RunE: runServer,
}

func init() {
	serverCmd.Flags().Int("port", 0, "override the configured port")
	serverCmd.Flags().Bool("no-history", false, "disable request history logging")
	rootCmd.AddCommand(serverCmd)
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	provider, err := createProviderFromConfig(cfg)
	if err != nil {
		return err
	}
	svc := agents.NewService(provider)

	var hist *history.Store
	noHistory, _ := cmd.Flags().GetBool("no-history")
	if !noHistory {
		database, err := openHistoryDB(cfg)
		if err != nil {
			return err
		}
		defer database.Close()
		hist = history.NewStore(database)
	}

	port := cfg.Port
	if flagPort, _ := cmd.Flags().GetInt("port"); flagPort != 0 {
		port = flagPort
	}

	srv := server.New(server.Config{
		Port:        port,
		FrontendURL: cfg.FrontendURL(),
		Screens:     cfg.Screens,
		AllowAll:    cfg.Environment == config.EnvDev,
	}, svc, hist)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()
	log.Printf("listening on :%d (provider %s, model %s)", port, provider.Name(), cfg.Model)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Println("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func openHistoryDB(cfg *config.Config) (*db.DB, error) {
	dir := cfg.OutputDir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	return db.Open(filepath.Join(dir, "history.db"))
}
