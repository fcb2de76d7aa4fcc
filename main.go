package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"luminax_client/internal/app"
	"luminax_client/internal/config"
	"luminax_client/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Failed to load .env: %v", err)
	}

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configDir string

	root := &cobra.Command{
		Use:           "luminax",
		Short:         "Luminax course marketplace client",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVarP(&configDir, "config", "c", "configs", "directory containing config.yaml")

	load := func() (*config.Config, error) {
		cfg, err := config.LoadConfig(configDir)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		logger.InitLogger(cfg)
		return cfg, nil
	}

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP adapter",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			defer logger.Log.Sync()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			application, err := app.NewApp(ctx, cfg)
			if err != nil {
				logger.Log.Error("Failed to start application", zap.Error(err))
				return err
			}
			return application.Run(ctx)
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "featured",
		Short: "Print the featured courses of the configured catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			defer logger.Log.Sync()

			application, err := app.NewApp(context.Background(), cfg)
			if err != nil {
				return err
			}
			defer application.Close()

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(application.Services.Catalog.Featured())
		},
	})

	return root
}
