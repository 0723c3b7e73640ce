package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"officeit/internal/app"
	"officeit/internal/config"
	"officeit/internal/database"
	"officeit/internal/logging"
)

var (
	// Global flags
	configFile string

	cfg        *config.Config
	syncLogger func()
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "officeit",
	Short: "Office IT catalogue API",
	Long: `officeit serves the product catalogue of an office IT supply store:
public browsing with search, filters and sorting, a featured section,
contact and newsletter forms, and an admin API for products and categories.

Configuration comes from the environment and, optionally, a config file.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			return err
		}
		syncLogger, err = logging.Setup(logging.Options{Mode: cfg.LogMode, File: cfg.LogFile})
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if syncLogger != nil {
			syncLogger()
		}
	},
}

// serveCmd runs the HTTP API
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return app.Run(ctx, cfg)
	},
}

// migrateCmd creates or updates the schema
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := database.Open(cfg.DatabaseDriver, cfg.DatabaseDSN, false)
		if err != nil {
			return err
		}
		if err := database.Migrate(db); err != nil {
			return err
		}
		zap.S().Infof("schema migrated on %s", cfg.DatabaseDriver)
		return nil
	},
}

// seedCmd loads the starter catalogue
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the starter catalogue into an empty database",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := database.Open(cfg.DatabaseDriver, cfg.DatabaseDSN, false)
		if err != nil {
			return err
		}
		if err := database.Migrate(db); err != nil {
			return err
		}
		result, err := app.Seed(db)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "seeded %d categories, %d products\n", result.Categories, result.Products)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (yaml, json, toml or .env)")
	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
