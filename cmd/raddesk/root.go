package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/raddesk/raddesk"
	"github.com/raddesk/raddesk/internal/config"
	"github.com/raddesk/raddesk/storage"
)

var (
	flagStorage string
	flagDataDir string
	flagLog     string

	app *raddesk.App
	log zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "raddesk",
	Short: "Radiology department workflow desk",
	Long: "raddesk manages the working state of a radiology department: the exam\n" +
		"catalog, patients, studies, appointments and equipment inventory, all\n" +
		"persisted locally.",
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if flagStorage != "" {
			cfg.StorageDriver = flagStorage
		}
		if flagDataDir != "" {
			cfg.DataDir = flagDataDir
		}
		if flagLog != "" {
			cfg.LogLevel = flagLog
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		level, err := zerolog.ParseLevel(cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
		}
		log = zerolog.New(os.Stderr).With().Timestamp().Logger().Level(level)
		if cfg.LogFormat == "console" {
			log = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		}

		app, err = raddesk.Open(storage.Driver(cfg.StorageDriver), cfg.StoragePath(), &log)
		if err != nil {
			return err
		}
		ctx := context.Background()
		if err := app.Hydrate(ctx); err != nil {
			return err
		}
		return app.Seed(ctx)
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if app == nil {
			return nil
		}
		return app.Close()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagStorage, "storage", "s", "", "storage driver: memory, json or sqlite")
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "data directory for file-backed drivers")
	rootCmd.PersistentFlags().StringVar(&flagLog, "log-level", "", "log level: trace, debug, info, warn, error")

	rootCmd.AddCommand(testsCmd)
	rootCmd.AddCommand(patientsCmd)
	rootCmd.AddCommand(studiesCmd)
	rootCmd.AddCommand(appointmentsCmd)
	rootCmd.AddCommand(scheduleCmd)
	rootCmd.AddCommand(inventoryCmd)
	rootCmd.AddCommand(checklistsCmd)
}
