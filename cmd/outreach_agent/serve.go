package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/outreach-tracker/internal/config"
	"github.com/jonathan/outreach-tracker/internal/seed"
	"github.com/jonathan/outreach-tracker/internal/server"
	"github.com/jonathan/outreach-tracker/internal/store"
)

var (
	servePort     int
	serveSeedFile string
	serveConfig   string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes company, communication, method, dashboard, notification, and calendar endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config and environment)")
	serveCmd.Flags().StringVar(&serveSeedFile, "seed", "", "JSON seed file loaded into the store at startup")
	serveCmd.Flags().StringVar(&serveConfig, "config", "", "Path to a JSON config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(serveConfig, &config.Config{
		Port:     servePort,
		SeedFile: serveSeedFile,
	})
	if err != nil {
		return err
	}

	log, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}

	st := store.New(store.WithLogger(log))
	if cfg.SeedFile != "" {
		if err := seed.LoadInto(st, cfg.SeedFile); err != nil {
			return fmt.Errorf("failed to load seed file: %w", err)
		}
		log.Info().Str("file", cfg.SeedFile).Msg("seed file loaded")
	}

	srv := server.New(server.Config{
		Port:   cfg.Port,
		Logger: log,
	}, st)

	return srv.Start()
}
