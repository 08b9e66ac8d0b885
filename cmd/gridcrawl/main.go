// Package main is the entry point for gridcrawl.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/samdwyer/gridcrawl/internal/engine"
	"github.com/samdwyer/gridcrawl/internal/game"
	"github.com/samdwyer/gridcrawl/internal/logger"
	"github.com/samdwyer/gridcrawl/internal/telemetry"
)

var (
	seed       int64
	playerName string
	logFile    string

	logOut *os.File
)

var rootCmd = &cobra.Command{
	Use:   "gridcrawl",
	Short: "A turn-based dungeon crawl on a 5x5 grid",
	Long: `gridcrawl drops you into a small room full of goblins and trolls.
Fight, loot their gear, and walk through the exit to reach the next room.`,
	PersistentPreRunE: setup,
	RunE:              runGame,
	SilenceUsage:      true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.Int64Var(&seed, "seed", 0, "random seed for reproducible rooms (0 picks one; env GRIDCRAWL_SEED)")
	flags.StringVar(&playerName, "name", "", "player name (env GRIDCRAWL_PLAYER_NAME)")
	flags.StringVar(&logFile, "log-file", "", "write logs to this file (env GRIDCRAWL_LOG_FILE)")

	rootCmd.AddCommand(scriptCmd)
}

func main() {
	err := rootCmd.Execute()
	closeLog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setup loads .env, applies env fallbacks for unset flags, and opens the log.
func setup(cmd *cobra.Command, args []string) error {
	// Not fatal: variables may be set directly
	envErr := godotenv.Load()

	flags := cmd.Flags()
	if !flags.Changed("seed") {
		if v := os.Getenv("GRIDCRAWL_SEED"); v != "" {
			parsed, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid GRIDCRAWL_SEED %q: %w", v, err)
			}
			seed = parsed
		}
	}
	if !flags.Changed("name") {
		playerName = os.Getenv("GRIDCRAWL_PLAYER_NAME")
	}
	if !flags.Changed("log-file") {
		logFile = os.Getenv("GRIDCRAWL_LOG_FILE")
	}

	if err := openLog(logFile); err != nil {
		return err
	}
	if envErr != nil {
		logger.Log.WithError(envErr).Debug(".env file not loaded")
	}

	setupOTelEnv()
	return nil
}

// openLog points the logger at path, or discards logs when path is empty.
func openLog(path string) error {
	if path == "" {
		logger.Init(nil)
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	logOut = f
	logger.Init(f)
	return nil
}

func closeLog() {
	if logOut == nil {
		return
	}
	logger.Log.SetOutput(io.Discard)
	if err := logOut.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error closing log file: %v\n", err)
	}
	logOut = nil
}

func engineConfig() engine.Config {
	cfg := engine.DefaultConfig()
	cfg.Seed = seed
	if playerName != "" {
		cfg.PlayerName = playerName
	}
	return cfg
}

func runGame(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	shutdown := startTelemetry(ctx)
	defer shutdown()

	cfg := game.DefaultConfig()
	cfg.Engine = engineConfig()

	g, err := game.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize game: %w", err)
	}
	return g.Run(ctx)
}

// startTelemetry sets up tracing when an endpoint is configured. Failure is
// logged and the game runs without it.
func startTelemetry(ctx context.Context) func() {
	if !telemetry.Enabled() {
		return func() {}
	}
	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		logger.Log.WithError(err).Warn("telemetry setup failed, running without observability")
		return func() {}
	}
	return func() {
		if err := shutdown(ctx); err != nil {
			logger.Log.WithError(err).Error("error shutting down telemetry")
		}
	}
}

// setupOTelEnv maps the Honeycomb variables onto the standard OTEL ones when
// they are not already set.
func setupOTelEnv() {
	apiKey := os.Getenv("HONEYCOMB_GRIDCRAWL_API_KEY")
	if apiKey == "" {
		return
	}
	if os.Getenv(telemetry.EndpointEnv) == "" {
		os.Setenv(telemetry.EndpointEnv, "https://api.honeycomb.io")
	}
	dataset := os.Getenv("HONEYCOMB_GRIDCRAWL_DATASET")
	if dataset == "" {
		dataset = "gridcrawl"
	}
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}
