// Package main is the entry point for the bgg command line client.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	bgg "github.com/arnauldvm/boardgamegeek"
	"github.com/arnauldvm/boardgamegeek/cache"
	"github.com/arnauldvm/boardgamegeek/internal/config"
)

var (
	// Persistent flags shared by every subcommand.
	flagToken   string
	flagJSON    bool
	flagNoCache bool
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "bgg",
	Short: "BoardGameGeek command line client",
	Long: `bgg queries the BoardGameGeek XML API from the command line.

Output is human-readable text by default; --json prints the raw JSON
form instead. The API token comes from --token or from the bgg-tui
config file.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagToken, "token", "", "BGG API token (overrides the config file)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "print raw JSON instead of text")
	rootCmd.PersistentFlags().BoolVar(&flagNoCache, "no-cache", false, "bypass the response cache")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "log API requests to stderr")

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(gameCmd)
	rootCmd.AddCommand(hotCmd)
	rootCmd.AddCommand(collectionCmd)
}

// newClient builds an API client from the config file and the persistent
// flags. The token flag wins over the config file.
func newClient() (*bgg.Client, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	token := flagToken
	if token == "" {
		token = cfg.API.Token
	}
	if token == "" {
		return nil, nil, fmt.Errorf("no API token; pass --token or run bgg-tui to set one up")
	}

	var backend cache.Backend
	if !flagNoCache {
		dir := cfg.Cache.Dir
		if dir == "" {
			if d, err := config.CacheDir(); err == nil {
				dir = d
			}
		}
		// A broken cache backend is not fatal, the client runs uncached.
		if b, err := cache.New(cache.Options{
			Backend:   cfg.Cache.Backend,
			Dir:       dir,
			RedisAddr: cfg.Cache.RedisAddr,
		}); err == nil {
			backend = b
		}
	}

	var logger *slog.Logger
	if flagVerbose {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	client, err := bgg.NewClient(bgg.Config{
		Token:             token,
		RequestsPerMinute: cfg.API.RequestsPerMinute,
		Cache:             backend,
		CacheTTL:          time.Duration(cfg.Cache.TTLHours) * time.Hour,
		Logger:            logger,
	})
	if err != nil {
		return nil, nil, err
	}
	return client, cfg, nil
}

// describeLogger returns the sink Describe methods write to in text mode:
// a text handler on stdout with timestamps and levels stripped.
func describeLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey || a.Key == slog.LevelKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}
