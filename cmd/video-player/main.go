package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/spf13/cobra"

	"video-player/internal/catalog"
	"video-player/internal/database"
	"video-player/internal/filesystem"
	"video-player/internal/logging"
	"video-player/internal/metrics"
	"video-player/internal/player"
	"video-player/internal/startup"
)

func main() {
	filesystem.SetObserver(metrics.NewFilesystemObserver())

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	repl := newReplCmd()

	root := &cobra.Command{
		Use:   "video-player",
		Short: "Play videos and manage playlists",
		Long: `A single-user video player over a fixed catalog.

Without a subcommand the interactive command loop is started.
Configuration is read from environment variables; see the serve
command for the HTTP API.`,
		Version:       startup.Version,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          repl.RunE,
	}

	root.AddCommand(repl)
	root.AddCommand(newServeCmd())
	root.AddCommand(newImportCmd())

	return root
}

// loadCatalog loads the catalog from the SQLite store when configured,
// falling back to the catalog file when the store is empty.
func loadCatalog(ctx context.Context, config *startup.Config) (*catalog.Library, error) {
	if config.DatabaseEnabled {
		db, err := database.New(ctx, config.DatabasePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()

		lib, err := db.LoadLibrary(ctx)
		if err != nil {
			return nil, err
		}
		if lib.Len() > 0 {
			return lib, nil
		}
		logging.Warn("Database %s holds no videos, reading %s instead", config.DatabasePath, config.CatalogFile)
	}

	return catalog.LoadFile(config.CatalogFile)
}

// newPlayer builds a player wired to the command metrics. A non-zero seed
// makes PLAY_RANDOM reproducible.
func newPlayer(lib catalog.Catalog, seed uint64) *player.Player {
	opts := []player.Option{player.WithObserver(metrics.NewCommandObserver())}
	if seed != 0 {
		opts = append(opts, player.WithRand(rand.New(rand.NewPCG(seed, seed))))
	}
	return player.New(lib, opts...)
}

// shutdownTimeout bounds graceful shutdown of the HTTP servers.
const shutdownTimeout = 30 * time.Second
