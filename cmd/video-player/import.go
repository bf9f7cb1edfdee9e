package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"video-player/internal/catalog"
	"video-player/internal/database"
	"video-player/internal/logging"
	"video-player/internal/startup"
)

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import [file]",
		Short: "Load a catalog file into the SQLite store",
		Long: `Parse a catalog text file and replace the contents of the SQLite
store with it. The file defaults to CATALOG_FILE; DATABASE_DIR must be set.

Each line of the file has the form:
  Title | video_id | #tag1 , #tag2`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := startup.LoadConfig(true)
			if err != nil {
				return err
			}
			if !config.DatabaseEnabled {
				return errors.New("DATABASE_DIR must be set to import a catalog")
			}

			path := config.CatalogFile
			if len(args) == 1 {
				path = args[0]
			}

			start := time.Now()
			lib, err := catalog.LoadFile(path)
			if err != nil {
				return err
			}

			db, err := database.New(cmd.Context(), config.DatabasePath)
			if err != nil {
				return fmt.Errorf("failed to open database: %w", err)
			}
			defer db.Close()

			if err := db.ImportVideos(cmd.Context(), lib.All()); err != nil {
				return err
			}

			logging.Info("Imported %d videos from %s into %s in %v", lib.Len(), path, db.Path(), time.Since(start))
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d videos\n", lib.Len())
			return nil
		},
	}
}
