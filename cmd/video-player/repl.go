package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"video-player/internal/console"
	"video-player/internal/startup"
)

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Run the interactive command loop",
		Long: `Read commands from standard input, one per line, and print the
results. Type HELP for the list of commands or EXIT to quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			config, err := startup.LoadConfig(true)
			if err != nil {
				return err
			}

			lib, err := loadCatalog(cmd.Context(), config)
			if err != nil {
				return err
			}

			in := cmd.InOrStdin()
			c := console.New(newPlayer(lib, config.RandomSeed), cmd.OutOrStdout(),
				console.WithPrompt(isTerminal(in)))
			return c.Run(in)
		},
	}
}

func isTerminal(in io.Reader) bool {
	f, ok := in.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
