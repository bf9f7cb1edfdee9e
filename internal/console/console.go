package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"video-player/internal/logging"
	"video-player/internal/player"
)

const (
	welcomeMessage = "Hello and welcome to the video player, what would you like to do?\n" +
		"Enter HELP for list of available commands or EXIT to terminate."
	goodbyeMessage = "Video player has now terminated its execution. Thank you and goodbye!"
	invalidCommand = "Please enter a valid command, type HELP for a list of available commands."
	prompt         = "> "
)

// Console reads commands and writes rendered results for one player.
type Console struct {
	player      *player.Player
	out         io.Writer
	interactive bool
}

// Option configures a Console.
type Option func(*Console)

// WithPrompt shows a prompt before each command. Set it when input comes
// from a terminal.
func WithPrompt(enabled bool) Option {
	return func(c *Console) {
		c.interactive = enabled
	}
}

// New creates a Console writing to out.
func New(p *player.Player, out io.Writer, opts ...Option) *Console {
	c := &Console{player: p, out: out}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run processes commands from in until EXIT or end of input.
func (c *Console) Run(in io.Reader) error {
	c.println(welcomeMessage)

	scanner := bufio.NewScanner(in)
	for {
		if c.interactive {
			fmt.Fprint(c.out, prompt)
		}
		if !scanner.Scan() {
			break
		}
		if !c.Execute(scanner.Text()) {
			break
		}
	}

	c.println(goodbyeMessage)
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading commands: %w", err)
	}
	return nil
}

// Execute runs a single command line. It returns false when the line asks
// the console to exit. Blank lines are ignored.
func (c *Console) Execute(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return true
	}

	name := strings.ToUpper(fields[0])
	if name == "EXIT" {
		return false
	}

	cmd, ok := commands[name]
	if !ok {
		logging.Debug("console: unknown command %q", fields[0])
		c.println(invalidCommand)
		return true
	}

	args := fields[1:]
	if len(args) < cmd.minArgs || (!cmd.variadic && cmd.maxArgs > 0 && len(args) > cmd.maxArgs) {
		c.printf("Please enter %s command followed by %s.\n", name, cmd.usage)
		return true
	}

	cmd.run(c, args)
	return true
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

func (c *Console) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}
