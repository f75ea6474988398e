// snake is a wrap-around Snake game for the terminal, SSH and the desktop.
//
// Usage:
//
//	snake list              - List available variants
//	snake play [variant]    - Play in the terminal
//	snake serve             - Start SSH server for remote play
//	snake window [variant]  - Play in a desktop window (ebiten build)
//	snake sim [variant]     - Run a headless autopilot and print the result
//	snake config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Override the tick rate (default: variant's own)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--config <path>      - Custom snake.yaml
//	--log-file <path>    - Write logs to a file
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

// Set up by the root command before any subcommand runs.
var (
	snakeConfig config.SnakeConfig
	logger      *log.Logger
	logFile     io.Closer
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake on a wrap-around field",
	Long: `Snake is played on a 32x24 field whose edges wrap around. Eat apples
to grow; biting yourself shrinks you back to a single cell.

Available commands:
  list     - Show all available variants
  play     - Play in the terminal
  serve    - Start SSH server for remote play
  window   - Play in a desktop window
  sim      - Headless autopilot run
  config   - Print the effective configuration

Examples:
  snake play
  snake play snake_relaxed
  snake serve --ssh :2222
  snake sim --ticks 1000 --seed 42`,
	SilenceUsage:       true,
	SilenceErrors:      true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = variant default)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom snake.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// setup loads the configuration and builds the logger shared by all
// commands, then hands both to the game package.
func setup(cmd *cobra.Command, _ []string) error {
	if flagFPS < 0 {
		return fmt.Errorf("--fps must not be negative, got %d", flagFPS)
	}

	l, err := newLogger(cmd)
	if err != nil {
		return err
	}
	logger = l

	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return err
	}
	snakeConfig = cfg

	snake.SetConfig(cfg)
	snake.SetLogger(logger)
	logger.Debug("configuration loaded", "grid", cfg.Grid(), "tick_rate", cfg.TickRate)
	return nil
}

func teardown(*cobra.Command, []string) error {
	if logFile != nil {
		return logFile.Close()
	}
	return nil
}

// newLogger writes to --log-file when given. Otherwise terminal commands
// discard logs, since the terminal belongs to the game, and the rest log to
// stderr.
func newLogger(cmd *cobra.Command) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("--log-level: %w", err)
	}

	var w io.Writer = os.Stderr
	switch {
	case flagLogFile != "":
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return nil, fmt.Errorf("cannot open log file: %w", openErr)
		}
		logFile = f
		w = f
	case cmd == playCmd:
		w = io.Discard
	}

	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          "snake",
	}), nil
}

// seed returns --seed, or the current time when it is zero.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// variantArg resolves the optional variant argument.
func variantArg(args []string) (snake.Variant, error) {
	id := snake.Classic.ID
	if len(args) > 0 {
		id = args[0]
	}
	v, ok := snake.VariantByID(id)
	if !ok {
		return snake.Variant{}, fmt.Errorf("unknown variant %q (run 'snake list')", id)
	}
	return v, nil
}
