package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/headless"
)

var (
	flagSimTicks    int
	flagSimTurnRate float64
	flagSimRealtime bool
)

var simCmd = &cobra.Command{
	Use:   "sim [variant]",
	Short: "Run a headless autopilot",
	Long: `Run the game loop with no display. An autopilot presses a random
direction on some ticks; the final snapshot is printed as YAML. Two runs with
the same --seed print the same snapshot.

Examples:
  snake sim --ticks 1000 --seed 42
  snake sim --turn-rate 0.5 --realtime`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 500, "Number of ticks to run")
	simCmd.Flags().Float64Var(&flagSimTurnRate, "turn-rate", 0.2, "Chance per tick of a random direction press")
	simCmd.Flags().BoolVar(&flagSimRealtime, "realtime", false, "Wait for each tick instead of running flat out")
}

func runSim(cmd *cobra.Command, args []string) error {
	v, err := variantArg(args)
	if err != nil {
		return err
	}
	if flagSimTicks <= 0 {
		return fmt.Errorf("--ticks must be positive, got %d", flagSimTicks)
	}

	s := seed()
	game := snake.New(v)
	game.Reset(core.RuntimeConfig{Seed: s})

	opts := []headless.Option{headless.WithTurnRate(flagSimTurnRate)}
	if flagSimRealtime {
		opts = append(opts, headless.WithRealtime())
	}
	session := headless.New(s, flagSimTicks, opts...)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	logger.Info("simulation started", "variant", v.ID, "seed", s, "ticks", flagSimTicks)
	// An interrupt still prints the snapshot reached so far.
	if err := snake.Run(ctx, game, session); err != nil {
		logger.Warn("simulation interrupted", "tick", game.Snapshot().Tick)
	}

	out, err := yaml.Marshal(game.Snapshot())
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "# seed: %d\n%s", s, out)
	return nil
}
