// Command cli plays Klondike solitaire in the terminal.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/minaorangina/klondike/config"
	"github.com/minaorangina/klondike/engine"
	"github.com/minaorangina/klondike/store"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newApp().Run(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:  "klondike",
		Usage: "play Klondike solitaire in the terminal",
		Flags: []cli.Flag{
			&cli.Int64Flag{
				Name:    "seed",
				Usage:   "deal the game from this seed (random if not set)",
				Sources: cli.EnvVars("KLONDIKE_SEED"),
			},
			&cli.BoolFlag{
				Name:  "king-only",
				Usage: "only a king may fill an empty column",
			},
			&cli.BoolFlag{
				Name:  "no-foundation-moves",
				Usage: "never move cards onto the foundations",
			},
			&cli.StringFlag{
				Name:  "env-file",
				Usage: "read configuration from this file",
				Value: ".env",
			},
		},
		Action: run,
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load(cmd.String("env-file"))
	if err != nil {
		return err
	}

	logger, err := cfg.Logger()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer logger.Sync()

	rules := cfg.Rules()
	if cmd.Bool("king-only") {
		rules.KingOnlyOnEmpty = true
	}
	if cmd.Bool("no-foundation-moves") {
		rules.FoundationMoves = false
	}

	games := store.NewInMemoryGameStore()
	ge := engine.New(engine.GameEngineOpts{
		Rules:           rules,
		Logger:          logger,
		CheckInvariants: cfg.CheckInvariants,
	})
	if err := games.AddGame(ge); err != nil {
		return err
	}

	var seed *int64
	if cmd.IsSet("seed") {
		s := cmd.Int64("seed")
		seed = &s
	}
	ge.Start(seed)

	logger.Debug("session started", zap.Strings("games", games.GameIDs()))

	return playGame(ctx, games, ge.ID(), os.Stdin, os.Stdout)
}

// playGame runs the stored game with this ID in the terminal, and drops it
// from the store once the player leaves
func playGame(ctx context.Context, games store.GameStore, gameID string, in io.Reader, out io.Writer) error {
	ge := games.FindGame(gameID)
	if ge == nil {
		return fmt.Errorf("%w: %s", store.ErrUnknownGameID, gameID)
	}
	defer games.RemoveGame(gameID)

	return engine.NewCLIPlayer(ge, in, out).Run(ctx)
}
