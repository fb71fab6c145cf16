package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/muesli/termenv"
	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-console/internal/transport/console"
)

// RunApp - runs the game on the process terminal until the players quit, input ends or a signal
// arrives.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	profile := termenv.Ascii
	if !conf.NoColor {
		profile = termenv.EnvColorProfile()
	}

	return Run(ctx, logger, conf, console.New(os.Stdin, os.Stdout, profile))
}

// Run - plays a session on term. The end of input and a canceled context are a normal exit.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, term tictactoe.Terminal) error {
	log := logger.With("component", "app")

	game, err := tictactoe.NewGame(ctx, logger, term, conf.BoardSize, conf.Players.First, conf.Players.Second)
	if err != nil {
		if isSessionEnd(err) {
			log.Info("session ended before the game started", "reason", err)
			return nil
		}
		return fmt.Errorf("could not create game: %w", err)
	}

	if err = game.Play(ctx); err != nil {
		if isSessionEnd(err) {
			term.Println()
			log.Info("session ended", "reason", err)
			return nil
		}
		return fmt.Errorf("game failed: %w", err)
	}

	return nil
}

func isSessionEnd(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, context.Canceled)
}
