package tictactoe

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const (
	firstPlayerLabel  = "Player 1 name: "
	secondPlayerLabel = "Player 2 name: "
	playAgainPrompt   = "Play again [Y/n]? "

	gameStartMessage       = "Game start"
	invalidNameMessage     = "Invalid name."
	invalidPositionMessage = "Invalid position. Try again."
	tieMessage             = "Its a tie!"
)

// Terminal is where the game talks to the players.
type Terminal interface {
	entity.Input
	PrintBoard(board *entity.Board)
}

type positionSource interface {
	ChoosePos(ctx context.Context, player *entity.Player, board *entity.Board) (entity.Position, error)
}

// terminalPositions lets each player type a position on the terminal.
type terminalPositions struct {
	term Terminal
}

func (that terminalPositions) ChoosePos(ctx context.Context, player *entity.Player, board *entity.Board) (entity.Position, error) {
	return player.ChoosePos(ctx, that.term, board) //nolint: wrapcheck // errors are wrapped by the player
}

type Game struct {
	logger *slog.Logger

	term      Terminal
	positions positionSource

	board   *entity.Board
	players [2]*entity.Player
	outcome entity.Outcome
	round   int
}

// NewGame - creates a game for two players, asking for any name left empty. Player 1 plays X and
// always moves first.
func NewGame(ctx context.Context, logger *slog.Logger, term Terminal, boardSize int, firstName, secondName string) (*Game, error) {
	board, err := entity.NewBoard(boardSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	firstName, err = nameOrPrompt(ctx, term, firstName, firstPlayerLabel)
	if err != nil {
		return nil, fmt.Errorf("failed to get first player name: %w", err)
	}

	secondName, err = nameOrPrompt(ctx, term, secondName, secondPlayerLabel)
	if err != nil {
		return nil, fmt.Errorf("failed to get second player name: %w", err)
	}

	return &Game{
		logger:    logger.With("component", "game"),
		term:      term,
		positions: terminalPositions{term: term},
		board:     board,
		players: [2]*entity.Player{
			entity.NewPlayer(firstName, entity.PlayerX),
			entity.NewPlayer(secondName, entity.PlayerO),
		},
		outcome: entity.Undecided(),
		round:   1,
	}, nil
}

// PromptPlayerName - asks with label until a non-empty name is typed. The name is kept as typed.
func PromptPlayerName(ctx context.Context, in entity.Input, label string) (string, error) {
	for {
		name, err := in.Prompt(ctx, label)
		if err != nil {
			return "", fmt.Errorf("failed to read name: %w", err)
		}

		if name != "" {
			return name, nil
		}

		in.Println(invalidNameMessage)
	}
}

func nameOrPrompt(ctx context.Context, in entity.Input, name, label string) (string, error) {
	if name != "" {
		return name, nil
	}

	return PromptPlayerName(ctx, in, label)
}

func (that *Game) Board() *entity.Board {
	return that.board
}

func (that *Game) Players() [2]*entity.Player {
	return that.players
}

func (that *Game) Outcome() entity.Outcome {
	return that.outcome
}

// Play - plays rounds until the players decline a replay.
func (that *Game) Play(ctx context.Context) error {
	for {
		if err := that.playRound(ctx); err != nil {
			return fmt.Errorf("round %d: %w", that.round, err)
		}

		again, err := that.OnGameEnd(ctx)
		if err != nil {
			return fmt.Errorf("failed to finish round %d: %w", that.round, err)
		}

		if !again {
			that.logger.Info("session finished", "rounds", that.round)
			return nil
		}

		if err = that.Reset(); err != nil {
			return fmt.Errorf("failed to reset game: %w", err)
		}
	}
}

// playRound - alternates turns, player 1 first, and checks for the end after every single move.
func (that *Game) playRound(ctx context.Context) error {
	that.term.Println(gameStartMessage)

	for !that.outcome.IsDecided() {
		for _, player := range that.players {
			if err := that.playTurn(ctx, player); err != nil {
				return err
			}
			that.term.Println()

			that.outcome = that.CheckGameEnd(player)
			if that.outcome.IsDecided() {
				break
			}
		}
	}

	that.logger.Info("round finished", "round", that.round, "outcome", that.outcome.String())

	return nil
}

func (that *Game) playTurn(ctx context.Context, player *entity.Player) error {
	that.term.PrintBoard(that.board)
	that.term.Println(player.Name() + "'s turn")

	pos, err := that.ChooseValidPos(ctx, player)
	if err != nil {
		return fmt.Errorf("failed to choose position for %s: %w", player.Name(), err)
	}

	if err = that.board.Place(player.Mark(), pos); err != nil {
		return fmt.Errorf("failed to place %s: %w", player.Mark(), err)
	}

	that.logger.Debug("mark placed", "player", player.Name(), "mark", player.Mark(), "position", pos.String())

	return nil
}

// CheckGameEnd - reports the round result after player moved. A full board is a tie even when
// the last move also completed a line.
func (that *Game) CheckGameEnd(player *entity.Player) entity.Outcome {
	switch {
	case that.board.Full():
		return entity.Tie()
	case that.board.Win(player.Mark()):
		return entity.WonBy(player)
	default:
		return entity.Undecided()
	}
}

// ChooseValidPos - asks player for positions until one is free and on the board.
func (that *Game) ChooseValidPos(ctx context.Context, player *entity.Player) (entity.Position, error) {
	for {
		pos, err := that.positions.ChoosePos(ctx, player, that.board)
		if err != nil {
			return entity.Position{}, err
		}

		if that.board.Valid(pos) {
			return pos, nil
		}

		that.logger.Debug("invalid position", "player", player.Name(), "position", pos.String())
		that.term.Println(invalidPositionMessage)
	}
}

// OnGameEnd - shows the final board and result, then asks whether to play another round.
func (that *Game) OnGameEnd(ctx context.Context) (bool, error) {
	that.term.PrintBoard(that.board)

	if that.outcome.Kind() == entity.OutcomeTie {
		that.term.Println(tieMessage)
	} else if winner := that.outcome.Winner(); winner != nil {
		that.term.Println(winner.Name() + " won!")
	}

	return that.PlayAgain(ctx)
}

func (that *Game) PlayAgain(ctx context.Context) (bool, error) {
	reply, err := that.term.Prompt(ctx, playAgainPrompt)
	if err != nil {
		return false, fmt.Errorf("failed to read replay answer: %w", err)
	}
	that.term.Println()

	return IsAffirmative(reply), nil
}

// IsAffirmative - an empty reply or "y" in any case means yes.
func IsAffirmative(reply string) bool {
	return reply == "" || strings.EqualFold(reply, "y")
}

// Reset - starts a new round with a fresh board and the same players.
func (that *Game) Reset() error {
	board, err := entity.NewBoard(that.board.Size())
	if err != nil {
		return fmt.Errorf("failed to create board: %w", err)
	}

	that.board = board
	that.outcome = entity.Undecided()
	that.round++

	that.logger.Info("new round", "round", that.round)

	return nil
}
