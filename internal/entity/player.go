package entity

import (
	"context"
	"fmt"
)

const invalidIntegerMessage = "Invalid integer."

// Input is the line-oriented terminal a player types into.
type Input interface {
	Prompt(ctx context.Context, text string) (string, error)
	Println(a ...any)
}

type Player struct {
	name string
	mark Mark
}

func NewPlayer(name string, mark Mark) *Player {
	return &Player{
		name: name,
		mark: mark,
	}
}

func (that *Player) Name() string {
	return that.name
}

func (that *Player) Mark() Mark {
	return that.mark
}

// ChoosePos - asks for a row and a column until both parse as integers. The result may still be
// off the board or occupied; that is for Board.Valid to decide.
func (that *Player) ChoosePos(ctx context.Context, in Input, board *Board) (Position, error) {
	maxIndex := board.Size() - 1

	for {
		row, err := in.Prompt(ctx, fmt.Sprintf("Enter row [0-%d]: ", maxIndex))
		if err != nil {
			return Position{}, fmt.Errorf("failed to read row: %w", err)
		}

		col, err := in.Prompt(ctx, fmt.Sprintf("Enter column [0-%d]: ", maxIndex))
		if err != nil {
			return Position{}, fmt.Errorf("failed to read column: %w", err)
		}

		pos, err := ParsePosition(row, col)
		if err == nil {
			return pos, nil
		}

		in.Println(invalidIntegerMessage)
	}
}
