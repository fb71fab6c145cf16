package entity

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

// Position is a (row, column) coordinate on a board. It is a plain value: two positions are equal
// when both coordinates match, and range checks belong to Board, not here.
type Position struct {
	row int
	col int
}

func NewPosition(row, col int) Position {
	return Position{row: row, col: col}
}

// ParsePosition - builds a position from raw row and column input. Base prefixes (0x, 0o, 0b, a
// leading 0 for octal) and digit underscores are accepted.
func ParsePosition(row, col string) (Position, error) {
	r, err := parseInt(row)
	if err != nil {
		return Position{}, fmt.Errorf("%w: row %q", apperror.ErrInvalidInteger, row)
	}

	c, err := parseInt(col)
	if err != nil {
		return Position{}, fmt.Errorf("%w: column %q", apperror.ErrInvalidInteger, col)
	}

	return NewPosition(r, c), nil
}

func parseInt(text string) (int, error) {
	value, err := strconv.ParseInt(strings.TrimSpace(text), 0, strconv.IntSize)
	if err != nil {
		return 0, err //nolint: wrapcheck // callers wrap with the offending input
	}

	return int(value), nil
}

func (that Position) Row() int {
	return that.row
}

func (that Position) Col() int {
	return that.col
}

func (that Position) String() string {
	return fmt.Sprintf("(%d, %d)", that.row, that.col)
}
