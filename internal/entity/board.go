package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

type Mark string

const (
	PlayerX Mark = "X"
	PlayerO Mark = "O"

	EmptyCell Mark = "-"
)

const (
	DefaultBoardSize = 3

	cellSeparator = " | "
)

// Board is a square grid of marks. Cells only ever go from empty to marked, and every query is
// computed from the current grid.
type Board struct {
	size  int
	cells [][]Mark
}

func NewBoard(size int) (*Board, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidBoardSize, size)
	}

	cells := make([][]Mark, size)
	for row := range cells {
		cells[row] = make([]Mark, size)
		for col := range cells[row] {
			cells[row][col] = EmptyCell
		}
	}

	return &Board{
		size:  size,
		cells: cells,
	}, nil
}

func (that *Board) Size() int {
	return that.size
}

// Cell - returns the mark stored at pos.
func (that *Board) Cell(pos Position) (Mark, error) {
	if !that.inRange(pos) {
		return EmptyCell, fmt.Errorf("%w: %s", apperror.ErrPositionOutOfRange, pos)
	}

	return that.cells[pos.Row()][pos.Col()], nil
}

// Place - writes mark at pos without checking occupancy; callers check Valid first.
func (that *Board) Place(mark Mark, pos Position) error {
	if mark == EmptyCell || mark == "" {
		return fmt.Errorf("%w: %q", apperror.ErrInvalidMark, mark)
	}

	if !that.inRange(pos) {
		return fmt.Errorf("%w: %s", apperror.ErrPositionOutOfRange, pos)
	}

	that.cells[pos.Row()][pos.Col()] = mark

	return nil
}

// Valid - reports whether pos is on the board and still empty.
func (that *Board) Valid(pos Position) bool {
	if !that.inRange(pos) {
		return false
	}

	return that.cells[pos.Row()][pos.Col()] == EmptyCell
}

// Win - reports whether any row, column or diagonal is filled with mark.
func (that *Board) Win(mark Mark) bool {
	if mark == EmptyCell {
		return false
	}

	for _, line := range that.lines() {
		if isLineOf(line, mark) {
			return true
		}
	}

	return false
}

func (that *Board) Full() bool {
	for _, row := range that.cells {
		for _, cell := range row {
			if cell == EmptyCell {
				return false
			}
		}
	}

	return true
}

func (that *Board) String() string {
	rows := make([]string, 0, that.size)
	for _, row := range that.cells {
		cells := make([]string, 0, that.size)
		for _, cell := range row {
			cells = append(cells, string(cell))
		}
		rows = append(rows, strings.Join(cells, cellSeparator))
	}

	return strings.Join(rows, "\n")
}

func (that *Board) inRange(pos Position) bool {
	return pos.Row() >= 0 && pos.Row() < that.size && pos.Col() >= 0 && pos.Col() < that.size
}

// lines - rows, then columns, then the main and anti diagonals.
func (that *Board) lines() [][]Mark {
	lines := make([][]Mark, 0, 2*that.size+2)

	for _, row := range that.cells {
		lines = append(lines, row)
	}

	for col := 0; col < that.size; col++ {
		column := make([]Mark, that.size)
		for row := 0; row < that.size; row++ {
			column[row] = that.cells[row][col]
		}
		lines = append(lines, column)
	}

	diagonal := make([]Mark, that.size)
	antiDiagonal := make([]Mark, that.size)
	for i := 0; i < that.size; i++ {
		diagonal[i] = that.cells[i][i]
		antiDiagonal[i] = that.cells[i][that.size-1-i]
	}

	return append(lines, diagonal, antiDiagonal)
}

func isLineOf(line []Mark, mark Mark) bool {
	for _, cell := range line {
		if cell != mark {
			return false
		}
	}

	return true
}
