package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/muesli/termenv"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const (
	colorX = "9"
	colorO = "12"

	cellSeparator = " | "
)

type line struct {
	text string
	err  error
}

// Console is a line-oriented terminal: prompts go out without a newline, answers come back one
// line at a time. Input is read by a single goroutine so a blocked prompt can still be canceled.
type Console struct {
	in     io.Reader
	writer *bufio.Writer
	out    *termenv.Output

	lines    chan line
	readOnce sync.Once
}

// New - creates a console writing to out with the given color profile. termenv.Ascii disables
// styling.
func New(in io.Reader, out io.Writer, profile termenv.Profile) *Console {
	writer := bufio.NewWriter(out)

	return &Console{
		in:     in,
		writer: writer,
		out:    termenv.NewOutput(writer, termenv.WithProfile(profile)),
		lines:  make(chan line),
	}
}

// Prompt - writes text, flushes, and waits for the next line of input without its line ending.
func (that *Console) Prompt(ctx context.Context, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	fmt.Fprint(that.out, text)
	if err := that.writer.Flush(); err != nil {
		return "", fmt.Errorf("failed to flush prompt: %w", err)
	}

	that.readOnce.Do(func() {
		go that.readLines()
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l, ok := <-that.lines:
		if !ok {
			return "", io.EOF
		}
		return l.text, l.err
	}
}

func (that *Console) Println(a ...any) {
	fmt.Fprintln(that.out, a...)
	// a failed flush resurfaces on the next Prompt, which reports it
	_ = that.writer.Flush()
}

// PrintBoard - renders the board like Board.String, with each mark in its own color.
func (that *Console) PrintBoard(board *entity.Board) {
	rows := make([]string, 0, board.Size())
	for row := 0; row < board.Size(); row++ {
		cells := make([]string, 0, board.Size())
		for col := 0; col < board.Size(); col++ {
			mark, err := board.Cell(entity.NewPosition(row, col))
			if err != nil {
				mark = entity.EmptyCell
			}
			cells = append(cells, that.styled(mark))
		}
		rows = append(rows, strings.Join(cells, cellSeparator))
	}

	that.Println(strings.Join(rows, "\n"))
}

func (that *Console) styled(mark entity.Mark) string {
	style := that.out.String(string(mark))

	switch mark {
	case entity.PlayerX:
		style = style.Foreground(that.out.Color(colorX)).Bold()
	case entity.PlayerO:
		style = style.Foreground(that.out.Color(colorO)).Bold()
	default:
		style = style.Faint()
	}

	return style.String()
}

// readLines - forwards input lines without their line ending. Lines have no length limit.
func (that *Console) readLines() {
	defer close(that.lines)

	reader := bufio.NewReader(that.in)
	for {
		text, err := reader.ReadString('\n')
		if text != "" && (err == nil || errors.Is(err, io.EOF)) {
			that.lines <- line{text: trimLineEnding(text)}
		}

		if err != nil {
			that.lines <- line{err: err}
			return
		}
	}
}

func trimLineEnding(text string) string {
	text = strings.TrimSuffix(text, "\n")
	return strings.TrimSuffix(text, "\r")
}
