package suite

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const maxWaitDuration = 10 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Terminal *Terminal
}

// New - returns a context bound to the test and a suite whose terminal answers prompts with inputs.
func New(t *testing.T, inputs ...string) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return ctx, &Suite{
		T:        t,
		Logger:   logger,
		Terminal: NewTerminal(inputs...),
	}
}

// Terminal is a scripted terminal. It records every prompt and printed line, and returns io.EOF
// once the script is exhausted.
type Terminal struct {
	inputs []string

	Prompts []string
	Output  []string
}

func NewTerminal(inputs ...string) *Terminal {
	return &Terminal{inputs: inputs}
}

func (that *Terminal) Prompt(ctx context.Context, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	that.Prompts = append(that.Prompts, text)

	if len(that.inputs) == 0 {
		return "", io.EOF
	}

	line := that.inputs[0]
	that.inputs = that.inputs[1:]

	return line, nil
}

func (that *Terminal) Println(a ...any) {
	that.Output = append(that.Output, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
}

func (that *Terminal) PrintBoard(board *entity.Board) {
	that.Output = append(that.Output, board.String())
}

// Remaining - number of scripted lines not consumed yet.
func (that *Terminal) Remaining() int {
	return len(that.inputs)
}

// Count - number of printed lines equal to line.
func (that *Terminal) Count(line string) int {
	count := 0
	for _, out := range that.Output {
		if out == line {
			count++
		}
	}

	return count
}
