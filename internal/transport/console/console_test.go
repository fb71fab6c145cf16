package console

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsole_Prompt(t *testing.T) {
	t.Run("Reads one line per prompt", func(t *testing.T) {
		// Given: input with unix and windows line endings
		var out bytes.Buffer
		term := New(strings.NewReader("Julia\r\n\n2\n"), &out, termenv.Ascii)
		ctx := context.Background()

		// When: three prompts are answered
		first, err := term.Prompt(ctx, "Player 1 name: ")
		require.NoError(t, err)
		second, err := term.Prompt(ctx, "Play again [Y/n]? ")
		require.NoError(t, err)
		third, err := term.Prompt(ctx, "Enter row [0-2]: ")
		require.NoError(t, err)

		// Then: line endings are stripped and prompts are written without a newline
		assert.Equal(t, "Julia", first)
		assert.Equal(t, "", second)
		assert.Equal(t, "2", third)
		assert.Equal(t, "Player 1 name: Play again [Y/n]? Enter row [0-2]: ", out.String())
	})

	t.Run("Returns io.EOF when input ends", func(t *testing.T) {
		term := New(strings.NewReader("last"), io.Discard, termenv.Ascii)
		ctx := context.Background()

		text, err := term.Prompt(ctx, "> ")
		require.NoError(t, err)
		assert.Equal(t, "last", text)

		_, err = term.Prompt(ctx, "> ")
		require.ErrorIs(t, err, io.EOF)

		_, err = term.Prompt(ctx, "> ")
		require.ErrorIs(t, err, io.EOF)
	})

	t.Run("Reads lines longer than 64 KiB", func(t *testing.T) {
		// Given: a line of 70000 digits followed by a short one
		long := strings.Repeat("9", 70000)
		term := New(strings.NewReader(long+"\n0\n"), io.Discard, termenv.Ascii)
		ctx := context.Background()

		// When: two prompts are answered
		first, err := term.Prompt(ctx, "> ")
		require.NoError(t, err)
		second, err := term.Prompt(ctx, "> ")
		require.NoError(t, err)

		// Then: the long line arrives whole and reading goes on
		assert.Equal(t, long, first)
		assert.Equal(t, "0", second)
	})

	t.Run("Canceled context interrupts a blocked prompt", func(t *testing.T) {
		// Given: input that never delivers a line
		reader, writer := io.Pipe()
		t.Cleanup(func() {
			_ = writer.Close()
		})
		term := New(reader, io.Discard, termenv.Ascii)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		// When: prompting with a canceled context
		_, err := term.Prompt(ctx, "> ")

		// Then: context.Canceled is returned
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestConsole_PrintBoard(t *testing.T) {
	newBoard := func(t *testing.T) *entity.Board {
		t.Helper()

		board, err := entity.NewBoard(entity.DefaultBoardSize)
		require.NoError(t, err)
		require.NoError(t, board.Place(entity.PlayerX, entity.NewPosition(0, 0)))
		require.NoError(t, board.Place(entity.PlayerO, entity.NewPosition(1, 1)))

		return board
	}

	t.Run("Plain profile matches the board text", func(t *testing.T) {
		var out bytes.Buffer
		term := New(strings.NewReader(""), &out, termenv.Ascii)
		board := newBoard(t)

		term.PrintBoard(board)

		assert.Equal(t, board.String()+"\n", out.String())
	})

	t.Run("Color profile styles the marks", func(t *testing.T) {
		var out bytes.Buffer
		term := New(strings.NewReader(""), &out, termenv.ANSI)

		term.PrintBoard(newBoard(t))

		assert.Contains(t, out.String(), termenv.CSI)
		assert.Contains(t, out.String(), "X")
		assert.Contains(t, out.String(), "O")
		assert.Equal(t, 3, strings.Count(out.String(), "\n"))
	})
}

func TestConsole_Println(t *testing.T) {
	var out bytes.Buffer
	term := New(strings.NewReader(""), &out, termenv.Ascii)

	term.Println("Game start")
	term.Println()
	term.Println("A", "won!")

	assert.Equal(t, "Game start\n\nA won!\n", out.String())
}
