package ui

import (
	"testing"

	"github.com/faiface/pixel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/they4kman/minesweep/game"
	"golang.org/x/image/colornames"
)

func TestLayoutBounds(t *testing.T) {
	layout := NewLayout(10)
	assert.Equal(t, pixel.R(0, 0, 400, 450), layout.Bounds())

	// Small boards still leave room for the header text
	assert.Equal(t, pixel.R(0, 0, minWindowWidth, 130), NewLayout(2).Bounds())
}

func TestLayoutCellAt(t *testing.T) {
	layout := NewLayout(10)

	cases := []struct {
		name     string
		pos      pixel.Vec
		row, col int
		ok       bool
	}{
		{"top left", pixel.V(5, 395), 0, 0, true},
		{"bottom right", pixel.V(399, 0), 9, 9, true},
		{"bottom left", pixel.V(0, 39.9), 9, 0, true},
		{"second row", pixel.V(45, 355), 1, 1, true},
		{"header", pixel.V(10, 420), 0, 0, false},
		{"board top edge", pixel.V(10, 400), 0, 0, false},
		{"right of board", pixel.V(400, 10), 0, 0, false},
		{"negative", pixel.V(-1, 10), 0, 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			row, col, ok := layout.CellAt(tc.pos)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.row, row)
				assert.Equal(t, tc.col, col)
			}
		})
	}
}

func TestLayoutCellRectMatchesCellAt(t *testing.T) {
	layout := NewLayout(5)
	for row := 0; row < 5; row++ {
		for col := 0; col < 5; col++ {
			rect := layout.CellRect(row, col)
			assert.Equal(t, layout.CellWidth, rect.W())

			gotRow, gotCol, ok := layout.CellAt(rect.Center())
			assert.True(t, ok)
			assert.Equal(t, row, gotRow)
			assert.Equal(t, col, gotCol)
		}
	}
}

func TestCellFill(t *testing.T) {
	assert.Equal(t, colornames.Lightgray, CellFill(game.Unrevealed))
	assert.Equal(t, colornames.Lightgray, CellFill(game.Flag))
	assert.Equal(t, colornames.White, CellFill(game.Number3))
	assert.Equal(t, colornames.Red, CellFill(game.MineLosing))

	for _, state := range game.CellStates {
		assert.NotNil(t, CellFill(state), "state %d", state)
	}
}

func TestOutcomeBanner(t *testing.T) {
	_, _, ok := OutcomeBanner(game.InProgress)
	assert.False(t, ok)

	message, color, ok := OutcomeBanner(game.Lost)
	assert.True(t, ok)
	assert.Equal(t, "Game Over", message)
	assert.Equal(t, colornames.Red, color)

	message, color, ok = OutcomeBanner(game.Won)
	assert.True(t, ok)
	assert.Equal(t, "You Win!", message)
	assert.Equal(t, colornames.Green, color)
}

func TestCellLabels(t *testing.T) {
	board, err := game.NewBoardFromLayout(
		"*..",
		"...",
		"...",
	)
	require.NoError(t, err)
	layout := NewLayout(board.Size())
	assert.Empty(t, CellLabels(layout, board))

	_, err = board.Reveal(2, 2)
	require.NoError(t, err)

	assert.Equal(t, []Label{
		{Center: layout.CellRect(0, 1).Center(), Text: "1"},
		{Center: layout.CellRect(1, 0).Center(), Text: "1"},
		{Center: layout.CellRect(1, 1).Center(), Text: "1"},
	}, CellLabels(layout, board))
}

func TestHeaderAnchors(t *testing.T) {
	for _, size := range []int{2, 10} {
		layout := NewLayout(size)
		bounds := layout.Bounds()

		// "Time: 100s" with 7px glyphs at double scale
		const timerWidth = 7 * 10 * 2
		left, right := layout.HeaderAnchors(timerWidth)

		assert.Equal(t, left.Y, right.Y)
		assert.Equal(t, bounds.Max.Y-layout.HeaderHeight/2, left.Y)
		assert.Equal(t, float64(headerMargin), left.X)
		assert.Equal(t, bounds.Max.X-headerMargin, right.X+timerWidth)
		assert.Greater(t, right.X, left.X, "board size %d", size)
	}
}
