package ui

import (
	"image/color"
	"math"
	"strconv"

	"github.com/faiface/pixel"
	"github.com/they4kman/minesweep/game"
	"golang.org/x/image/colornames"
)

const (
	DefaultCellWidth    = 40
	DefaultHeaderHeight = 50
	minWindowWidth      = 200
	headerMargin        = 10
)

// Layout maps between window coordinates and board cells. The board sits at
// the bottom of the window with the header above it. Pixel coordinates grow
// upwards, board rows grow downwards.
type Layout struct {
	BoardSize    int
	CellWidth    float64
	HeaderHeight float64
}

func NewLayout(boardSize int) Layout {
	return Layout{
		BoardSize:    boardSize,
		CellWidth:    DefaultCellWidth,
		HeaderHeight: DefaultHeaderHeight,
	}
}

func (layout Layout) boardWidth() float64 {
	return float64(layout.BoardSize) * layout.CellWidth
}

// Bounds returns the window size needed to show the whole board and header
func (layout Layout) Bounds() pixel.Rect {
	return pixel.R(
		0, 0,
		math.Max(layout.boardWidth(), minWindowWidth),
		layout.boardWidth()+layout.HeaderHeight,
	)
}

// CellAt translates a window position to (row, col). ok is false when the
// position is in the header or outside the board.
func (layout Layout) CellAt(pos pixel.Vec) (row, col int, ok bool) {
	width := layout.boardWidth()
	if pos.X < 0 || pos.Y < 0 || pos.X >= width || pos.Y >= width {
		return 0, 0, false
	}
	row = layout.BoardSize - 1 - int(pos.Y/layout.CellWidth)
	col = int(pos.X / layout.CellWidth)
	return row, col, true
}

// CellRect returns the window rectangle covered by the cell at (row, col)
func (layout Layout) CellRect(row, col int) pixel.Rect {
	minX := float64(col) * layout.CellWidth
	minY := layout.boardWidth() - float64(row+1)*layout.CellWidth
	return pixel.R(minX, minY, minX+layout.CellWidth, minY+layout.CellWidth)
}

// HeaderAnchors returns where the left-aligned counter and the right-aligned
// text of the given width start, both on the header's middle line
func (layout Layout) HeaderAnchors(rightWidth float64) (left, right pixel.Vec) {
	bounds := layout.Bounds()
	y := bounds.Max.Y - layout.HeaderHeight/2
	return pixel.V(headerMargin, y), pixel.V(bounds.Max.X-headerMargin-rightWidth, y)
}

// Label is a cell's count, to be drawn centred on Center
type Label struct {
	Center pixel.Vec
	Text   string
}

// CellLabels lists the count labels of every revealed numbered cell. They
// belong on top of the cell backgrounds, so draw them last.
func CellLabels(layout Layout, board *game.Board) []Label {
	var labels []Label
	for _, cell := range board.Cells() {
		if cell.State().IsNumber() {
			labels = append(labels, Label{
				Center: layout.CellRect(cell.Row(), cell.Col()).Center(),
				Text:   strconv.Itoa(cell.NumMines()),
			})
		}
	}
	return labels
}

// CellFill is the background colour of a cell in the given state
func CellFill(state game.CellState) color.Color {
	switch state {
	case game.Unrevealed, game.Flag:
		return colornames.Lightgray
	case game.MineLosing:
		return colornames.Red
	default:
		return colornames.White
	}
}

// OutcomeBanner returns the message and colour shown when a game has ended
func OutcomeBanner(outcome game.Outcome) (string, color.Color, bool) {
	switch outcome {
	case game.Lost:
		return "Game Over", colornames.Red, true
	case game.Won:
		return "You Win!", colornames.Green, true
	default:
		return "", nil, false
	}
}
