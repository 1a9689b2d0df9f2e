package game

import (
	"math/rand"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type Board struct {
	size     int // in number of cells, per side
	numMines int
	cells    [][]Cell

	hitMine bool

	rand *rand.Rand
}

// NewBoard creates a size x size board with numMines mines placed uniformly at
// random. A nil rng seeds a new one from the current time.
func NewBoard(size, numMines int, rng *rand.Rand) (*Board, error) {
	if err := validateDimensions(size, numMines); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	board := newEmptyBoard(size, rng)
	board.numMines = numMines

	// Store cell indexes, to shuffle later and fill mines
	cellIndexes := make([]int, size*size)
	for i := range cellIndexes {
		cellIndexes[i] = i
	}
	board.rand.Shuffle(len(cellIndexes), func(i, j int) {
		cellIndexes[i], cellIndexes[j] = cellIndexes[j], cellIndexes[i]
	})
	for _, idx := range cellIndexes[:numMines] {
		board.cellAt(idx/size, idx%size).isMine = true
	}

	board.countMines()

	Log.WithFields(logrus.Fields{
		"size":  size,
		"mines": numMines,
	}).Debug("created board")

	return board, nil
}

// NewBoardFromLayout creates a board from rows of "*" (mine) and "." (safe)
// glyphs. The layout must be square and follow the same mine count rules as
// NewBoard.
func NewBoardFromLayout(rows ...string) (*Board, error) {
	size := len(rows)
	board := newEmptyBoard(size, rand.New(rand.NewSource(time.Now().UnixNano())))

	for row, line := range rows {
		if len(line) != size {
			return nil, errors.Wrapf(ErrConfiguration, "layout row %d has %d cells, expected %d", row, len(line), size)
		}
		for col, c := range line {
			cell := board.cellAt(row, col)
			if !cell.deserialize(c) {
				return nil, errors.Wrapf(ErrConfiguration, "unknown layout glyph %q at (%d, %d)", c, row, col)
			}
			if cell.isMine {
				board.numMines++
			}
		}
	}

	if err := validateDimensions(size, board.numMines); err != nil {
		return nil, err
	}

	board.countMines()
	return board, nil
}

func validateDimensions(size, numMines int) error {
	if size <= 0 {
		return errors.Wrapf(ErrConfiguration, "size must be positive, got %d", size)
	}
	if numMines <= 0 || numMines >= size*size {
		return errors.Wrapf(ErrConfiguration, "mine count must be between 1 and %d, got %d", size*size-1, numMines)
	}
	return nil
}

func newEmptyBoard(size int, rng *rand.Rand) *Board {
	board := &Board{
		size:  size,
		cells: make([][]Cell, size),
		rand:  rng,
	}

	for row := 0; row < size; row++ {
		board.cells[row] = make([]Cell, size)

		for col := 0; col < size; col++ {
			cell := &board.cells[row][col]
			cell.board = board
			cell.row, cell.col = row, col
		}
	}
	return board
}

// countMines fills in the neighboring mine count of every safe cell. Must run
// after all mines are placed.
func (board *Board) countMines() {
	for _, cell := range board.Cells() {
		if !cell.isMine {
			cell.numMines = cell.countNeighboringMines()
		}
	}
}

func (board *Board) Size() int {
	return board.size
}

func (board *Board) NumMines() int {
	return board.numMines
}

func (board *Board) NumCells() int {
	return board.size * board.size
}

// Rand returns the random source the board was generated from
func (board *Board) Rand() *rand.Rand {
	return board.rand
}

func (board *Board) cellAt(row, col int) *Cell {
	if row >= 0 && col >= 0 && row < board.size && col < board.size {
		return &board.cells[row][col]
	}
	return nil
}

// CellAt returns the cell at (row, col), or ErrOutOfBounds
func (board *Board) CellAt(row, col int) (*Cell, error) {
	cell := board.cellAt(row, col)
	if cell == nil {
		return nil, outOfBounds(row, col, board.size)
	}
	return cell, nil
}

// Cells returns every cell in row-major order
func (board *Board) Cells() []*Cell {
	cells := make([]*Cell, 0, board.NumCells())
	for row := range board.cells {
		for col := range board.cells[row] {
			cells = append(cells, &board.cells[row][col])
		}
	}
	return cells
}

// UnrevealedCells returns every cell not yet revealed, in row-major order
func (board *Board) UnrevealedCells() []*Cell {
	var cells []*Cell
	for _, cell := range board.Cells() {
		if !cell.isRevealed {
			cells = append(cells, cell)
		}
	}
	return cells
}

// Reveal opens the cell at (row, col). Flagged and already-revealed cells are
// left untouched. Revealing a mine opens the whole board, and revealing a cell
// with no neighboring mines floods outwards.
func (board *Board) Reveal(row, col int) (RevealOutcome, error) {
	cell, err := board.CellAt(row, col)
	if err != nil {
		return AlreadyRevealed, err
	}

	switch {
	case cell.isRevealed:
		return AlreadyRevealed, nil
	case cell.isFlagged:
		return Flagged, nil
	}

	cell.isRevealed = true

	if cell.isMine {
		cell.isLosingMine = true
		board.lose()
		return HitMine, nil
	}

	if cell.numMines == 0 {
		cell.cascadeEmpty()
	}
	return SafeReveal, nil
}

// ToggleFlag flips the flag on an unrevealed cell and returns the new flag
// state. Revealed cells are left as they are and report their current flag,
// which stays true for a flagged cell that a flood swept open.
func (board *Board) ToggleFlag(row, col int) (bool, error) {
	cell, err := board.CellAt(row, col)
	if err != nil {
		return false, err
	}

	if !cell.isRevealed {
		cell.isFlagged = !cell.isFlagged
	}
	return cell.isFlagged, nil
}

// IsSolved returns whether every safe cell has been revealed
func (board *Board) IsSolved() bool {
	for _, cell := range board.Cells() {
		if !cell.isMine && !cell.isRevealed {
			return false
		}
	}
	return true
}

func (board *Board) lose() {
	board.hitMine = true

	for _, cell := range board.Cells() {
		cell.isRevealed = true
	}
}

func (board *Board) isLost() bool {
	return board.hitMine
}

// String renders the board one row per line: "#" hidden, "f" flagged,
// "." empty, digits for counts and "*" for revealed mines
func (board *Board) String() string {
	builder := strings.Builder{}
	for row := range board.cells {
		if row > 0 {
			builder.WriteByte('\n')
		}
		for col := range board.cells[row] {
			builder.WriteString(board.cells[row][col].serialize())
		}
	}
	return builder.String()
}
