package game

import (
	"fmt"
	"strconv"
)

type Cell struct {
	board *Board

	row, col int
	numMines int

	isMine, isRevealed, isFlagged bool
	isLosingMine                  bool
}

func (cell *Cell) String() string {
	return fmt.Sprintf("Cell(%v, %v)", cell.row, cell.col)
}

func (cell *Cell) Row() int {
	return cell.row
}

func (cell *Cell) Col() int {
	return cell.col
}

func (cell *Cell) IsMine() bool {
	return cell.isMine
}

func (cell *Cell) IsRevealed() bool {
	return cell.isRevealed
}

func (cell *Cell) IsFlagged() bool {
	return cell.isFlagged
}

// NumMines is the number of mines among the cell's neighbors. It is always
// zero for mines.
func (cell *Cell) NumMines() int {
	return cell.numMines
}

// State returns how the cell should be drawn, taking the board's outcome into
// account: once a mine has been hit, the hit mine and wrong flags are marked.
func (cell *Cell) State() CellState {
	if !cell.isRevealed {
		if cell.isFlagged {
			return Flag
		}
		return Unrevealed
	}

	switch {
	case cell.isMine && cell.isLosingMine:
		return MineLosing
	case cell.isMine && cell.isFlagged:
		return Flag
	case cell.isMine:
		return Mine
	case cell.isFlagged && cell.board.isLost():
		return FlagWrong
	default:
		return CellState(cell.numMines)
	}
}

// Neighbors returns the in-bounds cells of the Moore neighborhood
func (cell *Cell) Neighbors() []*Cell {
	board := cell.board
	neighbors := make([]*Cell, 0, 8)

	for dRow := -1; dRow <= 1; dRow++ {
		for dCol := -1; dCol <= 1; dCol++ {
			if dRow == 0 && dCol == 0 {
				continue
			}
			if neighbor := board.cellAt(cell.row+dRow, cell.col+dCol); neighbor != nil {
				neighbors = append(neighbors, neighbor)
			}
		}
	}
	return neighbors
}

func (cell *Cell) countNeighboringMines() int {
	count := 0
	for _, neighbor := range cell.Neighbors() {
		if neighbor.isMine {
			count++
		}
	}
	return count
}

// serialize returns the single-character glyph used by Board.String
func (cell *Cell) serialize() string {
	switch {
	case cell.isRevealed && cell.isMine:
		return "*"
	case cell.isRevealed && cell.numMines == 0:
		return "."
	case cell.isRevealed:
		return strconv.Itoa(cell.numMines)
	case cell.isFlagged:
		return "f"
	default:
		return "#"
	}
}

// deserialize reads a layout glyph: "*" for a mine, "." for a safe cell
func (cell *Cell) deserialize(c rune) bool {
	switch c {
	case '*':
		cell.isMine = true
	case '.':
		cell.isMine = false
	default:
		return false
	}
	return true
}
