package game

import "github.com/gammazero/deque"

type NeighborGetter func(*Cell) []*Cell
type Visitor func(*Cell) bool

// flood walks outward from cell, visiting each unrevealed neighbor exactly
// once. visit reports whether the walk should continue past the visited cell.
func flood(cell *Cell, visit Visitor, getNeighbors NeighborGetter) {
	visitQueue := deque.New[*Cell]()
	visitQueue.PushBack(cell)

	for visitQueue.Len() > 0 {
		current := visitQueue.PopFront()

		for _, neighbor := range getNeighbors(current) {
			if neighbor.isRevealed {
				continue
			}
			if visit(neighbor) {
				visitQueue.PushBack(neighbor)
			}
		}
	}
}

// cascadeEmpty reveals the region of zero-count cells connected to cell along
// with its numbered border. Flags are not consulted.
func (cell *Cell) cascadeEmpty() {
	flood(
		cell,
		func(cell *Cell) bool {
			cell.isRevealed = true
			return cell.numMines == 0
		},
		func(cell *Cell) []*Cell {
			return cell.Neighbors()
		},
	)
}
