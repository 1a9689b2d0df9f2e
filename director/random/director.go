package random

import (
	"math/rand"
	"time"

	"github.com/they4kman/minesweep/game"
)

// Director reveals unrevealed, unflagged cells at random
type Director struct {
	rand *rand.Rand
}

func New(rng *rand.Rand) *Director {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Director{rand: rng}
}

func (director *Director) Act(session *game.Session) bool {
	var candidates []*game.Cell
	for _, cell := range session.Board().UnrevealedCells() {
		if !cell.IsFlagged() {
			candidates = append(candidates, cell)
		}
	}
	if len(candidates) == 0 {
		return false
	}

	cell := candidates[director.rand.Intn(len(candidates))]
	if err := session.HandleReveal(cell.Row(), cell.Col()); err != nil {
		game.Log.WithError(err).Warn("random director could not reveal")
		return false
	}
	return true
}
