package constraint

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/they4kman/minesweep/director/random"
	"github.com/they4kman/minesweep/game"
	"github.com/they4kman/minesweep/util/collections"
)

// Director plays from single-cell observations: when a number's hidden
// neighbors must all be mines they are flagged, and when all its mines are
// already flagged the rest are revealed. With nothing certain it reveals the
// observed cell least likely to be a mine.
type Director struct {
	rand   *rand.Rand
	random *random.Director
}

func New(rng *rand.Rand) *Director {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Director{
		rand:   rng,
		random: random.New(rng),
	}
}

// Observation is what one revealed number says about its hidden, unflagged
// neighbors
type Observation struct {
	origin   *game.Cell
	numMines int
	cells    collections.Set[*game.Cell]
}

func (observation Observation) String() string {
	return fmt.Sprintf("Obs[(%d, %d), %d ε %d cells]",
		observation.origin.Row(), observation.origin.Col(), observation.numMines, len(observation.cells))
}

func (observation Observation) MineProbability() float64 {
	return float64(observation.numMines) / float64(len(observation.cells))
}

func observe(cell *game.Cell) (Observation, bool) {
	observation := Observation{
		origin:   cell,
		numMines: cell.NumMines(),
		cells:    make(collections.Set[*game.Cell]),
	}

	for _, neighbor := range cell.Neighbors() {
		if neighbor.IsRevealed() {
			continue
		}
		if neighbor.IsFlagged() {
			observation.numMines--
		} else {
			observation.cells.Add(neighbor)
		}
	}

	return observation, len(observation.cells) > 0
}

func (director *Director) observations(board *game.Board) []Observation {
	var observations []Observation
	for _, cell := range board.Cells() {
		if !cell.IsRevealed() || cell.IsMine() || cell.NumMines() == 0 {
			continue
		}
		if observation, ok := observe(cell); ok {
			observations = append(observations, observation)
		}
	}
	return observations
}

func (director *Director) Act(session *game.Session) bool {
	observations := director.observations(session.Board())

	if acted, ok := director.actDeliberate(session, observations); ok {
		return acted
	}
	if acted, ok := director.actLowestProbability(session, observations); ok {
		return acted
	}
	return director.random.Act(session)
}

// actDeliberate makes a move that is certain to be correct, if there is one
func (director *Director) actDeliberate(session *game.Session, observations []Observation) (acted, ok bool) {
	safe := make(collections.Set[*game.Cell])
	mines := make(collections.Set[*game.Cell])

	for _, observation := range observations {
		switch observation.numMines {
		case 0:
			for cell := range observation.cells {
				safe.Add(cell)
			}
		case len(observation.cells):
			for cell := range observation.cells {
				mines.Add(cell)
			}
		default:
			continue
		}

		game.Log.WithFields(logrus.Fields{
			"observation": observation,
		}).Debug("found deliberate observation")
	}

	// Work in board order, so the same board is always played the same way
	for _, cell := range session.Board().Cells() {
		var err error
		switch {
		case safe.Contains(cell):
			err = session.HandleReveal(cell.Row(), cell.Col())
		case mines.Contains(cell):
			err = session.HandleFlag(cell.Row(), cell.Col())
		default:
			continue
		}
		return director.report(err), true
	}
	return false, false
}

// actLowestProbability reveals one of the observed cells with the lowest
// chance of holding a mine
func (director *Director) actLowestProbability(session *game.Session, observations []Observation) (acted, ok bool) {
	cellProbabilities := make(map[*game.Cell]float64)
	for _, observation := range observations {
		probability := observation.MineProbability()
		for cell := range observation.cells {
			if past, hasPast := cellProbabilities[cell]; !hasPast || probability < past {
				cellProbabilities[cell] = probability
			}
		}
	}
	if len(cellProbabilities) == 0 {
		return false, false
	}

	lowestProbability := math.Inf(1)
	var lowestProbabilityCells []*game.Cell
	for _, cell := range session.Board().Cells() {
		probability, observed := cellProbabilities[cell]
		if !observed {
			continue
		}
		if probability < lowestProbability {
			lowestProbability = probability
			lowestProbabilityCells = lowestProbabilityCells[:0]
		}
		if probability == lowestProbability {
			lowestProbabilityCells = append(lowestProbabilityCells, cell)
		}
	}

	cell := lowestProbabilityCells[director.rand.Intn(len(lowestProbabilityCells))]
	game.Log.WithFields(logrus.Fields{
		"cell":        cell,
		"probability": lowestProbability,
	}).Debug("guessing lowest probability cell")

	return director.report(session.HandleReveal(cell.Row(), cell.Col())), true
}

func (director *Director) report(err error) bool {
	if err != nil {
		game.Log.WithError(err).Warn("constraint director could not act")
		return false
	}
	return true
}
