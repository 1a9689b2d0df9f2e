// Package director builds computer players by name and runs them headless.
package director

import (
	"math/rand"
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/they4kman/minesweep/director/constraint"
	"github.com/they4kman/minesweep/director/random"
	"github.com/they4kman/minesweep/game"
)

const None = "none"

var ErrUnknownDirector = errors.New("unknown director")

var directors = map[string]func(*rand.Rand) game.Director{
	"random": func(rng *rand.Rand) game.Director {
		return random.New(rng)
	},
	"constraint": func(rng *rand.Rand) game.Director {
		return constraint.New(rng)
	},
}

// Names lists the accepted director names, including None
func Names() []string {
	names := []string{None}
	for name := range directors {
		names = append(names, name)
	}
	sort.Strings(names[1:])
	return names
}

// New returns the named director, or nil for None and the empty name
func New(name string, rng *rand.Rand) (game.Director, error) {
	if name == "" || name == None {
		return nil, nil
	}
	newDirector, ok := directors[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownDirector, "%q", name)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return newDirector(rng), nil
}

type Results struct {
	Games  int
	Wins   int
	Losses int
	// Games the director gave up on before they ended
	Stalled int
}

// Autoplay plays games back to back with the named director. Game i is
// seeded with config.Seed+i, so a fixed seed replays the same boards.
func Autoplay(config game.Config, name string, games int) (Results, error) {
	if err := config.Validate(); err != nil {
		return Results{}, err
	}
	if config.Seed == 0 {
		config.Seed = time.Now().UnixNano()
	}

	director, err := New(name, rand.New(rand.NewSource(config.Seed)))
	if err != nil {
		return Results{}, err
	}
	if director == nil {
		return Results{}, errors.Wrap(ErrUnknownDirector, "autoplay needs a director")
	}

	results := Results{}
	baseSeed := config.Seed
	for i := 0; i < games; i++ {
		config.Seed = baseSeed + int64(i)
		session, err := game.NewSession(config)
		if err != nil {
			return results, err
		}

		moves := game.Play(session, director)

		results.Games++
		switch session.Outcome() {
		case game.Won:
			results.Wins++
		case game.Lost:
			results.Losses++
		default:
			results.Stalled++
		}

		game.Log.WithFields(logrus.Fields{
			"game":    i + 1,
			"seed":    config.Seed,
			"outcome": session.Outcome(),
			"moves":   moves,
		}).Info("finished game")
	}
	return results, nil
}
