package game

import (
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
)

// Session is a single game: one board, the mine counter and the clock. Once
// the game is won or lost the session stops accepting moves; start a new
// session to play again.
type Session struct {
	board *Board

	remainingMines int
	outcome        Outcome

	startTime time.Time
	endTime   time.Time

	now func() time.Time
	log logrus.FieldLogger
}

type SessionOption func(*Session)

// WithClock replaces time.Now as the session's time source
func WithClock(now func() time.Time) SessionOption {
	return func(session *Session) {
		session.now = now
	}
}

func WithLogger(log logrus.FieldLogger) SessionOption {
	return func(session *Session) {
		session.log = log
	}
}

// NewSession creates a board from config and starts the clock
func NewSession(config Config, opts ...SessionOption) (*Session, error) {
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	board, err := NewBoard(config.Size, config.NumMines, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, err
	}
	return NewSessionWithBoard(board, opts...), nil
}

// NewSessionWithBoard starts a session on an existing, untouched board
func NewSessionWithBoard(board *Board, opts ...SessionOption) *Session {
	session := &Session{
		board:          board,
		remainingMines: board.numMines,
		outcome:        InProgress,
		now:            time.Now,
		log:            Log,
	}
	for _, opt := range opts {
		opt(session)
	}

	session.startTime = session.now()
	return session
}

func (session *Session) Board() *Board {
	return session.board
}

func (session *Session) Outcome() Outcome {
	return session.outcome
}

// RemainingMines is the number of mines minus the number of flags placed. It
// goes negative when more flags than mines are placed.
func (session *Session) RemainingMines() int {
	return session.remainingMines
}

func (session *Session) StartTime() time.Time {
	return session.startTime
}

// EndTime returns when the game was won or lost, and false while it is still
// in progress
func (session *Session) EndTime() (time.Time, bool) {
	return session.endTime, session.outcome.IsTerminal()
}

// ElapsedSeconds counts whole seconds since the start, frozen once the game
// has ended
func (session *Session) ElapsedSeconds() int {
	end := session.endTime
	if !session.outcome.IsTerminal() {
		end = session.now()
	}
	return int(end.Sub(session.startTime) / time.Second)
}

// HandleReveal reveals the cell at (row, col), ending the game if a mine was
// hit or the last safe cell was opened
func (session *Session) HandleReveal(row, col int) error {
	if session.outcome.IsTerminal() {
		return nil
	}

	result, err := session.board.Reveal(row, col)
	if err != nil {
		return err
	}

	session.log.WithFields(logrus.Fields{
		"row":    row,
		"col":    col,
		"result": result,
	}).Debug("revealed cell")

	switch result {
	case HitMine:
		session.end(Lost)
	case SafeReveal:
		if session.board.IsSolved() {
			session.end(Won)
		}
	}
	return nil
}

// HandleFlag toggles the flag at (row, col) and updates the mine counter
func (session *Session) HandleFlag(row, col int) error {
	if session.outcome.IsTerminal() {
		return nil
	}

	cell, err := session.board.CellAt(row, col)
	if err != nil {
		return err
	}
	wasFlagged := cell.isFlagged

	isFlagged, err := session.board.ToggleFlag(row, col)
	if err != nil {
		return err
	}

	switch {
	case isFlagged && !wasFlagged:
		session.remainingMines--
	case !isFlagged && wasFlagged:
		session.remainingMines++
	default:
		return nil
	}

	session.log.WithFields(logrus.Fields{
		"row":       row,
		"col":       col,
		"flagged":   isFlagged,
		"remaining": session.remainingMines,
	}).Debug("toggled flag")
	return nil
}

func (session *Session) end(outcome Outcome) {
	session.outcome = outcome
	session.endTime = session.now()

	session.log.WithFields(logrus.Fields{
		"outcome": outcome,
		"elapsed": session.ElapsedSeconds(),
	}).Info("game over")
	session.log.Debugf("final board:\n%s", session.board)
}
