package game

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2020, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (clock *fakeClock) Now() time.Time {
	return clock.now
}

func (clock *fakeClock) Advance(d time.Duration) {
	clock.now = clock.now.Add(d)
}

func newTestSession(t *testing.T, clock *fakeClock, rows ...string) (*Session, *test.Hook) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	session := NewSessionWithBoard(mustLayout(t, rows...), WithClock(clock.Now), WithLogger(logger))
	return session, hook
}

func gameOverEntries(hook *test.Hook) int {
	count := 0
	for _, entry := range hook.AllEntries() {
		if entry.Message == "game over" && entry.Level == logrus.InfoLevel {
			count++
		}
	}
	return count
}

func TestNewSession(t *testing.T) {
	config := NewConfig()
	config.Seed = 3

	session, err := NewSession(config)
	require.NoError(t, err)
	assert.Equal(t, InProgress, session.Outcome())
	assert.Equal(t, DefaultNumMines, session.RemainingMines())
	assert.Equal(t, DefaultSize, session.Board().Size())
	assert.Equal(t, DefaultNumMines, session.Board().NumMines())

	_, ended := session.EndTime()
	assert.False(t, ended)

	config.NumMines = config.Size * config.Size
	_, err = NewSession(config)
	assert.True(t, errors.Is(err, ErrConfiguration))
}

func TestSessionWinLatchesEndTime(t *testing.T) {
	clock := newFakeClock()
	session, hook := newTestSession(t, clock,
		"*..",
		"...",
		"...",
	)

	clock.Advance(3500 * time.Millisecond)
	require.NoError(t, session.HandleReveal(2, 2))

	assert.Equal(t, Won, session.Outcome())
	assert.Equal(t, 3, session.ElapsedSeconds())
	end, ended := session.EndTime()
	assert.True(t, ended)
	assert.Equal(t, clock.Now(), end)

	clock.Advance(time.Minute)
	assert.Equal(t, 3, session.ElapsedSeconds())
	assert.Equal(t, 1, gameOverEntries(hook))
}

func TestSessionLossRevealsBoardAndFreezes(t *testing.T) {
	clock := newFakeClock()
	session, hook := newTestSession(t, clock,
		"*..",
		"...",
		"...",
	)

	clock.Advance(2 * time.Second)
	require.NoError(t, session.HandleReveal(0, 0))

	assert.Equal(t, Lost, session.Outcome())
	for _, cell := range session.Board().Cells() {
		assert.True(t, cell.IsRevealed())
	}
	end, ended := session.EndTime()
	require.True(t, ended)

	clock.Advance(5 * time.Second)
	require.NoError(t, session.HandleReveal(2, 2))
	require.NoError(t, session.HandleFlag(1, 1))

	assert.Equal(t, Lost, session.Outcome())
	assert.Equal(t, 1, session.RemainingMines())
	assert.Equal(t, 2, session.ElapsedSeconds())

	laterEnd, _ := session.EndTime()
	assert.Equal(t, end, laterEnd)
	assert.Equal(t, 1, gameOverEntries(hook))
}

func TestSessionIgnoresMovesAfterGameEnds(t *testing.T) {
	clock := newFakeClock()
	session, _ := newTestSession(t, clock,
		"*..",
		"...",
		"...",
	)
	require.NoError(t, session.HandleReveal(2, 2))
	require.Equal(t, Won, session.Outcome())

	// Out of range coordinates are not even looked at once the game is over
	assert.NoError(t, session.HandleReveal(10, 10))
	assert.NoError(t, session.HandleFlag(0, 0))
	assert.Equal(t, 1, session.RemainingMines())
	assert.False(t, session.Board().cells[0][0].IsFlagged())
}

func TestSessionElapsedSecondsWhileInProgress(t *testing.T) {
	clock := newFakeClock()
	session, _ := newTestSession(t, clock,
		"*..",
		"...",
		"...",
	)

	assert.Equal(t, 0, session.ElapsedSeconds())
	clock.Advance(1999 * time.Millisecond)
	assert.Equal(t, 1, session.ElapsedSeconds())
	clock.Advance(time.Millisecond)
	assert.Equal(t, 2, session.ElapsedSeconds())
	assert.Equal(t, clock.Now().Add(-2*time.Second), session.StartTime())
}

func TestSessionFlagCounter(t *testing.T) {
	session, _ := newTestSession(t, newFakeClock(),
		"*..",
		"...",
		"...",
	)
	require.Equal(t, 1, session.RemainingMines())

	require.NoError(t, session.HandleFlag(0, 0))
	assert.Equal(t, 0, session.RemainingMines())
	require.NoError(t, session.HandleFlag(0, 0))
	assert.Equal(t, 1, session.RemainingMines())

	// Over-flagging drives the counter negative
	for _, coords := range [][2]int{{0, 0}, {0, 2}, {2, 0}} {
		require.NoError(t, session.HandleFlag(coords[0], coords[1]))
	}
	assert.Equal(t, -2, session.RemainingMines())

	for _, coords := range [][2]int{{0, 0}, {0, 2}, {2, 0}} {
		require.NoError(t, session.HandleFlag(coords[0], coords[1]))
	}
	assert.Equal(t, 1, session.RemainingMines())
}

func TestSessionFlagOnRevealedCellKeepsCounter(t *testing.T) {
	session, _ := newTestSession(t, newFakeClock(),
		"*..",
		"...",
		"...",
	)
	require.NoError(t, session.HandleReveal(1, 1))

	require.NoError(t, session.HandleFlag(1, 1))
	assert.Equal(t, 1, session.RemainingMines())
	assert.False(t, session.Board().cells[1][1].IsFlagged())
}

func TestSessionFlagOnSweptFlagKeepsCounter(t *testing.T) {
	session, _ := newTestSession(t, newFakeClock(),
		"*..*",
		"....",
		"....",
		"....",
	)
	require.NoError(t, session.HandleFlag(2, 2))
	require.Equal(t, 1, session.RemainingMines())

	require.NoError(t, session.HandleReveal(3, 3))
	require.Equal(t, InProgress, session.Outcome())
	require.True(t, session.Board().cells[2][2].IsRevealed())

	require.NoError(t, session.HandleFlag(2, 2))
	assert.Equal(t, 1, session.RemainingMines())
	assert.True(t, session.Board().cells[2][2].IsFlagged())
}

func TestSessionRevealFlaggedCell(t *testing.T) {
	session, _ := newTestSession(t, newFakeClock(),
		"*..",
		"...",
		"...",
	)
	require.NoError(t, session.HandleFlag(0, 0))
	require.NoError(t, session.HandleReveal(0, 0))

	assert.Equal(t, InProgress, session.Outcome())
	assert.False(t, session.Board().cells[0][0].IsRevealed())
}

func TestSessionOutOfBounds(t *testing.T) {
	session, _ := newTestSession(t, newFakeClock(),
		"*..",
		"...",
		"...",
	)

	assert.True(t, errors.Is(session.HandleReveal(3, 0), ErrOutOfBounds))
	assert.True(t, errors.Is(session.HandleFlag(0, -1), ErrOutOfBounds))
	assert.Equal(t, InProgress, session.Outcome())
	assert.Equal(t, 1, session.RemainingMines())
}

func TestSessionsAreIndependent(t *testing.T) {
	clock := newFakeClock()
	first, _ := newTestSession(t, clock, "*..", "...", "...")
	second, _ := newTestSession(t, clock, "*..", "...", "...")

	require.NoError(t, first.HandleFlag(0, 1))
	require.NoError(t, first.HandleReveal(0, 0))

	assert.Equal(t, Lost, first.Outcome())
	assert.Equal(t, 0, first.RemainingMines())
	assert.Equal(t, InProgress, second.Outcome())
	assert.Equal(t, 1, second.RemainingMines())
	assert.False(t, second.Board().cells[0][0].IsRevealed())
}
