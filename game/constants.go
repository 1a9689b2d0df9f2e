package game

// CellState is what a cell should look like on screen
type CellState int

// Outcome is the state of a whole game
type Outcome int

// RevealOutcome is the result of revealing a single cell
type RevealOutcome int

const (
	Unrevealed CellState = iota - 1
	Empty
	Number1
	Number2
	Number3
	Number4
	Number5
	Number6
	Number7
	Number8
	Flag
	FlagWrong
	Mine
	MineLosing
)

var CellStates = []CellState{
	Unrevealed,
	Empty,
	Number1,
	Number2,
	Number3,
	Number4,
	Number5,
	Number6,
	Number7,
	Number8,
	Flag,
	FlagWrong,
	Mine,
	MineLosing,
}

// IsNumber returns whether the state displays an adjacent mine count (1-8)
func (state CellState) IsNumber() bool {
	return state >= Number1 && state <= Number8
}

const (
	InProgress Outcome = iota
	Lost
	Won
)

func (outcome Outcome) String() string {
	switch outcome {
	case InProgress:
		return "in progress"
	case Lost:
		return "lost"
	case Won:
		return "won"
	default:
		return "unknown"
	}
}

// IsTerminal returns whether no more moves may be made
func (outcome Outcome) IsTerminal() bool {
	return outcome != InProgress
}

const (
	AlreadyRevealed RevealOutcome = iota
	Flagged
	HitMine
	SafeReveal
)

func (outcome RevealOutcome) String() string {
	switch outcome {
	case AlreadyRevealed:
		return "already revealed"
	case Flagged:
		return "flagged"
	case HitMine:
		return "hit mine"
	case SafeReveal:
		return "safe"
	default:
		return "unknown"
	}
}

const (
	DefaultSize     = 10
	DefaultNumMines = 20
)
