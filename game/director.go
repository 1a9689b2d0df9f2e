package game

// Director plays a game in place of a human, one move at a time
type Director interface {
	// Act performs a single reveal or flag on the session. It returns false
	// when the director could find nothing to do.
	Act(session *Session) bool
}

// Play lets director act on session until the game ends or the director gives
// up, and returns the number of moves made
func Play(session *Session, director Director) int {
	moves := 0
	for !session.Outcome().IsTerminal() && director.Act(session) {
		moves++
	}
	return moves
}
