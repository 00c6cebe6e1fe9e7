package session

// SessionError is a session service error
type SessionError string

// Error returns the error message
func (e SessionError) Error() string {
	return string(e)
}

const (
	// ErrSessionNotFound is returned when a session does not exist
	ErrSessionNotFound = SessionError("session not found")

	// ErrGameEnding is returned when a move arrives after the terminal
	// outcome was reached
	ErrGameEnding = SessionError("game is ending")

	// ErrNotYourTurn is returned when a turn-bound move comes from a player
	// who does not hold the turn
	ErrNotYourTurn = SessionError("it is not your turn")

	// ErrNotInSession is returned when the acting player is not a participant
	ErrNotInSession = SessionError("player is not in this game")

	// ErrPlayerBusy is returned when a starting session names a player who is
	// already in another game
	ErrPlayerBusy = SessionError("player is already in a game")

	// ErrNilConfig is returned when the config is nil
	ErrNilConfig = SessionError("config cannot be nil")

	// ErrNilRegistry is returned when the game registry is nil
	ErrNilRegistry = SessionError("registry cannot be nil")

	// ErrNilRatingRepo is returned when the rating repository is nil
	ErrNilRatingRepo = SessionError("rating repository cannot be nil")

	// ErrNilMatchRepo is returned when the match repository is nil
	ErrNilMatchRepo = SessionError("match repository cannot be nil")

	// ErrNilEngine is returned when the rating engine is nil
	ErrNilEngine = SessionError("rating engine cannot be nil")

	// ErrNilMessenger is returned when the messenger is nil
	ErrNilMessenger = SessionError("messenger cannot be nil")

	// ErrNilMessaging is returned when the messaging service is nil
	ErrNilMessaging = SessionError("messaging service cannot be nil")

	// ErrNilClock is returned when the clock is nil
	ErrNilClock = SessionError("clock cannot be nil")

	// ErrNilUUID is returned when the UUID generator is nil
	ErrNilUUID = SessionError("uuid generator cannot be nil")
)
