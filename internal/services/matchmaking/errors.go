package matchmaking

// MatchmakingError is a custom error type for lobby-related errors
type MatchmakingError string

// Error implements the error interface
func (e MatchmakingError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrLobbyNotFound  MatchmakingError = "lobby not found"
	ErrAlreadyQueued  MatchmakingError = "player is already in this lobby"
	ErrAlreadyInLobby MatchmakingError = "player is already in another lobby"
	ErrInSession      MatchmakingError = "player is in an active game"
	ErrNotQueued      MatchmakingError = "player is not in this lobby"
	ErrNotCreator     MatchmakingError = "only the lobby creator may do that"
	ErrNotWhitelisted MatchmakingError = "player is not invited to this lobby"
	ErrBanned         MatchmakingError = "player is banned from this lobby"
	ErrLobbyFull      MatchmakingError = "lobby is at maximum capacity"
	ErrCapacityNotMet MatchmakingError = "lobby does not have an acceptable player count"
	ErrCannotBan      MatchmakingError = "player is not on the lobby whitelist"
	ErrNilConfig      MatchmakingError = "config cannot be nil"
	ErrNilRegistry    MatchmakingError = "game registry cannot be nil"
	ErrNilRatingRepo  MatchmakingError = "rating repository cannot be nil"
	ErrNilEngine      MatchmakingError = "rating engine cannot be nil"
	ErrNilSessions    MatchmakingError = "session gateway cannot be nil"
	ErrNilClock       MatchmakingError = "clock cannot be nil"
	ErrNilUUID        MatchmakingError = "UUID generator cannot be nil"
)
