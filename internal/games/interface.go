// Package games defines the contract every game must satisfy and the
// registry the bot resolves game types through. The orchestrator only ever
// talks to a game through this contract; it never inspects concrete game
// internals.
package games

import (
	"github.com/parlorbot/parlor/internal/models"

	"github.com/parlorbot/parlor/internal/ordering"
)

// ParamType is the declared type of a move parameter. Arguments arrive from
// the transport as strings and are coerced to the declared type before the
// handler runs.
type ParamType string

const (
	// ParamString passes the raw argument through unchanged
	ParamString ParamType = "string"

	// ParamInt coerces the argument to an int
	ParamInt ParamType = "int"

	// ParamFloat coerces the argument to a float64
	ParamFloat ParamType = "float"
)

// Param describes one declared parameter of a move.
type Param struct {
	// Name is the argument name as it appears in commands and button payloads
	Name string

	// Type is the declared parameter type used for coercion
	Type ParamType

	// Description is shown in the slash-command option
	Description string

	// Autocomplete is the name of the plugin's autocomplete provider for
	// this parameter, or empty
	Autocomplete string
}

// MoveDescriptor statically declares one move a game exposes. Descriptors
// are read once at startup to build the command table; they never change at
// runtime.
type MoveDescriptor struct {
	// Name is the move name as invoked by players
	Name string

	// Description is shown in the slash-command listing
	Description string

	// Callback is the handler name to resolve instead of Name, or empty to
	// resolve the handler by Name directly
	Callback string

	// Params are the declared parameters, in invocation order
	Params []Param

	// TurnRequired marks the move as only legal for the current-turn holder
	TurnRequired bool
}

// Args holds a move's arguments after coercion, keyed by parameter name.
// Values are string, int, or float64 per the descriptor.
type Args map[string]any

// Int returns the named argument as an int.
func (a Args) Int(name string) int {
	v, _ := a[name].(int)
	return v
}

// Float returns the named argument as a float64.
func (a Args) Float(name string) float64 {
	v, _ := a[name].(float64)
	return v
}

// String returns the named argument as a string.
func (a Args) String(name string) string {
	v, _ := a[name].(string)
	return v
}

// MoveHandler applies one move for the acting player. A returned error means
// the move did not happen; the game state must be unchanged.
type MoveHandler func(actor *models.Player, args Args) error

// ButtonStyle hints how a state button should be drawn.
type ButtonStyle string

const (
	ButtonStyleNeutral ButtonStyle = "neutral"
	ButtonStylePrimary ButtonStyle = "primary"
	ButtonStyleSuccess ButtonStyle = "success"
	ButtonStyleDanger  ButtonStyle = "danger"
)

// StateField is one labelled text block of the rendered game state.
type StateField struct {
	Name   string
	Value  string
	Inline bool
}

// StateButton is an interactive element of the rendered game state. Pressing
// it submits the named move with the given raw arguments.
type StateButton struct {
	Label        string
	Emoji        string
	Style        ButtonStyle
	Row          int
	Disabled     bool
	Move         string
	Args         map[string]string
	TurnRequired bool
}

// State is the renderable, implementation-agnostic description of the
// current board. Presentation code turns it into platform messages; the core
// never formats it.
type State struct {
	Fields  []StateField
	Buttons []StateButton
}

// Choice is one autocomplete suggestion.
type Choice struct {
	// Label is the human-readable suggestion
	Label string

	// Value is the raw argument submitted when the suggestion is picked
	Value string
}

// Plugin is a live game instance. Implementations must keep CurrentTurn
// constant-time: it is called on every interaction.
type Plugin interface {
	// State returns the renderable description of the current board, or nil
	// when the game has nothing to show
	State() *State

	// CurrentTurn returns the player whose move is expected
	CurrentTurn() *models.Player

	// Outcome returns nil while the game is ongoing, or the terminal result
	Outcome() *models.Outcome

	// Resolve looks up the handler for a move by its effective name (the
	// descriptor's callback if declared, else the move name)
	Resolve(name string) (MoveHandler, bool)
}

// Autocompleter is optionally implemented by plugins whose moves declare
// autocomplete providers.
type Autocompleter interface {
	// Autocomplete returns suggestions from the named provider for the
	// given player
	Autocomplete(provider string, player *models.Player) []Choice
}

// Factory creates instances of one game type and carries its static
// metadata.
type Factory interface {
	// GameType is the stable identifier the registry keys on
	GameType() string

	// Name is the human-readable game name
	Name() string

	// Description is the long-form description shown while queueing
	Description() string

	// PlayerCounts returns the acceptable player counts: a single element
	// for an exact count, several for an enumerated set, empty for "any"
	PlayerCounts() []int

	// Ordering returns the seating policy applied at session creation
	Ordering() ordering.Policy

	// Moves returns the static move descriptors
	Moves() []MoveDescriptor

	// New constructs a game instance over the ordered player list
	New(players []*models.Player) (Plugin, error)
}

// Metadata carries optional credits shown in the lobby embed. Factories may
// implement MetadataProvider to supply it.
type Metadata struct {
	Author     string
	AuthorLink string
	SourceLink string
	Duration   string
	Difficulty string
}

// MetadataProvider is optionally implemented by factories.
type MetadataProvider interface {
	Metadata() Metadata
}
