package messaging

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"sync"
	"time"
)

// weightedText is one phrasing and its selection weight. Weights within a
// table need not sum to 1; they are relative.
type weightedText struct {
	text   string
	weight float64
}

var turnMessages = []weightedText{
	{"It's {player}'s turn to play.", 0.529},
	{"Next up: {player}.", 0.45},
	{"We checked the books, and it is *somehow* {player}'s turn to play. Not sure how that happened.", 0.01},
	{"After journeying the Himalayas for many a year, we now know that it's {player}'s turn!", 0.01},
	{"Did you know that the chance of this turn message appearing is 0.1%? alsobythewayit's{player}'sturn", 0.001},
}

var gameStartedMessages = []weightedText{
	{"The game has begun! Good luck, {players}!", 0.5},
	{"Let the games begin! {players}, may the best player win!", 0.3},
	{"Game on! {players} are ready to battle it out!", 0.15},
	{"Alright {players}, let's see what you've got!", 0.04},
	{"In a world where only one can win... {players} enter the arena.", 0.01},
}

var gameOverMessages = []weightedText{
	{"Game over! {winner} wins!", 0.4},
	{"And the winner is... {winner}!", 0.3},
	{"Congratulations to {winner} for the victory!", 0.2},
	{"{winner} has emerged victorious!", 0.08},
	{"Against all odds, {winner} has won! What a game!", 0.02},
}

var drawMessages = []weightedText{
	{"It's a draw!", 0.5},
	{"The game ends in a tie!", 0.3},
	{"No winner this time - it's a draw!", 0.15},
	{"Both players are evenly matched! It's a tie!", 0.05},
}

var buttonLabels = map[ButtonKind][]weightedText{
	ButtonJoin: {
		{"Join", 0.7},
		{"Join Game", 0.2},
		{"Count me in!", 0.08},
		{"I'm in!", 0.02},
	},
	ButtonLeave: {
		{"Leave", 0.7},
		{"Leave Game", 0.2},
		{"Nah, I'm out", 0.08},
		{"Goodbye!", 0.02},
	},
	ButtonStart: {
		{"Start", 0.7},
		{"Start Game", 0.2},
		{"Let's go!", 0.08},
		{"Begin!", 0.02},
	},
}

// service implements the Service interface
type service struct {
	mu   sync.Mutex
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	seed := time.Now().UnixNano()
	if config != nil && config.RandSeed != 0 {
		seed = config.RandSeed
	}

	return &service{
		rand: rand.New(rand.NewSource(seed)),
	}, nil
}

// pick selects one phrasing by weight.
func (s *service) pick(options []weightedText) string {
	var total float64
	for _, o := range options {
		total += o.weight
	}

	s.mu.Lock()
	target := s.rand.Float64() * total
	s.mu.Unlock()

	for _, o := range options {
		target -= o.weight
		if target < 0 {
			return o.text
		}
	}
	// Float rounding can walk past the last entry
	return options[len(options)-1].text
}

// GetTurnMessage returns an announcement that it is a player's turn
func (s *service) GetTurnMessage(ctx context.Context, input *GetTurnMessageInput) (*GetTurnMessageOutput, error) {
	if input == nil || input.PlayerMention == "" {
		return nil, errors.New("input and player mention cannot be empty")
	}

	message := strings.ReplaceAll(s.pick(turnMessages), "{player}", input.PlayerMention)
	return &GetTurnMessageOutput{Message: message}, nil
}

// GetGameStartedMessage returns an announcement that a game has begun
func (s *service) GetGameStartedMessage(ctx context.Context, input *GetGameStartedMessageInput) (*GetGameStartedMessageOutput, error) {
	if input == nil || len(input.PlayerMentions) == 0 {
		return nil, errors.New("input and player mentions cannot be empty")
	}

	players := strings.Join(input.PlayerMentions, ", ")
	message := strings.ReplaceAll(s.pick(gameStartedMessages), "{players}", players)
	return &GetGameStartedMessageOutput{Message: message}, nil
}

// GetGameOverMessage returns an announcement of the winner
func (s *service) GetGameOverMessage(ctx context.Context, input *GetGameOverMessageInput) (*GetGameOverMessageOutput, error) {
	if input == nil || input.WinnerMention == "" {
		return nil, errors.New("input and winner mention cannot be empty")
	}

	message := strings.ReplaceAll(s.pick(gameOverMessages), "{winner}", input.WinnerMention)
	return &GetGameOverMessageOutput{Message: message}, nil
}

// GetDrawMessage returns an announcement that the game ended in a draw
func (s *service) GetDrawMessage(ctx context.Context, input *GetDrawMessageInput) (*GetDrawMessageOutput, error) {
	return &GetDrawMessageOutput{Message: s.pick(drawMessages)}, nil
}

// GetButtonLabel returns a label for one of the lobby buttons
func (s *service) GetButtonLabel(ctx context.Context, input *GetButtonLabelInput) (*GetButtonLabelOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	options, ok := buttonLabels[input.Kind]
	if !ok {
		return nil, errors.New("unknown button kind: " + string(input.Kind))
	}

	return &GetButtonLabelOutput{Label: s.pick(options)}, nil
}
