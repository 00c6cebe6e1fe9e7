// Package tictactoe is the reference game: two players, three in a row.
// It exists both as a playable game and as the template new games are
// written from.
package tictactoe

import (
	"errors"
	"fmt"

	"github.com/parlorbot/parlor/internal/games"
	"github.com/parlorbot/parlor/internal/models"
	"github.com/parlorbot/parlor/internal/ordering"
)

// GameType is the registry identifier.
const GameType = "tictactoe"

const size = 3

var (
	rowNames = [size]string{"Top", "Middle", "Bottom"}
	colNames = [size]string{"Left", "Center", "Right"}
)

// Factory creates tic-tac-toe games.
type Factory struct{}

// NewFactory creates a tic-tac-toe factory.
func NewFactory() *Factory {
	return &Factory{}
}

func (f *Factory) GameType() string { return GameType }

func (f *Factory) Name() string { return "Tic-Tac-Toe" }

func (f *Factory) Description() string {
	return "The classic game of Xs and Os. Take turns placing pieces until one player gets three in a row!"
}

// PlayerCounts declares exactly two players.
func (f *Factory) PlayerCounts() []int { return []int{2} }

// Ordering randomizes who plays X.
func (f *Factory) Ordering() ordering.Policy { return ordering.PolicyRandom }

func (f *Factory) Moves() []games.MoveDescriptor {
	return []games.MoveDescriptor{
		{
			Name:        "move",
			Description: "Place a piece down.",
			Params: []games.Param{
				{
					Name:         "move",
					Type:         games.ParamString,
					Description:  "The cell to place your piece in",
					Autocomplete: "ac_move",
				},
			},
			TurnRequired: true,
		},
	}
}

func (f *Factory) Metadata() games.Metadata {
	return games.Metadata{
		Author:     "@quantumbagel",
		AuthorLink: "https://github.com/quantumbagel",
		Duration:   "2min",
		Difficulty: "Literally Braindead",
	}
}

// New constructs a game. The first ordered player is X, the second is O.
func (f *Factory) New(players []*models.Player) (games.Plugin, error) {
	if len(players) != 2 {
		return nil, fmt.Errorf("tictactoe requires exactly 2 players, got %d", len(players))
	}

	return &Game{
		x: players[0],
		o: players[1],
	}, nil
}

// Game is a live tic-tac-toe board. Board cells hold the owning player or
// nil. Cells are indexed [row][col].
type Game struct {
	x     *models.Player
	o     *models.Player
	turn  int
	board [size][size]*models.Player
}

func (g *Game) players() [2]*models.Player {
	return [2]*models.Player{g.x, g.o}
}

// CurrentTurn returns the player expected to move.
func (g *Game) CurrentTurn() *models.Player {
	return g.players()[g.turn]
}

// State renders the team list and the nine board buttons. Each button
// submits the move for its own cell.
func (g *Game) State() *games.State {
	state := &games.State{
		Fields: []games.StateField{
			{Name: "❌", Value: g.x.Mention(), Inline: true},
			{Name: "⭕", Value: g.o.Mention(), Inline: true},
		},
	}

	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			emoji := ""
			style := games.ButtonStyleNeutral
			switch g.board[row][col] {
			case g.x:
				emoji = "❌"
				style = games.ButtonStylePrimary
			case g.o:
				emoji = "⭕"
				style = games.ButtonStyleSuccess
			}

			state.Buttons = append(state.Buttons, games.StateButton{
				Emoji:        emoji,
				Style:        style,
				Row:          row,
				Move:         "move",
				Args:         map[string]string{"move": cellID(row, col)},
				TurnRequired: true,
			})
		}
	}
	return state
}

// Resolve maps the single declared move to its handler.
func (g *Game) Resolve(name string) (games.MoveHandler, bool) {
	if name == "move" {
		return g.move, true
	}
	return nil, false
}

// Autocomplete suggests the free cells.
func (g *Game) Autocomplete(provider string, _ *models.Player) []games.Choice {
	if provider != "ac_move" {
		return nil
	}

	var choices []games.Choice
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if g.board[row][col] == nil {
				choices = append(choices, games.Choice{
					Label: cellName(row, col),
					Value: cellID(row, col),
				})
			}
		}
	}
	return choices
}

func (g *Game) move(actor *models.Player, args games.Args) error {
	row, col, err := parseCell(args.String("move"))
	if err != nil {
		return err
	}
	if g.board[row][col] != nil {
		return errors.New("that cell is already taken")
	}

	g.board[row][col] = actor
	g.turn = (g.turn + 1) % 2
	return nil
}

// Outcome returns nil while the game is ongoing, the winner when a line is
// complete, or a one-group placement (a draw) when the board fills up.
func (g *Game) Outcome() *models.Outcome {
	if winner := g.winner(); winner != nil {
		return models.WinnerOutcome(winner)
	}
	if g.full() {
		return models.PlacementOutcome([][]*models.Player{{g.x, g.o}})
	}
	return nil
}

func (g *Game) winner() *models.Player {
	b := &g.board
	for i := 0; i < size; i++ {
		if b[i][0] != nil && b[i][0] == b[i][1] && b[i][1] == b[i][2] {
			return b[i][0]
		}
		if b[0][i] != nil && b[0][i] == b[1][i] && b[1][i] == b[2][i] {
			return b[0][i]
		}
	}
	if b[0][0] != nil && b[0][0] == b[1][1] && b[1][1] == b[2][2] {
		return b[0][0]
	}
	if b[0][2] != nil && b[0][2] == b[1][1] && b[1][1] == b[2][0] {
		return b[0][2]
	}
	return nil
}

func (g *Game) full() bool {
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			if g.board[row][col] == nil {
				return false
			}
		}
	}
	return true
}

// cellID encodes a cell as two digits, row then column.
func cellID(row, col int) string {
	return fmt.Sprintf("%d%d", row, col)
}

func cellName(row, col int) string {
	return rowNames[row] + " " + colNames[col]
}

func parseCell(id string) (row, col int, err error) {
	if len(id) != 2 || id[0] < '0' || id[0] > '2' || id[1] < '0' || id[1] > '2' {
		return 0, 0, fmt.Errorf("invalid cell %q", id)
	}
	return int(id[0] - '0'), int(id[1] - '0'), nil
}
