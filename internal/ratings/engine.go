// Package ratings wraps the openskill model behind a small engine interface
// so settlement code and its tests never touch the library directly.
package ratings

import (
	"errors"
	"fmt"

	"github.com/intinig/go-openskill/rating"
	"github.com/intinig/go-openskill/types"
)

// OpenSkillEngine implements Engine on go-openskill. Every player is rated
// as a team of one; ties are expressed through equal ranks.
type OpenSkillEngine struct {
	defaults  Params
	overrides map[string]Params
}

// NewOpenSkillEngine creates an engine with per-game-type overrides. A nil
// overrides map is fine.
func NewOpenSkillEngine(defaults Params, overrides map[string]Params) *OpenSkillEngine {
	return &OpenSkillEngine{
		defaults:  defaults,
		overrides: overrides,
	}
}

func (e *OpenSkillEngine) params(gameType string) Params {
	if p, ok := e.overrides[gameType]; ok {
		return p
	}
	return e.defaults
}

// InitialRating returns the rating for a first-time player of gameType.
func (e *OpenSkillEngine) InitialRating(gameType string) PlayerRating {
	p := e.params(gameType)
	return PlayerRating{
		Mu:    p.Mu,
		Sigma: p.Mu * p.SigmaRatio,
	}
}

// Rate computes post-match ratings for a free-for-all result.
func (e *OpenSkillEngine) Rate(gameType string, current []PlayerRating, ranks []int) ([]PlayerRating, error) {
	if len(current) < 2 {
		return nil, errors.New("rating requires at least two players")
	}
	if len(current) != len(ranks) {
		return nil, fmt.Errorf("got %d players but %d ranks", len(current), len(ranks))
	}
	for _, r := range ranks {
		if r < 0 {
			return nil, fmt.Errorf("negative rank %d", r)
		}
	}

	p := e.params(gameType)
	beta := p.Mu * p.BetaRatio
	tau := p.Mu * p.TauRatio

	teams := make([]types.Team, len(current))
	for i, c := range current {
		teams[i] = types.Team{{Mu: c.Mu, Sigma: c.Sigma}}
	}

	rated := rating.Rate(teams, &types.OpenSkillOptions{
		Rank: ranks,
		Beta: &beta,
		Tau:  &tau,
	})
	if len(rated) != len(current) {
		return nil, fmt.Errorf("rating model returned %d teams for %d players", len(rated), len(current))
	}

	out := make([]PlayerRating, len(rated))
	for i, team := range rated {
		if len(team) != 1 {
			return nil, fmt.Errorf("rating model returned a team of %d", len(team))
		}
		out[i] = PlayerRating{Mu: team[0].Mu, Sigma: team[0].Sigma}
	}
	return out, nil
}
