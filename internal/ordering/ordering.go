// Package ordering decides the seating order of a session's players. The
// policy is applied exactly once, when the lobby hands its queue to the
// session orchestrator.
package ordering

import (
	"math/rand"

	"github.com/parlorbot/parlor/internal/models"
)

// Policy selects how a lobby's join-ordered queue becomes the session's
// fixed player order.
type Policy string

const (
	// PolicyRandom shuffles all players
	PolicyRandom Policy = "random"

	// PolicyPreserve keeps the join order
	PolicyPreserve Policy = "preserve"

	// PolicyCreatorFirst pins the creator to the first seat and shuffles
	// the remaining players
	PolicyCreatorFirst Policy = "creator_first"

	// PolicyReverse reverses the join order
	PolicyReverse Policy = "reverse"
)

// Order applies the policy to a join-ordered player list. The input slice is
// never mutated. Deterministic for a fixed rng seed.
func Order(players []*models.Player, creatorID string, policy Policy, rng *rand.Rand) []*models.Player {
	out := make([]*models.Player, len(players))
	copy(out, players)

	switch policy {
	case PolicyPreserve:
		return out
	case PolicyReverse:
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
		return out
	case PolicyCreatorFirst:
		var creator *models.Player
		rest := make([]*models.Player, 0, len(out))
		for _, p := range out {
			if p.ID == creatorID && creator == nil {
				creator = p
				continue
			}
			rest = append(rest, p)
		}
		rng.Shuffle(len(rest), func(i, j int) {
			rest[i], rest[j] = rest[j], rest[i]
		})
		if creator == nil {
			return rest
		}
		return append([]*models.Player{creator}, rest...)
	default: // PolicyRandom
		rng.Shuffle(len(out), func(i, j int) {
			out[i], out[j] = out[j], out[i]
		})
		return out
	}
}
