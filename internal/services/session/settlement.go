package session

import (
	"context"
	"fmt"

	"github.com/parlorbot/parlor/internal/models"
	"github.com/parlorbot/parlor/internal/ratings"
	matchRepo "github.com/parlorbot/parlor/internal/repositories/match"
	ratingRepo "github.com/parlorbot/parlor/internal/repositories/rating"
)

// standings holds the dense zero-based finishing rank for each seated player,
// in seating order. Tied players share a rank.
type standings struct {
	ranks []int
	tied  []bool
}

// standingsFor converts a terminal outcome into ranks over the seated
// players. Every seated player must be accounted for.
func standingsFor(outcome *models.Outcome, players []*models.Player) (*standings, error) {
	st := &standings{
		ranks: make([]int, len(players)),
		tied:  make([]bool, len(players)),
	}

	if outcome.Winner != nil {
		found := false
		for i, p := range players {
			if p.ID == outcome.Winner.ID {
				st.ranks[i] = 0
				found = true
			} else {
				st.ranks[i] = 1
				st.tied[i] = len(players) > 2
			}
		}
		if !found {
			return nil, fmt.Errorf("winner %s is not a seated player", outcome.Winner.ID)
		}
		return st, nil
	}

	placed := make(map[string]int, len(players))
	tied := make(map[string]bool, len(players))
	for rank, group := range outcome.Placements {
		for _, p := range group {
			if _, seen := placed[p.ID]; seen {
				return nil, fmt.Errorf("player %s placed twice", p.ID)
			}
			placed[p.ID] = rank
			tied[p.ID] = len(group) > 1
		}
	}

	for i, p := range players {
		rank, ok := placed[p.ID]
		if !ok {
			return nil, fmt.Errorf("player %s missing from placements", p.ID)
		}
		st.ranks[i] = rank
		st.tied[i] = tied[p.ID]
	}
	if len(placed) != len(players) {
		return nil, fmt.Errorf("placements name %d players, session seats %d", len(placed), len(players))
	}
	return st, nil
}

// settle converts the terminal outcome into rating movement and a durable
// match record. Aborted games settle nothing. Called at most once per
// session, with the session's keyed lock held.
func (s *service) settle(ctx context.Context, sess *session, outcome *models.Outcome) error {
	if outcome.IsError() {
		s.logger.Warn().
			Str("session_id", sess.id).
			Str("reason", outcome.Err).
			Msg("game aborted; skipping settlement")
		return nil
	}

	st, err := standingsFor(outcome, sess.players)
	if err != nil {
		return fmt.Errorf("failed to rank outcome: %w", err)
	}

	now := s.clock.Now()
	participants := make([]*models.MatchParticipant, len(sess.players))
	for i, p := range sess.players {
		participants[i] = &models.MatchParticipant{
			PlayerID: p.ID,
			Rank:     st.ranks[i],
			Tied:     st.tied[i],
		}
	}

	if sess.rated {
		current := make([]ratings.PlayerRating, len(sess.players))
		for i, p := range sess.players {
			current[i] = ratings.PlayerRating{Mu: p.Mu, Sigma: p.Sigma}
		}
		updated, err := s.engine.Rate(sess.gameType, current, st.ranks)
		if err != nil {
			return fmt.Errorf("failed to rate outcome: %w", err)
		}

		ids := make([]string, len(sess.players))
		for i, p := range sess.players {
			ids[i] = p.ID
		}
		existing, err := s.ratingRepo.GetRatings(ctx, &ratingRepo.GetRatingsInput{
			GuildID:   sess.guildID,
			GameType:  sess.gameType,
			PlayerIDs: ids,
		})
		if err != nil {
			return fmt.Errorf("failed to load rating records: %w", err)
		}

		for i, p := range sess.players {
			matches := 0
			if record, ok := existing.Ratings[p.ID]; ok {
				matches = record.MatchesPlayed
			}
			if err := s.ratingRepo.UpsertRating(ctx, &ratingRepo.UpsertRatingInput{
				Rating: &models.RatingRecord{
					PlayerID:      p.ID,
					GuildID:       sess.guildID,
					GameType:      sess.gameType,
					Mu:            updated[i].Mu,
					Sigma:         updated[i].Sigma,
					MatchesPlayed: matches + 1,
					LastPlayed:    now,
				},
			}); err != nil {
				return fmt.Errorf("failed to save rating for %s: %w", p.ID, err)
			}
			participants[i].MuDelta = updated[i].Mu - p.Mu
			participants[i].SigmaDelta = updated[i].Sigma - p.Sigma
		}
	}

	if err := s.matchRepo.RecordMatch(ctx, &matchRepo.RecordMatchInput{
		Match: &models.Match{
			ID:           s.uuid.NewUUID(),
			GameType:     sess.gameType,
			GuildID:      sess.guildID,
			Rated:        sess.rated,
			Participants: participants,
			StartedAt:    sess.startedAt,
			EndedAt:      now,
		},
	}); err != nil {
		return fmt.Errorf("failed to record match: %w", err)
	}
	return nil
}
