package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parlorbot/parlor/internal/models"
)

func seated(ids ...string) []*models.Player {
	players := make([]*models.Player, len(ids))
	for i, id := range ids {
		players[i] = &models.Player{ID: id, Name: id, Mu: 1000, Sigma: 1000.0 / 6.0}
	}
	return players
}

func TestStandingsForWinner(t *testing.T) {
	players := seated("a", "b")

	st, err := standingsFor(models.WinnerOutcome(players[1]), players)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0}, st.ranks)
	assert.Equal(t, []bool{false, false}, st.tied)
}

func TestStandingsForWinnerManyLosers(t *testing.T) {
	players := seated("a", "b", "c")

	st, err := standingsFor(models.WinnerOutcome(players[0]), players)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 1}, st.ranks)
	// the losers share second place
	assert.Equal(t, []bool{false, true, true}, st.tied)
}

func TestStandingsForWinnerNotSeated(t *testing.T) {
	players := seated("a", "b")
	outsider := &models.Player{ID: "c"}

	_, err := standingsFor(models.WinnerOutcome(outsider), players)
	assert.Error(t, err)
}

func TestStandingsForPlacements(t *testing.T) {
	players := seated("a", "b", "c")

	outcome := models.PlacementOutcome([][]*models.Player{
		{players[2]},
		{players[0]},
		{players[1]},
	})
	st, err := standingsFor(outcome, players)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 0}, st.ranks)
	assert.Equal(t, []bool{false, false, false}, st.tied)
}

func TestStandingsForDraw(t *testing.T) {
	players := seated("a", "b")

	outcome := models.PlacementOutcome([][]*models.Player{{players[0], players[1]}})
	st, err := standingsFor(outcome, players)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0}, st.ranks)
	assert.Equal(t, []bool{true, true}, st.tied)
}

func TestStandingsForPartialTie(t *testing.T) {
	players := seated("a", "b", "c", "d")

	outcome := models.PlacementOutcome([][]*models.Player{
		{players[0]},
		{players[1], players[2]},
		{players[3]},
	})
	st, err := standingsFor(outcome, players)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 1, 2}, st.ranks)
	assert.Equal(t, []bool{false, true, true, false}, st.tied)
}

func TestStandingsForMissingPlayer(t *testing.T) {
	players := seated("a", "b", "c")

	outcome := models.PlacementOutcome([][]*models.Player{
		{players[0]},
		{players[1]},
	})
	_, err := standingsFor(outcome, players)
	assert.Error(t, err)
}

func TestStandingsForDuplicatePlayer(t *testing.T) {
	players := seated("a", "b")

	outcome := models.PlacementOutcome([][]*models.Player{
		{players[0]},
		{players[0], players[1]},
	})
	_, err := standingsFor(outcome, players)
	assert.Error(t, err)
}
