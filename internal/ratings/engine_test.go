package ratings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine() *OpenSkillEngine {
	return NewOpenSkillEngine(DefaultParams(), map[string]Params{
		"liars": {Mu: 1000, SigmaRatio: 1.0 / 2.5, BetaRatio: 1.0 / 5.0, TauRatio: 1.0 / 250.0},
	})
}

func TestInitialRating(t *testing.T) {
	e := newEngine()

	r := e.InitialRating("tictactoe")
	assert.InDelta(t, 1000.0, r.Mu, 1e-9)
	assert.InDelta(t, 1000.0/6.0, r.Sigma, 1e-9)

	// per-game override
	r = e.InitialRating("liars")
	assert.InDelta(t, 1000.0/2.5, r.Sigma, 1e-9)
}

func TestRateWinnerGainsLoserLoses(t *testing.T) {
	e := newEngine()
	initial := e.InitialRating("tictactoe")

	rated, err := e.Rate("tictactoe", []PlayerRating{initial, initial}, []int{0, 1})
	require.NoError(t, err)
	require.Len(t, rated, 2)

	assert.Greater(t, rated[0].Mu, initial.Mu)
	assert.Less(t, rated[1].Mu, initial.Mu)
	assert.Less(t, rated[0].Sigma, initial.Sigma)
	assert.Less(t, rated[1].Sigma, initial.Sigma)
}

func TestRateDrawOfEqualsIsSymmetric(t *testing.T) {
	e := newEngine()
	initial := e.InitialRating("tictactoe")

	rated, err := e.Rate("tictactoe", []PlayerRating{initial, initial}, []int{0, 0})
	require.NoError(t, err)

	assert.InDelta(t, rated[0].Mu, rated[1].Mu, 1e-9)
	assert.InDelta(t, rated[0].Sigma, rated[1].Sigma, 1e-9)
}

func TestRateUpsetMovesMoreThanExpectedResult(t *testing.T) {
	e := newEngine()
	strong := PlayerRating{Mu: 1200, Sigma: 100}
	weak := PlayerRating{Mu: 800, Sigma: 100}

	expected, err := e.Rate("tictactoe", []PlayerRating{strong, weak}, []int{0, 1})
	require.NoError(t, err)
	upset, err := e.Rate("tictactoe", []PlayerRating{strong, weak}, []int{1, 0})
	require.NoError(t, err)

	expectedWinnerGain := expected[0].Mu - strong.Mu
	upsetWinnerGain := upset[1].Mu - weak.Mu
	assert.Greater(t, upsetWinnerGain, expectedWinnerGain)
}

func TestRatePreservesInputOrder(t *testing.T) {
	e := newEngine()
	players := []PlayerRating{
		{Mu: 900, Sigma: 150},
		{Mu: 1100, Sigma: 150},
		{Mu: 1000, Sigma: 150},
	}

	// middle entry wins, first and third tie for second
	rated, err := e.Rate("tictactoe", players, []int{1, 0, 1})
	require.NoError(t, err)
	require.Len(t, rated, 3)

	assert.Greater(t, rated[1].Mu, players[1].Mu)
	assert.Less(t, rated[0].Mu, players[0].Mu)
}

func TestRateInputValidation(t *testing.T) {
	e := newEngine()
	r := e.InitialRating("tictactoe")

	_, err := e.Rate("tictactoe", []PlayerRating{r}, []int{0})
	assert.Error(t, err)

	_, err = e.Rate("tictactoe", []PlayerRating{r, r}, []int{0})
	assert.Error(t, err)

	_, err = e.Rate("tictactoe", []PlayerRating{r, r}, []int{0, -1})
	assert.Error(t, err)
}
