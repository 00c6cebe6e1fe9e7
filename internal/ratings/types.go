package ratings

import "github.com/parlorbot/parlor/internal/models"

// PlayerRating is one player's skill estimate.
type PlayerRating struct {
	Mu    float64
	Sigma float64
}

// Params tunes the rating model for one game type. The ratios are relative
// to Mu so game tuning survives a change of scale.
type Params struct {
	// Mu is the mean skill assigned to new players
	Mu float64

	// SigmaRatio sets the initial uncertainty: sigma = Mu * SigmaRatio
	SigmaRatio float64

	// BetaRatio sets the skill-gap scale: beta = Mu * BetaRatio
	BetaRatio float64

	// TauRatio sets the additive dynamics factor: tau = Mu * TauRatio
	TauRatio float64
}

// DefaultParams are used for game types without an override.
func DefaultParams() Params {
	return Params{
		Mu:         models.DefaultMu,
		SigmaRatio: models.DefaultSigmaRatio,
		BetaRatio:  1.0 / 12.0,
		TauRatio:   1.0 / 100.0,
	}
}
