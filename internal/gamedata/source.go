package gamedata

//go:generate mockgen -destination=mock/mock_source.go -package=mockgamedata -source=source.go

import "context"

// Source supplies the read-only item, spell and armor lookups the combat
// engine resolves actions against. Implementations own the character and
// item data; the engine never mutates anything behind this interface.
type Source interface {
	// Weapon returns the participant's equipped weapon definition
	Weapon(ctx context.Context, participantID string) (*Weapon, error)

	// Spell returns the named spell if the participant has it equipped
	Spell(ctx context.Context, participantID, name string) (*Spell, error)

	// Defense returns the participant's armor-derived flat defense value
	Defense(ctx context.Context, participantID string) (int, error)

	// ScalingBonus returns the flat bonus the participant's stat earns on
	// the scaling table (stat value to letter grade to bonus)
	ScalingBonus(ctx context.Context, participantID string, stat ScalingStat) (int, error)
}
