package combat

// EffectKind classifies what an effect does to its carrier
type EffectKind string

const (
	EffectDamage  EffectKind = "damage"
	EffectHealing EffectKind = "healing"
	EffectBuff    EffectKind = "buff"
	EffectDebuff  EffectKind = "debuff"
	EffectUtility EffectKind = "utility"
)

// DurationKind represents how an effect's lifetime is tracked
type DurationKind string

const (
	// DurationRounds counts down once per round and expires at zero
	DurationRounds DurationKind = "rounds"
	// DurationPermanent never expires on its own
	DurationPermanent DurationKind = "permanent"
)

// Effect is a named, timed modifier attached to a participant.
// Names are unique per participant; applying an effect with an existing
// name replaces the old one in place.
type Effect struct {
	Name         string       `json:"name"`
	Kind         EffectKind   `json:"kind"`
	Value        int          `json:"value"` // damage/healing per tick, or flat roll modifier
	Remaining    int          `json:"remaining"`
	DurationKind DurationKind `json:"duration_kind"`
	Description  string       `json:"description,omitempty"`
}

// ValidKind reports whether the effect kind is one of the closed set
func (e *Effect) ValidKind() bool {
	switch e.Kind {
	case EffectDamage, EffectHealing, EffectBuff, EffectDebuff, EffectUtility:
		return true
	}
	return false
}

// ExpiredEffect identifies an effect removed by a round tick
type ExpiredEffect struct {
	ParticipantID string `json:"participant_id"`
	EffectName    string `json:"effect_name"`
}
