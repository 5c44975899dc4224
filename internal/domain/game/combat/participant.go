package combat

// Participant represents a combatant for the lifetime of one session.
// The combat state owns participants exclusively; callers interact with
// them through session operations only.
type Participant struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	IsPlayer   bool   `json:"is_player"`
	Initiative int    `json:"initiative"` // used once, when the turn order is built

	CurrentHP int `json:"current_hp"`
	MaxHP     int `json:"max_hp"`
	CurrentAP int `json:"current_ap"`
	MaxAP     int `json:"max_ap"`

	// Delayed is set when the participant defers their turn within a round
	Delayed bool `json:"delayed"`

	// Effects keeps apply order; names are unique within the slice
	Effects []*Effect `json:"effects"`
}

// IsAlive returns true if the participant has more than 0 HP
func (p *Participant) IsAlive() bool {
	return p.CurrentHP > 0
}

// ApplyDamage reduces current HP, clamped at zero
func (p *Participant) ApplyDamage(damage int) {
	if damage < 0 {
		damage = 0
	}
	p.CurrentHP -= damage
	if p.CurrentHP < 0 {
		p.CurrentHP = 0
	}
}

// Heal restores hit points, clamped at max HP
func (p *Participant) Heal(amount int) {
	if amount < 0 {
		amount = 0
	}
	p.CurrentHP += amount
	if p.CurrentHP > p.MaxHP {
		p.CurrentHP = p.MaxHP
	}
}

// SpendAP deducts from the action point pool.
// Returns false without mutation when the pool is too small.
func (p *Participant) SpendAP(cost int) bool {
	if cost > p.CurrentAP {
		return false
	}
	p.CurrentAP -= cost
	return true
}

// EffectByName returns the named effect, or nil
func (p *Participant) EffectByName(name string) *Effect {
	for _, e := range p.Effects {
		if e.Name == name {
			return e
		}
	}
	return nil
}

// UpsertEffect adds an effect, replacing an existing effect with the
// same name in place so the collection keeps its order
func (p *Participant) UpsertEffect(effect *Effect) {
	for i, e := range p.Effects {
		if e.Name == effect.Name {
			p.Effects[i] = effect
			return
		}
	}
	p.Effects = append(p.Effects, effect)
}

// RemoveEffect deletes the named effect, reporting whether it existed
func (p *Participant) RemoveEffect(name string) bool {
	for i, e := range p.Effects {
		if e.Name == name {
			p.Effects = append(p.Effects[:i], p.Effects[i+1:]...)
			return true
		}
	}
	return false
}

// RollModifier sums the participant's active buff and debuff values.
// Buffs add, debuffs subtract; damage and healing effects never touch rolls.
func (p *Participant) RollModifier() int {
	total := 0
	for _, e := range p.Effects {
		switch e.Kind {
		case EffectBuff:
			total += e.Value
		case EffectDebuff:
			total -= e.Value
		}
	}
	return total
}
