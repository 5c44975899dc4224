package session

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/hollowmoor/soulsfight/internal/domain/game/combat"
	apperr "github.com/hollowmoor/soulsfight/internal/errors"
	"github.com/hollowmoor/soulsfight/internal/gamedata"
)

// ActionType is the closed set of actions a participant can take
type ActionType string

const (
	ActionAttack ActionType = "Attack"
	ActionCast   ActionType = "Cast"
	ActionDodge  ActionType = "Dodge"
	ActionParry  ActionType = "Parry"
	ActionSearch ActionType = "Search"
)

// utilityDifficulty is the fixed d20 threshold for Dodge, Parry and Search
const utilityDifficulty = 10

// ActionRequest describes one action; it is consumed and discarded per call
type ActionRequest struct {
	ActorID   string     `json:"actor_id"`
	Type      ActionType `json:"action_type"`
	TargetID  string     `json:"target_id,omitempty"`
	SpellName string     `json:"spell_name,omitempty"`
}

// ActionResult is the outcome of a resolved action
type ActionResult struct {
	Action     ActionType `json:"action"`
	ActorID    string     `json:"actor_id"`
	TargetID   string     `json:"target_id,omitempty"`
	Success    bool       `json:"success"`
	Roll       int        `json:"roll"`
	Damage     int        `json:"damage,omitempty"`
	Healing    int        `json:"healing,omitempty"`
	Difficulty int        `json:"difficulty,omitempty"`
	SpellName  string     `json:"spell_name,omitempty"`
	Message    string     `json:"message,omitempty"`
}

func (s *service) PerformAction(ctx context.Context, req *ActionRequest) (*ActionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.activeState()
	if err != nil {
		return nil, err
	}

	if req == nil || req.ActorID == "" {
		return nil, apperr.InvalidArgument("actor ID is required")
	}

	actor, err := state.Participant(req.ActorID)
	if err != nil {
		return nil, err
	}

	// Turn-ownership guard: a mismatch is an atomic no-op
	if current := state.CurrentParticipantID(); current != req.ActorID {
		return nil, apperr.InvalidTurnf("it is %q's turn, not %q's", current, req.ActorID).
			WithMeta("current_participant", current)
	}

	var result *ActionResult
	switch req.Type {
	case ActionAttack:
		result, err = s.resolveAttack(ctx, state, actor, req)
	case ActionCast:
		result, err = s.resolveCast(ctx, state, actor, req)
	case ActionDodge, ActionParry, ActionSearch:
		result, err = s.resolveUtility(ctx, state, actor, req)
	default:
		return nil, apperr.Validationf("unknown action type %q", req.Type)
	}
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("session_id", state.ID).
		Str("actor_id", req.ActorID).
		Str("action", string(req.Type)).
		Bool("success", result.Success).
		Msg("action resolved")

	return result, nil
}

// resolveAttack rolls the actor's equipped weapon against the target.
// Every lookup and roll happens before any mutation so failures leave
// the session untouched.
func (s *service) resolveAttack(ctx context.Context, state *combat.State, actor *combat.Participant, req *ActionRequest) (*ActionResult, error) {
	if req.TargetID == "" {
		return nil, apperr.Validation("attack requires a target")
	}

	target, err := state.Participant(req.TargetID)
	if err != nil {
		return nil, err
	}

	weapon, err := s.source.Weapon(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	scaling := 0
	if weapon.ScalingStat != "" {
		scaling, err = s.source.ScalingBonus(ctx, actor.ID, weapon.ScalingStat)
		if err != nil {
			return nil, err
		}
	}

	defense, err := s.source.Defense(ctx, target.ID)
	if err != nil {
		return nil, err
	}

	roll, err := s.roller.Roll(weapon.DiceCount, weapon.DiceSides, weapon.FlatBonus)
	if err != nil {
		return nil, err
	}

	damage := roll.Total + scaling + actor.RollModifier() - defense
	if damage < 0 {
		damage = 0
	}

	target.ApplyDamage(damage)
	state.AddLogEntry(fmt.Sprintf("%s hits %s with %s for %d damage", actor.Name, target.Name, weapon.Name, damage))

	return &ActionResult{
		Action:   ActionAttack,
		ActorID:  actor.ID,
		TargetID: target.ID,
		Success:  true,
		Roll:     roll.RawTotal,
		Damage:   damage,
		Message:  fmt.Sprintf("%s damage dealt with %s", weapon.DamageType, weapon.Name),
	}, nil
}

// resolveCast looks up the spell, charges its AP cost, and applies the
// payload: damage and healing hit the target's HP immediately, buffs and
// debuffs attach as timed effects.
func (s *service) resolveCast(ctx context.Context, state *combat.State, actor *combat.Participant, req *ActionRequest) (*ActionResult, error) {
	if req.SpellName == "" {
		return nil, apperr.Validation("cast requires a spell name")
	}

	spell, err := s.source.Spell(ctx, actor.ID, req.SpellName)
	if err != nil {
		return nil, err
	}

	// An omitted target means the caster targets themselves
	targetID := req.TargetID
	if targetID == "" {
		targetID = actor.ID
	}
	target, err := state.Participant(targetID)
	if err != nil {
		return nil, err
	}

	if actor.CurrentAP < spell.APCost {
		return nil, apperr.InsufficientResourcef("%s costs %d AP, %s has %d", spell.Name, spell.APCost, actor.Name, actor.CurrentAP).
			WithMeta("ap_cost", spell.APCost).
			WithMeta("ap_available", actor.CurrentAP)
	}

	scaling := 0
	if spell.ScalingStat != "" {
		scaling, err = s.source.ScalingBonus(ctx, actor.ID, spell.ScalingStat)
		if err != nil {
			return nil, err
		}
	}

	magnitude := spell.FlatBonus + scaling
	rawRoll := 0
	if spell.DiceCount > 0 {
		roll, rollErr := s.roller.Roll(spell.DiceCount, spell.DiceSides, spell.FlatBonus)
		if rollErr != nil {
			return nil, rollErr
		}
		magnitude = roll.Total + scaling
		rawRoll = roll.RawTotal
	}
	if magnitude < 0 {
		magnitude = 0
	}

	// All lookups and rolls succeeded; mutations start here
	actor.SpendAP(spell.APCost)

	result := &ActionResult{
		Action:    ActionCast,
		ActorID:   actor.ID,
		TargetID:  target.ID,
		Success:   true,
		Roll:      rawRoll,
		SpellName: spell.Name,
	}

	switch spell.EffectKind {
	case gamedata.SpellDamage:
		target.ApplyDamage(magnitude)
		result.Damage = magnitude
		state.AddLogEntry(fmt.Sprintf("%s casts %s on %s for %d damage", actor.Name, spell.Name, target.Name, magnitude))
	case gamedata.SpellHealing:
		target.Heal(magnitude)
		result.Healing = magnitude
		state.AddLogEntry(fmt.Sprintf("%s casts %s, healing %s for %d", actor.Name, spell.Name, target.Name, magnitude))
	case gamedata.SpellBuff, gamedata.SpellDebuff:
		effect := spellEffect(spell, magnitude)
		if applyErr := state.ApplyEffect(target.ID, effect); applyErr != nil {
			return nil, applyErr
		}
		state.AddLogEntry(fmt.Sprintf("%s casts %s on %s", actor.Name, spell.Name, target.Name))
	case gamedata.SpellUtility:
		state.AddLogEntry(fmt.Sprintf("%s casts %s", actor.Name, spell.Name))
	default:
		return nil, apperr.Validationf("spell %q has unknown effect kind %q", spell.Name, spell.EffectKind)
	}

	result.Message = fmt.Sprintf("%s cast successfully", spell.Name)
	return result, nil
}

// resolveUtility rolls a d20 against a fixed difficulty. Dodge and Parry
// attach a one-round stance buff on success; Search is purely narrative.
// No action here touches HP.
func (s *service) resolveUtility(ctx context.Context, state *combat.State, actor *combat.Participant, req *ActionRequest) (*ActionResult, error) {
	roll, err := s.roller.Roll(1, 20, 0)
	if err != nil {
		return nil, err
	}

	success := roll.Total >= utilityDifficulty

	if success {
		switch req.Type {
		case ActionDodge:
			if applyErr := state.ApplyEffect(actor.ID, stanceEffect("Active Dodge", "Evasion raised for this round")); applyErr != nil {
				return nil, applyErr
			}
		case ActionParry:
			if applyErr := state.ApplyEffect(actor.ID, stanceEffect("Active Parry", "Deflection raised for this round")); applyErr != nil {
				return nil, applyErr
			}
		}
	}

	outcome := "fails"
	if success {
		outcome = "succeeds"
	}
	state.AddLogEntry(fmt.Sprintf("%s %s at %s (rolled %d)", actor.Name, outcome, req.Type, roll.Total))

	return &ActionResult{
		Action:     req.Type,
		ActorID:    actor.ID,
		Success:    success,
		Roll:       roll.RawTotal,
		Difficulty: utilityDifficulty,
		Message:    fmt.Sprintf("%s %s", req.Type, outcome),
	}, nil
}

// spellEffect converts a buff or debuff spell payload into a timed effect
func spellEffect(spell *gamedata.Spell, magnitude int) *combat.Effect {
	kind := combat.EffectBuff
	if spell.EffectKind == gamedata.SpellDebuff {
		kind = combat.EffectDebuff
	}

	durationKind := combat.DurationRounds
	remaining := spell.Duration
	if remaining <= 0 {
		durationKind = combat.DurationPermanent
		remaining = 0
	}

	return &combat.Effect{
		Name:         spell.Name,
		Kind:         kind,
		Value:        magnitude,
		Remaining:    remaining,
		DurationKind: durationKind,
		Description:  spell.Description,
	}
}

// stanceEffect builds the one-round self buff granted by Dodge and Parry
func stanceEffect(name, description string) *combat.Effect {
	return &combat.Effect{
		Name:         name,
		Kind:         combat.EffectBuff,
		Value:        0,
		Remaining:    1,
		DurationKind: combat.DurationRounds,
		Description:  description,
	}
}
