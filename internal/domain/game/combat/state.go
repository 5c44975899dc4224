package combat

import (
	"fmt"
	"sort"
	"time"

	apperr "github.com/hollowmoor/soulsfight/internal/errors"
)

// State is the in-memory state machine for one combat session.
// It is a single-writer structure: the owning service serializes every
// operation, so there is no locking here.
type State struct {
	ID        string                  `json:"id"`
	Active    bool                    `json:"active"`
	Round     int                     `json:"round"`      // starts at 1
	TurnIndex int                     `json:"turn_index"` // 0-based index into TurnOrder
	TurnOrder []string                `json:"turn_order"` // permutation of participant IDs
	Registry  map[string]*Participant `json:"participants"`
	Log       []string                `json:"combat_log"`
	CreatedAt time.Time               `json:"created_at"`
	UpdatedAt time.Time               `json:"updated_at"`

	// lastTickRound guards the per-round effect tick so durations
	// decrement at most once per round number
	lastTickRound int
}

// NewState creates an active combat state with the turn order built from
// the given participants: initiative descending, ties keep input order.
func NewState(id string, participants []*Participant) (*State, error) {
	if len(participants) == 0 {
		return nil, apperr.InvalidArgument("at least one participant is required")
	}

	now := time.Now().UTC()
	s := &State{
		ID:        id,
		Active:    true,
		Round:     1,
		TurnIndex: 0,
		Registry:  make(map[string]*Participant, len(participants)),
		CreatedAt: now,
		UpdatedAt: now,
	}

	ordered := make([]*Participant, len(participants))
	copy(ordered, participants)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Initiative > ordered[j].Initiative
	})

	for _, p := range ordered {
		if p.ID == "" {
			return nil, apperr.InvalidArgument("participant ID is required")
		}
		if _, exists := s.Registry[p.ID]; exists {
			return nil, apperr.InvalidArgumentf("duplicate participant ID %q", p.ID)
		}
		s.Registry[p.ID] = p
		s.TurnOrder = append(s.TurnOrder, p.ID)
	}

	return s, nil
}

// CurrentParticipantID returns the ID of the participant whose turn it is
func (s *State) CurrentParticipantID() string {
	if len(s.TurnOrder) == 0 {
		return ""
	}
	if s.TurnIndex < 0 || s.TurnIndex >= len(s.TurnOrder) {
		panic(fmt.Sprintf("combat: turn index %d out of range for %d slots", s.TurnIndex, len(s.TurnOrder)))
	}
	return s.TurnOrder[s.TurnIndex]
}

// CurrentParticipant returns the participant whose turn it is.
// A turn order entry without a registry entry is a broken invariant and panics.
func (s *State) CurrentParticipant() *Participant {
	id := s.CurrentParticipantID()
	if id == "" {
		return nil
	}
	p, ok := s.Registry[id]
	if !ok {
		panic(fmt.Sprintf("combat: turn order references unknown participant %q", id))
	}
	return p
}

// Participant returns a registered participant by ID
func (s *State) Participant(id string) (*Participant, error) {
	p, ok := s.Registry[id]
	if !ok {
		return nil, apperr.NotFoundf("participant %q is not in this combat", id).
			WithMeta("participant_id", id)
	}
	return p, nil
}

// AdvanceTurn moves to the next slot in the turn order. When the index
// wraps, the round increments and the per-round effect tick runs exactly
// once. Returns the new current participant ID and any effects that
// expired on a round wrap.
func (s *State) AdvanceTurn() (string, []ExpiredEffect) {
	if !s.Active || len(s.TurnOrder) == 0 {
		return "", nil
	}

	if leaving := s.CurrentParticipant(); leaving != nil {
		s.endOfTurn(leaving)
	}

	s.TurnIndex++

	var expired []ExpiredEffect
	if s.TurnIndex >= len(s.TurnOrder) {
		s.TurnIndex = 0
		s.Round++
		expired = s.TickEffects()
	}

	next := s.CurrentParticipant()
	s.startOfTurn(next)
	s.touch()

	return next.ID, expired
}

// endOfTurn records periodic effects still burning on the leaving actor
func (s *State) endOfTurn(p *Participant) {
	for _, e := range p.Effects {
		if e.DurationKind != DurationRounds {
			continue
		}
		switch e.Kind {
		case EffectDamage:
			s.AddLogEntry(fmt.Sprintf("%s is suffering from %s", p.Name, e.Name))
		case EffectHealing:
			s.AddLogEntry(fmt.Sprintf("%s is regenerating from %s", p.Name, e.Name))
		}
	}
}

// startOfTurn resets per-turn flags on the incoming actor
func (s *State) startOfTurn(p *Participant) {
	if p == nil {
		return
	}
	p.Delayed = false
}

// TickEffects applies the per-round effect pass: damage and healing
// effects mutate HP (clamped to [0, max]), round-countdown durations
// decrement, and effects reaching zero are removed and reported.
// Guarded so calling it twice within the same round is a no-op.
func (s *State) TickEffects() []ExpiredEffect {
	if s.lastTickRound >= s.Round {
		return nil
	}
	s.lastTickRound = s.Round

	var expired []ExpiredEffect
	for _, id := range s.TurnOrder {
		p, ok := s.Registry[id]
		if !ok {
			panic(fmt.Sprintf("combat: turn order references unknown participant %q", id))
		}

		kept := p.Effects[:0]
		for _, e := range p.Effects {
			switch e.Kind {
			case EffectDamage:
				p.ApplyDamage(e.Value)
			case EffectHealing:
				p.Heal(e.Value)
			}

			if e.DurationKind != DurationRounds {
				kept = append(kept, e)
				continue
			}

			e.Remaining--
			if e.Remaining > 0 {
				kept = append(kept, e)
			} else {
				expired = append(expired, ExpiredEffect{ParticipantID: id, EffectName: e.Name})
			}
		}
		p.Effects = kept
	}

	if len(expired) > 0 {
		s.touch()
	}
	return expired
}

// ApplyEffect upserts an effect on a participant by name
func (s *State) ApplyEffect(participantID string, effect *Effect) error {
	p, err := s.Participant(participantID)
	if err != nil {
		return err
	}
	if effect == nil || effect.Name == "" {
		return apperr.InvalidArgument("effect name is required")
	}
	if !effect.ValidKind() {
		return apperr.Validationf("unknown effect kind %q", effect.Kind)
	}

	p.UpsertEffect(effect)
	s.touch()
	return nil
}

// RemoveEffect deletes a named effect from a participant
func (s *State) RemoveEffect(participantID, name string) error {
	p, err := s.Participant(participantID)
	if err != nil {
		return err
	}
	if !p.RemoveEffect(name) {
		return apperr.NotFoundf("effect %q is not active on participant %q", name, participantID)
	}
	s.touch()
	return nil
}

// AddParticipant registers a late joiner. The newcomer is appended to the
// end of the rotation; initiative only orders the roster at session start.
func (s *State) AddParticipant(p *Participant) error {
	if p == nil || p.ID == "" {
		return apperr.InvalidArgument("participant ID is required")
	}
	if _, exists := s.Registry[p.ID]; exists {
		return apperr.Conflictf("participant %q is already in this combat", p.ID)
	}

	s.Registry[p.ID] = p
	s.TurnOrder = append(s.TurnOrder, p.ID)
	s.touch()
	return nil
}

// RemoveParticipant drops a participant from the registry and the turn
// order in one step. Removing a slot at or before the current index pulls
// the index back so the next advance neither skips nor repeats anyone.
func (s *State) RemoveParticipant(id string) error {
	if _, ok := s.Registry[id]; !ok {
		return apperr.NotFoundf("participant %q is not in this combat", id)
	}

	slot := s.slotOf(id)
	if slot < 0 {
		panic(fmt.Sprintf("combat: participant %q registered but missing from turn order", id))
	}

	delete(s.Registry, id)
	s.TurnOrder = append(s.TurnOrder[:slot], s.TurnOrder[slot+1:]...)

	if slot <= s.TurnIndex && s.TurnIndex > 0 {
		s.TurnIndex--
	}
	if len(s.TurnOrder) == 0 {
		s.TurnIndex = 0
	}
	s.touch()
	return nil
}

// DelayTurn moves a participant to the end of the current round's
// remaining order. The round never changes and no slot is duplicated.
func (s *State) DelayTurn(actorID string) error {
	if _, ok := s.Registry[actorID]; !ok {
		return apperr.NotFoundf("participant %q is not in this combat", actorID)
	}

	slot := s.slotOf(actorID)
	if slot < 0 {
		panic(fmt.Sprintf("combat: participant %q registered but missing from turn order", actorID))
	}

	s.TurnOrder = append(s.TurnOrder[:slot], s.TurnOrder[slot+1:]...)
	s.TurnOrder = append(s.TurnOrder, actorID)

	// Slots before the current index already acted; pulling one of them
	// out shifts the index left. Delaying the current actor leaves the
	// index pointing at whoever was next.
	if slot < s.TurnIndex {
		s.TurnIndex--
	}
	if s.TurnIndex >= len(s.TurnOrder) {
		s.TurnIndex = 0
	}

	s.Registry[actorID].Delayed = true
	s.AddLogEntry(fmt.Sprintf("%s delays, acting last this round", actorID))
	s.touch()
	return nil
}

// End deactivates the session
func (s *State) End() {
	s.Active = false
	s.touch()
}

// AddLogEntry appends a round-stamped entry to the combat log
func (s *State) AddLogEntry(entry string) {
	s.Log = append(s.Log, fmt.Sprintf("Round %d: %s", s.Round, entry))

	// Keep only the most recent entries to prevent unbounded growth
	if len(s.Log) > 50 {
		s.Log = s.Log[len(s.Log)-50:]
	}
}

func (s *State) slotOf(id string) int {
	for i, entry := range s.TurnOrder {
		if entry == id {
			return i
		}
	}
	return -1
}

func (s *State) touch() {
	s.UpdatedAt = time.Now().UTC()
}
