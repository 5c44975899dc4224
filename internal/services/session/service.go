package session

//go:generate mockgen -destination=mock/mock_service.go -package=mocksession -source=service.go

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hollowmoor/soulsfight/internal/dice"
	"github.com/hollowmoor/soulsfight/internal/domain/game/combat"
	apperr "github.com/hollowmoor/soulsfight/internal/errors"
	"github.com/hollowmoor/soulsfight/internal/gamedata"
	"github.com/hollowmoor/soulsfight/internal/uuid"
)

// Service is the boundary the surrounding transport layer calls into.
// One combat session may be active process-wide; every operation is a
// synchronous, serialized transition over that session's state.
type Service interface {
	// StartCombat begins a session with the given participants
	StartCombat(ctx context.Context, participants []*combat.Participant) (string, error)

	// GetStatus returns a read-only projection of the active session
	GetStatus(ctx context.Context) (*Snapshot, error)

	// AddParticipant registers a late joiner in the active session
	AddParticipant(ctx context.Context, p *combat.Participant) error

	// RemoveParticipant drops a participant from the active session
	RemoveParticipant(ctx context.Context, id string) error

	// ApplyEffect upserts a named effect on a participant
	ApplyEffect(ctx context.Context, participantID string, effect *combat.Effect) error

	// RemoveEffect deletes a named effect from a participant
	RemoveEffect(ctx context.Context, participantID, name string) error

	// UpdateEffects runs the per-round effect tick, at most once per round
	UpdateEffects(ctx context.Context) ([]combat.ExpiredEffect, error)

	// PerformAction resolves an action for the current turn's participant
	PerformAction(ctx context.Context, req *ActionRequest) (*ActionResult, error)

	// DelayTurn moves a participant to the end of the current round
	DelayTurn(ctx context.Context, actorID string) error

	// EndTurn advances to the next participant
	EndTurn(ctx context.Context) (*TurnInfo, error)

	// EndCombat terminates the active session
	EndCombat(ctx context.Context) error
}

// Snapshot is a read-only projection of the session state
type Snapshot struct {
	SessionID          string               `json:"session_id"`
	Active             bool                 `json:"active"`
	Round              int                  `json:"round"`
	TurnIndex          int                  `json:"turn_index"`
	TurnOrder          []string             `json:"turn_order"`
	CurrentParticipant string               `json:"current_participant"`
	Participants       []combat.Participant `json:"participants"`
	Log                []string             `json:"combat_log"`
	CreatedAt          time.Time            `json:"created_at"`
	UpdatedAt          time.Time            `json:"updated_at"`
}

// TurnInfo describes the state after a turn advance
type TurnInfo struct {
	CurrentParticipant string                 `json:"current_participant"`
	Round              int                    `json:"round"`
	TurnIndex          int                    `json:"turn_index"`
	ExpiredEffects     []combat.ExpiredEffect `json:"expired_effects,omitempty"`
}

type service struct {
	mu sync.Mutex

	state *combat.State

	source        gamedata.Source
	roller        dice.Roller
	uuidGenerator uuid.Generator
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Source        gamedata.Source
	Roller        dice.Roller
	UUIDGenerator uuid.Generator
}

// NewService creates a new combat service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil || cfg.Source == nil {
		panic("game data source is required")
	}

	svc := &service{
		source:        cfg.Source,
		roller:        cfg.Roller,
		uuidGenerator: cfg.UUIDGenerator,
	}
	if svc.roller == nil {
		svc.roller = dice.NewRandomRoller()
	}
	if svc.uuidGenerator == nil {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}

	return svc
}

// activeState returns the session state, or a NotActive error.
// Callers must hold the mutex.
func (s *service) activeState() (*combat.State, error) {
	if s.state == nil || !s.state.Active {
		return nil, apperr.NotActive("no combat in progress")
	}
	return s.state, nil
}

func (s *service) StartCombat(ctx context.Context, participants []*combat.Participant) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != nil && s.state.Active {
		return "", apperr.Conflictf("combat %s is already in progress", s.state.ID).
			WithMeta("session_id", s.state.ID)
	}

	for _, p := range participants {
		if p == nil {
			return "", apperr.InvalidArgument("participant cannot be nil")
		}
		if p.MaxHP < 1 {
			return "", apperr.Validationf("participant %q needs a positive max HP", p.ID)
		}
		if p.CurrentHP < 0 || p.CurrentHP > p.MaxHP {
			return "", apperr.Validationf("participant %q current HP %d outside [0, %d]", p.ID, p.CurrentHP, p.MaxHP)
		}
	}

	state, err := combat.NewState(s.uuidGenerator.New(), participants)
	if err != nil {
		return "", err
	}
	s.state = state

	log.Info().
		Str("session_id", state.ID).
		Int("participants", len(participants)).
		Strs("turn_order", state.TurnOrder).
		Msg("combat started")

	return state.ID, nil
}

func (s *service) GetStatus(ctx context.Context) (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.activeState()
	if err != nil {
		return nil, err
	}
	return snapshot(state), nil
}

func (s *service) AddParticipant(ctx context.Context, p *combat.Participant) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.activeState()
	if err != nil {
		return err
	}
	if err := state.AddParticipant(p); err != nil {
		return err
	}

	log.Info().Str("session_id", state.ID).Str("participant_id", p.ID).Msg("participant joined combat")
	return nil
}

func (s *service) RemoveParticipant(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.activeState()
	if err != nil {
		return err
	}
	if err := state.RemoveParticipant(id); err != nil {
		return err
	}

	log.Info().Str("session_id", state.ID).Str("participant_id", id).Msg("participant left combat")
	return nil
}

func (s *service) ApplyEffect(ctx context.Context, participantID string, effect *combat.Effect) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.activeState()
	if err != nil {
		return err
	}
	return state.ApplyEffect(participantID, effect)
}

func (s *service) RemoveEffect(ctx context.Context, participantID, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.activeState()
	if err != nil {
		return err
	}
	return state.RemoveEffect(participantID, name)
}

func (s *service) UpdateEffects(ctx context.Context) ([]combat.ExpiredEffect, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.activeState()
	if err != nil {
		return nil, err
	}
	return state.TickEffects(), nil
}

func (s *service) DelayTurn(ctx context.Context, actorID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.activeState()
	if err != nil {
		return err
	}
	return state.DelayTurn(actorID)
}

func (s *service) EndTurn(ctx context.Context) (*TurnInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.activeState()
	if err != nil {
		return nil, err
	}

	next, expired := state.AdvanceTurn()

	log.Debug().
		Str("session_id", state.ID).
		Str("current_participant", next).
		Int("round", state.Round).
		Msg("turn advanced")

	return &TurnInfo{
		CurrentParticipant: next,
		Round:              state.Round,
		TurnIndex:          state.TurnIndex,
		ExpiredEffects:     expired,
	}, nil
}

func (s *service) EndCombat(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.activeState()
	if err != nil {
		return err
	}

	state.End()
	log.Info().Str("session_id", state.ID).Msg("combat ended")
	return nil
}

// snapshot deep-copies the session state so callers can never reach the
// live participants
func snapshot(state *combat.State) *Snapshot {
	snap := &Snapshot{
		SessionID:          state.ID,
		Active:             state.Active,
		Round:              state.Round,
		TurnIndex:          state.TurnIndex,
		TurnOrder:          append([]string(nil), state.TurnOrder...),
		CurrentParticipant: state.CurrentParticipantID(),
		Log:                append([]string(nil), state.Log...),
		CreatedAt:          state.CreatedAt,
		UpdatedAt:          state.UpdatedAt,
	}

	for _, id := range state.TurnOrder {
		p, err := state.Participant(id)
		if err != nil {
			continue
		}
		view := *p
		view.Effects = make([]*combat.Effect, len(p.Effects))
		for i, e := range p.Effects {
			copied := *e
			view.Effects[i] = &copied
		}
		snap.Participants = append(snap.Participants, view)
	}

	return snap
}
