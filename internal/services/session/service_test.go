package session_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mockdice "github.com/hollowmoor/soulsfight/internal/dice/mock"
	"github.com/hollowmoor/soulsfight/internal/domain/game/combat"
	apperr "github.com/hollowmoor/soulsfight/internal/errors"
	mockgamedata "github.com/hollowmoor/soulsfight/internal/gamedata/mock"
	"github.com/hollowmoor/soulsfight/internal/services/session"
	mockuuid "github.com/hollowmoor/soulsfight/internal/uuid/mocks"
)

func participant(id string, initiative, hp int) *combat.Participant {
	return &combat.Participant{
		ID:         id,
		Name:       id,
		IsPlayer:   true,
		Initiative: initiative,
		CurrentHP:  hp,
		MaxHP:      hp,
		CurrentAP:  10,
		MaxAP:      10,
	}
}

func newTestService(t *testing.T) (session.Service, *mockgamedata.MockSource, *mockdice.ManualMockRoller) {
	t.Helper()
	ctrl := gomock.NewController(t)

	src := mockgamedata.NewMockSource(ctrl)
	roller := mockdice.NewManualMockRoller()
	gen := mockuuid.NewMockGenerator(ctrl)
	gen.EXPECT().New().Return("session-1").AnyTimes()

	svc := session.NewService(&session.ServiceConfig{
		Source:        src,
		Roller:        roller,
		UUIDGenerator: gen,
	})
	return svc, src, roller
}

func TestStartCombat_BuildsOrderAndReturnsSessionID(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	id, err := svc.StartCombat(ctx, []*combat.Participant{
		participant("A", 18, 20),
		participant("B", 12, 20),
	})
	require.NoError(t, err)
	assert.Equal(t, "session-1", id)

	snap, err := svc.GetStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, snap.TurnOrder)
	assert.Equal(t, 1, snap.Round)
	assert.Equal(t, 0, snap.TurnIndex)
	assert.Equal(t, "A", snap.CurrentParticipant)
}

func TestStartCombat_SecondStartConflicts(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.StartCombat(ctx, []*combat.Participant{participant("A", 18, 20)})
	require.NoError(t, err)

	_, err = svc.StartCombat(ctx, []*combat.Participant{participant("B", 12, 20)})
	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))

	// First session is untouched
	snap, err := svc.GetStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, snap.TurnOrder)
}

func TestStartCombat_ValidatesHP(t *testing.T) {
	svc, _, _ := newTestService(t)

	bad := participant("A", 18, 20)
	bad.CurrentHP = 25

	_, err := svc.StartCombat(context.Background(), []*combat.Participant{bad})
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
}

func TestStartCombat_AllowedAfterEnd(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.StartCombat(ctx, []*combat.Participant{participant("A", 18, 20)})
	require.NoError(t, err)
	require.NoError(t, svc.EndCombat(ctx))

	_, err = svc.StartCombat(ctx, []*combat.Participant{participant("B", 12, 20)})
	require.NoError(t, err)
}

func TestGetStatus_NotActive(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.GetStatus(context.Background())
	require.Error(t, err)
	assert.True(t, apperr.IsNotActive(err))
}

func TestEndCombat_NotActive(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	err := svc.EndCombat(ctx)
	require.Error(t, err)
	assert.True(t, apperr.IsNotActive(err))

	_, err = svc.StartCombat(ctx, []*combat.Participant{participant("A", 18, 20)})
	require.NoError(t, err)
	require.NoError(t, svc.EndCombat(ctx))

	err = svc.EndCombat(ctx)
	require.Error(t, err)
	assert.True(t, apperr.IsNotActive(err))
}

func TestPerformAction_OutOfTurnIsNoOp(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.StartCombat(ctx, []*combat.Participant{
		participant("A", 18, 20),
		participant("B", 12, 20),
	})
	require.NoError(t, err)

	_, err = svc.PerformAction(ctx, &session.ActionRequest{
		ActorID:  "B",
		Type:     session.ActionAttack,
		TargetID: "A",
	})
	require.Error(t, err)
	assert.True(t, apperr.IsInvalidTurn(err))

	// No HP or effect state changed
	snap, err := svc.GetStatus(ctx)
	require.NoError(t, err)
	for _, p := range snap.Participants {
		assert.Equal(t, 20, p.CurrentHP)
		assert.Empty(t, p.Effects)
	}
}

func TestPerformAction_UnknownActor(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.StartCombat(ctx, []*combat.Participant{participant("A", 18, 20)})
	require.NoError(t, err)

	_, err = svc.PerformAction(ctx, &session.ActionRequest{ActorID: "ghost", Type: session.ActionAttack})
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestPerformAction_UnknownActionType(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.StartCombat(ctx, []*combat.Participant{participant("A", 18, 20)})
	require.NoError(t, err)

	_, err = svc.PerformAction(ctx, &session.ActionRequest{ActorID: "A", Type: "Taunt"})
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
}

func TestEndTurn_AdvancesAndReportsRound(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.StartCombat(ctx, []*combat.Participant{
		participant("A", 18, 20),
		participant("B", 12, 20),
	})
	require.NoError(t, err)

	info, err := svc.EndTurn(ctx)
	require.NoError(t, err)
	assert.Equal(t, "B", info.CurrentParticipant)
	assert.Equal(t, 1, info.Round)

	info, err = svc.EndTurn(ctx)
	require.NoError(t, err)
	assert.Equal(t, "A", info.CurrentParticipant)
	assert.Equal(t, 2, info.Round)
}

func TestEndTurn_ReportsExpiredEffects(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.StartCombat(ctx, []*combat.Participant{participant("A", 18, 20)})
	require.NoError(t, err)

	require.NoError(t, svc.ApplyEffect(ctx, "A", &combat.Effect{
		Name:         "Bleed",
		Kind:         combat.EffectDamage,
		Value:        2,
		Remaining:    1,
		DurationKind: combat.DurationRounds,
	}))

	info, err := svc.EndTurn(ctx)
	require.NoError(t, err)
	require.Len(t, info.ExpiredEffects, 1)
	assert.Equal(t, "Bleed", info.ExpiredEffects[0].EffectName)
}

func TestUpdateEffects_RequiresActiveSession(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.UpdateEffects(context.Background())
	require.Error(t, err)
	assert.True(t, apperr.IsNotActive(err))
}

func TestUpdateEffects_SecondCallSameRoundIsNoOp(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.StartCombat(ctx, []*combat.Participant{participant("A", 18, 20)})
	require.NoError(t, err)

	require.NoError(t, svc.ApplyEffect(ctx, "A", &combat.Effect{
		Name:         "Poison",
		Kind:         combat.EffectDamage,
		Value:        3,
		Remaining:    2,
		DurationKind: combat.DurationRounds,
	}))

	_, err = svc.UpdateEffects(ctx)
	require.NoError(t, err)
	_, err = svc.UpdateEffects(ctx)
	require.NoError(t, err)

	snap, err := svc.GetStatus(ctx)
	require.NoError(t, err)
	a := findParticipant(t, snap, "A")
	assert.Equal(t, 17, a.CurrentHP) // ticked once, not twice
	require.Len(t, a.Effects, 1)
	assert.Equal(t, 1, a.Effects[0].Remaining)
}

func TestDelayTurn_RequiresKnownActor(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.StartCombat(ctx, []*combat.Participant{participant("A", 18, 20)})
	require.NoError(t, err)

	err = svc.DelayTurn(ctx, "ghost")
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestAddAndRemoveParticipant_RequireActiveSession(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	err := svc.AddParticipant(ctx, participant("A", 18, 20))
	require.Error(t, err)
	assert.True(t, apperr.IsNotActive(err))

	err = svc.RemoveParticipant(ctx, "A")
	require.Error(t, err)
	assert.True(t, apperr.IsNotActive(err))
}

// findParticipant pulls a participant view out of a snapshot by ID
func findParticipant(t *testing.T, snap *session.Snapshot, id string) combat.Participant {
	t.Helper()
	for _, p := range snap.Participants {
		if p.ID == id {
			return p
		}
	}
	t.Fatalf("participant %q not in snapshot", id)
	return combat.Participant{}
}
