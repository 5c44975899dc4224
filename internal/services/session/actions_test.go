package session_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hollowmoor/soulsfight/internal/domain/game/combat"
	apperr "github.com/hollowmoor/soulsfight/internal/errors"
	"github.com/hollowmoor/soulsfight/internal/gamedata"
	"github.com/hollowmoor/soulsfight/internal/services/session"
)

func startDuel(t *testing.T, svc session.Service) {
	t.Helper()
	_, err := svc.StartCombat(context.Background(), []*combat.Participant{
		participant("A", 18, 20),
		participant("B", 12, 20),
	})
	require.NoError(t, err)
}

func TestPerformAction_AttackDealsWeaponDamage(t *testing.T) {
	svc, src, roller := newTestService(t)
	ctx := context.Background()
	startDuel(t, svc)

	src.EXPECT().Weapon(gomock.Any(), "A").Return(&gamedata.Weapon{
		Name:       "Longsword",
		DamageType: gamedata.DamageSlashing,
		DiceCount:  1,
		DiceSides:  8,
		FlatBonus:  2,
	}, nil)
	src.EXPECT().Defense(gomock.Any(), "B").Return(0, nil)
	roller.SetRolls([]int{5})

	result, err := svc.PerformAction(ctx, &session.ActionRequest{
		ActorID:  "A",
		Type:     session.ActionAttack,
		TargetID: "B",
	})
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, 7, result.Damage) // 5 rolled + 2 flat
	assert.Equal(t, 5, result.Roll)

	snap, err := svc.GetStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, 13, findParticipant(t, snap, "B").CurrentHP)
}

func TestPerformAction_AttackAddsScalingBonus(t *testing.T) {
	svc, src, roller := newTestService(t)
	ctx := context.Background()
	startDuel(t, svc)

	src.EXPECT().Weapon(gomock.Any(), "A").Return(&gamedata.Weapon{
		Name:        "Claymore",
		DamageType:  gamedata.DamageSlashing,
		DiceCount:   2,
		DiceSides:   6,
		ScalingStat: gamedata.ScalingStrength,
	}, nil)
	src.EXPECT().ScalingBonus(gomock.Any(), "A", gamedata.ScalingStrength).Return(3, nil)
	src.EXPECT().Defense(gomock.Any(), "B").Return(2, nil)
	roller.SetRolls([]int{4, 4})

	result, err := svc.PerformAction(ctx, &session.ActionRequest{
		ActorID:  "A",
		Type:     session.ActionAttack,
		TargetID: "B",
	})
	require.NoError(t, err)
	assert.Equal(t, 9, result.Damage) // 8 rolled + 3 scaling - 2 defense
}

func TestPerformAction_AttackFlooredAtZero(t *testing.T) {
	svc, src, roller := newTestService(t)
	ctx := context.Background()
	startDuel(t, svc)

	src.EXPECT().Weapon(gomock.Any(), "A").Return(&gamedata.Weapon{
		Name:       "Dagger",
		DamageType: gamedata.DamagePiercing,
		DiceCount:  1,
		DiceSides:  4,
	}, nil)
	src.EXPECT().Defense(gomock.Any(), "B").Return(30, nil)
	roller.SetRolls([]int{4})

	result, err := svc.PerformAction(ctx, &session.ActionRequest{
		ActorID:  "A",
		Type:     session.ActionAttack,
		TargetID: "B",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Damage)

	snap, err := svc.GetStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, 20, findParticipant(t, snap, "B").CurrentHP)
}

func TestPerformAction_AttackRequiresTarget(t *testing.T) {
	svc, _, _ := newTestService(t)
	startDuel(t, svc)

	_, err := svc.PerformAction(context.Background(), &session.ActionRequest{
		ActorID: "A",
		Type:    session.ActionAttack,
	})
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
}

func TestPerformAction_AttackUnknownTarget(t *testing.T) {
	svc, _, _ := newTestService(t)
	startDuel(t, svc)

	_, err := svc.PerformAction(context.Background(), &session.ActionRequest{
		ActorID:  "A",
		Type:     session.ActionAttack,
		TargetID: "ghost",
	})
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestPerformAction_CastDamageSpellChargesAP(t *testing.T) {
	svc, src, roller := newTestService(t)
	ctx := context.Background()
	startDuel(t, svc)

	src.EXPECT().Spell(gomock.Any(), "A", "Fireball").Return(&gamedata.Spell{
		Name:       "Fireball",
		EffectKind: gamedata.SpellDamage,
		DamageType: gamedata.DamageFire,
		DiceCount:  2,
		DiceSides:  6,
		APCost:     4,
	}, nil)
	roller.SetRolls([]int{3, 5})

	result, err := svc.PerformAction(ctx, &session.ActionRequest{
		ActorID:   "A",
		Type:      session.ActionCast,
		TargetID:  "B",
		SpellName: "Fireball",
	})
	require.NoError(t, err)
	assert.Equal(t, 8, result.Damage)

	snap, err := svc.GetStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, findParticipant(t, snap, "A").CurrentAP)
	assert.Equal(t, 12, findParticipant(t, snap, "B").CurrentHP)
}

func TestPerformAction_CastInsufficientAPLeavesStateUntouched(t *testing.T) {
	svc, src, _ := newTestService(t)
	ctx := context.Background()
	startDuel(t, svc)

	src.EXPECT().Spell(gomock.Any(), "A", "Wrath").Return(&gamedata.Spell{
		Name:       "Wrath",
		EffectKind: gamedata.SpellDamage,
		DiceCount:  4,
		DiceSides:  8,
		APCost:     25,
	}, nil)

	_, err := svc.PerformAction(ctx, &session.ActionRequest{
		ActorID:   "A",
		Type:      session.ActionCast,
		TargetID:  "B",
		SpellName: "Wrath",
	})
	require.Error(t, err)
	assert.True(t, apperr.IsInsufficientResource(err))
	assert.Equal(t, 25, apperr.GetMeta(err)["ap_cost"])

	snap, err := svc.GetStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, 10, findParticipant(t, snap, "A").CurrentAP)
	assert.Equal(t, 20, findParticipant(t, snap, "B").CurrentHP)
}

func TestPerformAction_CastHealDefaultsToSelf(t *testing.T) {
	svc, src, _ := newTestService(t)
	ctx := context.Background()
	startDuel(t, svc)

	// Wound the caster first so healing is visible
	require.NoError(t, svc.ApplyEffect(ctx, "A", &combat.Effect{
		Name:         "Burn",
		Kind:         combat.EffectDamage,
		Value:        8,
		Remaining:    1,
		DurationKind: combat.DurationRounds,
	}))
	_, err := svc.EndTurn(ctx) // to B
	require.NoError(t, err)
	_, err = svc.EndTurn(ctx) // wraps, Burn ticks A down to 12
	require.NoError(t, err)

	src.EXPECT().Spell(gomock.Any(), "A", "Heal Aid").Return(&gamedata.Spell{
		Name:       "Heal Aid",
		EffectKind: gamedata.SpellHealing,
		FlatBonus:  5,
		APCost:     3,
	}, nil)

	result, err := svc.PerformAction(ctx, &session.ActionRequest{
		ActorID:   "A",
		Type:      session.ActionCast,
		SpellName: "Heal Aid",
	})
	require.NoError(t, err)
	assert.Equal(t, "A", result.TargetID)
	assert.Equal(t, 5, result.Healing)

	snap, err := svc.GetStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, 17, findParticipant(t, snap, "A").CurrentHP)
}

func TestPerformAction_CastBuffAttachesTimedEffect(t *testing.T) {
	svc, src, _ := newTestService(t)
	ctx := context.Background()
	startDuel(t, svc)

	src.EXPECT().Spell(gomock.Any(), "A", "Sacred Oath").Return(&gamedata.Spell{
		Name:        "Sacred Oath",
		EffectKind:  gamedata.SpellBuff,
		FlatBonus:   2,
		APCost:      5,
		Duration:    3,
		Description: "Raises attack rolls",
	}, nil)

	_, err := svc.PerformAction(ctx, &session.ActionRequest{
		ActorID:   "A",
		Type:      session.ActionCast,
		TargetID:  "B",
		SpellName: "Sacred Oath",
	})
	require.NoError(t, err)

	snap, err := svc.GetStatus(ctx)
	require.NoError(t, err)
	b := findParticipant(t, snap, "B")
	require.Len(t, b.Effects, 1)
	assert.Equal(t, "Sacred Oath", b.Effects[0].Name)
	assert.Equal(t, combat.EffectBuff, b.Effects[0].Kind)
	assert.Equal(t, 2, b.Effects[0].Value)
	assert.Equal(t, 3, b.Effects[0].Remaining)
	assert.Equal(t, combat.DurationRounds, b.Effects[0].DurationKind)
}

func TestPerformAction_BuffRaisesAttackRolls(t *testing.T) {
	svc, src, roller := newTestService(t)
	ctx := context.Background()
	startDuel(t, svc)

	require.NoError(t, svc.ApplyEffect(ctx, "A", &combat.Effect{
		Name:         "Sacred Oath",
		Kind:         combat.EffectBuff,
		Value:        2,
		Remaining:    3,
		DurationKind: combat.DurationRounds,
	}))

	src.EXPECT().Weapon(gomock.Any(), "A").Return(&gamedata.Weapon{
		Name:       "Mace",
		DamageType: gamedata.DamageBludgeoning,
		DiceCount:  1,
		DiceSides:  6,
	}, nil)
	src.EXPECT().Defense(gomock.Any(), "B").Return(0, nil)
	roller.SetRolls([]int{4})

	result, err := svc.PerformAction(ctx, &session.ActionRequest{
		ActorID:  "A",
		Type:     session.ActionAttack,
		TargetID: "B",
	})
	require.NoError(t, err)
	assert.Equal(t, 6, result.Damage) // 4 rolled + 2 buff
}

func TestPerformAction_DodgeSuccessAttachesStance(t *testing.T) {
	svc, _, roller := newTestService(t)
	ctx := context.Background()
	startDuel(t, svc)

	roller.SetRolls([]int{14})

	result, err := svc.PerformAction(ctx, &session.ActionRequest{
		ActorID: "A",
		Type:    session.ActionDodge,
	})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 10, result.Difficulty)

	snap, err := svc.GetStatus(ctx)
	require.NoError(t, err)
	a := findParticipant(t, snap, "A")
	require.Len(t, a.Effects, 1)
	assert.Equal(t, "Active Dodge", a.Effects[0].Name)
	assert.Equal(t, 1, a.Effects[0].Remaining)
}

func TestPerformAction_ParryFailureLeavesNoEffect(t *testing.T) {
	svc, _, roller := newTestService(t)
	ctx := context.Background()
	startDuel(t, svc)

	roller.SetRolls([]int{3})

	result, err := svc.PerformAction(ctx, &session.ActionRequest{
		ActorID: "A",
		Type:    session.ActionParry,
	})
	require.NoError(t, err)
	assert.False(t, result.Success)

	snap, err := svc.GetStatus(ctx)
	require.NoError(t, err)
	assert.Empty(t, findParticipant(t, snap, "A").Effects)
}

func TestPerformAction_SearchNeverAttachesEffects(t *testing.T) {
	svc, _, roller := newTestService(t)
	ctx := context.Background()
	startDuel(t, svc)

	roller.SetRolls([]int{20})

	result, err := svc.PerformAction(ctx, &session.ActionRequest{
		ActorID: "A",
		Type:    session.ActionSearch,
	})
	require.NoError(t, err)
	assert.True(t, result.Success)

	snap, err := svc.GetStatus(ctx)
	require.NoError(t, err)
	assert.Empty(t, findParticipant(t, snap, "A").Effects)
}
