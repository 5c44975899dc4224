package character_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mockdice "github.com/hollowmoor/soulsfight/internal/dice/mock"
	"github.com/hollowmoor/soulsfight/internal/domain/character"
	apperr "github.com/hollowmoor/soulsfight/internal/errors"
	"github.com/hollowmoor/soulsfight/internal/gamedata"
	"github.com/hollowmoor/soulsfight/internal/repositories/characters"
	mockitems "github.com/hollowmoor/soulsfight/internal/repositories/items/mock"
	charsvc "github.com/hollowmoor/soulsfight/internal/services/character"
)

func newTestService(t *testing.T) (charsvc.Service, characters.Repository, *mockitems.MockRepository, *mockdice.ManualMockRoller) {
	t.Helper()
	ctrl := gomock.NewController(t)

	repo := characters.NewInMemoryRepository()
	catalogItems := mockitems.NewMockRepository(ctrl)
	roller := mockdice.NewManualMockRoller()

	svc := charsvc.NewService(&charsvc.ServiceConfig{
		Repository: repo,
		Items:      catalogItems,
		Roller:     roller,
	})
	return svc, repo, catalogItems, roller
}

func validCharacter() *character.Character {
	return &character.Character{
		Name:     "Solaire",
		IsPlayer: true,
		Level:    12,
		Stats: map[character.StatName]*character.Stat{
			character.StatStrength:  {Value: 14, Modifier: 2},
			character.StatDexterity: {Value: 12, Modifier: 1},
		},
		HP: character.Resource{Current: 24, Max: 30},
		AP: character.Resource{Current: 8, Max: 10},
	}
}

func TestCreate_HappyPath(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	created, err := svc.Create(context.Background(), validCharacter())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Solaire", created.Name)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestCreate_Validation(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	noName := validCharacter()
	noName.Name = "   "
	_, err := svc.Create(ctx, noName)
	assert.True(t, apperr.IsValidation(err))

	badStat := validCharacter()
	badStat.Stats[character.StatStrength].Value = 120
	_, err = svc.Create(ctx, badStat)
	assert.True(t, apperr.IsValidation(err))

	badHP := validCharacter()
	badHP.HP.Current = 40
	_, err = svc.Create(ctx, badHP)
	assert.True(t, apperr.IsValidation(err))

	noHP := validCharacter()
	noHP.HP = character.Resource{}
	_, err = svc.Create(ctx, noHP)
	assert.True(t, apperr.IsValidation(err))
}

func TestUpdate_RequiresID(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	_, err := svc.Update(context.Background(), validCharacter())
	require.Error(t, err)
	assert.True(t, apperr.IsInvalidArgument(err))
}

func TestUpdateAndDelete_RoundTrip(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validCharacter())
	require.NoError(t, err)

	created.Level = 13
	updated, err := svc.Update(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, 13, updated.Level)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.Get(ctx, created.ID)
	assert.True(t, apperr.IsNotFound(err))
}

func TestEquip_ValidatesAgainstCatalog(t *testing.T) {
	svc, _, catalogItems, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validCharacter())
	require.NoError(t, err)

	catalogItems.EXPECT().GetWeapon(gomock.Any(), "Longsword").Return(&gamedata.Weapon{Name: "Longsword"}, nil)

	equipped, err := svc.Equip(ctx, created.ID, "Longsword", character.SlotRightHand)
	require.NoError(t, err)
	assert.Equal(t, "Longsword", equipped.EquippedItem(character.SlotRightHand))
}

func TestEquip_UnknownCatalogItem(t *testing.T) {
	svc, _, catalogItems, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validCharacter())
	require.NoError(t, err)

	catalogItems.EXPECT().GetSpell(gomock.Any(), "Wrath of the Gods").
		Return(nil, apperr.NotFound("spell not found"))

	_, err = svc.Equip(ctx, created.ID, "Wrath of the Gods", character.SlotSpell1)
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestEquip_UnknownSlot(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validCharacter())
	require.NoError(t, err)

	_, err = svc.Equip(ctx, created.ID, "Longsword", character.Slot("tail"))
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
}

func TestCombatant_RollsInitiative(t *testing.T) {
	svc, _, _, roller := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, validCharacter())
	require.NoError(t, err)

	roller.SetRolls([]int{15})

	combatant, err := svc.Combatant(ctx, created.ID)
	require.NoError(t, err)

	assert.Equal(t, created.ID, combatant.ID)
	assert.Equal(t, 16, combatant.Initiative) // d20 roll 15 + DEX modifier 1
	assert.Equal(t, 24, combatant.CurrentHP)
	assert.Equal(t, 30, combatant.MaxHP)
	assert.Equal(t, 8, combatant.CurrentAP)
	assert.True(t, combatant.IsPlayer)
}

func TestCombatant_UnknownCharacter(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	_, err := svc.Combatant(context.Background(), "ghost")
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}
