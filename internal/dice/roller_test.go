package dice_test

import (
	"testing"

	"github.com/hollowmoor/soulsfight/internal/dice"
	mockdice "github.com/hollowmoor/soulsfight/internal/dice/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeededRoller_Reproducible(t *testing.T) {
	a := dice.NewSeededRoller(42)
	b := dice.NewSeededRoller(42)

	for i := 0; i < 20; i++ {
		ra, err := a.Roll(2, 8, 1)
		require.NoError(t, err)
		rb, err := b.Roll(2, 8, 1)
		require.NoError(t, err)
		assert.Equal(t, ra.Total, rb.Total)
		assert.Equal(t, ra.Rolls, rb.Rolls)
	}
}

func TestRoll_Bounds(t *testing.T) {
	r := dice.NewSeededRoller(7)

	for i := 0; i < 100; i++ {
		result, err := r.Roll(3, 6, 0)
		require.NoError(t, err)
		assert.Len(t, result.Rolls, 3)
		for _, roll := range result.Rolls {
			assert.GreaterOrEqual(t, roll, 1)
			assert.LessOrEqual(t, roll, 6)
		}
		assert.Equal(t, result.RawTotal, result.Total)
	}
}

func TestRoll_BonusApplied(t *testing.T) {
	r := dice.NewSeededRoller(1)

	result, err := r.Roll(1, 8, 5)
	require.NoError(t, err)
	assert.Equal(t, result.RawTotal+5, result.Total)
	assert.Equal(t, 5, result.Bonus)
}

func TestRoll_InvalidInput(t *testing.T) {
	r := dice.NewRandomRoller()

	_, err := r.Roll(0, 6, 0)
	assert.Error(t, err)

	_, err = r.Roll(1, 0, 0)
	assert.Error(t, err)
}

func TestManualMockRoller_ReturnsSetRolls(t *testing.T) {
	m := mockdice.NewManualMockRoller()
	m.SetRolls([]int{5, 3})

	result, err := m.Roll(2, 8, 2)
	require.NoError(t, err)
	assert.Equal(t, 10, result.Total)
	assert.Equal(t, []int{5, 3}, result.Rolls)

	// Exhausted rolls should error
	_, err = m.Roll(1, 8, 0)
	assert.Error(t, err)
}

func TestManualMockRoller_CritAndFumble(t *testing.T) {
	m := mockdice.NewManualMockRoller()
	m.SetRolls([]int{20, 1})

	crit, err := m.Roll(1, 20, 0)
	require.NoError(t, err)
	assert.True(t, crit.IsCrit)

	fumble, err := m.Roll(1, 20, 0)
	require.NoError(t, err)
	assert.True(t, fumble.IsFumble)
}
