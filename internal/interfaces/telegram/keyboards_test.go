package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClearDiaryConfirmKeyboard(t *testing.T) {
	kb := clearDiaryConfirmKeyboard("2026-08-28")

	require.Len(t, kb.InlineKeyboard, 1)
	require.Len(t, kb.InlineKeyboard[0], 2)
	assert.Equal(t, "confirm_clear:2026-08-28", kb.InlineKeyboard[0][0].CallbackData)
	assert.Equal(t, "return_to_diary:2026-08-28", kb.InlineKeyboard[0][1].CallbackData)
}

func TestNutritionistKeyboardNavigation(t *testing.T) {
	// first card: only forward
	first := nutritionistKeyboard(0, 3)
	require.Len(t, first.InlineKeyboard, 2)
	require.Len(t, first.InlineKeyboard[0], 1)
	assert.Equal(t, "nutri:1", first.InlineKeyboard[0][0].CallbackData)

	// middle card: both directions
	middle := nutritionistKeyboard(1, 3)
	require.Len(t, middle.InlineKeyboard[0], 2)
	assert.Equal(t, "nutri:0", middle.InlineKeyboard[0][0].CallbackData)
	assert.Equal(t, "nutri:2", middle.InlineKeyboard[0][1].CallbackData)

	// a single card has no nav row
	single := nutritionistKeyboard(0, 1)
	require.Len(t, single.InlineKeyboard, 1)
	assert.Equal(t, "return_to_main", single.InlineKeyboard[0][0].CallbackData)
}
