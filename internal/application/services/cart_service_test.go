package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIngredients(t *testing.T) {
	text := "Куриная грудка - 150 г\nЛистья салата - 80 г\nОливковое масло - 1 ст.л.\nСоль, перец - по вкусу"

	products := ParseIngredients(text)

	require.Contains(t, products, "Куриная грудка")
	assert.InDelta(t, 150, products["Куриная грудка"].Quantity, 0.001)
	assert.Equal(t, "г", products["Куриная грудка"].Unit)

	// spoons convert to approximate grams
	require.Contains(t, products, "Оливковое масло")
	assert.InDelta(t, 15, products["Оливковое масло"].Quantity, 0.001)
	assert.Equal(t, "г", products["Оливковое масло"].Unit)

	// unparseable lines become a placeholder amount
	require.Contains(t, products, "Соль, перец - по вкусу")
	assert.InDelta(t, 100, products["Соль, перец - по вкусу"].Quantity, 0.001)
}

func TestParseIngredientsUnitConversion(t *testing.T) {
	products := ParseIngredients("Картофель - 1.5 кг\nМолоко - 1 л\nМед - 2 ч.л.")

	assert.InDelta(t, 1500, products["Картофель"].Quantity, 0.001)
	assert.Equal(t, "г", products["Картофель"].Unit)

	assert.InDelta(t, 1000, products["Молоко"].Quantity, 0.001)
	assert.Equal(t, "мл", products["Молоко"].Unit)

	assert.InDelta(t, 10, products["Мед"].Quantity, 0.001)
	assert.Equal(t, "г", products["Мед"].Unit)
}

func TestParseIngredientsBulletsAndMerging(t *testing.T) {
	products := ParseIngredients("• Яйца - 2 шт\n- Яйца - 3 шт")

	require.Contains(t, products, "Яйца")
	assert.InDelta(t, 5, products["Яйца"].Quantity, 0.001)
	assert.Equal(t, "шт", products["Яйца"].Unit)
}

func TestParseIngredientsQuantityFirst(t *testing.T) {
	products := ParseIngredients("200 г творога")

	require.Contains(t, products, "Творога")
	assert.InDelta(t, 200, products["Творога"].Quantity, 0.001)
}

func TestParseIngredientsEmpty(t *testing.T) {
	assert.Empty(t, ParseIngredients(""))
	assert.Empty(t, ParseIngredients("\n\n"))
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Куриная грудка", capitalize("куриная ГРУДКА"))
	assert.Equal(t, "", capitalize("  "))
}
