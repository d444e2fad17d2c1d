package charts

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dietplanner/backend/internal/domain/models"
	"github.com/dietplanner/backend/pkg/errors"
)

var pngMagic = []byte{0x89, 0x50, 0x4E, 0x47}

func TestWeightChart(t *testing.T) {
	records := []models.WeightRecord{
		{Date: "2026-08-20", Weight: 82.5},
		{Date: "2026-08-22", Weight: 81.9},
		{Date: "2026-08-25", Weight: 81.2},
	}

	png, err := NewRenderer().WeightChart(records)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngMagic))
}

func TestWeightChartSingleRecord(t *testing.T) {
	png, err := NewRenderer().WeightChart([]models.WeightRecord{
		{Date: "2026-08-25", Weight: 81.2},
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngMagic))
}

func TestWeightChartEmpty(t *testing.T) {
	_, err := NewRenderer().WeightChart(nil)
	assert.True(t, errors.IsValidation(err))
}

func TestWaterChart(t *testing.T) {
	days := []models.WaterDay{
		{Date: "2026-08-22", Amount: 1800},
		{Date: "2026-08-23", Amount: 0},
		{Date: "2026-08-24", Amount: 2400},
	}

	png, err := NewRenderer().WaterChart(days, 2000)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngMagic))
}

func TestNutritionChart(t *testing.T) {
	totals := models.DailyTotals{Calories: 1850, Protein: 120, Fat: 55, Carbs: 190}

	png, err := NewRenderer().NutritionChart(totals, 2200, 150, 61, 220)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngMagic))
}
