package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/dietplanner/backend/internal/domain/models"
	"github.com/dietplanner/backend/internal/domain/ports"
	"github.com/dietplanner/backend/pkg/errors"
)

// errDisabled reports that an optional external integration has no credentials
var errDisabled = fmt.Errorf("integration is not configured")

// FoodService wraps the food data provider with RU/EN translation.
// Users write in Russian, the provider speaks English.
type FoodService struct {
	provider   ports.FoodDataProvider
	translator ports.Translator
	log        *zap.Logger
}

func NewFoodService(provider ports.FoodDataProvider, translator ports.Translator, log *zap.Logger) *FoodService {
	return &FoodService{provider: provider, translator: translator, log: log}
}

// Enabled reports whether a food data provider is configured
func (s *FoodService) Enabled() bool {
	return s.provider != nil
}

// Search looks up foods by a Russian free-text query
func (s *FoodService) Search(ctx context.Context, query string) ([]models.Food, error) {
	if s.provider == nil {
		return nil, errors.NewExternalError("nutritionix", errDisabled)
	}

	foods, err := s.provider.Search(ctx, s.toEnglish(ctx, query))
	if err != nil {
		return nil, err
	}
	for i := range foods {
		foods[i].Name = s.toRussian(ctx, foods[i].Name)
	}
	return foods, nil
}

// NaturalEntry is a parsed natural-language meal: the combined
// nutrients of everything mentioned in the text
type NaturalEntry struct {
	Description string
	Calories    float64
	Protein     float64
	Fat         float64
	Carbs       float64
}

// ParseNaturalText resolves "2 яйца и тост" into one combined entry
func (s *FoodService) ParseNaturalText(ctx context.Context, text string) (*NaturalEntry, error) {
	if s.provider == nil {
		return nil, errors.NewExternalError("nutritionix", errDisabled)
	}

	foods, err := s.provider.NaturalNutrients(ctx, s.toEnglish(ctx, text))
	if err != nil {
		return nil, err
	}
	if len(foods) == 0 {
		return nil, errors.NewNotFoundError("food", text)
	}

	entry := &NaturalEntry{}
	names := make([]string, 0, len(foods))
	for _, f := range foods {
		entry.Calories += f.Calories
		entry.Protein += f.Protein
		entry.Fat += f.Fat
		entry.Carbs += f.Carbs
		names = append(names, s.toRussian(ctx, f.Name))
	}
	entry.Description = strings.Join(names, ", ")
	return entry, nil
}

// BrandedItem fetches nutrients for a branded search result
func (s *FoodService) BrandedItem(ctx context.Context, itemID string) (*models.Food, error) {
	if s.provider == nil {
		return nil, errors.NewExternalError("nutritionix", errDisabled)
	}

	food, err := s.provider.BrandedItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	food.Name = s.toRussian(ctx, food.Name)
	return food, nil
}

// toEnglish translates best-effort: on failure the original text is
// sent to the provider as-is
func (s *FoodService) toEnglish(ctx context.Context, text string) string {
	if s.translator == nil {
		return text
	}
	translated, err := s.translator.Translate(ctx, text, "auto", "en")
	if err != nil {
		s.log.Warn("translation to english failed", zap.Error(err))
		return text
	}
	return translated
}

func (s *FoodService) toRussian(ctx context.Context, text string) string {
	if s.translator == nil {
		return text
	}
	translated, err := s.translator.Translate(ctx, text, "en", "ru")
	if err != nil {
		s.log.Warn("translation to russian failed", zap.Error(err))
		return text
	}
	return translated
}
