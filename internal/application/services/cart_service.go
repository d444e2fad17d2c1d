package services

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"github.com/dietplanner/backend/internal/domain/models"
	"github.com/dietplanner/backend/internal/infrastructure/persistence"
	"github.com/dietplanner/backend/pkg/errors"
	"github.com/dietplanner/backend/pkg/utils"
)

// CartService builds and manages the shopping list
type CartService struct {
	cart    *persistence.CartRepository
	plans   *persistence.MealPlanRepository
	diary   *persistence.DiaryRepository
	recipes *persistence.RecipeRepository
	log     *zap.Logger
}

func NewCartService(cart *persistence.CartRepository, plans *persistence.MealPlanRepository, diary *persistence.DiaryRepository, recipes *persistence.RecipeRepository, log *zap.Logger) *CartService {
	return &CartService{cart: cart, plans: plans, diary: diary, recipes: recipes, log: log}
}

// product is an aggregated shopping list line before persistence
type product struct {
	Quantity float64
	Unit     string
}

var (
	bulletRe = regexp.MustCompile(`^[•\-*]\s*`)
	// "Продукт - 150 г" and "Продукт 150 г"
	nameFirstDashRe = regexp.MustCompile(`(?i)^(\D.*?)\s*[-–—]\s*(\d+(?:[.,]\d+)?)\s*(г|кг|мл|л|шт|ст\.л\.?|ч\.л\.?)`)
	nameFirstRe     = regexp.MustCompile(`(?i)^(\D.*?)\s*(\d+(?:[.,]\d+)?)\s*(г|кг|мл|л|шт|ст\.л\.?|ч\.л\.?)`)
	// "150 г продукта"
	quantityFirstRe = regexp.MustCompile(`(?i)^(\d+(?:[.,]\d+)?)\s*(г|кг|мл|л|шт|ст\.л\.?|ч\.л\.?)\s*(.+)`)
)

// Generate builds the cart from meal plans and diary entries over the
// next N days, replacing the previous cart
func (s *CartService) Generate(ctx context.Context, userID int64, days int) ([]models.CartItem, error) {
	if days < 1 || days > 14 {
		return nil, errors.NewValidationError("days", "период должен быть от 1 до 14 дней")
	}

	all := make(map[string]*product)
	order := make([]string, 0)

	addProduct := func(name string, p product) {
		existing, ok := all[name]
		if !ok {
			cp := p
			all[name] = &cp
			order = append(order, name)
			return
		}
		if existing.Unit == p.Unit {
			existing.Quantity += p.Quantity
			return
		}
		// incompatible units get their own line
		alt := name + " (" + p.Unit + ")"
		if altExisting, ok := all[alt]; ok && altExisting.Unit == p.Unit {
			altExisting.Quantity += p.Quantity
			return
		}
		cp := p
		all[alt] = &cp
		order = append(order, alt)
	}

	today := utils.Today()
	for offset := 0; offset < days; offset++ {
		date, err := utils.ShiftDate(today, offset)
		if err != nil {
			continue
		}

		// planned recipes contribute their parsed ingredients
		plan, err := s.plans.Day(ctx, userID, date)
		if err != nil {
			s.log.Warn("meal plan lookup failed", zap.String("date", date), zap.Error(err))
		}
		for _, meal := range plan {
			rec, err := s.recipes.Get(ctx, meal.RecipeID)
			if err != nil || rec == nil || rec.Ingredients == "" {
				continue
			}
			for name, p := range ParseIngredients(rec.Ingredients) {
				addProduct(name, p)
			}
		}

		// diary entries contribute an amount estimated from calories
		entries, err := s.diary.DailyEntries(ctx, userID, date)
		if err != nil {
			s.log.Warn("diary lookup failed", zap.String("date", date), zap.Error(err))
		}
		for _, entry := range entries {
			grams := float64(int(entry.Calories / 3))
			if grams < 50 {
				grams = 50
			}
			addProduct(capitalize(entry.FoodName), product{Quantity: grams, Unit: "г"})
		}
	}

	items := make([]models.CartItem, 0, len(order))
	for _, name := range order {
		p := all[name]
		items = append(items, models.CartItem{
			UserID:   userID,
			Product:  name,
			Quantity: p.Quantity,
			Unit:     p.Unit,
		})
	}

	if err := s.cart.Replace(ctx, userID, items); err != nil {
		return nil, err
	}
	return items, nil
}

// ParseIngredients extracts products and quantities from recipe
// ingredient lines of the form "Продукт - количество единица".
// Kilograms and liters are normalized to grams and milliliters,
// spoons to approximate gram weights. Unparseable lines become a
// 100 g placeholder.
func ParseIngredients(text string) map[string]product {
	products := make(map[string]product)

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		line = bulletRe.ReplaceAllString(line, "")
		if len([]rune(line)) <= 2 {
			continue
		}

		name, qty, unit, ok := matchIngredient(line)
		if !ok {
			name = capitalize(line)
			merge(products, name, product{Quantity: 100, Unit: "г"})
			continue
		}

		switch strings.ToLower(strings.TrimRight(unit, ".")) {
		case "кг":
			qty *= 1000
			unit = "г"
		case "л":
			qty *= 1000
			unit = "мл"
		case "ст.л":
			qty *= 15
			unit = "г"
		case "ч.л":
			qty *= 5
			unit = "г"
		}

		merge(products, capitalize(name), product{Quantity: qty, Unit: unit})
	}
	return products
}

func matchIngredient(line string) (name string, qty float64, unit string, ok bool) {
	if m := nameFirstDashRe.FindStringSubmatch(line); m != nil {
		if q, err := parseQuantity(m[2]); err == nil {
			return m[1], q, m[3], true
		}
	}
	if m := nameFirstRe.FindStringSubmatch(line); m != nil {
		if q, err := parseQuantity(m[2]); err == nil {
			return m[1], q, m[3], true
		}
	}
	if m := quantityFirstRe.FindStringSubmatch(line); m != nil {
		if q, err := parseQuantity(m[1]); err == nil {
			return m[3], q, m[2], true
		}
	}
	return "", 0, "", false
}

func parseQuantity(raw string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
}

func merge(products map[string]product, name string, p product) {
	if existing, ok := products[name]; ok && existing.Unit == p.Unit {
		existing.Quantity += p.Quantity
		products[name] = existing
		return
	}
	products[name] = p
}

func capitalize(s string) string {
	runes := []rune(strings.TrimSpace(s))
	if len(runes) == 0 {
		return ""
	}
	runes[0] = unicode.ToUpper(runes[0])
	for i := 1; i < len(runes); i++ {
		runes[i] = unicode.ToLower(runes[i])
	}
	return string(runes)
}

// List returns the cart, unpurchased items first
func (s *CartService) List(ctx context.Context, userID int64) ([]models.CartItem, error) {
	return s.cart.List(ctx, userID)
}

// AddManual adds a single hand-entered line, parsed the same way as
// recipe ingredients
func (s *CartService) AddManual(ctx context.Context, userID int64, text string) (int64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, errors.NewValidationError("product", "введите название продукта")
	}

	parsed := ParseIngredients(text)
	for name, p := range parsed {
		return s.cart.Add(ctx, userID, name, p.Quantity, p.Unit)
	}
	return s.cart.Add(ctx, userID, capitalize(text), 100, "г")
}

// TogglePurchased flips the bought flag on the user's item
func (s *CartService) TogglePurchased(ctx context.Context, userID, itemID int64) error {
	return s.cart.TogglePurchased(ctx, userID, itemID)
}

// Remove deletes one of the user's items
func (s *CartService) Remove(ctx context.Context, userID, itemID int64) error {
	return s.cart.Remove(ctx, userID, itemID)
}

// Clear empties the cart
func (s *CartService) Clear(ctx context.Context, userID int64) error {
	return s.cart.Clear(ctx, userID)
}
