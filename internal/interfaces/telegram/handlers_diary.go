package telegram

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/dietplanner/backend/internal/domain/models"
	"github.com/dietplanner/backend/pkg/utils"
)

// showDiary renders the diary day view with navigation
func (b *Bot) showDiary(ctx context.Context, chatID, userID int64, date string) {
	view, err := b.services.Diary.Day(ctx, userID, date)
	if err != nil {
		b.replyError(ctx, chatID, err)
		return
	}
	b.sendWithMarkup(ctx, chatID, formatDiaryDay(view), diaryKeyboard(date))
}

// handleDiaryDate navigates between diary days. arg is "prev:DATE",
// "next:DATE" or "today".
func (b *Bot) handleDiaryDate(ctx context.Context, chatID, userID int64, arg string) {
	b.showDiary(ctx, chatID, userID, navigateDate(arg))
}

func navigateDate(arg string) string {
	dir, date := splitCallback(arg)
	switch dir {
	case "prev":
		return shiftDate(date, -1)
	case "next":
		return shiftDate(date, 1)
	default:
		return todayDate()
	}
}

// handleAddFood asks which meal the food belongs to. arg is the date.
func (b *Bot) handleAddFood(ctx context.Context, chatID, userID int64, arg string) {
	b.sendWithMarkup(ctx, chatID, "Выберите приём пищи:", mealTypeKeyboard(orToday(arg)))
}

// handleClearDiary asks for confirmation before wiping the day. arg is
// the date.
func (b *Bot) handleClearDiary(ctx context.Context, chatID, userID int64, arg string) {
	date := orToday(arg)
	b.sendWithMarkup(ctx, chatID,
		"Вы уверены, что хотите удалить все записи за "+utils.FormatDate(date)+"?",
		clearDiaryConfirmKeyboard(date))
}

// handleConfirmClearDiary removes all entries for the confirmed day.
// arg is the date.
func (b *Bot) handleConfirmClearDiary(ctx context.Context, chatID, userID int64, arg string) {
	date := orToday(arg)
	if err := b.services.Diary.ClearDay(ctx, userID, date); err != nil {
		b.replyError(ctx, chatID, err)
		return
	}
	b.send(ctx, chatID, "✅ Дневник за "+utils.FormatDate(date)+" очищен.")
	b.showDiary(ctx, chatID, userID, date)
}

// handleMealTypeChosen stores the meal choice and offers recent foods
// or free-form input. arg is "MEAL:DATE".
func (b *Bot) handleMealTypeChosen(ctx context.Context, chatID, userID int64, arg string) {
	meal, date := splitCallback(arg)
	date = orToday(date)

	b.fsm.SetData(userID, "meal", meal)
	b.fsm.SetData(userID, "date", date)

	recent, err := b.services.Diary.RecentFoods(ctx, userID)
	if err != nil {
		b.log.Warn("recent foods lookup failed", zap.Int64("user_id", userID), zap.Error(err))
	}

	text := "🍽 <b>" + meal + "</b>\n\n"
	if b.services.Food.Enabled() {
		text += "Введите название продукта для поиска"
		if len(recent) > 0 {
			text += " или выберите из недавних:"
		} else {
			text += ":"
		}
		b.fsm.SetState(userID, StateDiaryFood)
	} else {
		text += "Опишите, что вы съели, например: «гречка 150 г и куриная грудка»"
		b.fsm.SetState(userID, StateDiaryNatural)
	}
	b.sendWithMarkup(ctx, chatID, text, foodInputKeyboard(recent, date))
}

// handleRecentFood re-logs a previously eaten food. arg is the recent food id.
func (b *Bot) handleRecentFood(ctx context.Context, chatID, userID int64, arg string) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return
	}
	recent, err := b.services.Diary.RecentFoods(ctx, userID)
	if err != nil {
		b.replyError(ctx, chatID, err)
		return
	}
	for _, f := range recent {
		if f.ID == id {
			b.addDiaryEntry(ctx, chatID, userID, f.FoodName, f.Calories, f.Protein, f.Fat, f.Carbs)
			return
		}
	}
	b.send(ctx, chatID, "Продукт не найден среди недавних.")
}

// handleNaturalStart switches the dialog to free-form meal description
func (b *Bot) handleNaturalStart(ctx context.Context, chatID, userID int64) {
	if !b.services.Food.Enabled() {
		b.send(ctx, chatID, "😔 Распознавание еды сейчас недоступно.")
		return
	}
	b.fsm.SetState(userID, StateDiaryNatural)
	b.send(ctx, chatID, "Опишите, что вы съели, например: «тарелка гречки и два яйца»")
}

// handleFoodSearchInput looks up the typed query in the food database
func (b *Bot) handleFoodSearchInput(ctx context.Context, chatID, userID int64, text string) {
	foods, err := b.services.Food.Search(ctx, text)
	if err != nil {
		b.replyError(ctx, chatID, err)
		return
	}
	if len(foods) == 0 {
		b.send(ctx, chatID, "😔 Ничего не нашлось. Попробуйте другое название или опишите блюдо текстом.")
		return
	}

	raw, err := json.Marshal(foods)
	if err != nil {
		b.replyError(ctx, chatID, err)
		return
	}
	b.fsm.SetData(userID, "foods", string(raw))

	date := orToday(b.fsm.Data(userID, "date"))
	b.sendWithMarkup(ctx, chatID, "Вот что удалось найти. Выберите продукт:", foodResultsKeyboard(foods, date))
}

// handleFoodSelected picks a search hit by index and asks for the weight
func (b *Bot) handleFoodSelected(ctx context.Context, chatID, userID int64, arg string) {
	idx, err := strconv.Atoi(arg)
	if err != nil {
		return
	}

	var foods []models.Food
	if raw := b.fsm.Data(userID, "foods"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &foods); err != nil {
			b.log.Warn("stored food results corrupted", zap.Int64("user_id", userID), zap.Error(err))
		}
	}
	if idx < 0 || idx >= len(foods) {
		b.send(ctx, chatID, "Результаты поиска устарели, повторите запрос.")
		return
	}

	food := foods[idx]
	if food.ItemID != "" {
		// branded hits from instant search carry no nutrients
		full, err := b.services.Food.BrandedItem(ctx, food.ItemID)
		if err != nil {
			b.replyError(ctx, chatID, err)
			return
		}
		full.Name = food.Name
		food = *full
	}

	raw, err := json.Marshal(food)
	if err != nil {
		b.replyError(ctx, chatID, err)
		return
	}
	b.fsm.SetData(userID, "food", string(raw))
	b.fsm.SetState(userID, StateDiaryWeight)
	b.send(ctx, chatID, formatFoodCard(&food)+"\n\nСколько грамм вы съели?")
}

// handleFoodWeightInput scales the chosen food to the eaten grams and logs it
func (b *Bot) handleFoodWeightInput(ctx context.Context, chatID, userID int64, text string) {
	grams, err := strconv.ParseFloat(strings.Replace(text, ",", ".", 1), 64)
	if err != nil || grams <= 0 {
		b.send(ctx, chatID, "Пожалуйста, введите вес порции числом в граммах.")
		return
	}

	var food models.Food
	if err := json.Unmarshal([]byte(b.fsm.Data(userID, "food")), &food); err != nil {
		b.send(ctx, chatID, "Выбор продукта устарел, повторите поиск.")
		return
	}

	// nutrients are per serving; fall back to a 100 g serving
	per := food.GramsPer
	if per <= 0 {
		per = 100
	}
	factor := grams / per

	b.addDiaryEntry(ctx, chatID, userID, food.Name,
		food.Calories*factor, food.Protein*factor, food.Fat*factor, food.Carbs*factor)
}

// handleNaturalInput recognizes a free-form meal description and logs it
func (b *Bot) handleNaturalInput(ctx context.Context, chatID, userID int64, text string) {
	entry, err := b.services.Food.ParseNaturalText(ctx, text)
	if err != nil {
		b.replyError(ctx, chatID, err)
		return
	}
	if entry.Description == "" {
		b.send(ctx, chatID, "😔 Не удалось распознать блюдо. Попробуйте описать его иначе.")
		return
	}
	b.addDiaryEntry(ctx, chatID, userID, entry.Description,
		entry.Calories, entry.Protein, entry.Fat, entry.Carbs)
}

// addDiaryEntry persists the entry for the meal and date collected in
// the dialog, then re-renders the day
func (b *Bot) addDiaryEntry(ctx context.Context, chatID, userID int64, name string, calories, protein, fat, carbs float64) {
	date := orToday(b.fsm.Data(userID, "date"))
	meal := b.fsm.Data(userID, "meal")

	_, err := b.services.Diary.AddEntry(ctx, &models.FoodEntry{
		UserID:   userID,
		Date:     date,
		MealType: meal,
		FoodName: name,
		Calories: calories,
		Protein:  protein,
		Fat:      fat,
		Carbs:    carbs,
	})
	if err != nil {
		b.replyError(ctx, chatID, err)
		return
	}

	b.fsm.Clear(userID)
	b.send(ctx, chatID, "✅ Записано: "+name)
	b.showDiary(ctx, chatID, userID, date)
}
