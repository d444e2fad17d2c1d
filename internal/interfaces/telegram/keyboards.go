package telegram

import (
	"fmt"
	"time"

	tgmodels "github.com/go-telegram/bot/models"

	"github.com/dietplanner/backend/internal/domain/models"
	"github.com/dietplanner/backend/pkg/constants"
	"github.com/dietplanner/backend/pkg/utils"
)

// Main menu button labels
const (
	btnStart    = "🚀 Погнали!"
	btnAbout    = "ℹ️ О боте"
	btnProfile  = "👤 Профиль"
	btnDiary    = "📖 Мой дневник"
	btnPlan     = "🍽 Рацион"
	btnWater    = "💧 Трекер воды"
	btnStats    = "📊 Статистика"
	btnRecipes  = "🍳 Рецепты"
	btnConsult  = "🩺 Консультация с диетологом"
	btnCart     = "🛒 Продуктовая корзина"
	btnArticles = "📚 Статьи"
	btnReport   = "📈 Отчет"
)

// genderLabels maps keyboard labels to stored gender values
var genderLabels = map[string]string{
	"Мужчина": constants.GenderMale,
	"Женщина": constants.GenderFemale,
}

// activityLabels maps keyboard labels to stored activity levels
var activityLabels = map[string]string{
	"Сидячий образ жизни":                         constants.ActivitySedentary,
	"Легкая активность (1-2 тренировки в неделю)": constants.ActivityLight,
	"Средняя активность (3-5 тренировок)":         constants.ActivityModerate,
	"Высокая активность (6-7 тренировок)":         constants.ActivityHigh,
	"Атлет (ежедневные интенсивные тренировки)":   constants.ActivityAthlete,
}

// activityOrder keeps the keyboard rows stable
var activityOrder = []string{
	"Сидячий образ жизни",
	"Легкая активность (1-2 тренировки в неделю)",
	"Средняя активность (3-5 тренировок)",
	"Высокая активность (6-7 тренировок)",
	"Атлет (ежедневные интенсивные тренировки)",
}

// goalLabels maps keyboard labels to stored goal values
var goalLabels = map[string]string{
	"🔻 Похудение":                 constants.GoalLose,
	"🔺 Набор веса":                constants.GoalGain,
	"🔄 Поддержание текущего веса": constants.GoalMaintain,
}

var goalOrder = []string{"🔻 Похудение", "🔺 Набор веса", "🔄 Поддержание текущего веса"}

// GoalLabel returns the display label for a stored goal value
func GoalLabel(goal string) string {
	for label, value := range goalLabels {
		if value == goal {
			return label
		}
	}
	return goal
}

// ActivityLabel returns the display label for a stored activity value
func ActivityLabel(activity string) string {
	for label, value := range activityLabels {
		if value == activity {
			return label
		}
	}
	return activity
}

func startKeyboard() *tgmodels.ReplyKeyboardMarkup {
	return &tgmodels.ReplyKeyboardMarkup{
		Keyboard: [][]tgmodels.KeyboardButton{
			{{Text: btnStart}},
			{{Text: btnAbout}},
		},
		ResizeKeyboard: true,
	}
}

func mainMenuKeyboard() *tgmodels.ReplyKeyboardMarkup {
	return &tgmodels.ReplyKeyboardMarkup{
		Keyboard: [][]tgmodels.KeyboardButton{
			{{Text: btnProfile}, {Text: btnDiary}},
			{{Text: btnPlan}, {Text: btnWater}},
			{{Text: btnStats}, {Text: btnRecipes}},
			{{Text: btnConsult}, {Text: btnCart}},
			{{Text: btnArticles}, {Text: btnReport}},
		},
		ResizeKeyboard: true,
	}
}

func genderKeyboard() *tgmodels.ReplyKeyboardMarkup {
	return &tgmodels.ReplyKeyboardMarkup{
		Keyboard: [][]tgmodels.KeyboardButton{
			{{Text: "Мужчина"}, {Text: "Женщина"}},
		},
		ResizeKeyboard:  true,
		OneTimeKeyboard: true,
	}
}

func activityKeyboard() *tgmodels.ReplyKeyboardMarkup {
	rows := make([][]tgmodels.KeyboardButton, 0, len(activityOrder))
	for _, label := range activityOrder {
		rows = append(rows, []tgmodels.KeyboardButton{{Text: label}})
	}
	return &tgmodels.ReplyKeyboardMarkup{Keyboard: rows, ResizeKeyboard: true, OneTimeKeyboard: true}
}

func goalKeyboard() *tgmodels.ReplyKeyboardMarkup {
	rows := make([][]tgmodels.KeyboardButton, 0, len(goalOrder))
	for _, label := range goalOrder {
		rows = append(rows, []tgmodels.KeyboardButton{{Text: label}})
	}
	return &tgmodels.ReplyKeyboardMarkup{Keyboard: rows, ResizeKeyboard: true, OneTimeKeyboard: true}
}

func diaryKeyboard(date string) *tgmodels.InlineKeyboardMarkup {
	return &tgmodels.InlineKeyboardMarkup{
		InlineKeyboard: [][]tgmodels.InlineKeyboardButton{
			{
				{Text: "◀️ Вчера", CallbackData: "date:prev:" + date},
				{Text: "Сегодня", CallbackData: "date:today"},
				{Text: "Завтра ▶️", CallbackData: "date:next:" + date},
			},
			{
				{Text: "➕ Добавить продукт", CallbackData: "add_food:" + date},
				{Text: "🗑 Очистить день", CallbackData: "clear_diary:" + date},
			},
			{{Text: "◀️ Главное меню", CallbackData: "return_to_main"}},
		},
	}
}

func clearDiaryConfirmKeyboard(date string) *tgmodels.InlineKeyboardMarkup {
	return &tgmodels.InlineKeyboardMarkup{
		InlineKeyboard: [][]tgmodels.InlineKeyboardButton{
			{
				{Text: "✅ Да", CallbackData: "confirm_clear:" + date},
				{Text: "❌ Нет", CallbackData: "return_to_diary:" + date},
			},
		},
	}
}

func mealTypeKeyboard(date string) *tgmodels.InlineKeyboardMarkup {
	rows := make([][]tgmodels.InlineKeyboardButton, 0, 3)
	for i := 0; i < len(constants.MealTypes); i += 2 {
		row := []tgmodels.InlineKeyboardButton{
			{Text: constants.MealTypes[i], CallbackData: fmt.Sprintf("meal_type:%s:%s", constants.MealTypes[i], date)},
		}
		if i+1 < len(constants.MealTypes) {
			row = append(row, tgmodels.InlineKeyboardButton{
				Text: constants.MealTypes[i+1], CallbackData: fmt.Sprintf("meal_type:%s:%s", constants.MealTypes[i+1], date),
			})
		}
		rows = append(rows, row)
	}
	rows = append(rows, []tgmodels.InlineKeyboardButton{
		{Text: "◀️ Назад к дневнику", CallbackData: "return_to_diary:" + date},
	})
	return &tgmodels.InlineKeyboardMarkup{InlineKeyboard: rows}
}

// foodInputKeyboard offers recent foods for quick re-logging
func foodInputKeyboard(recent []models.RecentFood, date string) *tgmodels.InlineKeyboardMarkup {
	rows := make([][]tgmodels.InlineKeyboardButton, 0, len(recent)+2)
	for _, f := range recent {
		rows = append(rows, []tgmodels.InlineKeyboardButton{{
			Text:         fmt.Sprintf("%s (%.0f ккал)", f.FoodName, f.Calories),
			CallbackData: fmt.Sprintf("recent_food:%d", f.ID),
		}})
	}
	rows = append(rows,
		[]tgmodels.InlineKeyboardButton{{Text: "✍️ Описать текстом", CallbackData: "natural_input"}},
		[]tgmodels.InlineKeyboardButton{{Text: "◀️ Назад к дневнику", CallbackData: "return_to_diary:" + date}},
	)
	return &tgmodels.InlineKeyboardMarkup{InlineKeyboard: rows}
}

// foodResultsKeyboard lists search hits by position in the stored result set
func foodResultsKeyboard(foods []models.Food, date string) *tgmodels.InlineKeyboardMarkup {
	rows := make([][]tgmodels.InlineKeyboardButton, 0, len(foods)+1)
	for i, f := range foods {
		label := f.Name
		if f.Brand != "" {
			label = fmt.Sprintf("%s (%s)", f.Name, f.Brand)
		}
		rows = append(rows, []tgmodels.InlineKeyboardButton{{
			Text:         label,
			CallbackData: fmt.Sprintf("select_food:%d", i),
		}})
	}
	rows = append(rows, []tgmodels.InlineKeyboardButton{{Text: "◀️ Назад к дневнику", CallbackData: "return_to_diary:" + date}})
	return &tgmodels.InlineKeyboardMarkup{InlineKeyboard: rows}
}

func waterKeyboard() *tgmodels.InlineKeyboardMarkup {
	return &tgmodels.InlineKeyboardMarkup{
		InlineKeyboard: [][]tgmodels.InlineKeyboardButton{
			{
				{Text: "+200 мл", CallbackData: "water_add:200"},
				{Text: "+300 мл", CallbackData: "water_add:300"},
				{Text: "+500 мл", CallbackData: "water_add:500"},
			},
			{
				{Text: "🔧 Свое количество", CallbackData: "water_custom"},
				{Text: "⚙️ Изменить цель", CallbackData: "water_goal"},
			},
			{
				{Text: "📊 Статистика", CallbackData: "stats:water"},
				{Text: "◀️ Главное меню", CallbackData: "return_to_main"},
			},
		},
	}
}

func recipesMenuKeyboard() *tgmodels.InlineKeyboardMarkup {
	return &tgmodels.InlineKeyboardMarkup{
		InlineKeyboard: [][]tgmodels.InlineKeyboardButton{
			{
				{Text: "🔍 Мои рецепты", CallbackData: "recipe:list"},
				{Text: "🌟 Избранные", CallbackData: "recipe:favorites"},
			},
			{
				{Text: "➕ Создать свой", CallbackData: "recipe:create"},
				{Text: "✨ Сгенерировать", CallbackData: "recipe:generate"},
			},
			{{Text: "◀️ Главное меню", CallbackData: "return_to_main"}},
		},
	}
}

func recipeDetailsKeyboard(recipeID int64) *tgmodels.InlineKeyboardMarkup {
	return &tgmodels.InlineKeyboardMarkup{
		InlineKeyboard: [][]tgmodels.InlineKeyboardButton{
			{
				{Text: "❤️ В избранное", CallbackData: fmt.Sprintf("toggle_favorite:%d", recipeID)},
				{Text: "📝 В дневник", CallbackData: fmt.Sprintf("recipe_to_diary:%d", recipeID)},
			},
			{
				{Text: "📅 В план питания", CallbackData: fmt.Sprintf("recipe_to_plan:%d", recipeID)},
			},
			{
				{Text: "🗑 Удалить", CallbackData: fmt.Sprintf("delete_recipe:%d", recipeID)},
				{Text: "◀️ Назад", CallbackData: "recipe:list"},
			},
		},
	}
}

// recipePlanMealKeyboard picks the meal a recipe is planned under for a date
func recipePlanMealKeyboard(recipeID int64, date string) *tgmodels.InlineKeyboardMarkup {
	rows := make([][]tgmodels.InlineKeyboardButton, 0, len(constants.MealTypes)+1)
	for _, meal := range constants.MealTypes {
		rows = append(rows, []tgmodels.InlineKeyboardButton{{
			Text:         meal,
			CallbackData: fmt.Sprintf("plan_pick:%d:%s:%s", recipeID, meal, date),
		}})
	}
	rows = append(rows, []tgmodels.InlineKeyboardButton{{
		Text: "◀️ Отмена", CallbackData: fmt.Sprintf("view_recipe:%d", recipeID),
	}})
	return &tgmodels.InlineKeyboardMarkup{InlineKeyboard: rows}
}

// recipeMealKeyboard picks the meal a recipe is logged under
func recipeMealKeyboard(recipeID int64) *tgmodels.InlineKeyboardMarkup {
	rows := make([][]tgmodels.InlineKeyboardButton, 0, len(constants.MealTypes)+1)
	for _, meal := range constants.MealTypes {
		rows = append(rows, []tgmodels.InlineKeyboardButton{{
			Text:         meal,
			CallbackData: fmt.Sprintf("recipe_meal:%d:%s", recipeID, meal),
		}})
	}
	rows = append(rows, []tgmodels.InlineKeyboardButton{{
		Text: "◀️ Отмена", CallbackData: fmt.Sprintf("view_recipe:%d", recipeID),
	}})
	return &tgmodels.InlineKeyboardMarkup{InlineKeyboard: rows}
}

func recipeConfirmKeyboard() *tgmodels.InlineKeyboardMarkup {
	return &tgmodels.InlineKeyboardMarkup{
		InlineKeyboard: [][]tgmodels.InlineKeyboardButton{
			{
				{Text: "✅ Сохранить", CallbackData: "recipe:save"},
				{Text: "❌ Отменить", CallbackData: "recipe:cancel"},
			},
		},
	}
}

func recipeListKeyboard(recipes []models.Recipe) *tgmodels.InlineKeyboardMarkup {
	rows := make([][]tgmodels.InlineKeyboardButton, 0, len(recipes)+1)
	for _, r := range recipes {
		label := r.Name
		if r.IsFavorite {
			label = "🌟 " + label
		}
		rows = append(rows, []tgmodels.InlineKeyboardButton{{
			Text:         label,
			CallbackData: fmt.Sprintf("view_recipe:%d", r.ID),
		}})
	}
	rows = append(rows, []tgmodels.InlineKeyboardButton{{Text: "◀️ Назад", CallbackData: "recipe:menu"}})
	return &tgmodels.InlineKeyboardMarkup{InlineKeyboard: rows}
}

func planKeyboard(date string) *tgmodels.InlineKeyboardMarkup {
	return &tgmodels.InlineKeyboardMarkup{
		InlineKeyboard: [][]tgmodels.InlineKeyboardButton{
			{
				{Text: "◀️ Вчера", CallbackData: "plan_date:prev:" + date},
				{Text: "Сегодня", CallbackData: "plan_date:today"},
				{Text: "Завтра ▶️", CallbackData: "plan_date:next:" + date},
			},
			{
				{Text: "➕ Добавить блюдо", CallbackData: "plan:add:" + date},
				{Text: "🗑 Очистить", CallbackData: "plan:clear:" + date},
			},
			{{Text: "📝 Перенести в дневник", CallbackData: "plan:to_diary:" + date}},
			{{Text: "◀️ Главное меню", CallbackData: "return_to_main"}},
		},
	}
}

func planMealKeyboard(date string) *tgmodels.InlineKeyboardMarkup {
	rows := make([][]tgmodels.InlineKeyboardButton, 0, len(constants.MealTypes)+1)
	for _, meal := range constants.MealTypes {
		rows = append(rows, []tgmodels.InlineKeyboardButton{{
			Text:         meal,
			CallbackData: fmt.Sprintf("plan_meal:%s:%s", meal, date),
		}})
	}
	rows = append(rows, []tgmodels.InlineKeyboardButton{{Text: "◀️ Назад", CallbackData: "plan_date:today"}})
	return &tgmodels.InlineKeyboardMarkup{InlineKeyboard: rows}
}

func planRecipePickKeyboard(recipes []models.Recipe, meal, date string) *tgmodels.InlineKeyboardMarkup {
	rows := make([][]tgmodels.InlineKeyboardButton, 0, len(recipes)+1)
	for _, r := range recipes {
		rows = append(rows, []tgmodels.InlineKeyboardButton{{
			Text:         fmt.Sprintf("%s (%.0f ккал)", r.Name, r.Calories),
			CallbackData: fmt.Sprintf("plan_pick:%d:%s:%s", r.ID, meal, date),
		}})
	}
	rows = append(rows, []tgmodels.InlineKeyboardButton{{Text: "◀️ Назад", CallbackData: "plan_date:today"}})
	return &tgmodels.InlineKeyboardMarkup{InlineKeyboard: rows}
}

func cartMenuKeyboard() *tgmodels.InlineKeyboardMarkup {
	return &tgmodels.InlineKeyboardMarkup{
		InlineKeyboard: [][]tgmodels.InlineKeyboardButton{
			{
				{Text: "🛒 Просмотреть корзину", CallbackData: "cart:view"},
				{Text: "🔄 Сформировать", CallbackData: "cart:generate"},
			},
			{
				{Text: "➕ Добавить вручную", CallbackData: "cart:manual"},
				{Text: "🗑 Очистить", CallbackData: "cart:clear"},
			},
			{{Text: "◀️ Главное меню", CallbackData: "return_to_main"}},
		},
	}
}

func cartPeriodKeyboard() *tgmodels.InlineKeyboardMarkup {
	return &tgmodels.InlineKeyboardMarkup{
		InlineKeyboard: [][]tgmodels.InlineKeyboardButton{
			{
				{Text: "На сегодня", CallbackData: "cart_period:1"},
				{Text: "На 3 дня", CallbackData: "cart_period:3"},
				{Text: "На неделю", CallbackData: "cart_period:7"},
			},
			{{Text: "◀️ Назад", CallbackData: "cart:menu"}},
		},
	}
}

func cartItemsKeyboard(items []models.CartItem) *tgmodels.InlineKeyboardMarkup {
	rows := make([][]tgmodels.InlineKeyboardButton, 0, len(items)+1)
	for _, item := range items {
		mark := "⬜"
		if item.Purchased {
			mark = "✅"
		}
		rows = append(rows, []tgmodels.InlineKeyboardButton{{
			Text:         fmt.Sprintf("%s %s", mark, item.Product),
			CallbackData: fmt.Sprintf("cart_toggle:%d", item.ID),
		}})
	}
	rows = append(rows, []tgmodels.InlineKeyboardButton{{Text: "◀️ Назад", CallbackData: "cart:menu"}})
	return &tgmodels.InlineKeyboardMarkup{InlineKeyboard: rows}
}

func statsMenuKeyboard() *tgmodels.InlineKeyboardMarkup {
	return &tgmodels.InlineKeyboardMarkup{
		InlineKeyboard: [][]tgmodels.InlineKeyboardButton{
			{
				{Text: "📊 Калории и БЖУ", CallbackData: "stats:nutrition"},
				{Text: "💧 Вода", CallbackData: "stats:water"},
			},
			{{Text: "🔔 Напоминания", CallbackData: "stats:reminders"}},
			{{Text: "◀️ Главное меню", CallbackData: "return_to_main"}},
		},
	}
}

func weightMenuKeyboard() *tgmodels.InlineKeyboardMarkup {
	return &tgmodels.InlineKeyboardMarkup{
		InlineKeyboard: [][]tgmodels.InlineKeyboardButton{
			{{Text: "⚖️ Записать вес", CallbackData: "weight:record"}},
			{{Text: "📊 Посмотреть график", CallbackData: "weight:chart"}},
			{{Text: "📋 История", CallbackData: "weight:history"}},
			{{Text: "◀️ Главное меню", CallbackData: "return_to_main"}},
		},
	}
}

func topicsKeyboard(topics []string) *tgmodels.InlineKeyboardMarkup {
	rows := make([][]tgmodels.InlineKeyboardButton, 0, len(topics)+1)
	for i, topic := range topics {
		rows = append(rows, []tgmodels.InlineKeyboardButton{{
			Text:         topic,
			CallbackData: fmt.Sprintf("topic:%d", i),
		}})
	}
	rows = append(rows, []tgmodels.InlineKeyboardButton{{Text: "◀️ Главное меню", CallbackData: "return_to_main"}})
	return &tgmodels.InlineKeyboardMarkup{InlineKeyboard: rows}
}

func nutritionistKeyboard(idx, total int) *tgmodels.InlineKeyboardMarkup {
	rows := make([][]tgmodels.InlineKeyboardButton, 0, 2)
	nav := make([]tgmodels.InlineKeyboardButton, 0, 2)
	if idx > 0 {
		nav = append(nav, tgmodels.InlineKeyboardButton{Text: "⬅️", CallbackData: fmt.Sprintf("nutri:%d", idx-1)})
	}
	if idx < total-1 {
		nav = append(nav, tgmodels.InlineKeyboardButton{Text: "➡️", CallbackData: fmt.Sprintf("nutri:%d", idx+1)})
	}
	if len(nav) > 0 {
		rows = append(rows, nav)
	}
	rows = append(rows, []tgmodels.InlineKeyboardButton{{Text: "◀️ Главное меню", CallbackData: "return_to_main"}})
	return &tgmodels.InlineKeyboardMarkup{InlineKeyboard: rows}
}

func articlesKeyboard(articles []models.Article) *tgmodels.InlineKeyboardMarkup {
	rows := make([][]tgmodels.InlineKeyboardButton, 0, len(articles)+1)
	for _, a := range articles {
		rows = append(rows, []tgmodels.InlineKeyboardButton{{
			Text:         a.Title,
			CallbackData: fmt.Sprintf("article:%d", a.ID),
		}})
	}
	rows = append(rows, []tgmodels.InlineKeyboardButton{{Text: "◀️ К темам", CallbackData: "articles:menu"}})
	return &tgmodels.InlineKeyboardMarkup{InlineKeyboard: rows}
}

func reminderMenuKeyboard(reminders []models.Reminder) *tgmodels.InlineKeyboardMarkup {
	rows := make([][]tgmodels.InlineKeyboardButton, 0, len(reminders)+2)
	for _, r := range reminders {
		mark := "🔕"
		if r.IsActive {
			mark = "🔔"
		}
		rows = append(rows, []tgmodels.InlineKeyboardButton{
			{
				Text:         fmt.Sprintf("%s %s", mark, reminderTitle(r.Type)),
				CallbackData: fmt.Sprintf("reminder_toggle:%d", r.ID),
			},
			{Text: "🗑", CallbackData: fmt.Sprintf("reminder_delete:%d", r.ID)},
		})
	}
	rows = append(rows,
		[]tgmodels.InlineKeyboardButton{
			{Text: "💧 Вода", CallbackData: "reminder_new:water"},
			{Text: "🍽 Еда", CallbackData: "reminder_new:meal"},
			{Text: "⚖️ Вес", CallbackData: "reminder_new:weigh"},
		},
		[]tgmodels.InlineKeyboardButton{{Text: "◀️ Главное меню", CallbackData: "return_to_main"}},
	)
	return &tgmodels.InlineKeyboardMarkup{InlineKeyboard: rows}
}

// shiftDate moves a diary/plan date by days, falling back to today
func shiftDate(date string, days int) string {
	shifted, err := utils.ShiftDate(date, days)
	if err != nil {
		return time.Now().Format(constants.DateFormat)
	}
	return shifted
}
