package telegram

import (
	"fmt"
	"strings"
	"time"

	"github.com/dietplanner/backend/internal/application/services"
	"github.com/dietplanner/backend/internal/domain/models"
	"github.com/dietplanner/backend/pkg/constants"
	"github.com/dietplanner/backend/pkg/nutrition"
	"github.com/dietplanner/backend/pkg/utils"
)

const aboutText = "ℹ️ <b>О боте</b>\n\n" +
	"Этот бот создан для помощи в ведении здорового образа жизни и правильного питания.\n\n" +
	"<b>Возможности:</b>\n" +
	"• Расчет индекса массы тела (ИМТ)\n" +
	"• Определение дневной нормы калорий\n" +
	"• Ведение дневника питания\n" +
	"• Отслеживание водного баланса\n" +
	"• Составление плана питания\n" +
	"• Поиск и сохранение рецептов\n" +
	"• Анализ и визуализация прогресса\n\n" +
	"<b>Технические детали:</b>\n" +
	"• Бот использует API Nutritionix для данных о продуктах\n" +
	"• Все данные пользователей хранятся локально и защищены\n" +
	"• Рассчеты производятся по формуле Миффлина-Сан Жеора"

const helpText = "🔍 <b>Справка по боту</b>\n\n" +
	"<b>Основные команды:</b>\n" +
	"/start - Начать работу с ботом\n" +
	"/help - Показать справку\n" +
	"/about - О боте\n\n" +
	"<b>Основные функции:</b>\n" +
	"• <b>Мой дневник</b> - ведение записей о питании\n" +
	"• <b>Трекер воды</b> - отслеживание потребления воды\n" +
	"• <b>Рацион</b> - составление плана питания\n" +
	"• <b>Рецепты</b> - поиск и создание рецептов\n" +
	"• <b>Профиль</b> - просмотр ваших данных\n" +
	"• <b>Статистика</b> - графики и анализ ваших показателей"

func formatWelcome(name string) string {
	return fmt.Sprintf("👋 Привет, %s!\n\n"+
		"Я твой персональный помощник по диетологии и правильному питанию.\n\n"+
		"Со мной ты сможешь:\n"+
		"• Рассчитать свой ИМТ и дневную норму калорий\n"+
		"• Вести дневник питания\n"+
		"• Следить за водным балансом\n"+
		"• Получать рекомендации по рациону\n"+
		"• Создавать и сохранять рецепты\n\n"+
		"Готов начать?", name)
}

func formatBMIResult(bmi float64, category string) string {
	return fmt.Sprintf("📊 <b>Ваш индекс массы тела (ИМТ): %.1f</b>\n\n"+
		"Категория: %s\n\n"+
		"Теперь укажите уровень вашей физической активности:", bmi, category)
}

func formatCalorieTargets(u *models.User) string {
	macros := nutrition.CalculateMacros(u.GoalCalories, u.Weight, u.Goal)
	return fmt.Sprintf("<b>Ваша дневная норма калорий: %.0f ккал</b>\n\n"+
		"Рекомендуемое распределение БЖУ:\n"+
		"• Белки: %d г (%.0f ккал)\n"+
		"• Жиры: %d г (%.0f ккал)\n"+
		"• Углеводы: %d г (%.0f ккал)\n\n"+
		"Регистрация завершена! Выбери, что ты хочешь сделать:",
		u.GoalCalories,
		macros.Protein, float64(macros.ProteinCal),
		macros.Fat, macros.FatCal,
		macros.Carbs, macros.CarbsCal)
}

func formatProfile(summary *services.ProfileSummary) string {
	u := summary.User
	genderLabel := "Мужчина"
	if u.Gender == constants.GenderFemale {
		genderLabel = "Женщина"
	}

	var b strings.Builder
	b.WriteString("👤 <b>Ваш профиль</b>\n\n")
	b.WriteString("<b>Личные данные:</b>\n")
	fmt.Fprintf(&b, "• Имя: %s\n", u.Name)
	fmt.Fprintf(&b, "• Пол: %s\n", genderLabel)
	fmt.Fprintf(&b, "• Возраст: %d лет\n", u.Age)
	fmt.Fprintf(&b, "• Рост: %.0f см\n", u.Height)
	fmt.Fprintf(&b, "• Вес: %.1f кг\n", u.Weight)
	fmt.Fprintf(&b, "• ИМТ: %.1f (%s)\n", summary.BMI, summary.BMICategory)
	fmt.Fprintf(&b, "• Уровень активности: %s\n", ActivityLabel(u.ActivityLevel))
	fmt.Fprintf(&b, "• Цель: %s\n\n", GoalLabel(u.Goal))
	b.WriteString("<b>Суточная норма:</b>\n")
	fmt.Fprintf(&b, "• Калории: %.0f ккал\n", u.GoalCalories)
	fmt.Fprintf(&b, "• Белки: %d г\n", u.Protein)
	fmt.Fprintf(&b, "• Жиры: %d г\n", u.Fat)
	fmt.Fprintf(&b, "• Углеводы: %d г\n", u.Carbs)
	fmt.Fprintf(&b, "• Вода: %d мл\n", u.WaterGoal)
	if u.RegistrationDate != "" {
		date := u.RegistrationDate
		if len(date) > 10 {
			date = date[:10]
		}
		fmt.Fprintf(&b, "\n• Дата регистрации: %s", utils.FormatDate(date))
	}
	return b.String()
}

func formatDiaryDay(view *services.DayView) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📝 <b>Дневник питания за %s</b>\n\n", utils.FormatDate(view.Date))

	if len(view.Meals) == 0 {
		b.WriteString("В дневнике пока нет записей на этот день. Нажмите 'Добавить продукт', чтобы начать вести дневник.")
		return b.String()
	}

	for _, mealType := range view.SortedMealTypes() {
		entries := view.Meals[mealType]
		fmt.Fprintf(&b, "<b>%s:</b>\n", mealType)
		var mealCalories float64
		for _, e := range entries {
			fmt.Fprintf(&b, "  • %s – %.0f ккал\n", e.FoodName, e.Calories)
			mealCalories += e.Calories
		}
		fmt.Fprintf(&b, "  Всего: %.0f ккал\n\n", mealCalories)
	}

	b.WriteString("<b>Итого за день:</b>\n")
	if view.Targets != nil && view.Targets.GoalCalories > 0 {
		t := view.Targets
		fmt.Fprintf(&b, "Калории: %.0f / %.0f ккал (%d%%)\n",
			view.Totals.Calories, t.GoalCalories,
			nutrition.ProgressPercent(view.Totals.Calories, t.GoalCalories))
		fmt.Fprintf(&b, "Белки: %.1f / %d г (%d%%)\n",
			view.Totals.Protein, t.Protein,
			nutrition.ProgressPercent(view.Totals.Protein, float64(t.Protein)))
		fmt.Fprintf(&b, "Жиры: %.1f / %d г (%d%%)\n",
			view.Totals.Fat, t.Fat,
			nutrition.ProgressPercent(view.Totals.Fat, float64(t.Fat)))
		fmt.Fprintf(&b, "Углеводы: %.1f / %d г (%d%%)\n",
			view.Totals.Carbs, t.Carbs,
			nutrition.ProgressPercent(view.Totals.Carbs, float64(t.Carbs)))
	} else {
		fmt.Fprintf(&b, "Калории: %.0f ккал\nБелки: %.1f г\nЖиры: %.1f г\nУглеводы: %.1f г\n",
			view.Totals.Calories, view.Totals.Protein, view.Totals.Fat, view.Totals.Carbs)
	}
	return b.String()
}

func formatFoodCard(food *models.Food) string {
	serving := food.Serving
	if serving == "" {
		serving = "100 г"
	}
	return fmt.Sprintf("Выбран продукт: <b>%s</b>\n\n"+
		"Пищевая ценность (на %s):\n"+
		"• Калории: %.0f ккал\n"+
		"• Белки: %.1f г\n"+
		"• Жиры: %.1f г\n"+
		"• Углеводы: %.1f г\n\n"+
		"Введите вес порции в граммах:",
		food.Name, serving, food.Calories, food.Protein, food.Fat, food.Carbs)
}

func formatWaterStatus(status *services.DayStatus) string {
	return fmt.Sprintf("💧 <b>Водный баланс за сегодня</b>\n\n"+
		"Выпито: %d / %d мл (%d%%)\n%s\n\n"+
		"Добавьте выпитую воду:",
		status.Total, status.Goal, status.Percent, status.Bar)
}

func formatWaterWeek(stats *services.WeekStats) string {
	var b strings.Builder
	b.WriteString("📊 <b>Статистика потребления воды за неделю</b>\n\n")
	fmt.Fprintf(&b, "Всего за неделю: %d мл\n", stats.Total)
	fmt.Fprintf(&b, "В среднем за день: %.0f мл\n", stats.Average)
	fmt.Fprintf(&b, "Целевое потребление: %d мл в день\n\n", stats.Goal)

	if stats.MaxDay != nil {
		fmt.Fprintf(&b, "Максимум: %d мл (%s)\n", stats.MaxDay.Amount, utils.FormatDate(stats.MaxDay.Date))
	}
	if stats.MinDay != nil {
		fmt.Fprintf(&b, "Минимум: %d мл (%s)\n\n", stats.MinDay.Amount, utils.FormatDate(stats.MinDay.Date))
	}

	goal := float64(stats.Goal)
	switch {
	case stats.Average < goal*0.8:
		b.WriteString("⚠️ <b>Рекомендация:</b> Вы потребляете значительно меньше воды, чем рекомендуется. Увеличьте потребление для поддержания здоровья и хорошего самочувствия.")
	case stats.Average < goal:
		b.WriteString("📌 <b>Рекомендация:</b> Вы немного не дотягиваете до целевого потребления воды. Старайтесь выпивать больше воды в течение дня.")
	default:
		b.WriteString("✅ <b>Отлично!</b> Вы соблюдаете рекомендованную норму потребления воды. Продолжайте в том же духе!")
	}
	return b.String()
}

func formatNutritionReport(report *services.NutritionReport) string {
	var b strings.Builder
	b.WriteString("📊 <b>Статистика питания за сегодня</b>\n\n")
	fmt.Fprintf(&b, "Калории: %.0f / %.0f ккал (%d%%)\n",
		report.Totals.Calories, report.GoalCalories, report.CaloriesPercent)
	fmt.Fprintf(&b, "Белки: %.1f / %.1f г (%d%%)\n",
		report.Totals.Protein, report.GoalProtein, report.ProteinPercent)
	fmt.Fprintf(&b, "Жиры: %.1f / %.1f г (%d%%)\n",
		report.Totals.Fat, report.GoalFat, report.FatPercent)
	fmt.Fprintf(&b, "Углеводы: %.1f / %.1f г (%d%%)\n\n",
		report.Totals.Carbs, report.GoalCarbs, report.CarbsPercent)

	b.WriteString("<b>Анализ:</b>\n")
	switch {
	case report.CaloriesPercent >= 90 && report.CaloriesPercent <= 110:
		b.WriteString("✅ Вы соблюдаете дневную норму калорий.\n")
	case report.CaloriesPercent < 90:
		b.WriteString("⚠️ Вы потребляете меньше калорий, чем нужно для вашей цели.\n")
	default:
		b.WriteString("⚠️ Вы превышаете дневную норму калорий.\n")
	}
	if report.ProteinPercent < 90 {
		b.WriteString("📌 Рекомендуем увеличить потребление белка.\n")
	}
	if report.FatPercent > 110 {
		b.WriteString("📌 Рекомендуем уменьшить потребление жиров.\n")
	}
	if report.CarbsPercent > 110 && report.Goal == constants.GoalLose {
		b.WriteString("📌 Для похудения стоит уменьшить потребление углеводов.\n")
	}
	return b.String()
}

func formatRecipe(rec *models.Recipe) string {
	favorite := ""
	if rec.IsFavorite {
		favorite = " 🌟"
	}
	return fmt.Sprintf("🍳 <b>%s</b>%s\n\n"+
		"<b>Ингредиенты:</b>\n%s\n\n"+
		"<b>Приготовление:</b>\n%s\n\n"+
		"<b>Пищевая ценность:</b>\n"+
		"• Калории: %.0f ккал\n"+
		"• Белки: %.1f г\n"+
		"• Жиры: %.1f г\n"+
		"• Углеводы: %.1f г",
		rec.Name, favorite, rec.Ingredients, rec.Instructions,
		rec.Calories, rec.Protein, rec.Fat, rec.Carbs)
}

func formatPlanDay(date string, entries []models.MealPlanEntry, totals models.DailyTotals) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🍽 <b>Рацион на %s</b>\n\n", utils.FormatDate(date))

	if len(entries) == 0 {
		b.WriteString("План питания на этот день пуст. Добавьте блюда из ваших рецептов.")
		return b.String()
	}

	currentMeal := ""
	for _, e := range entries {
		if e.MealType != currentMeal {
			if currentMeal != "" {
				b.WriteString("\n")
			}
			fmt.Fprintf(&b, "<b>%s:</b>\n", e.MealType)
			currentMeal = e.MealType
		}
		fmt.Fprintf(&b, "  • %s – %.0f ккал\n", e.Name, e.Calories)
	}

	fmt.Fprintf(&b, "\n<b>Итого:</b> %.0f ккал (Б: %.0f г, Ж: %.0f г, У: %.0f г)",
		totals.Calories, totals.Protein, totals.Fat, totals.Carbs)
	return b.String()
}

func formatCart(items []models.CartItem) string {
	if len(items) == 0 {
		return "🛒 <b>Продуктовая корзина</b>\n\nКорзина пуста. Сформируйте список из плана питания или добавьте продукты вручную."
	}

	var b strings.Builder
	b.WriteString("🛒 <b>Продуктовая корзина</b>\n\n")
	var pending, bought int
	for _, item := range items {
		if item.Purchased {
			bought++
			continue
		}
		pending++
		fmt.Fprintf(&b, "• %s — %.0f %s\n", item.Product, item.Quantity, item.Unit)
	}
	if bought > 0 {
		b.WriteString("\n<b>Куплено:</b>\n")
		for _, item := range items {
			if item.Purchased {
				fmt.Fprintf(&b, "• <s>%s — %.0f %s</s>\n", item.Product, item.Quantity, item.Unit)
			}
		}
	}
	fmt.Fprintf(&b, "\nОсталось купить: %d", pending)
	return b.String()
}

func formatWeightHistory(records []models.WeightRecord, delta float64, hasDelta bool) string {
	if len(records) == 0 {
		return "📈 <b>Отчет по весу</b>\n\nПока нет записей о весе. Запишите свой вес, чтобы отслеживать прогресс."
	}

	var b strings.Builder
	b.WriteString("📈 <b>История веса</b>\n\n")
	for _, r := range records {
		fmt.Fprintf(&b, "• %s — %.1f кг\n", utils.FormatDate(r.Date), r.Weight)
	}
	if hasDelta {
		sign := ""
		if delta > 0 {
			sign = "+"
		}
		fmt.Fprintf(&b, "\nИзменение за период: %s%.1f кг", sign, delta)
	}
	return b.String()
}

// formatWeightChartStats is the caption sent with the weight chart.
// records come newest first.
func formatWeightChartStats(records []models.WeightRecord) string {
	if len(records) == 0 {
		return "📈 Динамика веса"
	}

	newest := records[0]
	oldest := records[len(records)-1]
	totalChange := newest.Weight - oldest.Weight

	totalDays := 0
	if from, err := time.Parse(constants.DateFormat, oldest.Date); err == nil {
		if to, err := time.Parse(constants.DateFormat, newest.Date); err == nil {
			totalDays = int(to.Sub(from).Hours() / 24)
		}
	}
	perWeek := 0.0
	if totalDays > 0 {
		perWeek = totalChange / float64(totalDays) * 7
	}

	sign := ""
	if totalChange > 0 {
		sign = "+"
	}
	trend := "➡️"
	if totalChange > 0 {
		trend = "📈"
	} else if totalChange < 0 {
		trend = "📉"
	}

	return fmt.Sprintf("📊 <b>Статистика за %d дней:</b>\n\n"+
		"🎯 <b>Начальный вес:</b> %.1f кг\n"+
		"⚖️ <b>Текущий вес:</b> %.1f кг\n"+
		"%s <b>Общее изменение:</b> %s%.1f кг\n"+
		"📈 <b>Средний темп:</b> %s%.1f кг/неделю\n"+
		"📋 <b>Количество измерений:</b> %d",
		totalDays, oldest.Weight, newest.Weight,
		trend, sign, totalChange, sign, perWeek, len(records))
}

func formatNutritionist(n *models.Nutritionist) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🩺 <b>%s</b>\n", n.Name)
	if n.Specialty != "" {
		fmt.Fprintf(&b, "Специализация: %s\n", n.Specialty)
	}
	if n.Experience != "" {
		fmt.Fprintf(&b, "Опыт: %s\n", n.Experience)
	}
	if n.Contact != "" {
		fmt.Fprintf(&b, "Контакт: %s\n", n.Contact)
	}
	return b.String()
}

func formatArticle(a *models.Article) string {
	return fmt.Sprintf("%s\n\n<b>%s</b>\n\n%s", a.Topic, a.Title, a.Body)
}

func reminderTitle(reminderType string) string {
	switch reminderType {
	case constants.ReminderWater:
		return "Напоминание о воде"
	case constants.ReminderMeal:
		return "Напоминание о еде"
	case constants.ReminderWeigh:
		return "Напоминание о взвешивании"
	default:
		return "Напоминание"
	}
}
