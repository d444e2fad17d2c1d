package telegram

import (
	"context"
	"strconv"
)

// showPlan renders the meal plan for a date
func (b *Bot) showPlan(ctx context.Context, chatID, userID int64, date string) {
	entries, err := b.services.MealPlans.Day(ctx, userID, date)
	if err != nil {
		b.replyError(ctx, chatID, err)
		return
	}
	totals, err := b.services.MealPlans.DayTotals(ctx, userID, date)
	if err != nil {
		b.replyError(ctx, chatID, err)
		return
	}
	b.sendWithMarkup(ctx, chatID, formatPlanDay(date, entries, totals), planKeyboard(date))
}

// handlePlanDate navigates between plan days. arg is "prev:DATE",
// "next:DATE" or "today".
func (b *Bot) handlePlanDate(ctx context.Context, chatID, userID int64, arg string) {
	b.showPlan(ctx, chatID, userID, navigateDate(arg))
}

// handlePlanAction routes the plan menu. arg is "add:DATE", "clear:DATE"
// or "to_diary:DATE".
func (b *Bot) handlePlanAction(ctx context.Context, chatID, userID int64, arg string) {
	action, date := splitCallback(arg)
	date = orToday(date)

	switch action {
	case "add":
		b.sendWithMarkup(ctx, chatID, "Выберите приём пищи:", planMealKeyboard(date))

	case "clear":
		if err := b.services.MealPlans.ClearDay(ctx, userID, date); err != nil {
			b.replyError(ctx, chatID, err)
			return
		}
		b.showPlan(ctx, chatID, userID, date)

	case "to_diary":
		b.transferPlanToDiary(ctx, chatID, userID, date)
	}
}

// transferPlanToDiary copies every planned dish into the diary for the day
func (b *Bot) transferPlanToDiary(ctx context.Context, chatID, userID int64, date string) {
	entries, err := b.services.MealPlans.Day(ctx, userID, date)
	if err != nil {
		b.replyError(ctx, chatID, err)
		return
	}
	if len(entries) == 0 {
		b.send(ctx, chatID, "План питания на этот день пуст.")
		return
	}

	for _, entry := range entries {
		if _, err := b.services.MealPlans.LogToDiary(ctx, userID, entry.RecipeID, entry.MealType, date); err != nil {
			b.replyError(ctx, chatID, err)
			return
		}
	}
	b.send(ctx, chatID, "✅ План питания перенесен в дневник!")
	b.showDiary(ctx, chatID, userID, date)
}

// handlePlanMealChosen offers the user's recipes for the chosen meal.
// arg is "MEAL:DATE".
func (b *Bot) handlePlanMealChosen(ctx context.Context, chatID, userID int64, arg string) {
	meal, date := splitCallback(arg)
	date = orToday(date)

	recipes, err := b.services.Recipes.List(ctx, userID, false)
	if err != nil {
		b.replyError(ctx, chatID, err)
		return
	}
	if len(recipes) == 0 {
		b.sendWithMarkup(ctx, chatID,
			"📖 У вас пока нет рецептов. Сначала создайте или сгенерируйте рецепт.", recipesMenuKeyboard())
		return
	}
	b.sendWithMarkup(ctx, chatID, "Выберите блюдо на <b>"+meal+"</b>:", planRecipePickKeyboard(recipes, meal, date))
}

// handlePlanRecipePicked adds the recipe to the plan. arg is
// "RECIPE_ID:MEAL:DATE".
func (b *Bot) handlePlanRecipePicked(ctx context.Context, chatID, userID int64, arg string) {
	idStr, rest := splitCallback(arg)
	meal, date := splitCallback(rest)
	date = orToday(date)

	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return
	}
	if _, err := b.services.MealPlans.Add(ctx, userID, id, meal, date); err != nil {
		b.replyError(ctx, chatID, err)
		return
	}
	b.send(ctx, chatID, "✅ Блюдо добавлено в план питания!")
	b.showPlan(ctx, chatID, userID, date)
}

// handlePlanRemove deletes one planned dish. arg is the plan entry id.
func (b *Bot) handlePlanRemove(ctx context.Context, chatID, userID int64, arg string) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return
	}
	if err := b.services.MealPlans.Remove(ctx, userID, id); err != nil {
		b.replyError(ctx, chatID, err)
		return
	}
	b.showPlan(ctx, chatID, userID, todayDate())
}
