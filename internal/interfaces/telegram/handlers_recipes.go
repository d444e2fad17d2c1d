package telegram

import (
	"context"
	"strconv"
	"strings"

	"github.com/dietplanner/backend/internal/domain/models"
	"github.com/dietplanner/backend/pkg/errors"
)

// showRecipesMenu is the entry point of the recipes section
func (b *Bot) showRecipesMenu(ctx context.Context, chatID int64) {
	b.sendWithMarkup(ctx, chatID, "🍳 <b>Рецепты</b>\n\nЧто будем делать?", recipesMenuKeyboard())
}

// handleRecipeAction routes the recipes menu. arg is list, favorites,
// create, generate, save, cancel or menu.
func (b *Bot) handleRecipeAction(ctx context.Context, chatID, userID int64, arg string) {
	switch arg {
	case "menu":
		b.showRecipesMenu(ctx, chatID)

	case "list", "favorites":
		favoritesOnly := arg == "favorites"
		recipes, err := b.services.Recipes.List(ctx, userID, favoritesOnly)
		if err != nil {
			b.replyError(ctx, chatID, err)
			return
		}
		if len(recipes) == 0 {
			if favoritesOnly {
				b.sendWithMarkup(ctx, chatID, "🌟 У вас пока нет избранных рецептов.", recipesMenuKeyboard())
			} else {
				b.sendWithMarkup(ctx, chatID, "📖 У вас пока нет рецептов. Создайте свой или сгенерируйте!", recipesMenuKeyboard())
			}
			return
		}
		title := "🔍 <b>Мои рецепты</b>"
		if favoritesOnly {
			title = "🌟 <b>Избранные рецепты</b>"
		}
		b.sendWithMarkup(ctx, chatID, title, recipeListKeyboard(recipes))

	case "create":
		b.fsm.Clear(userID)
		b.fsm.SetState(userID, StateRecipeName)
		b.send(ctx, chatID, "📝 Создаем новый рецепт.\n\nКак называется блюдо?")

	case "generate":
		b.send(ctx, chatID, "✨ Подбираю рецепт под вашу цель...")
		recipe, err := b.services.Recipes.Generate(ctx, userID)
		if err != nil {
			b.replyError(ctx, chatID, err)
			return
		}
		// generated recipes are not persisted yet, so offer the same
		// confirm step as manual creation
		b.stashRecipeDraft(userID, recipe)
		b.sendWithMarkup(ctx, chatID, formatRecipe(recipe)+"\n\nСохранить рецепт?", recipeConfirmKeyboard())

	case "save":
		b.saveDraftRecipe(ctx, chatID, userID)

	case "cancel":
		b.fsm.Clear(userID)
		b.sendWithMarkup(ctx, chatID, "❌ Создание рецепта отменено.", recipesMenuKeyboard())
	}
}

// handleRecipeCreationInput walks through the recipe questionnaire
func (b *Bot) handleRecipeCreationInput(ctx context.Context, chatID, userID int64, state State, text string) {
	switch state {
	case StateRecipeName:
		b.fsm.SetData(userID, "r_name", text)
		b.fsm.SetState(userID, StateRecipeIngredients)
		b.send(ctx, chatID, "Перечислите ингредиенты, каждый с новой строки, например:\n\nКуриная грудка - 200 г\nОгурцы - 2 шт")

	case StateRecipeIngredients:
		b.fsm.SetData(userID, "r_ingredients", text)
		b.fsm.SetState(userID, StateRecipeInstructions)
		b.send(ctx, chatID, "Опишите способ приготовления:")

	case StateRecipeInstructions:
		b.fsm.SetData(userID, "r_instructions", text)
		b.fsm.SetState(userID, StateRecipeCalories)
		b.send(ctx, chatID, "Сколько калорий в порции?")

	case StateRecipeCalories:
		b.recipeNumberStep(ctx, chatID, userID, text, "r_calories", StateRecipeProtein, "Сколько грамм белка?")

	case StateRecipeProtein:
		b.recipeNumberStep(ctx, chatID, userID, text, "r_protein", StateRecipeFat, "Сколько грамм жиров?")

	case StateRecipeFat:
		b.recipeNumberStep(ctx, chatID, userID, text, "r_fat", StateRecipeCarbs, "Сколько грамм углеводов?")

	case StateRecipeCarbs:
		if !b.storeRecipeNumber(ctx, chatID, userID, text, "r_carbs") {
			return
		}
		b.fsm.SetState(userID, StateNone)
		draft := b.draftRecipe(userID)
		b.sendWithMarkup(ctx, chatID, formatRecipe(draft)+"\n\nСохранить рецепт?", recipeConfirmKeyboard())
	}
}

func (b *Bot) recipeNumberStep(ctx context.Context, chatID, userID int64, text, key string, next State, prompt string) {
	if !b.storeRecipeNumber(ctx, chatID, userID, text, key) {
		return
	}
	b.fsm.SetState(userID, next)
	b.send(ctx, chatID, prompt)
}

func (b *Bot) storeRecipeNumber(ctx context.Context, chatID, userID int64, text, key string) bool {
	value, err := strconv.ParseFloat(strings.Replace(text, ",", ".", 1), 64)
	if err != nil || value < 0 {
		b.send(ctx, chatID, "Пожалуйста, введите неотрицательное число.")
		return false
	}
	b.fsm.SetData(userID, key, strconv.FormatFloat(value, 'f', -1, 64))
	return true
}

// stashRecipeDraft fills the dialog data with a ready recipe so the
// save/cancel confirm step can pick it up.
func (b *Bot) stashRecipeDraft(userID int64, r *models.Recipe) {
	b.fsm.Clear(userID)
	b.fsm.SetData(userID, "r_name", r.Name)
	b.fsm.SetData(userID, "r_ingredients", r.Ingredients)
	b.fsm.SetData(userID, "r_instructions", r.Instructions)
	b.fsm.SetData(userID, "r_calories", strconv.FormatFloat(r.Calories, 'f', -1, 64))
	b.fsm.SetData(userID, "r_protein", strconv.FormatFloat(r.Protein, 'f', -1, 64))
	b.fsm.SetData(userID, "r_fat", strconv.FormatFloat(r.Fat, 'f', -1, 64))
	b.fsm.SetData(userID, "r_carbs", strconv.FormatFloat(r.Carbs, 'f', -1, 64))
}

func (b *Bot) draftRecipe(userID int64) *models.Recipe {
	num := func(key string) float64 {
		v, _ := strconv.ParseFloat(b.fsm.Data(userID, key), 64)
		return v
	}
	return &models.Recipe{
		UserID:       userID,
		Name:         b.fsm.Data(userID, "r_name"),
		Ingredients:  b.fsm.Data(userID, "r_ingredients"),
		Instructions: b.fsm.Data(userID, "r_instructions"),
		Calories:     num("r_calories"),
		Protein:      num("r_protein"),
		Fat:          num("r_fat"),
		Carbs:        num("r_carbs"),
	}
}

func (b *Bot) saveDraftRecipe(ctx context.Context, chatID, userID int64) {
	draft := b.draftRecipe(userID)
	if draft.Name == "" {
		b.sendWithMarkup(ctx, chatID, "Черновик рецепта не найден. Начните создание заново.", recipesMenuKeyboard())
		return
	}
	id, err := b.services.Recipes.Save(ctx, draft)
	if err != nil {
		b.replyError(ctx, chatID, err)
		return
	}
	b.fsm.Clear(userID)
	draft.ID = id
	b.sendWithMarkup(ctx, chatID, "✅ Рецепт «"+draft.Name+"» сохранен!", recipeDetailsKeyboard(id))
}

// handleViewRecipe shows a recipe card. arg is the recipe id.
func (b *Bot) handleViewRecipe(ctx context.Context, chatID, userID int64, arg string) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return
	}
	recipe, err := b.services.Recipes.Get(ctx, userID, id)
	if err != nil {
		if errors.IsNotFound(err) {
			b.send(ctx, chatID, "Рецепт не найден.")
			return
		}
		b.replyError(ctx, chatID, err)
		return
	}
	b.sendWithMarkup(ctx, chatID, formatRecipe(recipe), recipeDetailsKeyboard(recipe.ID))
}

// handleToggleFavorite flips the favorite flag. arg is the recipe id.
func (b *Bot) handleToggleFavorite(ctx context.Context, chatID, userID int64, arg string) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return
	}
	favorite, err := b.services.Recipes.ToggleFavorite(ctx, userID, id)
	if err != nil {
		b.replyError(ctx, chatID, err)
		return
	}
	if favorite {
		b.send(ctx, chatID, "🌟 Рецепт добавлен в избранное!")
	} else {
		b.send(ctx, chatID, "Рецепт убран из избранного.")
	}
}

// handleDeleteRecipe removes a recipe. arg is the recipe id.
func (b *Bot) handleDeleteRecipe(ctx context.Context, chatID, userID int64, arg string) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return
	}
	if err := b.services.Recipes.Delete(ctx, userID, id); err != nil {
		b.replyError(ctx, chatID, err)
		return
	}
	b.sendWithMarkup(ctx, chatID, "🗑 Рецепт удален.", recipesMenuKeyboard())
}

// handleRecipeToDiary asks which meal to log the recipe under. arg is
// the recipe id.
func (b *Bot) handleRecipeToDiary(ctx context.Context, chatID, userID int64, arg string) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return
	}
	b.sendWithMarkup(ctx, chatID, "В какой приём пищи записать?", recipeMealKeyboard(id))
}

// handleRecipeMealChosen logs the recipe into today's diary. arg is
// "RECIPE_ID:MEAL".
func (b *Bot) handleRecipeMealChosen(ctx context.Context, chatID, userID int64, arg string) {
	idStr, meal := splitCallback(arg)
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return
	}
	date := todayDate()
	if _, err := b.services.MealPlans.LogToDiary(ctx, userID, id, meal, date); err != nil {
		b.replyError(ctx, chatID, err)
		return
	}
	b.send(ctx, chatID, "✅ Рецепт записан в дневник питания!")
	b.showDiary(ctx, chatID, userID, date)
}

// handleRecipeToPlan asks which meal to plan the recipe under. arg is
// the recipe id.
func (b *Bot) handleRecipeToPlan(ctx context.Context, chatID, userID int64, arg string) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return
	}
	b.sendWithMarkup(ctx, chatID, "В какой приём пищи добавить блюдо на сегодня?", recipePlanMealKeyboard(id, todayDate()))
}
