package telegram

import (
	"context"
	"strings"

	tgmodels "github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/dietplanner/backend/pkg/utils"
)

// handleMessage routes commands, menu buttons and dialog input
func (b *Bot) handleMessage(ctx context.Context, msg *tgmodels.Message) {
	if msg.From == nil {
		return
	}
	userID := msg.From.ID
	text := strings.TrimSpace(msg.Text)

	switch text {
	case "/start", btnStart:
		b.handleStart(ctx, msg)
		return
	case "/help":
		b.send(ctx, msg.Chat.ID, helpText)
		return
	case "/about", btnAbout:
		b.send(ctx, msg.Chat.ID, aboutText)
		return
	case btnProfile:
		b.showProfile(ctx, msg.Chat.ID, userID)
		return
	case btnDiary:
		b.showDiary(ctx, msg.Chat.ID, userID, todayDate())
		return
	case btnPlan:
		b.showPlan(ctx, msg.Chat.ID, userID, todayDate())
		return
	case btnWater:
		b.showWater(ctx, msg.Chat.ID, userID)
		return
	case btnStats:
		b.showStatsMenu(ctx, msg.Chat.ID, userID)
		return
	case btnRecipes:
		b.showRecipesMenu(ctx, msg.Chat.ID)
		return
	case btnConsult:
		b.showConsultation(ctx, msg.Chat.ID)
		return
	case btnCart:
		b.showCartMenu(ctx, msg.Chat.ID, userID)
		return
	case btnArticles:
		b.showTopics(ctx, msg.Chat.ID)
		return
	case btnReport:
		b.showWeightMenu(ctx, msg.Chat.ID, userID)
		return
	}

	// not a menu action: feed the active dialog
	b.handleDialogInput(ctx, msg, userID, text)
}

// handleDialogInput advances the user's FSM dialog with free text
func (b *Bot) handleDialogInput(ctx context.Context, msg *tgmodels.Message, userID int64, text string) {
	state := b.fsm.State(userID)
	chatID := msg.Chat.ID

	switch state {
	case StateRegName, StateRegGender, StateRegAge, StateRegHeight, StateRegWeight, StateRegActivity, StateRegGoal:
		b.handleRegistrationInput(ctx, chatID, userID, state, text)
	case StateDiaryFood:
		b.handleFoodSearchInput(ctx, chatID, userID, text)
	case StateDiaryWeight:
		b.handleFoodWeightInput(ctx, chatID, userID, text)
	case StateDiaryNatural:
		b.handleNaturalInput(ctx, chatID, userID, text)
	case StateWaterCustom:
		b.handleWaterCustomInput(ctx, chatID, userID, text)
	case StateWaterGoal:
		b.handleWaterGoalInput(ctx, chatID, userID, text)
	case StateWeightInput:
		b.handleWeightInput(ctx, chatID, userID, text)
	case StateRecipeName, StateRecipeIngredients, StateRecipeInstructions,
		StateRecipeCalories, StateRecipeProtein, StateRecipeFat, StateRecipeCarbs:
		b.handleRecipeCreationInput(ctx, chatID, userID, state, text)
	case StateCartManual:
		b.handleCartManualInput(ctx, chatID, userID, text)
	case StateReminderTime:
		b.handleReminderTimeInput(ctx, chatID, userID, text)
	default:
		b.send(ctx, chatID, "Не понимаю эту команду. Используйте меню или /help.")
	}
}

// handleCallback routes inline keyboard presses
func (b *Bot) handleCallback(ctx context.Context, query *tgmodels.CallbackQuery) {
	b.answerCallback(ctx, query.ID)

	userID := query.From.ID
	chatID := callbackChatID(query)
	data := query.Data

	action, arg := splitCallback(data)

	switch action {
	case "return_to_main":
		b.fsm.Clear(userID)
		b.sendWithMarkup(ctx, chatID, "Вы вернулись в главное меню", mainMenuKeyboard())

	// diary
	case "date":
		b.handleDiaryDate(ctx, chatID, userID, arg)
	case "add_food":
		b.handleAddFood(ctx, chatID, userID, arg)
	case "confirm_clear":
		b.handleConfirmClearDiary(ctx, chatID, userID, arg)
	case "clear_diary":
		b.handleClearDiary(ctx, chatID, userID, arg)
	case "return_to_diary":
		b.showDiary(ctx, chatID, userID, orToday(arg))
	case "meal_type":
		b.handleMealTypeChosen(ctx, chatID, userID, arg)
	case "recent_food":
		b.handleRecentFood(ctx, chatID, userID, arg)
	case "select_food":
		b.handleFoodSelected(ctx, chatID, userID, arg)
	case "natural_input":
		b.handleNaturalStart(ctx, chatID, userID)

	// water
	case "water_add":
		b.handleWaterAdd(ctx, chatID, userID, arg)
	case "water_custom":
		b.fsm.SetState(userID, StateWaterCustom)
		b.send(ctx, chatID, "Введите количество воды в миллилитрах:")
	case "water_goal":
		b.fsm.SetState(userID, StateWaterGoal)
		b.send(ctx, chatID, "Введите дневную цель по воде в миллилитрах (500-10000):")

	// weight
	case "weight":
		b.handleWeightAction(ctx, chatID, userID, arg)

	// recipes
	case "recipe":
		b.handleRecipeAction(ctx, chatID, userID, arg)
	case "view_recipe":
		b.handleViewRecipe(ctx, chatID, userID, arg)
	case "toggle_favorite":
		b.handleToggleFavorite(ctx, chatID, userID, arg)
	case "delete_recipe":
		b.handleDeleteRecipe(ctx, chatID, userID, arg)
	case "recipe_to_diary":
		b.handleRecipeToDiary(ctx, chatID, userID, arg)
	case "recipe_to_plan":
		b.handleRecipeToPlan(ctx, chatID, userID, arg)
	case "recipe_meal":
		b.handleRecipeMealChosen(ctx, chatID, userID, arg)

	// meal plan
	case "plan_date":
		b.handlePlanDate(ctx, chatID, userID, arg)
	case "plan":
		b.handlePlanAction(ctx, chatID, userID, arg)
	case "plan_meal":
		b.handlePlanMealChosen(ctx, chatID, userID, arg)
	case "plan_pick":
		b.handlePlanRecipePicked(ctx, chatID, userID, arg)
	case "plan_remove":
		b.handlePlanRemove(ctx, chatID, userID, arg)

	// cart
	case "cart":
		b.handleCartAction(ctx, chatID, userID, arg)
	case "cart_period":
		b.handleCartGenerate(ctx, chatID, userID, arg)
	case "cart_toggle":
		b.handleCartToggle(ctx, chatID, userID, arg)

	// content
	case "topic":
		b.handleTopicChosen(ctx, chatID, arg)
	case "article":
		b.handleArticleChosen(ctx, chatID, arg)
	case "articles":
		b.showTopics(ctx, chatID)
	case "nutri":
		b.handleNutritionistCard(ctx, chatID, arg)

	// stats
	case "stats":
		b.handleStatsAction(ctx, chatID, userID, arg)

	// reminders
	case "reminder_new":
		b.handleReminderNew(ctx, chatID, userID, arg)
	case "reminder_toggle":
		b.handleReminderToggle(ctx, chatID, userID, arg)
	case "reminder_delete":
		b.handleReminderDelete(ctx, chatID, userID, arg)

	default:
		b.log.Debug("unknown callback", zap.String("data", data))
	}
}

// splitCallback separates "action:rest" callback data
func splitCallback(data string) (action, arg string) {
	if i := strings.Index(data, ":"); i >= 0 {
		return data[:i], data[i+1:]
	}
	return data, ""
}

func todayDate() string {
	return utils.Today()
}

// orToday returns the argument when it looks like a date, else today
func orToday(arg string) string {
	if len(arg) == 10 {
		return arg
	}
	return todayDate()
}
