package telegram

import (
	"context"
	"strconv"
	"strings"

	tgmodels "github.com/go-telegram/bot/models"
	"go.uber.org/zap"

	"github.com/dietplanner/backend/internal/domain/models"
	"github.com/dietplanner/backend/pkg/errors"
	"github.com/dietplanner/backend/pkg/nutrition"
)

// handleStart greets the user and begins or resumes registration
func (b *Bot) handleStart(ctx context.Context, msg *tgmodels.Message) {
	userID := msg.From.ID
	name := msg.From.FirstName
	chatID := msg.Chat.ID

	user, err := b.services.Profile.Get(ctx, userID)
	if err != nil {
		b.replyError(ctx, chatID, err)
		return
	}

	if user != nil && user.RegistrationComplete {
		if msg.Text == btnStart {
			// a completed user pressed the onboarding button again
			b.sendWithMarkup(ctx, chatID, "Вы уже зарегистрированы! Выбери, что ты хочешь сделать:", mainMenuKeyboard())
			return
		}
		b.sendWithMarkup(ctx, chatID,
			"👋 С возвращением, "+name+"!\n\nВыбери, что ты хочешь сделать:", mainMenuKeyboard())
		return
	}

	if msg.Text == "/start" {
		if _, err := b.services.Profile.StartRegistration(ctx, userID, name); err != nil {
			b.replyError(ctx, chatID, err)
			return
		}
		if user != nil {
			b.sendWithMarkup(ctx, chatID,
				"👋 С возвращением, "+name+"!\n\nПохоже, ты не завершил регистрацию. Давай продолжим?", startKeyboard())
			return
		}
		b.sendWithMarkup(ctx, chatID, formatWelcome(name), startKeyboard())
		return
	}

	// the "go" button: begin the questionnaire
	b.fsm.Clear(userID)
	b.fsm.SetState(userID, StateRegName)
	b.send(ctx, chatID,
		"👶 <b>Начинаем регистрацию</b>\n\n"+
			"Для составления персонального плана питания мне нужно собрать немного информации о тебе.\n\n"+
			"Как я могу к тебе обращаться?")
}

// handleRegistrationInput advances the registration questionnaire
func (b *Bot) handleRegistrationInput(ctx context.Context, chatID, userID int64, state State, text string) {
	switch state {
	case StateRegName:
		name := strings.TrimSpace(text)
		if name == "" || len([]rune(name)) > 50 {
			b.send(ctx, chatID, "Пожалуйста, введите корректное имя (не более 50 символов).")
			return
		}
		b.fsm.SetData(userID, "name", name)
		b.fsm.SetState(userID, StateRegGender)
		b.sendWithMarkup(ctx, chatID, "Приятно познакомиться, "+name+"!\n\nУкажи свой пол:", genderKeyboard())

	case StateRegGender:
		gender, ok := genderLabels[text]
		if !ok {
			b.send(ctx, chatID, "Пожалуйста, выбери пол кнопкой на клавиатуре.")
			return
		}
		b.fsm.SetData(userID, "gender", gender)
		b.fsm.SetState(userID, StateRegAge)
		b.send(ctx, chatID, "Сколько тебе лет?")

	case StateRegAge:
		age, err := strconv.Atoi(text)
		if err != nil {
			b.send(ctx, chatID, "Пожалуйста, введите возраст числом.")
			return
		}
		if err := b.services.Profile.ValidateAge(age); err != nil {
			b.replyError(ctx, chatID, err)
			return
		}
		b.fsm.SetData(userID, "age", text)
		b.fsm.SetState(userID, StateRegHeight)
		b.send(ctx, chatID, "Какой у тебя рост в сантиметрах?")

	case StateRegHeight:
		height, err := strconv.ParseFloat(text, 64)
		if err != nil {
			b.send(ctx, chatID, "Пожалуйста, введите рост числом в сантиметрах.")
			return
		}
		if err := b.services.Profile.ValidateHeight(height); err != nil {
			b.replyError(ctx, chatID, err)
			return
		}
		b.fsm.SetData(userID, "height", text)
		b.fsm.SetState(userID, StateRegWeight)
		b.send(ctx, chatID, "Какой у тебя вес в килограммах?")

	case StateRegWeight:
		weight, err := strconv.ParseFloat(text, 64)
		if err != nil {
			b.send(ctx, chatID, "Пожалуйста, введите вес числом в килограммах.")
			return
		}
		if err := b.services.Profile.ValidateWeight(weight); err != nil {
			b.replyError(ctx, chatID, err)
			return
		}
		b.fsm.SetData(userID, "weight", text)
		b.fsm.SetState(userID, StateRegActivity)

		height, _ := strconv.ParseFloat(b.fsm.Data(userID, "height"), 64)
		bmi := nutrition.CalculateBMI(weight, height)
		b.sendWithMarkup(ctx, chatID, formatBMIResult(bmi, nutrition.BMICategory(bmi)), activityKeyboard())

	case StateRegActivity:
		activity, ok := activityLabels[text]
		if !ok {
			b.send(ctx, chatID, "Пожалуйста, выбери уровень активности кнопкой на клавиатуре.")
			return
		}
		b.fsm.SetData(userID, "activity", activity)
		b.fsm.SetState(userID, StateRegGoal)
		b.sendWithMarkup(ctx, chatID, "Какая у тебя цель?", goalKeyboard())

	case StateRegGoal:
		goal, ok := goalLabels[text]
		if !ok {
			b.send(ctx, chatID, "Пожалуйста, выбери цель кнопкой на клавиатуре.")
			return
		}
		b.completeRegistration(ctx, chatID, userID, goal)
	}
}

func (b *Bot) completeRegistration(ctx context.Context, chatID, userID int64, goal string) {
	age, _ := strconv.Atoi(b.fsm.Data(userID, "age"))
	height, _ := strconv.ParseFloat(b.fsm.Data(userID, "height"), 64)
	weight, _ := strconv.ParseFloat(b.fsm.Data(userID, "weight"), 64)

	name := b.fsm.Data(userID, "name")
	if name == "" {
		if existing, err := b.services.Profile.Get(ctx, userID); err == nil && existing != nil {
			name = existing.Name
		}
	}

	summary, err := b.services.Profile.CompleteRegistration(ctx, &models.User{
		ID:            userID,
		Name:          name,
		Age:           age,
		Gender:        b.fsm.Data(userID, "gender"),
		Height:        height,
		Weight:        weight,
		ActivityLevel: b.fsm.Data(userID, "activity"),
		Goal:          goal,
	})
	if err != nil {
		b.replyError(ctx, chatID, err)
		return
	}

	b.fsm.Clear(userID)
	b.sendWithMarkup(ctx, chatID, formatCalorieTargets(summary.User), mainMenuKeyboard())
}

// showProfile prints the completed profile
func (b *Bot) showProfile(ctx context.Context, chatID, userID int64) {
	summary, err := b.services.Profile.Summary(ctx, userID)
	if err != nil {
		if errors.IsNotFound(err) {
			b.sendWithMarkup(ctx, chatID, "Сначала нужно зарегистрироваться. Нажмите 🚀 Погнали!", startKeyboard())
			return
		}
		b.replyError(ctx, chatID, err)
		return
	}
	if !summary.User.RegistrationComplete {
		b.sendWithMarkup(ctx, chatID, "Сначала нужно завершить регистрацию. Нажмите 🚀 Погнали!", startKeyboard())
		return
	}
	b.send(ctx, chatID, formatProfile(summary))
}

// replyError turns service errors into user-facing Russian messages
func (b *Bot) replyError(ctx context.Context, chatID int64, err error) {
	if errors.IsValidation(err) {
		if v, ok := err.(*errors.ValidationError); ok {
			b.send(ctx, chatID, "⚠️ "+v.Message)
			return
		}
	}
	b.log.Error("handler error", zap.Int64("chat_id", chatID), zap.Error(err))
	b.send(ctx, chatID, "😔 Что-то пошло не так. Попробуйте еще раз позже.")
}
