package telegram

import (
	"context"
	"strconv"
)

// showWater renders today's water progress with the quick-add keyboard
func (b *Bot) showWater(ctx context.Context, chatID, userID int64) {
	status, err := b.services.Water.Today(ctx, userID)
	if err != nil {
		b.replyError(ctx, chatID, err)
		return
	}
	b.sendWithMarkup(ctx, chatID, formatWaterStatus(status), waterKeyboard())
}

// handleWaterAdd logs a preset amount. arg is the amount in ml.
func (b *Bot) handleWaterAdd(ctx context.Context, chatID, userID int64, arg string) {
	amount, err := strconv.Atoi(arg)
	if err != nil {
		return
	}
	status, err := b.services.Water.Add(ctx, userID, amount)
	if err != nil {
		b.replyError(ctx, chatID, err)
		return
	}
	b.sendWithMarkup(ctx, chatID, "💧 +"+arg+" мл\n\n"+formatWaterStatus(status), waterKeyboard())
}

// handleWaterCustomInput logs a typed amount
func (b *Bot) handleWaterCustomInput(ctx context.Context, chatID, userID int64, text string) {
	amount, err := strconv.Atoi(text)
	if err != nil {
		b.send(ctx, chatID, "Пожалуйста, введите количество воды числом в миллилитрах.")
		return
	}
	status, err := b.services.Water.Add(ctx, userID, amount)
	if err != nil {
		b.replyError(ctx, chatID, err)
		return
	}
	b.fsm.Clear(userID)
	b.sendWithMarkup(ctx, chatID, formatWaterStatus(status), waterKeyboard())
}

// handleWaterGoalInput updates the daily water target
func (b *Bot) handleWaterGoalInput(ctx context.Context, chatID, userID int64, text string) {
	goal, err := strconv.Atoi(text)
	if err != nil {
		b.send(ctx, chatID, "Пожалуйста, введите цель числом в миллилитрах.")
		return
	}
	if err := b.services.Profile.SetWaterGoal(ctx, userID, goal); err != nil {
		b.replyError(ctx, chatID, err)
		return
	}
	b.fsm.Clear(userID)
	b.send(ctx, chatID, "✅ Новая цель по воде: "+text+" мл в день")
	b.showWater(ctx, chatID, userID)
}
