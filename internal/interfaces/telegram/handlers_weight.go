package telegram

import (
	"context"
	"strconv"
	"strings"

	"github.com/dietplanner/backend/pkg/errors"
)

const (
	weightHistoryDays = 30
	weightChartDays   = 90
)

// showWeightMenu is the entry point of the weight report section
func (b *Bot) showWeightMenu(ctx context.Context, chatID, userID int64) {
	text := "📈 <b>Отчет по весу</b>"
	if latest, err := b.services.Weight.Latest(ctx, userID); err == nil && latest != nil {
		text += "\n\nПоследнее измерение: <b>" + strconv.FormatFloat(latest.Weight, 'f', 1, 64) + " кг</b>"
	}
	b.sendWithMarkup(ctx, chatID, text, weightMenuKeyboard())
}

// handleWeightAction routes the weight menu. arg is record, chart or history.
func (b *Bot) handleWeightAction(ctx context.Context, chatID, userID int64, arg string) {
	switch arg {
	case "record":
		b.fsm.SetState(userID, StateWeightInput)
		b.send(ctx, chatID, "Введите текущий вес в килограммах:")

	case "chart":
		chart, err := b.services.Weight.Chart(ctx, userID, weightChartDays)
		if err != nil {
			if errors.IsNotFound(err) {
				b.send(ctx, chatID, "📉 Пока нет записей веса. Сначала запишите вес.")
				return
			}
			b.replyError(ctx, chatID, err)
			return
		}
		records, err := b.services.Weight.History(ctx, userID, weightChartDays)
		if err != nil {
			b.replyError(ctx, chatID, err)
			return
		}
		b.sendPhoto(ctx, chatID, "weight_chart.png", chart, formatWeightChartStats(records))

	case "history":
		records, err := b.services.Weight.History(ctx, userID, weightHistoryDays)
		if err != nil {
			b.replyError(ctx, chatID, err)
			return
		}
		if len(records) == 0 {
			b.send(ctx, chatID, "📉 Пока нет записей веса. Сначала запишите вес.")
			return
		}
		delta, hasDelta, err := b.services.Weight.Delta(ctx, userID, weightHistoryDays)
		if err != nil {
			hasDelta = false
		}
		b.sendWithMarkup(ctx, chatID, formatWeightHistory(records, delta, hasDelta), weightMenuKeyboard())
	}
}

// handleWeightInput records a typed weight measurement
func (b *Bot) handleWeightInput(ctx context.Context, chatID, userID int64, text string) {
	weight, err := strconv.ParseFloat(strings.Replace(text, ",", ".", 1), 64)
	if err != nil {
		b.send(ctx, chatID, "Пожалуйста, введите вес числом в килограммах.")
		return
	}
	if err := b.services.Weight.Record(ctx, userID, weight); err != nil {
		b.replyError(ctx, chatID, err)
		return
	}
	b.fsm.Clear(userID)
	b.sendWithMarkup(ctx, chatID, "✅ Вес записан: "+text+" кг", weightMenuKeyboard())
}
