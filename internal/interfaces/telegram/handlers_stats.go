package telegram

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dietplanner/backend/pkg/errors"
)

// showStatsMenu is the entry point of the statistics section
func (b *Bot) showStatsMenu(ctx context.Context, chatID, userID int64) {
	b.sendWithMarkup(ctx, chatID, "📊 <b>Статистика</b>\n\nЧто посмотрим?", statsMenuKeyboard())
}

// handleStatsAction routes the stats menu. arg is nutrition, water or
// reminders.
func (b *Bot) handleStatsAction(ctx context.Context, chatID, userID int64, arg string) {
	switch arg {
	case "nutrition":
		report, err := b.services.Stats.NutritionToday(ctx, userID)
		if err != nil {
			if errors.IsNotFound(err) {
				b.sendWithMarkup(ctx, chatID,
					"📊 Данных за сегодня пока нет.\n\nДобавьте приемы пищи в дневник, чтобы увидеть статистику.",
					diaryKeyboard(todayDate()))
				return
			}
			b.replyError(ctx, chatID, err)
			return
		}
		b.sendPhoto(ctx, chatID, "nutrition.png", report.Chart, formatNutritionReport(report))

	case "water":
		report, err := b.services.Stats.WaterWeek(ctx, userID)
		if err != nil {
			if errors.IsNotFound(err) {
				b.sendWithMarkup(ctx, chatID,
					"💧 За последнюю неделю нет записей о воде.\n\nНачните отмечать выпитую воду в трекере.",
					waterKeyboard())
				return
			}
			b.replyError(ctx, chatID, err)
			return
		}
		b.sendPhoto(ctx, chatID, "water.png", report.Chart, formatWaterWeek(report.Stats))

	case "reminders":
		b.showReminders(ctx, chatID, userID)
	}
}

// showReminders lists the user's reminders with toggle and delete buttons
func (b *Bot) showReminders(ctx context.Context, chatID, userID int64) {
	reminders, err := b.services.Reminder.ListForUser(ctx, userID)
	if err != nil {
		b.replyError(ctx, chatID, err)
		return
	}

	text := "🔔 <b>Напоминания</b>\n\n"
	if len(reminders) == 0 {
		text += "У вас пока нет напоминаний. Создайте первое:"
	} else {
		text += "Нажмите на напоминание, чтобы включить или выключить его:"
	}
	b.sendWithMarkup(ctx, chatID, text, reminderMenuKeyboard(reminders))
}

// handleReminderNew starts reminder creation. arg is the reminder type.
func (b *Bot) handleReminderNew(ctx context.Context, chatID, userID int64, arg string) {
	b.fsm.SetData(userID, "rem_type", arg)
	b.fsm.SetState(userID, StateReminderTime)
	b.send(ctx, chatID, "Во сколько напоминать? Введите время в формате ЧЧ:ММ, например 09:30")
}

// handleReminderTimeInput creates a daily reminder at the typed time
func (b *Bot) handleReminderTimeInput(ctx context.Context, chatID, userID int64, text string) {
	hour, minute, ok := parseClock(text)
	if !ok {
		b.send(ctx, chatID, "Пожалуйста, введите время в формате ЧЧ:ММ, например 09:30")
		return
	}

	remType := b.fsm.Data(userID, "rem_type")
	if _, err := b.services.Reminder.CreateDaily(ctx, userID, remType, hour, minute); err != nil {
		b.replyError(ctx, chatID, err)
		return
	}

	b.fsm.Clear(userID)
	b.send(ctx, chatID, fmt.Sprintf("✅ Напоминание «%s» будет приходить каждый день в %02d:%02d",
		reminderTitle(remType), hour, minute))
	b.showReminders(ctx, chatID, userID)
}

// parseClock parses "HH:MM" into hour and minute
func parseClock(text string) (hour, minute int, ok bool) {
	parts := strings.SplitN(strings.TrimSpace(text), ":", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, false
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, false
	}
	return hour, minute, true
}

// handleReminderToggle flips a reminder on or off. arg is the reminder id.
func (b *Bot) handleReminderToggle(ctx context.Context, chatID, userID int64, arg string) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return
	}
	reminders, err := b.services.Reminder.ListForUser(ctx, userID)
	if err != nil {
		b.replyError(ctx, chatID, err)
		return
	}
	for _, r := range reminders {
		if r.ID == id {
			if err := b.services.Reminder.SetActive(ctx, userID, id, !r.IsActive); err != nil {
				b.replyError(ctx, chatID, err)
				return
			}
			b.showReminders(ctx, chatID, userID)
			return
		}
	}
}

// handleReminderDelete removes a reminder. arg is the reminder id.
func (b *Bot) handleReminderDelete(ctx context.Context, chatID, userID int64, arg string) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return
	}
	if err := b.services.Reminder.Delete(ctx, userID, id); err != nil {
		b.replyError(ctx, chatID, err)
		return
	}
	b.showReminders(ctx, chatID, userID)
}
