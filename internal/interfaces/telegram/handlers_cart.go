package telegram

import (
	"context"
	"strconv"
)

// showCartMenu is the entry point of the shopping cart section
func (b *Bot) showCartMenu(ctx context.Context, chatID, userID int64) {
	b.sendWithMarkup(ctx, chatID,
		"🛒 <b>Продуктовая корзина</b>\n\n"+
			"Я могу собрать список покупок из вашего плана питания и дневника.", cartMenuKeyboard())
}

// handleCartAction routes the cart menu. arg is view, generate, manual,
// clear or menu.
func (b *Bot) handleCartAction(ctx context.Context, chatID, userID int64, arg string) {
	switch arg {
	case "menu":
		b.showCartMenu(ctx, chatID, userID)

	case "view":
		b.showCartItems(ctx, chatID, userID)

	case "generate":
		b.sendWithMarkup(ctx, chatID,
			"🔄 На какой период сформировать корзину?\n\n"+
				"Список соберется из рецептов в плане питания и записей дневника.", cartPeriodKeyboard())

	case "manual":
		b.fsm.SetState(userID, StateCartManual)
		b.send(ctx, chatID, "Введите продукт, например: «Молоко - 1 л» или просто «Хлеб»:")

	case "clear":
		if err := b.services.Cart.Clear(ctx, userID); err != nil {
			b.replyError(ctx, chatID, err)
			return
		}
		b.sendWithMarkup(ctx, chatID, "🗑 Корзина очищена.", cartMenuKeyboard())
	}
}

// handleCartGenerate builds the cart for the chosen period. arg is the
// number of days.
func (b *Bot) handleCartGenerate(ctx context.Context, chatID, userID int64, arg string) {
	days, err := strconv.Atoi(arg)
	if err != nil {
		return
	}
	items, err := b.services.Cart.Generate(ctx, userID, days)
	if err != nil {
		b.replyError(ctx, chatID, err)
		return
	}
	if len(items) == 0 {
		b.sendWithMarkup(ctx, chatID,
			"😔 Не из чего собрать корзину.\n\n"+
				"Добавьте блюда в план питания или записи в дневник за выбранный период.", cartMenuKeyboard())
		return
	}
	b.sendWithMarkup(ctx, chatID, formatCart(items), cartItemsKeyboard(items))
}

// showCartItems prints the current list with toggle buttons
func (b *Bot) showCartItems(ctx context.Context, chatID, userID int64) {
	items, err := b.services.Cart.List(ctx, userID)
	if err != nil {
		b.replyError(ctx, chatID, err)
		return
	}
	if len(items) == 0 {
		b.sendWithMarkup(ctx, chatID, "🛒 Корзина пуста. Сформируйте список или добавьте продукты вручную.", cartMenuKeyboard())
		return
	}
	b.sendWithMarkup(ctx, chatID, formatCart(items), cartItemsKeyboard(items))
}

// handleCartToggle flips the purchased mark. arg is the item id.
func (b *Bot) handleCartToggle(ctx context.Context, chatID, userID int64, arg string) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return
	}
	if err := b.services.Cart.TogglePurchased(ctx, userID, id); err != nil {
		b.replyError(ctx, chatID, err)
		return
	}
	b.showCartItems(ctx, chatID, userID)
}

// handleCartManualInput adds a typed product line
func (b *Bot) handleCartManualInput(ctx context.Context, chatID, userID int64, text string) {
	if _, err := b.services.Cart.AddManual(ctx, userID, text); err != nil {
		b.replyError(ctx, chatID, err)
		return
	}
	b.fsm.Clear(userID)
	b.send(ctx, chatID, "✅ Продукт добавлен в корзину.")
	b.showCartItems(ctx, chatID, userID)
}
