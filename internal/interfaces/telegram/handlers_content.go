package telegram

import (
	"context"
	"fmt"
	"strconv"
)

// showTopics lists article topics
func (b *Bot) showTopics(ctx context.Context, chatID int64) {
	topics, err := b.services.Content.Topics(ctx)
	if err != nil {
		b.replyError(ctx, chatID, err)
		return
	}
	if len(topics) == 0 {
		b.send(ctx, chatID, "📚 Статей пока нет, загляните позже.")
		return
	}
	b.sendWithMarkup(ctx, chatID, "📚 <b>Статьи о питании</b>\n\nВыберите тему:", topicsKeyboard(topics))
}

// handleTopicChosen lists articles of a topic. arg is the topic index
// in the alphabetical topic list.
func (b *Bot) handleTopicChosen(ctx context.Context, chatID int64, arg string) {
	idx, err := strconv.Atoi(arg)
	if err != nil {
		return
	}
	topics, err := b.services.Content.Topics(ctx)
	if err != nil {
		b.replyError(ctx, chatID, err)
		return
	}
	if idx < 0 || idx >= len(topics) {
		b.showTopics(ctx, chatID)
		return
	}

	topic := topics[idx]
	articles, err := b.services.Content.ArticlesByTopic(ctx, topic)
	if err != nil {
		b.replyError(ctx, chatID, err)
		return
	}
	if len(articles) == 0 {
		b.showTopics(ctx, chatID)
		return
	}
	b.sendWithMarkup(ctx, chatID, "📖 <b>"+topic+"</b>\n\nВыберите статью:", articlesKeyboard(articles))
}

// handleArticleChosen shows the article body. arg is the article id.
func (b *Bot) handleArticleChosen(ctx context.Context, chatID int64, arg string) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return
	}
	article, err := b.services.Content.Article(ctx, id)
	if err != nil {
		b.replyError(ctx, chatID, err)
		return
	}
	b.send(ctx, chatID, formatArticle(article))
}

// showConsultation opens the first nutritionist card
func (b *Bot) showConsultation(ctx context.Context, chatID int64) {
	b.showNutritionistCard(ctx, chatID, 0)
}

// handleNutritionistCard switches between nutritionist cards. arg is
// the card index.
func (b *Bot) handleNutritionistCard(ctx context.Context, chatID int64, arg string) {
	idx, err := strconv.Atoi(arg)
	if err != nil {
		return
	}
	b.showNutritionistCard(ctx, chatID, idx)
}

func (b *Bot) showNutritionistCard(ctx context.Context, chatID int64, idx int) {
	nutritionists, err := b.services.Content.Nutritionists(ctx)
	if err != nil {
		b.replyError(ctx, chatID, err)
		return
	}
	if len(nutritionists) == 0 {
		b.send(ctx, chatID, "🩺 Сейчас нет доступных диетологов, загляните позже.")
		return
	}
	if idx < 0 || idx >= len(nutritionists) {
		idx = 0
	}

	text := formatNutritionist(&nutritionists[idx]) +
		fmt.Sprintf("\n📋 Диетолог %d из %d", idx+1, len(nutritionists))
	b.sendWithMarkup(ctx, chatID, text, nutritionistKeyboard(idx, len(nutritionists)))
}
