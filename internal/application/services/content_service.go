package services

import (
	"context"
	"fmt"

	"github.com/dietplanner/backend/internal/domain/models"
	"github.com/dietplanner/backend/internal/infrastructure/persistence"
	"github.com/dietplanner/backend/pkg/errors"
)

// ContentService serves articles and nutritionist contacts
type ContentService struct {
	content *persistence.ContentRepository
}

func NewContentService(content *persistence.ContentRepository) *ContentService {
	return &ContentService{content: content}
}

// Topics lists the distinct article topics
func (s *ContentService) Topics(ctx context.Context) ([]string, error) {
	return s.content.Topics(ctx)
}

// ArticlesByTopic returns the articles under a topic
func (s *ContentService) ArticlesByTopic(ctx context.Context, topic string) ([]models.Article, error) {
	return s.content.ArticlesByTopic(ctx, topic)
}

// Article returns one article by ID
func (s *ContentService) Article(ctx context.Context, id int64) (*models.Article, error) {
	a, err := s.content.GetArticle(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, errors.NewNotFoundError("article", fmt.Sprintf("%d", id))
	}
	return a, nil
}

// CreateArticle validates and stores a new article
func (s *ContentService) CreateArticle(ctx context.Context, a *models.Article) (int64, error) {
	if a.Topic == "" || a.Title == "" || a.Body == "" {
		return 0, errors.NewValidationError("article", "topic, title and body are required")
	}
	return s.content.CreateArticle(ctx, a)
}

// UpdateArticle replaces an article's content
func (s *ContentService) UpdateArticle(ctx context.Context, a *models.Article) error {
	if _, err := s.Article(ctx, a.ID); err != nil {
		return err
	}
	return s.content.UpdateArticle(ctx, a)
}

// DeleteArticle removes an article
func (s *ContentService) DeleteArticle(ctx context.Context, id int64) error {
	if _, err := s.Article(ctx, id); err != nil {
		return err
	}
	return s.content.DeleteArticle(ctx, id)
}

// Nutritionists lists the consultation contacts
func (s *ContentService) Nutritionists(ctx context.Context) ([]models.Nutritionist, error) {
	return s.content.Nutritionists(ctx)
}

// CreateNutritionist stores a new contact card
func (s *ContentService) CreateNutritionist(ctx context.Context, n *models.Nutritionist) (int64, error) {
	if n.Name == "" {
		return 0, errors.NewValidationError("name", "name is required")
	}
	return s.content.CreateNutritionist(ctx, n)
}

// DeleteNutritionist removes a contact card
func (s *ContentService) DeleteNutritionist(ctx context.Context, id int64) error {
	return s.content.DeleteNutritionist(ctx, id)
}
