package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dietplanner/backend/internal/domain/models"
)

// ContentRepository handles articles and nutritionist cards
type ContentRepository struct {
	db *sql.DB
}

// NewContentRepository creates a new ContentRepository
func NewContentRepository(db *sql.DB) *ContentRepository {
	return &ContentRepository{db: db}
}

// Topics returns distinct article topics in alphabetical order
func (r *ContentRepository) Topics(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT DISTINCT topic FROM articles ORDER BY topic`)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	defer rows.Close()

	var topics []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		topics = append(topics, t)
	}
	return topics, rows.Err()
}

// ArticlesByTopic returns all articles under a topic
func (r *ContentRepository) ArticlesByTopic(ctx context.Context, topic string) ([]models.Article, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, topic, title, body, created_at FROM articles WHERE topic = ? ORDER BY id`,
		topic,
	)
	if err != nil {
		return nil, fmt.Errorf("articles by topic: %w", err)
	}
	defer rows.Close()

	return scanArticles(rows)
}

// GetArticle fetches one article; nil when not found
func (r *ContentRepository) GetArticle(ctx context.Context, id int64) (*models.Article, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, topic, title, body, created_at FROM articles WHERE id = ?`, id)

	var a models.Article
	err := row.Scan(&a.ID, &a.Topic, &a.Title, &a.Body, &a.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	return &a, nil
}

// CreateArticle inserts an article and returns its ID
func (r *ContentRepository) CreateArticle(ctx context.Context, a *models.Article) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO articles (topic, title, body) VALUES (?, ?, ?)`,
		a.Topic, a.Title, a.Body,
	)
	if err != nil {
		return 0, fmt.Errorf("create article: %w", err)
	}
	return res.LastInsertId()
}

// UpdateArticle rewrites an article
func (r *ContentRepository) UpdateArticle(ctx context.Context, a *models.Article) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE articles SET topic = ?, title = ?, body = ? WHERE id = ?`,
		a.Topic, a.Title, a.Body, a.ID,
	)
	if err != nil {
		return fmt.Errorf("update article: %w", err)
	}
	return nil
}

// DeleteArticle removes an article
func (r *ContentRepository) DeleteArticle(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM articles WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	return nil
}

// Nutritionists returns all consultation cards
func (r *ContentRepository) Nutritionists(ctx context.Context) ([]models.Nutritionist, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, specialty, experience, contact FROM nutritionists ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list nutritionists: %w", err)
	}
	defer rows.Close()

	var list []models.Nutritionist
	for rows.Next() {
		var n models.Nutritionist
		if err := rows.Scan(&n.ID, &n.Name, &n.Specialty, &n.Experience, &n.Contact); err != nil {
			return nil, err
		}
		list = append(list, n)
	}
	return list, rows.Err()
}

// CreateNutritionist inserts a card and returns its ID
func (r *ContentRepository) CreateNutritionist(ctx context.Context, n *models.Nutritionist) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO nutritionists (name, specialty, experience, contact) VALUES (?, ?, ?, ?)`,
		n.Name, n.Specialty, n.Experience, n.Contact,
	)
	if err != nil {
		return 0, fmt.Errorf("create nutritionist: %w", err)
	}
	return res.LastInsertId()
}

// DeleteNutritionist removes a card
func (r *ContentRepository) DeleteNutritionist(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM nutritionists WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete nutritionist: %w", err)
	}
	return nil
}

func scanArticles(rows *sql.Rows) ([]models.Article, error) {
	var articles []models.Article
	for rows.Next() {
		var a models.Article
		if err := rows.Scan(&a.ID, &a.Topic, &a.Title, &a.Body, &a.CreatedAt); err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}
