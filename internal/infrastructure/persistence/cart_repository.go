package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dietplanner/backend/internal/domain/models"
)

// CartRepository handles shopping cart storage
type CartRepository struct {
	db *sql.DB
}

// NewCartRepository creates a new CartRepository
func NewCartRepository(db *sql.DB) *CartRepository {
	return &CartRepository{db: db}
}

// Replace clears the user's cart and inserts the given items
func (r *CartRepository) Replace(ctx context.Context, userID int64, items []models.CartItem) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin cart replace: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM cart_items WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}

	for _, item := range items {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO cart_items (user_id, product, quantity, unit) VALUES (?, ?, ?, ?)`,
			userID, item.Product, item.Quantity, item.Unit,
		); err != nil {
			return fmt.Errorf("insert cart item: %w", err)
		}
	}

	return tx.Commit()
}

// Add inserts a single manual item
func (r *CartRepository) Add(ctx context.Context, userID int64, product string, quantity float64, unit string) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO cart_items (user_id, product, quantity, unit) VALUES (?, ?, ?, ?)`,
		userID, product, quantity, unit,
	)
	if err != nil {
		return 0, fmt.Errorf("add cart item: %w", err)
	}
	return res.LastInsertId()
}

// List returns the user's cart, unpurchased first
func (r *CartRepository) List(ctx context.Context, userID int64) ([]models.CartItem, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, product, quantity, unit, purchased, created_at
		 FROM cart_items WHERE user_id = ?
		 ORDER BY purchased, product`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list cart: %w", err)
	}
	defer rows.Close()

	var items []models.CartItem
	for rows.Next() {
		var item models.CartItem
		if err := rows.Scan(&item.ID, &item.UserID, &item.Product, &item.Quantity,
			&item.Unit, &item.Purchased, &item.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// TogglePurchased flips the purchased flag of an item
func (r *CartRepository) TogglePurchased(ctx context.Context, userID, itemID int64) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE cart_items SET purchased = 1 - purchased WHERE id = ? AND user_id = ?`,
		itemID, userID)
	if err != nil {
		return fmt.Errorf("toggle purchased: %w", err)
	}
	return nil
}

// Remove deletes one item
func (r *CartRepository) Remove(ctx context.Context, userID, itemID int64) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM cart_items WHERE id = ? AND user_id = ?`, itemID, userID)
	if err != nil {
		return fmt.Errorf("remove cart item: %w", err)
	}
	return nil
}

// Clear deletes the whole cart
func (r *CartRepository) Clear(ctx context.Context, userID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM cart_items WHERE user_id = ?`, userID)
	if err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}
