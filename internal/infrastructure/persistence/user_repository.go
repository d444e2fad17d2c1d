package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dietplanner/backend/internal/domain/models"
	"github.com/dietplanner/backend/pkg/constants"
)

// UserRepository handles user profile storage
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a user row if it does not exist yet.
// Returns true when a new row was created.
func (r *UserRepository) Create(ctx context.Context, userID int64, name string) (bool, error) {
	existing, err := r.Get(ctx, userID)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO users (id, name, water_goal) VALUES (?, ?, ?)`,
		userID, name, constants.DefaultWaterGoal,
	)
	if err != nil {
		return false, fmt.Errorf("create user: %w", err)
	}
	return true, nil
}

// Get fetches a user by Telegram ID; nil when not found
func (r *UserRepository) Get(ctx context.Context, userID int64) (*models.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, COALESCE(name, ''), COALESCE(age, 0), COALESCE(gender, ''),
		        COALESCE(height, 0), COALESCE(weight, 0), COALESCE(activity_level, ''),
		        COALESCE(goal, ''), COALESCE(goal_calories, 0), COALESCE(protein, 0),
		        COALESCE(fat, 0), COALESCE(carbs, 0), COALESCE(registration_date, ''),
		        COALESCE(water_goal, ?), COALESCE(registration_complete, 0)
		 FROM users WHERE id = ?`,
		constants.DefaultWaterGoal, userID,
	)

	var u models.User
	err := row.Scan(&u.ID, &u.Name, &u.Age, &u.Gender, &u.Height, &u.Weight,
		&u.ActivityLevel, &u.Goal, &u.GoalCalories, &u.Protein, &u.Fat, &u.Carbs,
		&u.RegistrationDate, &u.WaterGoal, &u.RegistrationComplete)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// SaveProfile writes the full profile including derived targets and marks
// registration complete
func (r *UserRepository) SaveProfile(ctx context.Context, u *models.User) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE users SET name = ?, age = ?, gender = ?, height = ?, weight = ?,
		        activity_level = ?, goal = ?, goal_calories = ?, protein = ?,
		        fat = ?, carbs = ?, registration_complete = 1
		 WHERE id = ?`,
		u.Name, u.Age, u.Gender, u.Height, u.Weight, u.ActivityLevel, u.Goal,
		u.GoalCalories, u.Protein, u.Fat, u.Carbs, u.ID,
	)
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

// UpdateWeight updates just the profile weight
func (r *UserRepository) UpdateWeight(ctx context.Context, userID int64, weight float64) error {
	_, err := r.db.ExecContext(ctx, `UPDATE users SET weight = ? WHERE id = ?`, weight, userID)
	if err != nil {
		return fmt.Errorf("update weight: %w", err)
	}
	return nil
}

// SetWaterGoal updates the daily water goal (ml)
func (r *UserRepository) SetWaterGoal(ctx context.Context, userID int64, goal int) error {
	_, err := r.db.ExecContext(ctx, `UPDATE users SET water_goal = ? WHERE id = ?`, goal, userID)
	if err != nil {
		return fmt.Errorf("set water goal: %w", err)
	}
	return nil
}

// CompletedUserIDs returns IDs of users who finished registration.
// Used by the reminder scheduler.
func (r *UserRepository) CompletedUserIDs(ctx context.Context) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id FROM users WHERE registration_complete = 1`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
