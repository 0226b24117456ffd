package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ecalderon/guidancehub/internal/app/models"
	"github.com/ecalderon/guidancehub/internal/db"
	"github.com/ecalderon/guidancehub/internal/pkg/apperrors"
	"github.com/ecalderon/guidancehub/internal/pkg/dberrors"
	"github.com/ecalderon/guidancehub/internal/pkg/logger"
)

// CounselorRepository handles counselor database operations
type CounselorRepository struct {
	db *pgxpool.Pool
}

// NewCounselorRepository creates a new CounselorRepository
func NewCounselorRepository(db *pgxpool.Pool) *CounselorRepository {
	return &CounselorRepository{db: db}
}

// Create inserts the counselor's user account and counselor row in one
// transaction and returns the assembled counselor.
func (r *CounselorRepository) Create(ctx context.Context, user *models.User) (*models.Counselor, error) {
	counselor := &models.Counselor{User: user}

	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO users (email, password, first_name, last_name, role_type)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, created_at, updated_at`,
			user.Email, user.Password, user.FirstName, user.LastName, models.RoleCounselor).
			Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
		if err != nil {
			if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
				return apperrors.ErrEmailAlreadyExists
			}
			return fmt.Errorf("error creating counselor user: %w", err)
		}

		counselor.UserID = user.ID
		err = tx.QueryRow(ctx, `
			INSERT INTO counselors (user_id) VALUES ($1) RETURNING id`,
			user.ID).Scan(&counselor.ID)
		if err != nil {
			return fmt.Errorf("error creating counselor: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info().Int64("counselorID", counselor.ID).Str("email", user.Email).Msg("Counselor created")
	return counselor, nil
}

// GetByID retrieves a counselor with its user account
func (r *CounselorRepository) GetByID(ctx context.Context, id int64) (*models.Counselor, error) {
	counselor := &models.Counselor{User: &models.User{}}
	err := r.db.QueryRow(ctx, `
		SELECT c.id, c.user_id,
		       u.id, u.email, u.password, u.first_name, u.last_name, u.role_type, u.created_at, u.updated_at
		FROM counselors c
		JOIN users u ON u.id = c.user_id
		WHERE c.id = $1`,
		id).Scan(
		&counselor.ID, &counselor.UserID,
		&counselor.User.ID, &counselor.User.Email, &counselor.User.Password,
		&counselor.User.FirstName, &counselor.User.LastName, &counselor.User.RoleType,
		&counselor.User.CreatedAt, &counselor.User.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCounselorNotFound
		}
		return nil, fmt.Errorf("error retrieving counselor: %w", err)
	}

	return counselor, nil
}

// GetByUserID retrieves a counselor by its user account ID
func (r *CounselorRepository) GetByUserID(ctx context.Context, userID int64) (*models.Counselor, error) {
	counselor := &models.Counselor{User: &models.User{}}
	err := r.db.QueryRow(ctx, `
		SELECT c.id, c.user_id,
		       u.id, u.email, u.password, u.first_name, u.last_name, u.role_type, u.created_at, u.updated_at
		FROM counselors c
		JOIN users u ON u.id = c.user_id
		WHERE c.user_id = $1`,
		userID).Scan(
		&counselor.ID, &counselor.UserID,
		&counselor.User.ID, &counselor.User.Email, &counselor.User.Password,
		&counselor.User.FirstName, &counselor.User.LastName, &counselor.User.RoleType,
		&counselor.User.CreatedAt, &counselor.User.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCounselorNotFound
		}
		return nil, fmt.Errorf("error retrieving counselor: %w", err)
	}

	return counselor, nil
}

// List retrieves all counselors with their user accounts and assignments
func (r *CounselorRepository) List(ctx context.Context) ([]*models.Counselor, error) {
	rows, err := r.db.Query(ctx, `
		SELECT c.id, c.user_id,
		       u.id, u.email, u.password, u.first_name, u.last_name, u.role_type, u.created_at, u.updated_at
		FROM counselors c
		JOIN users u ON u.id = c.user_id
		ORDER BY u.last_name, u.first_name`)
	if err != nil {
		return nil, fmt.Errorf("error listing counselors: %w", err)
	}
	defer rows.Close()

	byID := make(map[int64]*models.Counselor)
	var counselors []*models.Counselor
	for rows.Next() {
		counselor := &models.Counselor{User: &models.User{}}
		err := rows.Scan(
			&counselor.ID, &counselor.UserID,
			&counselor.User.ID, &counselor.User.Email, &counselor.User.Password,
			&counselor.User.FirstName, &counselor.User.LastName, &counselor.User.RoleType,
			&counselor.User.CreatedAt, &counselor.User.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning counselor row: %w", err)
		}
		byID[counselor.ID] = counselor
		counselors = append(counselors, counselor)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating counselor rows: %w", err)
	}

	assignments, err := r.GetAllAssignments(ctx)
	if err != nil {
		return nil, err
	}
	for _, a := range assignments {
		if counselor, ok := byID[a.CounselorID]; ok {
			counselor.Assignments = append(counselor.Assignments, a)
		}
	}

	return counselors, nil
}

// Delete removes a counselor by deleting its user account; the counselor row
// and its assignments cascade.
func (r *CounselorRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM users
		WHERE id = (SELECT user_id FROM counselors WHERE id = $1)`,
		id)
	if err != nil {
		return fmt.Errorf("error deleting counselor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrCounselorNotFound
	}

	logger.Info().Int64("counselorID", id).Msg("Counselor deleted")
	return nil
}

// ReplaceAssignments swaps a counselor's assignment list in one transaction
func (r *CounselorRepository) ReplaceAssignments(ctx context.Context, counselorID int64, assignments []models.Assignment) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM assignments WHERE counselor_id = $1`, counselorID); err != nil {
			return fmt.Errorf("error clearing assignments: %w", err)
		}
		for _, a := range assignments {
			_, err := tx.Exec(ctx, `
				INSERT INTO assignments (counselor_id, assignment_type, value)
				VALUES ($1, $2, $3)`,
				counselorID, a.Type, a.Value)
			if err != nil {
				return fmt.Errorf("error saving assignment %s/%s: %w", a.Type, a.Value, err)
			}
		}
		return nil
	})
}

// GetAssignments retrieves one counselor's assignments
func (r *CounselorRepository) GetAssignments(ctx context.Context, counselorID int64) ([]models.Assignment, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, counselor_id, assignment_type, value
		FROM assignments
		WHERE counselor_id = $1
		ORDER BY id`,
		counselorID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving assignments: %w", err)
	}
	defer rows.Close()

	return scanAssignments(rows)
}

// GetAllAssignments retrieves every assignment in the system, the input for
// the in-memory assignment directory.
func (r *CounselorRepository) GetAllAssignments(ctx context.Context) ([]models.Assignment, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, counselor_id, assignment_type, value
		FROM assignments
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("error retrieving assignments: %w", err)
	}
	defer rows.Close()

	return scanAssignments(rows)
}

// Count returns the number of counselors
func (r *CounselorRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM counselors`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting counselors: %w", err)
	}
	return count, nil
}

func scanAssignments(rows pgx.Rows) ([]models.Assignment, error) {
	var assignments []models.Assignment
	for rows.Next() {
		var a models.Assignment
		if err := rows.Scan(&a.ID, &a.CounselorID, &a.Type, &a.Value); err != nil {
			return nil, fmt.Errorf("error scanning assignment row: %w", err)
		}
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating assignment rows: %w", err)
	}
	return assignments, nil
}
