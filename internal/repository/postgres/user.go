package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/medcore/hospital-api/internal/model"
	"github.com/medcore/hospital-api/pkg/apperror"
)

const insertUserQuery = `
	INSERT INTO users (id, name, email, password_hash, role, created_at)
	VALUES ($1, $2, $3, $4, $5, $6)
`

func insertUser(ctx context.Context, tx *sqlx.Tx, user *model.User) error {
	user.ID = uuid.New()
	user.CreatedAt = time.Now()

	_, err := tx.ExecContext(ctx, insertUserQuery,
		user.ID,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.Role,
		user.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperror.Conflict("email already exists")
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *userRepository) CreateWithPatient(ctx context.Context, user *model.User, patient *model.Patient) error {
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if err := insertUser(ctx, tx, user); err != nil {
			return err
		}

		patient.ID = uuid.New()
		patient.UserID = user.ID
		query := `
			INSERT INTO patients (id, user_id, phone, date_of_birth, blood_type, allergies)
			VALUES ($1, $2, $3, $4, $5, $6)
		`
		_, err := tx.ExecContext(ctx, query,
			patient.ID,
			patient.UserID,
			patient.Phone,
			patient.DateOfBirth,
			patient.BloodType,
			patient.Allergies,
		)
		if err != nil {
			return fmt.Errorf("failed to create patient profile: %w", err)
		}
		return nil
	})
}

func (r *userRepository) CreateWithDoctor(ctx context.Context, user *model.User, doctor *model.Doctor) error {
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if err := insertUser(ctx, tx, user); err != nil {
			return err
		}

		doctor.ID = uuid.New()
		doctor.UserID = user.ID
		query := `
			INSERT INTO doctors (id, user_id, specialization, phone, address)
			VALUES ($1, $2, $3, $4, $5)
		`
		_, err := tx.ExecContext(ctx, query,
			doctor.ID,
			doctor.UserID,
			doctor.Specialization,
			doctor.Phone,
			doctor.Address,
		)
		if err != nil {
			return fmt.Errorf("failed to create doctor profile: %w", err)
		}
		return nil
	})
}

func (r *userRepository) CreateAdmin(ctx context.Context, user *model.User) error {
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		return insertUser(ctx, tx, user)
	})
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `
		SELECT id, name, email, password_hash, role, created_at
		FROM users
		WHERE email = $1
	`
	var user model.User
	err := r.db.GetContext(ctx, &user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("user")
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &user, nil
}

func (r *userRepository) Get(ctx context.Context, id uuid.UUID) (*model.User, error) {
	query := `
		SELECT id, name, email, password_hash, role, created_at
		FROM users
		WHERE id = $1
	`
	var user model.User
	err := r.db.GetContext(ctx, &user, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("user")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

func (r *userRepository) UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE users SET password_hash = $1 WHERE id = $2`, hash, id)
	if err != nil {
		return fmt.Errorf("failed to update password hash: %w", err)
	}
	return nil
}

func (r *userRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM users`); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}
