package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/medcore/hospital-api/internal/model"
	"github.com/medcore/hospital-api/pkg/apperror"
)

func (r *doctorRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Doctor, error) {
	query := `
		SELECT id, user_id, specialization, phone, address
		FROM doctors
		WHERE user_id = $1
	`
	var doctor model.Doctor
	err := r.db.GetContext(ctx, &doctor, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("doctor profile")
		}
		return nil, fmt.Errorf("failed to get doctor: %w", err)
	}
	return &doctor, nil
}

func (r *doctorRepository) GetProfile(ctx context.Context, userID uuid.UUID) (*model.DoctorProfile, error) {
	query := `
		SELECT d.id, u.name, u.email, d.specialization, d.phone, d.address
		FROM doctors d
		JOIN users u ON u.id = d.user_id
		WHERE u.id = $1
	`
	var profile model.DoctorProfile
	err := r.db.GetContext(ctx, &profile, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("doctor profile")
		}
		return nil, fmt.Errorf("failed to get doctor profile: %w", err)
	}
	return &profile, nil
}

// UpdateProfile applies the non-nil fields of req and reports which
// ones were applied. The name lives on the users relation, the rest on
// doctors.
func (r *doctorRepository) UpdateProfile(ctx context.Context, userID uuid.UUID, req *model.UpdateDoctorProfileRequest) ([]string, error) {
	applied := make([]string, 0, 4)

	sets := make([]string, 0, 3)
	args := make([]interface{}, 0, 4)
	add := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
		applied = append(applied, column)
	}

	if req.Specialization != nil {
		add("specialization", *req.Specialization)
	}
	if req.Phone != nil {
		add("phone", *req.Phone)
	}
	if req.Address != nil {
		add("address", *req.Address)
	}

	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if req.Name != nil {
			res, err := tx.ExecContext(ctx,
				`UPDATE users SET name = $1 WHERE id = $2 AND role = $3`,
				*req.Name, userID, model.RoleDoctor,
			)
			if err != nil {
				return fmt.Errorf("failed to update doctor name: %w", err)
			}
			if rows, _ := res.RowsAffected(); rows == 0 {
				return apperror.NotFound("doctor profile")
			}
			applied = append(applied, "name")
		}

		if len(sets) == 0 {
			return nil
		}

		args = append(args, userID)
		query := fmt.Sprintf(
			"UPDATE doctors SET %s WHERE user_id = $%d",
			strings.Join(sets, ", "), len(args),
		)
		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("failed to update doctor profile: %w", err)
		}
		if rows, _ := res.RowsAffected(); rows == 0 {
			return apperror.NotFound("doctor profile")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return applied, nil
}

func (r *doctorRepository) List(ctx context.Context) ([]*model.DoctorInfo, error) {
	query := `
		SELECT d.id, u.name, u.email, d.specialization
		FROM doctors d
		JOIN users u ON u.id = d.user_id
		ORDER BY u.name ASC
	`
	var doctors []*model.DoctorInfo
	if err := r.db.SelectContext(ctx, &doctors, query); err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}
	return doctors, nil
}

func (r *doctorRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM doctors`); err != nil {
		return 0, fmt.Errorf("failed to count doctors: %w", err)
	}
	return count, nil
}
