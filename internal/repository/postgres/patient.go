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

func (r *patientRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Patient, error) {
	query := `
		SELECT id, user_id, phone, date_of_birth, blood_type, allergies
		FROM patients
		WHERE user_id = $1
	`
	var patient model.Patient
	err := r.db.GetContext(ctx, &patient, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("patient profile")
		}
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}
	return &patient, nil
}

func (r *patientRepository) GetProfile(ctx context.Context, userID uuid.UUID) (*model.PatientProfile, error) {
	query := `
		SELECT u.name, u.email, p.phone, u.created_at
		FROM patients p
		JOIN users u ON u.id = p.user_id
		WHERE u.id = $1
	`
	var profile model.PatientProfile
	err := r.db.GetContext(ctx, &profile, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("patient profile")
		}
		return nil, fmt.Errorf("failed to get patient profile: %w", err)
	}
	return &profile, nil
}

// UpdateProfile applies the non-nil fields of req and reports which
// ones were applied. Unknown fields never reach this point; the known
// field set is fixed here.
func (r *patientRepository) UpdateProfile(ctx context.Context, userID uuid.UUID, req *model.UpdatePatientProfileRequest) ([]string, error) {
	applied := make([]string, 0, 5)

	sets := make([]string, 0, 4)
	args := make([]interface{}, 0, 5)
	add := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
		applied = append(applied, column)
	}

	if req.Phone != nil {
		add("phone", *req.Phone)
	}
	if req.DateOfBirth != nil {
		add("date_of_birth", *req.DateOfBirth)
	}
	if req.BloodType != nil {
		add("blood_type", *req.BloodType)
	}
	if req.Allergies != nil {
		add("allergies", *req.Allergies)
	}

	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if req.Name != nil {
			res, err := tx.ExecContext(ctx,
				`UPDATE users SET name = $1 WHERE id = $2 AND role = $3`,
				*req.Name, userID, model.RolePatient,
			)
			if err != nil {
				return fmt.Errorf("failed to update patient name: %w", err)
			}
			if rows, _ := res.RowsAffected(); rows == 0 {
				return apperror.NotFound("patient profile")
			}
			applied = append(applied, "name")
		}

		if len(sets) == 0 {
			return nil
		}

		args = append(args, userID)
		query := fmt.Sprintf(
			"UPDATE patients SET %s WHERE user_id = $%d",
			strings.Join(sets, ", "), len(args),
		)
		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("failed to update patient profile: %w", err)
		}
		if rows, _ := res.RowsAffected(); rows == 0 {
			return apperror.NotFound("patient profile")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return applied, nil
}

func (r *patientRepository) List(ctx context.Context) ([]*model.PatientInfo, error) {
	query := `
		SELECT p.id, u.name, u.email, p.phone
		FROM patients p
		JOIN users u ON u.id = p.user_id
		ORDER BY u.name ASC
	`
	var patients []*model.PatientInfo
	if err := r.db.SelectContext(ctx, &patients, query); err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	return patients, nil
}

func (r *patientRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM patients`); err != nil {
		return 0, fmt.Errorf("failed to count patients: %w", err)
	}
	return count, nil
}
