package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/medcore/hospital-api/internal/model"
	"github.com/medcore/hospital-api/pkg/apperror"
)

// Attach upserts the prescription and forces its appointment to
// COMPLETED in a single transaction. Re-attaching overwrites the notes
// and leaves the appointment COMPLETED.
func (r *prescriptionRepository) Attach(ctx context.Context, prescription *model.Prescription) error {
	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		prescription.ID = uuid.New()
		upsert := `
			INSERT INTO prescriptions (id, appointment_id, diagnosis, notes)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (appointment_id)
			DO UPDATE SET diagnosis = EXCLUDED.diagnosis, notes = EXCLUDED.notes
		`
		_, err := tx.ExecContext(ctx, upsert,
			prescription.ID,
			prescription.AppointmentID,
			prescription.Diagnosis,
			prescription.Notes,
		)
		if err != nil {
			if isForeignKeyViolation(err) {
				return apperror.NotFound("appointment")
			}
			return fmt.Errorf("failed to upsert prescription: %w", err)
		}

		_, err = tx.ExecContext(ctx,
			`UPDATE appointments SET status = $1 WHERE id = $2`,
			model.AppointmentStatusCompleted,
			prescription.AppointmentID,
		)
		if err != nil {
			return fmt.Errorf("failed to complete appointment: %w", err)
		}
		return nil
	})
}
