package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/medcore/hospital-api/internal/model"
	"github.com/medcore/hospital-api/pkg/apperror"
)

func (r *appointmentRepository) Create(ctx context.Context, appointment *model.Appointment) error {
	query := `
		INSERT INTO appointments (id, doctor_id, patient_id, date_time, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	appointment.ID = uuid.New()
	appointment.Status = model.AppointmentStatusScheduled
	appointment.CreatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		appointment.ID,
		appointment.DoctorID,
		appointment.PatientID,
		appointment.DateTime,
		appointment.Status,
		appointment.CreatedAt,
	)
	if err != nil {
		// The unique index on (doctor_id, date_time) arbitrates
		// concurrent bookings; losing a race surfaces here.
		if isUniqueViolation(err) {
			return apperror.Conflict("Doctor not available at this time")
		}
		if isForeignKeyViolation(err) {
			return apperror.NotFound("doctor")
		}
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	return nil
}

func (r *appointmentRepository) Get(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	query := `
		SELECT id, doctor_id, patient_id, date_time, status, created_at
		FROM appointments
		WHERE id = $1
	`
	var appointment model.Appointment
	err := r.db.GetContext(ctx, &appointment, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound("appointment")
		}
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}
	return &appointment, nil
}

type patientAppointmentRow struct {
	ID             uuid.UUID               `db:"id"`
	DateTime       time.Time               `db:"date_time"`
	Status         model.AppointmentStatus `db:"status"`
	DoctorID       uuid.UUID               `db:"doctor_id"`
	Specialization string                  `db:"specialization"`
	Diagnosis      sql.NullString          `db:"prescription_diagnosis"`
	Notes          sql.NullString          `db:"prescription_notes"`
}

func (r *appointmentRepository) ListForPatient(ctx context.Context, patientID uuid.UUID) ([]*model.PatientAppointmentView, error) {
	query := `
		SELECT a.id, a.date_time, a.status,
		       d.id AS doctor_id, d.specialization,
		       p.diagnosis AS prescription_diagnosis,
		       p.notes AS prescription_notes
		FROM appointments a
		JOIN doctors d ON d.id = a.doctor_id
		LEFT JOIN prescriptions p ON p.appointment_id = a.id
		WHERE a.patient_id = $1
		ORDER BY a.date_time DESC
	`
	var rows []patientAppointmentRow
	if err := r.db.SelectContext(ctx, &rows, query, patientID); err != nil {
		return nil, fmt.Errorf("failed to list patient appointments: %w", err)
	}

	views := make([]*model.PatientAppointmentView, 0, len(rows))
	for _, row := range rows {
		view := &model.PatientAppointmentView{
			ID:             row.ID,
			DateTime:       row.DateTime,
			Status:         row.Status,
			DoctorID:       row.DoctorID,
			Specialization: row.Specialization,
		}
		if row.Notes.Valid || row.Diagnosis.Valid {
			view.Prescription = &model.PrescriptionView{
				Text:      row.Notes.String,
				Diagnosis: row.Diagnosis.String,
			}
		}
		views = append(views, view)
	}
	return views, nil
}

func (r *appointmentRepository) ListForDoctor(ctx context.Context, doctorID uuid.UUID) ([]*model.DoctorAppointmentView, error) {
	query := `
		SELECT a.id, a.date_time, a.status,
		       u.name AS patient_name, u.email AS patient_email
		FROM appointments a
		JOIN patients p ON p.id = a.patient_id
		JOIN users u ON u.id = p.user_id
		WHERE a.doctor_id = $1
		ORDER BY a.date_time ASC
	`
	var views []*model.DoctorAppointmentView
	if err := r.db.SelectContext(ctx, &views, query, doctorID); err != nil {
		return nil, fmt.Errorf("failed to list doctor appointments: %w", err)
	}
	return views, nil
}

func (r *appointmentRepository) StatsForDoctor(ctx context.Context, doctorID uuid.UUID) (*model.AppointmentStats, error) {
	query := `
		SELECT COUNT(*) AS total,
		       COUNT(*) FILTER (WHERE status = 'COMPLETED') AS completed,
		       COUNT(*) FILTER (WHERE status = 'SCHEDULED') AS pending
		FROM appointments
		WHERE doctor_id = $1
	`
	var stats model.AppointmentStats
	if err := r.db.GetContext(ctx, &stats, query, doctorID); err != nil {
		return nil, fmt.Errorf("failed to get doctor appointment stats: %w", err)
	}
	return &stats, nil
}

func (r *appointmentRepository) Recent(ctx context.Context, limit int) ([]*model.ActivityEntry, error) {
	query := `
		SELECT a.id, a.date_time, a.status,
		       du.name AS doctor_name, du.email AS doctor_email,
		       pu.name AS patient_name, pu.email AS patient_email
		FROM appointments a
		JOIN doctors d ON d.id = a.doctor_id
		JOIN users du ON du.id = d.user_id
		JOIN patients p ON p.id = a.patient_id
		JOIN users pu ON pu.id = p.user_id
		ORDER BY a.date_time DESC
		LIMIT $1
	`
	var entries []*model.ActivityEntry
	if err := r.db.SelectContext(ctx, &entries, query, limit); err != nil {
		return nil, fmt.Errorf("failed to list recent appointments: %w", err)
	}
	return entries, nil
}

func (r *appointmentRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM appointments`); err != nil {
		return 0, fmt.Errorf("failed to count appointments: %w", err)
	}
	return count, nil
}
