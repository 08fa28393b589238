package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/medcore/hospital-api/internal/model"
)

type UserRepository interface {
	// CreateWithPatient inserts the user and its patient profile in one
	// transaction.
	CreateWithPatient(ctx context.Context, user *model.User, patient *model.Patient) error
	// CreateWithDoctor inserts the user and its doctor profile in one
	// transaction.
	CreateWithDoctor(ctx context.Context, user *model.User, doctor *model.Doctor) error
	CreateAdmin(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Get(ctx context.Context, id uuid.UUID) (*model.User, error)
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error
	Count(ctx context.Context) (int, error)
}

type DoctorRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Doctor, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*model.DoctorProfile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *model.UpdateDoctorProfileRequest) ([]string, error)
	List(ctx context.Context) ([]*model.DoctorInfo, error)
	Count(ctx context.Context) (int, error)
}

type PatientRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Patient, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*model.PatientProfile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *model.UpdatePatientProfileRequest) ([]string, error)
	List(ctx context.Context) ([]*model.PatientInfo, error)
	Count(ctx context.Context) (int, error)
}

type AppointmentRepository interface {
	// Create inserts a SCHEDULED appointment. A second booking of the
	// same (doctor, date_time) slot fails with a conflict raised by the
	// store's unique constraint.
	Create(ctx context.Context, appointment *model.Appointment) error
	Get(ctx context.Context, id uuid.UUID) (*model.Appointment, error)
	ListForPatient(ctx context.Context, patientID uuid.UUID) ([]*model.PatientAppointmentView, error)
	ListForDoctor(ctx context.Context, doctorID uuid.UUID) ([]*model.DoctorAppointmentView, error)
	StatsForDoctor(ctx context.Context, doctorID uuid.UUID) (*model.AppointmentStats, error)
	Recent(ctx context.Context, limit int) ([]*model.ActivityEntry, error)
	Count(ctx context.Context) (int, error)
}

type PrescriptionRepository interface {
	// Attach upserts the prescription for its appointment and forces the
	// appointment to COMPLETED, atomically.
	Attach(ctx context.Context, prescription *model.Prescription) error
}
