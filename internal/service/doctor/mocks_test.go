package doctor

import (
	"context"

	"github.com/google/uuid"

	"github.com/medcore/hospital-api/internal/model"
)

type mockDoctorRepo struct {
	getByUserIDFn   func(ctx context.Context, userID uuid.UUID) (*model.Doctor, error)
	getProfileFn    func(ctx context.Context, userID uuid.UUID) (*model.DoctorProfile, error)
	updateProfileFn func(ctx context.Context, userID uuid.UUID, req *model.UpdateDoctorProfileRequest) ([]string, error)
	listFn          func(ctx context.Context) ([]*model.DoctorInfo, error)
}

func (m *mockDoctorRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Doctor, error) {
	return m.getByUserIDFn(ctx, userID)
}

func (m *mockDoctorRepo) GetProfile(ctx context.Context, userID uuid.UUID) (*model.DoctorProfile, error) {
	return m.getProfileFn(ctx, userID)
}

func (m *mockDoctorRepo) UpdateProfile(ctx context.Context, userID uuid.UUID, req *model.UpdateDoctorProfileRequest) ([]string, error) {
	return m.updateProfileFn(ctx, userID, req)
}

func (m *mockDoctorRepo) List(ctx context.Context) ([]*model.DoctorInfo, error) {
	return m.listFn(ctx)
}

func (m *mockDoctorRepo) Count(ctx context.Context) (int, error) {
	panic("not expected")
}

type mockAppointmentRepo struct {
	getFn            func(ctx context.Context, id uuid.UUID) (*model.Appointment, error)
	listForDoctorFn  func(ctx context.Context, doctorID uuid.UUID) ([]*model.DoctorAppointmentView, error)
	statsForDoctorFn func(ctx context.Context, doctorID uuid.UUID) (*model.AppointmentStats, error)
}

func (m *mockAppointmentRepo) Create(ctx context.Context, appointment *model.Appointment) error {
	panic("not expected")
}

func (m *mockAppointmentRepo) Get(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	return m.getFn(ctx, id)
}

func (m *mockAppointmentRepo) ListForPatient(ctx context.Context, patientID uuid.UUID) ([]*model.PatientAppointmentView, error) {
	panic("not expected")
}

func (m *mockAppointmentRepo) ListForDoctor(ctx context.Context, doctorID uuid.UUID) ([]*model.DoctorAppointmentView, error) {
	return m.listForDoctorFn(ctx, doctorID)
}

func (m *mockAppointmentRepo) StatsForDoctor(ctx context.Context, doctorID uuid.UUID) (*model.AppointmentStats, error) {
	return m.statsForDoctorFn(ctx, doctorID)
}

func (m *mockAppointmentRepo) Recent(ctx context.Context, limit int) ([]*model.ActivityEntry, error) {
	panic("not expected")
}

func (m *mockAppointmentRepo) Count(ctx context.Context) (int, error) {
	panic("not expected")
}

type mockPrescriptionRepo struct {
	attachFn func(ctx context.Context, prescription *model.Prescription) error
}

func (m *mockPrescriptionRepo) Attach(ctx context.Context, prescription *model.Prescription) error {
	return m.attachFn(ctx, prescription)
}
