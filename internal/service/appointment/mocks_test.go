package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/medcore/hospital-api/internal/model"
)

type mockPatientRepo struct {
	getByUserIDFn   func(ctx context.Context, userID uuid.UUID) (*model.Patient, error)
	getProfileFn    func(ctx context.Context, userID uuid.UUID) (*model.PatientProfile, error)
	updateProfileFn func(ctx context.Context, userID uuid.UUID, req *model.UpdatePatientProfileRequest) ([]string, error)
}

func (m *mockPatientRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Patient, error) {
	return m.getByUserIDFn(ctx, userID)
}

func (m *mockPatientRepo) GetProfile(ctx context.Context, userID uuid.UUID) (*model.PatientProfile, error) {
	return m.getProfileFn(ctx, userID)
}

func (m *mockPatientRepo) UpdateProfile(ctx context.Context, userID uuid.UUID, req *model.UpdatePatientProfileRequest) ([]string, error) {
	return m.updateProfileFn(ctx, userID, req)
}

func (m *mockPatientRepo) List(ctx context.Context) ([]*model.PatientInfo, error) {
	panic("not expected")
}

func (m *mockPatientRepo) Count(ctx context.Context) (int, error) {
	panic("not expected")
}

type mockAppointmentRepo struct {
	createFn         func(ctx context.Context, appointment *model.Appointment) error
	listForPatientFn func(ctx context.Context, patientID uuid.UUID) ([]*model.PatientAppointmentView, error)
}

func (m *mockAppointmentRepo) Create(ctx context.Context, appointment *model.Appointment) error {
	return m.createFn(ctx, appointment)
}

func (m *mockAppointmentRepo) Get(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	panic("not expected")
}

func (m *mockAppointmentRepo) ListForPatient(ctx context.Context, patientID uuid.UUID) ([]*model.PatientAppointmentView, error) {
	return m.listForPatientFn(ctx, patientID)
}

func (m *mockAppointmentRepo) ListForDoctor(ctx context.Context, doctorID uuid.UUID) ([]*model.DoctorAppointmentView, error) {
	panic("not expected")
}

func (m *mockAppointmentRepo) StatsForDoctor(ctx context.Context, doctorID uuid.UUID) (*model.AppointmentStats, error) {
	panic("not expected")
}

func (m *mockAppointmentRepo) Recent(ctx context.Context, limit int) ([]*model.ActivityEntry, error) {
	panic("not expected")
}

func (m *mockAppointmentRepo) Count(ctx context.Context) (int, error) {
	panic("not expected")
}
