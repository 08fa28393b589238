package admin

import (
	"context"

	"github.com/google/uuid"

	"github.com/medcore/hospital-api/internal/model"
)

type mockUserRepo struct {
	createWithDoctorFn func(ctx context.Context, user *model.User, doctor *model.Doctor) error
	countFn            func(ctx context.Context) (int, error)
}

func (m *mockUserRepo) CreateWithPatient(ctx context.Context, user *model.User, patient *model.Patient) error {
	panic("not expected")
}

func (m *mockUserRepo) CreateWithDoctor(ctx context.Context, user *model.User, doctor *model.Doctor) error {
	return m.createWithDoctorFn(ctx, user, doctor)
}

func (m *mockUserRepo) CreateAdmin(ctx context.Context, user *model.User) error {
	panic("not expected")
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	panic("not expected")
}

func (m *mockUserRepo) Get(ctx context.Context, id uuid.UUID) (*model.User, error) {
	panic("not expected")
}

func (m *mockUserRepo) UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error {
	panic("not expected")
}

func (m *mockUserRepo) Count(ctx context.Context) (int, error) {
	return m.countFn(ctx)
}

type mockDoctorRepo struct {
	listFn  func(ctx context.Context) ([]*model.DoctorInfo, error)
	countFn func(ctx context.Context) (int, error)
}

func (m *mockDoctorRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Doctor, error) {
	panic("not expected")
}

func (m *mockDoctorRepo) GetProfile(ctx context.Context, userID uuid.UUID) (*model.DoctorProfile, error) {
	panic("not expected")
}

func (m *mockDoctorRepo) UpdateProfile(ctx context.Context, userID uuid.UUID, req *model.UpdateDoctorProfileRequest) ([]string, error) {
	panic("not expected")
}

func (m *mockDoctorRepo) List(ctx context.Context) ([]*model.DoctorInfo, error) {
	return m.listFn(ctx)
}

func (m *mockDoctorRepo) Count(ctx context.Context) (int, error) {
	return m.countFn(ctx)
}

type mockPatientRepo struct {
	listFn  func(ctx context.Context) ([]*model.PatientInfo, error)
	countFn func(ctx context.Context) (int, error)
}

func (m *mockPatientRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Patient, error) {
	panic("not expected")
}

func (m *mockPatientRepo) GetProfile(ctx context.Context, userID uuid.UUID) (*model.PatientProfile, error) {
	panic("not expected")
}

func (m *mockPatientRepo) UpdateProfile(ctx context.Context, userID uuid.UUID, req *model.UpdatePatientProfileRequest) ([]string, error) {
	panic("not expected")
}

func (m *mockPatientRepo) List(ctx context.Context) ([]*model.PatientInfo, error) {
	return m.listFn(ctx)
}

func (m *mockPatientRepo) Count(ctx context.Context) (int, error) {
	return m.countFn(ctx)
}

type mockAppointmentRepo struct {
	recentFn func(ctx context.Context, limit int) ([]*model.ActivityEntry, error)
	countFn  func(ctx context.Context) (int, error)
}

func (m *mockAppointmentRepo) Create(ctx context.Context, appointment *model.Appointment) error {
	panic("not expected")
}

func (m *mockAppointmentRepo) Get(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	panic("not expected")
}

func (m *mockAppointmentRepo) ListForPatient(ctx context.Context, patientID uuid.UUID) ([]*model.PatientAppointmentView, error) {
	panic("not expected")
}

func (m *mockAppointmentRepo) ListForDoctor(ctx context.Context, doctorID uuid.UUID) ([]*model.DoctorAppointmentView, error) {
	panic("not expected")
}

func (m *mockAppointmentRepo) StatsForDoctor(ctx context.Context, doctorID uuid.UUID) (*model.AppointmentStats, error) {
	panic("not expected")
}

func (m *mockAppointmentRepo) Recent(ctx context.Context, limit int) ([]*model.ActivityEntry, error) {
	return m.recentFn(ctx, limit)
}

func (m *mockAppointmentRepo) Count(ctx context.Context) (int, error) {
	return m.countFn(ctx)
}

type mockHasher struct {
	hashFn func(password string) (string, error)
}

func (m *mockHasher) Hash(password string) (string, error) {
	return m.hashFn(password)
}

func (m *mockHasher) Compare(hashedPassword, password string) error {
	panic("not expected")
}

type mockInvalidator struct {
	calls int
}

func (m *mockInvalidator) InvalidateDirectory() {
	m.calls++
}
