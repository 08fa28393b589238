package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/medcore/hospital-api/internal/model"
)

type mockUserRepo struct {
	createWithPatientFn func(ctx context.Context, user *model.User, patient *model.Patient) error
	createWithDoctorFn  func(ctx context.Context, user *model.User, doctor *model.Doctor) error
	getByEmailFn        func(ctx context.Context, email string) (*model.User, error)
}

func (m *mockUserRepo) CreateWithPatient(ctx context.Context, user *model.User, patient *model.Patient) error {
	return m.createWithPatientFn(ctx, user, patient)
}

func (m *mockUserRepo) CreateWithDoctor(ctx context.Context, user *model.User, doctor *model.Doctor) error {
	return m.createWithDoctorFn(ctx, user, doctor)
}

func (m *mockUserRepo) CreateAdmin(ctx context.Context, user *model.User) error {
	panic("not expected")
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return m.getByEmailFn(ctx, email)
}

func (m *mockUserRepo) Get(ctx context.Context, id uuid.UUID) (*model.User, error) {
	panic("not expected")
}

func (m *mockUserRepo) UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error {
	panic("not expected")
}

func (m *mockUserRepo) Count(ctx context.Context) (int, error) {
	panic("not expected")
}

type mockHasher struct {
	hashFn    func(password string) (string, error)
	compareFn func(hashedPassword, password string) error
}

func (m *mockHasher) Hash(password string) (string, error) {
	return m.hashFn(password)
}

func (m *mockHasher) Compare(hashedPassword, password string) error {
	return m.compareFn(hashedPassword, password)
}
