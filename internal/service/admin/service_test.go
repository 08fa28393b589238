package admin

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medcore/hospital-api/internal/model"
	"github.com/medcore/hospital-api/pkg/apperror"
)

func TestCreateDoctor(t *testing.T) {
	userRepo := &mockUserRepo{
		createWithDoctorFn: func(ctx context.Context, user *model.User, doctor *model.Doctor) error {
			user.ID = uuid.New()
			assert.Equal(t, model.RoleDoctor, user.Role)
			assert.Equal(t, "hashed:doctor-pass", user.PasswordHash)
			assert.Equal(t, "Neurology", doctor.Specialization)
			return nil
		},
	}
	hasher := &mockHasher{
		hashFn: func(password string) (string, error) { return "hashed:" + password, nil },
	}
	invalidator := &mockInvalidator{}

	svc := NewService(userRepo, &mockDoctorRepo{}, &mockPatientRepo{}, &mockAppointmentRepo{}, hasher, invalidator)
	user, err := svc.CreateDoctor(context.Background(), &model.CreateDoctorRequest{
		Name:           "Dr. Carol",
		Email:          "carol@example.com",
		Password:       "doctor-pass",
		Specialization: "Neurology",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, 1, invalidator.calls)
}

func TestCreateDoctorDuplicateEmail(t *testing.T) {
	userRepo := &mockUserRepo{
		createWithDoctorFn: func(ctx context.Context, user *model.User, doctor *model.Doctor) error {
			return apperror.Conflict("email already exists")
		},
	}
	hasher := &mockHasher{
		hashFn: func(password string) (string, error) { return "h", nil },
	}
	invalidator := &mockInvalidator{}

	svc := NewService(userRepo, &mockDoctorRepo{}, &mockPatientRepo{}, &mockAppointmentRepo{}, hasher, invalidator)
	_, err := svc.CreateDoctor(context.Background(), &model.CreateDoctorRequest{
		Name:           "Dr. Carol",
		Email:          "carol@example.com",
		Password:       "doctor-pass",
		Specialization: "Neurology",
	})
	assert.True(t, apperror.Is(err, apperror.CodeConflict))
	assert.Equal(t, 0, invalidator.calls)
}

func TestStats(t *testing.T) {
	count := func(n int) func(context.Context) (int, error) {
		return func(ctx context.Context) (int, error) { return n, nil }
	}

	svc := NewService(
		&mockUserRepo{countFn: count(10)},
		&mockDoctorRepo{countFn: count(3)},
		&mockPatientRepo{countFn: count(6)},
		&mockAppointmentRepo{countFn: count(42)},
		&mockHasher{},
		&mockInvalidator{},
	)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &model.Stats{Users: 10, Doctors: 3, Patients: 6, Appointments: 42}, stats)
}

func TestActivityUsesFeedLimit(t *testing.T) {
	appointmentRepo := &mockAppointmentRepo{
		recentFn: func(ctx context.Context, limit int) ([]*model.ActivityEntry, error) {
			assert.Equal(t, activityFeedLimit, limit)
			return []*model.ActivityEntry{{ID: uuid.New()}}, nil
		},
	}

	svc := NewService(&mockUserRepo{}, &mockDoctorRepo{}, &mockPatientRepo{}, appointmentRepo, &mockHasher{}, &mockInvalidator{})
	entries, err := svc.Activity(context.Background())
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
