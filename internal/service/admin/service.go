package admin

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/medcore/hospital-api/internal/model"
	"github.com/medcore/hospital-api/internal/repository"
	"github.com/medcore/hospital-api/pkg/security"
)

const activityFeedLimit = 50

// DirectoryInvalidator drops any cached doctor listing after
// provisioning.
type DirectoryInvalidator interface {
	InvalidateDirectory()
}

type Service struct {
	userRepo        repository.UserRepository
	doctorRepo      repository.DoctorRepository
	patientRepo     repository.PatientRepository
	appointmentRepo repository.AppointmentRepository
	hasher          security.PasswordHasher
	directory       DirectoryInvalidator
}

func NewService(
	userRepo repository.UserRepository,
	doctorRepo repository.DoctorRepository,
	patientRepo repository.PatientRepository,
	appointmentRepo repository.AppointmentRepository,
	hasher security.PasswordHasher,
	directory DirectoryInvalidator,
) *Service {
	return &Service{
		userRepo:        userRepo,
		doctorRepo:      doctorRepo,
		patientRepo:     patientRepo,
		appointmentRepo: appointmentRepo,
		hasher:          hasher,
		directory:       directory,
	}
}

// CreateDoctor provisions a doctor account with its profile. Doctors
// cannot self-register with elevated trust; this is the admin path.
func (s *Service) CreateDoctor(ctx context.Context, req *model.CreateDoctorRequest) (*model.User, error) {
	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         model.RoleDoctor,
	}
	doctor := &model.Doctor{Specialization: req.Specialization}

	if err := s.userRepo.CreateWithDoctor(ctx, user, doctor); err != nil {
		return nil, err
	}

	s.directory.InvalidateDirectory()

	log.Info().
		Str("user_id", user.ID.String()).
		Str("specialization", doctor.Specialization).
		Msg("doctor provisioned")

	return user, nil
}

// Stats returns the dashboard counters.
func (s *Service) Stats(ctx context.Context) (*model.Stats, error) {
	users, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	doctors, err := s.doctorRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	patients, err := s.patientRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	appointments, err := s.appointmentRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &model.Stats{
		Users:        users,
		Doctors:      doctors,
		Patients:     patients,
		Appointments: appointments,
	}, nil
}

func (s *Service) Doctors(ctx context.Context) ([]*model.DoctorInfo, error) {
	return s.doctorRepo.List(ctx)
}

func (s *Service) Patients(ctx context.Context) ([]*model.PatientInfo, error) {
	return s.patientRepo.List(ctx)
}

// Activity returns the most recent appointments with both counterpart
// identities.
func (s *Service) Activity(ctx context.Context) ([]*model.ActivityEntry, error) {
	return s.appointmentRepo.Recent(ctx, activityFeedLimit)
}
