package doctor

import (
	"context"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"github.com/medcore/hospital-api/internal/model"
	"github.com/medcore/hospital-api/internal/repository"
	"github.com/medcore/hospital-api/pkg/apperror"
)

const (
	directoryCacheKey = "doctor_directory"
	directoryCacheTTL = 5 * time.Minute
)

// Service is the doctor-facing side of the ledger plus the public
// doctor directory.
type Service struct {
	doctorRepo       repository.DoctorRepository
	appointmentRepo  repository.AppointmentRepository
	prescriptionRepo repository.PrescriptionRepository
	cache            *gocache.Cache
}

func NewService(
	doctorRepo repository.DoctorRepository,
	appointmentRepo repository.AppointmentRepository,
	prescriptionRepo repository.PrescriptionRepository,
) *Service {
	return &Service{
		doctorRepo:       doctorRepo,
		appointmentRepo:  appointmentRepo,
		prescriptionRepo: prescriptionRepo,
		cache:            gocache.New(directoryCacheTTL, 2*directoryCacheTTL),
	}
}

// Appointments returns the calling doctor's appointments, oldest
// first, enriched with patient identity.
func (s *Service) Appointments(ctx context.Context, userID uuid.UUID) ([]*model.DoctorAppointmentView, error) {
	doctor, err := s.doctorRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.appointmentRepo.ListForDoctor(ctx, doctor.ID)
}

// AttachPrescription upserts the prescription for an appointment owned
// by the calling doctor and completes the appointment. The checks run
// in order: caller is a doctor, the appointment exists, the
// appointment is theirs.
func (s *Service) AttachPrescription(ctx context.Context, userID uuid.UUID, req *model.AttachPrescriptionRequest) error {
	doctor, err := s.doctorRepo.GetByUserID(ctx, userID)
	if err != nil {
		if apperror.Is(err, apperror.CodeNotFound) {
			return apperror.Forbidden("not a doctor")
		}
		return err
	}

	appointment, err := s.appointmentRepo.Get(ctx, req.AppointmentID)
	if err != nil {
		return err
	}

	if appointment.DoctorID != doctor.ID {
		return apperror.Forbidden("not your appointment")
	}

	return s.prescriptionRepo.Attach(ctx, &model.Prescription{
		AppointmentID: appointment.ID,
		Diagnosis:     req.Diagnosis,
		Notes:         req.Notes,
	})
}

// Profile returns the doctor profile with derived appointment counts.
func (s *Service) Profile(ctx context.Context, userID uuid.UUID) (*model.DoctorProfileView, error) {
	profile, err := s.doctorRepo.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats, err := s.appointmentRepo.StatsForDoctor(ctx, profile.ID)
	if err != nil {
		return nil, err
	}

	return &model.DoctorProfileView{
		DoctorProfile: *profile,
		Stats:         *stats,
	}, nil
}

// UpdateProfile applies a partial update to the caller's doctor
// profile and reports which fields were applied.
func (s *Service) UpdateProfile(ctx context.Context, userID uuid.UUID, req *model.UpdateDoctorProfileRequest) (*model.ProfileUpdateResult, error) {
	if _, err := s.doctorRepo.GetByUserID(ctx, userID); err != nil {
		return nil, err
	}

	applied, err := s.doctorRepo.UpdateProfile(ctx, userID, req)
	if err != nil {
		return nil, err
	}
	return &model.ProfileUpdateResult{Applied: applied}, nil
}

// Directory lists all doctors for booking. The result is cached for a
// few minutes; provisioning a doctor invalidates it.
func (s *Service) Directory(ctx context.Context) ([]*model.DoctorInfo, error) {
	if cached, ok := s.cache.Get(directoryCacheKey); ok {
		return cached.([]*model.DoctorInfo), nil
	}

	doctors, err := s.doctorRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetDefault(directoryCacheKey, doctors)
	return doctors, nil
}

// InvalidateDirectory drops the cached doctor listing.
func (s *Service) InvalidateDirectory() {
	s.cache.Delete(directoryCacheKey)
}
