package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/medcore/hospital-api/internal/model"
	"github.com/medcore/hospital-api/internal/repository"
)

// Service is the patient-facing side of the appointment ledger.
type Service struct {
	appointmentRepo repository.AppointmentRepository
	patientRepo     repository.PatientRepository
}

func NewService(appointmentRepo repository.AppointmentRepository, patientRepo repository.PatientRepository) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
	}
}

// Book inserts a SCHEDULED appointment for the calling patient. There
// is no pre-check for slot availability; the store's unique constraint
// decides between concurrent bookings of the same (doctor, time) pair.
func (s *Service) Book(ctx context.Context, userID uuid.UUID, req *model.BookAppointmentRequest) (*model.Appointment, error) {
	patient, err := s.patientRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	appointment := &model.Appointment{
		DoctorID:  req.DoctorID,
		PatientID: patient.ID,
		DateTime:  req.DateTime,
	}
	if err := s.appointmentRepo.Create(ctx, appointment); err != nil {
		return nil, err
	}
	return appointment, nil
}

// ListMine returns the calling patient's appointments, newest first,
// enriched with doctor specialization and any attached prescription.
func (s *Service) ListMine(ctx context.Context, userID uuid.UUID) ([]*model.PatientAppointmentView, error) {
	patient, err := s.patientRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.appointmentRepo.ListForPatient(ctx, patient.ID)
}

// Profile returns the patient profile read model: identity fields plus
// counts and prescription history derived from the appointment list.
func (s *Service) Profile(ctx context.Context, userID uuid.UUID) (*model.PatientProfileView, error) {
	profile, err := s.patientRepo.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	patient, err := s.patientRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	appointments, err := s.appointmentRepo.ListForPatient(ctx, patient.ID)
	if err != nil {
		return nil, err
	}

	view := &model.PatientProfileView{
		PatientProfile: *profile,
		Prescriptions:  make([]model.PrescriptionEntry, 0),
	}
	for _, a := range appointments {
		view.Stats.Total++
		switch a.Status {
		case model.AppointmentStatusCompleted:
			view.Stats.Completed++
		case model.AppointmentStatusScheduled:
			view.Stats.Pending++
		}
		// Completed visits without notes count as "completed without
		// medication" and stay out of the history.
		if a.Status == model.AppointmentStatusCompleted && a.Prescription != nil && a.Prescription.Text != "" {
			view.Prescriptions = append(view.Prescriptions, model.PrescriptionEntry{
				AppointmentID: a.ID,
				DateTime:      a.DateTime,
				Diagnosis:     a.Prescription.Diagnosis,
				Text:          a.Prescription.Text,
			})
		}
	}
	return view, nil
}

// UpdateProfile applies a partial update to the caller's patient
// profile and reports which fields were applied.
func (s *Service) UpdateProfile(ctx context.Context, userID uuid.UUID, req *model.UpdatePatientProfileRequest) (*model.ProfileUpdateResult, error) {
	if _, err := s.patientRepo.GetByUserID(ctx, userID); err != nil {
		return nil, err
	}

	applied, err := s.patientRepo.UpdateProfile(ctx, userID, req)
	if err != nil {
		return nil, err
	}
	return &model.ProfileUpdateResult{Applied: applied}, nil
}
