package model

import (
	"time"

	"github.com/google/uuid"
)

// Patient is the role-profile attached 1:1 to a PATIENT user.
type Patient struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	UserID      uuid.UUID  `json:"user_id" db:"user_id"`
	Phone       string     `json:"phone" db:"phone"`
	DateOfBirth *time.Time `json:"date_of_birth" db:"date_of_birth"`
	BloodType   *string    `json:"blood_type" db:"blood_type"`
	Allergies   *string    `json:"allergies" db:"allergies"`
}

// PatientInfo is the admin listing row.
type PatientInfo struct {
	ID    uuid.UUID `json:"id" db:"id"`
	Name  string    `json:"name" db:"name"`
	Email string    `json:"email" db:"email"`
	Phone string    `json:"phone" db:"phone"`
}

// PatientProfile joins the patient row with its user record.
type PatientProfile struct {
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Phone     string    `json:"phone" db:"phone"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// PatientProfileView is the patient-facing profile read model: the
// profile plus counts and the prescription history derived from the
// patient's own appointment list.
type PatientProfileView struct {
	PatientProfile
	Stats         AppointmentStats    `json:"stats"`
	Prescriptions []PrescriptionEntry `json:"prescriptions"`
}

// PrescriptionEntry is one item of a patient's prescription history.
type PrescriptionEntry struct {
	AppointmentID uuid.UUID `json:"appointment_id"`
	DateTime      time.Time `json:"date_time"`
	Diagnosis     string    `json:"diagnosis"`
	Text          string    `json:"text"`
}

type UpdatePatientProfileRequest struct {
	Name        *string    `json:"name"`
	Phone       *string    `json:"phone"`
	DateOfBirth *time.Time `json:"date_of_birth"`
	BloodType   *string    `json:"blood_type"`
	Allergies   *string    `json:"allergies"`
}

// ProfileUpdateResult reports which fields a partial update applied.
type ProfileUpdateResult struct {
	Applied []string `json:"applied"`
}
