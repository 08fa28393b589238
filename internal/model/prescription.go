package model

import "github.com/google/uuid"

// Prescription holds the clinical notes attached to an appointment.
// At most one exists per appointment; attaching one completes the
// appointment.
type Prescription struct {
	ID            uuid.UUID `json:"id" db:"id"`
	AppointmentID uuid.UUID `json:"appointment_id" db:"appointment_id"`
	Diagnosis     string    `json:"diagnosis" db:"diagnosis"`
	Notes         string    `json:"notes" db:"notes"`
}

// PrescriptionView is the nested shape embedded in patient appointment
// listings.
type PrescriptionView struct {
	Text      string `json:"text"`
	Diagnosis string `json:"diagnosis"`
}

type AttachPrescriptionRequest struct {
	AppointmentID uuid.UUID `json:"appointment_id" binding:"required"`
	Diagnosis     string    `json:"diagnosis"`
	Notes         string    `json:"notes" binding:"required"`
}
