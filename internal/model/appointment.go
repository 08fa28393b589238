package model

import (
	"time"

	"github.com/google/uuid"
)

type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "SCHEDULED"
	AppointmentStatusCompleted AppointmentStatus = "COMPLETED"
)

// Appointment is a ledger entry binding a doctor and a patient to a
// point in time. A (doctor_id, date_time) pair is unique: the store
// constraint, not application code, arbitrates double bookings.
type Appointment struct {
	ID        uuid.UUID         `json:"id" db:"id"`
	DoctorID  uuid.UUID         `json:"doctor_id" db:"doctor_id"`
	PatientID uuid.UUID         `json:"patient_id" db:"patient_id"`
	DateTime  time.Time         `json:"date_time" db:"date_time"`
	Status    AppointmentStatus `json:"status" db:"status"`
	CreatedAt time.Time         `json:"created_at" db:"created_at"`
}

type BookAppointmentRequest struct {
	DoctorID uuid.UUID `json:"doctor_id" binding:"required"`
	DateTime time.Time `json:"date_time" binding:"required"`
}

// PatientAppointmentView is an appointment enriched with the doctor's
// specialization and, when present, the attached prescription.
type PatientAppointmentView struct {
	ID             uuid.UUID         `json:"id"`
	DateTime       time.Time         `json:"date_time"`
	Status         AppointmentStatus `json:"status"`
	DoctorID       uuid.UUID         `json:"doctor_id"`
	Specialization string            `json:"specialization"`
	Prescription   *PrescriptionView `json:"prescription"`
}

// DoctorAppointmentView is an appointment enriched with the patient's
// identity.
type DoctorAppointmentView struct {
	ID           uuid.UUID         `json:"id" db:"id"`
	DateTime     time.Time         `json:"date_time" db:"date_time"`
	Status       AppointmentStatus `json:"status" db:"status"`
	PatientName  string            `json:"patient_name" db:"patient_name"`
	PatientEmail string            `json:"patient_email" db:"patient_email"`
}
