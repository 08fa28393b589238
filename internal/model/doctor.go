package model

import (
	"time"

	"github.com/google/uuid"
)

// Doctor is the role-profile attached 1:1 to a DOCTOR user.
type Doctor struct {
	ID             uuid.UUID `json:"id" db:"id"`
	UserID         uuid.UUID `json:"user_id" db:"user_id"`
	Specialization string    `json:"specialization" db:"specialization"`
	Phone          string    `json:"phone" db:"phone"`
	Address        string    `json:"address" db:"address"`
}

// DoctorInfo is the public directory row patients pick from.
type DoctorInfo struct {
	ID             uuid.UUID `json:"id" db:"id"`
	Name           string    `json:"name" db:"name"`
	Email          string    `json:"email" db:"email"`
	Specialization string    `json:"specialization" db:"specialization"`
}

// DoctorProfile joins the doctor row with its user record.
type DoctorProfile struct {
	ID             uuid.UUID `json:"id" db:"id"`
	Name           string    `json:"name" db:"name"`
	Email          string    `json:"email" db:"email"`
	Specialization string    `json:"specialization" db:"specialization"`
	Phone          string    `json:"phone" db:"phone"`
	Address        string    `json:"address" db:"address"`
}

// AppointmentStats are counts derived from the appointment ledger.
type AppointmentStats struct {
	Total     int `json:"total" db:"total"`
	Completed int `json:"completed" db:"completed"`
	Pending   int `json:"pending" db:"pending"`
}

// DoctorProfileView is the doctor-facing profile read model.
type DoctorProfileView struct {
	DoctorProfile
	Stats AppointmentStats `json:"stats"`
}

type UpdateDoctorProfileRequest struct {
	Name           *string `json:"name"`
	Specialization *string `json:"specialization"`
	Phone          *string `json:"phone"`
	Address        *string `json:"address"`
}

type CreateDoctorRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required,min=8"`
	Specialization string `json:"specialization" binding:"required"`
}

// ActivityEntry is one row of the admin activity feed.
type ActivityEntry struct {
	ID           uuid.UUID         `json:"id" db:"id"`
	DateTime     time.Time         `json:"date_time" db:"date_time"`
	Status       AppointmentStatus `json:"status" db:"status"`
	DoctorName   string            `json:"doctor_name" db:"doctor_name"`
	DoctorEmail  string            `json:"doctor_email" db:"doctor_email"`
	PatientName  string            `json:"patient_name" db:"patient_name"`
	PatientEmail string            `json:"patient_email" db:"patient_email"`
}

// Stats is the admin dashboard counter set.
type Stats struct {
	Users        int `json:"users" db:"users"`
	Doctors      int `json:"doctors" db:"doctors"`
	Patients     int `json:"patients" db:"patients"`
	Appointments int `json:"appointments" db:"appointments"`
}
