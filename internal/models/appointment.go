package models

import (
	"time"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusCompleted AppointmentStatus = "completed"
)

// IsValid reports whether s is one of the known appointment statuses.
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// Appointment represents a patient booking with a doctor.
//
// DoctorID references User.Username, not User.ID; no referential integrity
// is enforced at write time. AppointmentDate and AppointmentTime are kept
// as opaque strings ("2006-01-02" / "15:04") and filtered by exact match.
// Date ordering relies on the zero-padded fixed-width format being
// lexicographically ordered.
type Appointment struct {
	ID              int               `json:"id"`
	FirstName       string            `json:"firstName"`
	LastName        string            `json:"lastName"`
	Email           string            `json:"email"`
	Phone           string            `json:"phone"`
	DoctorID        string            `json:"doctorId"`
	AppointmentDate string            `json:"appointmentDate"`
	AppointmentTime string            `json:"appointmentTime"`
	Reason          *string           `json:"reason"`
	Status          AppointmentStatus `json:"status"`
	CreatedAt       time.Time         `json:"createdAt"`
}

// InsertAppointment carries the patient-supplied booking fields; id,
// status and createdAt are assigned by the repository.
type InsertAppointment struct {
	FirstName       string
	LastName        string
	Email           string
	Phone           string
	DoctorID        string
	AppointmentDate string
	AppointmentTime string
	Reason          *string
}
