package storage

import (
	"errors"
	"time"

	"doctor-appointment-server/internal/models"
)

// ErrNotFound is returned when an id references no stored record.
var ErrNotFound = errors.New("record not found")

// Store implements the domain operations on users and appointments on top
// of a Backend. It owns id assignment and default-field population.
//
// Every mutation reads the full record set, modifies it in memory and
// rewrites the full set. Persistence failures on the write path are logged
// and the in-memory result is still returned to the caller, so a write can
// be silently lost; see the Backend doc for why this is accepted.
type Store struct {
	backend Backend
	now     func() time.Time
}

// NewStore creates a Store over the given backend.
func NewStore(backend Backend) *Store {
	return &Store{backend: backend, now: time.Now}
}

func (s *Store) users() []models.User {
	users, err := s.backend.ReadUsers()
	if err != nil {
		logger.Error().Err(err).Msg("error reading users")
		return nil
	}
	return users
}

func (s *Store) appointments() []models.Appointment {
	appointments, err := s.backend.ReadAppointments()
	if err != nil {
		logger.Error().Err(err).Msg("error reading appointments")
		return nil
	}
	return appointments
}

// User returns the user with the given id.
func (s *Store) User(id int) (*models.User, error) {
	for _, u := range s.users() {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

// UserByUsername returns the user with the given username.
func (s *Store) UserByUsername(username string) (*models.User, error) {
	for _, u := range s.users() {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

// CreateUser assigns the next id, appends the user and persists the set.
func (s *Store) CreateUser(data models.InsertUser) models.User {
	users := s.users()
	user := models.User{
		ID:        nextUserID(users),
		Username:  data.Username,
		Password:  data.Password,
		FullName:  data.FullName,
		Specialty: data.Specialty,
	}
	users = append(users, user)
	if err := s.backend.WriteUsers(users); err != nil {
		logger.Error().Err(err).Msg("error writing users")
	}
	return user
}

// Appointments returns all appointments in insertion order.
func (s *Store) Appointments() []models.Appointment {
	return s.appointments()
}

// AppointmentsByDoctor returns the appointments whose doctorId exactly
// matches the given value.
func (s *Store) AppointmentsByDoctor(doctorID string) []models.Appointment {
	var out []models.Appointment
	for _, a := range s.appointments() {
		if a.DoctorID == doctorID {
			out = append(out, a)
		}
	}
	return out
}

// AppointmentsByDate returns the appointments whose appointmentDate
// exactly matches the given string. No range or calendar semantics.
func (s *Store) AppointmentsByDate(date string) []models.Appointment {
	var out []models.Appointment
	for _, a := range s.appointments() {
		if a.AppointmentDate == date {
			out = append(out, a)
		}
	}
	return out
}

// CreateAppointment assigns the next id, sets status to confirmed and
// createdAt to now, appends and persists. Returns the created record.
func (s *Store) CreateAppointment(data models.InsertAppointment) models.Appointment {
	appointments := s.appointments()
	appointment := models.Appointment{
		ID:              nextAppointmentID(appointments),
		FirstName:       data.FirstName,
		LastName:        data.LastName,
		Email:           data.Email,
		Phone:           data.Phone,
		DoctorID:        data.DoctorID,
		AppointmentDate: data.AppointmentDate,
		AppointmentTime: data.AppointmentTime,
		Reason:          data.Reason,
		Status:          models.StatusConfirmed,
		CreatedAt:       s.now(),
	}
	appointments = append(appointments, appointment)
	if err := s.backend.WriteAppointments(appointments); err != nil {
		logger.Error().Err(err).Msg("error writing appointments")
	}
	return appointment
}

// UpdateAppointmentStatus overwrites the status of the appointment with
// the given id and persists. Any status the caller supplies is accepted
// verbatim; transition validation happens at the request surface.
func (s *Store) UpdateAppointmentStatus(id int, status models.AppointmentStatus) (*models.Appointment, error) {
	appointments := s.appointments()
	for i := range appointments {
		if appointments[i].ID == id {
			appointments[i].Status = status
			if err := s.backend.WriteAppointments(appointments); err != nil {
				logger.Error().Err(err).Msg("error writing appointments")
			}
			return &appointments[i], nil
		}
	}
	return nil, ErrNotFound
}

// DeleteAppointment removes the appointment with the given id and
// persists. Returns false, leaving the set unchanged, if the id is
// unknown.
func (s *Store) DeleteAppointment(id int) bool {
	appointments := s.appointments()
	for i := range appointments {
		if appointments[i].ID == id {
			appointments = append(appointments[:i], appointments[i+1:]...)
			if err := s.backend.WriteAppointments(appointments); err != nil {
				logger.Error().Err(err).Msg("error writing appointments")
			}
			return true
		}
	}
	return false
}

// Next ids are max(existing)+1, not a count, so ids stay unique across
// deletions within a running process.

func nextUserID(users []models.User) int {
	next := 1
	for _, u := range users {
		if u.ID >= next {
			next = u.ID + 1
		}
	}
	return next
}

func nextAppointmentID(appointments []models.Appointment) int {
	next := 1
	for _, a := range appointments {
		if a.ID >= next {
			next = a.ID + 1
		}
	}
	return next
}
