package storage

import (
	"sync"

	"doctor-appointment-server/internal/models"
)

// MemoryBackend keeps all records in process memory. State is lost on
// restart; used for tests and ephemeral runs.
type MemoryBackend struct {
	mu           sync.Mutex
	users        []models.User
	appointments []models.Appointment
}

// NewMemoryBackend creates a volatile backend pre-seeded with the three
// fixed doctor accounts and an empty appointment list.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{users: models.SeedDoctors()}
}

// The mutex guards the slices against torn reads, nothing more. It does
// not make a caller's read-modify-write sequence atomic.

func (m *MemoryBackend) ReadUsers() ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.User, len(m.users))
	copy(out, m.users)
	return out, nil
}

func (m *MemoryBackend) WriteUsers(users []models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users = make([]models.User, len(users))
	copy(m.users, users)
	return nil
}

func (m *MemoryBackend) ReadAppointments() ([]models.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Appointment, len(m.appointments))
	copy(out, m.appointments)
	return out, nil
}

func (m *MemoryBackend) WriteAppointments(appointments []models.Appointment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.appointments = make([]models.Appointment, len(appointments))
	copy(m.appointments, appointments)
	return nil
}
