package storage

import (
	"os"

	"github.com/rs/zerolog"

	"doctor-appointment-server/internal/models"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Str("component", "storage").Logger()

// Backend is the record-level persistence contract. Two record kinds are
// stored, users and appointments, each read and written as a full ordered
// set. Implementations are interchangeable: MemoryBackend keeps records in
// process memory, FileBackend serializes each kind to its own JSON file.
//
// There is no partial update. Every mutation above this interface is a
// read-modify-write of the complete set, and that sequence is not atomic:
// two concurrent mutations to the same kind race and the later write wins,
// silently discarding the earlier one. Accepted for this system's scale
// (one small file, low write concurrency); a stricter deployment would
// serialize writes per kind behind a single writer.
type Backend interface {
	ReadUsers() ([]models.User, error)
	WriteUsers(users []models.User) error
	ReadAppointments() ([]models.Appointment, error)
	WriteAppointments(appointments []models.Appointment) error
}
