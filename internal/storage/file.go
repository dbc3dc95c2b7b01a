package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"doctor-appointment-server/internal/models"
)

const (
	usersFile        = "users.json"
	appointmentsFile = "appointments.json"
)

// FileBackend persists each record kind as a pretty-printed JSON array in
// its own file under a data directory.
//
// Writes overwrite the whole file in place with no rename step, so a crash
// mid-write can leave a truncated file behind; reads then degrade to an
// empty set. Not crash-safe — acceptable for this application, where the
// durable files are small and written rarely.
type FileBackend struct {
	dir string
}

// NewFileBackend creates the data directory if needed and seeds the users
// file with the three fixed doctor accounts and the appointments file with
// an empty list, unless those files already exist.
func NewFileBackend(dir string) (*FileBackend, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir %s: %w", dir, err)
	}
	b := &FileBackend{dir: dir}
	if err := b.seedIfMissing(usersFile, models.SeedDoctors()); err != nil {
		return nil, err
	}
	if err := b.seedIfMissing(appointmentsFile, []models.Appointment{}); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *FileBackend) seedIfMissing(name string, records any) error {
	path := filepath.Join(b.dir, name)
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal seed data for %s: %w", name, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("seed %s: %w", path, err)
	}
	logger.Info().Str("file", path).Msg("seeded data file")
	return nil
}

// readFile parses the named JSON array into out. A missing or corrupt file
// is logged and treated as an empty set rather than failing the caller.
func (b *FileBackend) readFile(name string, out any) error {
	path := filepath.Join(b.dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error().Err(err).Str("file", path).Msg("error reading data file")
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		logger.Error().Err(err).Str("file", path).Msg("error parsing data file")
		return nil
	}
	return nil
}

func (b *FileBackend) writeFile(name string, records any) error {
	path := filepath.Join(b.dir, name)
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func (b *FileBackend) ReadUsers() ([]models.User, error) {
	var users []models.User
	if err := b.readFile(usersFile, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (b *FileBackend) WriteUsers(users []models.User) error {
	return b.writeFile(usersFile, users)
}

func (b *FileBackend) ReadAppointments() ([]models.Appointment, error) {
	var appointments []models.Appointment
	if err := b.readFile(appointmentsFile, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

func (b *FileBackend) WriteAppointments(appointments []models.Appointment) error {
	return b.writeFile(appointmentsFile, appointments)
}
