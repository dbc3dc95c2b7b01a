package storage

import (
	"testing"

	"doctor-appointment-server/internal/models"
)

func newTestStore() *Store {
	return NewStore(NewMemoryBackend())
}

func bookAppointment(t *testing.T, s *Store, doctorID, date string) models.Appointment {
	t.Helper()
	return s.CreateAppointment(models.InsertAppointment{
		FirstName:       "Jane",
		LastName:        "Doe",
		Email:           "jane@example.com",
		Phone:           "0123456789",
		DoctorID:        doctorID,
		AppointmentDate: date,
		AppointmentTime: "09:00",
	})
}

func TestSeededUsers(t *testing.T) {
	s := newTestStore()

	user, err := s.UserByUsername("dr-smith")
	if err != nil {
		t.Fatalf("dr-smith should be seeded: %v", err)
	}
	if user.ID != 1 {
		t.Fatalf("expected id 1, got %d", user.ID)
	}
	if user.Specialty == nil || *user.Specialty != "General Physician" {
		t.Fatalf("unexpected specialty: %v", user.Specialty)
	}

	byID, err := s.User(user.ID)
	if err != nil {
		t.Fatalf("lookup by id: %v", err)
	}
	if byID.Username != "dr-smith" {
		t.Fatalf("expected dr-smith, got %s", byID.Username)
	}

	if _, err := s.UserByUsername("dr-nobody"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := s.User(999); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateUser(t *testing.T) {
	s := newTestStore()

	user := s.CreateUser(models.InsertUser{
		Username: "dr-house",
		Password: "vicodin",
		FullName: "Dr. House",
	})
	// Three seeded doctors occupy ids 1..3
	if user.ID != 4 {
		t.Fatalf("expected id 4, got %d", user.ID)
	}
	if user.Specialty != nil {
		t.Fatalf("specialty should default to absent, got %v", *user.Specialty)
	}

	found, err := s.UserByUsername("dr-house")
	if err != nil {
		t.Fatalf("created user not found: %v", err)
	}
	if !found.CheckPassword("vicodin") {
		t.Fatal("password should compare equal")
	}
}

func TestAppointmentIDsIncreaseAcrossDeletes(t *testing.T) {
	s := newTestStore()

	a1 := bookAppointment(t, s, "dr-smith", "2030-01-01")
	a2 := bookAppointment(t, s, "dr-smith", "2030-01-02")
	if a1.ID != 1 || a2.ID != 2 {
		t.Fatalf("expected ids 1,2 got %d,%d", a1.ID, a2.ID)
	}

	if !s.DeleteAppointment(a1.ID) {
		t.Fatal("delete of existing appointment should succeed")
	}

	// max(existing)+1, not a count: id 3 even though only one record remains
	a3 := bookAppointment(t, s, "dr-smith", "2030-01-03")
	if a3.ID != 3 {
		t.Fatalf("expected id 3 after delete, got %d", a3.ID)
	}
}

func TestCreateAppointmentDefaults(t *testing.T) {
	s := newTestStore()

	a := bookAppointment(t, s, "dr-smith", "2030-01-01")
	if a.Status != models.StatusConfirmed {
		t.Fatalf("expected status confirmed, got %s", a.Status)
	}
	if a.CreatedAt.IsZero() {
		t.Fatal("createdAt should be set")
	}
	if a.Reason != nil {
		t.Fatalf("reason should default to absent, got %v", *a.Reason)
	}
}

func TestAppointmentFilters(t *testing.T) {
	s := newTestStore()

	bookAppointment(t, s, "dr-smith", "2030-01-01")
	bookAppointment(t, s, "dr-johnson", "2030-01-01")
	bookAppointment(t, s, "dr-smith", "2030-01-02")

	if got := len(s.Appointments()); got != 3 {
		t.Fatalf("expected 3 appointments, got %d", got)
	}

	smith := s.AppointmentsByDoctor("dr-smith")
	if len(smith) != 2 {
		t.Fatalf("expected 2 for dr-smith, got %d", len(smith))
	}
	for _, a := range smith {
		if a.DoctorID != "dr-smith" {
			t.Fatalf("filter leaked doctorId %s", a.DoctorID)
		}
	}

	if got := len(s.AppointmentsByDoctor("dr-williams")); got != 0 {
		t.Fatalf("expected empty list for dr-williams, got %d", got)
	}

	firstOfJan := s.AppointmentsByDate("2030-01-01")
	if len(firstOfJan) != 2 {
		t.Fatalf("expected 2 on 2030-01-01, got %d", len(firstOfJan))
	}

	// Exact string match only; an unpadded spelling of the same day does
	// not match
	if got := len(s.AppointmentsByDate("2030-1-1")); got != 0 {
		t.Fatalf("expected 0 for unpadded date, got %d", got)
	}
}

func TestUpdateAppointmentStatus(t *testing.T) {
	s := newTestStore()

	a := bookAppointment(t, s, "dr-smith", "2030-01-01")

	updated, err := s.UpdateAppointmentStatus(a.ID, models.StatusCancelled)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Status != models.StatusCancelled {
		t.Fatalf("expected cancelled, got %s", updated.Status)
	}

	// Only status changes
	if updated.ID != a.ID || updated.Email != a.Email || updated.AppointmentDate != a.AppointmentDate {
		t.Fatal("update must not touch other fields")
	}

	// No transition rules: cancelled back to pending is allowed
	updated, err = s.UpdateAppointmentStatus(a.ID, models.StatusPending)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Status != models.StatusPending {
		t.Fatalf("expected pending, got %s", updated.Status)
	}
}

func TestUpdateStatusNotFoundLeavesSetUnchanged(t *testing.T) {
	s := newTestStore()

	bookAppointment(t, s, "dr-smith", "2030-01-01")
	before := s.Appointments()

	if _, err := s.UpdateAppointmentStatus(999, models.StatusCancelled); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	after := s.Appointments()
	if len(after) != len(before) || after[0].Status != before[0].Status {
		t.Fatal("failed update must leave the stored set unchanged")
	}
}

func TestDeleteAppointmentTwice(t *testing.T) {
	s := newTestStore()

	a := bookAppointment(t, s, "dr-smith", "2030-01-01")

	if !s.DeleteAppointment(a.ID) {
		t.Fatal("first delete should return true")
	}
	if s.DeleteAppointment(a.ID) {
		t.Fatal("second delete should return false")
	}
}

func TestDeleteUnknownID(t *testing.T) {
	s := newTestStore()

	bookAppointment(t, s, "dr-smith", "2030-01-01")

	if s.DeleteAppointment(999) {
		t.Fatal("delete of unknown id should return false")
	}
	if got := len(s.Appointments()); got != 1 {
		t.Fatalf("failed delete changed state: %d appointments", got)
	}
}
