package models

// User represents a doctor account in the system.
//
// Passwords are stored and compared in plain text. That is the documented
// contract of this application (accounts exist only as fixed seed data),
// not an implementation shortcut to tighten later — do not reuse this model
// anywhere real credentials are involved.
type User struct {
	ID        int     `json:"id"`
	Username  string  `json:"username"`
	Password  string  `json:"password"`
	FullName  string  `json:"fullName"`
	Specialty *string `json:"specialty"`
}

// UserPublic represents the user fields that are safe to send in API
// responses.
type UserPublic struct {
	ID        int     `json:"id"`
	Username  string  `json:"username"`
	FullName  string  `json:"fullName"`
	Specialty *string `json:"specialty"`
}

// InsertUser carries the caller-supplied fields for a new user; the id is
// assigned by the repository.
type InsertUser struct {
	Username  string
	Password  string
	FullName  string
	Specialty *string
}

// CheckPassword compares a submitted password with the stored one by exact
// string equality.
func (u *User) CheckPassword(password string) bool {
	return u.Password == password
}

// Public strips the password from a User for API responses.
func (u *User) Public() UserPublic {
	return UserPublic{
		ID:        u.ID,
		Username:  u.Username,
		FullName:  u.FullName,
		Specialty: u.Specialty,
	}
}

func strPtr(s string) *string { return &s }

// SeedDoctors returns the three fixed doctor accounts the application is
// seeded with at first use. The usernames double as the appointment
// doctorId values.
func SeedDoctors() []User {
	return []User{
		{ID: 1, Username: "dr-smith", Password: "password123", FullName: "Dr. Smith", Specialty: strPtr("General Physician")},
		{ID: 2, Username: "dr-johnson", Password: "password123", FullName: "Dr. Johnson", Specialty: strPtr("Pediatrician")},
		{ID: 3, Username: "dr-williams", Password: "password123", FullName: "Dr. Williams", Specialty: strPtr("Cardiologist")},
	}
}
