package handlers

import (
	"doctor-appointment-server/internal/models"
	"doctor-appointment-server/internal/storage"
	"doctor-appointment-server/internal/utils"

	"github.com/gin-gonic/gin"
)

// DoctorHandler handles the public doctor listing.
type DoctorHandler struct {
	Store *storage.Store
}

// NewDoctorHandler creates a new DoctorHandler.
func NewDoctorHandler(store *storage.Store) *DoctorHandler {
	return &DoctorHandler{Store: store}
}

// GetDoctors returns the public fields of the three seeded doctor
// accounts. The listing is fixed to the seed usernames so that users
// created through the repository never show up here.
func (h *DoctorHandler) GetDoctors(c *gin.Context) {
	var doctors []models.UserPublic
	for _, seed := range models.SeedDoctors() {
		user, err := h.Store.UserByUsername(seed.Username)
		if err != nil {
			continue
		}
		doctors = append(doctors, user.Public())
	}
	utils.Success(c, "Doctors fetched successfully", doctors)
}
