package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"doctor-appointment-server/internal/middleware"
	"doctor-appointment-server/internal/models"
	"doctor-appointment-server/internal/storage"
	"doctor-appointment-server/internal/utils"
)

// AppointmentHandler handles appointment related requests.
type AppointmentHandler struct {
	Store *storage.Store
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(store *storage.Store) *AppointmentHandler {
	return &AppointmentHandler{Store: store}
}

// CreateAppointmentRequest represents the patient booking form.
type CreateAppointmentRequest struct {
	FirstName       string  `json:"firstName" binding:"required"`
	LastName        string  `json:"lastName" binding:"required"`
	Email           string  `json:"email" binding:"required,email"`
	Phone           string  `json:"phone" binding:"required,min=10"`
	DoctorID        string  `json:"doctorId" binding:"required"`
	AppointmentDate string  `json:"appointmentDate" binding:"required"`
	AppointmentTime string  `json:"appointmentTime" binding:"required"`
	Reason          *string `json:"reason"`
}

// CreateAppointment handles a patient booking. Public: patients do not
// authenticate. The doctorId is taken as-is; it is a loose reference to a
// doctor username and is not checked against the user records.
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var req CreateAppointmentRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	if !utils.ValidAppointmentDate(req.AppointmentDate) {
		utils.BadRequest(c, "Appointment date must be in YYYY-MM-DD format")
		return
	}
	if !utils.ValidAppointmentTime(req.AppointmentTime) {
		utils.BadRequest(c, "Appointment time must be in HH:MM format")
		return
	}
	if !utils.DateNotPast(req.AppointmentDate, time.Now()) {
		utils.BadRequest(c, "Appointment date must be today or in the future")
		return
	}

	appointment := h.Store.CreateAppointment(models.InsertAppointment{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Phone:           req.Phone,
		DoctorID:        req.DoctorID,
		AppointmentDate: req.AppointmentDate,
		AppointmentTime: req.AppointmentTime,
		Reason:          req.Reason,
	})

	utils.Created(c, "Appointment created successfully", appointment)
}

// GetAppointments returns the full appointment list, in insertion order.
func (h *AppointmentHandler) GetAppointments(c *gin.Context) {
	utils.Success(c, "Appointments fetched successfully", h.Store.Appointments())
}

// GetMyAppointments returns the appointments scoped to the logged-in
// doctor's username.
func (h *AppointmentHandler) GetMyAppointments(c *gin.Context) {
	identity, exists := middleware.GetIdentityFromContext(c)
	if !exists {
		utils.Unauthorized(c, "Unauthorized: Please log in")
		return
	}
	appointments := h.Store.AppointmentsByDoctor(identity.Username)
	utils.Success(c, "Appointments fetched successfully", appointments)
}

// GetAppointmentsByDoctor returns the appointments for a doctor id. A
// doctor may only ever query their own scope: the requested doctorId must
// equal the session username.
func (h *AppointmentHandler) GetAppointmentsByDoctor(c *gin.Context) {
	doctorID := c.Param("doctorId")

	identity, exists := middleware.GetIdentityFromContext(c)
	if !exists {
		utils.Unauthorized(c, "Unauthorized: Please log in")
		return
	}
	if identity.Username != doctorID {
		utils.Forbidden(c, "You can only view your own appointments")
		return
	}

	appointments := h.Store.AppointmentsByDoctor(doctorID)
	utils.Success(c, "Appointments fetched successfully", appointments)
}

// GetAppointmentsByDate returns the appointments whose date exactly
// matches the path parameter.
func (h *AppointmentHandler) GetAppointmentsByDate(c *gin.Context) {
	date := c.Param("date")
	utils.Success(c, "Appointments fetched successfully", h.Store.AppointmentsByDate(date))
}

// UpdateAppointmentStatusRequest represents the status update body.
type UpdateAppointmentStatusRequest struct {
	Status models.AppointmentStatus `json:"status" binding:"required,oneof=pending confirmed cancelled completed"`
}

// UpdateAppointmentStatus overwrites the status of one appointment. No
// transition rules: any of the four statuses may follow any other.
func (h *AppointmentHandler) UpdateAppointmentStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid appointment id")
		return
	}

	var req UpdateAppointmentStatusRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	appointment, err := h.Store.UpdateAppointmentStatus(id, req.Status)
	if err != nil {
		utils.NotFound(c, "Appointment not found")
		return
	}

	utils.Success(c, "Appointment status updated", appointment)
}

// DeleteAppointment removes one appointment by id.
func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid appointment id")
		return
	}

	if !h.Store.DeleteAppointment(id) {
		utils.NotFound(c, "Appointment not found")
		return
	}

	utils.Success(c, "Appointment deleted", nil)
}
