package handlers

import (
	"doctor-appointment-server/internal/config"
	"doctor-appointment-server/internal/session"
	"doctor-appointment-server/internal/storage"
	"doctor-appointment-server/internal/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles login, logout and session status requests.
type AuthHandler struct {
	Store    *storage.Store
	Sessions *session.Store
	Cfg      *config.Config
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(store *storage.Store, sessions *session.Store, cfg *config.Config) *AuthHandler {
	return &AuthHandler{Store: store, Sessions: sessions, Cfg: cfg}
}

// LoginRequest represents the request body for doctor login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login authenticates a doctor and establishes a session.
//
// Unknown username and wrong password produce the same response, so the
// endpoint cannot be used to enumerate accounts.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	user, err := h.Store.UserByUsername(req.Username)
	if err != nil || !user.CheckPassword(req.Password) {
		utils.Unauthorized(c, "Invalid username or password")
		return
	}

	identity := session.Identity{
		ID:        user.ID,
		Username:  user.Username,
		FullName:  user.FullName,
		Specialty: user.Specialty,
	}
	token := h.Sessions.Create(identity)

	c.SetCookie(
		session.CookieName,
		token,
		h.Cfg.SessionTTLHours*60*60, // Max age in seconds
		"/",
		"",                                 // Domain (empty means current domain)
		h.Cfg.Environment != "development", // Secure (true in prod, false in dev)
		true,                               // HTTP only
	)

	utils.Success(c, "Login successful", identity)
}

// Logout destroys the current session, if any, and clears the cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(session.CookieName); err == nil {
		h.Sessions.Destroy(token)
	}
	c.SetCookie(session.CookieName, "", -1, "/", "", h.Cfg.Environment != "development", true)
	utils.Success(c, "Logged out successfully", nil)
}

// StatusResponse represents the session status payload.
type StatusResponse struct {
	IsAuthenticated bool              `json:"isAuthenticated"`
	User            *session.Identity `json:"user,omitempty"`
}

// Status reports whether the request carries a valid session. It never
// responds with 401; an unauthenticated caller simply gets
// isAuthenticated=false.
func (h *AuthHandler) Status(c *gin.Context) {
	token, err := c.Cookie(session.CookieName)
	if err != nil {
		utils.Success(c, "Session status", StatusResponse{IsAuthenticated: false})
		return
	}
	identity, ok := h.Sessions.Get(token)
	if !ok {
		utils.Success(c, "Session status", StatusResponse{IsAuthenticated: false})
		return
	}
	utils.Success(c, "Session status", StatusResponse{IsAuthenticated: true, User: &identity})
}
