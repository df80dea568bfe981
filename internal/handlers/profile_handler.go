package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/railbook/train-booking-backend/internal/database"
)

// ProfileHandler serves user profile reads and updates
type ProfileHandler struct {
	userRepo *database.UserRepository
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(userRepo *database.UserRepository) *ProfileHandler {
	return &ProfileHandler{userRepo: userRepo}
}

// UpdateProfileRequest is the profile update request body
type UpdateProfileRequest struct {
	Email        string `json:"email"`
	Name         string `json:"name"`
	Age          int    `json:"age"`
	DOB          string `json:"dob"`
	MobileNumber string `json:"mobile_number"`
	Country      string `json:"country"`
	Gender       string `json:"gender"`
}

// GetProfile returns the user row for the given email
// GET /api/profile?email=
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	email := c.Query("email")

	user, err := h.userRepo.GetByEmail(email)
	if err != nil || user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found."})
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateProfile overwrites all profile fields for the row matching email.
// No partial-update semantics; last writer wins.
// PUT /api/profile
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating profile."})
		return
	}

	err := h.userRepo.UpdateProfile(req.Email, req.Name, req.Age, req.DOB,
		req.MobileNumber, req.Country, req.Gender)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating profile."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully."})
}
