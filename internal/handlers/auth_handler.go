package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/railbook/train-booking-backend/internal/database"
	"golang.org/x/crypto/bcrypt"
)

// AuthHandler serves signup and login. Login returns the user's profile
// fields with no issued credential; callers treat the email as identity.
type AuthHandler struct {
	userRepo   *database.UserRepository
	bcryptCost int
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(userRepo *database.UserRepository, bcryptCost int) *AuthHandler {
	return &AuthHandler{
		userRepo:   userRepo,
		bcryptCost: bcryptCost,
	}
}

// SignupRequest is the signup request body
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the login request body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup registers a new user
// POST /api/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error signing up."})
		return
	}

	hash, err := hashPassword(req.Password, h.bcryptCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error signing up."})
		return
	}

	// A duplicate email fails the insert and surfaces generically here.
	if err := h.userRepo.Create(req.Name, req.Email, hash); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating user."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User created successfully."})
}

// Login verifies credentials and returns the user's profile fields.
// The failure message never distinguishes a missing user from a wrong password.
// POST /api/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Wrong email or password."})
		return
	}

	user, err := h.userRepo.GetByEmail(req.Email)
	if err != nil || user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Wrong email or password."})
		return
	}

	if !checkPassword(user.Password, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Wrong email or password."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"name":          user.Name,
			"email":         user.Email,
			"age":           user.Age,
			"dob":           user.DOB,
			"mobile_number": user.MobileNumber,
			"country":       user.Country,
			"gender":        user.Gender,
		},
	})
}

// hashPassword hashes a plaintext password with bcrypt
func hashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// checkPassword compares a plaintext password against a stored bcrypt hash
func checkPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
