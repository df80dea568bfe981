package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/railbook/train-booking-backend/internal/database"
	"github.com/railbook/train-booking-backend/internal/models"
)

// BookingHandler serves booking creation, listing and deletion
type BookingHandler struct {
	bookingRepo *database.BookingRepository
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(bookingRepo *database.BookingRepository) *BookingHandler {
	return &BookingHandler{bookingRepo: bookingRepo}
}

// timestampLayouts are the accepted input forms for booking timestamps
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// normalizeTimestamp converts a timestamp string to UTC "YYYY-MM-DD HH:MM:SS"
func normalizeTimestamp(value string) (string, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC().Format("2006-01-02 15:04:05"), nil
		}
	}
	return "", fmt.Errorf("unrecognized timestamp %q", value)
}

// CreateBooking persists a fully denormalized booking payload.
// user_id is validated before the insert is issued, so a rejected request
// never leaves a row behind.
// POST /api/bookings
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req models.Booking
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User ID is required."})
		return
	}

	if req.UserID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User ID is required."})
		return
	}

	departureTime, err := normalizeTimestamp(req.DepartureTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid departure_time format."})
		return
	}
	arrivalTime, err := normalizeTimestamp(req.ArrivalTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid arrival_time format."})
		return
	}
	req.DepartureTime = departureTime
	req.ArrivalTime = arrivalTime

	bookingID, err := h.bookingRepo.Create(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating booking."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Booking created successfully.",
		"bookingId": bookingID,
	})
}

// GetBookings returns all bookings for an email address
// GET /api/bookings?email=
func (h *BookingHandler) GetBookings(c *gin.Context) {
	email := c.Query("email")

	bookings, err := h.bookingRepo.ListByEmail(email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// DeleteBookingsByTrain removes every booking for a train id
// DELETE /api/bookings/train/:trainId
func (h *BookingHandler) DeleteBookingsByTrain(c *gin.Context) {
	trainID := c.Param("trainId")

	rowsAffected, err := h.bookingRepo.DeleteByTrainID(trainID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting booking."})
		return
	}
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found."})
		return
	}

	c.Status(http.StatusNoContent)
}
