package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/railbook/train-booking-backend/internal/database"
)

// TrainHandler serves train search and listing
type TrainHandler struct {
	trainRepo *database.TrainRepository
}

// NewTrainHandler creates a new train handler
func NewTrainHandler(trainRepo *database.TrainRepository) *TrainHandler {
	return &TrainHandler{trainRepo: trainRepo}
}

// GetTrains handles train search and listing
// GET /api/trains?source=&destination=&date=&component=&page=&limit=
func (h *TrainHandler) GetTrains(c *gin.Context) {
	pageStr := c.DefaultQuery("page", "1")
	limitStr := c.DefaultQuery("limit", "1000")

	page, pageErr := strconv.Atoi(pageStr)
	limit, limitErr := strconv.Atoi(limitStr)
	if pageErr != nil || limitErr != nil {
		// Non-numeric page/limit is not validated up front; it fails the
		// same way a store error would.
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	offset := (page - 1) * limit

	// The TrainDetails component gets random trains with no filter
	if c.Query("component") == "TrainDetails" {
		trains, err := h.trainRepo.ListRandom(limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}
		c.JSON(http.StatusOK, trains)
		return
	}

	source := c.Query("source")
	destination := c.Query("destination")
	date := c.Query("date")

	if source != "" && destination != "" && date != "" {
		trains, err := h.trainRepo.Search(source, destination, date, limit, offset)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}
		c.JSON(http.StatusOK, trains)
		return
	}

	trains, err := h.trainRepo.ListAll(limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, trains)
}
