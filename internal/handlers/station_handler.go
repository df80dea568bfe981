package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/railbook/train-booking-backend/internal/database"
)

// StationHandler serves station autocomplete suggestions
type StationHandler struct {
	trainRepo *database.TrainRepository
}

// NewStationHandler creates a new station handler
func NewStationHandler(trainRepo *database.TrainRepository) *StationHandler {
	return &StationHandler{trainRepo: trainRepo}
}

// SuggestStations returns station names containing the query string.
// The candidate set is rebuilt from all trains on every call.
// GET /api/stations?query=
func (h *StationHandler) SuggestStations(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter is required."})
		return
	}

	pairs, err := h.trainRepo.DistinctStations()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	// Flatten into a case-insensitive set, keeping first-seen order
	seen := make(map[string]bool)
	stations := []string{}
	for _, p := range pairs {
		for _, name := range []string{strings.ToLower(p.Source), strings.ToLower(p.Destination)} {
			if !seen[name] {
				seen[name] = true
				stations = append(stations, name)
			}
		}
	}

	needle := strings.ToLower(query)
	matches := []string{}
	for _, name := range stations {
		if strings.Contains(name, needle) {
			matches = append(matches, name)
		}
	}

	c.JSON(http.StatusOK, matches)
}
