package handlers

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/railbook/train-booking-backend/internal/database"
	"github.com/railbook/train-booking-backend/internal/models"
)

// ReviewHandler serves review creation, deletion, voting and listing
type ReviewHandler struct {
	reviewRepo *database.ReviewRepository
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(reviewRepo *database.ReviewRepository) *ReviewHandler {
	return &ReviewHandler{reviewRepo: reviewRepo}
}

// CreateReviewRequest is the review creation request body
type CreateReviewRequest struct {
	UserID    int64  `json:"user_id"`
	TrainID   int64  `json:"train_id"`
	Ratings   int    `json:"ratings"`
	Comments  string `json:"comments"`
	TrainName string `json:"train_name"`
}

// DeleteReviewRequest carries the requesting user's id for the ownership check
type DeleteReviewRequest struct {
	UserID int64 `json:"user_id"`
}

// CreateReview validates and inserts a review
// POST /api/reviews
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Ratings must be between 1 and 5."})
		return
	}

	if req.Ratings < 1 || req.Ratings > 5 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Ratings must be between 1 and 5."})
		return
	}
	if req.TrainName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Train name is required."})
		return
	}

	review := &models.Review{
		UserID:    req.UserID,
		TrainID:   req.TrainID,
		Ratings:   req.Ratings,
		Comments:  models.NullString{NullString: sql.NullString{String: req.Comments, Valid: true}},
		TrainName: req.TrainName,
	}

	if err := h.reviewRepo.Create(review); err != nil {
		if err == database.ErrDuplicateEntry {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "You have already submitted a review for this train.",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating review."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Review created successfully."})
}

// DeleteReview removes a review when the requester owns it. Ownership and
// existence are conflated: either way zero rows match and the caller gets 403.
// DELETE /api/reviews/:id
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	reviewID := c.Param("id")

	var req DeleteReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "You cannot delete this review."})
		return
	}

	rowsAffected, err := h.reviewRepo.DeleteOwned(reviewID, req.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error deleting review."})
		return
	}
	if rowsAffected == 0 {
		c.JSON(http.StatusForbidden, gin.H{"error": "You cannot delete this review."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Review deleted successfully."})
}

// UpvoteReview increments a review's upvote counter
// POST /api/reviews/:id/upvote
func (h *ReviewHandler) UpvoteReview(c *gin.Context) {
	if err := h.reviewRepo.Upvote(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error upvoting review."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Review upvoted successfully."})
}

// DownvoteReview increments a review's downvote counter
// POST /api/reviews/:id/downvote
func (h *ReviewHandler) DownvoteReview(c *gin.Context) {
	if err := h.reviewRepo.Downvote(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error downvoting review."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Review downvoted successfully."})
}

// ReportReview increments a review's report counter
// POST /api/reviews/:id/report
func (h *ReviewHandler) ReportReview(c *gin.Context) {
	if err := h.reviewRepo.Report(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error reporting review."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Review reported successfully."})
}

// GetReviews returns all reviews with author name and email
// GET /api/reviews
func (h *ReviewHandler) GetReviews(c *gin.Context) {
	reviews, err := h.reviewRepo.ListWithAuthors()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	c.JSON(http.StatusOK, reviews)
}
