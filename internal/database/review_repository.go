package database

import (
	"fmt"

	"github.com/railbook/train-booking-backend/internal/models"
)

// ReviewRepository handles database operations for the reviews table
type ReviewRepository struct {
	db DB
}

// NewReviewRepository creates a new review repository
func NewReviewRepository(db DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// Create inserts a review with all vote counters at zero. Returns
// ErrDuplicateEntry when the (user_id, train_id) unique constraint rejects
// the insert.
func (r *ReviewRepository) Create(review *models.Review) error {
	query := `
		INSERT INTO reviews (
			user_id, train_id, ratings, comments, train_name,
			upvotes, downvotes, report_count
		) VALUES ($1, $2, $3, $4, $5, 0, 0, 0)
	`

	_, err := r.db.Exec(query, review.UserID, review.TrainID, review.Ratings,
		review.Comments, review.TrainName)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEntry
		}
		return fmt.Errorf("failed to create review: %w", err)
	}

	return nil
}

// DeleteOwned deletes a review only when both id and user_id match, and
// returns the number of rows removed. Ownership is enforced by the query
// predicate, so a missing review and a foreign review are indistinguishable.
func (r *ReviewRepository) DeleteOwned(id string, userID int64) (int64, error) {
	query := `DELETE FROM reviews WHERE id = $1 AND user_id = $2`

	result, err := r.db.Exec(query, id, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete review: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected, nil
}

// Upvote increments the upvote counter. A missing id is a no-op, not an error.
func (r *ReviewRepository) Upvote(id string) error {
	query := `UPDATE reviews SET upvotes = upvotes + 1 WHERE id = $1`

	if _, err := r.db.Exec(query, id); err != nil {
		return fmt.Errorf("failed to upvote review: %w", err)
	}

	return nil
}

// Downvote increments the downvote counter. A missing id is a no-op.
func (r *ReviewRepository) Downvote(id string) error {
	query := `UPDATE reviews SET downvotes = downvotes + 1 WHERE id = $1`

	if _, err := r.db.Exec(query, id); err != nil {
		return fmt.Errorf("failed to downvote review: %w", err)
	}

	return nil
}

// Report increments the report counter. A missing id is a no-op.
func (r *ReviewRepository) Report(id string) error {
	query := `UPDATE reviews SET report_count = report_count + 1 WHERE id = $1`

	if _, err := r.db.Exec(query, id); err != nil {
		return fmt.Errorf("failed to report review: %w", err)
	}

	return nil
}

// ListWithAuthors returns every review joined with the authoring user's
// name and email. No pagination or filtering.
func (r *ReviewRepository) ListWithAuthors() ([]models.ReviewWithAuthor, error) {
	query := `
		SELECT r.id, r.user_id, r.train_id, r.ratings, r.comments,
		       r.train_name, r.upvotes, r.downvotes, r.report_count,
		       u.name AS user_name, u.email AS user_email
		FROM reviews r
		JOIN users u ON r.user_id = u.id
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer rows.Close()

	reviews := []models.ReviewWithAuthor{}
	for rows.Next() {
		var rv models.ReviewWithAuthor
		err := rows.Scan(
			&rv.ID, &rv.UserID, &rv.TrainID, &rv.Ratings, &rv.Comments,
			&rv.TrainName, &rv.Upvotes, &rv.Downvotes, &rv.ReportCount,
			&rv.UserName, &rv.UserEmail,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read reviews: %w", err)
	}

	return reviews, nil
}
