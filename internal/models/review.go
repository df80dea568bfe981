package models

// Review represents a train review. Vote counters start at zero and the
// store enforces one review per (user_id, train_id) pair.
type Review struct {
	ID          int64      `json:"id" db:"id"`
	UserID      int64      `json:"user_id" db:"user_id"`
	TrainID     int64      `json:"train_id" db:"train_id"`
	Ratings     int        `json:"ratings" db:"ratings"`
	Comments    NullString `json:"comments" db:"comments"`
	TrainName   string     `json:"train_name" db:"train_name"`
	Upvotes     int        `json:"upvotes" db:"upvotes"`
	Downvotes   int        `json:"downvotes" db:"downvotes"`
	ReportCount int        `json:"report_count" db:"report_count"`
}

// ReviewWithAuthor is a review joined with the authoring user's name and email.
type ReviewWithAuthor struct {
	Review
	UserName  string `json:"user_name" db:"user_name"`
	UserEmail string `json:"user_email" db:"user_email"`
}
