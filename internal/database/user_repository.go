package database

import (
	"database/sql"
	"fmt"

	"github.com/railbook/train-booking-backend/internal/models"
)

// UserRepository handles user database operations
type UserRepository struct {
	db DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user. The password must already be hashed.
// A duplicate email surfaces as a plain store error; the unique
// constraint lives in the schema.
func (r *UserRepository) Create(name, email, passwordHash string) error {
	query := `
		INSERT INTO users (name, email, password)
		VALUES ($1, $2, $3)
	`

	_, err := r.db.Exec(query, name, email, passwordHash)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// GetByEmail retrieves a user by email. Returns nil without error when no
// user exists for the address.
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	query := `
		SELECT id, name, email, password, age, dob,
		       mobile_number, country, gender
		FROM users
		WHERE email = $1
	`

	var user models.User
	err := r.db.QueryRow(query, email).Scan(
		&user.ID, &user.Name, &user.Email, &user.Password, &user.Age,
		&user.DOB, &user.MobileNumber, &user.Country, &user.Gender,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return &user, nil
}

// UpdateProfile overwrites all profile fields for the row matching email.
// Last writer wins; no rows-affected check is made.
func (r *UserRepository) UpdateProfile(email, name string, age int, dob, mobileNumber, country, gender string) error {
	query := `
		UPDATE users
		SET name = $1,
		    age = $2,
		    dob = $3,
		    mobile_number = $4,
		    country = $5,
		    gender = $6
		WHERE email = $7
	`

	_, err := r.db.Exec(query, name, age, dob, mobileNumber, country, gender, email)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}

	return nil
}
