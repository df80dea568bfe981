package database

import (
	"fmt"

	"github.com/railbook/train-booking-backend/internal/models"
)

// BookingRepository handles database operations for the bookings table
type BookingRepository struct {
	db DB
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(db DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// Create inserts a booking and returns its generated id
func (r *BookingRepository) Create(booking *models.Booking) (int64, error) {
	query := `
		INSERT INTO bookings (
			user_id, train_id, seat_number, user_name, user_age,
			user_gender, train_number, train_name, source, destination,
			class, departure_time, arrival_time, price, email
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15
		)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(
		query,
		booking.UserID, booking.TrainID, booking.SeatNumber, booking.UserName,
		booking.UserAge, booking.UserGender, booking.TrainNumber, booking.TrainName,
		booking.Source, booking.Destination, booking.Class, booking.DepartureTime,
		booking.ArrivalTime, booking.Price, booking.Email,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create booking: %w", err)
	}

	return id, nil
}

// ListByEmail returns all bookings for an email address. The projection is
// fixed and excludes the status column.
func (r *BookingRepository) ListByEmail(email string) ([]models.Booking, error) {
	query := `
		SELECT user_id, train_id, seat_number, user_name, user_age,
		       user_gender, train_number, train_name, source, destination,
		       class, departure_time, arrival_time, price, email
		FROM bookings
		WHERE email = $1
	`

	rows, err := r.db.Query(query, email)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer rows.Close()

	bookings := []models.Booking{}
	for rows.Next() {
		var b models.Booking
		err := rows.Scan(
			&b.UserID, &b.TrainID, &b.SeatNumber, &b.UserName, &b.UserAge,
			&b.UserGender, &b.TrainNumber, &b.TrainName, &b.Source, &b.Destination,
			&b.Class, &b.DepartureTime, &b.ArrivalTime, &b.Price, &b.Email,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read bookings: %w", err)
	}

	return bookings, nil
}

// DeleteByTrainID deletes every booking whose train_id matches and returns
// the number of rows removed. This is deliberately not a delete-by-booking-id.
func (r *BookingRepository) DeleteByTrainID(trainID string) (int64, error) {
	query := `DELETE FROM bookings WHERE train_id = $1`

	result, err := r.db.Exec(query, trainID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete bookings: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected, nil
}
