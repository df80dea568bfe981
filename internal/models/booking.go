package models

// Booking represents a booking row. Train and user fields are denormalized
// copies taken at booking time so the list endpoint needs no joins.
// Departure/arrival times are kept in their normalized
// "YYYY-MM-DD HH:MM:SS" string form.
type Booking struct {
	ID            int64   `json:"id,omitempty" db:"id"`
	UserID        int64   `json:"user_id" db:"user_id"`
	TrainID       int64   `json:"train_id" db:"train_id"`
	SeatNumber    string  `json:"seat_number" db:"seat_number"`
	UserName      string  `json:"user_name" db:"user_name"`
	UserAge       int     `json:"user_age" db:"user_age"`
	UserGender    string  `json:"user_gender" db:"user_gender"`
	TrainNumber   string  `json:"train_number" db:"train_number"`
	TrainName     string  `json:"train_name" db:"train_name"`
	Source        string  `json:"source" db:"source"`
	Destination   string  `json:"destination" db:"destination"`
	Class         string  `json:"class" db:"class"`
	DepartureTime string  `json:"departure_time" db:"departure_time"`
	ArrivalTime   string  `json:"arrival_time" db:"arrival_time"`
	Price         float64 `json:"price" db:"price"`
	Email         string  `json:"email" db:"email"`
}
