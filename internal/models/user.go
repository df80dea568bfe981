package models

// User represents a registered user.
// Password holds the bcrypt hash and is never serialized.
type User struct {
	ID           int64      `json:"id" db:"id"`
	Name         NullString `json:"name" db:"name"`
	Email        string     `json:"email" db:"email"`
	Password     string     `json:"-" db:"password"`
	Age          NullInt64  `json:"age" db:"age"`
	DOB          NullString `json:"dob" db:"dob"`
	MobileNumber NullString `json:"mobile_number" db:"mobile_number"`
	Country      NullString `json:"country" db:"country"`
	Gender       NullString `json:"gender" db:"gender"`
}
