package models

import (
	"database/sql/driver"
	"fmt"
)

// JSONText is a custom type for handling JSONB columns in PostgreSQL.
// It keeps the stored document as raw JSON so responses carry the parsed
// structure instead of a quoted string.
type JSONText []byte

// Value implements the driver.Valuer interface
func (j JSONText) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}
	return []byte(j), nil
}

// Scan implements the sql.Scanner interface
func (j *JSONText) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*j = nil
		return nil
	case []byte:
		buf := make([]byte, len(v))
		copy(buf, v)
		*j = buf
		return nil
	case string:
		*j = JSONText(v)
		return nil
	default:
		return fmt.Errorf("cannot scan %T into JSONText", src)
	}
}

// MarshalJSON implements json.Marshaler
func (j JSONText) MarshalJSON() ([]byte, error) {
	if len(j) == 0 {
		return []byte("null"), nil
	}
	return []byte(j), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (j *JSONText) UnmarshalJSON(data []byte) error {
	buf := make([]byte, len(data))
	copy(buf, data)
	*j = buf
	return nil
}
