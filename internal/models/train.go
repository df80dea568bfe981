package models

import "time"

// Train represents a train record. Trains are read-only from this
// service's point of view; the schema is owned by the seeding pipeline.
type Train struct {
	ID            int64     `json:"id" db:"id"`
	TrainNumber   string    `json:"train_number" db:"train_number"`
	TrainName     string    `json:"train_name" db:"train_name"`
	Source        string    `json:"source" db:"source"`
	Destination   string    `json:"destination" db:"destination"`
	DepartureTime time.Time `json:"departure_time" db:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time" db:"arrival_time"`
	CoachClasses  JSONText  `json:"coach_classes" db:"coach_classes"`
	PricePerClass JSONText  `json:"price_per_class" db:"price_per_class"`
}

// StationPair holds one distinct (source, destination) pair from the
// trains table, used to build station suggestions.
type StationPair struct {
	Source      string `json:"source" db:"source"`
	Destination string `json:"destination" db:"destination"`
}
