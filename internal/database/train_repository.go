package database

import (
	"database/sql"
	"fmt"

	"github.com/railbook/train-booking-backend/internal/models"
)

// TrainRepository handles read-only database operations for the trains table
type TrainRepository struct {
	db DB
}

// NewTrainRepository creates a new train repository
func NewTrainRepository(db DB) *TrainRepository {
	return &TrainRepository{db: db}
}

const trainColumns = `id, train_number, train_name, source, destination,
	       departure_time, arrival_time, coach_classes, price_per_class`

// ListRandom returns up to limit trains in randomized order
func (r *TrainRepository) ListRandom(limit int) ([]models.Train, error) {
	query := `
		SELECT ` + trainColumns + `
		FROM trains
		ORDER BY RANDOM()
		LIMIT $1
	`

	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list random trains: %w", err)
	}
	defer rows.Close()

	return scanTrains(rows)
}

// Search returns trains matching exact source/destination whose departure
// date (calendar date only) equals the given date, paginated
func (r *TrainRepository) Search(source, destination, date string, limit, offset int) ([]models.Train, error) {
	query := `
		SELECT ` + trainColumns + `
		FROM trains
		WHERE source = $1
		  AND destination = $2
		  AND departure_time::date = $3::date
		LIMIT $4 OFFSET $5
	`

	rows, err := r.db.Query(query, source, destination, date, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to search trains: %w", err)
	}
	defer rows.Close()

	return scanTrains(rows)
}

// ListAll returns all trains, paginated
func (r *TrainRepository) ListAll(limit, offset int) ([]models.Train, error) {
	query := `
		SELECT ` + trainColumns + `
		FROM trains
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list trains: %w", err)
	}
	defer rows.Close()

	return scanTrains(rows)
}

// DistinctStations returns all distinct (source, destination) pairs across
// the trains table. Recomputed on every call; no index is maintained.
func (r *TrainRepository) DistinctStations() ([]models.StationPair, error) {
	query := `SELECT DISTINCT source, destination FROM trains`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch station pairs: %w", err)
	}
	defer rows.Close()

	pairs := []models.StationPair{}
	for rows.Next() {
		var p models.StationPair
		if err := rows.Scan(&p.Source, &p.Destination); err != nil {
			return nil, fmt.Errorf("failed to scan station pair: %w", err)
		}
		pairs = append(pairs, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read station pairs: %w", err)
	}

	return pairs, nil
}

func scanTrains(rows *sql.Rows) ([]models.Train, error) {
	trains := []models.Train{}
	for rows.Next() {
		var t models.Train
		err := rows.Scan(
			&t.ID, &t.TrainNumber, &t.TrainName, &t.Source, &t.Destination,
			&t.DepartureTime, &t.ArrivalTime, &t.CoachClasses, &t.PricePerClass,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan train: %w", err)
		}
		trains = append(trains, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read trains: %w", err)
	}

	return trains, nil
}
