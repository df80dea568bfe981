package database

import (
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var trainTestColumns = []string{
	"id", "train_number", "train_name", "source", "destination",
	"departure_time", "arrival_time", "coach_classes", "price_per_class",
}

func TestListRandom(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTrainRepository(db)

	t.Run("Success", func(t *testing.T) {
		departure := time.Date(2025, 3, 10, 8, 30, 0, 0, time.UTC)
		arrival := departure.Add(6 * time.Hour)

		mock.ExpectQuery(`ORDER BY RANDOM`).
			WithArgs(2).
			WillReturnRows(sqlmock.NewRows(trainTestColumns).
				AddRow(1, "12001", "Shatabdi Express", "Colombo", "Kandy",
					departure, arrival, []byte(`["SL","3A","2A"]`), []byte(`{"SL":500,"3A":1200,"2A":1800}`)).
				AddRow(2, "12002", "Rajdhani Express", "Galle", "Colombo",
					departure, arrival, []byte(`["SL","1A"]`), []byte(`{"SL":400,"1A":2500}`)))

		trains, err := repo.ListRandom(2)
		require.NoError(t, err)
		assert.Len(t, trains, 2)
		assert.Equal(t, "Shatabdi Express", trains[0].TrainName)
		assert.JSONEq(t, `["SL","3A","2A"]`, string(trains[0].CoachClasses))
		assert.JSONEq(t, `{"SL":400,"1A":2500}`, string(trains[1].PricePerClass))

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database Error", func(t *testing.T) {
		mock.ExpectQuery(`ORDER BY RANDOM`).
			WithArgs(10).
			WillReturnError(fmt.Errorf("database error"))

		trains, err := repo.ListRandom(10)
		assert.Error(t, err)
		assert.Nil(t, trains)
		assert.Contains(t, err.Error(), "failed to list random trains")

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSearch(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTrainRepository(db)

	t.Run("Success", func(t *testing.T) {
		departure := time.Date(2025, 3, 10, 8, 30, 0, 0, time.UTC)
		arrival := departure.Add(3 * time.Hour)

		mock.ExpectQuery(`departure_time::date`).
			WithArgs("Colombo", "Kandy", "2025-03-10", 10, 0).
			WillReturnRows(sqlmock.NewRows(trainTestColumns).
				AddRow(5, "12005", "Hill Country Express", "Colombo", "Kandy",
					departure, arrival, []byte(`["2A"]`), []byte(`{"2A":900}`)))

		trains, err := repo.Search("Colombo", "Kandy", "2025-03-10", 10, 0)
		require.NoError(t, err)
		assert.Len(t, trains, 1)
		assert.Equal(t, "Colombo", trains[0].Source)
		assert.Equal(t, "Kandy", trains[0].Destination)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("No Matches", func(t *testing.T) {
		mock.ExpectQuery(`departure_time::date`).
			WithArgs("Colombo", "Jaffna", "2025-03-10", 10, 0).
			WillReturnRows(sqlmock.NewRows(trainTestColumns))

		trains, err := repo.Search("Colombo", "Jaffna", "2025-03-10", 10, 0)
		require.NoError(t, err)
		assert.NotNil(t, trains)
		assert.Len(t, trains, 0)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestListAll(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTrainRepository(db)

	t.Run("Pagination Args", func(t *testing.T) {
		departure := time.Date(2025, 3, 10, 8, 30, 0, 0, time.UTC)

		mock.ExpectQuery(`FROM trains`).
			WithArgs(10, 20).
			WillReturnRows(sqlmock.NewRows(trainTestColumns).
				AddRow(21, "12021", "Night Mail", "Colombo", "Badulla",
					departure, departure.Add(9*time.Hour), []byte(`["SL"]`), []byte(`{"SL":350}`)))

		trains, err := repo.ListAll(10, 20)
		require.NoError(t, err)
		assert.Len(t, trains, 1)
		assert.Equal(t, int64(21), trains[0].ID)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database Error", func(t *testing.T) {
		mock.ExpectQuery(`FROM trains`).
			WithArgs(10, 0).
			WillReturnError(fmt.Errorf("database error"))

		trains, err := repo.ListAll(10, 0)
		assert.Error(t, err)
		assert.Nil(t, trains)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDistinctStations(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTrainRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`SELECT DISTINCT source, destination FROM trains`).
			WillReturnRows(sqlmock.NewRows([]string{"source", "destination"}).
				AddRow("Colombo", "Kandy").
				AddRow("Galle", "Colombo"))

		pairs, err := repo.DistinctStations()
		require.NoError(t, err)
		assert.Len(t, pairs, 2)
		assert.Equal(t, "Colombo", pairs[0].Source)
		assert.Equal(t, "Kandy", pairs[0].Destination)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database Error", func(t *testing.T) {
		mock.ExpectQuery(`SELECT DISTINCT source, destination FROM trains`).
			WillReturnError(fmt.Errorf("database error"))

		pairs, err := repo.DistinctStations()
		assert.Error(t, err)
		assert.Nil(t, pairs)
		assert.Contains(t, err.Error(), "failed to fetch station pairs")

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
