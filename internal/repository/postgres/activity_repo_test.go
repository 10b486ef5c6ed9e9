package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"activitydesk/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

var activityCols = []string{"id", "name", "place_id", "starts_at", "ends_at", "created_at", "updated_at"}

func TestActivityRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2023, 6, 2, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "found",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, name, place_id, starts_at, ends_at, created_at, updated_at`).
					WithArgs(int64(100)).
					WillReturnRows(sqlmock.NewRows(activityCols).
						AddRow(int64(100), "Talk", int64(5), now, now.Add(time.Hour), now, now))
			},
		},
		{
			name: "not found",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, name, place_id, starts_at, ends_at, created_at, updated_at`).
					WithArgs(int64(100)).
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewActivityRepository(db)
			activity, err := repo.GetByID(ctx, 100)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, int64(100), activity.ID)
			require.Equal(t, "Talk", activity.Name)
			require.Equal(t, int64(5), activity.PlaceID)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestActivityRepository_ListByDayRange(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2023, 6, 2, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 1)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, name, place_id, starts_at, ends_at, created_at, updated_at`).
		WithArgs(start, end).
		WillReturnRows(sqlmock.NewRows(activityCols).
			AddRow(int64(100), "Talk", int64(5), start.Add(9*time.Hour), start.Add(10*time.Hour), start, start).
			AddRow(int64(101), "Oficina", int64(6), start.Add(14*time.Hour), start.Add(16*time.Hour), start, start))

	repo := NewActivityRepository(db)
	activities, err := repo.ListByDayRange(ctx, start, end)
	require.NoError(t, err)
	require.Len(t, activities, 2)
	require.Equal(t, "Talk", activities[0].Name)
	require.Equal(t, "Oficina", activities[1].Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestActivityRepository_ListByDayRange_empty(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2023, 6, 3, 0, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, name, place_id, starts_at, ends_at, created_at, updated_at`).
		WithArgs(start, start.AddDate(0, 0, 1)).
		WillReturnRows(sqlmock.NewRows(activityCols))

	repo := NewActivityRepository(db)
	activities, err := repo.ListByDayRange(ctx, start, start.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.NotNil(t, activities)
	require.Empty(t, activities)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestActivityRepository_ListDistinctStartDates(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	first := time.Date(2023, 6, 2, 9, 0, 0, 0, time.UTC)
	second := time.Date(2023, 6, 3, 9, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT DISTINCT starts_at`).
		WillReturnRows(sqlmock.NewRows([]string{"starts_at"}).AddRow(first).AddRow(second))

	repo := NewActivityRepository(db)
	starts, err := repo.ListDistinctStartDates(ctx)
	require.NoError(t, err)
	require.Equal(t, []time.Time{first, second}, starts)
	require.NoError(t, mock.ExpectationsWereMet())
}
