package database

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"astro-booking/internal/models"
)

var favoriteCols = []string{"id", "user_id", "item_type", "item_id", "created_at"}

func TestAddFavorite(t *testing.T) {
	s, mock := newMockService(t)

	mock.ExpectQuery("INSERT INTO favorites").
		WithArgs(1, "constellation", "Cassiopeia").
		WillReturnRows(sqlmock.NewRows(favoriteCols).AddRow(8, 1, "constellation", "Cassiopeia", fixedTime))

	f, err := s.AddFavorite(context.Background(), models.NewFavorite{UserID: 1, ItemType: "constellation", ItemID: "Cassiopeia"})
	require.NoError(t, err)
	assert.Equal(t, 8, f.ID)
	assert.Equal(t, "Cassiopeia", f.ItemID)
}

func TestAddFavorite_UnknownUser(t *testing.T) {
	s, mock := newMockService(t)

	mock.ExpectQuery("INSERT INTO favorites").
		WillReturnError(&pgconn.PgError{Code: "23503"})

	_, err := s.AddFavorite(context.Background(), models.NewFavorite{UserID: 77, ItemType: "service", ItemID: "webinars"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestGetUserFavorites(t *testing.T) {
	s, mock := newMockService(t)

	mock.ExpectQuery("SELECT (.+) FROM favorites WHERE user_id = \\$1").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(favoriteCols).
			AddRow(8, 1, "constellation", "Orion", fixedTime).
			AddRow(9, 1, "event", "12", fixedTime))

	favorites, err := s.GetUserFavorites(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, favorites, 2)
	assert.Equal(t, "event", favorites[1].ItemType)
}
