package database

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"astro-booking/internal/models"
)

var userCols = []string{"id", "username", "password", "email", "first_name", "last_name", "membership_plan", "created_at", "updated_at"}

func TestCreateUserThenGetUser(t *testing.T) {
	s, mock := newMockService(t)
	ctx := context.Background()
	email := "vega@example.com"

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("vega", "lyra", "vega@example.com", nil, nil, models.PlanStargazer).
		WillReturnRows(sqlmock.NewRows(userCols).
			AddRow(1, "vega", "lyra", "vega@example.com", nil, nil, "stargazer", fixedTime, fixedTime))
	mock.ExpectQuery("SELECT (.+) FROM users WHERE id = \\$1").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(userCols).
			AddRow(1, "vega", "lyra", "vega@example.com", nil, nil, "stargazer", fixedTime, fixedTime))

	created, err := s.CreateUser(ctx, models.NewUser{Username: "vega", Password: "lyra", Email: &email})
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, models.PlanStargazer, created.MembershipPlan)

	fetched, err := s.GetUser(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, fetched)
	require.NotNil(t, fetched.Email)
	assert.Equal(t, email, *fetched.Email)
	assert.Nil(t, fetched.FirstName)
}

func TestCreateUser_DuplicateUsername(t *testing.T) {
	s, mock := newMockService(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"})

	u, err := s.CreateUser(context.Background(), models.NewUser{Username: "vega", Password: "other"})
	assert.Nil(t, u)
	assert.ErrorIs(t, err, ErrValidation)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "username", verr.Field)
}

func TestCreateUser_MissingFields(t *testing.T) {
	s, _ := newMockService(t)

	_, err := s.CreateUser(context.Background(), models.NewUser{Username: "vega"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestGetUser_NotFound(t *testing.T) {
	s, mock := newMockService(t)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE id = \\$1").
		WithArgs(42).
		WillReturnError(sql.ErrNoRows)

	u, err := s.GetUser(context.Background(), 42)
	assert.Nil(t, u)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetUserByUsername(t *testing.T) {
	s, mock := newMockService(t)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE username = \\$1").
		WithArgs("deneb").
		WillReturnRows(sqlmock.NewRows(userCols).
			AddRow(3, "deneb", "cygnus", nil, "Deneb", nil, "explorer", fixedTime, fixedTime))
	mock.ExpectQuery("SELECT (.+) FROM users WHERE username = \\$1").
		WithArgs("nobody").
		WillReturnRows(sqlmock.NewRows(userCols))

	u, err := s.GetUserByUsername(context.Background(), "deneb")
	require.NoError(t, err)
	assert.Equal(t, 3, u.ID)
	assert.Equal(t, "explorer", u.MembershipPlan)

	_, err = s.GetUserByUsername(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateUser(t *testing.T) {
	s, mock := newMockService(t)
	plan := models.PlanCosmicPro
	first := "Altair"

	mock.ExpectQuery("UPDATE users SET first_name = \\$1, membership_plan = \\$2, updated_at = now\\(\\) WHERE id = \\$3 RETURNING").
		WithArgs("Altair", "cosmic_pro", 5).
		WillReturnRows(sqlmock.NewRows(userCols).
			AddRow(5, "altair", "aquila", nil, "Altair", nil, "cosmic_pro", fixedTime, fixedTime))

	u, err := s.UpdateUser(context.Background(), 5, models.UserPatch{FirstName: &first, MembershipPlan: &plan})
	require.NoError(t, err)
	assert.Equal(t, "cosmic_pro", u.MembershipPlan)
}

func TestUpdateUser_EmptyPatchTouchesTimestamp(t *testing.T) {
	s, mock := newMockService(t)

	mock.ExpectQuery("UPDATE users SET updated_at = now\\(\\) WHERE id = \\$1").
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows(userCols).
			AddRow(5, "altair", "aquila", nil, nil, nil, "stargazer", fixedTime, fixedTime))

	_, err := s.UpdateUser(context.Background(), 5, models.UserPatch{})
	assert.NoError(t, err)
}

func TestUpdateUser_NotFound(t *testing.T) {
	s, mock := newMockService(t)
	name := "ghost"

	mock.ExpectQuery("UPDATE users").
		WithArgs("ghost", 99).
		WillReturnRows(sqlmock.NewRows(userCols))

	u, err := s.UpdateUser(context.Background(), 99, models.UserPatch{Username: &name})
	assert.Nil(t, u)
	assert.ErrorIs(t, err, ErrNotFound)
}
