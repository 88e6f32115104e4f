package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"astro-booking/internal/models"
	"astro-booking/internal/nasa"
)

// MockDatabase is a mock implementation of the database.Service interface
type MockDatabase struct {
	mock.Mock
}

func (m *MockDatabase) Health() map[string]string {
	return map[string]string{"status": "up"}
}

func (m *MockDatabase) Close() error {
	return nil
}

func (m *MockDatabase) GetUser(ctx context.Context, id int) (*models.User, error) {
	args := m.Called(id)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *MockDatabase) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(username)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *MockDatabase) CreateUser(ctx context.Context, user models.NewUser) (*models.User, error) {
	args := m.Called(user)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *MockDatabase) UpdateUser(ctx context.Context, id int, patch models.UserPatch) (*models.User, error) {
	args := m.Called(id, patch)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *MockDatabase) CreateBooking(ctx context.Context, booking models.NewBooking) (*models.Booking, error) {
	args := m.Called(booking)
	b, _ := args.Get(0).(*models.Booking)
	return b, args.Error(1)
}

func (m *MockDatabase) GetUserBookings(ctx context.Context, userID int) ([]models.Booking, error) {
	args := m.Called(userID)
	b, _ := args.Get(0).([]models.Booking)
	return b, args.Error(1)
}

func (m *MockDatabase) GetBooking(ctx context.Context, id int) (*models.Booking, error) {
	args := m.Called(id)
	b, _ := args.Get(0).(*models.Booking)
	return b, args.Error(1)
}

func (m *MockDatabase) UpdateBooking(ctx context.Context, id int, patch models.BookingPatch) (*models.Booking, error) {
	args := m.Called(id, patch)
	b, _ := args.Get(0).(*models.Booking)
	return b, args.Error(1)
}

func (m *MockDatabase) GetEvents(ctx context.Context, limit int) ([]models.Event, error) {
	args := m.Called(limit)
	e, _ := args.Get(0).([]models.Event)
	return e, args.Error(1)
}

func (m *MockDatabase) CreateEvent(ctx context.Context, event models.NewEvent) (*models.Event, error) {
	args := m.Called(event)
	e, _ := args.Get(0).(*models.Event)
	return e, args.Error(1)
}

func (m *MockDatabase) GetEventsByType(ctx context.Context, eventType string) ([]models.Event, error) {
	args := m.Called(eventType)
	e, _ := args.Get(0).([]models.Event)
	return e, args.Error(1)
}

func (m *MockDatabase) GetUserFavorites(ctx context.Context, userID int) ([]models.Favorite, error) {
	args := m.Called(userID)
	f, _ := args.Get(0).([]models.Favorite)
	return f, args.Error(1)
}

func (m *MockDatabase) AddFavorite(ctx context.Context, favorite models.NewFavorite) (*models.Favorite, error) {
	args := m.Called(favorite)
	f, _ := args.Get(0).(*models.Favorite)
	return f, args.Error(1)
}

func (m *MockDatabase) RemoveFavorite(ctx context.Context, userID int, itemType, itemID string) (bool, error) {
	args := m.Called(userID, itemType, itemID)
	return args.Bool(0), args.Error(1)
}

var testNow = time.Date(2026, time.October, 16, 20, 0, 0, 0, time.UTC)

// newTestServer builds a Server around db with a generous rate limit and a frozen clock.
func newTestServer(db *MockDatabase, feed *nasa.Client) *Server {
	return &Server{
		db:                db,
		feed:              feed,
		limiter:           newVisitorLimiter(1000, 1000, time.Minute),
		countdownInterval: time.Millisecond,
		now:               func() time.Time { return testNow },
	}
}

// do sends a request through the full router and records the response.
func do(t *testing.T, s *Server, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	s.RegisterRoutes().ServeHTTP(rr, req)
	return rr
}
