package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strconv"
	"time"

	"astro-booking/internal/models"

	// PostgreSQL driver
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Service represents a service that interacts with a database.
type Service interface {
	// Health returns a map of health status information.
	// The keys and values in the map are service-specific.
	Health() map[string]string

	// Close terminates the database connection.
	// It returns an error if the connection cannot be closed.
	Close() error

	GetUser(ctx context.Context, id int) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	CreateUser(ctx context.Context, user models.NewUser) (*models.User, error)
	UpdateUser(ctx context.Context, id int, patch models.UserPatch) (*models.User, error)

	CreateBooking(ctx context.Context, booking models.NewBooking) (*models.Booking, error)
	GetUserBookings(ctx context.Context, userID int) ([]models.Booking, error)
	GetBooking(ctx context.Context, id int) (*models.Booking, error)
	UpdateBooking(ctx context.Context, id int, patch models.BookingPatch) (*models.Booking, error)

	GetEvents(ctx context.Context, limit int) ([]models.Event, error)
	CreateEvent(ctx context.Context, event models.NewEvent) (*models.Event, error)
	GetEventsByType(ctx context.Context, eventType string) ([]models.Event, error)

	GetUserFavorites(ctx context.Context, userID int) ([]models.Favorite, error)
	AddFavorite(ctx context.Context, favorite models.NewFavorite) (*models.Favorite, error)
	RemoveFavorite(ctx context.Context, userID int, itemType, itemID string) (bool, error)
}

type service struct {
	db *sql.DB
}

// New opens a pgx-backed connection pool. The pool is lazy: the first query
// (or Health) is what actually dials the server.
func New(databaseURL string) (Service, error) {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(30 * time.Minute)

	return &service{db: db}, nil
}

// Health checks the health of the database connection by pinging the database.
// It returns a map with keys indicating various health statistics.
func (s *service) Health() map[string]string {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	stats := make(map[string]string)

	err := s.db.PingContext(ctx)
	if err != nil {
		stats["status"] = "down"
		stats["error"] = fmt.Sprintf("db down: %v", err)
		log.Printf("db down: %v", err)
		return stats
	}

	stats["status"] = "up"
	stats["message"] = "It's healthy"

	dbStats := s.db.Stats()
	stats["open_connections"] = strconv.Itoa(dbStats.OpenConnections)
	stats["in_use"] = strconv.Itoa(dbStats.InUse)
	stats["idle"] = strconv.Itoa(dbStats.Idle)
	stats["wait_count"] = strconv.FormatInt(dbStats.WaitCount, 10)
	stats["wait_duration"] = dbStats.WaitDuration.String()
	stats["max_idle_closed"] = strconv.FormatInt(dbStats.MaxIdleClosed, 10)
	stats["max_lifetime_closed"] = strconv.FormatInt(dbStats.MaxLifetimeClosed, 10)

	if dbStats.OpenConnections > 20 {
		stats["message"] = "The database is experiencing heavy load."
	}

	if dbStats.WaitCount > 1000 {
		stats["message"] = "The database has a high number of wait events, indicating potential bottlenecks."
	}

	return stats
}

// Close closes the database connection.
func (s *service) Close() error {
	log.Printf("Disconnected from database")
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

// setList accumulates "column = $n" assignments for partial updates.
type setList struct {
	cols []string
	args []any
}

func (l *setList) add(col string, v any) {
	l.args = append(l.args, v)
	l.cols = append(l.cols, fmt.Sprintf("%s = $%d", col, len(l.args)))
}

func (l *setList) empty() bool { return len(l.cols) == 0 }
