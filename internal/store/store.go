package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"launch-gateway/internal/models"
	"log"
	"os"
	"strconv"
	"time"

	// PostgreSQL driver
	_ "github.com/jackc/pgx/v5/stdlib"

	// Migration libraries
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	// Environment variables
	_ "github.com/joho/godotenv/autoload"
)

// Service is the persistent user store. Users and their booked trips are
// the only state in the gateway with cross-request lifetime.
type Service interface {
	// Health returns a map of health status information.
	// The keys and values in the map are service-specific.
	Health() map[string]string

	// Close terminates the database connection.
	// It returns an error if the connection cannot be closed.
	Close() error

	// FindOrCreateUser returns the user with the given email, creating
	// it first if none exists.
	FindOrCreateUser(ctx context.Context, email string) (*models.User, error)

	// LaunchIDsByUser returns the launch ids the user has booked, oldest
	// booking first. A user with no bookings gets an empty slice.
	LaunchIDsByUser(ctx context.Context, userID int64) ([]string, error)

	IsBookedOnLaunch(ctx context.Context, userID int64, launchID string) (bool, error)

	// BookTrips books each launch id for the user and returns the ids
	// actually booked. Already-booked ids are not re-booked and are
	// absent from the result.
	BookTrips(ctx context.Context, userID int64, launchIDs []string) ([]string, error)

	// CancelTrip removes one booking. It reports false when the user had
	// no booking for that launch.
	CancelTrip(ctx context.Context, userID int64, launchID string) (bool, error)
}

type service struct {
	db *sql.DB
}

var (
	database      = os.Getenv("DB_DATABASE")
	password      = os.Getenv("DB_PASSWORD")
	username      = os.Getenv("DB_USERNAME")
	port          = os.Getenv("DB_PORT")
	host          = os.Getenv("DB_HOST")
	schema        = os.Getenv("DB_SCHEMA")
	migrationsDir = os.Getenv("DB_MIGRATIONS")
	dbInstance    *service
)

func New() Service {
	// Reuse Connection
	if dbInstance != nil {
		return dbInstance
	}
	connStr := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable&search_path=%s",
		username, password, host, port, database, schema,
	)
	db, err := sql.Open("pgx", connStr)
	if err != nil {
		log.Fatal(err)
	}

	if err := runMigrations(connStr); err != nil {
		log.Fatalf("Error running migrations: %v", err)
	}

	dbInstance = &service{
		db: db,
	}
	return dbInstance
}

func runMigrations(connStr string) error {
	dir := migrationsDir
	if dir == "" {
		dir = "migrations"
	}
	m, err := migrate.New("file://"+dir, connStr)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

// Health checks the health of the database connection by pinging the database.
// It returns a map with keys indicating various health statistics.
func (s *service) Health() map[string]string {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	stats := make(map[string]string)

	// Ping the database
	err := s.db.PingContext(ctx)
	if err != nil {
		stats["status"] = "down"
		stats["error"] = fmt.Sprintf("db down: %v", err)
		log.Printf("db down: %v", err)
		return stats
	}

	// Database is up, add more statistics
	stats["status"] = "up"
	stats["message"] = "It's healthy"

	// Get database stats (like open connections, in use, idle, etc.)
	dbStats := s.db.Stats()
	stats["open_connections"] = strconv.Itoa(dbStats.OpenConnections)
	stats["in_use"] = strconv.Itoa(dbStats.InUse)
	stats["idle"] = strconv.Itoa(dbStats.Idle)
	stats["wait_count"] = strconv.FormatInt(dbStats.WaitCount, 10)
	stats["wait_duration"] = dbStats.WaitDuration.String()

	if dbStats.WaitCount > 1000 {
		stats["message"] = "The database has a high number of wait events, indicating potential bottlenecks."
	}

	return stats
}

// Close closes the database connection.
// It logs a message indicating the disconnection from the specific database.
func (s *service) Close() error {
	log.Printf("Disconnected from database: %s", database)
	return s.db.Close()
}

func (s *service) FindOrCreateUser(ctx context.Context, email string) (*models.User, error) {
	query := `
		INSERT INTO users (email)
		VALUES ($1)
		ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
		RETURNING id, email, created_at
	`
	var user models.User
	err := s.db.QueryRowContext(ctx, query, email).Scan(&user.ID, &user.Email, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *service) LaunchIDsByUser(ctx context.Context, userID int64) ([]string, error) {
	query := `
		SELECT launch_id FROM trips
		WHERE user_id = $1
		ORDER BY created_at, launch_id
	`
	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (s *service) IsBookedOnLaunch(ctx context.Context, userID int64, launchID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM trips WHERE user_id = $1 AND launch_id = $2
		)
	`
	var booked bool
	if err := s.db.QueryRowContext(ctx, query, userID, launchID).Scan(&booked); err != nil {
		return false, err
	}
	return booked, nil
}

func (s *service) BookTrips(ctx context.Context, userID int64, launchIDs []string) ([]string, error) {
	query := `
		INSERT INTO trips (user_id, launch_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
		RETURNING launch_id
	`
	booked := []string{}
	for _, launchID := range launchIDs {
		var id string
		err := s.db.QueryRowContext(ctx, query, userID, launchID).Scan(&id)
		if errors.Is(err, sql.ErrNoRows) {
			// Already booked or rejected; reported to the caller by omission.
			continue
		}
		if err != nil {
			return nil, err
		}
		booked = append(booked, id)
	}
	return booked, nil
}

func (s *service) CancelTrip(ctx context.Context, userID int64, launchID string) (bool, error) {
	query := `DELETE FROM trips WHERE user_id = $1 AND launch_id = $2`
	res, err := s.db.ExecContext(ctx, query, userID, launchID)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
