package config

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // PostgreSQL driver
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/xGiancox/Barberiaapp/internal/earnings"
)

// SetupDatabase initializes the database connection, creates the schema
// and seeds the default owner account on an empty database.
func SetupDatabase(cfg *Config) (*sqlx.DB, error) {
	var (
		db  *sqlx.DB
		err error
	)

	switch cfg.Database.Driver {
	case "postgres":
		db, err = sqlx.Connect("postgres", cfg.Database.GetDSN())
	case "sqlite":
		db, err = sqlx.Connect("sqlite", cfg.Database.SQLitePath)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if cfg.Database.Driver == "sqlite" {
		// Single writer; sqlite does not tolerate concurrent write connections.
		db.SetMaxOpenConns(1)
		if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
			return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
		}
	} else {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
	}

	if err := createTables(db); err != nil {
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	if err := seedOwner(db, cfg); err != nil {
		return nil, fmt.Errorf("failed to seed owner account: %w", err)
	}

	return db, nil
}

// createTables creates the necessary tables in the database
func createTables(db *sqlx.DB) error {
	// Create users table
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS users (
			id VARCHAR(36) PRIMARY KEY,
			email VARCHAR(120) UNIQUE NOT NULL,
			name VARCHAR(100) NOT NULL,
			password VARCHAR(128) NOT NULL,
			role VARCHAR(20) NOT NULL,
			created_at TIMESTAMP NOT NULL
		)
	`)
	if err != nil {
		return err
	}

	// Create haircuts table; dates are stored as ISO strings so inclusive
	// range scans behave identically on both drivers
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS haircuts (
			id VARCHAR(36) PRIMARY KEY,
			date_cut VARCHAR(10) NOT NULL,
			date_recorded TIMESTAMP NOT NULL,
			price DOUBLE PRECISION NOT NULL,
			quantity INTEGER NOT NULL,
			total DOUBLE PRECISION NOT NULL,
			divided_total DOUBLE PRECISION NOT NULL,
			user_id VARCHAR(36) NOT NULL REFERENCES users(id) ON DELETE CASCADE
		)
	`)
	if err != nil {
		return err
	}

	// Create monthly_expenses table
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS monthly_expenses (
			id VARCHAR(36) PRIMARY KEY,
			month_year VARCHAR(7) NOT NULL,
			amount DOUBLE PRECISION NOT NULL,
			description VARCHAR(200) NOT NULL DEFAULT '',
			created_by VARCHAR(36) NOT NULL REFERENCES users(id),
			created_at TIMESTAMP NOT NULL
		)
	`)
	if err != nil {
		return err
	}

	// Create product_sales table
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS product_sales (
			id VARCHAR(36) PRIMARY KEY,
			date_sale VARCHAR(10) NOT NULL,
			date_recorded TIMESTAMP NOT NULL,
			product_name VARCHAR(200) NOT NULL,
			price DOUBLE PRECISION NOT NULL,
			quantity INTEGER NOT NULL,
			total DOUBLE PRECISION NOT NULL,
			created_by VARCHAR(36) NOT NULL REFERENCES users(id)
		)
	`)
	if err != nil {
		return err
	}

	// Create indexes for better performance
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_haircuts_user_date ON haircuts(user_id, date_cut)",
		"CREATE INDEX IF NOT EXISTS idx_haircuts_date ON haircuts(date_cut)",
		"CREATE INDEX IF NOT EXISTS idx_product_sales_date ON product_sales(date_sale)",
	}

	for _, idx := range indexes {
		_, err = db.Exec(idx)
		if err != nil {
			slog.Warn("failed to create index", "error", err)
			// Don't return error here, indexes are not critical
		}
	}

	return nil
}

// seedOwner creates the default owner account if no owner exists yet, so a
// fresh install can log in without manual setup.
func seedOwner(db *sqlx.DB, cfg *Config) error {
	var exists bool
	query := db.Rebind(`SELECT EXISTS(SELECT 1 FROM users WHERE role = ?)`)
	if err := db.GetContext(context.Background(), &exists, query, earnings.RoleOwner); err != nil {
		return err
	}
	if exists {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.Seed.OwnerPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	insert := db.Rebind(`
		INSERT INTO users (id, email, name, password, role, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	_, err = db.Exec(insert,
		uuid.New().String(), cfg.Seed.OwnerEmail, cfg.Seed.OwnerName,
		string(hashed), earnings.RoleOwner, time.Now().UTC())
	if err != nil {
		return err
	}

	slog.Info("seeded default owner account", "email", cfg.Seed.OwnerEmail)
	return nil
}
