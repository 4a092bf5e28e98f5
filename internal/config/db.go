package config

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"usedphoneshop/internal/utils"

	_ "github.com/mattn/go-sqlite3"
)

// ConnectDB opens (or creates) the SQLite database file
func ConnectDB(cfg *DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("unable to open database %s: %w", cfg.Path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("unable to connect to database %s: %w", cfg.Path, err)
	}

	// journal_mode may not be supported in some contexts (e.g., in-memory). Ignore errors.
	_, _ = db.Exec(`PRAGMA journal_mode=WAL`)
	if _, err := db.Exec(`PRAGMA busy_timeout=5000`); err != nil {
		db.Close()
		return nil, fmt.Errorf("unable to set busy_timeout: %w", err)
	}
	if _, err := db.Exec(`PRAGMA foreign_keys=ON`); err != nil {
		db.Close()
		return nil, fmt.Errorf("unable to enable foreign keys: %w", err)
	}

	log.Printf("Connected to SQLite database at %s", cfg.Path)
	return db, nil
}

// AutoMigrate creates tables if they don't exist
func AutoMigrate(db *sql.DB) error {
	// AUTOINCREMENT keeps rowids monotonic so ids are never reused after deletion
	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		email TEXT NOT NULL UNIQUE,
		role TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		first_name TEXT NOT NULL DEFAULT '',
		last_name TEXT NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT '',
		phone_number TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS phones (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		brand TEXT NOT NULL,
		model TEXT NOT NULL,
		price REAL NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		condition TEXT NOT NULL,
		stock_quantity INTEGER NOT NULL DEFAULT 0
	);
	`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("unable to apply migrations: %w", err)
	}

	log.Println("AutoMigrate applied successfully")
	return nil
}

// Seed inserts the initial admin account and sample phone inventory if the
// database is empty. Safe to call on every startup.
func Seed(db *sql.DB, digester utils.PasswordDigester) error {
	var adminCount int
	if err := db.QueryRow(`SELECT COUNT(*) FROM users WHERE email = ?`, "admin@usedphoneshop.com").Scan(&adminCount); err != nil {
		return fmt.Errorf("failed to check for admin account: %w", err)
	}
	if adminCount == 0 {
		passwordHash, err := digester.Hash("Admin123!")
		if err != nil {
			return fmt.Errorf("failed to hash admin password: %w", err)
		}
		_, err = db.Exec(
			`INSERT INTO users (email, role, password_hash, first_name, last_name, address, phone_number, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			"admin@usedphoneshop.com", "Admin", passwordHash, "Admin", "User", "123 Admin Street", "123456789", time.Now(),
		)
		if err != nil {
			return fmt.Errorf("failed to seed admin account: %w", err)
		}
		log.Println("Seeded admin account: admin@usedphoneshop.com")
	}

	var phoneCount int
	if err := db.QueryRow(`SELECT COUNT(*) FROM phones`).Scan(&phoneCount); err != nil {
		return fmt.Errorf("failed to check phone inventory: %w", err)
	}
	if phoneCount == 0 {
		_, err := db.Exec(`
			INSERT INTO phones (brand, model, price, description, condition, stock_quantity) VALUES
			('Apple', 'iPhone 12', 799.99, 'Latest model with A14 Bionic chip', 'New', 10),
			('Samsung', 'Galaxy S21', 699.99, 'Flagship model with Exynos 2100', 'New', 15),
			('Google', 'Pixel 5', 599.99, '5G capable with Snapdragon 765G', 'New', 8),
			('OnePlus', '8T', 499.99, 'Fast and smooth with Snapdragon 865', 'New', 12)`)
		if err != nil {
			return fmt.Errorf("failed to seed phone inventory: %w", err)
		}
		log.Println("Seeded sample phone inventory")
	}

	return nil
}
