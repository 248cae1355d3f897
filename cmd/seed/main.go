package main

import (
	"database/sql"
	"errors"
	"fmt"
	"log"

	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/farhanadit/go-user-api/config"
)

// Seeds a couple of demo users for local development. Safe to run more than
// once: rows are keyed by email through an upsert on display_name.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("mysql", cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	demo := []struct {
		displayName string
		email       string
		myProperty  int
	}{
		{"Demo User", "demo@example.com", 0},
		{"Ada Lovelace", "ada@example.com", 42},
	}

	for _, d := range demo {
		var existing string
		err := db.QueryRow(`SELECT id FROM users WHERE email = ? LIMIT 1`, d.email).Scan(&existing)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			id := uuid.NewString()
			if _, err := db.Exec(`
				INSERT INTO users (id, display_name, email, my_property)
				VALUES (?, ?, ?, ?)
			`, id, d.displayName, d.email, d.myProperty); err != nil {
				log.Fatalf("failed to seed user %s: %v", d.email, err)
			}
			fmt.Printf("seeded user: id=%s email=%s name=%s\n", id, d.email, d.displayName)
		case err != nil:
			log.Fatalf("failed to check user %s: %v", d.email, err)
		default:
			if _, err := db.Exec(`
				UPDATE users SET display_name = ?, my_property = ? WHERE id = ?
			`, d.displayName, d.myProperty, existing); err != nil {
				log.Fatalf("failed to refresh user %s: %v", d.email, err)
			}
			fmt.Printf("refreshed user: id=%s email=%s name=%s\n", existing, d.email, d.displayName)
		}
	}
}
