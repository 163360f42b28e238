// Package database opens the MySQL connection shared by every
// repository.  The schema holds the users, recipes, ratings, inventory,
// reminders and refresh_tokens tables; all DATETIME columns are stored
// in UTC so reminder due checks compare against one clock.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// Pool sizing for a small API instance.  The recipe and reminder
// endpoints are short point queries, so a modest pool suffices; the
// lifetime cap recycles connections ahead of server-side timeouts.
const (
	maxOpenConns    = 25
	maxIdleConns    = 25
	connMaxLifetime = 30 * time.Minute
)

// Open builds the DSN from the config fields, connects and verifies
// the connection with a short ping so a bad database config fails at
// startup instead of on the first request.
func Open(user, pass, host, port, name string) (*sql.DB, error) {
	auth := user
	if pass != "" {
		auth = fmt.Sprintf("%s:%s", user, pass)
	}
	// parseTime turns DATETIME columns into time.Time; loc=UTC keeps
	// the reminder schedule timestamps unambiguous
	dsn := fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		auth, host, port, name)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
	db.SetConnMaxLifetime(connMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	return db, nil
}
