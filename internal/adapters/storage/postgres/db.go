package postgres

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"strings"
	"time"

	"dog-life/internal/adapters/storage"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Schema es el DDL de las tablas que leen estos repos. Se aplica por fuera
// (psql -f schema.sql); Open no lo ejecuta.
//
//go:embed schema.sql
var Schema string

// Open abre un pool a Postgres usando pgx (database/sql) y verifica la conexión.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	dsn = strings.TrimSpace(dsn)
	if dsn == "" {
		return nil, errors.New("postgres: empty dsn")
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	// el catálogo es solo lectura: pocas conexiones alcanzan
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	pctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := db.PingContext(pctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// NewCatalog arma los repos de lectura sobre db, con las tablas de Schema.
// Notificaciones leídas quedan fuera: ese estado es por viewer y vive en
// memoria.
func NewCatalog(db *sql.DB) storage.Catalog {
	return storage.Catalog{
		Feed:          NewFeedRepo(db),
		Notifications: NewNotificationsRepo(db),
		Home:          NewHomeRepo(db),
		AskAI:         NewAskAIRepo(db),
		Health:        NewHealthRepo(db),
		Services:      NewServicesRepo(db),
		Match:         NewMatchRepo(db),
	}
}
