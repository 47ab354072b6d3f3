package db

import (
	"context"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"
	"github.com/thangpham393/chinese-vocabulary-learning/internal/config"

	"github.com/jmoiron/sqlx"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS lessons (
	id          TEXT PRIMARY KEY,
	scope       TEXT NOT NULL,
	number      INTEGER NOT NULL,
	title       TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_lessons_scope ON lessons (scope, number);

CREATE TABLE IF NOT EXISTS vocabulary (
	id             TEXT PRIMARY KEY,
	lesson_id      TEXT NOT NULL REFERENCES lessons (id) ON DELETE CASCADE,
	word           TEXT NOT NULL,
	pinyin         TEXT NOT NULL DEFAULT '',
	part_of_speech TEXT NOT NULL DEFAULT '',
	definition_vi  TEXT NOT NULL DEFAULT '',
	definition_en  TEXT NOT NULL DEFAULT '',
	example_zh     TEXT NOT NULL DEFAULT '',
	example_vi     TEXT NOT NULL DEFAULT '',
	image_url      TEXT NOT NULL DEFAULT '',
	UNIQUE (lesson_id, word)
);

CREATE INDEX IF NOT EXISTS idx_vocabulary_lesson ON vocabulary (lesson_id)
`

func InitDB(cfg config.DBConfig) (*sqlx.DB, error) {
	dsn := fmt.Sprintf("host=%v port=%v dbname=%v user=%v password=%v sslmode=%v",
		cfg.Conn.Host, cfg.Conn.Port, cfg.Conn.Name, cfg.Conn.User, cfg.Conn.Password, cfg.Conn.SSL)
	db, err := sqlx.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed open db connect: %w", err)
	}

	db.SetMaxOpenConns(cfg.Cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Cfg.ConnMaxLifeTime)
	db.SetConnMaxIdleTime(cfg.Cfg.ConnMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed db ping: %w", err)
	}

	if err := InitSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// InitSchema creates the lesson and vocabulary tables if they do not exist.
func InitSchema(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range strings.Split(schemaSQL, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed init schema: %w", err)
		}
	}
	return nil
}
