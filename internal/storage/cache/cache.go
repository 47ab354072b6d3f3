package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/thangpham393/chinese-vocabulary-learning/internal/models"
	"go.uber.org/zap"
)

// Cache is the durable local fallback store. It keeps whole JSON values under
// string keys in a single SQLite file, one key per (scope, lessons) pair and
// one key per lesson's vocabulary, plus a word-to-image memo. It is best
// effort and never the system of record when the remote store is configured.
type Cache struct {
	db  *sql.DB
	log *zap.Logger
}

const (
	lessonsKeyFmt = "zw_v2_%s_lessons"
	vocabKeyFmt   = "zw_v2_vocab_%s"
	imageKeyFmt   = "zw_v2_image_%s"
)

func Open(path string, log *zap.Logger) (*Cache, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed open cache: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv (key TEXT PRIMARY KEY, value TEXT NOT NULL)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed init cache schema: %w", err)
	}

	return &Cache{db: db, log: log}, nil
}

func (c *Cache) Close() error {
	return c.db.Close()
}

func (c *Cache) set(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed marshal cache value %s: %w", key, err)
	}

	_, err = c.db.ExecContext(ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, string(raw))
	if err != nil {
		return fmt.Errorf("failed write cache key %s: %w", key, err)
	}

	return nil
}

// get unmarshals the value stored under key into dest. A missing key or a
// value that no longer parses both count as "nothing cached".
func (c *Cache) get(ctx context.Context, key string, dest any) (bool, error) {
	var raw string
	err := c.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&raw)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed read cache key %s: %w", key, err)
	}

	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		c.log.Warn("discarding unreadable cache value", zap.String("key", key), zap.Error(err))
		return false, nil
	}

	return true, nil
}

func (c *Cache) delete(ctx context.Context, key string) error {
	if _, err := c.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed delete cache key %s: %w", key, err)
	}
	return nil
}

func (c *Cache) SaveLessons(ctx context.Context, scopeKey string, lessons []models.Lesson) error {
	return c.set(ctx, fmt.Sprintf(lessonsKeyFmt, scopeKey), lessons)
}

func (c *Cache) LoadLessons(ctx context.Context, scopeKey string) ([]models.Lesson, error) {
	var lessons []models.Lesson
	if _, err := c.get(ctx, fmt.Sprintf(lessonsKeyFmt, scopeKey), &lessons); err != nil {
		return nil, err
	}
	if lessons == nil {
		lessons = []models.Lesson{}
	}
	return lessons, nil
}

func (c *Cache) SaveVocabulary(ctx context.Context, lessonID string, items []models.VocabularyItem) error {
	return c.set(ctx, fmt.Sprintf(vocabKeyFmt, lessonID), items)
}

func (c *Cache) LoadVocabulary(ctx context.Context, lessonID string) ([]models.VocabularyItem, error) {
	var items []models.VocabularyItem
	if _, err := c.get(ctx, fmt.Sprintf(vocabKeyFmt, lessonID), &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.VocabularyItem{}
	}
	return items, nil
}

// DeleteLesson removes the lesson from its scope list and drops the lesson's
// vocabulary key entirely.
func (c *Cache) DeleteLesson(ctx context.Context, scopeKey, lessonID string) error {
	lessons, err := c.LoadLessons(ctx, scopeKey)
	if err != nil {
		return err
	}

	filtered := make([]models.Lesson, 0, len(lessons))
	for _, l := range lessons {
		if l.ID != lessonID {
			filtered = append(filtered, l)
		}
	}

	if err := c.set(ctx, fmt.Sprintf(lessonsKeyFmt, scopeKey), filtered); err != nil {
		return err
	}

	return c.delete(ctx, fmt.Sprintf(vocabKeyFmt, lessonID))
}

func (c *Cache) Image(ctx context.Context, word string) (string, error) {
	var dataURL string
	ok, err := c.get(ctx, fmt.Sprintf(imageKeyFmt, word), &dataURL)
	if err != nil || !ok {
		return "", err
	}
	return dataURL, nil
}

func (c *Cache) SaveImage(ctx context.Context, word, dataURL string) error {
	return c.set(ctx, fmt.Sprintf(imageKeyFmt, word), dataURL)
}

// Counts tallies cached lessons and vocabulary so offline installs still get
// a stats display. The two numbers come from independent scans.
func (c *Cache) Counts(ctx context.Context) (models.Stats, error) {
	var stats models.Stats

	rows, err := c.db.QueryContext(ctx, `SELECT key, value FROM kv WHERE key LIKE 'zw_v2_%'`)
	if err != nil {
		return models.Stats{}, fmt.Errorf("failed scan cache: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var key, raw string
		if err := rows.Scan(&key, &raw); err != nil {
			return models.Stats{}, fmt.Errorf("failed scan cache row: %w", err)
		}

		switch {
		case len(key) > 7 && key[len(key)-8:] == "_lessons":
			var lessons []models.Lesson
			if err := json.Unmarshal([]byte(raw), &lessons); err == nil {
				stats.TotalLessons += len(lessons)
			}
		case len(key) > len("zw_v2_vocab_") && key[:len("zw_v2_vocab_")] == "zw_v2_vocab_":
			var items []models.VocabularyItem
			if err := json.Unmarshal([]byte(raw), &items); err == nil {
				stats.TotalWords += len(items)
			}
		}
	}

	return stats, rows.Err()
}
