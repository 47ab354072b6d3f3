package models

import (
	"fmt"
	"strconv"
	"strings"
)

type CategoryType string

const (
	CategoryHSK   CategoryType = "HSK"
	CategoryYCT   CategoryType = "YCT"
	CategoryTopic CategoryType = "TOPIC"
)

// Category is a static, compile-time grouping of lessons. It is never
// persisted; its scope is only a lookup key.
type Category struct {
	ID    string       `json:"id"`
	Name  string       `json:"name"`
	Type  CategoryType `json:"type"`
	Level int          `json:"level,omitempty"`
	Icon  string       `json:"icon"`
}

// Scope identifies a group of lessons: an HSK level, a YCT level or a topic.
// Its canonical key is the storage key for both the remote store and the
// local cache, so one category can never shadow another.
type Scope struct {
	Type    CategoryType
	Level   int
	TopicID string
}

func HSKScope(level int) Scope   { return Scope{Type: CategoryHSK, Level: level} }
func YCTScope(level int) Scope   { return Scope{Type: CategoryYCT, Level: level} }
func TopicScope(id string) Scope { return Scope{Type: CategoryTopic, TopicID: id} }

// Key returns the canonical storage key, e.g. "hsk1", "yct2", "topic:food".
func (s Scope) Key() string {
	switch s.Type {
	case CategoryTopic:
		return "topic:" + s.TopicID
	case CategoryYCT:
		return fmt.Sprintf("yct%d", s.Level)
	default:
		return fmt.Sprintf("hsk%d", s.Level)
	}
}

// ParseScope is the inverse of Key. It rejects anything it did not produce.
func ParseScope(key string) (Scope, error) {
	switch {
	case strings.HasPrefix(key, "topic:"):
		id := strings.TrimPrefix(key, "topic:")
		if id == "" {
			return Scope{}, fmt.Errorf("empty topic id in scope %q", key)
		}
		return TopicScope(id), nil
	case strings.HasPrefix(key, "hsk"):
		level, err := strconv.Atoi(strings.TrimPrefix(key, "hsk"))
		if err != nil || level < 1 || level > 6 {
			return Scope{}, fmt.Errorf("invalid hsk scope %q", key)
		}
		return HSKScope(level), nil
	case strings.HasPrefix(key, "yct"):
		level, err := strconv.Atoi(strings.TrimPrefix(key, "yct"))
		if err != nil || level < 1 || level > 4 {
			return Scope{}, fmt.Errorf("invalid yct scope %q", key)
		}
		return YCTScope(level), nil
	}
	return Scope{}, fmt.Errorf("unknown scope %q", key)
}

// ScopeOf returns the scope a category groups its lessons under.
func (c Category) ScopeOf() Scope {
	switch c.Type {
	case CategoryTopic:
		return TopicScope(c.ID)
	case CategoryYCT:
		return YCTScope(c.Level)
	default:
		return HSKScope(c.Level)
	}
}
