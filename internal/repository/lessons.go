package repository

import (
	"context"
	"fmt"

	"github.com/thangpham393/chinese-vocabulary-learning/internal/models"
)

type LessonsR struct {
	db QueryI
}

func NewLessonsRepository(db QueryI) *LessonsR {
	return &LessonsR{db: db}
}

// UpsertLesson inserts the lesson or replaces it by primary key, so saving
// the same lesson id twice leaves exactly one row. created_at is set once on
// insert and survives updates, keeping the sort tiebreak stable.
func (l *LessonsR) UpsertLesson(ctx context.Context, lesson models.Lesson) error {
	query := `INSERT INTO lessons (id, scope, number, title, description)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id)
		DO UPDATE SET
			scope = EXCLUDED.scope,
			number = EXCLUDED.number,
			title = EXCLUDED.title,
			description = EXCLUDED.description
		`
	_, err := l.db.ExecContext(ctx, query, lesson.ID, lesson.Scope, lesson.Number, lesson.Title, lesson.Description)
	if err != nil {
		return fmt.Errorf("failed upsert lesson %s: %w", lesson.ID, err)
	}

	return nil
}

// LessonsByScope returns the scope's lessons ordered by number. Equal numbers
// keep insertion order via the created_at tiebreak, which the upsert never
// rewrites.
func (l *LessonsR) LessonsByScope(ctx context.Context, scopeKey string) ([]models.Lesson, error) {
	query := `
	SELECT id, scope, number, title, description
		FROM lessons
		WHERE scope = $1
		ORDER BY number ASC, created_at ASC, id ASC
	`

	lessons := make([]models.Lesson, 0)
	err := l.db.SelectContext(ctx, &lessons, query, scopeKey)
	if err != nil {
		return nil, fmt.Errorf("failed select lessons for scope %s: %w", scopeKey, err)
	}

	return lessons, nil
}

// DeleteLessonCascade removes the lesson's vocabulary rows first, then the
// lesson row. A crash between the two steps leaves a vocabulary-less lesson,
// never orphaned vocabulary.
func (l *LessonsR) DeleteLessonCascade(ctx context.Context, lessonID string) error {
	if _, err := l.db.ExecContext(ctx, `DELETE FROM vocabulary WHERE lesson_id = $1`, lessonID); err != nil {
		return fmt.Errorf("failed delete vocabulary for lesson %s: %w", lessonID, err)
	}

	if _, err := l.db.ExecContext(ctx, `DELETE FROM lessons WHERE id = $1`, lessonID); err != nil {
		return fmt.Errorf("failed delete lesson %s: %w", lessonID, err)
	}

	return nil
}

// Counts runs two independent count queries. Under concurrent writes the two
// numbers can drift by a small margin, which is fine for a display statistic.
func (l *LessonsR) Counts(ctx context.Context) (models.Stats, error) {
	var stats models.Stats

	if err := l.db.GetContext(ctx, &stats.TotalLessons, `SELECT COUNT(*) FROM lessons`); err != nil {
		return models.Stats{}, fmt.Errorf("failed count lessons: %w", err)
	}

	if err := l.db.GetContext(ctx, &stats.TotalWords, `SELECT COUNT(*) FROM vocabulary`); err != nil {
		return models.Stats{}, fmt.Errorf("failed count vocabulary: %w", err)
	}

	return stats, nil
}
