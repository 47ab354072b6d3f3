package service

import (
	"context"

	"github.com/thangpham393/chinese-vocabulary-learning/internal/models"
	"go.uber.org/zap"
)

type EnricherI interface {
	EnrichVocabulary(ctx context.Context, rawText string) ([]models.VocabularyItem, error)
}

type MediaAPII interface {
	GenerateWordIcon(ctx context.Context, word, definition string) (string, error)
	SynthesizeSpeech(ctx context.Context, text string) ([]byte, error)
}

// APII is the Gemini-backed enrichment and media surface. A nil APII means no
// API key is configured: the AI operations fail with ErrAIUnavailable and the
// network is never touched.
type APII interface {
	EnricherI
	MediaAPII
}

// RepositoryI is the remote lesson store. A nil RepositoryI means no remote
// store is configured and everything routes to the local cache.
type RepositoryI interface {
	UpsertLesson(ctx context.Context, lesson models.Lesson) error
	LessonsByScope(ctx context.Context, scopeKey string) ([]models.Lesson, error)
	DeleteLessonCascade(ctx context.Context, lessonID string) error
	Counts(ctx context.Context) (models.Stats, error)
	ReplaceVocabulary(ctx context.Context, lessonID string, items []models.VocabularyItem) error
	VocabularyByLesson(ctx context.Context, lessonID string) ([]models.VocabularyItem, error)
}

// CacheI is the best-effort local fallback store.
type CacheI interface {
	SaveLessons(ctx context.Context, scopeKey string, lessons []models.Lesson) error
	LoadLessons(ctx context.Context, scopeKey string) ([]models.Lesson, error)
	SaveVocabulary(ctx context.Context, lessonID string, items []models.VocabularyItem) error
	LoadVocabulary(ctx context.Context, lessonID string) ([]models.VocabularyItem, error)
	DeleteLesson(ctx context.Context, scopeKey, lessonID string) error
	Image(ctx context.Context, word string) (string, error)
	SaveImage(ctx context.Context, word, dataURL string) error
	Counts(ctx context.Context) (models.Stats, error)
}

// SeedI hands out the curated built-in content.
type SeedI interface {
	Lessons(scopeKey string) []models.Lesson
	Vocabulary(lessonID string) ([]models.VocabularyItem, bool)
}

type Service struct {
	*LessonS
	*StudyS
}

func InitServices(api APII, repo RepositoryI, cache CacheI, seed SeedI, log *zap.Logger) *Service {
	return &Service{
		LessonS: NewLessonService(api, repo, cache, seed, log),
		StudyS:  NewStudyService(api, cache, log),
	}
}
