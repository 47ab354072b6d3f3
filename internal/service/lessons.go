package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/thangpham393/chinese-vocabulary-learning/internal/models"
	"go.uber.org/zap"
)

var (
	// ErrEmptyVocabulary rejects persisting a lesson with zero vocabulary.
	// Zero enriched items means the import failed, not that nothing was
	// entered.
	ErrEmptyVocabulary = errors.New("bài học không có từ vựng nào")

	// ErrCuratedLesson guards the built-in content: curated lessons are
	// permanently authoritative and can be neither overwritten nor deleted.
	ErrCuratedLesson = errors.New("không thể thay đổi bài học có sẵn")

	// ErrAIUnavailable reports that no Gemini credentials are configured, so
	// smart import and media generation cannot run at all.
	ErrAIUnavailable = errors.New("tính năng AI chưa được cấu hình")

	ErrSaveFailed   = errors.New("không thể lưu bài học")
	ErrDeleteFailed = errors.New("không thể xoá bài học")
)

// LessonS is the single entry point the API layer calls for lesson and
// vocabulary data. It owns no state: every call recomputes its result from
// the curated seed, the remote store and the local cache.
type LessonS struct {
	enricher EnricherI
	repo     RepositoryI
	cache    CacheI
	seed     SeedI
	log      *zap.Logger
}

func NewLessonService(api EnricherI, repo RepositoryI, cache CacheI, seed SeedI, log *zap.Logger) *LessonS {
	return &LessonS{
		enricher: api,
		repo:     repo,
		cache:    cache,
		seed:     seed,
		log:      log,
	}
}

// LessonsForScope returns curated lessons followed by dynamic ones, stably
// sorted by number so equal numbers keep their insertion order.
func (l *LessonS) LessonsForScope(ctx context.Context, scope models.Scope) ([]models.Lesson, error) {
	key := scope.Key()

	var dynamic []models.Lesson
	var err error
	if l.repo != nil {
		dynamic, err = l.repo.LessonsByScope(ctx, key)
	} else {
		dynamic, err = l.cache.LoadLessons(ctx, key)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load lessons for %s: %w", key, err)
	}

	combined := make([]models.Lesson, 0, len(dynamic))
	combined = append(combined, l.seed.Lessons(key)...)
	combined = append(combined, dynamic...)

	sort.SliceStable(combined, func(i, j int) bool {
		return combined[i].Number < combined[j].Number
	})

	return combined, nil
}

// VocabularyForLesson resolves curated content first and returns it
// verbatim; curated and dynamic vocabulary are never merged for one id.
func (l *LessonS) VocabularyForLesson(ctx context.Context, lessonID string) ([]models.VocabularyItem, error) {
	if items, ok := l.seed.Vocabulary(lessonID); ok {
		out := make([]models.VocabularyItem, len(items))
		copy(out, items)
		return out, nil
	}

	if l.repo != nil {
		return l.repo.VocabularyByLesson(ctx, lessonID)
	}
	return l.cache.LoadVocabulary(ctx, lessonID)
}

// SaveLesson persists the lesson and its full vocabulary set. The remote
// store is tried first; on any remote failure the save falls back to the
// local cache. The call succeeds when at least one path succeeded.
func (l *LessonS) SaveLesson(ctx context.Context, scope models.Scope, lesson models.Lesson, vocabulary []models.VocabularyItem) (models.Lesson, error) {
	if len(vocabulary) == 0 {
		return models.Lesson{}, ErrEmptyVocabulary
	}
	if _, ok := l.seed.Vocabulary(lesson.ID); ok {
		return models.Lesson{}, ErrCuratedLesson
	}
	for _, item := range vocabulary {
		if item.Word == "" {
			return models.Lesson{}, fmt.Errorf("%w: từ vựng trống", ErrSaveFailed)
		}
	}

	lesson.Scope = scope.Key()
	if lesson.ID == "" {
		lesson.ID = uuid.New().String()
	}
	if lesson.Description == "" {
		lesson.Description = fmt.Sprintf("%d từ mới", len(vocabulary))
	}
	for i := range vocabulary {
		vocabulary[i].LessonID = lesson.ID
	}

	if l.repo != nil {
		if err := l.saveRemote(ctx, lesson, vocabulary); err == nil {
			return lesson, nil
		} else {
			l.log.Error("remote save failed, falling back to local cache",
				zap.String("lesson_id", lesson.ID), zap.Error(err))
		}
	}

	if err := l.saveLocal(ctx, lesson, vocabulary); err != nil {
		l.log.Error("local save failed", zap.String("lesson_id", lesson.ID), zap.Error(err))
		return models.Lesson{}, fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}

	return lesson, nil
}

func (l *LessonS) saveRemote(ctx context.Context, lesson models.Lesson, vocabulary []models.VocabularyItem) error {
	if err := l.repo.UpsertLesson(ctx, lesson); err != nil {
		return err
	}

	if err := l.repo.ReplaceVocabulary(ctx, lesson.ID, vocabulary); err != nil {
		// Compensate so a half-written lesson does not linger remotely
		// while the fallback copy lives in the cache.
		if delErr := l.repo.DeleteLessonCascade(ctx, lesson.ID); delErr != nil {
			l.log.Warn("failed to roll back partial remote save",
				zap.String("lesson_id", lesson.ID), zap.Error(delErr))
		}
		return err
	}

	return nil
}

func (l *LessonS) saveLocal(ctx context.Context, lesson models.Lesson, vocabulary []models.VocabularyItem) error {
	lessons, err := l.cache.LoadLessons(ctx, lesson.Scope)
	if err != nil {
		return err
	}

	replaced := false
	for i := range lessons {
		if lessons[i].ID == lesson.ID {
			lessons[i] = lesson
			replaced = true
			break
		}
	}
	if !replaced {
		lessons = append(lessons, lesson)
	}

	sort.SliceStable(lessons, func(i, j int) bool {
		return lessons[i].Number < lessons[j].Number
	})

	if err := l.cache.SaveLessons(ctx, lesson.Scope, lessons); err != nil {
		return err
	}
	return l.cache.SaveVocabulary(ctx, lesson.ID, vocabulary)
}

// ImportLesson is the smart-import flow: enrich the raw word list, then
// persist the result as a new lesson in the scope.
func (l *LessonS) ImportLesson(ctx context.Context, scope models.Scope, title, rawText string) (models.Lesson, []models.VocabularyItem, error) {
	if l.enricher == nil {
		return models.Lesson{}, nil, ErrAIUnavailable
	}

	enriched, err := l.enricher.EnrichVocabulary(ctx, rawText)
	if err != nil {
		return models.Lesson{}, nil, err
	}
	if len(enriched) == 0 {
		return models.Lesson{}, nil, ErrEmptyVocabulary
	}

	number := 1
	if existing, err := l.LessonsForScope(ctx, scope); err == nil {
		number = len(existing) + 1
	} else {
		l.log.Warn("failed to number new lesson, defaulting to 1",
			zap.String("scope", scope.Key()), zap.Error(err))
	}

	lesson := models.Lesson{
		Number:      number,
		Title:       title,
		Description: fmt.Sprintf("%d từ mới", len(enriched)),
	}

	saved, err := l.SaveLesson(ctx, scope, lesson, enriched)
	if err != nil {
		return models.Lesson{}, nil, err
	}

	return saved, enriched, nil
}

// DeleteLesson removes the lesson and its vocabulary. The local cache is
// purged unconditionally so a copy saved while the remote store was down
// cannot be stranded; the remote store is attempted when configured. The
// call succeeds when at least one attempted path succeeded.
func (l *LessonS) DeleteLesson(ctx context.Context, scope models.Scope, lessonID string) error {
	if _, ok := l.seed.Vocabulary(lessonID); ok {
		return ErrCuratedLesson
	}

	var remoteErr error
	if l.repo != nil {
		remoteErr = l.repo.DeleteLessonCascade(ctx, lessonID)
		if remoteErr != nil {
			l.log.Error("remote delete failed", zap.String("lesson_id", lessonID), zap.Error(remoteErr))
		}
	}

	cacheErr := l.cache.DeleteLesson(ctx, scope.Key(), lessonID)
	if cacheErr != nil {
		l.log.Error("local delete failed", zap.String("lesson_id", lessonID), zap.Error(cacheErr))
	}

	if cacheErr == nil || (l.repo != nil && remoteErr == nil) {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrDeleteFailed, cacheErr)
}

// GlobalStats reports store-wide totals: remote counts when configured,
// cache counts otherwise. The numbers are display-only and may lag each
// other slightly under concurrent writes.
func (l *LessonS) GlobalStats(ctx context.Context) (models.Stats, error) {
	if l.repo != nil {
		return l.repo.Counts(ctx)
	}
	return l.cache.Counts(ctx)
}

// VocabularyForScope collects the vocabulary of every lesson in the scope,
// fetching per-lesson lists in parallel and joining them in lesson order.
// Any single failure discards the whole combined result.
func (l *LessonS) VocabularyForScope(ctx context.Context, scope models.Scope) ([]models.VocabularyItem, error) {
	lessons, err := l.LessonsForScope(ctx, scope)
	if err != nil {
		return nil, err
	}

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		errs    []error
		perLess = make([][]models.VocabularyItem, len(lessons))
	)

	for i, lesson := range lessons {
		wg.Add(1)
		go func(i int, lessonID string) {
			defer wg.Done()
			items, err := l.VocabularyForLesson(ctx, lessonID)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, err)
				return
			}
			perLess[i] = items
		}(i, lesson.ID)
	}
	wg.Wait()

	if len(errs) > 0 {
		return nil, fmt.Errorf("failed to load vocabulary for %s: %w", scope.Key(), errs[0])
	}

	var combined []models.VocabularyItem
	for _, items := range perLess {
		combined = append(combined, items...)
	}
	return combined, nil
}
