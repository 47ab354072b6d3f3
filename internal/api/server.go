package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/thangpham393/chinese-vocabulary-learning/internal/models"
	"go.uber.org/zap"
)

type LessonSI interface {
	LessonsForScope(ctx context.Context, scope models.Scope) ([]models.Lesson, error)
	VocabularyForLesson(ctx context.Context, lessonID string) ([]models.VocabularyItem, error)
	VocabularyForScope(ctx context.Context, scope models.Scope) ([]models.VocabularyItem, error)
	ImportLesson(ctx context.Context, scope models.Scope, title, rawText string) (models.Lesson, []models.VocabularyItem, error)
	DeleteLesson(ctx context.Context, scope models.Scope, lessonID string) error
	GlobalStats(ctx context.Context) (models.Stats, error)
}

type StudySI interface {
	CheckDictation(answer string, item models.VocabularyItem) bool
	CheckReview(answer string, item models.VocabularyItem) bool
	Narrate(ctx context.Context, text string) ([]byte, error)
	Illustrate(ctx context.Context, word, definition string) (string, error)
}

type ServiceI interface {
	LessonSI
	StudySI
}

type SeedI interface {
	Categories() []models.Category
}

type Server struct {
	service ServiceI
	seed    SeedI
	log     *zap.Logger
	router  chi.Router
}

func NewServer(service ServiceI, seed SeedI, timeout time.Duration, log *zap.Logger) *Server {
	s := &Server{
		service: service,
		seed:    seed,
		log:     log,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(timeout))

	r.Route("/api", func(r chi.Router) {
		r.Get("/categories", s.handleCategories)
		r.Get("/stats", s.handleStats)

		r.Route("/scopes/{scope}", func(r chi.Router) {
			r.Get("/lessons", s.handleLessonsForScope)
			r.Post("/lessons", s.handleImportLesson)
			r.Delete("/lessons/{lessonID}", s.handleDeleteLesson)
			r.Get("/vocabulary", s.handleVocabularyForScope)
		})

		r.Get("/lessons/{lessonID}/vocabulary", s.handleVocabularyForLesson)
		r.Get("/lessons/{lessonID}/deck", s.handleDeck)

		r.Post("/study/review/check", s.handleReviewCheck)
		r.Post("/study/dictation/check", s.handleDictationCheck)

		r.Post("/speech", s.handleSpeech)
		r.Get("/words/{word}/image", s.handleWordImage)
	})

	s.router = r
	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
