package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/thangpham393/chinese-vocabulary-learning/internal/client"
	"github.com/thangpham393/chinese-vocabulary-learning/internal/models"
	"github.com/thangpham393/chinese-vocabulary-learning/internal/service"
	"go.uber.org/zap"
)

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("failed to write response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, errorResponse{Error: msg})
}

// serviceError maps known service failures onto HTTP statuses; everything
// else is a 500 with a generic message.
func (s *Server) serviceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrCuratedLesson):
		s.writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrEmptyVocabulary):
		s.writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, service.ErrAIUnavailable):
		s.writeError(w, http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, client.ErrEnrichmentFailed):
		s.writeError(w, http.StatusBadGateway, err.Error())
	default:
		s.log.Error("request failed", zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "đã xảy ra lỗi, vui lòng thử lại")
	}
}

func (s *Server) scopeParam(w http.ResponseWriter, r *http.Request) (models.Scope, bool) {
	scope, err := models.ParseScope(chi.URLParam(r, "scope"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return models.Scope{}, false
	}
	return scope, true
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.seed.Categories())
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.service.GlobalStats(r.Context())
	if err != nil {
		s.serviceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleLessonsForScope(w http.ResponseWriter, r *http.Request) {
	scope, ok := s.scopeParam(w, r)
	if !ok {
		return
	}

	lessons, err := s.service.LessonsForScope(r.Context(), scope)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, lessons)
}

type importLessonRequest struct {
	Title string `json:"title"`
	Words string `json:"words"`
}

type importLessonResponse struct {
	Lesson     models.Lesson           `json:"lesson"`
	Vocabulary []models.VocabularyItem `json:"vocabulary"`
}

func (s *Server) handleImportLesson(w http.ResponseWriter, r *http.Request) {
	scope, ok := s.scopeParam(w, r)
	if !ok {
		return
	}

	var req importLessonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Title == "" || req.Words == "" {
		s.writeError(w, http.StatusBadRequest, "vui lòng nhập tên bài và danh sách từ")
		return
	}

	lesson, vocabulary, err := s.service.ImportLesson(r.Context(), scope, req.Title, req.Words)
	if err != nil {
		s.serviceError(w, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, importLessonResponse{Lesson: lesson, Vocabulary: vocabulary})
}

func (s *Server) handleDeleteLesson(w http.ResponseWriter, r *http.Request) {
	scope, ok := s.scopeParam(w, r)
	if !ok {
		return
	}

	if err := s.service.DeleteLesson(r.Context(), scope, chi.URLParam(r, "lessonID")); err != nil {
		s.serviceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleVocabularyForScope(w http.ResponseWriter, r *http.Request) {
	scope, ok := s.scopeParam(w, r)
	if !ok {
		return
	}

	items, err := s.service.VocabularyForScope(r.Context(), scope)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleVocabularyForLesson(w http.ResponseWriter, r *http.Request) {
	items, err := s.service.VocabularyForLesson(r.Context(), chi.URLParam(r, "lessonID"))
	if err != nil {
		s.serviceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, items)
}

// handleDeck returns the lesson's vocabulary shuffled for a study session.
func (s *Server) handleDeck(w http.ResponseWriter, r *http.Request) {
	items, err := s.service.VocabularyForLesson(r.Context(), chi.URLParam(r, "lessonID"))
	if err != nil {
		s.serviceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, service.NewDeck(items))
}

type checkRequest struct {
	LessonID string `json:"lessonId"`
	ItemID   string `json:"itemId"`
	Answer   string `json:"answer"`
}

type checkResponse struct {
	Correct bool `json:"correct"`
}

func (s *Server) findItem(w http.ResponseWriter, r *http.Request, req checkRequest) (models.VocabularyItem, bool) {
	items, err := s.service.VocabularyForLesson(r.Context(), req.LessonID)
	if err != nil {
		s.serviceError(w, err)
		return models.VocabularyItem{}, false
	}

	for _, item := range items {
		if item.ID == req.ItemID {
			return item, true
		}
	}

	s.writeError(w, http.StatusNotFound, "không tìm thấy từ vựng")
	return models.VocabularyItem{}, false
}

func (s *Server) handleReviewCheck(w http.ResponseWriter, r *http.Request) {
	var req checkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, ok := s.findItem(w, r, req)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, checkResponse{Correct: s.service.CheckReview(req.Answer, item)})
}

func (s *Server) handleDictationCheck(w http.ResponseWriter, r *http.Request) {
	var req checkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, ok := s.findItem(w, r, req)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, checkResponse{Correct: s.service.CheckDictation(req.Answer, item)})
}

type speechRequest struct {
	Text string `json:"text"`
}

// handleSpeech returns raw PCM; the sample format rides in headers so the
// client can build an audio buffer without guessing.
func (s *Server) handleSpeech(w http.ResponseWriter, r *http.Request) {
	var req speechRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Text == "" {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	audio, err := s.service.Narrate(r.Context(), req.Text)
	if err != nil {
		s.serviceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "audio/pcm")
	w.Header().Set("X-Sample-Rate", strconv.Itoa(24000))
	w.Header().Set("X-Channels", "1")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(audio); err != nil {
		s.log.Error("failed to write audio response", zap.Error(err))
	}
}

type imageResponse struct {
	ImageURL string `json:"imageUrl"`
}

func (s *Server) handleWordImage(w http.ResponseWriter, r *http.Request) {
	word := chi.URLParam(r, "word")
	definition := r.URL.Query().Get("definition")

	dataURL, err := s.service.Illustrate(r.Context(), word, definition)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, imageResponse{ImageURL: dataURL})
}
