package service

import (
	"context"
	"math/rand"
	"strings"

	"github.com/thangpham393/chinese-vocabulary-learning/internal/models"
	"go.uber.org/zap"
)

// StudyS backs the study modes: flashcard decks, the written challenge and
// listening dictation, plus narration and illustration of words.
type StudyS struct {
	media MediaAPII
	cache CacheI
	log   *zap.Logger
}

func NewStudyService(media MediaAPII, cache CacheI, log *zap.Logger) *StudyS {
	return &StudyS{
		media: media,
		cache: cache,
		log:   log,
	}
}

// NewDeck returns a Fisher-Yates shuffled copy; the input order is left
// untouched.
func NewDeck(items []models.VocabularyItem) []models.VocabularyItem {
	deck := make([]models.VocabularyItem, len(items))
	copy(deck, items)
	rand.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
	return deck
}

// Punctuation ignored when comparing dictation answers, both fullwidth and
// ASCII.
const dictationPunct = "，。！？；：“”‘’（）【】《》,.!?;:"

// NormalizeDictation strips punctuation and whitespace and lowercases, so a
// dictated sentence compares on its characters alone.
func NormalizeDictation(text string) string {
	var sb strings.Builder
	for _, r := range text {
		if strings.ContainsRune(dictationPunct, r) || r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '　' {
			continue
		}
		sb.WriteRune(r)
	}
	return strings.ToLower(sb.String())
}

// CheckDictation compares a typed answer against the item's example
// sentence, ignoring punctuation, spacing and letter case.
func (s *StudyS) CheckDictation(answer string, item models.VocabularyItem) bool {
	return NormalizeDictation(answer) != "" && NormalizeDictation(answer) == NormalizeDictation(item.ExampleZh)
}

// CheckReview checks a written-challenge answer: the exact hanzi, surrounding
// whitespace excused.
func (s *StudyS) CheckReview(answer string, item models.VocabularyItem) bool {
	return strings.TrimSpace(answer) == item.Word
}

// Narrate reads the text aloud in Chinese and returns raw 24kHz mono PCM.
func (s *StudyS) Narrate(ctx context.Context, text string) ([]byte, error) {
	if s.media == nil {
		return nil, ErrAIUnavailable
	}
	return s.media.SynthesizeSpeech(ctx, text)
}

// Illustrate returns a data-URL icon for the word, generating it at most
// once: hits go to the word-to-image memo in the local cache, and a fresh
// image is stored back best effort.
func (s *StudyS) Illustrate(ctx context.Context, word, definition string) (string, error) {
	cached, err := s.cache.Image(ctx, word)
	if err != nil {
		s.log.Warn("image cache read failed", zap.String("word", word), zap.Error(err))
	}
	if cached != "" {
		return cached, nil
	}

	if s.media == nil {
		return "", ErrAIUnavailable
	}

	dataURL, err := s.media.GenerateWordIcon(ctx, word, definition)
	if err != nil {
		return "", err
	}

	if err := s.cache.SaveImage(ctx, word, dataURL); err != nil {
		s.log.Warn("image cache write failed", zap.String("word", word), zap.Error(err))
	}

	return dataURL, nil
}
