package client

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode"

	"github.com/thangpham393/chinese-vocabulary-learning/internal/config"
	"github.com/thangpham393/chinese-vocabulary-learning/internal/models"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// ErrEnrichmentFailed is returned whenever the model's answer cannot be used
// as-is. Callers must treat it as "the import failed", never as "no words
// were entered".
var ErrEnrichmentFailed = errors.New("AI không thể phân tích danh sách từ")

type GeminiAPI struct {
	apiKey     string
	textModel  string
	imageModel string
	ttsModel   string
	baseURL    string
	httpClient *http.Client
}

func NewGeminiAPI(cfg config.GeminiConfig) *GeminiAPI {
	return &GeminiAPI{
		apiKey:     cfg.APIKey,
		textModel:  cfg.TextModel,
		imageModel: cfg.ImageModel,
		ttsModel:   cfg.TTSModel,
		baseURL:    defaultBaseURL,
		httpClient: http.DefaultClient,
	}
}

func (g *GeminiAPI) generateContent(ctx context.Context, model string, reqBody models.GeminiRequest) (models.GeminiResponse, error) {
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return models.GeminiResponse{}, err
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.baseURL, model, g.apiKey)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(payload))
	if err != nil {
		return models.GeminiResponse{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return models.GeminiResponse{}, err
	}
	defer resp.Body.Close()

	var data models.GeminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return models.GeminiResponse{}, fmt.Errorf("failed decode gemini response: %w", err)
	}

	if data.Error != nil {
		return models.GeminiResponse{}, fmt.Errorf("gemini %s: %s", data.Error.Status, data.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return models.GeminiResponse{}, fmt.Errorf("gemini status %d", resp.StatusCode)
	}

	return data, nil
}

// SplitWordList turns the user's raw text into word tokens, splitting on
// newlines and commas and dropping empty entries. Repeated tokens keep their
// first position only, so one word always maps to one dictionary record.
func SplitWordList(rawText string) []string {
	fields := strings.FieldsFunc(rawText, func(r rune) bool {
		return r == '\n' || r == '\r' || r == ',' || r == '，'
	})

	words := make([]string, 0, len(fields))
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		f = strings.TrimFunc(f, unicode.IsSpace)
		if f == "" {
			continue
		}
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		words = append(words, f)
	}
	return words
}

var vocabularySchema = models.GeminiSchema{
	Type: "ARRAY",
	Items: &models.GeminiSchema{
		Type: "OBJECT",
		Properties: map[string]models.GeminiSchema{
			"word":         {Type: "STRING"},
			"pinyin":       {Type: "STRING"},
			"partOfSpeech": {Type: "STRING"},
			"definitionVi": {Type: "STRING"},
			"definitionEn": {Type: "STRING"},
			"exampleZh":    {Type: "STRING"},
			"exampleVi":    {Type: "STRING"},
		},
		Required: []string{"word", "pinyin", "partOfSpeech", "definitionVi", "definitionEn", "exampleZh", "exampleVi"},
	},
}

// EnrichVocabulary expands a raw word list into full dictionary records with
// one schema-constrained model call. Empty input returns no items and makes
// no call. The model must return exactly one record per submitted word or
// the whole result is rejected.
func (g *GeminiAPI) EnrichVocabulary(ctx context.Context, rawText string) ([]models.VocabularyItem, error) {
	words := SplitWordList(rawText)
	if len(words) == 0 {
		return []models.VocabularyItem{}, nil
	}

	prompt := fmt.Sprintf(`Bạn là một chuyên gia từ điển Tiếng Trung - Việt.
Tôi có danh sách các từ vựng sau: "%s"

Hãy tra cứu và trả về một mảng JSON các đối tượng từ vựng với cấu trúc:
{
  "word": "Chữ Hán",
  "pinyin": "Phiên âm có dấu",
  "partOfSpeech": "Từ loại (n, v, adj...)",
  "definitionVi": "Nghĩa tiếng Việt ngắn gọn",
  "definitionEn": "Short English definition",
  "exampleZh": "Câu ví dụ tiếng Trung",
  "exampleVi": "Dịch nghĩa câu ví dụ"
}

Yêu cầu: Chỉ trả về JSON array, không thêm văn bản giải thích.`, strings.Join(words, ", "))

	schema := vocabularySchema
	resp, err := g.generateContent(ctx, g.textModel, models.GeminiRequest{
		Contents: []models.GeminiContent{{Parts: []models.GeminiPart{{Text: prompt}}}},
		GenerationConfig: &models.GeminiGenerationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   &schema,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEnrichmentFailed, err)
	}

	text := firstText(resp)
	if text == "" {
		return nil, ErrEnrichmentFailed
	}

	var items []models.VocabularyItem
	if err := json.Unmarshal([]byte(text), &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEnrichmentFailed, err)
	}

	if len(items) != len(words) {
		return nil, fmt.Errorf("%w: expected %d items, got %d", ErrEnrichmentFailed, len(words), len(items))
	}

	batch := time.Now().UnixMilli()
	for i := range items {
		if items[i].Word == "" {
			return nil, fmt.Errorf("%w: empty word at index %d", ErrEnrichmentFailed, i)
		}
		// Batch-sequential ids keep the user's input order under lexical sort.
		items[i].ID = fmt.Sprintf("custom-%d-%04d", batch, i)
	}

	return items, nil
}

// GenerateWordIcon asks the image model for a minimalist icon and returns it
// as a PNG data URL.
func (g *GeminiAPI) GenerateWordIcon(ctx context.Context, word, definition string) (string, error) {
	prompt := fmt.Sprintf(`Minimalist 2D icon for Chinese word "%s" (%s). White background.`, word, definition)

	resp, err := g.generateContent(ctx, g.imageModel, models.GeminiRequest{
		Contents: []models.GeminiContent{{Parts: []models.GeminiPart{{Text: prompt}}}},
		GenerationConfig: &models.GeminiGenerationConfig{
			ImageConfig: &models.GeminiImageConfig{AspectRatio: "1:1"},
		},
	})
	if err != nil {
		return "", err
	}

	for _, cand := range resp.Candidates {
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && part.InlineData.Data != "" {
				return "data:image/png;base64," + part.InlineData.Data, nil
			}
		}
	}

	return "", fmt.Errorf("no image data for word %s", word)
}

// SynthesizeSpeech reads the text aloud in Chinese and returns raw 24kHz
// mono 16-bit PCM.
func (g *GeminiAPI) SynthesizeSpeech(ctx context.Context, text string) ([]byte, error) {
	reqBody := models.GeminiRequest{
		Contents: []models.GeminiContent{{Parts: []models.GeminiPart{
			{Text: "Hãy đọc to câu sau bằng tiếng Trung: " + text},
		}}},
		GenerationConfig: &models.GeminiGenerationConfig{
			ResponseModalities: []string{"AUDIO"},
			SpeechConfig: &models.GeminiSpeechConfig{
				VoiceConfig: models.GeminiVoiceConfig{
					PrebuiltVoiceConfig: models.GeminiPrebuiltVoice{VoiceName: "Kore"},
				},
			},
		},
	}

	resp, err := g.generateContent(ctx, g.ttsModel, reqBody)
	if err != nil {
		return nil, err
	}

	for _, cand := range resp.Candidates {
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && part.InlineData.Data != "" {
				audio, err := base64.StdEncoding.DecodeString(part.InlineData.Data)
				if err != nil {
					return nil, fmt.Errorf("failed decode audio: %w", err)
				}
				return audio, nil
			}
		}
	}

	return nil, errors.New("no audio data in response")
}

func firstText(resp models.GeminiResponse) string {
	for _, cand := range resp.Candidates {
		for _, part := range cand.Content.Parts {
			if part.Text != "" {
				return part.Text
			}
		}
	}
	return ""
}
