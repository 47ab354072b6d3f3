// Package seed holds the compile-time curated content: the category grid and
// the built-in lessons shipped with the application. Nothing here is ever
// persisted or mutated at runtime.
package seed

import (
	"github.com/thangpham393/chinese-vocabulary-learning/internal/models"
)

var hskCategories = []models.Category{
	{ID: "hsk1", Name: "HSK 1", Type: models.CategoryHSK, Level: 1, Icon: "🌱"},
	{ID: "hsk2", Name: "HSK 2", Type: models.CategoryHSK, Level: 2, Icon: "🌿"},
	{ID: "hsk3", Name: "HSK 3", Type: models.CategoryHSK, Level: 3, Icon: "🌳"},
	{ID: "hsk4", Name: "HSK 4", Type: models.CategoryHSK, Level: 4, Icon: "⛰️"},
	{ID: "hsk5", Name: "HSK 5", Type: models.CategoryHSK, Level: 5, Icon: "🏔️"},
	{ID: "hsk6", Name: "HSK 6", Type: models.CategoryHSK, Level: 6, Icon: "🏆"},
}

var yctCategories = []models.Category{
	{ID: "yct1", Name: "YCT 1", Type: models.CategoryYCT, Level: 1, Icon: "🐣"},
	{ID: "yct2", Name: "YCT 2", Type: models.CategoryYCT, Level: 2, Icon: "🐥"},
	{ID: "yct3", Name: "YCT 3", Type: models.CategoryYCT, Level: 3, Icon: "🐤"},
	{ID: "yct4", Name: "YCT 4", Type: models.CategoryYCT, Level: 4, Icon: "🦅"},
}

var topicCategories = []models.Category{
	{ID: "food", Name: "Ẩm thực", Type: models.CategoryTopic, Icon: "🥟"},
	{ID: "travel", Name: "Du lịch", Type: models.CategoryTopic, Icon: "✈️"},
	{ID: "business", Name: "Kinh doanh", Type: models.CategoryTopic, Icon: "💼"},
	{ID: "daily", Name: "Đời sống", Type: models.CategoryTopic, Icon: "🏠"},
	{ID: "tech", Name: "Công nghệ", Type: models.CategoryTopic, Icon: "💻"},
	{ID: "emotion", Name: "Cảm xúc", Type: models.CategoryTopic, Icon: "❤️"},
}

// Categories returns the full static category grid in display order.
func Categories() []models.Category {
	all := make([]models.Category, 0, len(hskCategories)+len(yctCategories)+len(topicCategories))
	all = append(all, hskCategories...)
	all = append(all, yctCategories...)
	all = append(all, topicCategories...)
	return all
}

// Curated lessons, keyed by scope key. Most scopes ship empty and are filled
// by users through smart import.
var staticLessons = map[string][]models.Lesson{
	"hsk1": {
		{ID: "hsk1-static-1", Scope: "hsk1", Number: 1, Title: "Chào hỏi", Description: "5 từ mới"},
	},
}

var staticVocabulary = map[string][]models.VocabularyItem{
	"hsk1-static-1": {
		{ID: "hsk1-static-1-0", LessonID: "hsk1-static-1", Word: "你好", Pinyin: "nǐ hǎo", PartOfSpeech: "interj", DefinitionVi: "xin chào", DefinitionEn: "hello", ExampleZh: "你好，我叫小明。", ExampleVi: "Xin chào, tôi tên là Tiểu Minh."},
		{ID: "hsk1-static-1-1", LessonID: "hsk1-static-1", Word: "谢谢", Pinyin: "xièxie", PartOfSpeech: "v", DefinitionVi: "cảm ơn", DefinitionEn: "thank you", ExampleZh: "谢谢你的帮助。", ExampleVi: "Cảm ơn sự giúp đỡ của bạn."},
		{ID: "hsk1-static-1-2", LessonID: "hsk1-static-1", Word: "再见", Pinyin: "zàijiàn", PartOfSpeech: "v", DefinitionVi: "tạm biệt", DefinitionEn: "goodbye", ExampleZh: "明天见，再见！", ExampleVi: "Hẹn gặp ngày mai, tạm biệt!"},
		{ID: "hsk1-static-1-3", LessonID: "hsk1-static-1", Word: "对不起", Pinyin: "duìbuqǐ", PartOfSpeech: "v", DefinitionVi: "xin lỗi", DefinitionEn: "sorry", ExampleZh: "对不起，我来晚了。", ExampleVi: "Xin lỗi, tôi đến muộn."},
		{ID: "hsk1-static-1-4", LessonID: "hsk1-static-1", Word: "没关系", Pinyin: "méi guānxi", PartOfSpeech: "phrase", DefinitionVi: "không sao", DefinitionEn: "it's okay", ExampleZh: "没关系，慢慢来。", ExampleVi: "Không sao, cứ từ từ."},
	},
}

// Store hands out the curated content. It exists so consumers can take it as
// an interface and substitute fixtures in tests.
type Store struct{}

func NewStore() Store {
	return Store{}
}

func (Store) Categories() []models.Category {
	return Categories()
}

// Lessons returns the curated lessons for a scope key, or nil.
func (Store) Lessons(scopeKey string) []models.Lesson {
	return staticLessons[scopeKey]
}

// Vocabulary returns the curated vocabulary for a lesson id. The second
// return reports whether the id belongs to curated content at all; curated
// content always wins over dynamic content with the same id.
func (Store) Vocabulary(lessonID string) ([]models.VocabularyItem, bool) {
	items, ok := staticVocabulary[lessonID]
	return items, ok
}
