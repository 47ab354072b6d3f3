package models

// Lesson is a titled, numbered unit of study within one scope.
type Lesson struct {
	ID          string `db:"id" json:"id"`
	Scope       string `db:"scope" json:"scope"`
	Number      int    `db:"number" json:"number"`
	Title       string `db:"title" json:"title"`
	Description string `db:"description" json:"description"`
}

// VocabularyItem is one dictionary entry belonging to exactly one lesson.
// Every field except ImageURL is always present in persisted form; Word is
// never empty.
type VocabularyItem struct {
	ID           string `db:"id" json:"id"`
	LessonID     string `db:"lesson_id" json:"lessonId"`
	Word         string `db:"word" json:"word"`
	Pinyin       string `db:"pinyin" json:"pinyin"`
	PartOfSpeech string `db:"part_of_speech" json:"partOfSpeech"`
	DefinitionVi string `db:"definition_vi" json:"definitionVi"`
	DefinitionEn string `db:"definition_en" json:"definitionEn"`
	ExampleZh    string `db:"example_zh" json:"exampleZh"`
	ExampleVi    string `db:"example_vi" json:"exampleVi"`
	ImageURL     string `db:"image_url" json:"imageUrl,omitempty"`
}

type Stats struct {
	TotalLessons int `db:"total_lessons" json:"totalLessons"`
	TotalWords   int `db:"total_words" json:"totalWords"`
}
