package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/thangpham393/chinese-vocabulary-learning/internal/models"
)

type VocabularyR struct {
	db QueryI
}

func NewVocabularyRepository(db QueryI) *VocabularyR {
	return &VocabularyR{db: db}
}

// ReplaceVocabulary makes the lesson's vocabulary equal to items. Each row is
// upserted on its (lesson_id, word) natural key, then rows whose word is not
// in the new set are deleted. At no point between steps is the lesson left
// with zero vocabulary, and replaying the same items is a no-op.
func (v *VocabularyR) ReplaceVocabulary(ctx context.Context, lessonID string, items []models.VocabularyItem) error {
	upsert := `INSERT INTO vocabulary
			(id, lesson_id, word, pinyin, part_of_speech, definition_vi, definition_en, example_zh, example_vi, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (lesson_id, word)
		DO UPDATE SET
			pinyin = EXCLUDED.pinyin,
			part_of_speech = EXCLUDED.part_of_speech,
			definition_vi = EXCLUDED.definition_vi,
			definition_en = EXCLUDED.definition_en,
			example_zh = EXCLUDED.example_zh,
			example_vi = EXCLUDED.example_vi,
			image_url = EXCLUDED.image_url
		`

	for _, item := range items {
		_, err := v.db.ExecContext(ctx, upsert,
			item.ID, lessonID, item.Word, item.Pinyin, item.PartOfSpeech,
			item.DefinitionVi, item.DefinitionEn, item.ExampleZh, item.ExampleVi, item.ImageURL)
		if err != nil {
			return fmt.Errorf("failed upsert vocabulary %s for lesson %s: %w", item.Word, lessonID, err)
		}
	}

	if len(items) == 0 {
		_, err := v.db.ExecContext(ctx, `DELETE FROM vocabulary WHERE lesson_id = $1`, lessonID)
		if err != nil {
			return fmt.Errorf("failed clear vocabulary for lesson %s: %w", lessonID, err)
		}
		return nil
	}

	placeholders := make([]string, 0, len(items))
	args := make([]interface{}, 0, len(items)+1)
	args = append(args, lessonID)
	for i, item := range items {
		placeholders = append(placeholders, fmt.Sprintf("$%d", i+2))
		args = append(args, item.Word)
	}

	stale := fmt.Sprintf(`DELETE FROM vocabulary WHERE lesson_id = $1 AND word NOT IN (%s)`,
		strings.Join(placeholders, ", "))
	if _, err := v.db.ExecContext(ctx, stale, args...); err != nil {
		return fmt.Errorf("failed delete stale vocabulary for lesson %s: %w", lessonID, err)
	}

	return nil
}

func (v *VocabularyR) VocabularyByLesson(ctx context.Context, lessonID string) ([]models.VocabularyItem, error) {
	query := `
	SELECT id, lesson_id, word, pinyin, part_of_speech, definition_vi, definition_en, example_zh, example_vi, image_url
		FROM vocabulary
		WHERE lesson_id = $1
		ORDER BY id ASC
	`

	items := make([]models.VocabularyItem, 0)
	err := v.db.SelectContext(ctx, &items, query, lessonID)
	if err != nil {
		return nil, fmt.Errorf("failed select vocabulary for lesson %s: %w", lessonID, err)
	}

	return items, nil
}
