package seed

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thangpham393/chinese-vocabulary-learning/internal/models"
)

func TestCategories(t *testing.T) {
	t.Parallel()

	cats := Categories()
	require.NotEmpty(t, cats)

	seen := make(map[string]bool, len(cats))
	for _, c := range cats {
		assert.NotEmpty(t, c.ID)
		assert.NotEmpty(t, c.Name)
		assert.NotEmpty(t, c.Icon)
		assert.False(t, seen[c.ID], "duplicate category id %s", c.ID)
		seen[c.ID] = true

		// Every category resolves to a scope whose key parses back.
		scope := c.ScopeOf()
		parsed, err := models.ParseScope(scope.Key())
		require.NoError(t, err, "category %s", c.ID)
		assert.Equal(t, scope, parsed)
	}
}

func TestStore_CuratedContentConsistent(t *testing.T) {
	t.Parallel()

	store := NewStore()

	for scopeKey, lessons := range staticLessons {
		for _, lesson := range lessons {
			assert.Equal(t, scopeKey, lesson.Scope)

			items, ok := store.Vocabulary(lesson.ID)
			require.True(t, ok, "lesson %s has no vocabulary", lesson.ID)
			require.NotEmpty(t, items, "lesson %s is empty", lesson.ID)

			assert.Equal(t, fmt.Sprintf("%d từ mới", len(items)), lesson.Description)
			for _, item := range items {
				assert.Equal(t, lesson.ID, item.LessonID)
				assert.NotEmpty(t, item.Word)
				assert.NotEmpty(t, item.Pinyin)
			}
		}
	}
}

func TestStore_UnknownLesson(t *testing.T) {
	t.Parallel()

	store := NewStore()

	items, ok := store.Vocabulary("no-such-lesson")
	assert.False(t, ok)
	assert.Empty(t, items)

	assert.Empty(t, store.Lessons("hsk6"))
}
