package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScope_Key(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		scope Scope
		want  string
	}{
		{
			name:  "hsk level",
			scope: HSKScope(1),
			want:  "hsk1",
		},
		{
			name:  "yct level",
			scope: YCTScope(2),
			want:  "yct2",
		},
		{
			name:  "topic",
			scope: TopicScope("food"),
			want:  "topic:food",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.scope.Key())
		})
	}
}

func TestParseScope(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		key     string
		want    Scope
		wantErr bool
	}{
		{
			name: "hsk",
			key:  "hsk3",
			want: HSKScope(3),
		},
		{
			name: "yct",
			key:  "yct4",
			want: YCTScope(4),
		},
		{
			name: "topic",
			key:  "topic:travel",
			want: TopicScope("travel"),
		},
		{
			name:    "hsk level out of range",
			key:     "hsk7",
			wantErr: true,
		},
		{
			name:    "yct level out of range",
			key:     "yct5",
			wantErr: true,
		},
		{
			name:    "hsk level not a number",
			key:     "hskx",
			wantErr: true,
		},
		{
			name:    "empty topic id",
			key:     "topic:",
			wantErr: true,
		},
		{
			name:    "unknown prefix",
			key:     "level1",
			wantErr: true,
		},
		{
			name:    "empty key",
			key:     "",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseScope(tt.key)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseScope_RoundTrip(t *testing.T) {
	t.Parallel()

	scopes := []Scope{
		HSKScope(1), HSKScope(6),
		YCTScope(1), YCTScope(4),
		TopicScope("food"), TopicScope("school"),
	}
	for _, scope := range scopes {
		got, err := ParseScope(scope.Key())
		require.NoError(t, err)
		assert.Equal(t, scope, got)
	}
}

func TestCategory_ScopeOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		category Category
		want     Scope
	}{
		{
			name:     "hsk category",
			category: Category{ID: "hsk-2", Type: CategoryHSK, Level: 2},
			want:     HSKScope(2),
		},
		{
			name:     "yct category",
			category: Category{ID: "yct-1", Type: CategoryYCT, Level: 1},
			want:     YCTScope(1),
		},
		{
			name:     "topic category keys on id",
			category: Category{ID: "food", Type: CategoryTopic},
			want:     TopicScope("food"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.category.ScopeOf())
		})
	}
}
