package service

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thangpham393/chinese-vocabulary-learning/internal/models"
	mock_service "github.com/thangpham393/chinese-vocabulary-learning/internal/service/mock"
	"go.uber.org/zap"
)

func newStudyServiceMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_service.MockAPII, *mock_service.MockCacheI)) *StudyS {
	api := mock_service.NewMockAPII(ctrl)
	cache := mock_service.NewMockCacheI(ctrl)
	if setupMock != nil {
		setupMock(api, cache)
	}

	return NewStudyService(api, cache, zap.NewNop())
}

func TestNewDeck(t *testing.T) {
	t.Parallel()

	items := []models.VocabularyItem{
		{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}, {ID: "e"},
	}
	original := make([]models.VocabularyItem, len(items))
	copy(original, items)

	deck := NewDeck(items)

	// The deck is a permutation and the input keeps its order.
	assert.Len(t, deck, len(items))
	assert.ElementsMatch(t, items, deck)
	assert.Equal(t, original, items)

	assert.Empty(t, NewDeck(nil))
}

func TestNormalizeDictation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "fullwidth punctuation stripped",
			text: "你好，世界！",
			want: "你好世界",
		},
		{
			name: "ascii punctuation and spaces stripped",
			text: " Ni hao, shi jie! ",
			want: "nihaoshijie",
		},
		{
			name: "ideographic space stripped",
			text: "你好　世界",
			want: "你好世界",
		},
		{
			name: "empty",
			text: "，。！",
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, NormalizeDictation(tt.text))
		})
	}
}

func TestStudyS_CheckDictation(t *testing.T) {
	t.Parallel()

	item := models.VocabularyItem{Word: "你好", ExampleZh: "你好，老师！"}

	tests := []struct {
		name   string
		answer string
		want   bool
	}{
		{
			name:   "exact",
			answer: "你好，老师！",
			want:   true,
		},
		{
			name:   "punctuation and spacing ignored",
			answer: " 你好 老师 ",
			want:   true,
		},
		{
			name:   "wrong characters",
			answer: "你好，同学！",
			want:   false,
		},
		{
			name:   "empty answer never matches",
			answer: "，。",
			want:   false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s := newStudyServiceMock(t, ctrl, nil)

			assert.Equal(t, tt.want, s.CheckDictation(tt.answer, item))
		})
	}
}

func TestStudyS_CheckReview(t *testing.T) {
	t.Parallel()

	item := models.VocabularyItem{Word: "你好"}

	tests := []struct {
		name   string
		answer string
		want   bool
	}{
		{
			name:   "exact",
			answer: "你好",
			want:   true,
		},
		{
			name:   "surrounding whitespace excused",
			answer: " 你好\n",
			want:   true,
		},
		{
			name:   "pinyin is not the word",
			answer: "ni hao",
			want:   false,
		},
		{
			name:   "empty",
			answer: "",
			want:   false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s := newStudyServiceMock(t, ctrl, nil)

			assert.Equal(t, tt.want, s.CheckReview(tt.answer, item))
		})
	}
}

func TestStudyS_Illustrate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		f       func(*mock_service.MockAPII, *mock_service.MockCacheI)
		want    string
		wantErr bool
	}{
		{
			name: "cache hit skips generation",
			f: func(ma *mock_service.MockAPII, mc *mock_service.MockCacheI) {
				mc.EXPECT().Image(gomock.Any(), "你好").Return("data:image/png;base64,AAAA", nil)
			},
			want: "data:image/png;base64,AAAA",
		},
		{
			name: "miss generates and memoizes",
			f: func(ma *mock_service.MockAPII, mc *mock_service.MockCacheI) {
				mc.EXPECT().Image(gomock.Any(), "你好").Return("", nil)
				ma.EXPECT().GenerateWordIcon(gomock.Any(), "你好", "xin chào").Return("data:image/png;base64,BBBB", nil)
				mc.EXPECT().SaveImage(gomock.Any(), "你好", "data:image/png;base64,BBBB").Return(nil)
			},
			want: "data:image/png;base64,BBBB",
		},
		{
			name: "cache write failure is not fatal",
			f: func(ma *mock_service.MockAPII, mc *mock_service.MockCacheI) {
				mc.EXPECT().Image(gomock.Any(), "你好").Return("", nil)
				ma.EXPECT().GenerateWordIcon(gomock.Any(), "你好", "xin chào").Return("data:image/png;base64,BBBB", nil)
				mc.EXPECT().SaveImage(gomock.Any(), "你好", gomock.Any()).Return(errors.New("disk full"))
			},
			want: "data:image/png;base64,BBBB",
		},
		{
			name: "generation failure",
			f: func(ma *mock_service.MockAPII, mc *mock_service.MockCacheI) {
				mc.EXPECT().Image(gomock.Any(), "你好").Return("", nil)
				ma.EXPECT().GenerateWordIcon(gomock.Any(), "你好", "xin chào").Return("", errors.New("quota exceeded"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s := newStudyServiceMock(t, ctrl, tt.f)

			got, err := s.Illustrate(context.Background(), "你好", "xin chào")
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStudyS_Unconfigured(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cache := mock_service.NewMockCacheI(ctrl)
	cache.EXPECT().Image(gomock.Any(), "你好").Return("data:image/png;base64,AAAA", nil)
	cache.EXPECT().Image(gomock.Any(), "再见").Return("", nil)

	s := NewStudyService(nil, cache, zap.NewNop())

	_, err := s.Narrate(context.Background(), "你好")
	require.ErrorIs(t, err, ErrAIUnavailable)

	// A memoized image is still served without Gemini.
	got, err := s.Illustrate(context.Background(), "你好", "xin chào")
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,AAAA", got)

	_, err = s.Illustrate(context.Background(), "再见", "tạm biệt")
	require.ErrorIs(t, err, ErrAIUnavailable)
}

func TestStudyS_Narrate(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pcm := []byte{0x01, 0x02}
	s := newStudyServiceMock(t, ctrl, func(ma *mock_service.MockAPII, mc *mock_service.MockCacheI) {
		ma.EXPECT().SynthesizeSpeech(gomock.Any(), "你好").Return(pcm, nil)
	})

	got, err := s.Narrate(context.Background(), "你好")
	require.NoError(t, err)
	assert.Equal(t, pcm, got)
}
