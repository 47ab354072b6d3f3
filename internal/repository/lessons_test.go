package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thangpham393/chinese-vocabulary-learning/internal/models"
	mock_repository "github.com/thangpham393/chinese-vocabulary-learning/internal/repository/mock"
)

func newLessonsMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_repository.MockQueryI)) *LessonsR {
	db := mock_repository.NewMockQueryI(ctrl)
	if setupMock != nil {
		setupMock(db)
	}

	return &LessonsR{db: db}
}

func TestLessonsR_UpsertLesson(t *testing.T) {
	t.Parallel()

	type args struct {
		ctx    context.Context
		lesson models.Lesson
	}
	tests := []struct {
		name    string
		args    args
		f       func(*mock_repository.MockQueryI)
		wantErr bool
	}{
		{
			name: "success",
			args: args{
				ctx: context.Background(),
				lesson: models.Lesson{
					ID:    "lesson-1",
					Scope: "hsk1",
					Title: "Chào hỏi",
				},
			},
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
			},
			wantErr: false,
		},
		{
			name: "error exec",
			args: args{
				ctx:    context.Background(),
				lesson: models.Lesson{ID: "lesson-1"},
			},
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("error exec"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := newLessonsMock(t, ctrl, tt.f)

			err := repo.UpsertLesson(tt.args.ctx, tt.args.lesson)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestLessonsR_LessonsByScope(t *testing.T) {
	t.Parallel()

	lessons := []models.Lesson{
		{ID: "a", Scope: "hsk1", Number: 1, Title: "Chào hỏi"},
		{ID: "b", Scope: "hsk1", Number: 2, Title: "Gia đình"},
	}

	type args struct {
		ctx      context.Context
		scopeKey string
	}
	tests := []struct {
		name    string
		args    args
		f       func(*mock_repository.MockQueryI)
		want    []models.Lesson
		wantErr bool
	}{
		{
			name: "success",
			args: args{
				ctx:      context.Background(),
				scopeKey: "hsk1",
			},
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().SelectContext(gomock.Any(), gomock.AssignableToTypeOf(&[]models.Lesson{}), gomock.Any(), "hsk1").
					DoAndReturn(func(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
						// Equal numbers must break ties on insertion time, not
						// on random lesson ids.
						assert.Contains(t, query, "ORDER BY number ASC, created_at ASC, id ASC")
						*dest.(*[]models.Lesson) = lessons
						return nil
					})
			},
			want:    lessons,
			wantErr: false,
		},
		{
			name: "success: empty scope",
			args: args{
				ctx:      context.Background(),
				scopeKey: "yct3",
			},
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().SelectContext(gomock.Any(), gomock.Any(), gomock.Any(), "yct3").Return(nil)
			},
			want:    []models.Lesson{},
			wantErr: false,
		},
		{
			name: "error select",
			args: args{
				ctx:      context.Background(),
				scopeKey: "hsk1",
			},
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().SelectContext(gomock.Any(), gomock.Any(), gomock.Any(), "hsk1").Return(errors.New("error select"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := newLessonsMock(t, ctrl, tt.f)

			got, err := repo.LessonsByScope(tt.args.ctx, tt.args.scopeKey)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLessonsR_DeleteLessonCascade(t *testing.T) {
	t.Parallel()

	type args struct {
		ctx      context.Context
		lessonID string
	}
	tests := []struct {
		name    string
		args    args
		f       func(*mock_repository.MockQueryI)
		wantErr bool
	}{
		{
			name: "success",
			args: args{
				ctx:      context.Background(),
				lessonID: "lesson-1",
			},
			f: func(mqi *mock_repository.MockQueryI) {
				gomock.InOrder(
					mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), "lesson-1").Return(nil, nil),
					mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), "lesson-1").Return(nil, nil),
				)
			},
			wantErr: false,
		},
		{
			name: "error delete vocabulary",
			args: args{
				ctx:      context.Background(),
				lessonID: "lesson-1",
			},
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), "lesson-1").Return(nil, errors.New("error exec"))
			},
			wantErr: true,
		},
		{
			name: "error delete lesson",
			args: args{
				ctx:      context.Background(),
				lessonID: "lesson-1",
			},
			f: func(mqi *mock_repository.MockQueryI) {
				gomock.InOrder(
					mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), "lesson-1").Return(nil, nil),
					mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), "lesson-1").Return(nil, errors.New("error exec")),
				)
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := newLessonsMock(t, ctrl, tt.f)

			err := repo.DeleteLessonCascade(tt.args.ctx, tt.args.lessonID)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestLessonsR_Counts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		f       func(*mock_repository.MockQueryI)
		want    models.Stats
		wantErr bool
	}{
		{
			name: "success",
			f: func(mqi *mock_repository.MockQueryI) {
				gomock.InOrder(
					mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any()).
						DoAndReturn(func(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
							*dest.(*int) = 3
							return nil
						}),
					mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any()).
						DoAndReturn(func(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
							*dest.(*int) = 42
							return nil
						}),
				)
			},
			want:    models.Stats{TotalLessons: 3, TotalWords: 42},
			wantErr: false,
		},
		{
			name: "error count lessons",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("error get"))
			},
			wantErr: true,
		},
		{
			name: "error count vocabulary",
			f: func(mqi *mock_repository.MockQueryI) {
				gomock.InOrder(
					mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil),
					mqi.EXPECT().GetContext(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("error get")),
				)
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := newLessonsMock(t, ctrl, tt.f)

			got, err := repo.Counts(context.Background())
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
