package ratingrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/tuanvm/bepxu/internal/domain"
	"github.com/tuanvm/bepxu/internal/pg"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

func TestRepository_Submit(t *testing.T) {
	repo, mock, tx := NewMock(t)

	prevQuery := regexp.QuoteMeta(`SELECT score FROM menu_ratings WHERE user_id = $1 AND menu_id = $2 FOR UPDATE`)
	upsertQuery := regexp.QuoteMeta(`INSERT INTO menu_ratings (user_id, menu_id, score, comment) VALUES ($1, $2, $3, $4) ON CONFLICT (user_id, menu_id) DO UPDATE SET score = EXCLUDED.score, comment = EXCLUDED.comment, updated_at = now()`)
	firstFoldQuery := regexp.QuoteMeta(`UPDATE menus SET rating_sum = rating_sum + $1, rating_count = rating_count + 1 WHERE id = $2 RETURNING rating_sum, rating_count`)
	refoldQuery := regexp.QuoteMeta(`UPDATE menus SET rating_sum = rating_sum - $1 + $2 WHERE id = $3 RETURNING rating_sum, rating_count`)

	rating := &domain.Rating{UserID: 1, MenuID: 10, Score: 4, Comment: "ngon"}

	tests := []struct {
		name      string
		mockSetup func()
		sum       int64
		count     int64
		expectErr error
	}{
		{
			name: "First rating increments the count",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectQuery(prevQuery).
						WithArgs(1, 10).
						WillReturnError(pgx.ErrNoRows)
					mock.ExpectExec(upsertQuery).
						WithArgs(1, 10, 4, "ngon").
						WillReturnResult(pgxmock.NewResult("INSERT", 1))
					mock.ExpectQuery(firstFoldQuery).
						WithArgs(4, 10).
						WillReturnRows(pgxmock.NewRows([]string{"rating_sum", "rating_count"}).AddRow(int64(4), int64(1)))
					return fn(ctx)
				})
			},
			sum:   4,
			count: 1,
		},
		{
			name: "Resubmission subtracts the prior score and keeps the count",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					prior := 2
					mock.ExpectQuery(prevQuery).
						WithArgs(1, 10).
						WillReturnRows(pgxmock.NewRows([]string{"score"}).AddRow(&prior))
					mock.ExpectExec(upsertQuery).
						WithArgs(1, 10, 4, "ngon").
						WillReturnResult(pgxmock.NewResult("INSERT", 1))
					mock.ExpectQuery(refoldQuery).
						WithArgs(2, 4, 10).
						WillReturnRows(pgxmock.NewRows([]string{"rating_sum", "rating_count"}).AddRow(int64(7), int64(2)))
					return fn(ctx)
				})
			},
			sum:   7,
			count: 2,
		},
		{
			name: "Menu deleted mid-transaction",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectQuery(prevQuery).
						WithArgs(1, 10).
						WillReturnError(pgx.ErrNoRows)
					mock.ExpectExec(upsertQuery).
						WithArgs(1, 10, 4, "ngon").
						WillReturnResult(pgxmock.NewResult("INSERT", 1))
					mock.ExpectQuery(firstFoldQuery).
						WithArgs(4, 10).
						WillReturnError(pgx.ErrNoRows)
					return fn(ctx)
				})
			},
			expectErr: ErrMenuGone,
		},
		{
			name: "Upsert error",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					mock.ExpectQuery(prevQuery).
						WithArgs(1, 10).
						WillReturnError(pgx.ErrNoRows)
					mock.ExpectExec(upsertQuery).
						WithArgs(1, 10, 4, "ngon").
						WillReturnError(errors.New("database error"))
					return fn(ctx)
				})
			},
			expectErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			sum, count, err := repo.Submit(context.Background(), rating)

			if tt.expectErr != nil {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.sum, sum)
				assert.Equal(t, tt.count, count)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

type priorScoreRow struct{ score int }

func (r priorScoreRow) Scan(dest ...any) error {
	score := r.score
	*(dest[0].(**int)) = &score
	return nil
}

type aggregateRow struct{ sum, count int64 }

func (r aggregateRow) Scan(dest ...any) error {
	*(dest[0].(*int64)) = r.sum
	*(dest[1].(*int64)) = r.count
	return nil
}

// A resubmission must put exactly one fold statement on the transaction's
// connection; a stray count-incrementing UPDATE would both inflate the
// aggregate and leave an unconsumed result set behind. The strict mock
// fails on any statement beyond the three expected here.
func TestRepository_SubmitResubmissionFoldsOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db := pg.NewMockDatabase(ctrl)
	tx := pg.NewMockTXManager(ctrl)
	repo := New(db, tx)

	tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
		return fn(ctx)
	})
	db.EXPECT().QueryRow(gomock.Any(), gomock.Any(), 1, 10).Return(priorScoreRow{score: 2}).Times(1)
	db.EXPECT().Exec(gomock.Any(), gomock.Any(), 1, 10, 4, "ngon").Return(pgconn.NewCommandTag("INSERT 0 1"), nil).Times(1)
	db.EXPECT().QueryRow(gomock.Any(), gomock.Any(), 2, 4, 10).Return(aggregateRow{sum: 7, count: 2}).Times(1)

	sum, count, err := repo.Submit(context.Background(), &domain.Rating{UserID: 1, MenuID: 10, Score: 4, Comment: "ngon"})
	assert.NoError(t, err)
	assert.Equal(t, int64(7), sum)
	assert.Equal(t, int64(2), count)
}

func TestRepository_Get(t *testing.T) {
	repo, mock, _ := NewMock(t)

	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expected  *domain.Rating
		expectErr bool
	}{
		{
			name: "Returns the rating",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"user_id", "menu_id", "score", "comment", "created_at", "updated_at"}).
					AddRow(1, 10, 4, "ngon", now, now)
				mock.ExpectQuery("SELECT user_id, menu_id, score, comment").
					WithArgs(1, 10).
					WillReturnRows(rows)
			},
			expected: &domain.Rating{UserID: 1, MenuID: 10, Score: 4, Comment: "ngon", CreatedAt: now, UpdatedAt: now},
		},
		{
			name: "No rating yet returns nil",
			mockSetup: func() {
				mock.ExpectQuery("SELECT user_id, menu_id, score, comment").
					WithArgs(1, 10).
					WillReturnError(pgx.ErrNoRows)
			},
			expected: nil,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery("SELECT user_id, menu_id, score, comment").
					WithArgs(1, 10).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			rating, err := repo.Get(context.Background(), 1, 10)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, rating)
			}
		})
	}
}

func TestRepository_ListForMenu(t *testing.T) {
	repo, mock, _ := NewMock(t)

	now := time.Now()

	t.Run("Returns ratings newest first", func(t *testing.T) {
		rows := pgxmock.NewRows([]string{"user_id", "menu_id", "score", "comment", "created_at", "updated_at"}).
			AddRow(2, 10, 5, "tuyet voi", now, now).
			AddRow(1, 10, 4, "ngon", now, now.Add(-time.Hour))
		mock.ExpectQuery("SELECT user_id, menu_id, score, comment").
			WithArgs(10).
			WillReturnRows(rows)

		ratings, err := repo.ListForMenu(context.Background(), 10)
		assert.NoError(t, err)
		assert.Len(t, ratings, 2)
		assert.Equal(t, 2, ratings[0].UserID)
		assert.Equal(t, 5, ratings[0].Score)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery("SELECT user_id, menu_id, score, comment").
			WithArgs(10).
			WillReturnError(errors.New("database error"))

		ratings, err := repo.ListForMenu(context.Background(), 10)
		assert.Error(t, err)
		assert.Nil(t, ratings)
	})
}
