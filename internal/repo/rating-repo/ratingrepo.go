package ratingrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/tuanvm/bepxu/internal/domain"
	"github.com/tuanvm/bepxu/internal/pg"
	"go.uber.org/zap"
)

// ErrMenuGone the menu aggregate row disappeared mid-transaction.
var ErrMenuGone = errors.New("rating: menu gone")

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

// Submit folds one rating into the menu aggregate. The per-user rating row
// is locked first, so resubmissions by the same user are serialized and the
// old score is subtracted before the new one is added. The aggregate itself
// changes in a single UPDATE, which is what keeps two different users'
// concurrent submissions from losing each other's fold.
func (r *Repository) Submit(ctx context.Context, rating *domain.Rating) (int64, int64, error) {
	prevQuery := `
        SELECT score
        FROM menu_ratings
        WHERE user_id = $1 AND menu_id = $2
        FOR UPDATE
    `
	upsertQuery := `
        INSERT INTO menu_ratings (user_id, menu_id, score, comment)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (user_id, menu_id)
        DO UPDATE SET score = EXCLUDED.score, comment = EXCLUDED.comment, updated_at = now()
    `
	firstFoldQuery := `
        UPDATE menus
        SET rating_sum = rating_sum + $1, rating_count = rating_count + 1
        WHERE id = $2
        RETURNING rating_sum, rating_count
    `
	refoldQuery := `
        UPDATE menus
        SET rating_sum = rating_sum - $1 + $2
        WHERE id = $3
        RETURNING rating_sum, rating_count
    `
	var sum, count int64
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		var prev *int
		err := r.db.QueryRow(ctx, prevQuery, rating.UserID, rating.MenuID).Scan(&prev)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			zap.L().Error("can't read prior rating", zap.Error(err))
			return err
		}

		if _, err := r.db.Exec(ctx, upsertQuery, rating.UserID, rating.MenuID, rating.Score, rating.Comment); err != nil {
			zap.L().Error("can't save rating", zap.Error(err))
			return err
		}

		// exactly one fold statement per submission; the prior row decides which
		var row pgx.Row
		if prev == nil {
			row = r.db.QueryRow(ctx, firstFoldQuery, rating.Score, rating.MenuID)
		} else {
			row = r.db.QueryRow(ctx, refoldQuery, *prev, rating.Score, rating.MenuID)
		}
		if err := row.Scan(&sum, &count); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrMenuGone
			}
			zap.L().Error("can't fold rating into aggregate", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	return sum, count, nil
}

func (r *Repository) Get(ctx context.Context, userID, menuID int) (*domain.Rating, error) {
	query := `
        SELECT user_id, menu_id, score, comment, created_at, updated_at
        FROM menu_ratings
        WHERE user_id = $1 AND menu_id = $2
    `
	row := r.db.QueryRow(ctx, query, userID, menuID)

	var rating domain.Rating
	err := row.Scan(&rating.UserID, &rating.MenuID, &rating.Score, &rating.Comment, &rating.CreatedAt, &rating.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find rating", zap.Error(err))
		return nil, err
	}
	return &rating, nil
}

func (r *Repository) ListForMenu(ctx context.Context, menuID int) ([]domain.Rating, error) {
	query := `
        SELECT user_id, menu_id, score, comment, created_at, updated_at
        FROM menu_ratings
        WHERE menu_id = $1
        ORDER BY updated_at DESC
    `
	rows, err := r.db.Query(ctx, query, menuID)
	if err != nil {
		zap.L().Error("can't get ratings", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var ratings []domain.Rating
	for rows.Next() {
		var rating domain.Rating
		err := rows.Scan(&rating.UserID, &rating.MenuID, &rating.Score, &rating.Comment, &rating.CreatedAt, &rating.UpdatedAt)
		if err != nil {
			zap.L().Error("can't scan rating row", zap.Error(err))
			return nil, err
		}
		ratings = append(ratings, rating)
	}
	return ratings, nil
}
