package catalogrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/tuanvm/bepxu/internal/domain"
	"github.com/tuanvm/bepxu/internal/pg"
	"go.uber.org/zap"
)

// Repository is the read-only catalog view: menu prices, lock flags and
// rating aggregates, plus video lookups. Nothing here mutates state.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) GetMenu(ctx context.Context, menuID int) (*domain.Menu, error) {
	query := `
        SELECT id, name, description, image_url, price, is_locked, rating_sum, rating_count, created_at
        FROM menus
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, menuID)

	var menu domain.Menu
	err := row.Scan(&menu.ID, &menu.Name, &menu.Description, &menu.ImageURL, &menu.Price, &menu.Locked, &menu.RatingSum, &menu.RatingCount, &menu.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find menu", zap.Error(err))
		return nil, err
	}
	return &menu, nil
}

func (r *Repository) ListMenus(ctx context.Context) ([]domain.Menu, error) {
	query := `
        SELECT id, name, description, image_url, price, is_locked, rating_sum, rating_count, created_at
        FROM menus
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get menus", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var menus []domain.Menu
	for rows.Next() {
		var menu domain.Menu
		err := rows.Scan(&menu.ID, &menu.Name, &menu.Description, &menu.ImageURL, &menu.Price, &menu.Locked, &menu.RatingSum, &menu.RatingCount, &menu.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan menu row", zap.Error(err))
			return nil, err
		}
		menus = append(menus, menu)
	}
	return menus, nil
}

func (r *Repository) GetVideo(ctx context.Context, videoID int) (*domain.Video, error) {
	query := `
        SELECT id, title, source_url, duration_seconds, status, created_at
        FROM videos
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, videoID)

	var video domain.Video
	err := row.Scan(&video.ID, &video.Title, &video.SourceURL, &video.DurationSeconds, &video.Status, &video.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find video", zap.Error(err))
		return nil, err
	}
	return &video, nil
}

func (r *Repository) ListVideos(ctx context.Context) ([]domain.Video, error) {
	query := `
        SELECT id, title, source_url, duration_seconds, status, created_at
        FROM videos
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get videos", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var videos []domain.Video
	for rows.Next() {
		var video domain.Video
		err := rows.Scan(&video.ID, &video.Title, &video.SourceURL, &video.DurationSeconds, &video.Status, &video.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan video row", zap.Error(err))
			return nil, err
		}
		videos = append(videos, video)
	}
	return videos, nil
}
