package videorepo

import (
	"context"

	"github.com/tuanvm/bepxu/internal/domain"
	"github.com/tuanvm/bepxu/internal/pg"
	"go.uber.org/zap"
)

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

// FindForProbing returns videos whose metadata the background poller still
// has to fetch from the media provider.
func (r *Repository) FindForProbing(ctx context.Context, limit uint32) ([]domain.Video, error) {
	query := `
        SELECT id, title, source_url, duration_seconds, status, created_at
        FROM videos
        WHERE status = 'NEW'
        ORDER BY created_at ASC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, int(limit))
	if err != nil {
		zap.L().Error("can't get videos for probing", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var videos []domain.Video
	for rows.Next() {
		var video domain.Video
		err := rows.Scan(&video.ID, &video.Title, &video.SourceURL, &video.DurationSeconds, &video.Status, &video.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan video row for probing", zap.Error(err))
			return nil, err
		}
		videos = append(videos, video)
	}
	return videos, nil
}

func (r *Repository) UpdateMeta(ctx context.Context, video *domain.Video) error {
	query := `
        UPDATE videos
        SET duration_seconds = $1, status = $2
        WHERE id = $3
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := r.db.Exec(ctx, query, video.DurationSeconds, video.Status, video.ID)
		if err != nil {
			zap.L().Error("failed to update video metadata", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}
