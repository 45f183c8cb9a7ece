package rewardservice

import (
	"context"
	"errors"

	"github.com/tuanvm/bepxu/internal/domain"
	"github.com/tuanvm/bepxu/internal/pg"
	ledgerrepo "github.com/tuanvm/bepxu/internal/repo/ledger-repo"
	"go.uber.org/zap"
)

type CatalogRepo interface {
	GetVideo(ctx context.Context, videoID int) (*domain.Video, error)
}

type LedgerRepo interface {
	Reward(ctx context.Context, userID, videoID int, amount int64) (int64, error)
}

const maxAttempts = 3

var (
	ErrVideoNotFound   = errors.New("video not found")
	ErrVideoNotReady   = errors.New("video is not reward-eligible yet")
	ErrAlreadyRewarded = errors.New("video already rewarded")
	ErrWatchTooShort   = errors.New("watched duration below reward threshold")
	ErrConflict        = errors.New("reward conflicted with concurrent updates")
)

type Service struct {
	catalogRepo     CatalogRepo
	ledgerRepo      LedgerRepo
	rewardAmount    int64
	minWatchSeconds int
}

func New(catalogRepo CatalogRepo, ledgerRepo LedgerRepo, rewardAmount int64, minWatchSeconds int) *Service {
	return &Service{
		catalogRepo:     catalogRepo,
		ledgerRepo:      ledgerRepo,
		rewardAmount:    rewardAmount,
		minWatchSeconds: minWatchSeconds,
	}
}

// AwardForVideo credits the fixed reward once the reported playback reaches
// the watch threshold. A replayed request after a credited watch gets
// ErrAlreadyRewarded and no second credit, whatever the interleaving.
func (s *Service) AwardForVideo(ctx context.Context, userID, videoID, watchedSeconds int) (int64, error) {
	video, err := s.catalogRepo.GetVideo(ctx, videoID)
	if err != nil {
		zap.L().Error("can't get video", zap.Error(err))
		return 0, err
	}
	if video == nil {
		return 0, ErrVideoNotFound
	}
	if video.Status != domain.ReadyVideoStatus || video.DurationSeconds <= 0 {
		return 0, ErrVideoNotReady
	}

	threshold := s.minWatchSeconds
	if video.DurationSeconds < threshold {
		threshold = video.DurationSeconds
	}
	if watchedSeconds < threshold {
		return 0, ErrWatchTooShort
	}

	for attempt := 1; ; attempt++ {
		newBalance, err := s.ledgerRepo.Reward(ctx, userID, videoID, s.rewardAmount)
		switch {
		case err == nil:
			zap.L().Info("video reward credited",
				zap.Int("userID", userID),
				zap.Int("videoID", videoID),
				zap.Int64("amount", s.rewardAmount),
			)
			return newBalance, nil
		case errors.Is(err, ledgerrepo.ErrAlreadyApplied):
			return 0, ErrAlreadyRewarded
		case pg.IsRetryable(err) && attempt < maxAttempts:
			zap.L().Warn("reward write conflict, retrying",
				zap.Int("userID", userID),
				zap.Int("videoID", videoID),
				zap.Int("attempt", attempt),
			)
			continue
		case pg.IsRetryable(err):
			return 0, ErrConflict
		default:
			zap.L().Error("can't apply reward", zap.Error(err))
			return 0, err
		}
	}
}
