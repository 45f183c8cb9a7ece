package ratingservice

import (
	"context"
	"errors"

	"github.com/tuanvm/bepxu/internal/domain"
	"github.com/tuanvm/bepxu/internal/pg"
	ratingrepo "github.com/tuanvm/bepxu/internal/repo/rating-repo"
	"go.uber.org/zap"
)

type CatalogRepo interface {
	GetMenu(ctx context.Context, menuID int) (*domain.Menu, error)
}

type LedgerRepo interface {
	HasUnlock(ctx context.Context, userID, menuID int) (bool, error)
}

type RatingRepo interface {
	Submit(ctx context.Context, rating *domain.Rating) (int64, int64, error)
	Get(ctx context.Context, userID, menuID int) (*domain.Rating, error)
}

const maxAttempts = 3

var (
	ErrMenuNotFound = errors.New("menu not found")
	ErrInvalidScore = errors.New("score must be an integer between 1 and 5")
	ErrNotUnlocked  = errors.New("menu is not unlocked by this user")
	ErrConflict     = errors.New("rating conflicted with concurrent updates")
)

type Service struct {
	catalogRepo CatalogRepo
	ledgerRepo  LedgerRepo
	ratingRepo  RatingRepo
}

func New(catalogRepo CatalogRepo, ledgerRepo LedgerRepo, ratingRepo RatingRepo) *Service {
	return &Service{
		catalogRepo: catalogRepo,
		ledgerRepo:  ledgerRepo,
		ratingRepo:  ratingRepo,
	}
}

// SubmitRating folds the user's score into the menu aggregate and returns
// the new average and count. A user holds one rating per menu; submitting
// again replaces the earlier score without inflating the count.
func (s *Service) SubmitRating(ctx context.Context, userID, menuID, score int, comment string) (float64, int64, error) {
	if score < 1 || score > 5 {
		return 0, 0, ErrInvalidScore
	}

	menu, err := s.catalogRepo.GetMenu(ctx, menuID)
	if err != nil {
		zap.L().Error("can't get menu", zap.Error(err))
		return 0, 0, err
	}
	if menu == nil {
		return 0, 0, ErrMenuNotFound
	}

	if menu.Locked {
		unlocked, err := s.ledgerRepo.HasUnlock(ctx, userID, menuID)
		if err != nil {
			zap.L().Error("can't check ownership", zap.Error(err))
			return 0, 0, err
		}
		if !unlocked {
			return 0, 0, ErrNotUnlocked
		}
	}

	rating := &domain.Rating{
		UserID:  userID,
		MenuID:  menuID,
		Score:   score,
		Comment: comment,
	}

	for attempt := 1; ; attempt++ {
		sum, count, err := s.ratingRepo.Submit(ctx, rating)
		switch {
		case err == nil:
			average := float64(0)
			if count > 0 {
				average = float64(sum) / float64(count)
			}
			zap.L().Info("rating submitted",
				zap.Int("userID", userID),
				zap.Int("menuID", menuID),
				zap.Int("score", score),
			)
			return average, count, nil
		case errors.Is(err, ratingrepo.ErrMenuGone):
			return 0, 0, ErrMenuNotFound
		case pg.IsRetryable(err) && attempt < maxAttempts:
			zap.L().Warn("rating write conflict, retrying",
				zap.Int("userID", userID),
				zap.Int("menuID", menuID),
				zap.Int("attempt", attempt),
			)
			continue
		case pg.IsRetryable(err):
			return 0, 0, ErrConflict
		default:
			zap.L().Error("can't submit rating", zap.Error(err))
			return 0, 0, err
		}
	}
}

// GetOwnRating returns the caller's rating for a menu, or nil.
func (s *Service) GetOwnRating(ctx context.Context, userID, menuID int) (*domain.Rating, error) {
	rating, err := s.ratingRepo.Get(ctx, userID, menuID)
	if err != nil {
		zap.L().Error("can't get rating", zap.Error(err))
		return nil, err
	}
	return rating, nil
}
