package unlockservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/tuanvm/bepxu/internal/domain"
	"github.com/tuanvm/bepxu/internal/pg"
	ledgerrepo "github.com/tuanvm/bepxu/internal/repo/ledger-repo"
	"go.uber.org/zap"
)

type CatalogRepo interface {
	GetMenu(ctx context.Context, menuID int) (*domain.Menu, error)
}

type LedgerRepo interface {
	GetBalance(ctx context.Context, userID int) (int64, error)
	Unlock(ctx context.Context, userID, menuID int, price int64) (int64, error)
}

// maxAttempts bounds the retry loop around the atomic unlock write. The
// preconditions are re-evaluated on every attempt, so a retry can never turn
// a business-rule failure into a second debit.
const maxAttempts = 3

var (
	ErrMenuNotFound    = errors.New("menu not found")
	ErrAlreadyUnlocked = errors.New("menu already unlocked")
	ErrConflict        = errors.New("unlock conflicted with concurrent updates")
)

// InsufficientBalanceError carries the numbers the presentation layer has to
// show the user.
type InsufficientBalanceError struct {
	Required int64
	Current  int64
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance: required %d xu, have %d xu", e.Required, e.Current)
}

type Service struct {
	catalogRepo CatalogRepo
	ledgerRepo  LedgerRepo
}

func New(catalogRepo CatalogRepo, ledgerRepo LedgerRepo) *Service {
	return &Service{
		catalogRepo: catalogRepo,
		ledgerRepo:  ledgerRepo,
	}
}

// Purchase permanently unlocks a locked menu for the user, debiting its
// price. Exactly one of N concurrent calls for the same (user, menu) can
// succeed; the rest see ErrAlreadyUnlocked and no balance change.
func (s *Service) Purchase(ctx context.Context, userID, menuID int) (int64, error) {
	menu, err := s.catalogRepo.GetMenu(ctx, menuID)
	if err != nil {
		zap.L().Error("can't get menu", zap.Error(err))
		return 0, err
	}
	if menu == nil {
		return 0, ErrMenuNotFound
	}
	if !menu.Locked {
		// unlocked by default means owned by everyone, never purchasable
		return 0, ErrAlreadyUnlocked
	}

	for attempt := 1; ; attempt++ {
		newBalance, err := s.ledgerRepo.Unlock(ctx, userID, menuID, menu.Price)
		switch {
		case err == nil:
			zap.L().Info("menu unlocked",
				zap.Int("userID", userID),
				zap.Int("menuID", menuID),
				zap.Int64("price", menu.Price),
			)
			return newBalance, nil
		case errors.Is(err, ledgerrepo.ErrAlreadyApplied):
			return 0, ErrAlreadyUnlocked
		case errors.Is(err, ledgerrepo.ErrBalanceTooLow):
			current, balErr := s.ledgerRepo.GetBalance(ctx, userID)
			if balErr != nil {
				zap.L().Error("can't read balance after rejected debit", zap.Error(balErr))
				return 0, balErr
			}
			return 0, &InsufficientBalanceError{Required: menu.Price, Current: current}
		case pg.IsRetryable(err) && attempt < maxAttempts:
			zap.L().Warn("unlock write conflict, retrying",
				zap.Int("userID", userID),
				zap.Int("menuID", menuID),
				zap.Int("attempt", attempt),
			)
			continue
		case pg.IsRetryable(err):
			return 0, ErrConflict
		default:
			zap.L().Error("can't apply unlock", zap.Error(err))
			return 0, err
		}
	}
}
