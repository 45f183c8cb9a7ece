package walletservice

import (
	"context"
	"errors"

	"github.com/tuanvm/bepxu/internal/domain"
	ledgerrepo "github.com/tuanvm/bepxu/internal/repo/ledger-repo"
	"go.uber.org/zap"
)

type LedgerRepo interface {
	GetWallet(ctx context.Context, userID int) (*domain.Wallet, error)
	ListUnlocks(ctx context.Context, userID int) ([]domain.Unlock, error)
	RedeemVoucher(ctx context.Context, userID int, code string) (int64, int64, error)
}

var (
	ErrVoucherNotFound = errors.New("voucher not found")
	ErrVoucherRedeemed = errors.New("voucher already redeemed")
)

type Service struct {
	ledgerRepo LedgerRepo
}

func New(ledgerRepo LedgerRepo) *Service {
	return &Service{
		ledgerRepo: ledgerRepo,
	}
}

func (s *Service) GetWallet(ctx context.Context, userID int) (*domain.Wallet, error) {
	wallet, err := s.ledgerRepo.GetWallet(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get wallet", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

func (s *Service) GetUnlocks(ctx context.Context, userID int) ([]domain.Unlock, error) {
	unlocks, err := s.ledgerRepo.ListUnlocks(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch unlocks", zap.Error(err))
		return nil, err
	}
	return unlocks, nil
}

// RedeemVoucher credits a top-up code at most once globally. The claim and
// the credit are one transaction in the ledger.
func (s *Service) RedeemVoucher(ctx context.Context, userID int, code string) (int64, int64, error) {
	amount, newBalance, err := s.ledgerRepo.RedeemVoucher(ctx, userID, code)
	switch {
	case err == nil:
		zap.L().Info("voucher redeemed", zap.Int("userID", userID), zap.Int64("amount", amount))
		return amount, newBalance, nil
	case errors.Is(err, ledgerrepo.ErrNotFound):
		return 0, 0, ErrVoucherNotFound
	case errors.Is(err, ledgerrepo.ErrAlreadyApplied):
		return 0, 0, ErrVoucherRedeemed
	default:
		zap.L().Error("failed to redeem voucher", zap.Error(err))
		return 0, 0, err
	}
}
