package walletservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/tuanvm/bepxu/internal/domain"
	ledgerrepo "github.com/tuanvm/bepxu/internal/repo/ledger-repo"
)

func NewMock(t *testing.T) (*Service, *MockLedgerRepo) {
	ctrl := gomock.NewController(t)
	ledgerRepo := NewMockLedgerRepo(ctrl)
	service := New(ledgerRepo)
	defer ctrl.Finish()
	return service, ledgerRepo
}

func TestGetWallet(t *testing.T) {
	service, ledgerRepo := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expected      *domain.Wallet
		expectedError error
	}{
		{
			name: "Returns the wallet",
			prepareMock: func() {
				ledgerRepo.EXPECT().GetWallet(gomock.Any(), 1).Return(&domain.Wallet{
					UserID:      1,
					Balance:     75,
					UnlockCount: 3,
					RewardCount: 2,
				}, nil)
			},
			expected: &domain.Wallet{UserID: 1, Balance: 75, UnlockCount: 3, RewardCount: 2},
		},
		{
			name: "Repo error",
			prepareMock: func() {
				ledgerRepo.EXPECT().GetWallet(gomock.Any(), 1).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			wallet, err := service.GetWallet(context.Background(), 1)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Nil(t, wallet)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, wallet)
			}
		})
	}
}

func TestGetUnlocks(t *testing.T) {
	service, ledgerRepo := NewMock(t)

	now := time.Now()

	tests := []struct {
		name          string
		prepareMock   func()
		expected      []domain.Unlock
		expectedError error
	}{
		{
			name: "Returns unlock history",
			prepareMock: func() {
				ledgerRepo.EXPECT().ListUnlocks(gomock.Any(), 1).Return([]domain.Unlock{
					{UserID: 1, MenuID: 12, Price: 40, CreatedAt: now},
					{UserID: 1, MenuID: 10, Price: 30, CreatedAt: now.Add(-time.Hour)},
				}, nil)
			},
			expected: []domain.Unlock{
				{UserID: 1, MenuID: 12, Price: 40, CreatedAt: now},
				{UserID: 1, MenuID: 10, Price: 30, CreatedAt: now.Add(-time.Hour)},
			},
		},
		{
			name: "Repo error",
			prepareMock: func() {
				ledgerRepo.EXPECT().ListUnlocks(gomock.Any(), 1).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			unlocks, err := service.GetUnlocks(context.Background(), 1)
			if tt.expectedError != nil {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, unlocks)
			}
		})
	}
}

func TestRedeemVoucher(t *testing.T) {
	service, ledgerRepo := NewMock(t)

	tests := []struct {
		name            string
		code            string
		prepareMock     func()
		expectedAmount  int64
		expectedBalance int64
		expectedError   error
	}{
		{
			name: "Credits the voucher amount",
			code: "79927398713",
			prepareMock: func() {
				ledgerRepo.EXPECT().RedeemVoucher(gomock.Any(), 1, "79927398713").Return(int64(50), int64(70), nil)
			},
			expectedAmount:  50,
			expectedBalance: 70,
		},
		{
			name: "Unknown code",
			code: "4929972884676289",
			prepareMock: func() {
				ledgerRepo.EXPECT().RedeemVoucher(gomock.Any(), 1, "4929972884676289").Return(int64(0), int64(0), ledgerrepo.ErrNotFound)
			},
			expectedError: ErrVoucherNotFound,
		},
		{
			name: "Code spent by anyone is spent for everyone",
			code: "79927398713",
			prepareMock: func() {
				ledgerRepo.EXPECT().RedeemVoucher(gomock.Any(), 1, "79927398713").Return(int64(0), int64(0), ledgerrepo.ErrAlreadyApplied)
			},
			expectedError: ErrVoucherRedeemed,
		},
		{
			name: "Repo error",
			code: "79927398713",
			prepareMock: func() {
				ledgerRepo.EXPECT().RedeemVoucher(gomock.Any(), 1, "79927398713").Return(int64(0), int64(0), errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			amount, balance, err := service.RedeemVoucher(context.Background(), 1, tt.code)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedAmount, amount)
				assert.Equal(t, tt.expectedBalance, balance)
			}
		})
	}
}
