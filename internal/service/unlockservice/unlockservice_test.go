package unlockservice

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/tuanvm/bepxu/internal/domain"
	ledgerrepo "github.com/tuanvm/bepxu/internal/repo/ledger-repo"
)

func NewMock(t *testing.T) (*Service, *MockCatalogRepo, *MockLedgerRepo) {
	ctrl := gomock.NewController(t)
	catalogRepo := NewMockCatalogRepo(ctrl)
	ledgerRepo := NewMockLedgerRepo(ctrl)
	service := New(catalogRepo, ledgerRepo)
	defer ctrl.Finish()
	return service, catalogRepo, ledgerRepo
}

func TestPurchase(t *testing.T) {
	service, catalogRepo, ledgerRepo := NewMock(t)

	lockedMenu := &domain.Menu{ID: 10, Name: "Pho bo", Price: 30, Locked: true}
	openMenu := &domain.Menu{ID: 11, Name: "Com tam", Price: 0, Locked: false}
	serialization := &pgconn.PgError{Code: "40001"}

	tests := []struct {
		name            string
		userID          int
		menuID          int
		prepareMock     func()
		expectedBalance int64
		expectedError   error
	}{
		{
			name:   "Successful unlock debits the price",
			userID: 1,
			menuID: 10,
			prepareMock: func() {
				catalogRepo.EXPECT().GetMenu(gomock.Any(), 10).Return(lockedMenu, nil)
				ledgerRepo.EXPECT().Unlock(gomock.Any(), 1, 10, int64(30)).Return(int64(70), nil)
			},
			expectedBalance: 70,
		},
		{
			name:   "Unknown menu",
			userID: 1,
			menuID: 99,
			prepareMock: func() {
				catalogRepo.EXPECT().GetMenu(gomock.Any(), 99).Return(nil, nil)
			},
			expectedError: ErrMenuNotFound,
		},
		{
			name:   "Default-unlocked menu is never purchasable",
			userID: 1,
			menuID: 11,
			prepareMock: func() {
				catalogRepo.EXPECT().GetMenu(gomock.Any(), 11).Return(openMenu, nil)
			},
			expectedError: ErrAlreadyUnlocked,
		},
		{
			name:   "Replayed purchase reports already unlocked without a debit",
			userID: 1,
			menuID: 10,
			prepareMock: func() {
				catalogRepo.EXPECT().GetMenu(gomock.Any(), 10).Return(lockedMenu, nil)
				ledgerRepo.EXPECT().Unlock(gomock.Any(), 1, 10, int64(30)).Return(int64(0), ledgerrepo.ErrAlreadyApplied)
			},
			expectedError: ErrAlreadyUnlocked,
		},
		{
			name:   "Insufficient balance reports required and current",
			userID: 2,
			menuID: 10,
			prepareMock: func() {
				catalogRepo.EXPECT().GetMenu(gomock.Any(), 10).Return(lockedMenu, nil)
				ledgerRepo.EXPECT().Unlock(gomock.Any(), 2, 10, int64(30)).Return(int64(0), ledgerrepo.ErrBalanceTooLow)
				ledgerRepo.EXPECT().GetBalance(gomock.Any(), 2).Return(int64(12), nil)
			},
			expectedError: &InsufficientBalanceError{Required: 30, Current: 12},
		},
		{
			name:   "Write conflict is retried and then succeeds",
			userID: 1,
			menuID: 10,
			prepareMock: func() {
				catalogRepo.EXPECT().GetMenu(gomock.Any(), 10).Return(lockedMenu, nil)
				ledgerRepo.EXPECT().Unlock(gomock.Any(), 1, 10, int64(30)).Return(int64(0), serialization)
				ledgerRepo.EXPECT().Unlock(gomock.Any(), 1, 10, int64(30)).Return(int64(70), nil)
			},
			expectedBalance: 70,
		},
		{
			name:   "Persistent write conflict gives up",
			userID: 1,
			menuID: 10,
			prepareMock: func() {
				catalogRepo.EXPECT().GetMenu(gomock.Any(), 10).Return(lockedMenu, nil)
				ledgerRepo.EXPECT().Unlock(gomock.Any(), 1, 10, int64(30)).Return(int64(0), serialization).Times(3)
			},
			expectedError: ErrConflict,
		},
		{
			name:   "Catalog error",
			userID: 1,
			menuID: 10,
			prepareMock: func() {
				catalogRepo.EXPECT().GetMenu(gomock.Any(), 10).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
		{
			name:   "Ledger error",
			userID: 1,
			menuID: 10,
			prepareMock: func() {
				catalogRepo.EXPECT().GetMenu(gomock.Any(), 10).Return(lockedMenu, nil)
				ledgerRepo.EXPECT().Unlock(gomock.Any(), 1, 10, int64(30)).Return(int64(0), errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			balance, err := service.Purchase(context.Background(), tt.userID, tt.menuID)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Zero(t, balance)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedBalance, balance)
			}
		})
	}
}

func TestPurchaseInsufficientBalanceError(t *testing.T) {
	service, catalogRepo, ledgerRepo := NewMock(t)

	menu := &domain.Menu{ID: 10, Price: 100, Locked: true}
	catalogRepo.EXPECT().GetMenu(gomock.Any(), 10).Return(menu, nil)
	ledgerRepo.EXPECT().Unlock(gomock.Any(), 1, 10, int64(100)).Return(int64(0), ledgerrepo.ErrBalanceTooLow)
	ledgerRepo.EXPECT().GetBalance(gomock.Any(), 1).Return(int64(40), nil)

	_, err := service.Purchase(context.Background(), 1, 10)

	var insufficient *InsufficientBalanceError
	assert.ErrorAs(t, err, &insufficient)
	assert.Equal(t, int64(100), insufficient.Required)
	assert.Equal(t, int64(40), insufficient.Current)
	assert.Equal(t, "insufficient balance: required 100 xu, have 40 xu", insufficient.Error())
}
