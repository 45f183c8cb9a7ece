package rewardservice

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
	service := New(catalogRepo, ledgerRepo, 5, 30)
	defer ctrl.Finish()
	return service, catalogRepo, ledgerRepo
}

func TestAwardForVideo(t *testing.T) {
	service, catalogRepo, ledgerRepo := NewMock(t)

	readyVideo := &domain.Video{ID: 7, Title: "Knife skills", DurationSeconds: 90, Status: domain.ReadyVideoStatus}
	shortVideo := &domain.Video{ID: 8, Title: "Plating", DurationSeconds: 20, Status: domain.ReadyVideoStatus}
	newVideo := &domain.Video{ID: 9, Title: "Broth basics", Status: domain.NewVideoStatus}
	serialization := &pgconn.PgError{Code: "40001"}

	tests := []struct {
		name            string
		userID          int
		videoID         int
		watchedSeconds  int
		prepareMock     func()
		expectedBalance int64
		expectedError   error
	}{
		{
			name:           "Watch past the threshold credits once",
			userID:         1,
			videoID:        7,
			watchedSeconds: 45,
			prepareMock: func() {
				catalogRepo.EXPECT().GetVideo(gomock.Any(), 7).Return(readyVideo, nil)
				ledgerRepo.EXPECT().Reward(gomock.Any(), 1, 7, int64(5)).Return(int64(25), nil)
			},
			expectedBalance: 25,
		},
		{
			name:           "Unknown video",
			userID:         1,
			videoID:        99,
			watchedSeconds: 45,
			prepareMock: func() {
				catalogRepo.EXPECT().GetVideo(gomock.Any(), 99).Return(nil, nil)
			},
			expectedError: ErrVideoNotFound,
		},
		{
			name:           "Video without probed metadata is not eligible",
			userID:         1,
			videoID:        9,
			watchedSeconds: 45,
			prepareMock: func() {
				catalogRepo.EXPECT().GetVideo(gomock.Any(), 9).Return(newVideo, nil)
			},
			expectedError: ErrVideoNotReady,
		},
		{
			name:           "Watch below the threshold",
			userID:         1,
			videoID:        7,
			watchedSeconds: 10,
			prepareMock: func() {
				catalogRepo.EXPECT().GetVideo(gomock.Any(), 7).Return(readyVideo, nil)
			},
			expectedError: ErrWatchTooShort,
		},
		{
			name:           "Threshold caps at the video duration for short clips",
			userID:         1,
			videoID:        8,
			watchedSeconds: 20,
			prepareMock: func() {
				catalogRepo.EXPECT().GetVideo(gomock.Any(), 8).Return(shortVideo, nil)
				ledgerRepo.EXPECT().Reward(gomock.Any(), 1, 8, int64(5)).Return(int64(30), nil)
			},
			expectedBalance: 30,
		},
		{
			name:           "Replayed claim reports already rewarded without a credit",
			userID:         1,
			videoID:        7,
			watchedSeconds: 90,
			prepareMock: func() {
				catalogRepo.EXPECT().GetVideo(gomock.Any(), 7).Return(readyVideo, nil)
				ledgerRepo.EXPECT().Reward(gomock.Any(), 1, 7, int64(5)).Return(int64(0), ledgerrepo.ErrAlreadyApplied)
			},
			expectedError: ErrAlreadyRewarded,
		},
		{
			name:           "Write conflict is retried and then succeeds",
			userID:         1,
			videoID:        7,
			watchedSeconds: 45,
			prepareMock: func() {
				catalogRepo.EXPECT().GetVideo(gomock.Any(), 7).Return(readyVideo, nil)
				ledgerRepo.EXPECT().Reward(gomock.Any(), 1, 7, int64(5)).Return(int64(0), serialization)
				ledgerRepo.EXPECT().Reward(gomock.Any(), 1, 7, int64(5)).Return(int64(25), nil)
			},
			expectedBalance: 25,
		},
		{
			name:           "Persistent write conflict gives up",
			userID:         1,
			videoID:        7,
			watchedSeconds: 45,
			prepareMock: func() {
				catalogRepo.EXPECT().GetVideo(gomock.Any(), 7).Return(readyVideo, nil)
				ledgerRepo.EXPECT().Reward(gomock.Any(), 1, 7, int64(5)).Return(int64(0), serialization).Times(3)
			},
			expectedError: ErrConflict,
		},
		{
			name:           "Ledger error",
			userID:         1,
			videoID:        7,
			watchedSeconds: 45,
			prepareMock: func() {
				catalogRepo.EXPECT().GetVideo(gomock.Any(), 7).Return(readyVideo, nil)
				ledgerRepo.EXPECT().Reward(gomock.Any(), 1, 7, int64(5)).Return(int64(0), errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			balance, err := service.AwardForVideo(context.Background(), tt.userID, tt.videoID, tt.watchedSeconds)
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
