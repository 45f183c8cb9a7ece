package catalogservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/tuanvm/bepxu/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockCatalogRepo, *MockLedgerRepo) {
	ctrl := gomock.NewController(t)
	catalogRepo := NewMockCatalogRepo(ctrl)
	ledgerRepo := NewMockLedgerRepo(ctrl)
	service := New(catalogRepo, ledgerRepo)
	defer ctrl.Finish()
	return service, catalogRepo, ledgerRepo
}

func TestListMenus(t *testing.T) {
	service, catalogRepo, ledgerRepo := NewMock(t)

	menus := []domain.Menu{
		{ID: 10, Name: "Pho bo", Price: 30, Locked: true, RatingSum: 9, RatingCount: 2},
		{ID: 11, Name: "Com tam", Locked: false},
		{ID: 12, Name: "Banh xeo", Price: 40, Locked: true},
	}

	tests := []struct {
		name          string
		userID        int
		prepareMock   func()
		check         func(t *testing.T, views []MenuView)
		expectedError error
	}{
		{
			name:   "Unlock flags reflect ownership and default-unlocked menus",
			userID: 1,
			prepareMock: func() {
				catalogRepo.EXPECT().ListMenus(gomock.Any()).Return(menus, nil)
				ledgerRepo.EXPECT().UnlockedMenuIDs(gomock.Any(), 1).Return(map[int]bool{10: true}, nil)
			},
			check: func(t *testing.T, views []MenuView) {
				assert.Len(t, views, 3)
				assert.True(t, views[0].Unlocked)  // purchased
				assert.True(t, views[1].Unlocked)  // never locked
				assert.False(t, views[2].Unlocked) // locked, not purchased
				assert.Equal(t, 4.5, views[0].AverageRating())
			},
		},
		{
			name:   "Catalog error",
			userID: 1,
			prepareMock: func() {
				catalogRepo.EXPECT().ListMenus(gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
		{
			name:   "Unlock set error",
			userID: 1,
			prepareMock: func() {
				catalogRepo.EXPECT().ListMenus(gomock.Any()).Return(menus, nil)
				ledgerRepo.EXPECT().UnlockedMenuIDs(gomock.Any(), 1).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			views, err := service.ListMenus(context.Background(), tt.userID)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Nil(t, views)
			} else {
				assert.NoError(t, err)
				tt.check(t, views)
			}
		})
	}
}

func TestGetMenu(t *testing.T) {
	service, catalogRepo, ledgerRepo := NewMock(t)

	lockedMenu := &domain.Menu{ID: 10, Name: "Pho bo", Price: 30, Locked: true}
	openMenu := &domain.Menu{ID: 11, Name: "Com tam", Locked: false}

	tests := []struct {
		name          string
		menuID        int
		prepareMock   func()
		expected      *MenuView
		expectedError error
	}{
		{
			name:   "Locked menu owned by the caller",
			menuID: 10,
			prepareMock: func() {
				catalogRepo.EXPECT().GetMenu(gomock.Any(), 10).Return(lockedMenu, nil)
				ledgerRepo.EXPECT().HasUnlock(gomock.Any(), 1, 10).Return(true, nil)
			},
			expected: &MenuView{Menu: *lockedMenu, Unlocked: true},
		},
		{
			name:   "Locked menu not owned",
			menuID: 10,
			prepareMock: func() {
				catalogRepo.EXPECT().GetMenu(gomock.Any(), 10).Return(lockedMenu, nil)
				ledgerRepo.EXPECT().HasUnlock(gomock.Any(), 1, 10).Return(false, nil)
			},
			expected: &MenuView{Menu: *lockedMenu, Unlocked: false},
		},
		{
			name:   "Default-unlocked menu skips the ownership check",
			menuID: 11,
			prepareMock: func() {
				catalogRepo.EXPECT().GetMenu(gomock.Any(), 11).Return(openMenu, nil)
			},
			expected: &MenuView{Menu: *openMenu, Unlocked: true},
		},
		{
			name:   "Unknown menu",
			menuID: 99,
			prepareMock: func() {
				catalogRepo.EXPECT().GetMenu(gomock.Any(), 99).Return(nil, nil)
			},
			expected: nil,
		},
		{
			name:   "Catalog error",
			menuID: 10,
			prepareMock: func() {
				catalogRepo.EXPECT().GetMenu(gomock.Any(), 10).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			view, err := service.GetMenu(context.Background(), 1, tt.menuID)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Nil(t, view)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, view)
			}
		})
	}
}

func TestListVideos(t *testing.T) {
	service, catalogRepo, _ := NewMock(t)

	t.Run("Returns the video catalog", func(t *testing.T) {
		videos := []domain.Video{
			{ID: 7, Title: "Knife skills", DurationSeconds: 90, Status: domain.ReadyVideoStatus},
			{ID: 9, Title: "Broth basics", Status: domain.NewVideoStatus},
		}
		catalogRepo.EXPECT().ListVideos(gomock.Any()).Return(videos, nil)

		result, err := service.ListVideos(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, videos, result)
	})

	t.Run("Catalog error", func(t *testing.T) {
		catalogRepo.EXPECT().ListVideos(gomock.Any()).Return(nil, errors.New("db error"))

		result, err := service.ListVideos(context.Background())
		assert.Error(t, err)
		assert.Nil(t, result)
	})
}
