package menus

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/tuanvm/bepxu/internal/domain"
	"github.com/tuanvm/bepxu/internal/dto"
	catalogservice "github.com/tuanvm/bepxu/internal/service/catalogservice"
	ratingservice "github.com/tuanvm/bepxu/internal/service/ratingservice"
	unlockservice "github.com/tuanvm/bepxu/internal/service/unlockservice"
	"github.com/tuanvm/bepxu/pkg/auth"
)

func NewMock(t *testing.T) (*MenuHandler, *MockCatalogService, *MockUnlockService, *MockRatingService) {
	ctrl := gomock.NewController(t)
	catalogService := NewMockCatalogService(ctrl)
	unlockService := NewMockUnlockService(ctrl)
	ratingService := NewMockRatingService(ctrl)
	handler := New(catalogService, unlockService, ratingService)
	defer ctrl.Finish()
	return handler, catalogService, unlockService, ratingService
}

func newRequest(method, target, body string, params map[string]string) *http.Request {
	var r *http.Request
	if body != "" {
		r = httptest.NewRequest(method, target, bytes.NewBufferString(body))
	} else {
		r = httptest.NewRequest(method, target, nil)
	}
	ctx := context.WithValue(r.Context(), auth.UserIDKey, 1)
	rctx := chi.NewRouteContext()
	for key, value := range params {
		rctx.URLParams.Add(key, value)
	}
	ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
	return r.WithContext(ctx)
}

func TestListMenusHandler(t *testing.T) {
	handler, catalogService, _, _ := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody []dto.MenuResponseDTO
	}{
		{
			name: "Successful retrieval",
			prepareMock: func() {
				catalogService.EXPECT().ListMenus(gomock.Any(), 1).Return([]catalogservice.MenuView{
					{
						Menu:     domain.Menu{ID: 10, Name: "Pho bo", Price: 30, Locked: true, RatingSum: 9, RatingCount: 2},
						Unlocked: true,
					},
					{
						Menu:     domain.Menu{ID: 11, Name: "Com tam", Locked: false},
						Unlocked: true,
					},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: []dto.MenuResponseDTO{
				{ID: 10, Name: "Pho bo", Price: 30, Locked: true, Unlocked: true, AverageRating: 4.5, RatingCount: 2},
				{ID: 11, Name: "Com tam", Locked: false, Unlocked: true},
			},
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				catalogService.EXPECT().ListMenus(gomock.Any(), 1).Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := newRequest(http.MethodGet, "/api/menus", "", nil)
			w := httptest.NewRecorder()
			handler.ListMenus(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body []dto.MenuResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}

func TestGetMenuHandler(t *testing.T) {
	handler, catalogService, _, _ := NewMock(t)

	tests := []struct {
		name         string
		menuID       string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:   "Successful retrieval",
			menuID: "10",
			prepareMock: func() {
				catalogService.EXPECT().GetMenu(gomock.Any(), 1, 10).Return(&catalogservice.MenuView{
					Menu:     domain.Menu{ID: 10, Name: "Pho bo", Price: 30, Locked: true},
					Unlocked: false,
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Unknown menu",
			menuID: "99",
			prepareMock: func() {
				catalogService.EXPECT().GetMenu(gomock.Any(), 1, 99).Return(nil, nil)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "Invalid menu id",
			menuID:       "abc",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "Internal server error",
			menuID: "10",
			prepareMock: func() {
				catalogService.EXPECT().GetMenu(gomock.Any(), 1, 10).Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := newRequest(http.MethodGet, "/api/menus/"+tt.menuID, "", map[string]string{"menuID": tt.menuID})
			w := httptest.NewRecorder()
			handler.GetMenu(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestPurchaseHandler(t *testing.T) {
	handler, _, unlockService, _ := NewMock(t)

	tests := []struct {
		name         string
		menuID       string
		prepareMock  func()
		expectedCode int
		expectedBody *dto.PurchaseResponseDTO
	}{
		{
			name:   "Successful unlock",
			menuID: "10",
			prepareMock: func() {
				unlockService.EXPECT().Purchase(gomock.Any(), 1, 10).Return(int64(70), nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &dto.PurchaseResponseDTO{Balance: 70},
		},
		{
			name:   "Already unlocked reports success without a body change",
			menuID: "10",
			prepareMock: func() {
				unlockService.EXPECT().Purchase(gomock.Any(), 1, 10).Return(int64(0), unlockservice.ErrAlreadyUnlocked)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:   "Unknown menu",
			menuID: "99",
			prepareMock: func() {
				unlockService.EXPECT().Purchase(gomock.Any(), 1, 99).Return(int64(0), unlockservice.ErrMenuNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:   "Insufficient balance",
			menuID: "10",
			prepareMock: func() {
				unlockService.EXPECT().Purchase(gomock.Any(), 1, 10).
					Return(int64(0), &unlockservice.InsufficientBalanceError{Required: 30, Current: 12})
			},
			expectedCode: http.StatusPaymentRequired,
		},
		{
			name:         "Invalid menu id",
			menuID:       "abc",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "Internal server error",
			menuID: "10",
			prepareMock: func() {
				unlockService.EXPECT().Purchase(gomock.Any(), 1, 10).Return(int64(0), errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := newRequest(http.MethodPost, "/api/menus/"+tt.menuID+"/purchase", "", map[string]string{"menuID": tt.menuID})
			w := httptest.NewRecorder()
			handler.Purchase(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != nil {
				var body dto.PurchaseResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, *tt.expectedBody, body)
			}
		})
	}
}

func TestSubmitRatingHandler(t *testing.T) {
	handler, _, _, ratingService := NewMock(t)

	tests := []struct {
		name         string
		menuID       string
		body         string
		prepareMock  func()
		expectedCode int
		expectedBody *dto.RatingResponseDTO
	}{
		{
			name:   "Successful rating",
			menuID: "10",
			body:   `{"score":4,"comment":"ngon"}`,
			prepareMock: func() {
				ratingService.EXPECT().SubmitRating(gomock.Any(), 1, 10, 4, "ngon").Return(4.5, int64(2), nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &dto.RatingResponseDTO{Average: 4.5, Count: 2},
		},
		{
			name:   "Invalid score",
			menuID: "10",
			body:   `{"score":6}`,
			prepareMock: func() {
				ratingService.EXPECT().SubmitRating(gomock.Any(), 1, 10, 6, "").Return(float64(0), int64(0), ratingservice.ErrInvalidScore)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:   "Menu not unlocked",
			menuID: "10",
			body:   `{"score":4}`,
			prepareMock: func() {
				ratingService.EXPECT().SubmitRating(gomock.Any(), 1, 10, 4, "").Return(float64(0), int64(0), ratingservice.ErrNotUnlocked)
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name:   "Unknown menu",
			menuID: "99",
			body:   `{"score":4}`,
			prepareMock: func() {
				ratingService.EXPECT().SubmitRating(gomock.Any(), 1, 99, 4, "").Return(float64(0), int64(0), ratingservice.ErrMenuNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "Invalid request body",
			menuID:       "10",
			body:         `{"score":invalid}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "Internal server error",
			menuID: "10",
			body:   `{"score":4}`,
			prepareMock: func() {
				ratingService.EXPECT().SubmitRating(gomock.Any(), 1, 10, 4, "").Return(float64(0), int64(0), errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := newRequest(http.MethodPost, "/api/menus/"+tt.menuID+"/rating", tt.body, map[string]string{"menuID": tt.menuID})
			w := httptest.NewRecorder()
			handler.SubmitRating(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != nil {
				var body dto.RatingResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, *tt.expectedBody, body)
			}
		})
	}
}
