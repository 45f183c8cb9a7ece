package menus

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tuanvm/bepxu/internal/dto"
	catalogservice "github.com/tuanvm/bepxu/internal/service/catalogservice"
	ratingservice "github.com/tuanvm/bepxu/internal/service/ratingservice"
	unlockservice "github.com/tuanvm/bepxu/internal/service/unlockservice"
	"github.com/tuanvm/bepxu/pkg/auth"
	"github.com/tuanvm/bepxu/pkg/utils"
)

type CatalogService interface {
	ListMenus(ctx context.Context, userID int) ([]catalogservice.MenuView, error)
	GetMenu(ctx context.Context, userID, menuID int) (*catalogservice.MenuView, error)
}

type UnlockService interface {
	Purchase(ctx context.Context, userID, menuID int) (int64, error)
}

type RatingService interface {
	SubmitRating(ctx context.Context, userID, menuID, score int, comment string) (float64, int64, error)
}

type MenuHandler struct {
	catalogService CatalogService
	unlockService  UnlockService
	ratingService  RatingService
}

func New(catalogService CatalogService, unlockService UnlockService, ratingService RatingService) *MenuHandler {
	return &MenuHandler{
		catalogService: catalogService,
		unlockService:  unlockService,
		ratingService:  ratingService,
	}
}

// ListMenus godoc
//
//	@Summary		List menus
//	@Description	Retrieve the menu catalog with per-user unlock flags and rating aggregates
//	@Tags			Menus
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.MenuResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/menus [get]
func (h *MenuHandler) ListMenus(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	views, err := h.catalogService.ListMenus(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.MenuResponseDTO, len(views))
	for i, view := range views {
		response[i] = menuToDTO(view)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetMenu godoc
//
//	@Summary		Get menu detail
//	@Description	Retrieve one menu with the caller's unlock flag and the rating aggregate
//	@Tags			Menus
//	@Security		BearerAuth
//	@Produce		json
//	@Param			menuID	path		int	true	"Menu ID"
//	@Success		200		{object}	dto.MenuResponseDTO
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Menu not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/menus/{menuID} [get]
func (h *MenuHandler) GetMenu(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	menuID, err := strconv.Atoi(chi.URLParam(r, "menuID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid menu id")
		return
	}

	view, err := h.catalogService.GetMenu(r.Context(), userID, menuID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if view == nil {
		utils.RespondWithError(w, http.StatusNotFound, "Menu not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, menuToDTO(*view))
}

// Purchase godoc
//
//	@Summary		Unlock a menu
//	@Description	Spend xu to permanently unlock a locked menu. Repeating the call is harmless: an already-unlocked menu reports success without touching the balance.
//	@Tags			Menus
//	@Security		BearerAuth
//	@Produce		json
//	@Param			menuID	path		int						true	"Menu ID"
//	@Success		200		{object}	dto.PurchaseResponseDTO	"New balance after the debit"
//	@Success		200		{object}	utils.Response			"Menu already unlocked"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		402		{object}	utils.Response			"Insufficient balance"
//	@Failure		404		{object}	utils.Response			"Menu not found"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/menus/{menuID}/purchase [post]
func (h *MenuHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	menuID, err := strconv.Atoi(chi.URLParam(r, "menuID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid menu id")
		return
	}

	newBalance, err := h.unlockService.Purchase(r.Context(), userID, menuID)
	if err != nil {
		var insufficient *unlockservice.InsufficientBalanceError
		switch {
		case errors.Is(err, unlockservice.ErrMenuNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, unlockservice.ErrAlreadyUnlocked):
			utils.RespondWithError(w, http.StatusOK, err.Error())
		case errors.As(err, &insufficient):
			utils.RespondWithError(w, http.StatusPaymentRequired, insufficient.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PurchaseResponseDTO{Balance: newBalance})
}

// SubmitRating godoc
//
//	@Summary		Rate a menu
//	@Description	Submit a 1-5 score for an unlocked menu; the menu's running average and count are updated atomically
//	@Tags			Menus
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			menuID	path		int						true	"Menu ID"
//	@Param			request	body		dto.RatingRequestDTO	true	"Rating payload"
//	@Success		200		{object}	dto.RatingResponseDTO	"New aggregate"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		403		{object}	utils.Response			"Menu not unlocked by this user"
//	@Failure		404		{object}	utils.Response			"Menu not found"
//	@Failure		422		{object}	utils.Response			"Invalid score"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/menus/{menuID}/rating [post]
func (h *MenuHandler) SubmitRating(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	menuID, err := strconv.Atoi(chi.URLParam(r, "menuID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid menu id")
		return
	}

	var req dto.RatingRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	average, count, err := h.ratingService.SubmitRating(r.Context(), userID, menuID, req.Score, req.Comment)
	if err != nil {
		switch {
		case errors.Is(err, ratingservice.ErrInvalidScore):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, ratingservice.ErrMenuNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, ratingservice.ErrNotUnlocked):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.RatingResponseDTO{Average: average, Count: count})
}

func menuToDTO(view catalogservice.MenuView) dto.MenuResponseDTO {
	return dto.MenuResponseDTO{
		ID:            view.ID,
		Name:          view.Name,
		Description:   view.Description,
		ImageURL:      view.ImageURL,
		Price:         view.Price,
		Locked:        view.Locked,
		Unlocked:      view.Unlocked,
		AverageRating: view.AverageRating(),
		RatingCount:   view.RatingCount,
	}
}
