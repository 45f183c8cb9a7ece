package videos

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tuanvm/bepxu/internal/domain"
	"github.com/tuanvm/bepxu/internal/dto"
	rewardservice "github.com/tuanvm/bepxu/internal/service/rewardservice"
	"github.com/tuanvm/bepxu/pkg/auth"
	"github.com/tuanvm/bepxu/pkg/utils"
)

type CatalogService interface {
	ListVideos(ctx context.Context) ([]domain.Video, error)
}

type RewardService interface {
	AwardForVideo(ctx context.Context, userID, videoID, watchedSeconds int) (int64, error)
}

type VideoHandler struct {
	catalogService CatalogService
	rewardService  RewardService
}

func New(catalogService CatalogService, rewardService RewardService) *VideoHandler {
	return &VideoHandler{
		catalogService: catalogService,
		rewardService:  rewardService,
	}
}

// ListVideos godoc
//
//	@Summary		List reward videos
//	@Description	Retrieve the catalog of videos that can be watched for xu
//	@Tags			Videos
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.VideoResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/videos [get]
func (h *VideoHandler) ListVideos(w http.ResponseWriter, r *http.Request) {
	videos, err := h.catalogService.ListVideos(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.VideoResponseDTO, len(videos))
	for i, video := range videos {
		response[i] = dto.VideoResponseDTO{
			ID:              video.ID,
			Title:           video.Title,
			DurationSeconds: video.DurationSeconds,
			Status:          video.Status,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Reward godoc
//
//	@Summary		Claim the reward for a watched video
//	@Description	Credit the fixed xu reward after the reported playback reaches the watch threshold. Re-submitting after a credited watch reports the already-rewarded state without a second credit.
//	@Tags			Videos
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			videoID	path		int						true	"Video ID"
//	@Param			request	body		dto.RewardRequestDTO	true	"Watched seconds reported by the player"
//	@Success		200		{object}	dto.RewardResponseDTO	"New balance after the credit"
//	@Success		200		{object}	utils.Response			"Video already rewarded"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		404		{object}	utils.Response			"Video not found"
//	@Failure		422		{object}	utils.Response			"Watched duration below threshold or video not ready"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/videos/{videoID}/reward [post]
func (h *VideoHandler) Reward(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	videoID, err := strconv.Atoi(chi.URLParam(r, "videoID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid video id")
		return
	}

	var req dto.RewardRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	newBalance, err := h.rewardService.AwardForVideo(r.Context(), userID, videoID, req.WatchedSeconds)
	if err != nil {
		switch {
		case errors.Is(err, rewardservice.ErrVideoNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, rewardservice.ErrAlreadyRewarded):
			utils.RespondWithError(w, http.StatusOK, err.Error())
		case errors.Is(err, rewardservice.ErrVideoNotReady), errors.Is(err, rewardservice.ErrWatchTooShort):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.RewardResponseDTO{Balance: newBalance})
}
