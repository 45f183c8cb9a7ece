package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tuanvm/bepxu/internal/domain"
	"github.com/tuanvm/bepxu/internal/dto"
	walletservice "github.com/tuanvm/bepxu/internal/service/walletservice"
	"github.com/tuanvm/bepxu/pkg/auth"
	"github.com/tuanvm/bepxu/pkg/utils"
	"github.com/tuanvm/bepxu/pkg/validate"
)

type Service interface {
	GetWallet(ctx context.Context, userID int) (*domain.Wallet, error)
	GetUnlocks(ctx context.Context, userID int) ([]domain.Unlock, error)
	RedeemVoucher(ctx context.Context, userID int, code string) (int64, int64, error)
}

type WalletHandler struct {
	walletService Service
}

func New(walletService Service) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
	}
}

// GetWallet godoc
//
//	@Summary		Get the current wallet
//	@Description	Retrieve the xu balance and the unlock/reward counts for the authenticated user.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.WalletResponseDTO	"Balance and counts"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/wallet [get]
func (h *WalletHandler) GetWallet(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	wallet, err := h.walletService.GetWallet(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.WalletResponseDTO{
		Balance:  wallet.Balance,
		Unlocked: wallet.UnlockCount,
		Rewarded: wallet.RewardCount,
	})
}

// GetUnlocks godoc
//
//	@Summary		Get unlock history
//	@Description	Get the menus unlocked by the authenticated user, newest first
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.UnlockResponseDTO	"Unlock history"
//	@Success		204	{object}	utils.Response			"No unlocks yet"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/wallet/unlocks [get]
func (h *WalletHandler) GetUnlocks(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	unlocks, err := h.walletService.GetUnlocks(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch unlocks")
		return
	}

	if len(unlocks) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Unlocks not found")
		return
	}

	response := make([]dto.UnlockResponseDTO, len(unlocks))
	for i, unlock := range unlocks {
		response[i] = dto.UnlockResponseDTO{
			MenuID:     unlock.MenuID,
			Price:      unlock.Price,
			UnlockedAt: unlock.CreatedAt,
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, response)
}

// RedeemVoucher godoc
//
//	@Summary		Redeem a top-up voucher
//	@Description	Credit a single-use voucher code to the user's balance
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.VoucherRedeemRequestDTO		true	"Voucher payload"
//	@Success		200		{object}	dto.VoucherRedeemResponseDTO	"Credited amount and new balance"
//	@Failure		401		{object}	utils.Response					"User not authorized"
//	@Failure		404		{object}	utils.Response					"Voucher not found"
//	@Failure		409		{object}	utils.Response					"Voucher already redeemed"
//	@Failure		422		{object}	utils.Response					"Invalid voucher code"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/user/wallet/voucher [post]
func (h *WalletHandler) RedeemVoucher(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.VoucherRedeemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ok := validate.IsVoucherCode(req.Code)
	if !ok {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid voucher code")
		return
	}

	amount, newBalance, err := h.walletService.RedeemVoucher(r.Context(), userID, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, walletservice.ErrVoucherNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, walletservice.ErrVoucherRedeemed):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.VoucherRedeemResponseDTO{
		Amount:  amount,
		Balance: newBalance,
	})
}
