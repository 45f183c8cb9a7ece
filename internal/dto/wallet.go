package dto

import "time"

type WalletResponseDTO struct {
	Balance  int64 `json:"balance" example:"120"`
	Unlocked int64 `json:"unlocked" example:"4"`
	Rewarded int64 `json:"rewarded" example:"11"`
}

type UnlockResponseDTO struct {
	MenuID     int       `json:"menu_id" example:"7"`
	Price      int64     `json:"price" example:"30"`
	UnlockedAt time.Time `json:"unlocked_at" example:"2024-12-09T16:09:57+07:00"`
}

type VoucherRedeemRequestDTO struct {
	Code string `json:"code" example:"2377225624"`
}

type VoucherRedeemResponseDTO struct {
	Amount  int64 `json:"amount" example:"50"`
	Balance int64 `json:"balance" example:"170"`
}
