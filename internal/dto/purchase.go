package dto

type PurchaseResponseDTO struct {
	Balance int64 `json:"balance" example:"90"`
}
