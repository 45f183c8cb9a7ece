package dto

type RewardRequestDTO struct {
	WatchedSeconds int `json:"watched_seconds" example:"95"`
}

type RewardResponseDTO struct {
	Balance int64 `json:"balance" example:"125"`
}
