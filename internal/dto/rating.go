package dto

type RatingRequestDTO struct {
	Score   int    `json:"score" example:"5"`
	Comment string `json:"comment,omitempty" example:"ngon!"`
}

type RatingResponseDTO struct {
	Average float64 `json:"average" example:"4.5"`
	Count   int64   `json:"count" example:"12"`
}
