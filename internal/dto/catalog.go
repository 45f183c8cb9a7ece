package dto

type MenuResponseDTO struct {
	ID            int     `json:"id" example:"7"`
	Name          string  `json:"name" example:"Bun cha Ha Noi"`
	Description   string  `json:"description,omitempty"`
	ImageURL      string  `json:"image_url,omitempty"`
	Price         int64   `json:"price" example:"30"`
	Locked        bool    `json:"locked" example:"true"`
	Unlocked      bool    `json:"unlocked" example:"false"`
	AverageRating float64 `json:"average_rating" example:"4.5"`
	RatingCount   int64   `json:"rating_count" example:"12"`
}

type VideoResponseDTO struct {
	ID              int    `json:"id" example:"3"`
	Title           string `json:"title" example:"Knife skills, part 1"`
	DurationSeconds int    `json:"duration_seconds" example:"94"`
	Status          string `json:"status" example:"READY"`
}
