package domain

import "time"

type User struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	Balance      int64     `db:"balance"`
	CreatedAt    time.Time `db:"created_at"`
}

type Menu struct {
	ID          int       `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	ImageURL    string    `db:"image_url"`
	Price       int64     `db:"price"`
	Locked      bool      `db:"is_locked"`
	RatingSum   int64     `db:"rating_sum"`
	RatingCount int64     `db:"rating_count"`
	CreatedAt   time.Time `db:"created_at"`
}

// AverageRating derives the mean from the running sum, so the stored
// aggregate only ever changes through single-statement increments.
func (m *Menu) AverageRating() float64 {
	if m.RatingCount == 0 {
		return 0
	}
	return float64(m.RatingSum) / float64(m.RatingCount)
}

const (
	// NewVideoStatus video is registered but its metadata is not probed yet;
	NewVideoStatus string = "NEW"
	// ReadyVideoStatus metadata is known and the video is reward-eligible;
	ReadyVideoStatus string = "READY"
	// InvalidVideoStatus the media provider rejected the video;
	InvalidVideoStatus string = "INVALID"
)

type Video struct {
	ID              int       `db:"id"`
	Title           string    `db:"title"`
	SourceURL       string    `db:"source_url"`
	DurationSeconds int       `db:"duration_seconds"`
	Status          string    `db:"status"`
	CreatedAt       time.Time `db:"created_at"`
}

type Unlock struct {
	UserID    int       `db:"user_id"`
	MenuID    int       `db:"menu_id"`
	Price     int64     `db:"price"`
	CreatedAt time.Time `db:"created_at"`
}

type Reward struct {
	UserID    int       `db:"user_id"`
	VideoID   int       `db:"video_id"`
	Amount    int64     `db:"amount"`
	CreatedAt time.Time `db:"created_at"`
}

type Rating struct {
	UserID    int       `db:"user_id"`
	MenuID    int       `db:"menu_id"`
	Score     int       `db:"score"`
	Comment   string    `db:"comment"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type Wallet struct {
	UserID      int   `db:"user_id"`
	Balance     int64 `db:"balance"`
	UnlockCount int64 `db:"unlock_count"`
	RewardCount int64 `db:"reward_count"`
}

type Voucher struct {
	Code       string     `db:"code"`
	Amount     int64      `db:"amount"`
	RedeemedBy *int       `db:"redeemed_by"`
	RedeemedAt *time.Time `db:"redeemed_at"`
}
