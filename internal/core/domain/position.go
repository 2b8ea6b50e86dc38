package domain

import "time"

type Position struct {
	ID        int64     `json:"position_id"`
	Code      string    `json:"position_code"`
	Name      string    `json:"position_name"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
