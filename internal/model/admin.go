package model

import (
	"time"
)

type Admin struct {
	ID        int64     `json:"id"`
	TgID      int64     `json:"tg_id"`
	Name      string    `json:"name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
