package model

import (
	"time"
)

// DailyStats aggregates the current calendar day across all orders.
type DailyStats struct {
	Total    int64 `json:"total_orders"`
	Accepted int64 `json:"accepted"`
	Pending  int64 `json:"pending"`
	Sum      int64 `json:"total_sum"`
}

// DayStats is one day of the trailing-week breakdown, paid orders only.
type DayStats struct {
	Day   time.Time `json:"day"`
	Count int64     `json:"count"`
	Sum   int64     `json:"sum"`
}
