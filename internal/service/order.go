package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"orderbot/internal/model"
)

var ErrOrderNotFound = errors.New("order not found")

type OrderStore struct {
	db *sql.DB
}

func NewOrderStore(db *sql.DB) *OrderStore {
	return &OrderStore{db: db}
}

// Unnotified returns the orders eligible for an admin alert: paid, still
// pending a decision, and not yet announced. No ordering is imposed.
func (s *OrderStore) Unnotified(ctx context.Context) ([]model.Order, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, order_id, name, phone, items, total, status, payment_status, location, tg_id, created_at
		FROM orders
		WHERE payment_status = 'paid'
		AND status = 'pending'
		AND (notified IS NULL OR notified = FALSE)
	`)
	if err != nil {
		return nil, fmt.Errorf("query unnotified orders: %w", err)
	}
	defer rows.Close()

	var orders []model.Order
	for rows.Next() {
		var o model.Order
		var location sql.NullString
		var tgID sql.NullInt64
		if err := rows.Scan(&o.ID, &o.OrderID, &o.Name, &o.Phone, &o.Items, &o.Total,
			&o.Status, &o.PaymentStatus, &location, &tgID, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		if location.Valid {
			o.Location = location.String
		}
		if tgID.Valid {
			o.TgID = tgID.Int64
		}
		orders = append(orders, o)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}

	return orders, nil
}

// MarkNotified flips the notified flag for a single row, committed
// immediately. Called per order right after a successful send, so a crash
// between send and mark can re-announce that order on the next tick.
func (s *OrderStore) MarkNotified(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, `UPDATE orders SET notified = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("mark order notified: %w", err)
	}
	return nil
}

// Decide finalizes an order as accepted or rejected and stamps the matching
// timestamp. An already-decided order is overwritten; callers that need
// finality must not re-invoke.
func (s *OrderStore) Decide(ctx context.Context, orderID, status string) error {
	var stampColumn string
	switch status {
	case model.StatusAccepted:
		stampColumn = "accepted_at"
	case model.StatusRejected:
		stampColumn = "rejected_at"
	default:
		return fmt.Errorf("unsupported decision status %q", status)
	}

	query := fmt.Sprintf(`UPDATE orders SET status = $1, %s = NOW() WHERE order_id = $2`, stampColumn)
	res, err := s.db.ExecContext(ctx, query, status, orderID)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrOrderNotFound
	}

	return nil
}

func (s *OrderStore) DailyStats(ctx context.Context) (*model.DailyStats, error) {
	var stats model.DailyStats
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE status = 'accepted'),
		       COUNT(*) FILTER (WHERE status = 'pending'),
		       COALESCE(SUM(total), 0)
		FROM orders
		WHERE created_at::date = CURRENT_DATE
	`).Scan(&stats.Total, &stats.Accepted, &stats.Pending, &stats.Sum)
	if err != nil {
		return nil, fmt.Errorf("query daily stats: %w", err)
	}
	return &stats, nil
}

// WeeklyStats breaks the trailing 7 days down per day, paid orders only,
// newest day first.
func (s *OrderStore) WeeklyStats(ctx context.Context) ([]model.DayStats, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT created_at::date AS day, COUNT(*), COALESCE(SUM(total), 0)
		FROM orders
		WHERE payment_status = 'paid'
		AND created_at >= CURRENT_DATE - INTERVAL '7 days'
		GROUP BY day
		ORDER BY day DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("query weekly stats: %w", err)
	}
	defer rows.Close()

	var days []model.DayStats
	for rows.Next() {
		var d model.DayStats
		if err := rows.Scan(&d.Day, &d.Count, &d.Sum); err != nil {
			return nil, fmt.Errorf("scan day stats: %w", err)
		}
		days = append(days, d)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration failed: %w", err)
	}

	return days, nil
}
