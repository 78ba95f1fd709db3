package service

import (
	"context"
	"database/sql"
	"log/slog"
)

type AdminChecker struct {
	db        *sql.DB
	primaryID int64
}

func NewAdminChecker(db *sql.DB, primaryID int64) *AdminChecker {
	return &AdminChecker{db: db, primaryID: primaryID}
}

// IsAdmin reports whether tgID is the configured primary admin or a row in
// the allow-list. Fails closed on storage errors: the caller sees a denial,
// the log sees the real cause.
func (c *AdminChecker) IsAdmin(ctx context.Context, tgID int64) bool {
	if tgID == c.primaryID {
		return true
	}

	var exists bool
	err := c.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM admins WHERE tg_id = $1)`, tgID,
	).Scan(&exists)
	if err != nil {
		slog.Error("admin lookup failed", "tg_id", tgID, "error", err)
		return false
	}

	return exists
}
