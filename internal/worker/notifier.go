package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"orderbot/internal/metrics"
	"orderbot/internal/model"
	"orderbot/internal/service"
)

type alerter interface {
	SendOrderAlert(o model.Order) error
}

// Notifier polls for paid, undecided, unannounced orders and pushes an alert
// per order to the admin channel. Delivery is at-least-once: the notified
// flag is committed after the send, so a crash in between re-announces on
// restart.
type Notifier struct {
	orders       *service.OrderStore
	webapp       *service.WebAppClient
	alerts       alerter
	interval     time.Duration
	initialDelay time.Duration
}

func NewNotifier(orders *service.OrderStore, webapp *service.WebAppClient, alerts alerter) *Notifier {
	return &Notifier{
		orders:       orders,
		webapp:       webapp,
		alerts:       alerts,
		interval:     5 * time.Second,
		initialDelay: 1 * time.Second,
	}
}

func (w *Notifier) Start(ctx context.Context) {
	slog.Info("starting notify worker")

	select {
	case <-ctx.Done():
		return
	case <-time.After(w.initialDelay):
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("notify worker stopped")
			return
		case <-ticker.C:
			if err := w.tick(ctx); err != nil {
				slog.Error("notify tick failed", "error", err)
			}
		}
	}
}

func (w *Notifier) tick(ctx context.Context) error {
	metrics.PollTicksTotal.Inc()

	orders, err := w.orders.Unnotified(ctx)
	if err != nil {
		return fmt.Errorf("get unnotified orders: %w", err)
	}

	for _, o := range orders {
		if err := w.alerts.SendOrderAlert(o); err != nil {
			slog.Error("failed to send order alert", "order", o.OrderID, "error", err)
			continue
		}

		if err := w.orders.MarkNotified(ctx, o.ID); err != nil {
			// Alert is already out; the next tick will pick this order up
			// again and re-announce it.
			slog.Error("failed to mark order notified", "order", o.OrderID, "error", err)
			continue
		}
		metrics.OrdersNotifiedTotal.Inc()
		slog.Info("order announced", "order", o.OrderID, "total", o.Total)

		if err := w.webapp.NotifyOrder(ctx, o.OrderID, model.PaymentPaid); err != nil {
			metrics.MirrorFailuresTotal.Inc()
			slog.Warn("mirror notify failed", "order", o.OrderID, "error", err)
		}
	}

	return nil
}
