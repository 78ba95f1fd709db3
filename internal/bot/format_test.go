package bot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"orderbot/internal/model"
)

func TestOrderText(t *testing.T) {
	o := model.Order{
		OrderID: "ORD-1",
		Name:    "Aziz",
		Phone:   "901234567",
		Total:   125000,
		Items: model.OrderItems{
			{Name: "Lavash", Qty: 2},
			{Name: "Cola", Qty: 1},
		},
	}

	text := OrderText(o)

	assert.Contains(t, text, "✅ <b>YANGI BUYURTMA!</b>")
	assert.Contains(t, text, "👤 Mijoz: Aziz")
	assert.Contains(t, text, "📞 Telefon: +998901234567")
	assert.Contains(t, text, "💰 Summa: 125,000 so'm")
	assert.Contains(t, text, "• Lavash x2")
	assert.Contains(t, text, "• Cola x1")
	assert.NotContains(t, text, "Manzil")
}

func TestOrderText_WithLocation(t *testing.T) {
	o := model.Order{Name: "Aziz", Phone: "901234567", Location: "Yunusobod"}

	assert.Contains(t, OrderText(o), "📍 Manzil: Yunusobod")
}

func TestFormatSum(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{50000, "50,000"},
		{1234567, "1,234,567"},
		{-50000, "-50,000"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatSum(tt.in))
	}
}

func TestStatsText(t *testing.T) {
	daily := &model.DailyStats{Total: 3, Accepted: 2, Pending: 1, Sum: 100000}
	day := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	weekly := []model.DayStats{
		{Day: day, Count: 5, Sum: 250000},
		{Day: day.AddDate(0, 0, -1), Count: 2, Sum: 90000},
	}

	text := statsText(daily, weekly)

	assert.Contains(t, text, "Jami buyurtmalar: 3")
	assert.Contains(t, text, "Qabul qilingan: 2")
	assert.Contains(t, text, "Kutilmoqda: 1")
	assert.Contains(t, text, "Jami summa: 100,000 so'm")
	assert.Contains(t, text, "01.09 — 5 ta, 250,000 so'm")
	assert.Contains(t, text, "31.08 — 2 ta, 90,000 so'm")
}

func TestStatsText_RendersAtMostFiveDays(t *testing.T) {
	daily := &model.DailyStats{}
	day := time.Date(2025, 9, 7, 0, 0, 0, 0, time.UTC)

	var weekly []model.DayStats
	for i := 0; i < 7; i++ {
		weekly = append(weekly, model.DayStats{Day: day.AddDate(0, 0, -i), Count: 1, Sum: 1000})
	}

	text := statsText(daily, weekly)

	assert.Contains(t, text, "07.09")
	assert.Contains(t, text, "03.09")
	assert.NotContains(t, text, "02.09")
	assert.NotContains(t, text, "01.09")
}

func TestDecisionKeyboard(t *testing.T) {
	kb := decisionKeyboard("ORD-1", "https://example.test")

	if assert.Len(t, kb.InlineKeyboard, 2) {
		row := kb.InlineKeyboard[0]
		if assert.Len(t, row, 2) {
			assert.Equal(t, "accept_ORD-1", *row[0].CallbackData)
			assert.Equal(t, "reject_ORD-1", *row[1].CallbackData)
		}
		link := kb.InlineKeyboard[1][0]
		assert.Equal(t, "https://example.test/admin.html", *link.URL)
	}
}
