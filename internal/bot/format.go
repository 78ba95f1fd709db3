package bot

import (
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"orderbot/internal/model"
)

// OrderText renders the admin alert card for a freshly paid order.
func OrderText(o model.Order) string {
	var sb strings.Builder
	sb.WriteString("✅ <b>YANGI BUYURTMA!</b>\n")
	sb.WriteString(fmt.Sprintf("👤 Mijoz: %s\n", o.Name))
	sb.WriteString(fmt.Sprintf("📞 Telefon: +998%s\n", o.Phone))
	sb.WriteString(fmt.Sprintf("💰 Summa: %s so'm\n", formatSum(o.Total)))
	if o.Location != "" {
		sb.WriteString(fmt.Sprintf("📍 Manzil: %s\n", o.Location))
	}
	sb.WriteString("\n🍔 Mahsulotlar:")
	for _, item := range o.Items {
		sb.WriteString(fmt.Sprintf("\n• %s x%d", item.Name, item.Qty))
	}
	return sb.String()
}

func decisionKeyboard(orderID, webAppURL string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Qabul", "accept_"+orderID),
			tgbotapi.NewInlineKeyboardButtonData("❌ Bekor", "reject_"+orderID),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("🛠️ Admin panel", webAppURL+"/admin.html"),
		),
	)
}

func greetingText(firstName string) string {
	return fmt.Sprintf("👋 Salom, %s!\n\n🍽️ BODRUM restorani", firstName)
}

func statsText(daily *model.DailyStats, weekly []model.DayStats) string {
	var sb strings.Builder
	sb.WriteString("📊 <b>STATISTIKA</b>\n\n")
	sb.WriteString("<b>Bugun:</b>\n")
	sb.WriteString(fmt.Sprintf("Jami buyurtmalar: %d\n", daily.Total))
	sb.WriteString(fmt.Sprintf("Qabul qilingan: %d\n", daily.Accepted))
	sb.WriteString(fmt.Sprintf("Kutilmoqda: %d\n", daily.Pending))
	sb.WriteString(fmt.Sprintf("Jami summa: %s so'm\n", formatSum(daily.Sum)))

	if len(weekly) > 0 {
		sb.WriteString("\n<b>Oxirgi hafta (to'langan):</b>\n")
		days := weekly
		if len(days) > 5 {
			days = days[:5]
		}
		for _, d := range days {
			sb.WriteString(fmt.Sprintf("%s — %d ta, %s so'm\n",
				d.Day.Format("02.01"), d.Count, formatSum(d.Sum)))
		}
	}

	return sb.String()
}

func backKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⬅️ Orqaga", "back_to_start"),
		),
	)
}

// formatSum groups digits by thousands: 1234567 -> "1,234,567".
func formatSum(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var sb strings.Builder
	for i, digit := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(digit)
	}

	if neg {
		return "-" + sb.String()
	}
	return sb.String()
}
