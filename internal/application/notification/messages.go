package notification

import (
	"fmt"
	"html"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/texnokross/texnokross/internal/shared/biztime"
	"github.com/texnokross/texnokross/internal/shared/id"
	"github.com/texnokross/texnokross/internal/shared/utils"
)

var printer = message.NewPrinter(language.Russian)

// FormatSum renders a whole-sum amount with Russian digit grouping, e.g. "100 000 сум".
func FormatSum(amount int64) string {
	s := printer.Sprintf("%d", amount)
	s = strings.NewReplacer("\u00a0", " ", "\u202f", " ").Replace(s)
	return s + " сум"
}

type lines struct {
	b strings.Builder
}

func (l *lines) add(format string, args ...any) {
	fmt.Fprintf(&l.b, format, args...)
	l.b.WriteByte('\n')
}

func (l *lines) blank() {
	l.b.WriteByte('\n')
}

func (l *lines) message(subject string) Message {
	body := strings.TrimRight(l.b.String(), "\n")
	return Message{
		Subject: subject,
		HTML:    body,
		Text:    utils.SanitizeText(body),
	}
}

func esc(s string) string {
	return html.EscapeString(s)
}

func BuildOrderCreatedMessage(cmd NotifyOrderCreatedCommand) Message {
	short := id.Short(cmd.OrderID)
	city := cmd.City
	if city == "" {
		city = "Не указан"
	}

	var l lines
	l.add("🛒 <b>Новый заказ #%s</b>", esc(short))
	l.blank()
	l.add("👤 <b>Клиент:</b> %s", esc(cmd.CustomerName))
	l.add("📞 <b>Телефон:</b> %s", esc(cmd.Phone))
	l.add("🏙 <b>Город:</b> %s", esc(city))
	if cmd.Address != "" {
		l.add("📍 <b>Адрес:</b> %s", esc(cmd.Address))
	}
	if cmd.DeliveryCost == 0 {
		l.add("🚚 <b>Доставка:</b> Бесплатная")
	} else {
		l.add("🚚 <b>Доставка:</b> %s", FormatSum(cmd.DeliveryCost))
	}
	if cmd.Comment != "" {
		l.add("💬 <b>Комментарий:</b> %s", esc(cmd.Comment))
	}
	l.blank()
	l.add("📦 <b>Товары:</b>")
	for _, it := range cmd.Items {
		l.add("  • %s x%d = %s", esc(it.Name), it.Quantity, FormatSum(it.Price))
	}
	l.blank()
	l.add("💰 <b>Итого:</b> %s", FormatSum(cmd.Total))
	l.add("💳 <b>Статус:</b> Ожидает оплаты")
	l.blank()
	l.add("🕐 %s", biztime.Format(cmd.CreatedAt))

	return l.message("Новый заказ #" + short)
}

func BuildPaymentReceivedMessage(cmd NotifyPaymentReceivedCommand) Message {
	short := id.Short(cmd.OrderID)

	var l lines
	l.add("✅ <b>Оплата получена!</b>")
	l.blank()
	l.add("🛒 Заказ: #%s", esc(short))
	l.add("👤 Клиент: %s", esc(cmd.CustomerName))
	l.add("📞 Телефон: %s", esc(cmd.Phone))
	l.add("💰 Сумма: %s", FormatSum(cmd.Total))
	l.blank()
	l.add("🕐 %s", biztime.Format(cmd.PaidAt))

	return l.message("Оплата получена #" + short)
}

func BuildPaymentCancelledMessage(cmd NotifyPaymentCancelledCommand) Message {
	short := id.Short(cmd.OrderID)

	var l lines
	l.add("❌ <b>Оплата отменена</b>")
	l.blank()
	l.add("🛒 Заказ: #%s", esc(short))
	l.add("👤 Клиент: %s", esc(cmd.CustomerName))
	l.add("📞 Телефон: %s", esc(cmd.Phone))
	l.add("💰 Сумма: %s", FormatSum(cmd.Total))
	l.add("📝 Причина: %s", esc(cmd.ReasonText))
	l.blank()
	l.add("🕐 %s", biztime.Format(cmd.CancelledAt))

	return l.message("Оплата отменена #" + short)
}
