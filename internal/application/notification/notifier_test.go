package notification

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/texnokross/texnokross/internal/shared/logger"
)

type fakeTelegram struct {
	mu    sync.Mutex
	chats []int64
	texts []string
	err   error
}

func (f *fakeTelegram) SendMessage(_ context.Context, chatID int64, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.chats = append(f.chats, chatID)
	f.texts = append(f.texts, text)
	return f.err
}

type fakeMail struct {
	subjects []string
	plain    []string
}

func (f *fakeMail) Send(_ context.Context, subject, _, plainBody string) error {
	f.subjects = append(f.subjects, subject)
	f.plain = append(f.plain, plainBody)
	return nil
}

var createdAt = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func sampleOrderCreated() NotifyOrderCreatedCommand {
	return NotifyOrderCreatedCommand{
		OrderID:      "order_1709287200000Ab12",
		CustomerName: "Aziz <script>",
		Phone:        "+998901234567",
		Address:      "Chilonzor 5",
		DeliveryCost: 15000,
		Items: []OrderLine{
			{Name: "Kettle", Quantity: 2, Price: 120000},
		},
		Total:     135000,
		CreatedAt: createdAt,
	}
}

func TestFormatSum(t *testing.T) {
	assert.Equal(t, "100 000 сум", FormatSum(100000))
	assert.Equal(t, "999 сум", FormatSum(999))
	assert.Equal(t, "1 234 567 сум", FormatSum(1234567))
}

func TestBuildOrderCreatedMessage(t *testing.T) {
	msg := BuildOrderCreatedMessage(sampleOrderCreated())

	assert.Equal(t, "Новый заказ #00Ab12", msg.Subject)
	assert.Contains(t, msg.HTML, "🛒 <b>Новый заказ #00Ab12</b>")
	assert.Contains(t, msg.HTML, "Aziz &lt;script&gt;")
	assert.Contains(t, msg.HTML, "🏙 <b>Город:</b> Не указан")
	assert.Contains(t, msg.HTML, "📍 <b>Адрес:</b> Chilonzor 5")
	assert.Contains(t, msg.HTML, "🚚 <b>Доставка:</b> 15 000 сум")
	assert.NotContains(t, msg.HTML, "Комментарий")
	assert.Contains(t, msg.HTML, "  • Kettle x2 = 120 000 сум")
	assert.Contains(t, msg.HTML, "💰 <b>Итого:</b> 135 000 сум")
	assert.Contains(t, msg.HTML, "🕐 01.03.2024, 15:00:00")

	assert.NotContains(t, msg.Text, "<b>")
	assert.Contains(t, msg.Text, "Новый заказ #00Ab12")
}

func TestBuildOrderCreatedMessage_FreeDelivery(t *testing.T) {
	cmd := sampleOrderCreated()
	cmd.DeliveryCost = 0
	cmd.City = "Samarqand"
	cmd.Comment = "call first"

	msg := BuildOrderCreatedMessage(cmd)
	assert.Contains(t, msg.HTML, "🚚 <b>Доставка:</b> Бесплатная")
	assert.Contains(t, msg.HTML, "🏙 <b>Город:</b> Samarqand")
	assert.Contains(t, msg.HTML, "💬 <b>Комментарий:</b> call first")
}

func TestBuildPaymentMessages(t *testing.T) {
	paid := BuildPaymentReceivedMessage(NotifyPaymentReceivedCommand{
		OrderID: "order_1abcdef", CustomerName: "Aziz", Phone: "+998", Total: 100000, PaidAt: createdAt,
	})
	assert.Contains(t, paid.HTML, "✅ <b>Оплата получена!</b>")
	assert.Contains(t, paid.HTML, "🛒 Заказ: #abcdef")
	assert.Contains(t, paid.HTML, "💰 Сумма: 100 000 сум")

	cancelled := BuildPaymentCancelledMessage(NotifyPaymentCancelledCommand{
		OrderID: "order_1abcdef", CustomerName: "Aziz", Phone: "+998", Total: 100000,
		ReasonText: "Отменено пользователем", CancelledAt: createdAt,
	})
	assert.Contains(t, cancelled.HTML, "❌ <b>Оплата отменена</b>")
	assert.Contains(t, cancelled.HTML, "📝 Причина: Отменено пользователем")
	assert.Equal(t, "Оплата отменена #abcdef", cancelled.Subject)
}

func TestService_FansOutToChannels(t *testing.T) {
	tg := &fakeTelegram{}
	mail := &fakeMail{}
	svc := NewService(logger.NewNop(), NewTelegramChannel(tg, 777), NewEmailChannel(mail))

	require.NoError(t, svc.NotifyOrderCreated(context.Background(), sampleOrderCreated()))

	require.Len(t, tg.texts, 1)
	assert.Equal(t, int64(777), tg.chats[0])
	assert.Contains(t, tg.texts[0], "<b>Новый заказ")
	require.Len(t, mail.subjects, 1)
	assert.Equal(t, "Новый заказ #00Ab12", mail.subjects[0])
	assert.NotContains(t, mail.plain[0], "<b>")
}

func TestService_ChannelFailureDoesNotStopOthers(t *testing.T) {
	tg := &fakeTelegram{err: errors.New("telegram down")}
	mail := &fakeMail{}
	svc := NewService(logger.NewNop(), NewTelegramChannel(tg, 1), NewEmailChannel(mail))

	err := svc.NotifyPaymentReceived(context.Background(), NotifyPaymentReceivedCommand{OrderID: "order_1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "telegram down")
	assert.Len(t, mail.subjects, 1)
}

func TestService_NoChannels(t *testing.T) {
	svc := NewService(logger.NewNop())
	assert.NoError(t, svc.NotifyPaymentCancelled(context.Background(), NotifyPaymentCancelledCommand{OrderID: "o"}))
}
