package http

import (
	"github.com/texnokross/texnokross/internal/application/merchant"
	"github.com/texnokross/texnokross/internal/application/notification"
	orderapp "github.com/texnokross/texnokross/internal/application/order"
	"github.com/texnokross/texnokross/internal/application/paymentlink"
	"github.com/texnokross/texnokross/internal/infrastructure/email"
	"github.com/texnokross/texnokross/internal/infrastructure/telegram"
)

type services struct {
	notifier    notification.OperatorNotifier
	orders      *orderapp.Service
	merchant    *merchant.Service
	paymentLink *paymentlink.Builder
}

func (c *Container) initServices() {
	c.svcs = &services{}
	c.svcs.notifier = c.buildNotifier()
	c.svcs.orders = orderapp.NewService(
		c.repos.orderRepo,
		c.svcs.notifier,
		c.cfg.Payme.OrderTTL(),
		c.log.Named("order"),
	)
	c.svcs.merchant = merchant.NewService(
		c.repos.orderRepo,
		c.repos.transactionRepo,
		c.svcs.orders,
		c.log.Named("merchant"),
	)
	c.svcs.paymentLink = paymentlink.NewBuilder(paymentlink.Config{
		MerchantID:  c.cfg.Payme.MerchantID,
		CheckoutURL: c.cfg.Payme.ActiveCheckoutURL(),
	})
}

// buildNotifier fans out to every configured operator channel. With none
// configured, notifications are dropped.
func (c *Container) buildNotifier() notification.OperatorNotifier {
	var channels []notification.Channel

	if c.cfg.Telegram.Enabled() {
		bot := telegram.NewBotService(c.cfg.Telegram.BotToken)
		channels = append(channels, notification.NewTelegramChannel(bot, c.cfg.Telegram.ChatID))
	} else {
		c.log.Warnw("telegram notifications disabled: bot_token or chat_id not set")
	}

	if c.cfg.Email.Enabled() {
		sender := email.NewSMTPSender(email.SMTPConfig{
			Host:        c.cfg.Email.SMTPHost,
			Port:        c.cfg.Email.SMTPPort,
			Username:    c.cfg.Email.SMTPUser,
			Password:    c.cfg.Email.SMTPPassword,
			FromAddress: c.cfg.Email.FromAddress,
			FromName:    c.cfg.Email.FromName,
		}, c.cfg.Email.ToAddress)
		channels = append(channels, notification.NewEmailChannel(sender))
	}

	if len(channels) == 0 {
		return notification.NoopNotifier{}
	}
	return notification.NewService(c.log.Named("notification"), channels...)
}
