package notification

import "context"

// Message is one notification rendered for every channel kind.
type Message struct {
	Subject string
	HTML    string
	Text    string
}

type Channel interface {
	Name() string
	Deliver(ctx context.Context, msg Message) error
}

// TelegramClient is satisfied by telegram.BotService.
type TelegramClient interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

type TelegramChannel struct {
	client TelegramClient
	chatID int64
}

func NewTelegramChannel(client TelegramClient, chatID int64) *TelegramChannel {
	return &TelegramChannel{client: client, chatID: chatID}
}

func (c *TelegramChannel) Name() string { return "telegram" }

func (c *TelegramChannel) Deliver(ctx context.Context, msg Message) error {
	return c.client.SendMessage(ctx, c.chatID, msg.HTML)
}

// MailSender is satisfied by email.SMTPSender.
type MailSender interface {
	Send(ctx context.Context, subject, htmlBody, plainBody string) error
}

type EmailChannel struct {
	sender MailSender
}

func NewEmailChannel(sender MailSender) *EmailChannel {
	return &EmailChannel{sender: sender}
}

func (c *EmailChannel) Name() string { return "email" }

func (c *EmailChannel) Deliver(ctx context.Context, msg Message) error {
	return c.sender.Send(ctx, msg.Subject, "<pre>"+msg.HTML+"</pre>", msg.Text)
}
