package mail

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/pribylovaa/go-blogger-platform/internal/config"
)

// SMTPSender отправляет письма через внешний SMTP-релей.
// Письмо простое (один HTML-part), расширенный MIME не нужен,
// поэтому достаточно net/smtp.
type SMTPSender struct {
	addr string
	from string
	auth smtp.Auth
}

// NewSMTPSender создаёт отправителя по конфигурации.
// Auth включается только при заданном username.
func NewSMTPSender(cfg config.SMTPConfig) *SMTPSender {
	s := &SMTPSender{
		addr: cfg.Addr,
		from: cfg.From,
	}

	if cfg.Username != "" {
		host := cfg.Addr
		if i := strings.IndexByte(host, ':'); i >= 0 {
			host = host[:i]
		}
		s.auth = smtp.PlainAuth("", cfg.Username, cfg.Password, host)
	}

	return s
}

// Send отправляет письмо. Контекст проверяется до начала SMTP-диалога:
// сам net/smtp дедлайны контекста не поддерживает.
func (s *SMTPSender) Send(ctx context.Context, to, subject, html string) error {
	const op = "mail.smtp.Send"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	var b strings.Builder
	b.WriteString("From: " + s.from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(html)

	if err := smtp.SendMail(s.addr, s.auth, s.from, []string{to}, []byte(b.String())); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

var _ Sender = (*SMTPSender)(nil)
