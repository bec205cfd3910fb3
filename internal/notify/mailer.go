package notify

import (
	"fmt"
	"log"
	"net/smtp"

	"github.com/bellasalon/booking-api/internal/config"
)

type Mailer interface {
	Send(to, subject, body string) error
}

// SMTPMailer envia pelo relay configurado em SMTP_*.
type SMTPMailer struct {
	host string
	port string
	user string
	pass string
	from string
}

func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{
		host: cfg.SMTPHost,
		port: cfg.SMTPPort,
		user: cfg.SMTPUser,
		pass: cfg.SMTPPass,
		from: cfg.EmailFrom,
	}
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	msg := []byte(fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"\r\n"+
			"%s\r\n",
		m.from, to, subject, body,
	))

	addr := fmt.Sprintf("%s:%s", m.host, m.port)

	var auth smtp.Auth
	if m.user != "" {
		auth = smtp.PlainAuth("", m.user, m.pass, m.host)
	}

	return smtp.SendMail(addr, auth, m.from, []string{to}, msg)
}

// LogMailer é o fallback quando não há SMTP configurado: só registra o
// que teria sido enviado (útil em dev).
type LogMailer struct{}

func (LogMailer) Send(to, subject, body string) error {
	log.Printf("mail (not sent, no SMTP configured) to=%s subject=%q", to, subject)
	return nil
}

func NewMailer(cfg *config.Config) Mailer {
	if cfg.SMTPHost == "" {
		return LogMailer{}
	}
	return NewSMTPMailer(cfg)
}
