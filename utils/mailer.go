package utils

import (
	"MediBook/config"

	"gopkg.in/gomail.v2"
)

// SendMail delivers a plain-text email through the configured SMTP
// endpoint. Callers decide whether a failure matters; booking
// confirmations swallow it, password resets surface it.
func SendMail(cfg config.MailConfig, to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	return d.DialAndSend(m)
}
