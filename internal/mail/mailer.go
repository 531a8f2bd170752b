// Package mail delivers the templated notification emails the auth
// flows produce. The transport is plain SMTP.
package mail

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
	"gopkg.in/gomail.v2"
)

// Mailer is the notification sender contract the flows depend on.
// Delivery is best-effort, callers decide whether a failure is fatal.
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

type SMTPMailer struct {
	host     string
	port     int
	sender   string
	password string
}

func NewSMTP() *SMTPMailer {
	return &SMTPMailer{
		host:     viper.GetString("mail.host"),
		port:     viper.GetInt("mail.port"),
		sender:   viper.GetString("mail.sender"),
		password: viper.GetString("mail.password"),
	}
}

func (m *SMTPMailer) Send(to, subject, htmlBody string) error {
	if to == m.sender {
		return errors.New("invalid email address")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.sender)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(m.host, m.port, m.sender, m.password)

	if err := d.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send mail, %w", err)
	}

	return nil
}
