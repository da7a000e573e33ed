package controllers

import (
	"fmt"
	"io"

	"github.com/go-gomail/gomail"
)

// Mailer is what controllers need from an email dispatcher: one attempt,
// no retries, an error the caller may log and move past.
type Mailer interface {
	Send(to, subject, htmlBody, attachmentName string, attachment []byte) error
}

// MailSender sends through a single SMTP account.
type MailSender struct {
	Host string
	Port int
	User string
	Pass string
}

func NewMailSender(host string, port int, user, pass string) *MailSender {
	return &MailSender{Host: host, Port: port, User: user, Pass: pass}
}

// Send delivers one HTML email, with an optional in-memory attachment.
func (m *MailSender) Send(to, subject, htmlBody, attachmentName string, attachment []byte) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.User)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if attachmentName != "" && attachment != nil {
		msg.Attach(attachmentName, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(attachment)
			return err
		}))
	}

	d := gomail.NewDialer(m.Host, m.Port, m.User, m.Pass)
	if err := d.DialAndSend(msg); err != nil {
		return fmt.Errorf("error sending email: %w", err)
	}
	return nil
}
