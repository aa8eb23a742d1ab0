package email

import (
	"fmt"
	"net/smtp"
	"strings"

	pkg "github.com/ChokeGuy/exchange-office/pkg/config"
	"github.com/jordan-wright/email"
)

// EmailPayload is a struct to send email
type EmailPayload struct {
	Subject     string
	Content     string
	To          []string
	CC          []string
	BCC         []string
	AttachFiles []string
}

// EmailSender is an interface to send email
type EmailSender interface {
	SendEmail(payload EmailPayload) error
}

// SmtpSender sends email through a plain SMTP relay. It is the fallback for
// deployments without SES credentials.
type SmtpSender struct {
	name              string
	fromEmailAddress  string
	fromEmailPassword string
	serverAddress     string
}

// NewSmtpSender creates an SMTP sender from the environment config
func NewSmtpSender(cf pkg.Config) EmailSender {
	return &SmtpSender{
		name:              cf.EmailSenderName,
		fromEmailAddress:  cf.EmailSenderAddress,
		fromEmailPassword: cf.EmailSenderPassword,
		serverAddress:     cf.SmtpServerAddress,
	}
}

// SendEmail sends an email through the configured SMTP relay
func (sender *SmtpSender) SendEmail(payload EmailPayload) error {
	e := email.NewEmail()
	e.From = fmt.Sprintf("%s <%s>", sender.name, sender.fromEmailAddress)
	e.Subject = payload.Subject
	e.HTML = []byte(payload.Content)
	e.To = payload.To
	e.Cc = payload.CC
	e.Bcc = payload.BCC

	for _, file := range payload.AttachFiles {
		_, err := e.AttachFile(file)
		if err != nil {
			return fmt.Errorf("failed to attach file %s: %v", file, err)
		}
	}

	// PlainAuth wants the hostname without the port.
	host := sender.serverAddress
	if i := strings.IndexByte(host, ':'); i >= 0 {
		host = host[:i]
	}
	smtpAuth := smtp.PlainAuth("", sender.fromEmailAddress, sender.fromEmailPassword, host)

	err := e.Send(sender.serverAddress, smtpAuth)

	if err != nil {
		return fmt.Errorf("failed to send email: %v", err)
	}

	return nil
}
