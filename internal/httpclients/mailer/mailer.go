// Package mailer sends notification e-mails over SMTP.
package mailer

import (
	"crypto/tls"
	"fmt"
	"regexp"

	"gopkg.in/gomail.v2"

	"github.com/samandr77/microservices/erp/pkg/config"
)

var reTag = regexp.MustCompile("<[^>]+>")

type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

type Client struct {
	cfg    config.Mailer
	sender Sender
}

func New(cfg config.Mailer) *Client {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Login, cfg.Password)

	dialer.TLSConfig = &tls.Config{
		ServerName: cfg.Host,
		MinVersion: tls.VersionTLS12,
	}

	return NewWithSender(cfg, dialer)
}

// NewWithSender uses a custom transport, mostly for tests.
func NewWithSender(cfg config.Mailer, sender Sender) *Client {
	return &Client{
		cfg:    cfg,
		sender: sender,
	}
}

// Send delivers one message. Bodies that contain markup go out as text/html.
func (c *Client) Send(subject, body string, recipients ...string) error {
	if len(recipients) == 0 {
		return nil
	}

	msg := gomail.NewMessage(
		gomail.SetCharset("UTF-8"),
		gomail.SetEncoding(gomail.Base64),
	)

	msg.SetAddressHeader("From", c.cfg.From, c.cfg.FromName)
	msg.SetHeader("To", recipients...)
	msg.SetHeader("Subject", subject)

	if reTag.MatchString(body) {
		msg.SetBody("text/html", body)
	} else {
		msg.SetBody("text/plain", body)
	}

	err := c.sender.DialAndSend(msg)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
