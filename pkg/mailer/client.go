package mailer

import (
	"crypto/tls"
	"fmt"
	"log"

	"gopkg.in/gomail.v2"
)

// Client sends plain-text mail over SMTP. When credentials are missing the
// client stays up but every send is a logged no-op, so a bare dev
// environment still boots.
type Client struct {
	host     string
	port     int
	useTLS   bool
	username string
	password string
	sender   string
	enabled  bool
}

func NewClient(host string, port int, useTLS bool, username, password, sender string) *Client {
	enabled := host != "" && username != "" && password != ""
	if !enabled {
		log.Println("Warning: mail credentials not configured, email delivery disabled")
	}

	return &Client{
		host:     host,
		port:     port,
		useTLS:   useTLS,
		username: username,
		password: password,
		sender:   sender,
		enabled:  enabled,
	}
}

func (c *Client) Enabled() bool {
	return c.enabled
}

func (c *Client) Send(to, subject, body string) error {
	if !c.enabled {
		log.Printf("Mail disabled, dropping message to %s (%s)", to, subject)
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", c.sender)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(c.host, c.port, c.username, c.password)
	if c.useTLS {
		d.TLSConfig = &tls.Config{ServerName: c.host}
	}

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", to, err)
	}
	return nil
}
