package smtp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wneessen/go-mail"
)

// ErrIncompleteConfig is returned when host, port or credentials are missing
var ErrIncompleteConfig = errors.New("smtp configuration incomplete")

// Settings is the relay used for one delivery
type Settings struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	Timeout  time.Duration
}

// Validate checks that the relay can be dialed
func (s Settings) Validate() error {
	if s.Host == "" || s.Port <= 0 || s.Username == "" || s.Password == "" {
		return ErrIncompleteConfig
	}
	return nil
}

func (s Settings) sender() string {
	if s.From != "" {
		return s.From
	}
	return s.Username
}

// Mail is a plain-text message to one recipient
type Mail struct {
	To      string
	Subject string
	Body    string
}

// Client delivers mail through an authenticated SMTP relay
type Client struct{}

// NewClient creates a new SMTP client
func NewClient() *Client {
	return &Client{}
}

// Send builds the message and delivers it in a single dial
func (c *Client) Send(ctx context.Context, s Settings, m Mail) error {
	if err := s.Validate(); err != nil {
		return err
	}

	msg, err := buildMessage(s, m)
	if err != nil {
		return err
	}

	client, err := newMailClient(s)
	if err != nil {
		return err
	}
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", m.To, err)
	}
	return nil
}

// Verify dials the relay and authenticates without sending anything
func (c *Client) Verify(ctx context.Context, s Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}

	client, err := newMailClient(s)
	if err != nil {
		return err
	}
	if err := client.DialWithContext(ctx); err != nil {
		return fmt.Errorf("failed to connect to %s:%d: %w", s.Host, s.Port, err)
	}
	return client.Close()
}

func newMailClient(s Settings) (*mail.Client, error) {
	opts := []mail.Option{
		mail.WithPort(s.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(s.Username),
		mail.WithPassword(s.Password),
	}
	if s.Port == 465 {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	}
	if s.Timeout > 0 {
		opts = append(opts, mail.WithTimeout(s.Timeout))
	}

	client, err := mail.NewClient(s.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create smtp client: %w", err)
	}
	return client, nil
}

func buildMessage(s Settings, m Mail) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(s.sender()); err != nil {
		return nil, fmt.Errorf("invalid sender %q: %w", s.sender(), err)
	}
	if err := msg.To(m.To); err != nil {
		return nil, fmt.Errorf("invalid recipient %q: %w", m.To, err)
	}
	msg.Subject(m.Subject)
	msg.SetBodyString(mail.TypeTextPlain, m.Body)
	return msg, nil
}
