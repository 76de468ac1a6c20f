package notify

import (
	"context"
	"errors"
	"fmt"

	"github.com/Emilio24-dev/Laboratorio/internal/model"
	"github.com/Emilio24-dev/Laboratorio/internal/secret"
	"github.com/wneessen/go-mail"
)

// SMTPSender delivers confirmations through an authenticated SMTP relay.
type SMTPSender struct {
	cfg     model.SMTPConfig
	secrets secret.Provider
}

// NewSMTPSender creates a sender for cfg. The relay password is looked up
// through secrets only when a connection is made.
func NewSMTPSender(cfg model.SMTPConfig, secrets secret.Provider) *SMTPSender {
	return &SMTPSender{cfg: cfg, secrets: secrets}
}

func (s *SMTPSender) Name() string {
	return fmt.Sprintf("smtp(%s:%d)", s.cfg.Host, s.cfg.Port)
}

// Send renders c and delivers it in a single session that is closed
// whether or not the send succeeded.
func (s *SMTPSender) Send(ctx context.Context, c *Confirmation) error {
	msg, err := s.message(c)
	if err != nil {
		return err
	}

	client, err := s.client(ctx)
	if err != nil {
		return err
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("sending via %s: %w", s.cfg.Host, err)
	}

	return nil
}

func (s *SMTPSender) Test(ctx context.Context) error {
	client, err := s.client(ctx)
	if err != nil {
		return err
	}

	if err := client.DialWithContext(ctx); err != nil {
		return fmt.Errorf("connecting to %s: %w", s.cfg.Host, err)
	}

	return client.Close()
}

func (s *SMTPSender) message(c *Confirmation) (*mail.Msg, error) {
	from := s.cfg.Sender()
	if from == "" {
		return nil, errors.New("sender address is not configured (smtp.from or smtp.username)")
	}

	body, err := FormatConfirmation(c)
	if err != nil {
		return nil, fmt.Errorf("rendering confirmation: %w", err)
	}

	msg := mail.NewMsg()

	if err := msg.From(from); err != nil {
		return nil, fmt.Errorf("invalid sender address: %w", err)
	}

	if err := msg.To(c.Recipient); err != nil {
		return nil, fmt.Errorf("invalid recipient address: %w", err)
	}

	msg.Subject(ConfirmationSubject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	return msg, nil
}

func (s *SMTPSender) client(ctx context.Context) (*mail.Client, error) {
	opts := []mail.Option{
		mail.WithTLSPolicy(tlsPolicy(s.cfg.TLSPolicy)),
		mail.WithPort(s.cfg.Port),
	}

	if s.cfg.Timeout > 0 {
		opts = append(opts, mail.WithTimeout(s.cfg.Timeout))
	}

	if s.cfg.Username != "" {
		password, err := s.secrets.Password(ctx, s.cfg.Username)
		if err != nil {
			return nil, fmt.Errorf("resolving relay password: %w", err)
		}

		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.cfg.Username),
			mail.WithPassword(password),
		)
	}

	client, err := mail.NewClient(s.cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("configuring mail client: %w", err)
	}

	return client, nil
}

func tlsPolicy(policy string) mail.TLSPolicy {
	switch policy {
	case model.TLSOpportunistic:
		return mail.TLSOpportunistic
	case model.TLSNone:
		return mail.NoTLS
	default:
		return mail.TLSMandatory
	}
}
