package provider

import (
	"context"
	"fmt"
	"time"
	"voice-notes/internal/config"
	"voice-notes/internal/infra/logger"

	"github.com/wneessen/go-mail"
)

const smtpTimeout = 15 * time.Second

// SMTPMailProvider delivers plain-text mails through the configured SMTP
// server. One connection is opened per message.
type SMTPMailProvider struct {
	Logger *logger.Logger
	Config config.MailConfig
}

func NewSMTPMailProvider(logger *logger.Logger, cfg config.MailConfig) *SMTPMailProvider {
	return &SMTPMailProvider{Logger: logger, Config: cfg}
}

// BuildMessage assembles the mail without sending it.
func (mp *SMTPMailProvider) BuildMessage(to, subject, body string) (*mail.Msg, error) {
	if to == "" {
		return nil, fmt.Errorf("recipient cannot be empty")
	}

	msg := mail.NewMsg()
	if err := msg.From(mp.Config.Sender); err != nil {
		return nil, fmt.Errorf("invalid sender address %q: %w", mp.Config.Sender, err)
	}
	if err := msg.To(to); err != nil {
		return nil, fmt.Errorf("invalid recipient address %q: %w", to, err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	return msg, nil
}

func (mp *SMTPMailProvider) clientOptions() []mail.Option {
	opts := []mail.Option{
		mail.WithPort(mp.Config.Port),
		mail.WithTimeout(smtpTimeout),
	}

	if mp.Config.UseTLS {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.NoTLS))
	}

	if mp.Config.UseAuth {
		auth := mail.SMTPAuthPlain
		if !mp.Config.UseTLS {
			auth = mail.SMTPAuthPlainNoEnc
		}
		opts = append(opts,
			mail.WithSMTPAuth(auth),
			mail.WithUsername(mp.Config.Sender),
			mail.WithPassword(mp.Config.Password),
		)
	}

	return opts
}

// Send delivers one message to a single recipient.
func (mp *SMTPMailProvider) Send(ctx context.Context, to string, subject string, body string) error {
	msg, err := mp.BuildMessage(to, subject, body)
	if err != nil {
		return err
	}

	client, err := mail.NewClient(mp.Config.Server, mp.clientOptions()...)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send mail via %s:%d: %w", mp.Config.Server, mp.Config.Port, err)
	}

	mp.Logger.Info(fmt.Sprintf("Mail sent to %s via %s:%d", to, mp.Config.Server, mp.Config.Port))
	return nil
}
