package mailer

import (
	"context"
	"errors"
	"io"
	"net/textproto"

	"gopkg.in/gomail.v2"

	"caseapi/internal/config"
)

// smtpMailer sends mail through a plain SMTP endpoint using gomail, which
// handles MIME multipart encoding of the attachment bundle.
type smtpMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTP builds a Mailer from SMTP settings. Credentials are optional;
// without them the dialer connects unauthenticated.
func NewSMTP(cfg config.SMTPConfig) (Mailer, error) {
	if cfg.Host == "" {
		return nil, errors.New("smtp host is required")
	}
	if cfg.From == "" {
		return nil, errors.New("smtp from address is required")
	}
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	d.SSL = cfg.UseSSL
	return &smtpMailer{dialer: d, from: cfg.From}, nil
}

func (m *smtpMailer) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return &DeliveryError{Kind: KindTransient, Err: err}
	}

	out := gomail.NewMessage()
	out.SetHeader("From", m.from)
	out.SetHeader("To", msg.To)
	out.SetHeader("Subject", msg.Subject)
	out.SetBody("text/html", msg.HTMLBody)

	for _, att := range msg.Attachments {
		content := att.Content
		out.Attach(att.Filename,
			gomail.SetHeader(map[string][]string{"Content-Type": {att.ContentType}}),
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(content)
				return err
			}),
		)
	}

	if err := m.dialer.DialAndSend(out); err != nil {
		return &DeliveryError{Kind: classify(err), Err: err}
	}
	return nil
}

// classify maps SMTP reply codes to a failure kind. 530/534/535/538 are the
// authentication-class replies; everything else is treated as transient.
func classify(err error) Kind {
	var te *textproto.Error
	if errors.As(err, &te) {
		switch te.Code {
		case 530, 534, 535, 538:
			return KindAuth
		}
	}
	return KindTransient
}
