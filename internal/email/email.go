// Package email formats contact inquiries and sends them over SMTP.
package email

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"mime"
	"net/smtp"
	"strings"

	"github.com/cnk-ceneka/cnk/internal/inquiry"
)

// SMTPConfig holds SMTP connection settings.
type SMTPConfig struct {
	Host string
	Port string
	User string
	Pass string
	From string
}

// IsConfigured returns true if SMTP settings are present.
func (c SMTPConfig) IsConfigured() bool {
	return c.Host != "" && c.From != ""
}

// Subject builds the subject line of an inquiry notification.
func Subject(inq *inquiry.Inquiry) string {
	return fmt.Sprintf("Nuevo contacto %s: %s", inq.Reference, oneLine(inq.Name))
}

// FormatInquiry builds the plain-text notification body. siteURL, when set,
// is used to link the property the inquiry is about.
func FormatInquiry(inq *inquiry.Inquiry, siteURL string) string {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "Nuevo mensaje desde el formulario de contacto.\n\n")
	fmt.Fprintf(&buf, "Folio:    %s\n", inq.Reference)
	fmt.Fprintf(&buf, "Nombre:   %s\n", inq.Name)
	fmt.Fprintf(&buf, "Correo:   %s\n", inq.Email)
	if inq.Phone != "" {
		fmt.Fprintf(&buf, "Teléfono: %s\n", inq.Phone)
	}
	fmt.Fprintf(&buf, "Idioma:   %s\n", inq.Lang)
	if !inq.CreatedAt.IsZero() {
		fmt.Fprintf(&buf, "Fecha:    %s\n", inq.CreatedAt.Format("2006-01-02 15:04"))
	}

	if inq.PropertyID != nil {
		if siteURL != "" {
			fmt.Fprintf(&buf, "Propiedad: %s/property/%d\n", strings.TrimRight(siteURL, "/"), *inq.PropertyID)
		} else {
			fmt.Fprintf(&buf, "Propiedad: #%d\n", *inq.PropertyID)
		}
	}

	fmt.Fprintf(&buf, "\nMensaje:\n")
	for _, line := range strings.Split(inq.Message, "\n") {
		fmt.Fprintf(&buf, "  %s\n", strings.TrimRight(line, "\r"))
	}

	return buf.String()
}

// SendFunc matches Send.
type SendFunc func(cfg SMTPConfig, to []string, subject, body string) error

// Notifier e-mails new inquiries to the office inbox.
type Notifier struct {
	cfg     SMTPConfig
	to      []string
	siteURL string
	send    SendFunc
}

// NewNotifier creates a notifier delivering to the given recipients.
func NewNotifier(cfg SMTPConfig, to []string, siteURL string) *Notifier {
	return &Notifier{cfg: cfg, to: to, siteURL: siteURL, send: Send}
}

// WithSendFunc replaces the transport, for tests and dry runs.
func (n *Notifier) WithSendFunc(f SendFunc) *Notifier {
	n.send = f
	return n
}

// Recipients returns the office addresses, or none if SMTP is not set up.
func (n *Notifier) Recipients() []string {
	if !n.cfg.IsConfigured() {
		return nil
	}
	return n.to
}

// Notify sends the inquiry to every recipient in one message.
func (n *Notifier) Notify(inq *inquiry.Inquiry) error {
	if len(n.Recipients()) == 0 {
		return fmt.Errorf("no notification recipients")
	}
	return n.send(n.cfg, n.to, Subject(inq), FormatInquiry(inq, n.siteURL))
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Send sends an email via SMTP.
// Supports both port 465 (implicit TLS) and port 587 (STARTTLS).
func Send(cfg SMTPConfig, to []string, subject, body string) error {
	if !cfg.IsConfigured() {
		return fmt.Errorf("SMTP not configured")
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s",
		cfg.From,
		strings.Join(to, ", "),
		mime.QEncoding.Encode("utf-8", oneLine(subject)),
		body,
	)

	addr := cfg.Host + ":" + cfg.Port

	if cfg.Port == "465" {
		return sendImplicitTLS(cfg, addr, to, msg)
	}
	return sendSTARTTLS(cfg, addr, to, msg)
}

// sendImplicitTLS connects over TLS directly (port 465/SMTPS).
func sendImplicitTLS(cfg SMTPConfig, addr string, to []string, msg string) (err error) {
	tlsCfg := &tls.Config{ServerName: cfg.Host}
	conn, err := tls.Dial("tcp", addr, tlsCfg)
	if err != nil {
		return fmt.Errorf("TLS dial: %w", err)
	}

	c, err := smtp.NewClient(conn, cfg.Host)
	if err != nil {
		return fmt.Errorf("creating SMTP client: %w", err)
	}
	defer func() {
		if quitErr := c.Quit(); quitErr != nil && err == nil {
			err = fmt.Errorf("quit: %w", quitErr)
		}
	}()

	if cfg.User != "" {
		auth := smtp.PlainAuth("", cfg.User, cfg.Pass, cfg.Host)
		if err := c.Auth(auth); err != nil {
			return fmt.Errorf("auth: %w", err)
		}
	}

	if err := c.Mail(cfg.From); err != nil {
		return fmt.Errorf("mail from: %w", err)
	}
	for _, rcpt := range to {
		if err := c.Rcpt(rcpt); err != nil {
			return fmt.Errorf("rcpt to %s: %w", rcpt, err)
		}
	}

	w, err := c.Data()
	if err != nil {
		return fmt.Errorf("data: %w", err)
	}
	if _, err := w.Write([]byte(msg)); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close data: %w", err)
	}

	return nil
}

// sendSTARTTLS connects plain then upgrades to TLS (port 587).
func sendSTARTTLS(cfg SMTPConfig, addr string, to []string, msg string) error {
	var auth smtp.Auth
	if cfg.User != "" {
		auth = smtp.PlainAuth("", cfg.User, cfg.Pass, cfg.Host)
	}

	if err := smtp.SendMail(addr, auth, cfg.From, to, []byte(msg)); err != nil {
		return fmt.Errorf("sending email: %w", err)
	}

	return nil
}
