package notify

import (
	"fmt"
	"log/slog"
	"net/smtp"
	"os"
)

// Notifier delivers a rendered message.
type Notifier interface {
	Send(msg Message) error
}

// Config holds SMTP transport settings.
type Config struct {
	Host string
	Port string
	User string
	Pass string
	From string
}

// LoadConfig reads SMTP configuration from environment variables. An empty
// Host disables the transport; messages then go straight to the fallback.
func LoadConfig() Config {
	cfg := Config{
		Port: "587",
		From: "noreply@formula.com",
	}
	if v := os.Getenv("HORAS_SMTP_HOST"); v != "" {
		cfg.Host = v
	}
	if v := os.Getenv("HORAS_SMTP_PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("HORAS_SMTP_USER"); v != "" {
		cfg.User = v
	}
	if v := os.Getenv("HORAS_SMTP_PASS"); v != "" {
		cfg.Pass = v
	}
	if v := os.Getenv("HORAS_SMTP_FROM"); v != "" {
		cfg.From = v
	}
	return cfg
}

// SMTPNotifier sends messages over SMTP.
type SMTPNotifier struct {
	cfg Config
}

// NewSMTPNotifier creates a Notifier using the given transport settings.
func NewSMTPNotifier(cfg Config) *SMTPNotifier {
	return &SMTPNotifier{cfg: cfg}
}

func (n *SMTPNotifier) Send(msg Message) error {
	if n.cfg.Host == "" {
		return fmt.Errorf("smtp transport not configured")
	}
	body := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		n.cfg.From, msg.To, msg.Subject, msg.Body)
	addr := n.cfg.Host + ":" + n.cfg.Port
	var auth smtp.Auth
	if n.cfg.User != "" {
		auth = smtp.PlainAuth("", n.cfg.User, n.cfg.Pass, n.cfg.Host)
	}
	if err := smtp.SendMail(addr, auth, n.cfg.From, []string{msg.To}, []byte(body)); err != nil {
		return fmt.Errorf("sending mail to %s: %w", msg.To, err)
	}
	return nil
}

// LoggedNotifier wraps a transport and absorbs its failures: when delivery
// fails, the full message content is logged for manual sending and the
// error is swallowed. Account creation has already succeeded by the time a
// notification goes out, so a transport failure must never become a
// user-visible error.
type LoggedNotifier struct {
	transport Notifier
	log       *slog.Logger
}

// NewLoggedNotifier wraps transport with the log fallback.
func NewLoggedNotifier(transport Notifier, log *slog.Logger) *LoggedNotifier {
	if log == nil {
		log = slog.Default()
	}
	return &LoggedNotifier{transport: transport, log: log}
}

func (n *LoggedNotifier) Send(msg Message) error {
	if n.transport != nil {
		err := n.transport.Send(msg)
		if err == nil {
			return nil
		}
		n.log.Warn("notification delivery failed, logging content for manual sending", "error", err)
	}
	n.log.Info("notification content",
		"to", msg.To,
		"subject", msg.Subject,
		"body", msg.Body,
	)
	return nil
}
