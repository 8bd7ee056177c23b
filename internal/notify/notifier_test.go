package notify

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingTransport struct {
	calls int
}

func (f *failingTransport) Send(Message) error {
	f.calls++
	return errors.New("connection refused")
}

func TestRenderWelcome(t *testing.T) {
	msg := RenderWelcome("joana@formula.com", "tempab12cd34")

	assert.Equal(t, "joana@formula.com", msg.To)
	assert.Equal(t, "Studio hours system - account created", msg.Subject)
	assert.Contains(t, msg.Body, "Email:              joana@formula.com")
	assert.Contains(t, msg.Body, "Temporary password: tempab12cd34")
	assert.Contains(t, msg.Body, "choose a new password on first login")
}

func TestLoggedNotifier_AbsorbsTransportFailure(t *testing.T) {
	transport := &failingTransport{}
	notifier := NewLoggedNotifier(transport, nil)

	err := notifier.Send(RenderWelcome("joana@formula.com", "tempab12cd34"))
	require.NoError(t, err, "delivery failure must not surface")
	assert.Equal(t, 1, transport.calls)
}

func TestLoggedNotifier_NilTransport(t *testing.T) {
	notifier := NewLoggedNotifier(nil, nil)
	assert.NoError(t, notifier.Send(Message{To: "joana@formula.com"}))
}

func TestSMTPNotifier_RequiresHost(t *testing.T) {
	notifier := NewSMTPNotifier(Config{})
	assert.Error(t, notifier.Send(Message{To: "joana@formula.com"}))
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("HORAS_SMTP_HOST", "")
	t.Setenv("HORAS_SMTP_PORT", "")
	t.Setenv("HORAS_SMTP_FROM", "")

	cfg := LoadConfig()
	assert.Empty(t, cfg.Host)
	assert.Equal(t, "587", cfg.Port)
	assert.Equal(t, "noreply@formula.com", cfg.From)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("HORAS_SMTP_HOST", "mail.example.com")
	t.Setenv("HORAS_SMTP_PORT", "2525")
	t.Setenv("HORAS_SMTP_USER", "mailer")
	t.Setenv("HORAS_SMTP_PASS", "secret")
	t.Setenv("HORAS_SMTP_FROM", "hours@example.com")

	cfg := LoadConfig()
	assert.Equal(t, "mail.example.com", cfg.Host)
	assert.Equal(t, "2525", cfg.Port)
	assert.Equal(t, "mailer", cfg.User)
	assert.Equal(t, "secret", cfg.Pass)
	assert.Equal(t, "hours@example.com", cfg.From)
}
