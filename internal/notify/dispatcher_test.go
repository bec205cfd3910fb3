package notify

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

type captureMailer struct {
	mu    sync.Mutex
	sent  []string
	fail  bool
	calls int
}

func (m *captureMailer) Send(to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.fail {
		return errors.New("smtp down")
	}
	m.sent = append(m.sent, to)
	return nil
}

func TestDispatcherDeliversInBackground(t *testing.T) {
	mailer := &captureMailer{}
	d := NewDispatcher(mailer)

	d.Dispatch("alice@x.com", "Verify your email", "link")
	d.Dispatch("bob@x.com", "Password reset", "link")
	d.Close()

	assert.Equal(t, []string{"alice@x.com", "bob@x.com"}, mailer.sent)
}

func TestDispatcherSwallowsSendFailures(t *testing.T) {
	mailer := &captureMailer{fail: true}
	d := NewDispatcher(mailer)

	// Dispatch nunca devolve erro nem entra em pânico com o mailer fora
	d.Dispatch("alice@x.com", "Verify your email", "link")
	d.Close()

	assert.Equal(t, 1, mailer.calls)
	assert.Empty(t, mailer.sent)
}
