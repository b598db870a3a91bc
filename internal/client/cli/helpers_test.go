package cli

import (
	"bufio"
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/assessvault/internal/client/config"
	"github.com/dmitrijs2005/assessvault/internal/client/services"
	"github.com/dmitrijs2005/assessvault/internal/client/session"
	"github.com/dmitrijs2005/assessvault/internal/client/storage"
	"github.com/dmitrijs2005/assessvault/internal/logging"
	"github.com/stretchr/testify/require"
)

type shownMessage struct {
	text     string
	severity Severity
	duration time.Duration
}

type testApp struct {
	*App
	out      *bytes.Buffer
	messages []shownMessage
}

func (ta *testApp) lastMessage(t *testing.T) shownMessage {
	t.Helper()
	require.NotEmpty(t, ta.messages, "no message shown")
	return ta.messages[len(ta.messages)-1]
}

// newTestApp wires an App over a fresh database with input fed from the
// given lines.
func newTestApp(t *testing.T, lines ...string) *testApp {
	t.Helper()

	origTerm := isTerminal
	isTerminal = func(int) bool { return false }
	t.Cleanup(func() { isTerminal = origTerm })

	ctx := context.Background()
	db, err := storage.InitDatabase(ctx, filepath.Join(t.TempDir(), "vault.db"))
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.LoadDefaults()

	log := logging.Discard()
	ta := &testApp{out: &bytes.Buffer{}}
	ta.App = &App{
		config:   cfg,
		db:       db,
		log:      log,
		accounts: services.NewAccountService(db, log),
		records:  services.NewRecordService(db, log),
		session:  &session.Context{},
		reader:   bufio.NewReader(strings.NewReader(strings.Join(lines, "\n") + "\n")),
		out:      ta.out,
		now:      func() time.Time { return time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC) },
	}
	ta.notify = func(text string, sev Severity, d time.Duration) {
		ta.messages = append(ta.messages, shownMessage{text: text, severity: sev, duration: d})
	}
	t.Cleanup(func() { _ = ta.Close() })
	return ta
}

// feed replaces the remaining input.
func (ta *testApp) feed(lines ...string) {
	ta.reader = bufio.NewReader(strings.NewReader(strings.Join(lines, "\n") + "\n"))
}
