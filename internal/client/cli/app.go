package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/assessvault/internal/client/config"
	"github.com/dmitrijs2005/assessvault/internal/client/services"
	"github.com/dmitrijs2005/assessvault/internal/client/session"
	"github.com/dmitrijs2005/assessvault/internal/client/storage"
	"github.com/dmitrijs2005/assessvault/internal/common"
	"github.com/dmitrijs2005/assessvault/internal/filex"
	"github.com/dmitrijs2005/assessvault/internal/logging"
)

// User-facing texts for failures. They deliberately say nothing about which
// check failed.
const (
	msgInvalidCredentials = "Invalid username or password"
	msgCannotAccess       = "Cannot access records"
	msgStorage            = "Local storage is unavailable"
)

type App struct {
	config   *config.Config
	db       *sql.DB
	log      logging.Logger
	accounts services.AccountService
	records  services.RecordService
	session  *session.Context
	notify   Notifier
	reader   *bufio.Reader
	out      io.Writer
	now      func() time.Time
}

// NewApp opens the local database named in c and wires the services.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log, err := logging.New(os.Stderr, c.LogLevel)
	if err != nil {
		return nil, err
	}

	path, err := filex.EnsureParentDir(c.DatabasePath)
	if err != nil {
		return nil, err
	}

	db, err := storage.InitDatabase(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	return &App{
		config:   c,
		db:       db,
		log:      log,
		accounts: services.NewAccountService(db, log),
		records:  services.NewRecordService(db, log),
		session:  &session.Context{},
		notify:   NewConsoleNotifier(os.Stdout),
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		now:      time.Now,
	}, nil
}

// Run migrates legacy accounts and serves the REPL until the user exits.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	if n, err := a.accounts.MigrateLegacyAccounts(ctx); err != nil {
		a.log.Error(ctx, "legacy account migration failed", "error", err)
		a.show(msgStorage, SeverityError)
		return err
	} else if n > 0 {
		a.show(fmt.Sprintf("Upgraded %d account(s) to hashed passwords", n), SeverityInfo)
	}

	if orphans, err := a.orphanedRecords(ctx); err != nil {
		a.log.Warn(ctx, "orphaned record check failed", "error", err)
	} else if len(orphans) > 0 {
		a.log.Warn(ctx, "records without an account", "usernames", orphans)
	}

	a.Root(ctx)
	return nil
}

// orphanedRecords lists users that have stored records but no account.
func (a *App) orphanedRecords(ctx context.Context) ([]string, error) {
	owners, err := a.records.Owners(ctx)
	if err != nil {
		return nil, err
	}

	var orphans []string
	for _, name := range owners {
		_, err := a.accounts.Get(ctx, name)
		switch {
		case errors.Is(err, common.ErrNotFound):
			orphans = append(orphans, name)
		case err != nil:
			return nil, err
		}
	}
	return orphans, nil
}

// Close ends the session and releases the database.
func (a *App) Close() error {
	a.session.End()
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.session.Active()
}

func (a *App) show(message string, severity Severity) {
	var d time.Duration
	if a.config != nil {
		d = a.config.MessageDuration
	}
	a.notify(message, severity, d)
}

// fail reports err to the user with a message that does not reveal whether
// a key mismatch or tampering caused it, logs the detail, and returns err.
func (a *App) fail(ctx context.Context, op string, err error) error {
	a.log.Error(ctx, op+" failed", "error", err)

	switch {
	case errors.Is(err, common.ErrInvalidCredentials):
		a.show(msgInvalidCredentials, SeverityError)
	case errors.Is(err, common.ErrAuthenticationFailed),
		errors.Is(err, common.ErrMalformedEnvelope),
		errors.Is(err, common.ErrInvalidKeyMaterial):
		a.show(msgCannotAccess, SeverityError)
	case errors.Is(err, common.ErrStorageUnavailable):
		a.show(msgStorage, SeverityError)
	case errors.Is(err, common.ErrDuplicateUsername):
		a.show("That username is already taken", SeverityError)
	case errors.Is(err, common.ErrInvalidInput):
		a.show("Username and password are required", SeverityError)
	default:
		a.show(err.Error(), SeverityError)
	}
	return err
}
