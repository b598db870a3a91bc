// Package services contains the credential and encrypted-record services of
// the assessvault client: the account store (register, authenticate, legacy
// migration) and the encrypted record store.
//
// Services are stateless. Record operations take the caller's key material
// explicitly and never consult the session.
package services

import (
	"context"
	"crypto/subtle"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dmitrijs2005/assessvault/internal/client/models"
	"github.com/dmitrijs2005/assessvault/internal/client/repositories/kv"
	"github.com/dmitrijs2005/assessvault/internal/common"
	"github.com/dmitrijs2005/assessvault/internal/cryptox"
	"github.com/dmitrijs2005/assessvault/internal/dbx"
	"github.com/dmitrijs2005/assessvault/internal/logging"
)

// accountsKey is the kv key holding the JSON map username -> Account.
const accountsKey = "accounts"

// AccountService defines account operations.
//
// Contract:
//   - Register: create an account; ErrDuplicateUsername if the name is taken.
//   - Authenticate: verify a password; ErrInvalidCredentials for an unknown
//     user and for a wrong password alike.
//   - MigrateLegacyAccounts: digest plaintext passwords and add missing
//     salts; idempotent.
//   - Get: look up an account without verifying anything.
//
// Storage failures are reported as common.ErrStorageUnavailable.
type AccountService interface {
	Register(ctx context.Context, username string, password []byte, profile models.Profile) error
	Authenticate(ctx context.Context, username string, password []byte) (*models.Account, error)
	MigrateLegacyAccounts(ctx context.Context) (int, error)
	Get(ctx context.Context, username string) (*models.Account, error)
}

type accountService struct {
	db      *sql.DB
	log     logging.Logger
	now     func() time.Time
	newSalt func() (string, error)
}

// NewAccountService constructs an AccountService over the local database.
func NewAccountService(db *sql.DB, log logging.Logger) AccountService {
	return &accountService{
		db:      db,
		log:     log.With("component", "accounts"),
		now:     func() time.Time { return time.Now().UTC() },
		newSalt: cryptox.NewSalt,
	}
}

// accountMap is the persisted shape of the "accounts" blob.
type accountMap map[string]*models.Account

func storageError(err error) error {
	return fmt.Errorf("%w: %w", common.ErrStorageUnavailable, err)
}

func loadAccounts(ctx context.Context, repo kv.Repository) (accountMap, error) {
	blob, err := repo.Get(ctx, accountsKey)
	if err != nil {
		return nil, storageError(err)
	}
	accounts := make(accountMap)
	if blob == nil {
		return accounts, nil
	}
	if err := json.Unmarshal(blob, &accounts); err != nil {
		return nil, storageError(fmt.Errorf("decode accounts: %w", err))
	}
	if accounts == nil {
		return nil, storageError(errors.New("decode accounts: blob is null"))
	}
	for name, acc := range accounts {
		if acc == nil {
			return nil, storageError(fmt.Errorf("decode accounts: empty entry %q", name))
		}
	}
	return accounts, nil
}

func saveAccounts(ctx context.Context, repo kv.Repository, accounts accountMap) error {
	blob, err := json.Marshal(accounts)
	if err != nil {
		return storageError(fmt.Errorf("encode accounts: %w", err))
	}
	if err := repo.Set(ctx, accountsKey, blob); err != nil {
		return storageError(err)
	}
	return nil
}

// withAccounts runs fn over the account map inside one transaction and
// persists the map when fn reports a change.
func (s *accountService) withAccounts(ctx context.Context, fn func(accounts accountMap) (bool, error)) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := kv.NewSQLiteRepository(tx)

		accounts, err := loadAccounts(ctx, repo)
		if err != nil {
			return err
		}
		changed, err := fn(accounts)
		if err != nil || !changed {
			return err
		}
		return saveAccounts(ctx, repo, accounts)
	})
	if err != nil && !isDomainError(err) {
		return storageError(err)
	}
	return err
}

func isDomainError(err error) bool {
	return errors.Is(err, common.ErrStorageUnavailable) ||
		errors.Is(err, common.ErrDuplicateUsername) ||
		errors.Is(err, common.ErrInvalidCredentials) ||
		errors.Is(err, common.ErrInvalidInput) ||
		errors.Is(err, common.ErrNotFound)
}

// Register creates an account with a fresh random salt. The password is
// kept only as its digest.
func (s *accountService) Register(ctx context.Context, username string, password []byte, profile models.Profile) error {
	if strings.TrimSpace(username) == "" || len(password) == 0 {
		return fmt.Errorf("%w: username and password are required", common.ErrInvalidInput)
	}

	salt, err := s.newSalt()
	if err != nil {
		return fmt.Errorf("generate salt: %w", err)
	}
	digest := cryptox.Digest(password)

	err = s.withAccounts(ctx, func(accounts accountMap) (bool, error) {
		if _, exists := accounts[username]; exists {
			return false, common.ErrDuplicateUsername
		}
		accounts[username] = &models.Account{
			Username:       username,
			PasswordDigest: digest,
			Salt:           salt,
			Profile:        profile,
			RegisteredAt:   s.now(),
		}
		return true, nil
	})
	if err != nil {
		return err
	}

	s.log.Info(ctx, "account registered", "username", username)
	return nil
}

// Authenticate checks password against the stored digest and records the
// login time. The returned account includes the salt.
func (s *accountService) Authenticate(ctx context.Context, username string, password []byte) (*models.Account, error) {
	candidate := []byte(cryptox.Digest(password))

	var result *models.Account
	err := s.withAccounts(ctx, func(accounts accountMap) (bool, error) {
		acc, ok := accounts[username]
		stored := []byte{}
		if ok {
			stored = []byte(acc.PasswordDigest)
		}
		if subtle.ConstantTimeCompare(stored, candidate) == 0 || !ok {
			return false, common.ErrInvalidCredentials
		}

		now := s.now()
		acc.LastLoginAt = &now
		copied := *acc
		result = &copied
		return true, nil
	})
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			s.log.Warn(ctx, "authentication failed")
		}
		return nil, err
	}

	if cryptox.IsLegacySalt(result.Salt) {
		s.log.Warn(ctx, "account has no salt, records use the legacy key", "username", username)
	}
	return result, nil
}

// MigrateLegacyAccounts digests any plaintext password left from older
// versions, removes the plaintext and gives unsalted accounts a salt. It
// returns how many accounts were changed; a second run returns 0 and does
// not rewrite the store. Accounts with neither a digest nor a plaintext
// password cannot be repaired and are left untouched.
func (s *accountService) MigrateLegacyAccounts(ctx context.Context) (int, error) {
	salts, err := s.saltsForUnsalted(ctx)
	if err != nil {
		return 0, err
	}

	migrated := 0
	err = s.withAccounts(ctx, func(accounts accountMap) (bool, error) {
		names := make([]string, 0, len(accounts))
		for name := range accounts {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			acc := accounts[name]
			if acc.LegacyPassword == "" && acc.PasswordDigest == "" {
				s.log.Warn(ctx, "skipping account without credentials", "username", name)
				continue
			}

			changed := false
			if acc.LegacyPassword != "" {
				if acc.PasswordDigest == "" {
					acc.PasswordDigest = cryptox.Digest([]byte(acc.LegacyPassword))
				}
				acc.LegacyPassword = ""
				changed = true
			}
			if acc.Salt == "" {
				salt, ok := salts[name]
				if !ok {
					// Appeared after the salts were drawn; next run picks it up.
					s.log.Debug(ctx, "no salt prepared for account", "username", name)
				} else {
					acc.Salt = salt
					changed = true
				}
			}
			if acc.Username == "" {
				acc.Username = name
				changed = true
			}
			if changed {
				migrated++
			}
		}
		return migrated > 0, nil
	})
	if err != nil {
		return 0, err
	}

	if migrated > 0 {
		s.log.Info(ctx, "legacy accounts migrated", "count", migrated)
	}
	return migrated, nil
}

// saltsForUnsalted draws a salt for every stored account lacking one, ahead
// of the migration transaction.
func (s *accountService) saltsForUnsalted(ctx context.Context) (map[string]string, error) {
	accounts, err := loadAccounts(ctx, kv.NewSQLiteRepository(s.db))
	if err != nil {
		return nil, err
	}

	salts := make(map[string]string)
	for name, acc := range accounts {
		if acc.Salt != "" || (acc.LegacyPassword == "" && acc.PasswordDigest == "") {
			continue
		}
		salt, err := s.newSalt()
		if err != nil {
			return nil, fmt.Errorf("generate salt: %w", err)
		}
		salts[name] = salt
	}
	return salts, nil
}

// Get returns the stored account or common.ErrNotFound.
func (s *accountService) Get(ctx context.Context, username string) (*models.Account, error) {
	accounts, err := loadAccounts(ctx, kv.NewSQLiteRepository(s.db))
	if err != nil {
		return nil, err
	}
	acc, ok := accounts[username]
	if !ok {
		return nil, common.ErrNotFound
	}
	copied := *acc
	return &copied, nil
}
