package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/dmitrijs2005/assessvault/internal/client/models"
	"github.com/dmitrijs2005/assessvault/internal/client/repositories/kv"
	"github.com/dmitrijs2005/assessvault/internal/common"
	"github.com/dmitrijs2005/assessvault/internal/cryptox"
	"github.com/dmitrijs2005/assessvault/internal/logging"
)

const recordsKeyPrefix = "records:"

func recordsKey(username string) string {
	return recordsKeyPrefix + username
}

// RecordService stores each user's record sequence as one sealed envelope.
//
// Contract:
//   - SaveRecords: seal records and overwrite the user's envelope.
//   - LoadRecords: (nil, nil) when the user has no envelope yet; otherwise
//     the decrypted sequence, or ErrAuthenticationFailed /
//     ErrMalformedEnvelope / ErrInvalidKeyMaterial unchanged.
//   - AppendRecord: load, append, save. Two concurrent appends for the same
//     user may lose one of them.
//   - UpgradeLegacyRecords: re-seal an envelope written under the legacy
//     static salt with the account's own salt.
//   - DeleteRecords: drop the user's envelope.
//   - Owners: usernames that have an envelope, sorted.
type RecordService interface {
	SaveRecords(ctx context.Context, username string, km models.KeyMaterial, records []json.RawMessage) error
	LoadRecords(ctx context.Context, username string, km models.KeyMaterial) ([]json.RawMessage, error)
	AppendRecord(ctx context.Context, username string, km models.KeyMaterial, record json.RawMessage) error
	UpgradeLegacyRecords(ctx context.Context, username string, km models.KeyMaterial) (bool, error)
	DeleteRecords(ctx context.Context, username string) error
	Owners(ctx context.Context) ([]string, error)
}

type recordService struct {
	repo kv.Repository
	log  logging.Logger
}

// NewRecordService constructs a RecordService over the local database.
func NewRecordService(db *sql.DB, log logging.Logger) RecordService {
	return &recordService{
		repo: kv.NewSQLiteRepository(db),
		log:  log.With("component", "records"),
	}
}

func (s *recordService) deriveKey(ctx context.Context, username string, km models.KeyMaterial) (*cryptox.Key, error) {
	if cryptox.IsLegacySalt(km.Salt) {
		s.log.Warn(ctx, "deriving record key with the legacy static salt", "username", username)
	}
	return cryptox.DeriveKey(km.PasswordDigest, km.Salt)
}

func (s *recordService) SaveRecords(ctx context.Context, username string, km models.KeyMaterial, records []json.RawMessage) error {
	key, err := s.deriveKey(ctx, username, km)
	if err != nil {
		return err
	}
	return s.seal(ctx, username, key, records)
}

func (s *recordService) seal(ctx context.Context, username string, key *cryptox.Key, records []json.RawMessage) error {
	if records == nil {
		records = []json.RawMessage{}
	}

	env, err := cryptox.Encrypt(records, key)
	if err != nil {
		return fmt.Errorf("encrypt records: %w", err)
	}
	blob, err := env.Marshal()
	if err != nil {
		return fmt.Errorf("encode envelope: %w", err)
	}

	if err := s.repo.Set(ctx, recordsKey(username), blob); err != nil {
		return storageError(err)
	}
	s.log.Debug(ctx, "records saved", "username", username, "count", len(records))
	return nil
}

func (s *recordService) envelope(ctx context.Context, username string) (*cryptox.Envelope, error) {
	blob, err := s.repo.Get(ctx, recordsKey(username))
	if err != nil {
		return nil, storageError(err)
	}
	if blob == nil {
		return nil, nil
	}
	return cryptox.UnmarshalEnvelope(blob)
}

func openRecords(env *cryptox.Envelope, key *cryptox.Key) ([]json.RawMessage, error) {
	var records []json.RawMessage
	if err := cryptox.Decrypt(env, key, &records); err != nil {
		return nil, err
	}
	if records == nil {
		records = []json.RawMessage{}
	}
	return records, nil
}

func (s *recordService) LoadRecords(ctx context.Context, username string, km models.KeyMaterial) ([]json.RawMessage, error) {
	env, err := s.envelope(ctx, username)
	if err != nil || env == nil {
		return nil, err
	}

	key, err := s.deriveKey(ctx, username, km)
	if err != nil {
		return nil, err
	}
	return openRecords(env, key)
}

func (s *recordService) AppendRecord(ctx context.Context, username string, km models.KeyMaterial, record json.RawMessage) error {
	env, err := s.envelope(ctx, username)
	if err != nil {
		return err
	}

	key, err := s.deriveKey(ctx, username, km)
	if err != nil {
		return err
	}

	records := []json.RawMessage{}
	if env != nil {
		if records, err = openRecords(env, key); err != nil {
			return err
		}
	}

	return s.seal(ctx, username, key, append(records, record))
}

func (s *recordService) UpgradeLegacyRecords(ctx context.Context, username string, km models.KeyMaterial) (bool, error) {
	if cryptox.IsLegacySalt(km.Salt) {
		return false, nil
	}

	env, err := s.envelope(ctx, username)
	if err != nil || env == nil {
		return false, err
	}

	key, err := cryptox.DeriveKey(km.PasswordDigest, km.Salt)
	if err != nil {
		return false, err
	}
	if _, err := openRecords(env, key); !errors.Is(err, common.ErrAuthenticationFailed) {
		return false, err
	}

	legacyKey, err := cryptox.DeriveKey(km.PasswordDigest, "")
	if err != nil {
		return false, err
	}
	records, err := openRecords(env, legacyKey)
	if err != nil {
		return false, err
	}

	if err := s.seal(ctx, username, key, records); err != nil {
		return false, err
	}
	s.log.Info(ctx, "legacy records re-encrypted with account salt", "username", username)
	return true, nil
}

func (s *recordService) DeleteRecords(ctx context.Context, username string) error {
	if err := s.repo.Delete(ctx, recordsKey(username)); err != nil {
		return storageError(err)
	}
	return nil
}

func (s *recordService) Owners(ctx context.Context) ([]string, error) {
	envelopes, err := s.repo.List(ctx, recordsKeyPrefix)
	if err != nil {
		return nil, storageError(err)
	}

	owners := make([]string, 0, len(envelopes))
	for key := range envelopes {
		owners = append(owners, strings.TrimPrefix(key, recordsKeyPrefix))
	}
	sort.Strings(owners)
	return owners, nil
}
