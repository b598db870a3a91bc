package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestNewRecordDecodeRecord_AssessmentResult(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.FixedZone("X", 3600))
	src := NewAssessmentResult("Mental Health Screening", []int{1, 2, 3}, map[string]int{"Total": 6}, now)

	_, err := uuid.Parse(src.ID)
	require.NoError(t, err)
	require.Equal(t, time.UTC, src.CompletedAt.Location())

	raw, err := NewRecord(src)
	require.NoError(t, err)

	got, err := DecodeRecord[AssessmentResult](raw)
	require.NoError(t, err)
	require.Equal(t, src.ID, got.ID)
	require.Equal(t, src.Answers, got.Answers)
	require.Equal(t, src.Scores, got.Scores)
	require.True(t, src.CompletedAt.Equal(got.CompletedAt))
}

func TestNewAssessmentResult_UniqueIDs(t *testing.T) {
	a := NewAssessmentResult("x", nil, nil, time.Now())
	b := NewAssessmentResult("x", nil, nil, time.Now())
	require.NotEqual(t, a.ID, b.ID)
}

func TestNewRecord_Unencodable(t *testing.T) {
	_, err := NewRecord(make(chan int))
	require.Error(t, err)
}

func TestDecodeRecord_WrongShape(t *testing.T) {
	_, err := DecodeRecord[AssessmentResult](json.RawMessage(`[1,2]`))
	require.Error(t, err)
}

func TestAccount_JSONShape(t *testing.T) {
	acc := Account{
		Username:       "alice",
		PasswordDigest: "d",
		Salt:           "s",
		Profile:        Profile{Email: "a@x.com", FullName: "Alice"},
		RegisteredAt:   time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	b, err := json.Marshal(acc)
	require.NoError(t, err)
	require.JSONEq(t, `{
		"username": "alice",
		"passwordDigest": "d",
		"salt": "s",
		"profile": {"email": "a@x.com", "fullName": "Alice"},
		"registeredAt": "2025-01-02T03:04:05Z",
		"lastLoginAt": null
	}`, string(b))

	require.Equal(t, KeyMaterial{PasswordDigest: "d", Salt: "s"}, acc.KeyMaterial())
}

func TestAccount_LegacyPasswordField(t *testing.T) {
	var acc Account
	require.NoError(t, json.Unmarshal([]byte(`{"username":"old","password":"plain"}`), &acc))
	require.Equal(t, "plain", acc.LegacyPassword)
	require.Empty(t, acc.PasswordDigest)
	require.Empty(t, acc.Salt)
}
