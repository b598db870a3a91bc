package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/dmitrijs2005/assessvault/internal/client/catalog"
	"github.com/dmitrijs2005/assessvault/internal/client/models"
	"github.com/dmitrijs2005/assessvault/internal/client/repositories/kv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loggedInApp(t *testing.T) *testApp {
	t.Helper()
	ta := newTestApp(t, "alice", "secret1", "a@x.com", "Alice", "alice", "secret1")
	ctx := context.Background()
	require.NoError(t, ta.Register(ctx))
	require.NoError(t, ta.Login(ctx))
	return ta
}

func answers(n int, v string) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func TestTake_SavesEncryptedResult(t *testing.T) {
	ta := loggedInApp(t)
	ctx := context.Background()

	as, err := catalog.ByIndex(3)
	require.NoError(t, err)

	ta.feed(answers(len(as.Questions), "2")...)
	require.NoError(t, ta.Take(ctx, []string{"3"}))
	assert.Equal(t, "Result saved", ta.lastMessage(t).text)
	assert.Contains(t, ta.out.String(), "Total")

	blob, err := kv.NewSQLiteRepository(ta.db).Get(ctx, "records:alice")
	require.NoError(t, err)
	assert.NotContains(t, string(blob), as.Name)

	s, _ := ta.session.Current()
	records, err := ta.records.LoadRecords(ctx, "alice", s.KeyMaterial)
	require.NoError(t, err)
	require.Len(t, records, 1)

	res, err := models.DecodeRecord[models.AssessmentResult](records[0])
	require.NoError(t, err)
	assert.Equal(t, as.Name, res.Assessment)
	assert.Equal(t, map[string]int{catalog.TotalDomain: 20}, res.Scores)
	assert.NotEmpty(t, res.ID)
}

func TestTake_RetriesInvalidAnswers(t *testing.T) {
	ta := loggedInApp(t)

	as, err := catalog.ByIndex(2)
	require.NoError(t, err)

	input := append([]string{"0", "seven", "9"}, answers(len(as.Questions), "5")...)
	ta.feed(input...)
	require.NoError(t, ta.Take(context.Background(), []string{"2"}))
	assert.Equal(t, 3, strings.Count(ta.out.String(), "Please enter a number from 1 to 5"))
}

func TestTake_Usage(t *testing.T) {
	ta := loggedInApp(t)
	ctx := context.Background()

	require.NoError(t, ta.Take(ctx, nil))
	require.NoError(t, ta.Take(ctx, []string{"x"}))
	assert.Equal(t, 2, strings.Count(ta.out.String(), "Usage: take"))

	require.Error(t, ta.Take(ctx, []string{"9"}))
}

func TestTake_InputEndsEarly(t *testing.T) {
	ta := loggedInApp(t)
	ta.feed("1", "2")
	require.Error(t, ta.Take(context.Background(), []string{"3"}))

	s, _ := ta.session.Current()
	records, err := ta.records.LoadRecords(context.Background(), "alice", s.KeyMaterial)
	require.NoError(t, err)
	assert.Nil(t, records, "an aborted run must not store anything")
}

func TestResults_ListsAndClears(t *testing.T) {
	ta := loggedInApp(t)
	ctx := context.Background()

	require.NoError(t, ta.Results(ctx))
	assert.Equal(t, "No results yet", ta.lastMessage(t).text)

	as, err := catalog.ByIndex(3)
	require.NoError(t, err)
	ta.feed(answers(len(as.Questions), "1")...)
	require.NoError(t, ta.Take(ctx, []string{"3"}))

	ta.out.Reset()
	require.NoError(t, ta.Results(ctx))
	assert.Contains(t, ta.out.String(), "#1 Mental Health Screening")

	require.NoError(t, ta.Clear(ctx))
	require.NoError(t, ta.Results(ctx))
	assert.Equal(t, "No results yet", ta.lastMessage(t).text)
}

func TestResults_CorruptEnvelopeShowsGenericMessage(t *testing.T) {
	ta := loggedInApp(t)
	ctx := context.Background()

	repo := kv.NewSQLiteRepository(ta.db)
	for _, blob := range []string{`{"iv":"zz","ciphertext":"00"}`, `{"iv":"000000000000000000000000","ciphertext":"00112233445566778899aabbccddeeff"}`} {
		require.NoError(t, repo.Set(ctx, "records:alice", []byte(blob)))
		require.Error(t, ta.Results(ctx))
		assert.Equal(t, msgCannotAccess, ta.lastMessage(t).text)
	}
}

func TestRecordCommandsRequireLogin(t *testing.T) {
	ta := newTestApp(t)
	ctx := context.Background()

	require.ErrorIs(t, ta.Take(ctx, []string{"1"}), ErrNotLoggedIn)
	require.ErrorIs(t, ta.Results(ctx), ErrNotLoggedIn)
	require.ErrorIs(t, ta.Clear(ctx), ErrNotLoggedIn)
}

func TestListAssessments(t *testing.T) {
	ta := newTestApp(t)
	require.NoError(t, ta.ListAssessments(context.Background()))
	out := ta.out.String()
	assert.Contains(t, out, "1. Career Assessment (RIASEC) (60 questions)")
	assert.Contains(t, out, "3. Mental Health Screening (10 questions)")
}
