package cli

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/dmitrijs2005/assessvault/internal/client/catalog"
	"github.com/dmitrijs2005/assessvault/internal/client/models"
)

// ListAssessments prints the numbered catalog.
func (a *App) ListAssessments(ctx context.Context) error {
	for i, as := range catalog.All() {
		fmt.Fprintf(a.out, "%d. %s (%d questions)\n", i+1, as.Name, len(as.Questions))
	}
	return nil
}

// Take runs the questionnaire chosen by args[0] and appends the scored
// result to the user's encrypted records.
func (a *App) Take(ctx context.Context, args []string) error {
	s, ok := a.session.Current()
	if !ok {
		return ErrNotLoggedIn
	}
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: take <number> (see 'assessments')")
		return nil
	}

	n, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintln(a.out, "Usage: take <number> (see 'assessments')")
		return nil
	}
	as, err := catalog.ByIndex(n)
	if err != nil {
		return a.fail(ctx, "take", err)
	}

	fmt.Fprintf(a.out, "%s: answer 1 (strongly disagree) to 5 (strongly agree)\n", as.Name)
	answers := make([]int, len(as.Questions))
	for i, q := range as.Questions {
		v, err := GetAnswer(a.reader, fmt.Sprintf("%d/%d %s", i+1, len(as.Questions), q.Text),
			catalog.MinAnswer, catalog.MaxAnswer, a.out)
		if err != nil {
			return err
		}
		answers[i] = v
	}

	scores, err := as.Score(answers)
	if err != nil {
		return a.fail(ctx, "score", err)
	}

	record, err := models.NewRecord(models.NewAssessmentResult(as.Name, answers, scores, a.now()))
	if err != nil {
		return a.fail(ctx, "encode result", err)
	}
	if err := a.records.AppendRecord(ctx, s.Username, s.KeyMaterial, record); err != nil {
		return a.fail(ctx, "save result", err)
	}

	a.printScores(scores)
	a.show("Result saved", SeveritySuccess)
	return nil
}

// Results decrypts and prints every stored result of the current user.
func (a *App) Results(ctx context.Context) error {
	s, ok := a.session.Current()
	if !ok {
		return ErrNotLoggedIn
	}

	records, err := a.records.LoadRecords(ctx, s.Username, s.KeyMaterial)
	if err != nil {
		return a.fail(ctx, "load results", err)
	}
	if len(records) == 0 {
		a.show("No results yet", SeverityInfo)
		return nil
	}

	for i, raw := range records {
		res, err := models.DecodeRecord[models.AssessmentResult](raw)
		if err != nil {
			a.log.Warn(ctx, "skipping unreadable record", "index", i, "error", err)
			continue
		}
		fmt.Fprintf(a.out, "#%d %s (%s)\n", i+1, res.Assessment, res.CompletedAt.Local().Format("2006-01-02 15:04"))
		a.printScores(res.Scores)
	}
	return nil
}

// Clear deletes all stored results of the current user.
func (a *App) Clear(ctx context.Context) error {
	s, ok := a.session.Current()
	if !ok {
		return ErrNotLoggedIn
	}
	if err := a.records.DeleteRecords(ctx, s.Username); err != nil {
		return a.fail(ctx, "clear results", err)
	}
	a.show("Results deleted", SeverityInfo)
	return nil
}

func (a *App) printScores(scores map[string]int) {
	domains := make([]string, 0, len(scores))
	for d := range scores {
		domains = append(domains, d)
	}
	sort.Strings(domains)
	for _, d := range domains {
		fmt.Fprintf(a.out, "   %-14s %d\n", d, scores[d])
	}
}
