// Package catalog is the fixed set of questionnaires offered by the CLI and
// the scoring applied to a completed run.
package catalog

import (
	"fmt"
)

const (
	// MinAnswer and MaxAnswer bound the Likert scale used for every question.
	MinAnswer = 1
	MaxAnswer = 5

	// TotalDomain collects the scores of questions that have no domain.
	TotalDomain = "Total"
)

// Question is a single prompt. Questions with an empty Domain count toward
// TotalDomain.
type Question struct {
	Text   string
	Domain string
}

// Assessment is one questionnaire.
type Assessment struct {
	Name      string
	Domains   []string
	Questions []Question
}

func questions(texts ...string) []Question {
	qs := make([]Question, len(texts))
	for i, t := range texts {
		qs[i] = Question{Text: t}
	}
	return qs
}

var assessments = []Assessment{
	{
		Name:      "Career Assessment (RIASEC)",
		Domains:   []string{"Realistic", "Investigative", "Artistic", "Social", "Enterprising", "Conventional"},
		Questions: riasecQuestions,
	},
	{
		Name:      "Psychosocial Assessment",
		Domains:   []string{"Family", "School/Work", "Emotional", "Behavioral", "Support"},
		Questions: psychosocialQuestions,
	},
	{
		Name:      "Mental Health Screening",
		Domains:   []string{"Depression", "Anxiety", "Stress", "Suicidality"},
		Questions: mentalHealthQuestions,
	},
}

// All returns the catalog in display order.
func All() []Assessment {
	out := make([]Assessment, len(assessments))
	copy(out, assessments)
	return out
}

// ByIndex returns the assessment at the 1-based position n.
func ByIndex(n int) (Assessment, error) {
	if n < 1 || n > len(assessments) {
		return Assessment{}, fmt.Errorf("no assessment #%d, choose 1-%d", n, len(assessments))
	}
	return assessments[n-1], nil
}

// Score sums answers per question domain. answers must hold one value in
// [MinAnswer, MaxAnswer] per question.
func (a Assessment) Score(answers []int) (map[string]int, error) {
	if len(answers) != len(a.Questions) {
		return nil, fmt.Errorf("expected %d answers, got %d", len(a.Questions), len(answers))
	}

	scores := make(map[string]int)
	for i, q := range a.Questions {
		v := answers[i]
		if v < MinAnswer || v > MaxAnswer {
			return nil, fmt.Errorf("answer %d out of range %d-%d", i+1, MinAnswer, MaxAnswer)
		}
		domain := q.Domain
		if domain == "" {
			domain = TotalDomain
		}
		scores[domain] += v
	}
	return scores, nil
}
