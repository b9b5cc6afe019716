package quizsession_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/voltlearn/backend/internal/domain/questionbank"
	"github.com/voltlearn/backend/internal/domain/quizsession"
)

func levelledQuestions(basic, intermediate, advanced int) []questionbank.Question {
	var out []questionbank.Question
	add := func(n int, d questionbank.Difficulty) {
		for i := 0; i < n; i++ {
			q := questionbank.MustQuestion(fmt.Sprintf("%s-%d", d, i), "prompt", []string{"a", "b"}, 0, "")
			q.Difficulty = d
			out = append(out, q)
		}
	}
	add(basic, questionbank.DifficultyBasic)
	add(intermediate, questionbank.DifficultyIntermediate)
	add(advanced, questionbank.DifficultyAdvanced)
	return out
}

func countLevels(qs []questionbank.Question) map[questionbank.Difficulty]int {
	counts := make(map[questionbank.Difficulty]int)
	for _, q := range qs {
		counts[q.Difficulty]++
	}
	return counts
}

func TestSelectBalanced_FollowsMix(t *testing.T) {
	pool := levelledQuestions(30, 30, 30)
	mix := quizsession.DifficultyMix{
		questionbank.DifficultyBasic:        0.5,
		questionbank.DifficultyIntermediate: 0.3,
		questionbank.DifficultyAdvanced:     0.2,
	}

	got := quizsession.SelectBalanced(pool, 20, nil, mix, rand.New(rand.NewSource(1)))

	if len(got) != 20 {
		t.Fatalf("expected 20 questions, got %d", len(got))
	}
	counts := countLevels(got)
	if counts[questionbank.DifficultyBasic] != 10 || counts[questionbank.DifficultyIntermediate] != 6 || counts[questionbank.DifficultyAdvanced] != 4 {
		t.Errorf("unexpected mix: %v", counts)
	}
}

func TestSelectBalanced_TopsUpShortLevels(t *testing.T) {
	pool := levelledQuestions(10, 10, 1)
	mix := quizsession.DifficultyMix{questionbank.DifficultyAdvanced: 1}

	got := quizsession.SelectBalanced(pool, 8, nil, mix, rand.New(rand.NewSource(2)))

	if len(got) != 8 {
		t.Fatalf("expected 8 questions, got %d", len(got))
	}
	if countLevels(got)[questionbank.DifficultyAdvanced] != 1 {
		t.Error("expected the single advanced question to be included")
	}
	seen := make(map[string]bool)
	for _, q := range got {
		if seen[q.ID] {
			t.Fatalf("question %s picked twice", q.ID)
		}
		seen[q.ID] = true
	}
}

func TestSelectBalanced_ClampsToPool(t *testing.T) {
	pool := levelledQuestions(2, 1, 0)
	got := quizsession.SelectBalanced(pool, 10, nil, quizsession.DifficultyMix{questionbank.DifficultyBasic: 1}, nil)
	if len(got) != 3 {
		t.Errorf("expected whole pool of 3, got %d", len(got))
	}
}

func TestNewWithConfig_Balanced(t *testing.T) {
	bank := questionbank.New("instrumentation", "Instrumentation")
	for _, q := range levelledQuestions(20, 20, 20) {
		if err := bank.AddQuestion(q); err != nil {
			t.Fatalf("add: %v", err)
		}
	}

	maxQ := 10
	config := quizsession.SessionConfig{
		MaxQuestions: &maxQ,
		Balanced: quizsession.DifficultyMix{
			questionbank.DifficultyBasic:        0.4,
			questionbank.DifficultyIntermediate: 0.4,
			questionbank.DifficultyAdvanced:     0.2,
		},
	}
	s, err := quizsession.NewWithConfig(bank, config, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	counts := countLevels(s.Questions)
	if counts[questionbank.DifficultyAdvanced] != 2 || counts[questionbank.DifficultyBasic] != 4 {
		t.Errorf("unexpected mix: %v", counts)
	}
}

func TestNewWithConfig_DifficultyFilter(t *testing.T) {
	bank := questionbank.New("instrumentation", "Instrumentation")
	for _, q := range levelledQuestions(3, 2, 1) {
		bank.AddQuestion(q)
	}

	s, err := quizsession.NewWithConfig(bank, quizsession.SessionConfig{Difficulty: questionbank.DifficultyIntermediate}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.Questions) != 2 {
		t.Errorf("expected 2 intermediate questions, got %d", len(s.Questions))
	}
}

func TestSelectBalanced_OversizedShares(t *testing.T) {
	pool := levelledQuestions(2, 1, 1)

	for _, share := range []float64{1e300, math.Inf(1), math.NaN(), -5} {
		mix := quizsession.DifficultyMix{questionbank.DifficultyBasic: share}
		got := quizsession.SelectBalanced(pool, 3, nil, mix, rand.New(rand.NewSource(4)))
		if len(got) != 3 {
			t.Errorf("share %v: expected 3 questions, got %d", share, len(got))
		}
	}

	got := quizsession.SelectBalanced(pool, 3, nil, quizsession.DifficultyMix{questionbank.DifficultyBasic: 1e300}, nil)
	if countLevels(got)[questionbank.DifficultyBasic] != 2 {
		t.Errorf("expected every basic question for an oversized share, got %v", countLevels(got))
	}
}

// categorisedQuestions creates perCategory questions in each category,
// cycling through the difficulty levels.
func categorisedQuestions(perCategory int, categories ...string) []questionbank.Question {
	var out []questionbank.Question
	for _, c := range categories {
		for i := 0; i < perCategory; i++ {
			q := questionbank.MustQuestion(fmt.Sprintf("%s-%d", c, i), "prompt", []string{"a", "b"}, 0, "")
			q.Category = c
			q.Difficulty = difficultyLevels[i%len(difficultyLevels)]
			out = append(out, q)
		}
	}
	return out
}

var difficultyLevels = []questionbank.Difficulty{
	questionbank.DifficultyBasic,
	questionbank.DifficultyIntermediate,
	questionbank.DifficultyAdvanced,
}

func countCategories(qs []questionbank.Question) map[string]int {
	counts := make(map[string]int)
	for _, q := range qs {
		counts[q.Category]++
	}
	return counts
}

func TestSelectBalanced_SpreadsCategories(t *testing.T) {
	categories := []string{"Understanding Fire", "Legislation", "Evacuation"}
	pool := categorisedQuestions(10, categories...)

	got := quizsession.SelectBalanced(pool, 8, categories, nil, rand.New(rand.NewSource(5)))

	if len(got) != 8 {
		t.Fatalf("expected 8 questions, got %d", len(got))
	}
	counts := countCategories(got)
	// 8 picks dealt round-robin over 3 categories: 3, 3, 2.
	if counts["Understanding Fire"] != 3 || counts["Legislation"] != 3 || counts["Evacuation"] != 2 {
		t.Errorf("unexpected spread: %v", counts)
	}
}

func TestSelectBalanced_CategoriesWithDifficultyMix(t *testing.T) {
	categories := []string{"Sensors", "Control Valves"}
	pool := categorisedQuestions(9, categories...)
	mix := quizsession.DifficultyMix{
		questionbank.DifficultyBasic:        0.5,
		questionbank.DifficultyIntermediate: 0.25,
		questionbank.DifficultyAdvanced:     0.25,
	}

	got := quizsession.SelectBalanced(pool, 8, categories, mix, rand.New(rand.NewSource(6)))

	perCategory := make(map[string]map[questionbank.Difficulty]int)
	for _, q := range got {
		if perCategory[q.Category] == nil {
			perCategory[q.Category] = make(map[questionbank.Difficulty]int)
		}
		perCategory[q.Category][q.Difficulty]++
	}
	for _, c := range categories {
		levels := perCategory[c]
		if levels[questionbank.DifficultyBasic] != 2 || levels[questionbank.DifficultyIntermediate] != 1 || levels[questionbank.DifficultyAdvanced] != 1 {
			t.Errorf("%s: unexpected mix %v", c, levels)
		}
	}
}

func TestSelectBalanced_ShortCategoryIsToppedUp(t *testing.T) {
	pool := append(categorisedQuestions(6, "Detection"), categorisedQuestions(1, "Legislation")...)
	pool = append(pool, categorisedQuestions(2, "Unlisted")...)

	got := quizsession.SelectBalanced(pool, 6, []string{"Detection", "Legislation"}, nil, rand.New(rand.NewSource(7)))

	if len(got) != 6 {
		t.Fatalf("expected 6 questions, got %d", len(got))
	}
	if countCategories(got)["Legislation"] != 1 {
		t.Errorf("expected the only Legislation question, got %v", countCategories(got))
	}
	seen := make(map[string]bool)
	for _, q := range got {
		if seen[q.ID] {
			t.Fatalf("question %s picked twice", q.ID)
		}
		seen[q.ID] = true
	}
}

func TestNewWithConfig_BalanceCategories(t *testing.T) {
	bank := questionbank.New("fire-safety", "Fire Safety")
	bank.Exam.Categories = []string{"Understanding Fire", "Legislation"}
	for _, q := range categorisedQuestions(5, "Understanding Fire", "Legislation", "Evacuation") {
		if err := bank.AddQuestion(q); err != nil {
			t.Fatalf("add: %v", err)
		}
	}

	maxQ := 4
	s, err := quizsession.NewWithConfig(bank, quizsession.SessionConfig{MaxQuestions: &maxQ, BalanceCategories: true}, rand.New(rand.NewSource(8)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	counts := countCategories(s.Questions)
	if counts["Understanding Fire"] != 2 || counts["Legislation"] != 2 {
		t.Errorf("expected picks from the exam categories only, got %v", counts)
	}
}

func TestNewWithConfig_BalanceCategoriesFromQuestions(t *testing.T) {
	bank := questionbank.New("fire-safety", "Fire Safety")
	for _, q := range categorisedQuestions(4, "A", "B", "C") {
		bank.AddQuestion(q)
	}

	maxQ := 6
	s, err := quizsession.NewWithConfig(bank, quizsession.SessionConfig{MaxQuestions: &maxQ, BalanceCategories: true}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	counts := countCategories(s.Questions)
	if counts["A"] != 2 || counts["B"] != 2 || counts["C"] != 2 {
		t.Errorf("unexpected spread: %v", counts)
	}
}
