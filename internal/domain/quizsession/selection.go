package quizsession

import (
	"math"
	"math/rand"

	"github.com/voltlearn/backend/internal/domain/questionbank"
)

// DifficultyMix is the share of a generated quiz that each difficulty level
// should take, e.g. {basic: 0.35, intermediate: 0.45, advanced: 0.2}.
type DifficultyMix map[questionbank.Difficulty]float64

var difficultyOrder = []questionbank.Difficulty{
	questionbank.DifficultyBasic,
	questionbank.DifficultyIntermediate,
	questionbank.DifficultyAdvanced,
}

// quota is the number of n picks a share asks for, in [0, n]. Shares that
// are not positive (including NaN) ask for nothing.
func (m DifficultyMix) quota(level questionbank.Difficulty, n int) int {
	share := m[level]
	if !(share > 0) {
		return 0
	}
	if share >= 1 {
		return n
	}
	return int(math.Round(float64(n) * share))
}

func selectQuestions(bank *questionbank.QuestionBank, config SessionConfig, rng *rand.Rand) []questionbank.Question {
	pool := make([]questionbank.Question, 0, len(bank.Questions))
	for _, q := range bank.Questions {
		if config.Section != "" && q.Section != config.Section {
			continue
		}
		if config.Difficulty != "" && q.Difficulty != config.Difficulty {
			continue
		}
		pool = append(pool, q)
	}

	limit := len(pool)
	if config.MaxQuestions != nil && *config.MaxQuestions > 0 {
		limit = *config.MaxQuestions
	} else if config.MaxQuestions == nil && bank.Exam.QuestionCount > 0 {
		limit = bank.Exam.QuestionCount
	}
	if limit > len(pool) {
		limit = len(pool)
	}

	if config.BalanceCategories || len(config.Balanced) > 0 {
		var categories []string
		if config.BalanceCategories {
			categories = bank.Exam.Categories
			if len(categories) == 0 {
				categories = categoriesOf(pool)
			}
		}
		return SelectBalanced(pool, limit, categories, config.Balanced, rng)
	}
	if config.Shuffle {
		pool = shuffleQuestions(pool, rng)
	}
	return pool[:limit]
}

// categoriesOf lists the question categories in order of first appearance.
func categoriesOf(questions []questionbank.Question) []string {
	seen := make(map[string]bool)
	var out []string
	for _, q := range questions {
		if q.Category == "" || seen[q.Category] {
			continue
		}
		seen[q.Category] = true
		out = append(out, q.Category)
	}
	return out
}

// SelectBalanced draws n questions at random. Picks are dealt round-robin
// across categories, so each listed category gets n/len(categories) give or
// take one; within a category the optional mix decides the difficulty
// levels. Categories or levels that run short are topped up from whatever
// remains. With no categories the whole pool is one group. The result is
// shuffled.
func SelectBalanced(questions []questionbank.Question, n int, categories []string, mix DifficultyMix, rng *rand.Rand) []questionbank.Question {
	if n > len(questions) {
		n = len(questions)
	}
	if n <= 0 {
		return []questionbank.Question{}
	}
	if len(categories) == 0 {
		picked, _ := pickByDifficulty(questions, n, mix, rng)
		return shuffleQuestions(picked, rng)
	}

	index := make(map[string]int, len(categories))
	for i, c := range categories {
		if _, dup := index[c]; !dup {
			index[c] = i
		}
	}
	groups := make([][]questionbank.Question, len(categories))
	var leftover []questionbank.Question
	for _, q := range questions {
		if i, ok := index[q.Category]; ok {
			groups[i] = append(groups[i], q)
			continue
		}
		leftover = append(leftover, q)
	}

	quotas := make([]int, len(categories))
	for i := 0; i < n; i++ {
		quotas[i%len(categories)]++
	}

	picked := make([]questionbank.Question, 0, n)
	for i, group := range groups {
		got, rest := pickByDifficulty(group, quotas[i], mix, rng)
		picked = append(picked, got...)
		leftover = append(leftover, rest...)
	}

	if missing := n - len(picked); missing > 0 {
		leftover = shuffleQuestions(leftover, rng)
		picked = append(picked, leftover[:missing]...)
	}
	return shuffleQuestions(picked, rng)
}

// pickByDifficulty draws up to n questions from pool following mix, or
// uniformly when mix is empty, and returns the picks and the remainder.
func pickByDifficulty(pool []questionbank.Question, n int, mix DifficultyMix, rng *rand.Rand) (picked, rest []questionbank.Question) {
	if n > len(pool) {
		n = len(pool)
	}
	shuffled := shuffleQuestions(pool, rng)
	if len(mix) == 0 {
		return shuffled[:n], shuffled[n:]
	}

	byLevel := make(map[questionbank.Difficulty][]questionbank.Question)
	for _, q := range shuffled {
		byLevel[q.Difficulty] = append(byLevel[q.Difficulty], q)
	}

	picked = make([]questionbank.Question, 0, n)
	for _, level := range difficultyOrder {
		candidates := byLevel[level]
		want := mix.quota(level, n)
		want = min(want, len(candidates), n-len(picked))
		picked = append(picked, candidates[:want]...)
		rest = append(rest, candidates[want:]...)
	}
	// Unclassified questions only fill gaps.
	rest = append(rest, byLevel[""]...)

	if missing := n - len(picked); missing > 0 {
		rest = shuffleQuestions(rest, rng)
		picked = append(picked, rest[:missing]...)
		rest = rest[missing:]
	}
	return picked, rest
}

// shuffleQuestions returns a new slice with questions in random order.
func shuffleQuestions(questions []questionbank.Question, rng *rand.Rand) []questionbank.Question {
	shuffled := make([]questionbank.Question, len(questions))
	copy(shuffled, questions)

	swap := func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	if rng != nil {
		rng.Shuffle(len(shuffled), swap)
	} else {
		rand.Shuffle(len(shuffled), swap)
	}
	return shuffled
}
