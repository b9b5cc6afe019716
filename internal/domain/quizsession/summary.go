package quizsession

// SummaryItem is the per-question result line shown after submission.
type SummaryItem struct {
	Index       int
	QuestionID  string
	Prompt      string
	Chosen      int
	ChosenText  string
	Correct     bool
	CorrectText string // empty when the learner was right
	Explanation string
}

// Summary is the read-only result view of a completed session.
type Summary struct {
	SessionID     string
	BankID        string
	Score         int
	Total         int
	Percentage    int
	PassThreshold int
	Passed        bool
	Items         []SummaryItem
}

// Summarize derives the result view. It returns false while the session is
// still in progress. Nothing is cached: each call recomputes from the
// session's answers.
func Summarize(s *Session) (Summary, bool) {
	if !s.Completed() {
		return Summary{}, false
	}

	sum := Summary{
		SessionID:     s.ID,
		BankID:        s.BankID,
		Total:         len(s.Questions),
		PassThreshold: s.PassThreshold,
		Items:         make([]SummaryItem, len(s.Questions)),
	}
	for i, q := range s.Questions {
		chosen := s.answers[i]
		item := SummaryItem{
			Index:       i,
			QuestionID:  q.ID,
			Prompt:      q.Prompt,
			Chosen:      chosen,
			ChosenText:  q.Options[chosen],
			Correct:     q.IsCorrect(chosen),
			Explanation: q.Explanation,
		}
		if item.Correct {
			sum.Score++
		} else {
			item.CorrectText = q.CorrectOption()
		}
		sum.Items[i] = item
	}
	sum.Percentage = Percentage(sum.Score, sum.Total)
	sum.Passed = sum.Percentage >= sum.PassThreshold
	return sum, true
}

// Percentage returns score/total as a whole percent, rounded down.
func Percentage(score, total int) int {
	if total == 0 {
		return 0
	}
	return score * 100 / total
}
