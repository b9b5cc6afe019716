package questionbank

// QuestionStats tracks how learners have done on one quiz question across
// recorded attempts.
type QuestionStats struct {
	QuestionID    string
	TimesAnswered int
	TimesCorrect  int
}

// Accuracy is the percentage of recorded answers that were correct (0-100).
func (qs QuestionStats) Accuracy() int {
	if qs.TimesAnswered == 0 {
		return 0
	}
	return qs.TimesCorrect * 100 / qs.TimesAnswered
}

// BankStats aggregates recorded attempts for a module's quiz.
type BankStats struct {
	BankID       string
	Attempts     int
	Passes       int
	AverageScore int // mean percentage over attempts
	Questions    []QuestionStats
}

// PassRate is the percentage of attempts that met the pass mark.
func (bs BankStats) PassRate() int {
	if bs.Attempts == 0 {
		return 0
	}
	return bs.Passes * 100 / bs.Attempts
}

// Weakest returns the question with the lowest accuracy among those that have
// been answered at least once.
func (bs BankStats) Weakest() (QuestionStats, bool) {
	var weakest QuestionStats
	found := false
	for _, qs := range bs.Questions {
		if qs.TimesAnswered == 0 {
			continue
		}
		if !found || qs.Accuracy() < weakest.Accuracy() {
			weakest = qs
			found = true
		}
	}
	return weakest, found
}
