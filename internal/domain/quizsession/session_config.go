package quizsession

import "github.com/voltlearn/backend/internal/domain/questionbank"

// SessionConfig holds optional constraints for building a quiz from a bank.
type SessionConfig struct {
	MaxQuestions *int                    // nil = bank's exam question count, or all
	Shuffle      bool                    // false = authored order
	Section      string                  // "" = every section
	Difficulty   questionbank.Difficulty // "" = every level
	Balanced     DifficultyMix           // nil = no difficulty balancing

	// BalanceCategories spreads picks evenly across the bank's exam
	// categories, or across the categories found on its questions when the
	// exam lists none.
	BalanceCategories bool
}

// DefaultConfig returns a config with no constraints: every question, in
// authored order.
func DefaultConfig() SessionConfig {
	return SessionConfig{}
}
