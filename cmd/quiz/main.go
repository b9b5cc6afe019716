// Command quiz runs a module's inline checks and knowledge-check quiz in the
// terminal.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/voltlearn/backend/internal/content"
	"github.com/voltlearn/backend/internal/domain/inlinecheck"
	"github.com/voltlearn/backend/internal/domain/quizsession"
	"github.com/voltlearn/backend/internal/tui"
)

func main() {
	var (
		moduleID   = flag.String("module", "", "module to take (see -list)")
		contentDir = flag.String("content", "", "directory of module YAML files (default: built-in modules)")
		count      = flag.Int("n", 0, "number of quiz questions (default: the module's exam setting)")
		shuffle    = flag.Bool("shuffle", false, "shuffle quiz questions")
		balance    = flag.Bool("balance", false, "spread quiz questions across the module's exam categories")
		noColor    = flag.Bool("no-color", false, "disable colors")
		withChecks = flag.Bool("checks", false, "run the module's inline checks before the quiz")
		list       = flag.Bool("list", false, "list available modules and exit")
	)
	flag.Parse()

	if err := run(*moduleID, *contentDir, *count, *shuffle, *balance, *noColor, *withChecks, *list); err != nil {
		fmt.Fprintln(os.Stderr, "quiz:", err)
		os.Exit(1)
	}
}

func run(moduleID, contentDir string, count int, shuffle, balance, noColor, withChecks, list bool) error {
	var (
		catalog *content.Catalog
		err     error
	)
	if contentDir == "" {
		catalog, err = content.Builtin()
	} else {
		catalog, err = content.LoadDir(contentDir)
	}
	if err != nil {
		return err
	}

	if list || moduleID == "" {
		for _, b := range catalog.Modules() {
			fmt.Printf("%-28s %s (%s)\n", b.ID, b.Title, b.Category)
		}
		if !list {
			return fmt.Errorf("-module is required")
		}
		return nil
	}

	bank, err := catalog.Module(moduleID)
	if err != nil {
		return err
	}

	cfg := quizsession.DefaultConfig()
	cfg.Shuffle = shuffle
	cfg.BalanceCategories = balance
	if count > 0 {
		cfg.MaxQuestions = &count
	}
	session, err := quizsession.NewWithConfig(bank, cfg, rand.New(rand.NewSource(time.Now().UnixNano())))
	if err != nil {
		return err
	}

	var checks []*inlinecheck.Check
	if withChecks {
		for _, q := range bank.Checks {
			checks = append(checks, inlinecheck.New(q))
		}
	}

	model := tui.NewModel(session, checks, tui.Options{NoColor: noColor, Title: bank.Title})
	_, err = tea.NewProgram(model).Run()
	return err
}
