// Package shell drives a ledger from a line-oriented text menu.
//
// The shell owns all terminal concerns: prompting, turning raw text into
// typed arguments, and rendering results and errors. The ledger never sees
// raw input and never produces text.
package shell

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"pocketledger/internal/core"
	applog "pocketledger/internal/log"
)

// Ledger is the set of operations the menu exposes.
type Ledger interface {
	Add(ctx context.Context, title string, amount float64, category string) (core.Expense, error)
	List(ctx context.Context) ([]core.Expense, error)
	Total(ctx context.Context) (decimal.Decimal, error)
	ByCategory(ctx context.Context, category string) ([]core.Expense, error)
	FindByTitle(ctx context.Context, query string) (core.Expense, bool, error)
	Remove(ctx context.Context, id int64) (core.Expense, bool, error)
	CategoryStatistics(ctx context.Context) ([]core.CategoryAmount, error)
}

type Options struct {
	// Places is the number of decimals amounts are rounded to on output.
	Places int32
	Logger *applog.Logger
}

type Shell struct {
	ledger Ledger
	in     io.Reader
	r      renderer
	logger *applog.Logger

	lines <-chan line
}

type line struct {
	text string
	err  error
}

func New(l Ledger, in io.Reader, out io.Writer, opts Options) *Shell {
	logger := opts.Logger
	if logger == nil {
		logger = applog.Discard()
	}
	return &Shell{
		ledger: l,
		in:     in,
		r:      renderer{out: out, places: opts.Places},
		logger: logger.WithComponent(applog.ComponentShell),
	}
}

// Run shows the menu until the user exits, input ends, or ctx is cancelled.
// Only a failure to read input is returned as an error.
func (s *Shell) Run(ctx context.Context) error {
	lines := make(chan line)
	done := make(chan struct{})
	defer close(done)
	go s.read(lines, done)
	s.lines = lines

	for {
		s.r.printf("%s", menu)
		choice, err := s.prompt(ctx, "Choose an action: ")
		if err != nil {
			return s.finish(err)
		}

		switch strings.TrimSpace(choice) {
		case "1":
			err = s.add(ctx)
		case "2":
			err = s.list(ctx)
		case "3":
			err = s.total(ctx)
		case "4":
			err = s.byCategory(ctx)
		case "5":
			err = s.find(ctx)
		case "6":
			err = s.remove(ctx)
		case "7":
			err = s.statistics(ctx)
		case "0":
			s.r.printf("Goodbye!\n")
			return nil
		default:
			s.r.printf("Unknown choice, please try again.\n")
		}
		if err != nil {
			return s.finish(err)
		}
	}
}

// read forwards input lines until EOF or until Run returns. A read blocked on
// a terminal outlives Run; it ends with the process.
func (s *Shell) read(lines chan<- line, done <-chan struct{}) {
	defer close(lines)
	sc := bufio.NewScanner(s.in)
	for sc.Scan() {
		select {
		case lines <- line{text: sc.Text()}:
		case <-done:
			return
		}
	}
	if err := sc.Err(); err != nil {
		select {
		case lines <- line{err: err}:
		case <-done:
		}
	}
}

func (s *Shell) prompt(ctx context.Context, question string) (string, error) {
	s.r.printf("%s", question)
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l, ok := <-s.lines:
		if !ok {
			return "", io.EOF
		}
		return l.text, l.err
	}
}

// finish maps the reason the loop stopped to Run's result.
func (s *Shell) finish(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		s.r.printf("\n")
		s.logger.Debug("Session ended", applog.FieldError, err.Error())
		return nil
	}
	s.logger.Error("Reading input failed", applog.FieldError, err.Error())
	return err
}

// report prints an operation error. Ledger validation errors and parse errors
// are expected; anything else is a store failure and also gets logged.
func (s *Shell) report(op string, err error) {
	if !core.IsValidation(err) && !errors.Is(err, ErrParseAmount) && !errors.Is(err, ErrParseID) {
		s.logger.Error("Ledger operation failed",
			applog.NewFields().WithOperation(op).WithError(err).ToSlice()...)
	}
	s.r.printf("%s\n", errorMessage(err))
}

func (s *Shell) add(ctx context.Context) error {
	title, err := s.prompt(ctx, "Title: ")
	if err != nil {
		return err
	}
	rawAmount, err := s.prompt(ctx, "Amount: ")
	if err != nil {
		return err
	}
	amount, parseErr := ParseAmount(rawAmount)
	if parseErr != nil {
		s.report(applog.OpAdd, parseErr)
		return nil
	}
	category, err := s.prompt(ctx, "Category: ")
	if err != nil {
		return err
	}

	e, err := s.ledger.Add(ctx, title, amount, category)
	if err != nil {
		s.report(applog.OpAdd, err)
		return nil
	}
	s.r.printf("Expense added (ID: %d).\n", e.ID)
	return nil
}

func (s *Shell) list(ctx context.Context) error {
	all, err := s.ledger.List(ctx)
	if err != nil {
		s.report(applog.OpList, err)
		return nil
	}
	if len(all) == 0 {
		s.r.printf("No expenses recorded.\n")
		return nil
	}
	s.r.printf("\nAll expenses:\n")
	for _, e := range all {
		s.r.expense(e)
	}
	return nil
}

func (s *Shell) total(ctx context.Context) error {
	total, err := s.ledger.Total(ctx)
	if err != nil {
		s.report(applog.OpTotal, err)
		return nil
	}
	s.r.printf("\nTotal spent: %s\n", s.r.amount(total))
	return nil
}

func (s *Shell) byCategory(ctx context.Context) error {
	category, err := s.prompt(ctx, "Category: ")
	if err != nil {
		return err
	}
	matched, err := s.ledger.ByCategory(ctx, category)
	if err != nil {
		s.report(applog.OpByCategory, err)
		return nil
	}
	category = strings.TrimSpace(category)
	if len(matched) == 0 {
		s.r.printf("No expenses found in category %q.\n", category)
		return nil
	}
	s.r.printf("\nExpenses in category %q:\n", category)
	for _, e := range matched {
		s.r.expenseNoCategory(e)
	}
	s.r.printf("Total spent in category %q: %s\n", category, s.r.amount(core.Sum(matched)))
	return nil
}

func (s *Shell) find(ctx context.Context) error {
	query, err := s.prompt(ctx, "Part of the title to search for: ")
	if err != nil {
		return err
	}
	e, ok, err := s.ledger.FindByTitle(ctx, query)
	if err != nil {
		s.report(applog.OpFind, err)
		return nil
	}
	if !ok {
		s.r.printf("No expense with a title containing %q.\n", strings.TrimSpace(query))
		return nil
	}
	s.r.printf("Found expense:\n")
	s.r.expense(e)
	return nil
}

func (s *Shell) remove(ctx context.Context) error {
	raw, err := s.prompt(ctx, "ID of the expense to delete: ")
	if err != nil {
		return err
	}
	id, parseErr := ParseID(raw)
	if parseErr != nil {
		s.report(applog.OpRemove, parseErr)
		return nil
	}
	_, ok, err := s.ledger.Remove(ctx, id)
	if err != nil {
		s.report(applog.OpRemove, err)
		return nil
	}
	if !ok {
		s.r.printf("Expense with ID %d not found.\n", id)
		return nil
	}
	s.r.printf("Expense with ID %d deleted.\n", id)
	return nil
}

func (s *Shell) statistics(ctx context.Context) error {
	stats, err := s.ledger.CategoryStatistics(ctx)
	if err != nil {
		s.report(applog.OpStatistics, err)
		return nil
	}
	if len(stats) == 0 {
		s.r.printf("No category statistics: no expenses recorded.\n")
		return nil
	}
	s.r.printf("\nSpending by category:\n")
	for _, c := range stats {
		s.r.printf("Category: %s | Total: %s\n", c.Name, s.r.amount(c.Amount))
	}
	return nil
}
