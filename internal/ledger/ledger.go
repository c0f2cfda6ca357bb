// Package ledger implements the session's expense ledger: validation, id
// allocation and every query over the stored expenses.
//
// A Ledger belongs to exactly one session and is not safe for concurrent
// use. Sessions that need isolation get their own Ledger.
package ledger

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"pocketledger/internal/core"
	applog "pocketledger/internal/log"
	"pocketledger/internal/store"
)

type Ledger struct {
	store  store.Store
	nextID int64
	logger *applog.Logger
}

// New returns an empty ledger whose first expense gets id 1.
// The store must be empty.
func New(s store.Store, logger *applog.Logger) *Ledger {
	if logger == nil {
		logger = applog.Discard()
	}
	return &Ledger{
		store:  s,
		nextID: 1,
		logger: logger.WithComponent(applog.ComponentLedger),
	}
}

// Add validates the fields and appends a new expense.
// Ids come from a counter that only moves forward, so an id freed by Remove
// is never handed out again.
func (l *Ledger) Add(ctx context.Context, title string, amount float64, category string) (core.Expense, error) {
	e, err := core.NewExpense(title, amount, category)
	if err != nil {
		l.logger.DebugContext(ctx, "Expense rejected",
			applog.NewFields().WithOperation(applog.OpAdd).WithError(err).ToSlice()...)
		return core.Expense{}, err
	}

	e.ID = l.nextID
	if err := l.store.Insert(ctx, e); err != nil {
		return core.Expense{}, fmt.Errorf("store expense: %w", err)
	}
	l.nextID++

	l.logger.DebugContext(ctx, "Expense added",
		applog.NewFields().WithOperation(applog.OpAdd).WithExpense(e).ToSlice()...)
	return e, nil
}

// List returns every expense in insertion order.
func (l *Ledger) List(ctx context.Context) ([]core.Expense, error) {
	all, err := l.store.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	return all, nil
}

// Total is the sum of all amounts, zero when the ledger is empty.
func (l *Ledger) Total(ctx context.Context) (decimal.Decimal, error) {
	all, err := l.List(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return core.Sum(all), nil
}

// ByCategory returns the expenses whose category equals the query,
// ignoring case and surrounding whitespace. No match is an empty slice.
func (l *Ledger) ByCategory(ctx context.Context, category string) ([]core.Expense, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, core.ErrInvalidCategory
	}
	all, err := l.List(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]core.Expense, 0)
	for _, e := range all {
		if e.MatchesCategory(category) {
			matched = append(matched, e)
		}
	}

	l.logger.DebugContext(ctx, "Category filtered",
		applog.NewFields().WithOperation(applog.OpByCategory).
			With(applog.FieldCategory, category).
			With(applog.FieldCount, len(matched)).ToSlice()...)
	return matched, nil
}

// FindByTitle returns the first expense whose title contains the query,
// ignoring case. The boolean is false when nothing matches.
func (l *Ledger) FindByTitle(ctx context.Context, query string) (core.Expense, bool, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return core.Expense{}, false, core.ErrInvalidSearch
	}
	all, err := l.List(ctx)
	if err != nil {
		return core.Expense{}, false, err
	}

	for _, e := range all {
		if e.TitleContains(query) {
			return e, true, nil
		}
	}
	return core.Expense{}, false, nil
}

// Remove deletes the expense with the given id and returns it.
// The boolean is false, and nothing changes, when no such expense exists.
func (l *Ledger) Remove(ctx context.Context, id int64) (core.Expense, bool, error) {
	if id <= 0 {
		return core.Expense{}, false, core.ErrInvalidID
	}
	removed, ok, err := l.store.Delete(ctx, id)
	if err != nil {
		return core.Expense{}, false, fmt.Errorf("remove expense %d: %w", id, err)
	}

	l.logger.DebugContext(ctx, "Expense removal",
		applog.NewFields().WithOperation(applog.OpRemove).
			With(applog.FieldExpenseID, id).
			With(applog.FieldFound, ok).ToSlice()...)
	return removed, ok, nil
}

// CategoryStatistics sums amounts per stored category string, in the order
// categories first appear. An empty ledger yields an empty slice.
func (l *Ledger) CategoryStatistics(ctx context.Context) ([]core.CategoryAmount, error) {
	all, err := l.List(ctx)
	if err != nil {
		return nil, err
	}
	return core.GroupByCategory(all), nil
}

// NextID reports the id the next successful Add will assign.
func (l *Ledger) NextID() int64 {
	return l.nextID
}
