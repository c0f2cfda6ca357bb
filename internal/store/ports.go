package store

import (
	"context"

	"pocketledger/internal/core"
)

// Store holds the expense records of one session in insertion order.
// It does not allocate ids or evaluate queries; the ledger does both.
type Store interface {
	// Insert appends an already validated expense.
	Insert(ctx context.Context, e core.Expense) error

	// All returns every stored expense in insertion order.
	All(ctx context.Context) ([]core.Expense, error)

	// Delete removes the expense with the given id and returns it.
	// The boolean is false when no such expense exists.
	Delete(ctx context.Context, id int64) (core.Expense, bool, error)
}
