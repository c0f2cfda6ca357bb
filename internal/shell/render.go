package shell

import (
	"errors"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"pocketledger/internal/core"
)

const menu = `
Personal expense tracker
1. Add expense
2. List all expenses
3. Show total
4. Expenses by category
5. Find expense by title
6. Delete expense by ID
7. Category statistics
0. Exit
`

type renderer struct {
	out    io.Writer
	places int32
}

func (r renderer) printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}

func (r renderer) amount(d decimal.Decimal) string {
	return core.FormatAmount(d, r.places)
}

func (r renderer) expense(e core.Expense) {
	r.printf("ID: %d | %s | Amount: %s | Category: %s\n", e.ID, e.Title, r.amount(e.Amount), e.Category)
}

func (r renderer) expenseNoCategory(e core.Expense) {
	r.printf("ID: %d | %s | Amount: %s\n", e.ID, e.Title, r.amount(e.Amount))
}

// errorMessage turns ledger and parse errors into text for the user.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, core.ErrInvalidTitle):
		return "Error: the title must be a non-empty string."
	case errors.Is(err, core.ErrInvalidAmount):
		return "Error: the amount must be a positive number."
	case errors.Is(err, core.ErrInvalidCategory):
		return "Error: the category must be a non-empty string."
	case errors.Is(err, core.ErrInvalidSearch):
		return "Error: the search text must not be empty."
	case errors.Is(err, core.ErrInvalidID), errors.Is(err, ErrParseID):
		return "Invalid ID."
	case errors.Is(err, ErrParseAmount):
		return "Error: the amount is not a number."
	default:
		return "Error: " + err.Error()
	}
}
