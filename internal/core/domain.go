package core

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

type (
	// Expense is a single tracked expenditure.
	Expense struct {
		ID       int64
		Title    string
		Amount   decimal.Decimal
		Category string
	}
)

var (
	ErrInvalidTitle    = errors.New("title must be a non-empty string")
	ErrInvalidAmount   = errors.New("amount must be a positive number")
	ErrInvalidCategory = errors.New("category must be a non-empty string")
	ErrInvalidSearch   = errors.New("search query must be non-empty")
	ErrInvalidID       = errors.New("id must be a positive integer")
)

var validationErrors = []error{
	ErrInvalidTitle,
	ErrInvalidAmount,
	ErrInvalidCategory,
	ErrInvalidSearch,
	ErrInvalidID,
}

// IsValidation reports whether err is one of the input validation failures.
func IsValidation(err error) bool {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// NewExpense validates the raw fields in order (title, amount, category)
// and returns a record with trimmed text fields. The ID is left zero; the
// ledger assigns it.
func NewExpense(title string, amount float64, category string) (Expense, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Expense{}, ErrInvalidTitle
	}
	amt, err := NewAmount(amount)
	if err != nil {
		return Expense{}, err
	}
	category = strings.TrimSpace(category)
	if category == "" {
		return Expense{}, ErrInvalidCategory
	}
	return Expense{
		Title:    title,
		Amount:   amt,
		Category: category,
	}, nil
}

func (e Expense) Validate() error {
	if strings.TrimSpace(e.Title) == "" {
		return ErrInvalidTitle
	}
	if !e.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	if strings.TrimSpace(e.Category) == "" {
		return ErrInvalidCategory
	}
	if e.ID <= 0 {
		return ErrInvalidID
	}
	return nil
}

// MatchesCategory compares against an already trimmed query, ignoring case.
func (e Expense) MatchesCategory(query string) bool {
	return strings.EqualFold(e.Category, query)
}

// TitleContains reports whether the title contains the query, ignoring case.
func (e Expense) TitleContains(query string) bool {
	return strings.Contains(strings.ToLower(e.Title), strings.ToLower(query))
}
