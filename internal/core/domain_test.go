package core

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExpense(t *testing.T) {
	e, err := NewExpense("  Coffee ", 3.5, " Food  ")
	require.NoError(t, err)
	assert.Equal(t, "Coffee", e.Title)
	assert.Equal(t, "Food", e.Category)
	assert.True(t, e.Amount.Equal(decimal.RequireFromString("3.5")))
	assert.Zero(t, e.ID)
}

func TestNewExpense_Rejects(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		amount   float64
		category string
		want     error
	}{
		{"empty title", "", 5, "food", ErrInvalidTitle},
		{"blank title", "   ", 5, "food", ErrInvalidTitle},
		{"zero amount", "x", 0, "food", ErrInvalidAmount},
		{"negative amount", "x", -3, "food", ErrInvalidAmount},
		{"nan amount", "x", math.NaN(), "food", ErrInvalidAmount},
		{"infinite amount", "x", math.Inf(1), "food", ErrInvalidAmount},
		{"empty category", "x", 5, "", ErrInvalidCategory},
		{"blank category", "x", 5, "\t", ErrInvalidCategory},
		// title is checked before amount and category
		{"title wins", "", -1, "", ErrInvalidTitle},
		{"amount before category", "x", 0, "", ErrInvalidAmount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewExpense(tt.title, tt.amount, tt.category)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestExpenseValidate(t *testing.T) {
	good := Expense{ID: 1, Title: "ok", Amount: decimal.NewFromInt(1), Category: "Cat"}
	require.NoError(t, good.Validate())

	bads := []Expense{
		{ID: 1, Title: "", Amount: decimal.NewFromInt(1), Category: "c"},
		{ID: 1, Title: "a", Amount: decimal.Zero, Category: "c"},
		{ID: 1, Title: "a", Amount: decimal.NewFromInt(-1), Category: "c"},
		{ID: 1, Title: "a", Amount: decimal.NewFromInt(1), Category: " "},
		{ID: 0, Title: "a", Amount: decimal.NewFromInt(1), Category: "c"},
	}
	for i, e := range bads {
		assert.Error(t, e.Validate(), "case %d", i)
	}
}

func TestIsValidation(t *testing.T) {
	assert.True(t, IsValidation(ErrInvalidSearch))
	assert.True(t, IsValidation(fmt.Errorf("remove: %w", ErrInvalidID)))
	assert.False(t, IsValidation(errors.New("disk on fire")))
	assert.False(t, IsValidation(nil))
}

func TestMatchers(t *testing.T) {
	e := Expense{Title: "Morning Coffee", Category: "Food"}
	assert.True(t, e.MatchesCategory("food"))
	assert.True(t, e.MatchesCategory("FOOD"))
	assert.False(t, e.MatchesCategory("foo"))
	assert.True(t, e.TitleContains("coff"))
	assert.True(t, e.TitleContains("NING co"))
	assert.False(t, e.TitleContains("zzz"))
}
