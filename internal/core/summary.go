package core

import "github.com/shopspring/decimal"

// CategoryAmount represents an amount aggregated by category name.
type CategoryAmount struct {
	Name   string
	Amount decimal.Decimal
}

// GroupByCategory sums amounts per exact category string. Groups appear in
// the order their category was first seen.
func GroupByCategory(expenses []Expense) []CategoryAmount {
	out := make([]CategoryAmount, 0)
	index := map[string]int{}
	for _, e := range expenses {
		i, ok := index[e.Category]
		if !ok {
			index[e.Category] = len(out)
			out = append(out, CategoryAmount{Name: e.Category, Amount: e.Amount})
			continue
		}
		out[i].Amount = out[i].Amount.Add(e.Amount)
	}
	return out
}
