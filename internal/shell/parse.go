package shell

import (
	"errors"
	"strconv"
	"strings"
)

// Parse failures are reported by the shell itself and never reach the ledger.
var (
	ErrParseAmount = errors.New("amount is not a number")
	ErrParseID     = errors.New("id is not an integer")
)

// ParseAmount converts user input to a float. Both dot (12.34) and comma
// (12,34) decimal separators are accepted. Range checks are left to the
// ledger, so "-3" and "NaN" parse fine here and get rejected there.
func ParseAmount(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrParseAmount
	}
	s = strings.ReplaceAll(s, ",", ".")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrParseAmount
	}
	return f, nil
}

// ParseID converts user input to an expense id.
func ParseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, ErrParseID
	}
	return id, nil
}
