package log

import "pocketledger/internal/core"

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldSessionID = "session_id"
	FieldBackend   = "backend"
	FieldError     = "error"
	FieldErrorType = "error_type"
	FieldOperation = "operation"
	FieldExpenseID = "expense_id"
	FieldTitle     = "title"
	FieldAmount    = "amount"
	FieldCategory  = "category"
	FieldQuery     = "query"
	FieldCount     = "count"
	FieldFound     = "found"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentLedger  = "ledger"
	ComponentStorage = "storage"
	ComponentShell   = "shell"
	ComponentBackend = "backend"
)

// Operations defines standard operation names
const (
	OpAdd        = "add"
	OpList       = "list"
	OpTotal      = "total"
	OpByCategory = "by_category"
	OpFind       = "find"
	OpRemove     = "remove"
	OpStatistics = "statistics"
	OpStartup    = "startup"
	OpShutdown   = "shutdown"
)

// ErrorTypes defines standard error type categories
const (
	ErrorTypeValidation    = "validation_error"
	ErrorTypeConfiguration = "configuration_error"
	ErrorTypeStorage       = "storage_error"
	ErrorTypeParse         = "parse_error"
)

// LogFields provides a builder pattern for structured log fields
type LogFields map[string]any

// NewFields creates a new LogFields instance
func NewFields() LogFields {
	return make(LogFields)
}

func (f LogFields) WithOperation(op string) LogFields {
	f[FieldOperation] = op
	return f
}

// WithError adds the error and classifies it as validation or storage.
func (f LogFields) WithError(err error) LogFields {
	if err == nil {
		return f
	}
	f[FieldError] = err.Error()
	if core.IsValidation(err) {
		f[FieldErrorType] = ErrorTypeValidation
	} else {
		f[FieldErrorType] = ErrorTypeStorage
	}
	return f
}

// WithExpense adds expense-related fields
func (f LogFields) WithExpense(e core.Expense) LogFields {
	f[FieldExpenseID] = e.ID
	f[FieldTitle] = e.Title
	f[FieldAmount] = e.Amount.String()
	f[FieldCategory] = e.Category
	return f
}

func (f LogFields) With(key string, value any) LogFields {
	f[key] = value
	return f
}

// ToSlice converts LogFields to a slice for slog
func (f LogFields) ToSlice() []any {
	slice := make([]any, 0, len(f)*2)
	for k, v := range f {
		slice = append(slice, k, v)
	}
	return slice
}
