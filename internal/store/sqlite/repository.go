// Package sqlite keeps the session's expenses in an in-memory SQLite
// database. The database lives only as long as the Repository is open.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"pocketledger/internal/core"

	_ "modernc.org/sqlite"
)

const driverName = "sqlite"

type Repository struct {
	db  *sql.DB
	dsn string
}

// MemoryDSN names a shared-cache in-memory database. Connections opened with
// the same name see the same data.
func MemoryDSN(name string) string {
	return fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
}

// Open creates the in-memory database called name and migrates it.
func Open(ctx context.Context, name string) (*Repository, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.New("database name cannot be empty")
	}
	dsn := MemoryDSN(name)

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	// One long-lived connection keeps the in-memory database alive.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dsn); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Repository{db: db, dsn: dsn}, nil
}

func (r *Repository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Insert implements store.Store
func (r *Repository) Insert(ctx context.Context, e core.Expense) error {
	if err := e.Validate(); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO expenses (id, title, amount, category) VALUES (?, ?, ?, ?)`,
		e.ID, e.Title, e.Amount.String(), e.Category)
	if err != nil {
		return fmt.Errorf("insert expense: %w", err)
	}

	slog.DebugContext(ctx, "Expense saved to SQLite",
		"id", e.ID,
		"title", e.Title,
		"amount", e.Amount.String(),
		"category", e.Category)
	return nil
}

// All implements store.Store
func (r *Repository) All(ctx context.Context) ([]core.Expense, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, amount, category FROM expenses ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()

	expenses := make([]core.Expense, 0)
	for rows.Next() {
		var e core.Expense
		if err := rows.Scan(&e.ID, &e.Title, &e.Amount, &e.Category); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate expenses: %w", err)
	}
	return expenses, nil
}

// Delete implements store.Store
func (r *Repository) Delete(ctx context.Context, id int64) (core.Expense, bool, error) {
	var e core.Expense
	err := r.db.QueryRowContext(ctx,
		`DELETE FROM expenses WHERE id = ? RETURNING id, title, amount, category`, id).
		Scan(&e.ID, &e.Title, &e.Amount, &e.Category)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Expense{}, false, nil
	}
	if err != nil {
		return core.Expense{}, false, fmt.Errorf("delete expense %d: %w", id, err)
	}

	slog.DebugContext(ctx, "Expense deleted from SQLite", "id", id)
	return e, true, nil
}
