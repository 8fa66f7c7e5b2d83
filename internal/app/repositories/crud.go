package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oguzhan/uniregistry/internal/pkg/apperrors"
)

// Definition describes one entity table for the generic CRUD repository:
// its columns, primary key and how to turn a record into statement
// arguments. Each entity supplies one Definition instead of its own
// hand-written repository.
type Definition[T any] struct {
	// Resource is the singular display name used in not-found errors.
	Resource string
	Table    string
	PKColumn string
	// Columns is the full select list; it must cover every db-tagged field
	// of T so rows map by column name.
	Columns []string
	// InsertColumns excludes server-generated columns (e.g. a serial PK).
	InsertColumns []string
	// UpdateColumns are the columns replaced on update; updates are always
	// full-record replaces of the non-PK columns.
	UpdateColumns []string
	InsertValues  func(*T) []any
	UpdateValues  func(*T) []any
}

// CrudRepository issues single parameterized statements against one table.
// All statements are built once at construction; user-supplied values only
// ever travel as positional parameters.
type CrudRepository[T any] struct {
	db  *pgxpool.Pool
	def Definition[T]

	listSQL   string
	getSQL    string
	insertSQL string
	updateSQL string
	deleteSQL string
}

// NewCrudRepository creates a repository for the given table definition.
func NewCrudRepository[T any](db *pgxpool.Pool, def Definition[T]) *CrudRepository[T] {
	return &CrudRepository[T]{
		db:        db,
		def:       def,
		listSQL:   buildListSQL(def.Table, def.Columns, def.PKColumn),
		getSQL:    buildGetSQL(def.Table, def.Columns, def.PKColumn),
		insertSQL: buildInsertSQL(def.Table, def.InsertColumns, def.Columns),
		updateSQL: buildUpdateSQL(def.Table, def.UpdateColumns, def.PKColumn, def.Columns),
		deleteSQL: buildDeleteSQL(def.Table, def.PKColumn, def.Columns),
	}
}

func buildListSQL(table string, columns []string, pk string) string {
	return fmt.Sprintf("SELECT %s FROM %s ORDER BY %s",
		strings.Join(columns, ", "), table, pk)
}

func buildGetSQL(table string, columns []string, pk string) string {
	return fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1",
		strings.Join(columns, ", "), table, pk)
}

func buildInsertSQL(table string, insertColumns, returning []string) string {
	placeholders := make([]string, len(insertColumns))
	for i := range insertColumns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		table,
		strings.Join(insertColumns, ", "),
		strings.Join(placeholders, ", "),
		strings.Join(returning, ", "))
}

func buildUpdateSQL(table string, updateColumns []string, pk string, returning []string) string {
	assignments := make([]string, len(updateColumns))
	for i, col := range updateColumns {
		assignments[i] = fmt.Sprintf("%s = $%d", col, i+1)
	}
	return fmt.Sprintf("UPDATE %s SET %s WHERE %s = $%d RETURNING %s",
		table,
		strings.Join(assignments, ", "),
		pk,
		len(updateColumns)+1,
		strings.Join(returning, ", "))
}

func buildDeleteSQL(table string, pk string, returning []string) string {
	return fmt.Sprintf("DELETE FROM %s WHERE %s = $1 RETURNING %s",
		table, pk, strings.Join(returning, ", "))
}

// List returns all rows ordered by primary key. An empty table yields an
// empty slice, never an error.
func (r *CrudRepository[T]) List(ctx context.Context) ([]T, error) {
	rows, err := r.db.Query(ctx, r.listSQL)
	if err != nil {
		return nil, fmt.Errorf("error listing %s: %w", r.def.Table, err)
	}

	records, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, fmt.Errorf("error scanning %s rows: %w", r.def.Table, err)
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

// GetByID returns the row with the given primary key, or a not-found error
// when zero rows match.
func (r *CrudRepository[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	rows, err := r.db.Query(ctx, r.getSQL, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving %s: %w", r.def.Table, err)
	}

	record, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound(r.def.Resource)
		}
		return nil, fmt.Errorf("error retrieving %s: %w", r.def.Table, err)
	}
	return &record, nil
}

// Create inserts a new row and returns it as stored, including any
// server-generated columns. Constraint violations surface as plain store
// errors; they are not translated into typed errors.
func (r *CrudRepository[T]) Create(ctx context.Context, record *T) (*T, error) {
	rows, err := r.db.Query(ctx, r.insertSQL, r.def.InsertValues(record)...)
	if err != nil {
		return nil, fmt.Errorf("error creating %s: %w", r.def.Table, err)
	}

	created, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, fmt.Errorf("error creating %s: %w", r.def.Table, err)
	}
	return &created, nil
}

// Update replaces every non-PK column of the row with the given primary
// key and returns the updated row, or a not-found error when zero rows
// matched.
func (r *CrudRepository[T]) Update(ctx context.Context, id int64, record *T) (*T, error) {
	args := append(r.def.UpdateValues(record), id)
	rows, err := r.db.Query(ctx, r.updateSQL, args...)
	if err != nil {
		return nil, fmt.Errorf("error updating %s: %w", r.def.Table, err)
	}

	updated, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound(r.def.Resource)
		}
		return nil, fmt.Errorf("error updating %s: %w", r.def.Table, err)
	}
	return &updated, nil
}

// Delete removes the row with the given primary key and returns its prior
// contents, or a not-found error when zero rows matched.
func (r *CrudRepository[T]) Delete(ctx context.Context, id int64) (*T, error) {
	rows, err := r.db.Query(ctx, r.deleteSQL, id)
	if err != nil {
		return nil, fmt.Errorf("error deleting %s: %w", r.def.Table, err)
	}

	deleted, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound(r.def.Resource)
		}
		return nil, fmt.Errorf("error deleting %s: %w", r.def.Table, err)
	}
	return &deleted, nil
}
