package migrations

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type execCall struct {
	sql  string
	args []any
}

// fakeDB stands in for the pool. Statements run on transactions are logged
// separately from statements run directly on the pool.
type fakeDB struct {
	poolExecs []execCall
	txExecs   []execCall
	commitErr error
	lastTx    *fakeTx
}

func (db *fakeDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	db.poolExecs = append(db.poolExecs, execCall{sql: sql, args: args})
	return pgconn.CommandTag{}, nil
}

func (db *fakeDB) QueryRow(_ context.Context, _ string, _ ...any) pgx.Row {
	return notAppliedRow{}
}

func (db *fakeDB) Begin(_ context.Context) (pgx.Tx, error) {
	db.lastTx = &fakeTx{db: db}
	return db.lastTx, nil
}

// notAppliedRow answers the applied-version existence check with false.
type notAppliedRow struct{}

func (notAppliedRow) Scan(dest ...any) error {
	*(dest[0].(*bool)) = false
	return nil
}

type fakeTx struct {
	db         *fakeDB
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	t.db.txExecs = append(t.db.txExecs, execCall{sql: sql, args: args})
	return pgconn.CommandTag{}, nil
}

func (t *fakeTx) Commit(_ context.Context) error {
	if t.db.commitErr != nil {
		return t.db.commitErr
	}
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(_ context.Context) error {
	t.rolledBack = true
	return nil
}

func (t *fakeTx) Begin(_ context.Context) (pgx.Tx, error) { return t, nil }
func (t *fakeTx) Conn() *pgx.Conn                         { return nil }
func (t *fakeTx) CopyFrom(_ context.Context, _ pgx.Identifier, _ []string, _ pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *fakeTx) LargeObjects() pgx.LargeObjects { return pgx.LargeObjects{} }
func (t *fakeTx) Prepare(_ context.Context, _, _ string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *fakeTx) Query(_ context.Context, _ string, _ ...any) (pgx.Rows, error) { return nil, nil }
func (t *fakeTx) QueryRow(_ context.Context, _ string, _ ...any) pgx.Row        { return nil }
func (t *fakeTx) SendBatch(_ context.Context, _ *pgx.Batch) pgx.BatchResults    { return nil }

func writeMigration(t *testing.T, dir, name, sql string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(sql), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestMigrateFromFile_RecordsVersionInSameTransaction(t *testing.T) {
	db := &fakeDB{}
	path := writeMigration(t, t.TempDir(), "001_init.sql", "CREATE TABLE widget (id BIGINT);")

	if err := NewMigrator(db).MigrateFromFile(context.Background(), path); err != nil {
		t.Fatalf("MigrateFromFile failed: %v", err)
	}

	if len(db.txExecs) != 2 {
		t.Fatalf("transaction ran %d statements, want schema change + version record", len(db.txExecs))
	}
	if !strings.Contains(db.txExecs[0].sql, "CREATE TABLE widget") {
		t.Errorf("first tx statement = %q", db.txExecs[0].sql)
	}
	if !strings.Contains(db.txExecs[1].sql, "INSERT INTO schema_migrations") {
		t.Errorf("second tx statement = %q, want version record", db.txExecs[1].sql)
	}
	if len(db.txExecs) == 2 && db.txExecs[1].args[0] != "001" {
		t.Errorf("recorded version = %v, want 001", db.txExecs[1].args[0])
	}
	for _, call := range db.poolExecs {
		if strings.Contains(call.sql, "INSERT INTO schema_migrations") {
			t.Errorf("version recorded outside the migration transaction")
		}
	}
	if !db.lastTx.committed {
		t.Error("transaction not committed")
	}
}

func TestMigrateFromFile_FailedCommitLeavesNoRecord(t *testing.T) {
	db := &fakeDB{commitErr: errors.New("connection reset")}
	path := writeMigration(t, t.TempDir(), "001_init.sql", "CREATE TABLE widget (id BIGINT);")

	err := NewMigrator(db).MigrateFromFile(context.Background(), path)
	if err == nil {
		t.Fatal("expected commit error")
	}
	// The version row rode the failed transaction, so nothing may reach the
	// pool directly; a rerun must re-apply the file.
	for _, call := range db.poolExecs {
		if strings.Contains(call.sql, "INSERT INTO schema_migrations") {
			t.Errorf("version recorded despite failed commit")
		}
	}
	if !db.lastTx.rolledBack {
		t.Error("transaction not rolled back")
	}
}

func TestMigrateFromDirectory_LexicalOrder(t *testing.T) {
	dir := t.TempDir()
	writeMigration(t, dir, "002_add_name.sql", "ALTER TABLE widget ADD COLUMN name TEXT;")
	writeMigration(t, dir, "001_init.sql", "CREATE TABLE widget (id BIGINT);")
	writeMigration(t, dir, "notes.txt", "not a migration")
	db := &fakeDB{}

	if err := NewMigrator(db).MigrateFromDirectory(context.Background(), dir); err != nil {
		t.Fatalf("MigrateFromDirectory failed: %v", err)
	}

	// Two files, each followed by its version record.
	if len(db.txExecs) != 4 {
		t.Fatalf("transactions ran %d statements, want 4", len(db.txExecs))
	}
	if !strings.Contains(db.txExecs[0].sql, "CREATE TABLE widget") {
		t.Errorf("001 did not run first: %q", db.txExecs[0].sql)
	}
	if !strings.Contains(db.txExecs[2].sql, "ALTER TABLE widget") {
		t.Errorf("002 did not run second: %q", db.txExecs[2].sql)
	}
}
