package postgre

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
	"testing"

	repo "calendar-mirror/internal/calendar/repository"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// faultDriver accepts any statement but hands back results whose
// RowsAffected call fails, the way a driver without affected-row counts
// behaves.
type faultDriver struct{}

func (faultDriver) Open(name string) (driver.Conn, error) { return faultConn{}, nil }

type faultConn struct{}

func (faultConn) Prepare(query string) (driver.Stmt, error) { return faultStmt{}, nil }
func (faultConn) Close() error                              { return nil }
func (faultConn) Begin() (driver.Tx, error)                 { return nil, driver.ErrSkip }

type faultStmt struct{}

func (faultStmt) Close() error  { return nil }
func (faultStmt) NumInput() int { return -1 }
func (faultStmt) Exec(args []driver.Value) (driver.Result, error) {
	return faultResult{}, nil
}
func (faultStmt) Query(args []driver.Value) (driver.Rows, error) {
	return nil, io.EOF
}

type faultResult struct{}

func (faultResult) LastInsertId() (int64, error) {
	return 0, errors.New("no LastInsertId available")
}
func (faultResult) RowsAffected() (int64, error) {
	return 0, errors.New("no RowsAffected available")
}

func init() {
	sql.Register("postgre-fault", faultDriver{})
}

func TestUpsertEventRowsAffectedFault(t *testing.T) {
	db, err := sql.Open("postgre-fault", "")
	if err != nil {
		t.Fatalf("open stub db: %v", err)
	}
	defer db.Close()

	r := New(db, &mockLogger{})
	changed, err := r.UpsertEvent(context.Background(), repo.UpsertEventOptions{
		GcalID:  "cal-1",
		EventID: "ev-1",
		Name:    "standup",
	})
	if !errors.Is(err, repo.ErrFailedToUpsert) {
		t.Fatalf("expected ErrFailedToUpsert, got %v", err)
	}
	if changed {
		t.Errorf("a failed upsert must not report a change")
	}
}
