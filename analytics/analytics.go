// Package analytics records per-operation usage metrics in a SQLite
// database. The Logger is constructed once at startup and passed to
// whichever command or handler needs it; there is no package-level handle.
package analytics

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// Operation types recorded in the log
const (
	OperationFileDoc = "FileDoc"
	OperationRepoDoc = "RepoDoc"
)

const schema = `
CREATE TABLE IF NOT EXISTS file_operations (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    source_file TEXT NOT NULL,
    operation_type TEXT NOT NULL,
    timestamp DATETIME NOT NULL,
    file_size INTEGER NOT NULL,
    token_count INTEGER NOT NULL,
    estimated_cost REAL NOT NULL,
    user_feedback TEXT,
    was_edited BOOLEAN NOT NULL
);
`

// Operation is one documented file or repository
type Operation struct {
	SourceFile    string
	OperationType string
	FileSize      int
	TokenCount    int
	EstimatedCost float64
	UserFeedback  string
}

// Logger writes usage records to SQLite
type Logger struct {
	db *sql.DB
}

// Open creates (or reuses) the analytics database at dbPath
func Open(dbPath string) (*Logger, error) {
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create analytics directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open analytics database: %w", err)
	}

	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	// SQLite benefits from a single writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize analytics schema: %w", err)
	}

	return &Logger{db: db}, nil
}

// Close closes the database connection
func (l *Logger) Close() error {
	return l.db.Close()
}

// LogOperation records one documentation run
func (l *Logger) LogOperation(ctx context.Context, op Operation) error {
	query := `
		INSERT INTO file_operations
		(source_file, operation_type, timestamp, file_size, token_count,
		 estimated_cost, user_feedback, was_edited)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	wasEdited := strings.TrimSpace(op.UserFeedback) != ""
	_, err := l.db.ExecContext(ctx, query,
		op.SourceFile,
		op.OperationType,
		time.Now().UTC().Format(time.RFC3339),
		op.FileSize,
		op.TokenCount,
		op.EstimatedCost,
		op.UserFeedback,
		wasEdited,
	)
	if err != nil {
		return fmt.Errorf("failed to log operation: %w", err)
	}
	return nil
}

// Entry is one stored record, as read back for reporting
type Entry struct {
	SourceFile    string
	OperationType string
	Timestamp     string
	FileSize      int
	TokenCount    int
	EstimatedCost float64
	UserFeedback  string
	WasEdited     bool
}

// Entries returns all records, newest first
func (l *Logger) Entries(ctx context.Context) ([]Entry, error) {
	query := `
		SELECT source_file, operation_type, timestamp, file_size, token_count,
		       estimated_cost, COALESCE(user_feedback, ''), was_edited
		FROM file_operations
		ORDER BY timestamp DESC
	`
	rows, err := l.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query operations: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.SourceFile, &e.OperationType, &e.Timestamp, &e.FileSize,
			&e.TokenCount, &e.EstimatedCost, &e.UserFeedback, &e.WasEdited); err != nil {
			return nil, fmt.Errorf("failed to scan operation: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Summary aggregates the whole log
type Summary struct {
	TotalOperations int
	TotalTokens     int
	TotalCost       float64
	EditedCount     int
}

// Summarize computes totals across all records
func (l *Logger) Summarize(ctx context.Context) (Summary, error) {
	query := `
		SELECT COUNT(*),
		       COALESCE(SUM(token_count), 0),
		       COALESCE(SUM(estimated_cost), 0),
		       COALESCE(SUM(CASE WHEN was_edited THEN 1 ELSE 0 END), 0)
		FROM file_operations
	`
	var s Summary
	err := l.db.QueryRowContext(ctx, query).
		Scan(&s.TotalOperations, &s.TotalTokens, &s.TotalCost, &s.EditedCount)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to summarize operations: %w", err)
	}
	return s, nil
}

// Report writes a human-readable usage report to w
func (l *Logger) Report(ctx context.Context, w io.Writer) error {
	entries, err := l.Entries(ctx)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(w, "No analytics data found")
		return nil
	}

	fmt.Fprintln(w, "\n=== Analytics Report ===")
	for _, e := range entries {
		fmt.Fprintf(w, "\nFile: %s\n", e.SourceFile)
		fmt.Fprintf(w, "Time: %s\n", e.Timestamp)
		fmt.Fprintf(w, "Size: %d bytes\n", e.FileSize)
		fmt.Fprintf(w, "Tokens: %d\n", e.TokenCount)
		fmt.Fprintf(w, "Cost: $%.4f\n", e.EstimatedCost)
		if e.WasEdited {
			fmt.Fprintf(w, "Feedback: %s\n", e.UserFeedback)
		}
		fmt.Fprintln(w, strings.Repeat("-", 40))
	}

	summary, err := l.Summarize(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "\n=== Summary ===")
	fmt.Fprintf(w, "Total operations: %d\n", summary.TotalOperations)
	fmt.Fprintf(w, "Total tokens used: %d\n", summary.TotalTokens)
	fmt.Fprintf(w, "Total cost: $%.4f\n", summary.TotalCost)
	fmt.Fprintf(w, "Files edited: %d\n", summary.EditedCount)
	return nil
}
