package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/nmcintosh/w2n"
)

// Compile-time interface verification.
var _ w2n.RunService = (*RunService)(nil)

// RunService implements w2n.RunService using SQLite.
type RunService struct {
	db *DB
}

// NewRunService creates a new RunService.
func NewRunService(db *DB) *RunService {
	return &RunService{db: db}
}

// HashFixture computes an xxhash of fixture HTML and returns it as hex.
// Recorded on each run so reimports of an unchanged fixture can be spotted.
func HashFixture(html string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(html))
}

// CreateRun records a new run. The ID and creation time are assigned here.
func (s *RunService) CreateRun(ctx context.Context, run *w2n.Run) error {
	if err := run.Validate(); err != nil {
		return err
	}

	run.ID = uuid.New().String()
	run.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, title, database_id, fixture_path, fixture_hash, source_url, page_id, page_url, success, has_errors, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.Title, run.DatabaseID, run.FixturePath, run.FixtureHash, run.SourceURL,
		run.PageID, run.PageURL, boolToInt(run.Success), boolToInt(run.HasErrors),
		run.CreatedAt.Format(time.RFC3339))

	return err
}

// FindRunByID retrieves a run by ID.
func (s *RunService) FindRunByID(ctx context.Context, id string) (*w2n.Run, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, title, database_id, fixture_path, fixture_hash, source_url, page_id, page_url, success, has_errors, created_at
		FROM runs
		WHERE id = ?
	`, id)

	run, err := scanRun(row.Scan)
	if err == sql.ErrNoRows {
		return nil, w2n.Errorf(w2n.ENOTFOUND, "run not found")
	}
	if err != nil {
		return nil, err
	}

	return run, nil
}

// FindRuns retrieves runs matching the filter, newest first.
func (s *RunService) FindRuns(ctx context.Context, filter w2n.RunFilter) ([]*w2n.Run, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, title, database_id, fixture_path, fixture_hash, source_url, page_id, page_url, success, has_errors, created_at FROM runs WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.DatabaseID != nil {
		query.WriteString(" AND database_id = ?")
		args = append(args, *filter.DatabaseID)
	}
	if filter.Success != nil {
		query.WriteString(" AND success = ?")
		args = append(args, boolToInt(*filter.Success))
	}
	if filter.Failed != nil {
		// A run failed when the page was not created or validation
		// reported errors.
		if *filter.Failed {
			query.WriteString(" AND (success = 0 OR has_errors = 1)")
		} else {
			query.WriteString(" AND success = 1 AND has_errors = 0")
		}
	}

	query.WriteString(" ORDER BY created_at DESC")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	} else if filter.Offset > 0 {
		// OFFSET is only valid after a LIMIT clause; -1 means no limit.
		query.WriteString(" LIMIT -1")
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*w2n.Run
	for rows.Next() {
		run, err := scanRun(rows.Scan)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

// DeleteRun permanently removes a run record.
func (s *RunService) DeleteRun(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM runs WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return w2n.Errorf(w2n.ENOTFOUND, "run not found")
	}

	return nil
}

// scanRun reads a run from a row scan function.
func scanRun(scan func(dest ...any) error) (*w2n.Run, error) {
	var run w2n.Run
	var success, hasErrors int
	var createdAt string

	if err := scan(&run.ID, &run.Title, &run.DatabaseID, &run.FixturePath, &run.FixtureHash,
		&run.SourceURL, &run.PageID, &run.PageURL, &success, &hasErrors, &createdAt); err != nil {
		return nil, err
	}

	run.Success = success != 0
	run.HasErrors = hasErrors != 0

	var parseErr error
	run.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAt)
	if parseErr != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", parseErr)
	}

	return &run, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
