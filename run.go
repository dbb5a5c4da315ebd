package w2n

import (
	"context"
	"time"
)

// Run records a single import run against the W2N service.
type Run struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	DatabaseID  string    `json:"databaseId"`
	FixturePath string    `json:"fixturePath"`
	FixtureHash string    `json:"fixtureHash"`
	SourceURL   string    `json:"sourceUrl"`
	PageID      string    `json:"pageId"`
	PageURL     string    `json:"pageUrl"`
	Success     bool      `json:"success"`
	HasErrors   bool      `json:"hasErrors"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate returns an error if the run contains invalid fields.
func (r *Run) Validate() error {
	if r.Title == "" {
		return Errorf(EINVALID, "run title required")
	}
	if r.DatabaseID == "" {
		return Errorf(EINVALID, "run database ID required")
	}
	return nil
}

// RunService represents a service for managing import run history.
type RunService interface {
	// CreateRun records a new run.
	CreateRun(ctx context.Context, run *Run) error

	// FindRunByID retrieves a run by ID.
	// Returns ENOTFOUND if the run does not exist.
	FindRunByID(ctx context.Context, id string) (*Run, error)

	// FindRuns retrieves runs matching the filter, newest first.
	FindRuns(ctx context.Context, filter RunFilter) ([]*Run, error)

	// DeleteRun permanently removes a run record.
	// Returns ENOTFOUND if the run does not exist.
	DeleteRun(ctx context.Context, id string) error
}

// RunFilter represents a filter for FindRuns.
type RunFilter struct {
	ID         *string `json:"id"`
	DatabaseID *string `json:"databaseId"`
	Success    *bool   `json:"success"`

	// Failed filters on the overall run outcome: a run failed when the
	// page was not created or validation reported errors.
	Failed *bool `json:"failed"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
