package mock

import (
	"context"

	"github.com/nmcintosh/w2n"
)

var _ w2n.RunService = (*RunService)(nil)

// RunService is a mock implementation of w2n.RunService.
type RunService struct {
	CreateRunFn   func(ctx context.Context, run *w2n.Run) error
	FindRunByIDFn func(ctx context.Context, id string) (*w2n.Run, error)
	FindRunsFn    func(ctx context.Context, filter w2n.RunFilter) ([]*w2n.Run, error)
	DeleteRunFn   func(ctx context.Context, id string) error
}

func (s *RunService) CreateRun(ctx context.Context, run *w2n.Run) error {
	return s.CreateRunFn(ctx, run)
}

func (s *RunService) FindRunByID(ctx context.Context, id string) (*w2n.Run, error) {
	return s.FindRunByIDFn(ctx, id)
}

func (s *RunService) FindRuns(ctx context.Context, filter w2n.RunFilter) ([]*w2n.Run, error) {
	return s.FindRunsFn(ctx, filter)
}

func (s *RunService) DeleteRun(ctx context.Context, id string) error {
	return s.DeleteRunFn(ctx, id)
}
