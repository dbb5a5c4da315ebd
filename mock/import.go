package mock

import (
	"context"

	"github.com/nmcintosh/w2n"
)

var _ w2n.ImportService = (*ImportService)(nil)

// ImportService is a mock implementation of w2n.ImportService.
type ImportService struct {
	ImportFn func(ctx context.Context, req *w2n.ImportRequest) (*w2n.ImportResult, error)
}

func (s *ImportService) Import(ctx context.Context, req *w2n.ImportRequest) (*w2n.ImportResult, error) {
	return s.ImportFn(ctx, req)
}
