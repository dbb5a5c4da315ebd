// Package slog provides logging decorators for w2n services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/nmcintosh/w2n"
)

// Ensure LoggingImportService implements w2n.ImportService.
var _ w2n.ImportService = (*LoggingImportService)(nil)

// LoggingImportService wraps an ImportService with structured logging of
// each call's metadata, outcome and duration.
type LoggingImportService struct {
	next   w2n.ImportService
	logger *slog.Logger
}

// NewLoggingImportService creates a new LoggingImportService.
func NewLoggingImportService(next w2n.ImportService, logger *slog.Logger) *LoggingImportService {
	return &LoggingImportService{next: next, logger: logger}
}

// Import delegates to the wrapped service and logs the call.
func (s *LoggingImportService) Import(ctx context.Context, req *w2n.ImportRequest) (*w2n.ImportResult, error) {
	begin := time.Now()

	result, err := s.next.Import(ctx, req)
	if err != nil {
		s.logger.Error("import failed",
			"title", req.Title,
			"databaseId", req.DatabaseID,
			"duration", time.Since(begin),
			"err", err,
		)
		return nil, err
	}

	s.logger.Info("import completed",
		"title", req.Title,
		"databaseId", req.DatabaseID,
		"pageId", result.PageID,
		"success", result.Success,
		"validationFailed", result.Validation.Failed(),
		"duration", time.Since(begin),
	)

	return result, nil
}
