// Package fs provides filesystem-based fixture loading.
package fs

import (
	"fmt"
	"os"

	"github.com/nmcintosh/w2n"
)

// Ensure FixtureService implements w2n.FixtureService at compile time.
var _ w2n.FixtureService = (*FixtureService)(nil)

// FixtureService loads HTML fixtures from the local filesystem.
type FixtureService struct{}

// NewFixtureService creates a new FixtureService.
func NewFixtureService() *FixtureService {
	return &FixtureService{}
}

// Load reads the full contents of the file at path as UTF-8 text.
// Returns ENOTFOUND if the file does not exist. Loading must succeed
// before any network call is attempted, so failures here are fatal to
// the run.
func (s *FixtureService) Load(path string) (*w2n.Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, w2n.Errorf(w2n.ENOTFOUND, "fixture %q not found", path)
		}
		return nil, fmt.Errorf("failed to read fixture %q: %w", path, err)
	}

	return &w2n.Fixture{
		Path: path,
		HTML: string(data),
	}, nil
}
