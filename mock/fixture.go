package mock

import "github.com/nmcintosh/w2n"

var _ w2n.FixtureService = (*FixtureService)(nil)

// FixtureService is a mock implementation of w2n.FixtureService.
type FixtureService struct {
	LoadFn func(path string) (*w2n.Fixture, error)
}

func (s *FixtureService) Load(path string) (*w2n.Fixture, error) {
	return s.LoadFn(path)
}

var _ w2n.Counter = (*Counter)(nil)

// Counter is a mock implementation of w2n.Counter.
type Counter struct {
	CountFn func(html string) (w2n.BlockCounts, error)
}

func (c *Counter) Count(html string) (w2n.BlockCounts, error) {
	return c.CountFn(html)
}

var _ w2n.Converter = (*Converter)(nil)

// Converter is a mock implementation of w2n.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
