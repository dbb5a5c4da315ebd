package w2n

// Fixture is a local HTML file used as input to an import call.
type Fixture struct {
	Path string `json:"path"`
	HTML string `json:"html"`
}

// FixtureService loads fixtures from the local filesystem.
type FixtureService interface {
	// Load reads the full text contents of the file at path.
	// Returns ENOTFOUND if the file does not exist.
	Load(path string) (*Fixture, error)
}

// Counter counts content blocks in raw HTML. Used to show the local side
// of the validation summary; the counts are informational and never
// affect the run outcome.
type Counter interface {
	Count(html string) (BlockCounts, error)
}

// Converter transforms HTML content into Markdown.
type Converter interface {
	Convert(html string) (string, error)
}
