package w2n

// Configuration defaults. Server and timeout match what the W2N service
// ships with locally.
const (
	DefaultServerURL  = "http://localhost:3004"
	DefaultTimeoutSec = 120
)

// DefaultProperties returns the metadata properties attached to an import
// when none are configured.
func DefaultProperties() map[string]string {
	return map[string]string{
		"Source": "ServiceNow KB",
		"Status": "Published",
	}
}

// Config holds client configuration. Zero values mean "not set"; callers
// apply flag/env/default precedence on top.
type Config struct {
	Server     string            `json:"server"`
	DatabaseID string            `json:"databaseId"`
	TimeoutSec int               `json:"timeoutSec"`
	Properties map[string]string `json:"properties"`
	DBPath     string            `json:"dbPath"`
}

// Validate returns an error if the config contains invalid fields.
func (c *Config) Validate() error {
	if c.TimeoutSec < 0 {
		return Errorf(EINVALID, "timeout must be non-negative")
	}
	for k := range c.Properties {
		if k == "" {
			return Errorf(EINVALID, "property keys must be non-empty")
		}
	}
	return nil
}
