package w2n

import "context"

// ImportRequest is the payload posted to the W2N service to create a page
// from an HTML fixture. Constructed once per run and immutable after
// construction.
type ImportRequest struct {
	Title       string            `json:"title"`
	DatabaseID  string            `json:"databaseId"`
	ContentHTML string            `json:"contentHtml"`
	URL         string            `json:"url"`
	Properties  map[string]string `json:"properties"`
}

// Validate returns an error if the request is missing required fields.
func (r *ImportRequest) Validate() error {
	if r.Title == "" {
		return Errorf(EINVALID, "import title required")
	}
	if r.DatabaseID == "" {
		return Errorf(EINVALID, "import database ID required")
	}
	if r.ContentHTML == "" {
		return Errorf(EINVALID, "import content HTML required")
	}
	return nil
}

// ImportResult is the service's response to an import request.
type ImportResult struct {
	Success    bool              `json:"success"`
	PageID     string            `json:"pageId,omitempty"`
	URL        string            `json:"url,omitempty"`
	Validation *ValidationReport `json:"validation,omitempty"`
}

// Succeeded reports whether the run as a whole should be considered
// successful: the page was created and the service's validation found no
// errors. A missing validation report counts as a failure.
func (r *ImportResult) Succeeded() bool {
	return r.Success && !r.Validation.Failed()
}

// ValidationReport is the service's self-reported comparison of content
// counts between the source HTML and the created page. All fields are
// optional on the wire; absence is treated conservatively.
type ValidationReport struct {
	HasErrors *bool        `json:"hasErrors,omitempty"`
	Source    *BlockCounts `json:"source,omitempty"`
	Notion    *BlockCounts `json:"notion,omitempty"`
	Errors    []string     `json:"errors,omitempty"`
}

// Failed reports whether the validation indicates a failed import.
// A nil report or an absent hasErrors field is a failure, never a
// silent success.
func (v *ValidationReport) Failed() bool {
	if v == nil || v.HasErrors == nil {
		return true
	}
	return *v.HasErrors
}

// BlockCounts holds per-block-type counters. Counters missing from the
// wire decode to zero.
type BlockCounts struct {
	Tables   int `json:"tables"`
	Images   int `json:"images"`
	Lists    int `json:"lists"`
	Callouts int `json:"callouts"`
}

// ImportService posts an import request to the W2N service and returns
// its response.
type ImportService interface {
	// Import performs a single synchronous import call. The context
	// controls timeout and cancellation; there are no retries.
	Import(ctx context.Context, req *ImportRequest) (*ImportResult, error)
}
