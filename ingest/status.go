package ingest

// Status is the terminal state of ingesting one URL.
type Status int

const (
	StatusCreated Status = iota
	StatusUpdated
	StatusUnchanged
	StatusFailed
)

// String returns the lowercase status label.
func (s Status) String() string {
	switch s {
	case StatusCreated:
		return "created"
	case StatusUpdated:
		return "updated"
	case StatusUnchanged:
		return "unchanged"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// MarshalText renders the status label in JSON reports.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Result is the outcome of processing one URL. Filename is present unless
// the status is failed; Error is present only when it is.
type Result struct {
	URL      string `json:"url"`
	Status   Status `json:"status"`
	Filename string `json:"filename,omitempty"`
	Error    string `json:"error,omitempty"`
}
