package ingest

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
)

// Report summarizes one ingestion run for machine consumption. The run ID
// identifies the run in downstream tooling; it never appears in post files,
// which must stay deterministic.
type Report struct {
	RunID     uuid.UUID `json:"run_id"`
	Created   int       `json:"created"`
	Updated   int       `json:"updated"`
	Unchanged int       `json:"unchanged"`
	Failed    int       `json:"failed"`
	Results   []Result  `json:"results"`
}

// NewReport builds a report over a batch's results.
func NewReport(results []Result) Report {
	r := Report{
		RunID:   uuid.New(),
		Results: results,
	}
	for _, res := range results {
		switch res.Status {
		case StatusCreated:
			r.Created++
		case StatusUpdated:
			r.Updated++
		case StatusUnchanged:
			r.Unchanged++
		case StatusFailed:
			r.Failed++
		}
	}
	return r
}

// HasFailures reports whether any URL in the run failed.
func (r Report) HasFailures() bool {
	return r.Failed > 0
}

// Summary returns the one-line human-readable totals.
func (r Report) Summary() string {
	return fmt.Sprintf("Summary: %d created, %d updated, %d unchanged, %d failed",
		r.Created, r.Updated, r.Unchanged, r.Failed)
}

// WriteFile writes the report as indented JSON.
func (r Report) WriteFile(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
