package sources

import (
	"fmt"
	"sort"
	"strings"
)

// Registry holds the ordered adapter set. Ordering is priority descending
// with ties broken by name ascending, so iteration order is stable and
// independent of registration order. Once constructed a Registry is
// read-only and safe for concurrent reads.
type Registry struct {
	adapters []Adapter
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{adapters: make([]Adapter, 0)}
}

// DefaultRegistry returns a registry with the built-in adapters registered.
// The generic adapter always matches and has the lowest priority, so
// selection without a forced name always terminates.
func DefaultRegistry(opts Options) *Registry {
	r := NewRegistry()
	// Names are distinct by construction, so Register cannot fail here.
	_ = r.Register(NewSocketAdapter(opts))
	_ = r.Register(NewGenericAdapter(opts))
	return r
}

// Register adds an adapter and re-sorts the set. Adapter names must be
// unique within a registry.
func (r *Registry) Register(a Adapter) error {
	name := a.Metadata().Name
	for _, existing := range r.adapters {
		if existing.Metadata().Name == name {
			return fmt.Errorf("adapter %q is already registered", name)
		}
	}

	r.adapters = append(r.adapters, a)
	sort.SliceStable(r.adapters, func(i, j int) bool {
		mi, mj := r.adapters[i].Metadata(), r.adapters[j].Metadata()
		if mi.Priority != mj.Priority {
			return mi.Priority > mj.Priority
		}
		return mi.Name < mj.Name
	})
	return nil
}

// Clear removes all registered adapters so a registry can be repopulated
// programmatically.
func (r *Registry) Clear() {
	r.adapters = r.adapters[:0]
}

// All returns the adapters in selection order.
func (r *Registry) All() []Adapter {
	out := make([]Adapter, len(r.adapters))
	copy(out, r.adapters)
	return out
}

// ByName looks up an adapter by its exact name.
func (r *Registry) ByName(name string) (Adapter, bool) {
	for _, a := range r.adapters {
		if a.Metadata().Name == name {
			return a, true
		}
	}
	return nil, false
}

// Names returns all registered adapter names in alphabetical order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.adapters))
	for _, a := range r.adapters {
		names = append(names, a.Metadata().Name)
	}
	sort.Strings(names)
	return names
}

// Select picks the adapter for a URL and returns it with a human-readable
// explanation. A non-empty forced name bypasses URL matching entirely;
// forcing an unknown name is an error that lists the known names.
func (r *Registry) Select(url, forced string) (Adapter, string, error) {
	if forced != "" {
		a, ok := r.ByName(forced)
		if !ok {
			return nil, "", fmt.Errorf("unknown adapter %q (available adapters: %s)",
				forced, strings.Join(r.Names(), ", "))
		}
		return a, fmt.Sprintf("Forced adapter: %s", forced), nil
	}

	for _, a := range r.adapters {
		if a.CanHandle(url) {
			meta := a.Metadata()
			return a, fmt.Sprintf("adapter: %s (priority=%d, matched URL)", meta.Name, meta.Priority), nil
		}
	}

	return nil, "", fmt.Errorf("no adapter can handle %s", url)
}

// SelectionTrace is one row of the diagnostic output produced by
// DebugSelection. The extraction fields are only present when the adapter
// can handle the URL and HTML was supplied.
type SelectionTrace struct {
	Name              string `json:"name"`
	CanHandle         bool   `json:"can_handle"`
	Priority          int    `json:"priority"`
	MatchScore        int    `json:"match_score"`
	ExtractionSuccess *bool  `json:"extraction_success,omitempty"`
	ExtractionError   string `json:"extraction_error,omitempty"`
}

// DebugSelection reports, for every adapter in selection order, whether it
// matches the URL and (when html is non-empty and it matches) whether
// extraction succeeds. Extraction failures are captured in the trace, never
// propagated.
func (r *Registry) DebugSelection(url, html string) []SelectionTrace {
	traces := make([]SelectionTrace, 0, len(r.adapters))

	for _, a := range r.adapters {
		meta := a.Metadata()
		trace := SelectionTrace{
			Name:      meta.Name,
			CanHandle: a.CanHandle(url),
			Priority:  meta.Priority,
		}
		if trace.CanHandle {
			trace.MatchScore = 1
		}

		if trace.CanHandle && html != "" {
			_, err := a.Extract(url, html)
			success := err == nil
			trace.ExtractionSuccess = &success
			if err != nil {
				trace.ExtractionError = err.Error()
			}
		}

		traces = append(traces, trace)
	}

	return traces
}
