// Package report aggregates validation results across a batch of targets
// into a single identifiable report with per-code summary counts and text or
// JSON rendering.
package report

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/c360studio/semshape/shape"
)

// Entry is one validated target and its outcome.
type Entry struct {
	// Target identifies the validated record, typically a file path or an
	// @id value.
	Target string `json:"target"`

	// Shape is the target class of the shape the record was validated
	// against.
	Shape string `json:"shape,omitempty"`

	Result shape.Result `json:"result"`
}

// Report collects validation entries for a run.
type Report struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Entries   []Entry   `json:"entries"`
}

// New creates an empty report stamped with a fresh identity.
func New() *Report {
	return &Report{
		ID:        uuid.New(),
		CreatedAt: time.Now().UTC(),
	}
}

// Add records the outcome for a target.
func (r *Report) Add(target, shapeClass string, result shape.Result) {
	r.Entries = append(r.Entries, Entry{
		Target: target,
		Shape:  shapeClass,
		Result: result,
	})
}

// OK reports whether every entry conformed.
func (r *Report) OK() bool {
	for _, entry := range r.Entries {
		if !entry.Result.OK {
			return false
		}
	}
	return true
}

// Summary holds aggregate counts for a report.
type Summary struct {
	Targets    int            `json:"targets"`
	Conforming int            `json:"conforming"`
	Violations int            `json:"violations"`
	ByCode     map[string]int `json:"by_code,omitempty"`
}

// Summarize computes aggregate counts across all entries.
func (r *Report) Summarize() Summary {
	s := Summary{Targets: len(r.Entries)}
	for _, entry := range r.Entries {
		if entry.Result.OK {
			s.Conforming++
			continue
		}
		for _, v := range entry.Result.Violations {
			s.Violations++
			if s.ByCode == nil {
				s.ByCode = make(map[string]int)
			}
			s.ByCode[string(v.Code)]++
		}
	}
	return s
}

// Text renders the report for terminal output: one block per failing
// target, then a one-line summary.
func (r *Report) Text() string {
	var sb strings.Builder

	for _, entry := range r.Entries {
		if entry.Result.OK {
			continue
		}
		fmt.Fprintf(&sb, "%s:\n", entry.Target)
		for _, v := range entry.Result.Violations {
			fmt.Fprintf(&sb, "  %s\n", v.String())
		}
	}

	s := r.Summarize()
	fmt.Fprintf(&sb, "%d target(s), %d conforming, %d violation(s)\n",
		s.Targets, s.Conforming, s.Violations)
	if len(s.ByCode) > 0 {
		codes := make([]string, 0, len(s.ByCode))
		for code := range s.ByCode {
			codes = append(codes, code)
		}
		sort.Strings(codes)
		parts := make([]string, 0, len(codes))
		for _, code := range codes {
			parts = append(parts, fmt.Sprintf("%s=%d", code, s.ByCode[code]))
		}
		fmt.Fprintf(&sb, "  %s\n", strings.Join(parts, " "))
	}

	return sb.String()
}

// JSON renders the report with its summary as an indented JSON document.
func (r *Report) JSON() (string, error) {
	doc := struct {
		*Report
		Summary Summary `json:"summary"`
	}{Report: r, Summary: r.Summarize()}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal report: %w", err)
	}
	return string(out), nil
}
