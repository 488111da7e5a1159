package types

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// -----------------------------------------------------------------------------
// Diagnostics
// -----------------------------------------------------------------------------
//
// Soft absences never fail a parse. When ParseOptions.CollectDiagnostics is
// set they are recorded here instead, with the byte offset of the block that
// caused them, so tooling can explain why a field came back empty.

// Severity classifies how serious a diagnostic issue is.
type Severity int

const (
	SevInfo    Severity = iota // unusual but valid (no translation table, fallback selection)
	SevWarning                 // part of the resource ignored (bad signature, bad table key)
	SevError                   // data decoded lossily (invalid UTF-16)
)

// String implements fmt.Stringer.
func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "info"
	case SevWarning:
		return "warning"
	case SevError:
		return "error"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Diagnostic is a single issue found while decoding.
type Diagnostic struct {
	Severity  Severity `json:"severity"`
	Offset    int      `json:"offset"`    // byte offset of the block, -1 if not tied to one
	Structure string   `json:"structure"` // block path, e.g. `\StringFileInfo\040904B0`
	Issue     string   `json:"issue"`
}

// DiagnosticReport collects all diagnostics found during a parse.
type DiagnosticReport struct {
	Diagnostics []Diagnostic `json:"diagnostics"`
	Summary     DiagSummary  `json:"summary"`
}

// DiagSummary provides quick statistics.
type DiagSummary struct {
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
	Info     int `json:"info"`
}

// NewDiagnosticReport creates an empty report.
func NewDiagnosticReport() *DiagnosticReport {
	return &DiagnosticReport{}
}

// Add adds a diagnostic to the report and updates the summary.
func (r *DiagnosticReport) Add(d Diagnostic) {
	r.Diagnostics = append(r.Diagnostics, d)
	switch d.Severity {
	case SevError:
		r.Summary.Errors++
	case SevWarning:
		r.Summary.Warnings++
	case SevInfo:
		r.Summary.Info++
	}
}

// Finalize sorts diagnostics by offset, keeping insertion order for ties.
func (r *DiagnosticReport) Finalize() {
	sort.SliceStable(r.Diagnostics, func(i, j int) bool {
		return r.Diagnostics[i].Offset < r.Diagnostics[j].Offset
	})
}

// HasErrors returns true if any error-level issues were found.
func (r *DiagnosticReport) HasErrors() bool {
	return r != nil && r.Summary.Errors > 0
}

// HasAnyIssues returns true if any issues were found (including info).
func (r *DiagnosticReport) HasAnyIssues() bool {
	return r != nil && len(r.Diagnostics) > 0
}

// BySeverity returns the diagnostics of the given severity.
func (r *DiagnosticReport) BySeverity(sev Severity) []Diagnostic {
	var out []Diagnostic
	for _, d := range r.Diagnostics {
		if d.Severity == sev {
			out = append(out, d)
		}
	}
	return out
}

// -----------------------------------------------------------------------------
// Output Formatters
// -----------------------------------------------------------------------------

// FormatText renders the report for terminals.
func (r *DiagnosticReport) FormatText() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d issue(s): %d error(s), %d warning(s), %d info\n",
		len(r.Diagnostics), r.Summary.Errors, r.Summary.Warnings, r.Summary.Info)
	for _, d := range r.Diagnostics {
		off := "-"
		if d.Offset >= 0 {
			off = fmt.Sprintf("0x%04X", d.Offset)
		}
		fmt.Fprintf(&sb, "  [%-7s] %6s  %s: %s\n", d.Severity, off, d.Structure, d.Issue)
	}
	return sb.String()
}

// FormatJSON renders the report as indented JSON.
func (r *DiagnosticReport) FormatJSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}
