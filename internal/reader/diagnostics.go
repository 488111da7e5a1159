package reader

import (
	"github.com/joshuapare/verkit/pkg/types"
)

// diagnosticCollector accumulates diagnostics while a resource is decoded.
// It's nil in normal mode, and only allocated when
// ParseOptions.CollectDiagnostics is true.
type diagnosticCollector struct {
	report *types.DiagnosticReport
}

// newDiagnosticCollector creates a new collector.
func newDiagnosticCollector() *diagnosticCollector {
	return &diagnosticCollector{
		report: types.NewDiagnosticReport(),
	}
}

// record adds a diagnostic to the collection.
func (dc *diagnosticCollector) record(sev types.Severity, offset int, structure, issue string) {
	if dc == nil {
		return
	}
	dc.report.Add(types.Diagnostic{
		Severity:  sev,
		Offset:    offset,
		Structure: structure,
		Issue:     issue,
	})
}

// finalize orders the report once decoding is complete.
func (dc *diagnosticCollector) finalize() {
	if dc == nil {
		return
	}
	dc.report.Finalize()
}

// getReport returns the diagnostic report.
func (dc *diagnosticCollector) getReport() *types.DiagnosticReport {
	if dc == nil {
		return nil
	}
	return dc.report
}
