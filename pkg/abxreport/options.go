// Package abxreport turns analyzer XML exports into an xlsx report, one
// worksheet per run with per-parameter pass/fail tables and a histogram
// chart per parameter family.
package abxreport

// Options configures report generation.
type Options struct {
	// OutputPath is the xlsx file to write. Empty means DefaultOutput.
	OutputPath string
}

// DefaultOutput is the workbook path used when none is given.
const DefaultOutput = "output.xlsx"

// DefaultOptions returns default generation options.
func DefaultOptions() Options {
	return Options{OutputPath: DefaultOutput}
}

// Output returns the effective output path.
func (o Options) Output() string {
	if o.OutputPath == "" {
		return DefaultOutput
	}
	return o.OutputPath
}
