package abxreport

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/openvetlab/abxreport-go/pkg/abxreport/models"
	"github.com/openvetlab/abxreport-go/pkg/abxreport/render"
	"github.com/openvetlab/abxreport-go/pkg/abxreport/xmltree"
)

// Outcome records what happened to one input document.
type Outcome struct {
	// Path is the input document path.
	Path string
	// Sheet is the worksheet written for the document, empty when none was.
	Sheet string
	// Skipped is true for technician test runs and QC-failed runs.
	Skipped bool
	// Err is the document's failure, nil on success. A failed document
	// never affects sheets written before it.
	Err error
}

// Report summarizes one generation run.
type Report struct {
	// OutputPath is the workbook that was written.
	OutputPath string
	// Outcomes has one entry per input document, in input order.
	Outcomes []Outcome
}

// Generate renders every document in paths into a single workbook and saves
// it. Documents are processed strictly one at a time, in the given order.
// Malformed documents are logged and recorded in their Outcome; the batch
// continues and the workbook is still saved. Returns ErrNoInput for an
// empty path list.
func Generate(paths []string, opts Options) (*Report, error) {
	if len(paths) == 0 {
		return nil, ErrNoInput
	}

	f := excelize.NewFile()
	defer f.Close()

	w, err := render.NewWriter(f)
	if err != nil {
		return nil, fmt.Errorf("prepare workbook: %w", err)
	}

	report := &Report{OutputPath: opts.Output()}
	for _, path := range paths {
		out := Outcome{Path: path}
		out.Sheet, out.Skipped, out.Err = writeDocument(w, path)
		if out.Err != nil {
			out.Err = NewDocumentError(path, out.Err)
			slog.Warn("skipping malformed document",
				slog.String("path", path),
				slog.String("error", out.Err.Error()))
		}
		report.Outcomes = append(report.Outcomes, out)
	}

	if err := w.Finalize(); err != nil {
		return report, fmt.Errorf("finalize workbook: %w", err)
	}
	if err := f.SaveAs(report.OutputPath); err != nil {
		return report, fmt.Errorf("save workbook: %w", err)
	}
	return report, nil
}

// LoadDocument parses and extracts a single analyzer export.
func LoadDocument(path string) (*models.Document, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	root, err := xmltree.Parse(fh)
	if err != nil {
		return nil, err
	}
	if len(root.Children) == 0 {
		return nil, &xmltree.MissingFieldError{Field: "document root"}
	}
	return BuildDocument(root.Children[0], stem(path))
}

func writeDocument(w *render.Writer, path string) (sheet string, skipped bool, err error) {
	doc, err := LoadDocument(path)
	if err != nil {
		return "", false, err
	}
	if doc.Skip() {
		slog.Debug("skipping document",
			slog.String("path", path),
			slog.String("operator", doc.Operator),
			slog.Bool("qc_failed", doc.QCFailed))
		return "", true, nil
	}

	s, err := w.AddSheet(doc.Stem)
	if err != nil {
		return "", false, err
	}
	if err := s.WriteHeader(doc.Header); err != nil {
		return s.Name(), false, err
	}
	for _, fam := range doc.Families {
		if err := s.WriteFamily(fam); err != nil {
			return s.Name(), false, err
		}
	}
	if err := s.Finish(); err != nil {
		return s.Name(), false, err
	}
	return s.Name(), false, nil
}

func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
