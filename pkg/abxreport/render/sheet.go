// Package render lays extracted analyzer documents onto excelize worksheets:
// a metadata block, one table per parameter family, and one histogram chart
// per family fed from hidden helper columns.
package render

import (
	"github.com/xuri/excelize/v2"
)

const (
	// resultColumns is the width of the visible table: name, low limit,
	// high limit, value.
	resultColumns = 4

	// helperColumn is the first (0-based) column used for hidden histogram
	// data; the k-th family uses helperColumn+k. Far enough right that it
	// never collides with the visible table.
	helperColumn = 6

	// chartColumn is the (0-based) anchor column for every chart.
	chartColumn = 6

	// chartRowStep is the vertical spacing between chart anchors. Charts
	// are stacked at fixed offsets so they never overlap, whatever the
	// histogram lengths.
	chartRowStep = 20

	// maxColWidth caps autofit so one long value cannot blow up the layout.
	maxColWidth = 48
)

// invalidSuffix marks QC-failed families and results in the output.
const invalidSuffix = " (Invalid)"

// Writer owns the output workbook and the shared cell styles.
type Writer struct {
	file         *excelize.File
	bold         int
	boldCentered int
	defaultSheet string
	created      int
}

// NewWriter prepares a writer over an open workbook, building the styles
// every sheet shares.
func NewWriter(f *excelize.File) (*Writer, error) {
	bold, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return nil, err
	}
	boldCentered, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, err
	}
	return &Writer{
		file:         f,
		bold:         bold,
		boldCentered: boldCentered,
		defaultSheet: f.GetSheetName(0),
	}, nil
}

// Finalize removes the workbook's placeholder sheet once real sheets exist
// and makes the first of them active. With zero documents written the
// placeholder stays so the workbook remains valid.
func (w *Writer) Finalize() error {
	if w.created == 0 {
		return nil
	}
	if err := w.file.DeleteSheet(w.defaultSheet); err != nil {
		return err
	}
	w.file.SetActiveSheet(0)
	return nil
}

// Sheet is the rendering surface for one document. The grid row cursor and
// the chart anchor cursor advance independently; the family counter selects
// the hidden helper column.
type Sheet struct {
	w    *Writer
	name string

	row      int // next grid row, 0-based
	chartRow int // next chart anchor row, 0-based
	family   int // families rendered so far

	widths [resultColumns]int
}

// Name returns the worksheet name actually created.
func (s *Sheet) Name() string {
	return s.name
}

// setCell writes one cell at 0-based coordinates, tracking content width
// for the visible table columns. style 0 leaves the default style.
func (s *Sheet) setCell(col, row int, value string, style int) error {
	cell, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return err
	}
	if err := s.w.file.SetCellValue(s.name, cell, value); err != nil {
		return err
	}
	if style != 0 {
		if err := s.w.file.SetCellStyle(s.name, cell, cell, style); err != nil {
			return err
		}
	}
	if col < resultColumns && len(value) > s.widths[col] {
		s.widths[col] = len(value)
	}
	return nil
}

// Finish hides the histogram helper columns and sizes the visible columns
// to their content.
func (s *Sheet) Finish() error {
	if s.family > 0 {
		first, err := excelize.ColumnNumberToName(helperColumn + 1)
		if err != nil {
			return err
		}
		last, err := excelize.ColumnNumberToName(helperColumn + s.family)
		if err != nil {
			return err
		}
		if err := s.w.file.SetColVisible(s.name, first+":"+last, false); err != nil {
			return err
		}
	}

	for col, width := range s.widths {
		if width == 0 {
			continue
		}
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return err
		}
		w := float64(width) + 2
		if w > maxColWidth {
			w = maxColWidth
		}
		if err := s.w.file.SetColWidth(s.name, name, name, w); err != nil {
			return err
		}
	}
	return nil
}
