package render

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/openvetlab/abxreport-go/pkg/abxreport/models"
)

// writeChart writes the family's histogram into its hidden helper column
// and anchors a column chart over it. Chart anchors advance by a fixed row
// step per family so stacked charts never overlap, whatever each
// histogram's length.
func (s *Sheet) writeChart(fam models.ParameterFamily) error {
	colName, err := excelize.ColumnNumberToName(helperColumn + s.family + 1)
	if err != nil {
		return err
	}

	if len(fam.Histogram) > 0 {
		if err := s.w.file.SetSheetCol(s.name, colName+"1", &fam.Histogram); err != nil {
			return err
		}
	}

	anchor, err := excelize.CoordinatesToCellName(chartColumn+1, s.chartRow+1)
	if err != nil {
		return err
	}

	// Value ranges are qualified by the worksheet name so they stay
	// unambiguous across the workbook's sheets.
	values := fmt.Sprintf("'%s'!$%s$1:$%s$%d", s.name, colName, colName, max(len(fam.Histogram), 1))
	chart := &excelize.Chart{
		Type: excelize.Col,
		Series: []excelize.ChartSeries{{
			Name:   fam.Name,
			Values: values,
		}},
		Title: []excelize.RichTextRun{{Text: fam.Name}},
	}
	if err := s.w.file.AddChart(s.name, anchor, chart); err != nil {
		return err
	}

	s.family++
	s.chartRow += chartRowStep
	return nil
}
