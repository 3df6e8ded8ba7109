package render

import "github.com/openvetlab/abxreport-go/pkg/abxreport/models"

// tableHeadings are the column titles of every family's result table.
var tableHeadings = [resultColumns]string{"Type", "Low limit", "High limit", "Value"}

// WriteHeader renders the metadata block in the order the fields were
// encountered, then a blank row, the result-table column headings, and one
// more blank row so the first family starts cleanly.
func (s *Sheet) WriteHeader(fields []models.HeaderField) error {
	for _, f := range fields {
		if err := s.setCell(0, s.row, f.Label, s.w.bold); err != nil {
			return err
		}
		if err := s.setCell(1, s.row, f.Value, 0); err != nil {
			return err
		}
		s.row++
	}
	s.row++

	for col, h := range tableHeadings {
		if err := s.setCell(col, s.row, h, s.w.boldCentered); err != nil {
			return err
		}
	}
	s.row += 2
	return nil
}
