package render

import "github.com/openvetlab/abxreport-go/pkg/abxreport/models"

// WriteFamily renders one parameter family: its heading, one row per
// result, a separator blank row, and the family's histogram chart. A family
// with no results still renders its heading and advances the cursors.
func (s *Sheet) WriteFamily(fam models.ParameterFamily) error {
	heading := fam.Name
	if !fam.Valid {
		heading += invalidSuffix
	}
	if err := s.setCell(0, s.row, heading, s.w.boldCentered); err != nil {
		return err
	}
	s.row++

	for _, res := range fam.Results {
		if err := s.writeResult(res); err != nil {
			return err
		}
		s.row++
	}
	s.row++

	return s.writeChart(fam)
}

// writeResult writes one four-column result row at the current cursor. The
// value cell stays blank for invalid results; their name carries the
// invalid marker instead.
func (s *Sheet) writeResult(res models.ParameterResult) error {
	name := res.Name
	if !res.Valid {
		name += invalidSuffix
	}
	if err := s.setCell(0, s.row, name, 0); err != nil {
		return err
	}
	if err := s.setCell(1, s.row, res.Low, 0); err != nil {
		return err
	}
	if err := s.setCell(2, s.row, res.High, 0); err != nil {
		return err
	}
	if !res.Valid {
		return nil
	}
	return s.setCell(3, s.row, res.Value, 0)
}
