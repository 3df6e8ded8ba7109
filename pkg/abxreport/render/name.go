package render

import (
	"fmt"
	"log/slog"
)

// AddSheet creates the worksheet for a document, preferring its file stem.
// Stems that collide with an existing sheet or that excelize rejects
// (length, forbidden characters) fall back to the first free auto-numbered
// name, with a logged warning; the fallback never fails on naming grounds.
func (w *Writer) AddSheet(stem string) (*Sheet, error) {
	name, err := w.createSheet(stem)
	if err != nil {
		return nil, err
	}
	w.created++
	return &Sheet{w: w, name: name}, nil
}

func (w *Writer) createSheet(stem string) (string, error) {
	idx, err := w.file.GetSheetIndex(stem)
	if err == nil && idx >= 0 {
		err = fmt.Errorf("sheet %q already exists", stem)
	}
	if err == nil {
		if _, err = w.file.NewSheet(stem); err == nil {
			return stem, nil
		}
	}
	slog.Warn("using generated sheet name",
		slog.String("stem", stem),
		slog.String("reason", err.Error()))

	for i := 1; ; i++ {
		name := fmt.Sprintf("Sheet%d", i)
		if idx, lookupErr := w.file.GetSheetIndex(name); lookupErr != nil || idx >= 0 {
			continue
		}
		if _, err := w.file.NewSheet(name); err != nil {
			return "", err
		}
		return name, nil
	}
}
