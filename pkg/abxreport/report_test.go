package abxreport

import (
	"archive/zip"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const normalRun = `<?xml version="1.0" encoding="UTF-8"?>
<a>
  <s n="OPERATOR">bob</s>
  <b n="QCFailed">0</b>
  <s n="ANALYSIS_DATE">2026-03-14</s>
  <o n="WBC" t="SampleParametersFamily">
    <o n="FLAGS"><b n="QCFailed">0</b></o>
    <o n="HISTOGRAM"><s n="Data">1;2;3</s></o>
    <o n="WBC" t="SampleParameterResult">
      <s n="Name">WBC</s>
      <b n="Valid">1</b>
      <d n="LowLimit">4.0</d>
      <d n="HighLimit">12.0</d>
      <d n="Raw" t="raw">7.5</d>
    </o>
    <o n="LYM" t="SampleParameterResult">
      <s n="Name">LYM</s>
      <b n="Valid">0</b>
      <d n="LowLimit">1.0</d>
      <d n="HighLimit">4.8</d>
    </o>
  </o>
</a>`

const techRun = `<?xml version="1.0" encoding="UTF-8"?>
<a>
  <s n="OPERATOR">tech</s>
  <b n="QCFailed">0</b>
</a>`

const qcFailedRun = `<?xml version="1.0" encoding="UTF-8"?>
<a>
  <s n="OPERATOR">bob</s>
  <b n="QCFailed">1</b>
</a>`

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func workbookChartCount(t *testing.T, path string) int {
	t.Helper()
	r, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer r.Close()

	count := 0
	for _, zf := range r.File {
		if strings.HasPrefix(zf.Name, "xl/charts/chart") {
			count++
		}
	}
	return count
}

func TestGenerateEndToEnd(t *testing.T) {
	dir := t.TempDir()
	techPath := writeFixture(t, dir, "techrun.xml", techRun)
	runPath := writeFixture(t, dir, "run-b.xml", normalRun)
	out := filepath.Join(dir, "report.xlsx")

	report, err := Generate([]string{techPath, runPath}, Options{OutputPath: out})
	require.NoError(t, err)
	require.Len(t, report.Outcomes, 2)

	assert.True(t, report.Outcomes[0].Skipped)
	assert.Empty(t, report.Outcomes[0].Sheet)
	assert.False(t, report.Outcomes[1].Skipped)
	assert.Equal(t, "run-b", report.Outcomes[1].Sheet)

	f, err := excelize.OpenFile(out)
	require.NoError(t, err)
	defer f.Close()

	// Exactly one worksheet: the tech run contributed nothing and the
	// placeholder sheet is gone.
	assert.Equal(t, []string{"run-b"}, f.GetSheetList())

	// Metadata block in document order.
	label, err := f.GetCellValue("run-b", "A1")
	require.NoError(t, err)
	assert.Equal(t, "QCFailed", label)
	label, err = f.GetCellValue("run-b", "A2")
	require.NoError(t, err)
	assert.Equal(t, "ANALYSIS_DATE", label)

	// Table headings after the blank row.
	heading, err := f.GetCellValue("run-b", "A4")
	require.NoError(t, err)
	assert.Equal(t, "Type", heading)

	// Family heading, valid result with value, invalid result without.
	famHeading, err := f.GetCellValue("run-b", "A6")
	require.NoError(t, err)
	assert.Equal(t, "WBC", famHeading)
	value, err := f.GetCellValue("run-b", "D7")
	require.NoError(t, err)
	assert.Equal(t, "7.5", value)
	name, err := f.GetCellValue("run-b", "A8")
	require.NoError(t, err)
	assert.Equal(t, "LYM (Invalid)", name)
	value, err = f.GetCellValue("run-b", "D8")
	require.NoError(t, err)
	assert.Empty(t, value)

	// Histogram in the hidden helper column, one chart in the workbook.
	hist, err := f.GetCellValue("run-b", "G2")
	require.NoError(t, err)
	assert.Equal(t, "2", hist)
	visible, err := f.GetColVisible("run-b", "G")
	require.NoError(t, err)
	assert.False(t, visible)
	assert.Equal(t, 1, workbookChartCount(t, out))
}

func TestGenerateSkipsQCFailedRun(t *testing.T) {
	dir := t.TempDir()
	path := writeFixture(t, dir, "failed.xml", qcFailedRun)
	out := filepath.Join(dir, "report.xlsx")

	report, err := Generate([]string{path}, Options{OutputPath: out})
	require.NoError(t, err)
	require.Len(t, report.Outcomes, 1)
	assert.True(t, report.Outcomes[0].Skipped)

	f, err := excelize.OpenFile(out)
	require.NoError(t, err)
	defer f.Close()
	// Nothing was written; the placeholder keeps the workbook valid.
	assert.Equal(t, []string{"Sheet1"}, f.GetSheetList())
}

func TestGenerateSheetNameCollision(t *testing.T) {
	dir := t.TempDir()
	dirA := filepath.Join(dir, "a")
	dirB := filepath.Join(dir, "b")
	require.NoError(t, os.Mkdir(dirA, 0755))
	require.NoError(t, os.Mkdir(dirB, 0755))
	pathA := writeFixture(t, dirA, "run.xml", normalRun)
	pathB := writeFixture(t, dirB, "run.xml", normalRun)
	out := filepath.Join(dir, "report.xlsx")

	report, err := Generate([]string{pathA, pathB}, Options{OutputPath: out})
	require.NoError(t, err)
	require.Len(t, report.Outcomes, 2)
	assert.Equal(t, "run", report.Outcomes[0].Sheet)
	assert.NotEqual(t, "run", report.Outcomes[1].Sheet)
	assert.NotEmpty(t, report.Outcomes[1].Sheet)

	f, err := excelize.OpenFile(out)
	require.NoError(t, err)
	defer f.Close()
	assert.Len(t, f.GetSheetList(), 2)

	// No data loss: both sheets carry the full table.
	for _, sheet := range f.GetSheetList() {
		value, err := f.GetCellValue(sheet, "D7")
		require.NoError(t, err)
		assert.Equal(t, "7.5", value, "sheet %s", sheet)
	}
}

func TestGenerateContinuesPastMalformedDocument(t *testing.T) {
	dir := t.TempDir()
	badPath := writeFixture(t, dir, "broken.xml", `<a><s n="OPERATOR">bob</s></a>`)
	goodPath := writeFixture(t, dir, "good.xml", normalRun)
	out := filepath.Join(dir, "report.xlsx")

	report, err := Generate([]string{badPath, goodPath}, Options{OutputPath: out})
	require.NoError(t, err)
	require.Len(t, report.Outcomes, 2)

	var docErr *DocumentError
	require.ErrorAs(t, report.Outcomes[0].Err, &docErr)
	assert.Equal(t, badPath, docErr.Path)
	assert.NoError(t, report.Outcomes[1].Err)

	f, err := excelize.OpenFile(out)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"good"}, f.GetSheetList())
}

func TestGenerateNoInput(t *testing.T) {
	_, err := Generate(nil, DefaultOptions())
	assert.True(t, errors.Is(err, ErrNoInput))
}
