package abxreport

import (
	"fmt"
	"strings"

	"github.com/openvetlab/abxreport-go/pkg/abxreport/models"
	"github.com/openvetlab/abxreport-go/pkg/abxreport/xmltree"
)

// Node names and type markers used by the analyzer export format.
const (
	fieldOperator = "OPERATOR"
	fieldQCFailed = "QCFailed"

	typeFamily = "SampleParametersFamily"
	typeResult = "SampleParameterResult"

	groupFlags     = "FLAGS"
	groupHistogram = "HISTOGRAM"

	fieldName = "Name"
	fieldVal  = "Valid"
	fieldLow  = "LowLimit"
	fieldHigh = "HighLimit"

	// rawValueType marks the child node carrying the raw measured value.
	rawValueType = "raw"

	// headerPrefix is stripped from metadata labels before rendering.
	headerPrefix = "FIELD_SID_"
)

// headerFields is the allow-list of document-level metadata rendered into
// the header block. Output order follows the document, not this list.
var headerFields = map[string]bool{
	"ANALYSIS_DATE":               true,
	"ANALYSIS_TYPE":               true,
	"FIELD_SID_ANIMAL_NAME":       true,
	"FIELD_SID_OWNER_FIRSTNAME":   true,
	"FIELD_SID_OWNER_LASTNAME":    true,
	"FIELD_SID_PATIENT_ID":        true,
	"FIELD_SID_PATIENT_LAST_NAME": true,
	"FIELD_SID_PATIENT_SEX":       true,
	"FIELD_SID_SAMPLE_TYPE":       true,
	"FIELD_SID_SPECIES_ID":        true,
	"SAMPLING_MODE":               true,
	"TEMPERATURE":                 true,
	"QCFailed":                    true,
}

// BuildDocument extracts a renderable Document from a parsed export tree.
// stem becomes the preferred worksheet name. Any required node that cannot
// be located fails the whole document.
func BuildDocument(root *xmltree.Node, stem string) (*models.Document, error) {
	op, err := root.ChildOne(fieldOperator)
	if err != nil {
		return nil, err
	}
	qc, err := root.ChildOne(fieldQCFailed)
	if err != nil {
		return nil, err
	}

	doc := &models.Document{
		Stem:     stem,
		Operator: op.Text,
		QCFailed: qc.Text == "1",
	}

	for _, c := range root.Children {
		if headerFields[c.Name] {
			doc.Header = append(doc.Header, models.HeaderField{
				Label: strings.TrimPrefix(c.Name, headerPrefix),
				Value: c.Text,
			})
		}
	}

	for _, fam := range root.FindAll(func(n *xmltree.Node) bool { return n.Type == typeFamily }) {
		family, err := buildFamily(fam)
		if err != nil {
			return nil, fmt.Errorf("family %q: %w", fam.Name, err)
		}
		doc.Families = append(doc.Families, *family)
	}

	return doc, nil
}

func buildFamily(fam *xmltree.Node) (*models.ParameterFamily, error) {
	flags, err := fam.ChildOne(groupFlags)
	if err != nil {
		return nil, err
	}
	qc, err := flags.ChildOne(fieldQCFailed)
	if err != nil {
		return nil, err
	}

	histNode, err := fam.ChildOne(groupHistogram)
	if err != nil {
		return nil, err
	}
	if len(histNode.Children) == 0 {
		return nil, &xmltree.MissingFieldError{Field: groupHistogram}
	}
	hist, err := models.ParseHistogram(histNode.Children[0].Text)
	if err != nil {
		return nil, err
	}

	family := &models.ParameterFamily{
		Name:      fam.Name,
		Valid:     qc.Text == "0",
		Histogram: hist,
	}

	for _, c := range fam.Children {
		if c.Type != typeResult {
			continue
		}
		res, err := buildResult(c)
		if err != nil {
			return nil, err
		}
		family.Results = append(family.Results, *res)
	}

	return family, nil
}

func buildResult(n *xmltree.Node) (*models.ParameterResult, error) {
	name, err := n.ChildOne(fieldName)
	if err != nil {
		return nil, err
	}
	valid, err := n.ChildOne(fieldVal)
	if err != nil {
		return nil, err
	}
	low, err := n.ChildOne(fieldLow)
	if err != nil {
		return nil, err
	}
	high, err := n.ChildOne(fieldHigh)
	if err != nil {
		return nil, err
	}

	res := &models.ParameterResult{
		Name:  name.Text,
		Valid: valid.Text == "1",
		Low:   low.Text,
		High:  high.Text,
	}

	// The raw measured value only exists, and only matters, for valid
	// results. Invalid results render with a blank value cell.
	if res.Valid {
		raw := firstChildOfType(n, rawValueType)
		if raw == nil {
			return nil, &xmltree.MissingFieldError{Field: res.Name + " raw value"}
		}
		res.Value = raw.Text
	}

	return res, nil
}

func firstChildOfType(n *xmltree.Node, typ string) *xmltree.Node {
	for _, c := range n.Children {
		if c.Type == typ {
			return c
		}
	}
	return nil
}
