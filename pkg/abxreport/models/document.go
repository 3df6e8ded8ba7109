// Package models defines the extracted form of one analyzer run.
package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Document represents one parsed analyzer export, ready for rendering.
type Document struct {
	// Stem is the source file's base name without extension. It is the
	// preferred worksheet name.
	Stem string
	// Operator is the operator-identity field of the run.
	Operator string
	// QCFailed reports the run-level quality-control failure flag.
	QCFailed bool
	// Header lists the metadata fields to render, in first-encounter order.
	Header []HeaderField
	// Families lists the parameter families, in document order.
	Families []ParameterFamily
}

// TestOperator is the operator identity the instrument uses for technician
// test runs. Such runs carry no diagnostic data.
const TestOperator = "tech"

// Skip reports whether the document should be excluded from the report:
// technician test runs and runs whose overall QC check failed.
func (d *Document) Skip() bool {
	return d.Operator == TestOperator || d.QCFailed
}

// HeaderField is one label/value pair of the metadata block.
type HeaderField struct {
	Label string
	Value string
}

// ParameterFamily is a named group of results sharing one histogram and one
// QC validity flag.
type ParameterFamily struct {
	Name string
	// Valid is false when the family's QC flag failed; the family is still
	// rendered, marked invalid.
	Valid bool
	// Histogram holds the family's bin counts, rendered as a column chart.
	Histogram []int
	// Results are the family's measured parameters, in document order.
	Results []ParameterResult
}

// ParameterResult is a single measured parameter with its reference limits.
type ParameterResult struct {
	Name  string
	Valid bool
	// Low and High are the reference limits, kept as raw text.
	Low  string
	High string
	// Value is the raw measured value; empty when the result is invalid.
	Value string
}

// ParseHistogram parses a semicolon-delimited histogram payload into bin
// counts. Empty tokens between delimiters are discarded; "10;20;;30;"
// yields [10 20 30].
func ParseHistogram(s string) ([]int, error) {
	var out []int
	for _, tok := range strings.Split(s, ";") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("histogram value %q: %w", tok, err)
		}
		out = append(out, v)
	}
	return out, nil
}
