package models

import (
	"reflect"
	"testing"
)

func TestParseHistogram(t *testing.T) {
	tests := []struct {
		input    string
		expected []int
	}{
		{"10;20;;30;", []int{10, 20, 30}},
		{"0;0;0", []int{0, 0, 0}},
		{"42", []int{42}},
		{"", nil},
		{";;;", nil},
		{" 1 ; 2 ", []int{1, 2}},
	}

	for _, tt := range tests {
		got, err := ParseHistogram(tt.input)
		if err != nil {
			t.Errorf("ParseHistogram(%q) failed: %v", tt.input, err)
			continue
		}
		if !reflect.DeepEqual(got, tt.expected) {
			t.Errorf("ParseHistogram(%q) = %v, expected %v", tt.input, got, tt.expected)
		}
	}
}

func TestParseHistogramInvalid(t *testing.T) {
	for _, input := range []string{"10;abc;30", "1.5;2"} {
		if _, err := ParseHistogram(input); err == nil {
			t.Errorf("ParseHistogram(%q): expected error, got nil", input)
		}
	}
}

func TestDocumentSkip(t *testing.T) {
	tests := []struct {
		name string
		doc  Document
		skip bool
	}{
		{"normal run", Document{Operator: "alice"}, false},
		{"tech run", Document{Operator: "tech"}, true},
		{"qc failed", Document{Operator: "alice", QCFailed: true}, true},
		{"tech and qc failed", Document{Operator: "tech", QCFailed: true}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.doc.Skip(); got != tt.skip {
				t.Errorf("Skip() = %v, expected %v", got, tt.skip)
			}
		})
	}
}
