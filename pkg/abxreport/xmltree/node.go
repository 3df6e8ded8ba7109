// Package xmltree parses the attribute-tagged XML records emitted by the
// analyzer and provides first-match lookups over the resulting tree.
package xmltree

import "fmt"

// Node is a single element of the parsed document tree. The analyzer tags
// elements with an "n" (name) and sometimes a "t" (type) attribute; lookups
// go through those rather than the element tag.
type Node struct {
	// Tag is the raw XML element name.
	Tag string
	// Name is the value of the "n" attribute, empty if absent.
	Name string
	// Type is the value of the "t" attribute, empty if absent.
	Type string
	// Text is the element's trimmed character data.
	Text string
	// Children are the nested elements in document order.
	Children []*Node
}

// MissingFieldError indicates a required named node was not found. The
// analyzer export format does not enforce name uniqueness, so lookups take
// the first match; zero matches means the document shape is not what this
// tool expects.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing field %q in document", e.Field)
}

// FindOne returns the first descendant (depth-first, document order) whose
// name attribute equals name, or a MissingFieldError.
func (n *Node) FindOne(name string) (*Node, error) {
	for _, c := range n.Children {
		if c.Name == name {
			return c, nil
		}
		if found, err := c.FindOne(name); err == nil {
			return found, nil
		}
	}
	return nil, &MissingFieldError{Field: name}
}

// ChildOne returns the first direct child whose name attribute equals name,
// or a MissingFieldError.
func (n *Node) ChildOne(name string) (*Node, error) {
	for _, c := range n.Children {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, &MissingFieldError{Field: name}
}

// FindAll returns every descendant matching pred, in document order.
func (n *Node) FindAll(pred func(*Node) bool) []*Node {
	var out []*Node
	for _, c := range n.Children {
		if pred(c) {
			out = append(out, c)
		}
		out = append(out, c.FindAll(pred)...)
	}
	return out
}
