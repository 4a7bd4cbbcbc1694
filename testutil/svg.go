// Package testutil provides shared fixtures and SVG inspection helpers for
// the package test suites.
package testutil

import (
	"strings"
	"testing"

	"github.com/antchfx/xmlquery"
	antxpath "github.com/antchfx/xpath"
)

// ParseSVG parses a rendered SVG document into a queryable DOM.
func ParseSVG(t *testing.T, svgText string) *xmlquery.Node {
	t.Helper()
	doc, err := xmlquery.Parse(strings.NewReader(svgText))
	if err != nil {
		t.Fatalf("Failed to parse SVG output: %v", err)
	}
	return doc
}

// QueryAll evaluates a compiled XPath expression against the document and
// returns the matched nodes in document order.
func QueryAll(t *testing.T, doc *xmlquery.Node, expression string) []*xmlquery.Node {
	t.Helper()
	expr, err := antxpath.Compile(expression)
	if err != nil {
		t.Fatalf("Failed to compile XPath %q: %v", expression, err)
	}

	var nodes []*xmlquery.Node
	nav := xmlquery.CreateXPathNavigator(doc)
	v := expr.Evaluate(nav)
	if iter, ok := v.(*antxpath.NodeIterator); ok {
		for iter.MoveNext() {
			if n, ok := iter.Current().(*xmlquery.NodeNavigator); ok {
				nodes = append(nodes, n.Current())
			}
		}
	}
	return nodes
}

// CountElements returns the number of nodes matching the XPath expression.
func CountElements(t *testing.T, doc *xmlquery.Node, expression string) int {
	t.Helper()
	return len(QueryAll(t, doc, expression))
}

// ElementOrder returns the element names of the direct children of the root
// svg element, in document order. Useful for layer-order assertions.
func ElementOrder(t *testing.T, doc *xmlquery.Node) []string {
	t.Helper()
	var order []string
	for _, node := range QueryAll(t, doc, "/svg/*") {
		order = append(order, node.Data)
	}
	return order
}
