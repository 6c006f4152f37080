package layout

import (
	"github.com/iansmith/rendcore/pkg/css"
	"github.com/iansmith/rendcore/pkg/html"
)

// Build constructs and lays out the full layout tree for doc's <body>
// subtree against sheet, using cfg's content-area width. It returns nil
// if the document has no <body> or the body itself resolves to
// display:none.
func Build(doc *html.Node, sheet css.StyleSheet, cfg Config) *Object {
	body := html.FindElement(doc, html.Body)
	if body == nil {
		return nil
	}

	root := BuildTree(body, nil, sheet)
	if root == nil {
		return nil
	}

	CalculateSize(root, Size{Width: cfg.ContentAreaWidth, Height: 0})
	CalculatePosition(root, Point{X: 0, Y: 0}, Block, nil, nil)
	return root
}
