package layout

import (
	"github.com/iansmith/rendcore/pkg/css"
	"github.com/iansmith/rendcore/pkg/html"
)

// matchesSelector reports whether sel selects node, per spec.md §4.4:
// a TypeSelector matches an element whose tag equals its value, a
// ClassSelector matches via the node's class attribute, an IdSelector
// matches via the node's id attribute, and an UnknownSelector never
// matches.
func matchesSelector(node *html.Node, sel css.Selector) bool {
	if node.Kind != html.ElementNode {
		return false
	}
	switch sel.Kind {
	case css.TypeSelector:
		return node.Tag == sel.Value
	case css.ClassSelector:
		return node.HasClass(sel.Value)
	case css.IdSelector:
		id, ok := node.GetAttribute("id")
		return ok && id == sel.Value
	default:
		return false
	}
}
