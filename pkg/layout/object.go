package layout

import (
	"github.com/iansmith/rendcore/pkg/css"
	"github.com/iansmith/rendcore/pkg/html"
)

// ObjectKind distinguishes the three layout object shapes.
type ObjectKind int

const (
	Block ObjectKind = iota
	Inline
	Text
)

// Point is a layout-space coordinate.
type Point struct {
	X, Y int
}

// Size is a layout-space extent.
type Size struct {
	Width, Height int
}

// Object is one node of the layout tree: the DOM with display:none
// subtrees elided and a ComputedStyle attached. FirstChild and
// NextSibling are the owning edges; Parent is a non-owning back-edge
// used only for navigation, mirroring the DOM's ownership discipline.
type Object struct {
	Kind  ObjectKind
	Node  *html.Node
	Style *ComputedStyle

	Parent      *Object
	FirstChild  *Object
	NextSibling *Object

	Point Point
	Size  Size

	// lines holds the wrapped text lines for a Text object, populated by
	// CalculateSize. Empty for Block/Inline objects.
	lines []string
}

// Lines returns the wrapped text lines a Text object was broken into.
func (o *Object) Lines() []string { return o.lines }

func (o *Object) SetWidth(w int)  { o.Size.Width = w }
func (o *Object) SetHeight(h int) { o.Size.Height = h }

// kindForStyle maps a node and its resolved display to the layout
// object kind it produces, or ok=false if the node is display:none and
// should not become a layout object at all.
func kindForStyle(node *html.Node, style *ComputedStyle) (ObjectKind, bool) {
	if node.Kind == html.TextNode {
		return Text, true
	}
	switch style.Display() {
	case DisplayNone:
		return 0, false
	case DisplayInline:
		return Inline, true
	default:
		return Block, true
	}
}

// createObject resolves node's ComputedStyle against sheet (inheriting
// from parent's style) and returns a fresh, childless Object, or
// ok=false if node resolves to display:none.
func createObject(node *html.Node, parent *Object, sheet css.StyleSheet) (*Object, bool) {
	if node == nil {
		return nil, false
	}
	style := resolveDeclarations(node, sheet)
	var parentStyle *ComputedStyle
	if parent != nil {
		parentStyle = parent.Style
	}
	style.Default(node, parentStyle)

	kind, ok := kindForStyle(node, style)
	if !ok {
		return nil, false
	}
	return &Object{Kind: kind, Node: node, Style: style, Parent: parent}, true
}

// BuildTree builds the layout tree rooted at node (the DOM's <body>
// element), eliding display:none subtrees, per spec.md §4.5.
func BuildTree(node *html.Node, parent *Object, sheet css.StyleSheet) *Object {
	target := node
	obj, ok := createObject(target, parent, sheet)

	for !ok {
		if target == nil {
			return nil
		}
		target = target.NextSibling
		if target == nil {
			return nil
		}
		obj, ok = createObject(target, parent, sheet)
	}

	originalFirstChild := target.FirstChild
	originalNextSibling := target.NextSibling

	firstChild := BuildTree(originalFirstChild, obj, sheet)
	nextSibling := BuildTree(originalNextSibling, parent, sheet)

	if firstChild == nil && originalFirstChild != nil {
		candidate := originalFirstChild.NextSibling
		for {
			firstChild = BuildTree(candidate, obj, sheet)
			if firstChild == nil && candidate != nil {
				candidate = candidate.NextSibling
				continue
			}
			break
		}
	}

	if nextSibling == nil && target.NextSibling != nil {
		candidate := originalNextSibling.NextSibling
		for {
			nextSibling = BuildTree(candidate, nil, sheet)
			if nextSibling == nil && candidate != nil {
				candidate = candidate.NextSibling
				continue
			}
			break
		}
	}

	obj.FirstChild = firstChild
	obj.NextSibling = nextSibling
	return obj
}
