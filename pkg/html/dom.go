package html

import "strings"

// NodeKind distinguishes the three DOM node variants the core supports.
type NodeKind int

const (
	DocumentNode NodeKind = iota
	ElementNode
	TextNode
)

// ElementKind enumerates the fixed subset of tags the tree builder and
// cascade understand by name. Anything else is kept as an element but
// carries kind Other.
type ElementKind int

const (
	Other ElementKind = iota
	Html
	Head
	Style
	Script
	Body
	P
	H1
	H2
	A
)

// ElementKindFromTag maps a lowercase tag name to its ElementKind.
func ElementKindFromTag(tag string) ElementKind {
	switch tag {
	case "html":
		return Html
	case "head":
		return Head
	case "style":
		return Style
	case "script":
		return Script
	case "body":
		return Body
	case "p":
		return P
	case "h1":
		return H1
	case "h2":
		return H2
	case "a":
		return A
	default:
		return Other
	}
}

// BlockByDefault reports whether an element of this kind is block-level
// absent any CSS override, per spec.md §4.4.
func (k ElementKind) BlockByDefault() bool {
	switch k {
	case Html, Head, Style, Script, Body, P, H1, H2:
		return true
	default:
		return false
	}
}

// Node is a single DOM node. FirstChild and NextSibling are owning edges;
// Parent and PrevSibling are non-owning back-edges used only for
// navigation. Go has no ownership types, so this split is structural: only
// AppendChild below (which the parser's insertElement and insertChar go
// through) ever assigns FirstChild/NextSibling, and traversal code never follows Parent or
// PrevSibling to decide whether to free anything.
type Node struct {
	Kind    NodeKind
	Tag     string
	Element ElementKind
	Attrs   []Attribute
	Text    string

	Parent      *Node
	FirstChild  *Node
	LastChild   *Node
	PrevSibling *Node
	NextSibling *Node
}

// NewDocumentNode returns a fresh, childless Document root.
func NewDocumentNode() *Node {
	return &Node{Kind: DocumentNode}
}

// NewElementNode returns a fresh, childless element with no parent.
func NewElementNode(tag string, attrs []Attribute) *Node {
	return &Node{
		Kind:    ElementNode,
		Tag:     tag,
		Element: ElementKindFromTag(tag),
		Attrs:   attrs,
	}
}

// NewTextNode returns a fresh text node carrying the given string.
func NewTextNode(text string) *Node {
	return &Node{Kind: TextNode, Text: text}
}

// GetAttribute returns the value of the named attribute and whether it was present.
func (n *Node) GetAttribute(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name() == name {
			return a.Value(), true
		}
	}
	return "", false
}

// HasClass reports whether n's whitespace-separated class attribute
// contains the token c, per spec.md §4.4's ClassSelector match rule.
func (n *Node) HasClass(c string) bool {
	class, ok := n.GetAttribute("class")
	if !ok {
		return false
	}
	for _, tok := range strings.Fields(class) {
		if tok == c {
			return true
		}
	}
	return false
}

// AppendChild appends child as the last child of n, linking the owning
// FirstChild/NextSibling edges and the non-owning Parent/PrevSibling
// back-edges. This is the only way the tree grows during construction.
func (n *Node) AppendChild(child *Node) {
	child.Parent = n
	child.NextSibling = nil
	if n.LastChild == nil {
		n.FirstChild = child
		child.PrevSibling = nil
	} else {
		n.LastChild.NextSibling = child
		child.PrevSibling = n.LastChild
	}
	n.LastChild = child
}

// Window wraps the document root produced by tree construction.
type Window struct {
	document *Node
}

// NewWindow returns a Window whose Document is a fresh, empty Document node.
func NewWindow() *Window {
	return &Window{document: NewDocumentNode()}
}

// Document returns the root Document node.
func (w *Window) Document() *Node {
	return w.document
}
