// Package display turns a positioned layout tree into the flat paint
// program an external renderer draws, per spec.md §4.8.
package display

import "github.com/iansmith/rendcore/pkg/layout"

// ItemKind distinguishes the two display item shapes.
type ItemKind int

const (
	RectItem ItemKind = iota
	TextItem
)

// Item is one entry of the emitted paint program. Text is only set for
// TextItem.
type Item struct {
	Kind  ItemKind
	Style *layout.ComputedStyle
	Point layout.Point
	Size  layout.Size
	Text  string
}

// Emit walks the positioned layout tree in pre-order and returns its
// complete paint program, in paint order.
func Emit(root *layout.Object) []Item {
	var items []Item
	emit(root, &items)
	return items
}

func emit(node *layout.Object, items *[]Item) {
	if node == nil {
		return
	}

	switch node.Kind {
	case layout.Block, layout.Inline:
		if shouldEmitRect(node) {
			*items = append(*items, Item{
				Kind:  RectItem,
				Style: node.Style,
				Point: node.Point,
				Size:  node.Size,
			})
		}
	case layout.Text:
		emitTextLines(node, items)
	}

	emit(node.FirstChild, items)
	emit(node.NextSibling, items)
}

// shouldEmitRect reports whether node's box is worth painting: either
// its background isn't the default white, or its CSS `width`/`height`
// were explicitly set to something non-zero. This intentionally checks
// the declared style size (node.Style.Width/Height), not the computed
// layout size (node.Size) — a default-white <body> always ends up with
// a non-zero computed size once it has content, but spec.md §8's
// "empty"/"one Text" scenarios show that alone must not produce a Rect.
func shouldEmitRect(node *layout.Object) bool {
	if !node.Style.BackgroundColor().Equal(whiteBackground()) {
		return true
	}
	return node.Style.Width() != 0 || node.Style.Height() != 0
}

func whiteBackground() layout.Color {
	c, _ := layout.ColorFromName("white")
	return c
}

func emitTextLines(node *layout.Object, items *[]Item) {
	lines := node.Lines()
	if len(lines) == 0 {
		lines = []string{node.Node.Text}
	}
	lineHeight := textLineHeight(node)

	for i, line := range lines {
		*items = append(*items, Item{
			Kind:  TextItem,
			Style: node.Style,
			Point: layout.Point{X: node.Point.X, Y: node.Point.Y + i*lineHeight},
			Text:  line,
		})
	}
}

func textLineHeight(node *layout.Object) int {
	if len(node.Lines()) == 0 {
		return node.Size.Height
	}
	return node.Size.Height / len(node.Lines())
}
