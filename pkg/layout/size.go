package layout

import "unicode/utf8"

// CalculateSize runs the two-phase width/height pass over the layout
// tree, per spec.md §4.6, given the fixed content-area width that the
// root block starts from.
func CalculateSize(node *Object, parentSize Size) {
	calculateSize(node, parentSize, parentSize.Width)
}

// calculateSize is CalculateSize's recursive worker. blockWidth is the
// content width of the nearest Block ancestor (the root's fixed
// content-area width, narrowed at each Block boundary); inline objects
// don't establish a new content width, so a Text descendant of an
// Inline object (e.g. the text inside <a>) must still wrap against its
// containing block's width, not its immediate inline parent's width,
// which starts at zero until its own children are sized.
func calculateSize(node *Object, parentSize Size, blockWidth int) {
	if node == nil {
		return
	}
	if node.Kind == Block {
		computeSize(node, parentSize, blockWidth)
	}

	childBlockWidth := blockWidth
	if node.Kind == Block {
		childBlockWidth = node.Size.Width
	}
	calculateSize(node.FirstChild, node.Size, childBlockWidth)
	calculateSize(node.NextSibling, parentSize, blockWidth)

	computeSize(node, parentSize, blockWidth)
}

// computeSize fills in node's own Size given its parent's size, based
// on node's kind. It is called twice for a Block node (before and after
// recursing into children) so that block widths are available to
// children while heights, which depend on children, are only correct
// after the second call. Inline and Text nodes are sized once, after
// their children.
func computeSize(node *Object, parentSize Size, blockWidth int) {
	switch node.Kind {
	case Block:
		node.SetWidth(parentSize.Width)
		node.SetHeight(sumChildHeights(node))
	case Inline:
		node.SetWidth(sumChildWidths(node))
		node.SetHeight(maxChildHeight(node))
	case Text:
		sizeTextNode(node, blockWidth)
	}
}

func sumChildWidths(node *Object) int {
	total := 0
	for c := node.FirstChild; c != nil; c = c.NextSibling {
		total += c.Size.Width
	}
	return total
}

func maxChildHeight(node *Object) int {
	max := 0
	for c := node.FirstChild; c != nil; c = c.NextSibling {
		if c.Size.Height > max {
			max = c.Size.Height
		}
	}
	return max
}

func sumChildHeights(node *Object) int {
	total := 0
	for c := node.FirstChild; c != nil; c = c.NextSibling {
		total += c.Size.Height
	}
	return total
}

// sizeTextNode computes a text node's width/height, wrapping its
// content across lines at character granularity when it would overflow
// the containing block's content width, and records the wrapped lines
// for the display-list emitter.
func sizeTextNode(node *Object, blockWidth int) {
	metrics := metricsFor(node.Style.FontSize())
	runes := []rune(node.Node.Text)

	maxCharsPerLine := blockWidth / metrics.charAdvance
	if maxCharsPerLine <= 0 {
		maxCharsPerLine = 1
	}

	lines := wrapRunes(runes, maxCharsPerLine)
	node.lines = lines

	width := 0
	for _, line := range lines {
		if w := utf8.RuneCountInString(line) * metrics.charAdvance; w > width {
			width = w
		}
	}
	node.SetWidth(width)
	node.SetHeight(len(lines) * metrics.lineHeight)
}

func wrapRunes(runes []rune, maxCharsPerLine int) []string {
	if len(runes) == 0 {
		return []string{""}
	}
	var lines []string
	for start := 0; start < len(runes); start += maxCharsPerLine {
		end := start + maxCharsPerLine
		if end > len(runes) {
			end = len(runes)
		}
		lines = append(lines, string(runes[start:end]))
	}
	return lines
}
