package html

// FindElement returns the first element of the given kind found via a
// pre-order walk of root's subtree, or nil if none exists.
func FindElement(root *Node, kind ElementKind) *Node {
	if root == nil {
		return nil
	}
	if root.Kind == ElementNode && root.Element == kind {
		return root
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if found := FindElement(c, kind); found != nil {
			return found
		}
	}
	return nil
}

// StyleContent returns the concatenated text content of the document's
// first <style> element, or "" if there is none.
func StyleContent(root *Node) string {
	style := FindElement(root, Style)
	if style == nil {
		return ""
	}
	var text string
	for c := style.FirstChild; c != nil; c = c.NextSibling {
		if c.Kind == TextNode {
			text += c.Text
		}
	}
	return text
}
