package html

import (
	"fmt"
	"strings"
)

// DebugDump produces a human-readable, pre-order indented description of
// the DOM rooted at n, for use by the calling harness's snapshot tests.
func DebugDump(n *Node) string {
	var sb strings.Builder
	sb.WriteByte('\n')
	debugDumpInternal(n, 0, &sb)
	return sb.String()
}

func debugDumpInternal(n *Node, depth int, sb *strings.Builder) {
	if n == nil {
		return
	}
	sb.WriteString(strings.Repeat(" ", depth))
	sb.WriteString(describe(n))
	sb.WriteByte('\n')
	debugDumpInternal(n.FirstChild, depth+1, sb)
	debugDumpInternal(n.NextSibling, depth, sb)
}

func describe(n *Node) string {
	switch n.Kind {
	case DocumentNode:
		return "Document"
	case TextNode:
		return fmt.Sprintf("Text(%q)", n.Text)
	default:
		if len(n.Attrs) == 0 {
			return fmt.Sprintf("Element(%s)", n.Tag)
		}
		parts := make([]string, len(n.Attrs))
		for i, a := range n.Attrs {
			parts[i] = fmt.Sprintf("%s=%q", a.Name(), a.Value())
		}
		return fmt.Sprintf("Element(%s %s)", n.Tag, strings.Join(parts, " "))
	}
}
