// Package render wires the tokenizer, tree builder, CSS parser, style
// resolver, and layout engine into the single pipeline entry point
// external callers use.
package render

import (
	"unicode/utf8"

	"github.com/iansmith/rendcore/pkg/css"
	"github.com/iansmith/rendcore/pkg/display"
	"github.com/iansmith/rendcore/pkg/html"
	"github.com/iansmith/rendcore/pkg/layout"
	"github.com/iansmith/rendcore/pkg/rendererr"
)

// Render runs the full pipeline over htmlBytes: HTML tokenization and
// tree construction, CSS tokenization and parsing of any <style>
// content, style resolution, and layout. It fails only if htmlBytes is
// not valid UTF-8.
func Render(htmlBytes []byte, cfg layout.Config) (*html.Window, *css.StyleSheet, *layout.Object, []display.Item, error) {
	if !utf8.Valid(htmlBytes) {
		return nil, nil, nil, nil, rendererr.New(rendererr.UnexpectedInput, "input is not valid UTF-8")
	}

	window := createFrame(string(htmlBytes))
	doc := window.Document()

	sheet := css.ParseStylesheet(html.StyleContent(doc))

	root := layout.Build(doc, sheet, cfg)

	var items []display.Item
	if root != nil {
		items = display.Emit(root)
	}

	return window, &sheet, root, items, nil
}

func createFrame(src string) *html.Window {
	tokenizer := html.NewTokenizer(src)
	parser := html.NewParser(tokenizer)
	return parser.ConstructTree()
}

// DebugDump returns the indented pre-order dump of doc, suitable for
// comparing against a known-good rendering in tests or a CLI.
func DebugDump(doc *html.Node) string {
	return html.DebugDump(doc)
}
