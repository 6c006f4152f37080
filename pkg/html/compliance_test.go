package html

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// complianceDocs are small documents within this package's accepted
// subset (html/head/body/p/h1/h2/a with text, per spec.md §8's
// round-trip scenarios). Cross-checking against golang.org/x/net/html
// and goquery catches gross tag/text disagreements without pulling a
// full WHATWG-compliant parser into the runtime pipeline.
var complianceDocs = []string{
	"<html><head></head><body></body></html>",
	"<html><head></head><body>text</body></html>",
	"<p>Hey</p><h1>Hi</h1>",
	`<html><head></head><body><p><a foo=bar>test</a></p></body></html>`,
}

func TestCompliance_BodyTextMatchesReferenceParser(t *testing.T) {
	for _, doc := range complianceDocs {
		doc := doc
		t.Run(doc, func(t *testing.T) {
			ours := Parse(doc)
			ourBody := bodyOf(ours.Document())

			ref, err := goquery.NewDocumentFromReader(strings.NewReader(doc))
			if err != nil {
				t.Fatalf("reference parse failed: %v", err)
			}
			refText := strings.TrimSpace(ref.Find("body").Text())
			ourText := strings.TrimSpace(collectText(ourBody))

			if refText != ourText {
				t.Errorf("body text mismatch: reference %q, ours %q", refText, ourText)
			}
		})
	}
}

func TestCompliance_TagNamesMatchStdlibTokenizer(t *testing.T) {
	for _, doc := range complianceDocs {
		doc := doc
		t.Run(doc, func(t *testing.T) {
			ourTags := map[string]bool{}
			var walk func(n *Node)
			walk = func(n *Node) {
				if n == nil {
					return
				}
				if n.Kind == ElementNode {
					ourTags[n.Tag] = true
				}
				walk(n.FirstChild)
				walk(n.NextSibling)
			}
			walk(Parse(doc).Document())

			refTags := map[string]bool{}
			z := html.NewTokenizer(strings.NewReader(doc))
			for {
				tt := z.Next()
				if tt == html.ErrorToken {
					break
				}
				if tt == html.StartTagToken || tt == html.SelfClosingTagToken {
					name, _ := z.TagName()
					refTags[string(name)] = true
				}
			}

			for tag := range refTags {
				if !ourTags[tag] {
					t.Errorf("reference tokenizer saw tag %q that our parser did not produce", tag)
				}
			}
		})
	}
}

func bodyOf(doc *Node) *Node {
	var find func(n *Node) *Node
	find = func(n *Node) *Node {
		if n == nil {
			return nil
		}
		if n.Kind == ElementNode && n.Tag == "body" {
			return n
		}
		if found := find(n.FirstChild); found != nil {
			return found
		}
		return find(n.NextSibling)
	}
	return find(doc)
}

func collectText(n *Node) string {
	if n == nil {
		return ""
	}
	var sb strings.Builder
	if n.Kind == TextNode {
		sb.WriteString(n.Text)
	}
	sb.WriteString(collectText(n.FirstChild))
	sb.WriteString(collectText(n.NextSibling))
	return sb.String()
}
