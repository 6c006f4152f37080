package render

import (
	"strings"
	"testing"

	"github.com/iansmith/rendcore/pkg/layout"
	"github.com/iansmith/rendcore/pkg/rendererr"
)

func TestRender_InvalidUTF8(t *testing.T) {
	_, _, _, _, err := Render([]byte{0xff, 0xfe, 0xfd}, layout.DefaultConfig())
	if err == nil {
		t.Fatal("expected an error for invalid UTF-8 input")
	}
	var rerr *rendererr.Error
	if ok := asRendererErr(err, &rerr); !ok || rerr.Kind != rendererr.UnexpectedInput {
		t.Errorf("expected UnexpectedInput, got %v", err)
	}
}

func asRendererErr(err error, target **rendererr.Error) bool {
	e, ok := err.(*rendererr.Error)
	if !ok {
		return false
	}
	*target = e
	return true
}

func TestRender_EndToEnd(t *testing.T) {
	src := `<html><head><style>p{color:red;}</style></head><body><p>hi</p></body></html>`
	window, sheet, root, items, err := Render([]byte(src), layout.DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if window.Document() == nil {
		t.Fatal("expected a non-nil document")
	}
	if len(sheet.Rules) != 1 {
		t.Fatalf("expected 1 CSS rule, got %d", len(sheet.Rules))
	}
	if root == nil {
		t.Fatal("expected a non-nil layout root")
	}
	if len(items) == 0 {
		t.Fatal("expected a non-empty display list")
	}
}

func TestRender_EmptyDocumentHasNoLayoutRoot(t *testing.T) {
	_, _, root, items, err := Render([]byte(""), layout.DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if root != nil {
		t.Errorf("expected nil layout root for empty input, got %+v", root)
	}
	if len(items) != 0 {
		t.Errorf("expected no display items for empty input, got %+v", items)
	}
}

func TestDebugDump_IncludesElementTags(t *testing.T) {
	window, _, _, _, err := Render([]byte("<html><body><p>hi</p></body></html>"), layout.DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	dump := DebugDump(window.Document())
	if dump == "" {
		t.Fatal("expected a non-empty debug dump")
	}
	for _, tag := range []string{"Element(html)", "Element(body)", "Element(p)"} {
		if !strings.Contains(dump, tag) {
			t.Errorf("expected dump to contain %s, got %q", tag, dump)
		}
	}
}
