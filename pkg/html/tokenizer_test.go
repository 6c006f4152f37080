package html

import "testing"

func TestTokenizer_StartTag(t *testing.T) {
	tok := NewTokenizer("<p>")
	got := tok.NextToken()
	if got.Kind != StartTagToken || got.Tag != "p" {
		t.Fatalf("expected start tag 'p', got %+v", got)
	}
}

func TestTokenizer_EndTag(t *testing.T) {
	tok := NewTokenizer("</p>")
	got := tok.NextToken()
	if got.Kind != EndTagToken || got.Tag != "p" {
		t.Fatalf("expected end tag 'p', got %+v", got)
	}
}

func TestTokenizer_Attributes(t *testing.T) {
	tok := NewTokenizer(`<a foo="bar">`)
	got := tok.NextToken()
	if got.Kind != StartTagToken || got.Tag != "a" {
		t.Fatalf("expected start tag 'a', got %+v", got)
	}
	if len(got.Attributes) != 1 {
		t.Fatalf("expected 1 attribute, got %d", len(got.Attributes))
	}
	if got.Attributes[0].Name() != "foo" || got.Attributes[0].Value() != "bar" {
		t.Errorf("expected foo=bar, got %s=%s", got.Attributes[0].Name(), got.Attributes[0].Value())
	}
}

func TestTokenizer_UnquotedAttributeValueStopsAtWhitespace(t *testing.T) {
	tok := NewTokenizer(`<a foo=bar baz=qux>`)
	got := tok.NextToken()
	if len(got.Attributes) != 2 {
		t.Fatalf("expected 2 attributes, got %d: %+v", len(got.Attributes), got.Attributes)
	}
	if got.Attributes[0].Value() != "bar" {
		t.Errorf("expected first value 'bar', got %q", got.Attributes[0].Value())
	}
	if got.Attributes[1].Value() != "qux" {
		t.Errorf("expected second value 'qux', got %q", got.Attributes[1].Value())
	}
}

func TestTokenizer_CharacterByCharacter(t *testing.T) {
	tok := NewTokenizer("hi")
	first := tok.NextToken()
	second := tok.NextToken()
	if first.Kind != CharToken || first.Char != 'h' {
		t.Errorf("expected char 'h', got %+v", first)
	}
	if second.Kind != CharToken || second.Char != 'i' {
		t.Errorf("expected char 'i', got %+v", second)
	}
}

func TestTokenizer_EmptyInputYieldsEOF(t *testing.T) {
	tok := NewTokenizer("")
	got := tok.NextToken()
	if got.Kind != EOFToken {
		t.Fatalf("expected EOF, got %+v", got)
	}
}

func TestTokenizer_SelfClosing(t *testing.T) {
	tok := NewTokenizer("<br/>")
	got := tok.NextToken()
	if got.Kind != StartTagToken || !got.SelfClosing {
		t.Fatalf("expected self-closing start tag, got %+v", got)
	}
}

func TestTokenizer_MalformedInputResyncs(t *testing.T) {
	tok := NewTokenizer("<>hi")
	// "<>" is bogus markup; it should resync to Data without emitting a
	// tag: the '<' is dropped and the '>' comes through as a character.
	first := tok.NextToken()
	if first.Kind != CharToken || first.Char != '>' {
		t.Fatalf("expected resync to char '>', got %+v", first)
	}
}

func TestTokenizer_RawTextScansThroughStyleContent(t *testing.T) {
	tok := NewTokenizer("body{color:red}</style>")
	tok.EnterRawText("style")
	var chars []rune
	for {
		got := tok.NextToken()
		if got.Kind == EndTagToken {
			if got.Tag != "style" {
				t.Fatalf("expected close tag 'style', got %q", got.Tag)
			}
			break
		}
		if got.Kind != CharToken {
			t.Fatalf("unexpected token kind %v mid raw text", got.Kind)
		}
		chars = append(chars, got.Char)
	}
	if string(chars) != "body{color:red}" {
		t.Errorf("expected raw text 'body{color:red}', got %q", string(chars))
	}
}
