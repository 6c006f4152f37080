package css

import "testing"

func collectTokens(src string) []Token {
	tz := NewTokenizer(src)
	var toks []Token
	for {
		tok, ok := tz.Next()
		if !ok {
			return toks
		}
		toks = append(toks, tok)
	}
}

func TestTokenizer_Punctuation(t *testing.T) {
	toks := collectTokens("{}:;()")
	want := []TokenKind{OpenCurlyToken, CloseCurlyToken, ColonToken, SemicolonToken, OpenParenToken, CloseParenToken}
	if len(toks) != len(want) {
		t.Fatalf("expected %d tokens, got %d: %+v", len(want), len(toks), toks)
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d: expected kind %v, got %v", i, k, toks[i].Kind)
		}
	}
}

func TestTokenizer_IdentAndHashAndClass(t *testing.T) {
	toks := collectTokens("p #id .cls")
	if len(toks) != 4 {
		t.Fatalf("expected 4 tokens, got %d: %+v", len(toks), toks)
	}
	if toks[0].Kind != IdentToken || toks[0].Ident != "p" {
		t.Errorf("expected Ident 'p', got %+v", toks[0])
	}
	if toks[1].Kind != HashToken || toks[1].Hash != "#id" {
		t.Errorf("expected Hash '#id', got %+v", toks[1])
	}
	if toks[2].Kind != DelimToken || toks[2].Delim != '.' {
		t.Errorf("expected Delim '.', got %+v", toks[2])
	}
	if toks[3].Kind != IdentToken || toks[3].Ident != "cls" {
		t.Errorf("expected Ident 'cls', got %+v", toks[3])
	}
}

func TestTokenizer_Number(t *testing.T) {
	toks := collectTokens("40 3.5 -2")
	want := []float64{40, 3.5, -2}
	if len(toks) != len(want) {
		t.Fatalf("expected %d tokens, got %d: %+v", len(want), len(toks), toks)
	}
	for i, w := range want {
		if toks[i].Kind != NumberToken || toks[i].Number != w {
			t.Errorf("token %d: expected number %v, got %+v", i, w, toks[i])
		}
	}
}

func TestTokenizer_String(t *testing.T) {
	toks := collectTokens(`"Hey"`)
	if len(toks) != 1 || toks[0].Kind != StringTokenKind || toks[0].Ident != "Hey" {
		t.Fatalf("expected string 'Hey', got %+v", toks)
	}
}

func TestTokenizer_AtKeyword(t *testing.T) {
	toks := collectTokens("@media")
	if len(toks) != 1 || toks[0].Kind != AtKeywordToken || toks[0].Ident != "media" {
		t.Fatalf("expected at-keyword 'media', got %+v", toks)
	}
}

func TestTokenizer_SkipsComments(t *testing.T) {
	toks := collectTokens("p /* comment */ { color: red; }")
	if len(toks) == 0 {
		t.Fatal("expected tokens after skipping comment")
	}
	if toks[0].Kind != IdentToken || toks[0].Ident != "p" {
		t.Errorf("expected first token Ident 'p', got %+v", toks[0])
	}
}
