package html

import "strings"

// TokenKind identifies which of the four token shapes a Token carries.
type TokenKind int

const (
	StartTagToken TokenKind = iota
	EndTagToken
	CharToken
	EOFToken
)

type Token struct {
	Kind        TokenKind
	Tag         string
	SelfClosing bool
	Attributes  []Attribute
	Char        rune
}

// tokenizerState enumerates the character-driven states of spec.md §4.1.
type tokenizerState int

const (
	stateData tokenizerState = iota
	stateTagOpen
	stateEndTagOpen
	stateTagName
	stateBeforeAttributeName
	stateAttributeName
	stateBeforeAttributeValue
	stateAttributeValue
	stateAfterAttributeValue
	stateSelfClosingStartTag
	stateScriptData
	stateScriptDataLessThanSign
	stateScriptDataEndTagOpen
	stateScriptDataEndTagName
)

// Tokenizer is a lazy, char-driven state machine over the input runes.
// Callers pull one token at a time via NextToken. Malformed input never
// produces an error: the state machine silently resyncs to Data.
type Tokenizer struct {
	input []rune
	pos   int
	state tokenizerState

	tagBuf     strings.Builder
	isEndTag   bool
	attrs      []Attribute
	curAttr    *Attribute
	addingVal  bool
	quote      rune

	rawTextTag   string // non-empty while scanning <script>/<style> content
	tempBuf      strings.Builder
	tempConsumed []rune // raw chars tentatively consumed while looking for a close tag
	pending      []rune // chars to replay as CharTokens after a failed close-tag match
}

// NewTokenizer returns a Tokenizer positioned at the start of input.
func NewTokenizer(input string) *Tokenizer {
	return &Tokenizer{input: []rune(input), state: stateData}
}

// EnterRawText switches the tokenizer into raw-text scanning for tagName
// (script or style): characters are reported one at a time via CharToken
// exactly as in Data state, but '<' is not treated as starting a new tag
// unless it begins a matching "</tagName" close sequence. The tree
// builder calls this immediately after consuming the StartTag for
// <script> or <style>, since the tokenizer alone cannot tell tag content
// from tag markup.
func (t *Tokenizer) EnterRawText(tagName string) {
	t.rawTextTag = tagName
	t.state = stateScriptData
}

func (t *Tokenizer) eof() bool {
	return t.pos >= len(t.input)
}

func (t *Tokenizer) peek() rune {
	if t.eof() {
		return 0
	}
	return t.input[t.pos]
}

func (t *Tokenizer) peekAt(offset int) (rune, bool) {
	i := t.pos + offset
	if i < 0 || i >= len(t.input) {
		return 0, false
	}
	return t.input[i], true
}

func (t *Tokenizer) advance() rune {
	c := t.input[t.pos]
	t.pos++
	return c
}

// NextToken returns the next token in the stream, ending with a terminal
// EOFToken. Once the end is reached, every further call returns
// EOFToken again.
func (t *Tokenizer) NextToken() Token {
	for {
		if len(t.pending) > 0 {
			c := t.pending[0]
			t.pending = t.pending[1:]
			return Token{Kind: CharToken, Char: c}
		}
		switch t.state {
		case stateData:
			if t.eof() {
				t.state = -1
				return Token{Kind: EOFToken}
			}
			if t.peek() == '<' {
				t.advance()
				t.state = stateTagOpen
				continue
			}
			return Token{Kind: CharToken, Char: t.advance()}

		case stateTagOpen:
			if t.eof() {
				return Token{Kind: EOFToken}
			}
			c := t.peek()
			switch {
			case c == '/':
				t.advance()
				t.state = stateEndTagOpen
			case isAlpha(c):
				t.tagBuf.Reset()
				t.attrs = nil
				t.isEndTag = false
				t.state = stateTagName
			default:
				// Bogus markup: resync to Data, drop the '<'.
				t.state = stateData
			}
			continue

		case stateEndTagOpen:
			if t.eof() {
				return Token{Kind: EOFToken}
			}
			if isAlpha(t.peek()) {
				t.tagBuf.Reset()
				t.attrs = nil
				t.isEndTag = true
				t.state = stateTagName
				continue
			}
			t.state = stateData
			continue

		case stateTagName:
			if t.eof() {
				t.state = stateData
				return Token{Kind: EOFToken}
			}
			c := t.peek()
			switch {
			case isSpace(c):
				t.advance()
				if t.isEndTag {
					continue
				}
				t.state = stateBeforeAttributeName
			case c == '/':
				t.advance()
				t.state = stateSelfClosingStartTag
			case c == '>':
				t.advance()
				return t.emitTag()
			default:
				t.tagBuf.WriteRune(toLowerRune(t.advance()))
			}
			continue

		case stateBeforeAttributeName:
			if t.eof() {
				return Token{Kind: EOFToken}
			}
			c := t.peek()
			switch {
			case isSpace(c):
				t.advance()
			case c == '/':
				t.advance()
				t.state = stateSelfClosingStartTag
			case c == '>':
				t.advance()
				return t.emitTag()
			default:
				t.curAttr = NewAttribute()
				t.addingVal = false
				t.state = stateAttributeName
			}
			continue

		case stateAttributeName:
			if t.eof() {
				t.flushAttr()
				return Token{Kind: EOFToken}
			}
			c := t.peek()
			switch {
			case isSpace(c):
				t.advance()
				t.flushAttr()
				t.state = stateBeforeAttributeName
			case c == '=':
				t.advance()
				t.state = stateBeforeAttributeValue
			case c == '/':
				t.advance()
				t.flushAttr()
				t.state = stateSelfClosingStartTag
			case c == '>':
				t.advance()
				t.flushAttr()
				return t.emitTag()
			default:
				t.curAttr.AddChar(toLowerRune(t.advance()), false)
			}
			continue

		case stateBeforeAttributeValue:
			if t.eof() {
				t.flushAttr()
				return Token{Kind: EOFToken}
			}
			c := t.peek()
			switch {
			case isSpace(c):
				t.advance()
			case c == '"' || c == '\'':
				t.quote = t.advance()
				t.addingVal = true
				t.state = stateAttributeValue
			case c == '>':
				t.advance()
				t.flushAttr()
				return t.emitTag()
			default:
				t.quote = 0
				t.addingVal = true
				t.state = stateAttributeValue
			}
			continue

		case stateAttributeValue:
			if t.eof() {
				t.flushAttr()
				return Token{Kind: EOFToken}
			}
			c := t.peek()
			if t.quote != 0 {
				if c == t.quote {
					t.advance()
					t.flushAttr()
					t.state = stateAfterAttributeValue
					continue
				}
				t.curAttr.AddChar(t.advance(), true)
				continue
			}
			// Unquoted: stops at whitespace or '>'.
			if isSpace(c) {
				t.advance()
				t.flushAttr()
				t.state = stateBeforeAttributeName
				continue
			}
			if c == '>' {
				t.advance()
				t.flushAttr()
				return t.emitTag()
			}
			t.curAttr.AddChar(t.advance(), true)
			continue

		case stateAfterAttributeValue:
			if t.eof() {
				return Token{Kind: EOFToken}
			}
			c := t.peek()
			switch {
			case isSpace(c):
				t.advance()
				t.state = stateBeforeAttributeName
			case c == '/':
				t.advance()
				t.state = stateSelfClosingStartTag
			case c == '>':
				t.advance()
				return t.emitTag()
			default:
				t.state = stateBeforeAttributeName
			}
			continue

		case stateSelfClosingStartTag:
			if t.eof() {
				return Token{Kind: EOFToken}
			}
			if t.peek() == '>' {
				t.advance()
				tok := t.emitTag()
				tok.SelfClosing = true
				return tok
			}
			t.state = stateBeforeAttributeName
			continue

		case stateScriptData:
			if t.eof() {
				t.state = stateData
				return Token{Kind: EOFToken}
			}
			if t.peek() == '<' {
				if next, ok := t.peekAt(1); ok && next == '/' {
					t.state = stateScriptDataLessThanSign
					continue
				}
			}
			return Token{Kind: CharToken, Char: t.advance()}

		case stateScriptDataLessThanSign:
			// Consumed "<", looking at "/".
			t.tempConsumed = t.tempConsumed[:0]
			t.tempConsumed = append(t.tempConsumed, t.advance()) // '<'
			t.state = stateScriptDataEndTagOpen
			continue

		case stateScriptDataEndTagOpen:
			t.tempConsumed = append(t.tempConsumed, t.advance()) // '/'
			t.tempBuf.Reset()
			t.state = stateScriptDataEndTagName
			continue

		case stateScriptDataEndTagName:
			if t.eof() {
				t.pending = append(t.pending, t.tempConsumed...)
				t.state = stateScriptData
				continue
			}
			c := t.peek()
			if isAlpha(c) {
				t.tempConsumed = append(t.tempConsumed, c)
				t.tempBuf.WriteRune(toLowerRune(t.advance()))
				continue
			}
			if strings.EqualFold(t.tempBuf.String(), t.rawTextTag) && t.tempBuf.Len() > 0 &&
				(isSpace(c) || c == '>' || c == '/') {
				// Genuine close tag: consume to '>' and emit EndTag.
				for !t.eof() && t.peek() != '>' {
					t.advance()
				}
				if !t.eof() {
					t.advance()
				}
				tag := t.rawTextTag
				t.rawTextTag = ""
				t.state = stateData
				return Token{Kind: EndTagToken, Tag: tag}
			}
			// Not a real close tag: replay what was tentatively consumed as ordinary content.
			t.pending = append(t.pending, t.tempConsumed...)
			t.state = stateScriptData
			continue

		default:
			return Token{Kind: EOFToken}
		}
	}
}

func (t *Tokenizer) flushAttr() {
	if t.curAttr == nil {
		return
	}
	if t.curAttr.Name() != "" {
		t.attrs = append(t.attrs, *t.curAttr)
	}
	t.curAttr = nil
}

func (t *Tokenizer) emitTag() Token {
	tag := t.tagBuf.String()
	if t.isEndTag {
		t.state = stateData
		return Token{Kind: EndTagToken, Tag: tag}
	}
	t.state = stateData
	return Token{Kind: StartTagToken, Tag: tag, Attributes: t.attrs}
}

func isAlpha(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isSpace(c rune) bool {
	return c == ' ' || c == '\n' || c == '\t' || c == '\r' || c == '\f'
}

func toLowerRune(c rune) rune {
	if c >= 'A' && c <= 'Z' {
		return c - 'A' + 'a'
	}
	return c
}
