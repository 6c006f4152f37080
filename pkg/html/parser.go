package html

// insertionMode is the state of the HTML tree-construction state machine.
type insertionMode int

const (
	modeInitial insertionMode = iota
	modeBeforeHtml
	modeBeforeHead
	modeInHead
	modeAfterHead
	modeInBody
	modeText
	modeAfterBody
	modeAfterAfterBody
)

// Parser drives the tree builder over a Tokenizer's token stream,
// maintaining the open-elements stack and the current insertion mode.
type Parser struct {
	tokenizer *Tokenizer
	window    *Window
	mode      insertionMode
	originalMode insertionMode
	stack     []*Node
}

// NewParser returns a Parser that will construct a tree from t's token stream.
func NewParser(t *Tokenizer) *Parser {
	return &Parser{
		tokenizer: t,
		window:    NewWindow(),
		mode:      modeInitial,
	}
}

// Parse tokenizes and parses html in one call.
func Parse(htmlSrc string) *Window {
	return NewParser(NewTokenizer(htmlSrc)).ConstructTree()
}

// ConstructTree runs the insertion-mode state machine to completion and
// returns the resulting Window. It never fails: malformed input produces
// whatever tree the state machine assembles.
func (p *Parser) ConstructTree() *Window {
	tok := p.tokenizer.NextToken()

	for {
		switch p.mode {
		case modeInitial:
			if tok.Kind == CharToken {
				tok = p.tokenizer.NextToken()
				continue
			}
			p.mode = modeBeforeHtml
			continue

		case modeBeforeHtml:
			switch tok.Kind {
			case CharToken:
				if isWhitespaceChar(tok.Char) {
					tok = p.tokenizer.NextToken()
					continue
				}
			case StartTagToken:
				if tok.Tag == "html" {
					p.insertElement("html", tok.Attributes)
					p.mode = modeBeforeHead
					tok = p.tokenizer.NextToken()
					continue
				}
			case EOFToken:
				return p.window
			}
			p.insertElement("html", nil)
			p.mode = modeBeforeHead
			continue

		case modeBeforeHead:
			switch tok.Kind {
			case CharToken:
				if isWhitespaceChar(tok.Char) {
					tok = p.tokenizer.NextToken()
					continue
				}
			case StartTagToken:
				if tok.Tag == "head" {
					p.insertElement("head", tok.Attributes)
					p.mode = modeInHead
					tok = p.tokenizer.NextToken()
					continue
				}
			case EOFToken:
				return p.window
			}
			p.insertElement("head", nil)
			p.mode = modeInHead
			continue

		case modeInHead:
			switch tok.Kind {
			case CharToken:
				if isWhitespaceChar(tok.Char) {
					tok = p.tokenizer.NextToken()
					continue
				}
			case StartTagToken:
				if tok.Tag == "style" || tok.Tag == "script" {
					p.insertElement(tok.Tag, tok.Attributes)
					p.tokenizer.EnterRawText(tok.Tag)
					p.originalMode = p.mode
					p.mode = modeText
					tok = p.tokenizer.NextToken()
					continue
				}
				if tok.Tag == "body" {
					p.popUntil(Head)
					p.mode = modeAfterHead
					continue
				}
				if ElementKindFromTag(tok.Tag) != Other {
					// Any other recognized element closes the head implicitly.
					p.popUntil(Head)
					p.mode = modeAfterHead
					continue
				}
			case EndTagToken:
				if tok.Tag == "head" {
					p.mode = modeAfterHead
					tok = p.tokenizer.NextToken()
					p.popUntil(Head)
					continue
				}
			case EOFToken:
				return p.window
			}
			tok = p.tokenizer.NextToken()
			continue

		case modeAfterHead:
			switch tok.Kind {
			case CharToken:
				if isWhitespaceChar(tok.Char) {
					tok = p.tokenizer.NextToken()
					continue
				}
			case StartTagToken:
				if tok.Tag == "body" {
					p.insertElement("body", tok.Attributes)
					p.mode = modeInBody
					tok = p.tokenizer.NextToken()
					continue
				}
			case EOFToken:
				return p.window
			}
			p.insertElement("body", nil)
			p.mode = modeInBody
			continue

		case modeInBody:
			switch tok.Kind {
			case StartTagToken:
				switch tok.Tag {
				case "p", "h1", "h2", "a":
					p.insertElement(tok.Tag, tok.Attributes)
				}
				tok = p.tokenizer.NextToken()
				continue
			case EndTagToken:
				switch tok.Tag {
				case "body":
					p.mode = modeAfterBody
					tok = p.tokenizer.NextToken()
					if !p.containsInStack(Body) {
						continue
					}
					p.popUntil(Body)
					continue
				case "html":
					if p.popCurrentNode(Body) {
						p.mode = modeAfterBody
						p.popCurrentNode(Html)
					} else {
						tok = p.tokenizer.NextToken()
					}
					continue
				case "p", "h1", "h2", "a":
					kind := ElementKindFromTag(tok.Tag)
					tok = p.tokenizer.NextToken()
					p.popUntil(kind)
					continue
				}
				tok = p.tokenizer.NextToken()
				continue
			case CharToken:
				p.insertChar(tok.Char)
				tok = p.tokenizer.NextToken()
				continue
			case EOFToken:
				return p.window
			}

		case modeText:
			switch tok.Kind {
			case CharToken:
				p.insertChar(tok.Char)
				tok = p.tokenizer.NextToken()
				continue
			case EndTagToken:
				switch tok.Tag {
				case "style":
					p.popUntil(Style)
					p.mode = p.originalMode
					tok = p.tokenizer.NextToken()
					continue
				case "script":
					p.popUntil(Script)
					p.mode = p.originalMode
					tok = p.tokenizer.NextToken()
					continue
				}
			case EOFToken:
				return p.window
			}
			p.mode = p.originalMode
			continue

		case modeAfterBody:
			switch tok.Kind {
			case CharToken:
				tok = p.tokenizer.NextToken()
				continue
			case EndTagToken:
				if tok.Tag == "html" {
					p.mode = modeAfterAfterBody
					tok = p.tokenizer.NextToken()
					continue
				}
			case EOFToken:
				return p.window
			}
			p.mode = modeInBody
			continue

		case modeAfterAfterBody:
			switch tok.Kind {
			case CharToken:
				tok = p.tokenizer.NextToken()
				continue
			case EOFToken:
				return p.window
			}
			p.mode = modeInBody
			continue
		}
	}
}

func (p *Parser) currentNode() *Node {
	if len(p.stack) == 0 {
		return p.window.Document()
	}
	return p.stack[len(p.stack)-1]
}

// insertElement creates a new element, appends it as the last child of
// the current top-of-stack node, and pushes it onto the open-elements
// stack so it becomes the new current node.
func (p *Parser) insertElement(tag string, attrs []Attribute) {
	node := NewElementNode(tag, attrs)
	p.currentNode().AppendChild(node)
	p.stack = append(p.stack, node)
}

// insertChar appends a character into the current open element's child
// text node, extending it if the last child is already a Text node,
// otherwise creating a fresh one. Whitespace outside an already-open text
// node is dropped.
func (p *Parser) insertChar(c rune) {
	current := p.currentNode()
	if current.LastChild != nil && current.LastChild.Kind == TextNode {
		current.LastChild.Text += string(c)
		return
	}
	if isWhitespaceChar(c) {
		return
	}
	current.AppendChild(NewTextNode(string(c)))
}

// popCurrentNode pops the stack if its top matches kind, reporting whether it did.
func (p *Parser) popCurrentNode(kind ElementKind) bool {
	if len(p.stack) == 0 {
		return false
	}
	top := p.stack[len(p.stack)-1]
	if top.Kind == ElementNode && top.Element == kind {
		p.stack = p.stack[:len(p.stack)-1]
		return true
	}
	return false
}

// popUntil pops the stack down to and including the first entry matching
// kind. If kind is not on the stack, nothing is popped.
func (p *Parser) popUntil(kind ElementKind) {
	if !p.containsInStack(kind) {
		return
	}
	for len(p.stack) > 0 {
		top := p.stack[len(p.stack)-1]
		p.stack = p.stack[:len(p.stack)-1]
		if top.Kind == ElementNode && top.Element == kind {
			return
		}
	}
}

func (p *Parser) containsInStack(kind ElementKind) bool {
	for _, n := range p.stack {
		if n.Kind == ElementNode && n.Element == kind {
			return true
		}
	}
	return false
}

func isWhitespaceChar(c rune) bool {
	return c == ' ' || c == '\n'
}
