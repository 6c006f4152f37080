package css

// SelectorKind distinguishes the handful of selector shapes this cascade understands.
type SelectorKind int

const (
	TypeSelector SelectorKind = iota
	ClassSelector
	IdSelector
	UnknownSelector
)

type Selector struct {
	Kind  SelectorKind
	Value string // tag name, class name, or id — empty for UnknownSelector
}

// ComponentValue is a reused CSS token carried as a declaration's value.
type ComponentValue = Token

type Declaration struct {
	Property string
	Value    ComponentValue
}

type QualifiedRule struct {
	Selector     Selector
	Declarations []Declaration
}

// StyleSheet is an ordered list of qualified rules, in source order.
type StyleSheet struct {
	Rules []QualifiedRule
}

// Parser consumes a Tokenizer's stream into a StyleSheet.
type Parser struct {
	t    *Tokenizer
	peeked *Token
	peekedOk bool
}

// NewParser returns a Parser reading tokens from t.
func NewParser(t *Tokenizer) *Parser {
	return &Parser{t: t}
}

// ParseStylesheet parses src into a StyleSheet in one call.
func ParseStylesheet(src string) StyleSheet {
	return NewParser(NewTokenizer(src)).Parse()
}

func (p *Parser) peek() (Token, bool) {
	if !p.peekedOk {
		tok, ok := p.t.Next()
		if !ok {
			p.peeked = nil
			p.peekedOk = true
			return Token{}, false
		}
		p.peeked = &tok
		p.peekedOk = true
	}
	if p.peeked == nil {
		return Token{}, false
	}
	return *p.peeked, true
}

func (p *Parser) next() (Token, bool) {
	tok, ok := p.peek()
	p.peeked = nil
	p.peekedOk = false
	return tok, ok
}

// Parse consumes the whole token stream into a StyleSheet.
func (p *Parser) Parse() StyleSheet {
	return StyleSheet{Rules: p.consumeListOfRules()}
}

func (p *Parser) consumeListOfRules() []QualifiedRule {
	var rules []QualifiedRule
	for {
		tok, ok := p.peek()
		if !ok {
			return rules
		}
		if tok.Kind == AtKeywordToken {
			// At-rules are tolerated and discarded.
			p.consumeQualifiedRule()
			continue
		}
		rule, ok := p.consumeQualifiedRule()
		if !ok {
			return rules
		}
		rules = append(rules, rule)
	}
}

func (p *Parser) consumeQualifiedRule() (QualifiedRule, bool) {
	rule := QualifiedRule{Selector: Selector{Kind: TypeSelector}}
	for {
		tok, ok := p.peek()
		if !ok {
			return QualifiedRule{}, false
		}
		if tok.Kind == OpenCurlyToken {
			p.next()
			rule.Declarations = p.consumeListOfDeclarations()
			return rule, true
		}
		rule.Selector = p.consumeSelector()
	}
}

func (p *Parser) consumeSelector() Selector {
	tok, ok := p.next()
	if !ok {
		return Selector{Kind: UnknownSelector}
	}
	switch tok.Kind {
	case HashToken:
		return Selector{Kind: IdSelector, Value: trimHash(tok.Hash)}
	case DelimToken:
		if tok.Delim == '.' {
			return Selector{Kind: ClassSelector, Value: p.consumeIdent()}
		}
		return Selector{Kind: UnknownSelector}
	case IdentToken:
		if next, ok := p.peek(); ok && next.Kind == ColonToken {
			for {
				t, ok := p.peek()
				if !ok || t.Kind == OpenCurlyToken {
					break
				}
				p.next()
			}
		}
		return Selector{Kind: TypeSelector, Value: tok.Ident}
	case AtKeywordToken:
		for {
			t, ok := p.peek()
			if !ok || t.Kind == OpenCurlyToken {
				break
			}
			p.next()
		}
		return Selector{Kind: UnknownSelector}
	default:
		return Selector{Kind: UnknownSelector}
	}
}

func (p *Parser) consumeListOfDeclarations() []Declaration {
	var decls []Declaration
	for {
		tok, ok := p.peek()
		if !ok {
			return decls
		}
		switch tok.Kind {
		case CloseCurlyToken:
			p.next()
			return decls
		case SemicolonToken:
			p.next()
		case IdentToken:
			if decl, ok := p.consumeDeclaration(); ok {
				decls = append(decls, decl)
			}
		default:
			p.next()
		}
	}
}

func (p *Parser) consumeDeclaration() (Declaration, bool) {
	if _, ok := p.peek(); !ok {
		return Declaration{}, false
	}
	property := p.consumeIdent()

	tok, ok := p.next()
	if !ok || tok.Kind != ColonToken {
		return Declaration{}, false
	}

	value, ok := p.next()
	if !ok {
		return Declaration{}, false
	}
	return Declaration{Property: property, Value: value}, true
}

func (p *Parser) consumeIdent() string {
	tok, ok := p.next()
	if !ok || tok.Kind != IdentToken {
		return ""
	}
	return tok.Ident
}

func trimHash(hash string) string {
	if len(hash) > 0 && hash[0] == '#' {
		return hash[1:]
	}
	return hash
}
