package html

import "strings"

// Attribute is built incrementally by the tokenizer, one character at a
// time. addingToValue distinguishes whether the current character belongs
// to the name or the value, since the tokenizer discovers the boundary
// (the '=' sign) one rune ahead of where the attribute struct lives.
type Attribute struct {
	name           strings.Builder
	value          strings.Builder
	addingToValue  bool
}

// NewAttribute returns an empty attribute, initially accumulating into its name.
func NewAttribute() *Attribute {
	return &Attribute{}
}

// AddChar appends c to the name or the value depending on addingToValue.
func (a *Attribute) AddChar(c rune, addingToValue bool) {
	a.addingToValue = addingToValue
	if addingToValue {
		a.value.WriteRune(c)
	} else {
		a.name.WriteRune(c)
	}
}

func (a *Attribute) Name() string {
	return strings.ToLower(a.name.String())
}

func (a *Attribute) Value() string {
	return a.value.String()
}
