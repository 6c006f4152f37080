package layout

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/iansmith/rendcore/pkg/css"
	"github.com/iansmith/rendcore/pkg/html"
	"github.com/iansmith/rendcore/pkg/rendererr"
)

// DisplayKind is the resolved value of the CSS `display` property.
type DisplayKind int

const (
	DisplayBlock DisplayKind = iota
	DisplayInline
	DisplayNone
)

func (d DisplayKind) String() string {
	switch d {
	case DisplayBlock:
		return "block"
	case DisplayInline:
		return "inline"
	default:
		return "none"
	}
}

// FontSize is the resolved value of the CSS `font-size` property.
type FontSize int

const (
	FontMedium FontSize = iota
	FontXLarge
	FontXXLarge
)

func (f FontSize) String() string {
	switch f {
	case FontXLarge:
		return "x-large"
	case FontXXLarge:
		return "xx-large"
	default:
		return "medium"
	}
}

// TextDecoration is the resolved value of the CSS `text-decoration` property.
type TextDecoration int

const (
	TextDecorationNone TextDecoration = iota
	TextDecorationUnderline
)

func (d TextDecoration) String() string {
	if d == TextDecorationUnderline {
		return "underline"
	}
	return "none"
}

// Color is an RGB color, always normalized to its #RRGGBB code.
type Color struct {
	Code string // "#RRGGBB"
}

var namedColors = map[string]string{
	"black": "#000000", "silver": "#C0C0C0", "gray": "#808080", "white": "#FFFFFF",
	"maroon": "#800000", "red": "#FF0000", "purple": "#800080", "fuchsia": "#FF00FF",
	"green": "#008000", "lime": "#00FF00", "olive": "#808000", "yellow": "#FFFF00",
	"navy": "#000080", "blue": "#0000FF", "teal": "#008080", "aqua": "#00FFFF",
	"orange": "#FFA500", "lightgray": "#D3D3D3",
}

// ColorFromName resolves a palette name to its Color, per spec.md §6.
func ColorFromName(name string) (Color, error) {
	code, ok := namedColors[name]
	if !ok {
		return Color{}, rendererr.New(rendererr.UnexpectedInput, fmt.Sprintf("color name %q is not supported", name))
	}
	return Color{Code: code}, nil
}

// ColorFromHex resolves a literal "#RRGGBB" code to a Color.
func ColorFromHex(code string) (Color, error) {
	if len(code) != 7 || code[0] != '#' {
		return Color{}, rendererr.New(rendererr.UnexpectedInput, fmt.Sprintf("color code %q is invalid", code))
	}
	for _, c := range code[1:] {
		if !isHexDigit(c) {
			return Color{}, rendererr.New(rendererr.UnexpectedInput, fmt.Sprintf("color code %q is invalid", code))
		}
	}
	return Color{Code: strings.ToUpper(code)}, nil
}

func isHexDigit(c rune) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func White() Color { return Color{Code: "#FFFFFF"} }
func Black() Color { return Color{Code: "#000000"} }

func (c Color) Equal(other Color) bool { return c.Code == other.Code }

// ComputedStyle is the fixed, fully-resolved style record attached to
// each layout object. Each field is nil/zero-value-unset until
// defaulting fills it; after Default returns, every field is set.
type ComputedStyle struct {
	backgroundColor *Color
	color           *Color
	display         *DisplayKind
	fontSize        *FontSize
	textDecoration  *TextDecoration
	width           *int
	height          *int
}

func (s *ComputedStyle) BackgroundColor() Color { return *s.backgroundColor }
func (s *ComputedStyle) Color() Color           { return *s.color }
func (s *ComputedStyle) Display() DisplayKind    { return *s.display }
func (s *ComputedStyle) FontSize() FontSize      { return *s.fontSize }
func (s *ComputedStyle) TextDecoration() TextDecoration { return *s.textDecoration }
func (s *ComputedStyle) Width() int              { return *s.width }
func (s *ComputedStyle) Height() int             { return *s.height }

func (s *ComputedStyle) SetWidth(w int)  { s.width = &w }
func (s *ComputedStyle) SetHeight(h int) { s.height = &h }

// MarshalJSON renders a ComputedStyle's resolved values. The struct's
// own fields are unexported (they're only ever set through the
// defaulting pass, never assembled by a caller), so encoding/json's
// default reflection would otherwise serialize every style as "{}";
// this gives callers like cmd/render's display-list dump something
// inspectable.
func (s *ComputedStyle) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		BackgroundColor string `json:"backgroundColor"`
		Color           string `json:"color"`
		Display         string `json:"display"`
		FontSize        string `json:"fontSize"`
		TextDecoration  string `json:"textDecoration"`
		Width           int    `json:"width"`
		Height          int    `json:"height"`
	}{
		BackgroundColor: s.BackgroundColor().Code,
		Color:           s.Color().Code,
		Display:         s.Display().String(),
		FontSize:        s.FontSize().String(),
		TextDecoration:  s.TextDecoration().String(),
		Width:           s.Width(),
		Height:          s.Height(),
	})
}

// resolveDeclarations applies a node's matching declarations in cascade
// order (later wins, no specificity) and produces a partially-filled
// ComputedStyle, ready for Default.
func resolveDeclarations(node *html.Node, sheet css.StyleSheet) *ComputedStyle {
	style := &ComputedStyle{}
	if node.Kind != html.ElementNode {
		return style
	}
	for _, rule := range sheet.Rules {
		if !matchesSelector(node, rule.Selector) {
			continue
		}
		for _, decl := range rule.Declarations {
			applyDeclaration(style, decl)
		}
	}
	return style
}

func applyDeclaration(style *ComputedStyle, decl css.Declaration) {
	value := componentValueString(decl.Value)
	switch decl.Property {
	case "background-color":
		if c, err := parseColorValue(value); err == nil {
			style.backgroundColor = &c
		} else {
			slog.Debug("unexpected input parsing background-color", "value", value, "err", err)
		}
	case "color":
		if c, err := parseColorValue(value); err == nil {
			style.color = &c
		} else {
			slog.Debug("unexpected input parsing color", "value", value, "err", err)
		}
	case "display":
		if d, err := parseDisplay(value); err == nil {
			style.display = &d
		} else {
			slog.Debug("unexpected input parsing display", "value", value, "err", err)
		}
	case "font-size":
		if f, err := parseFontSize(value); err == nil {
			style.fontSize = &f
		} else {
			slog.Debug("unexpected input parsing font-size", "value", value, "err", err)
		}
	case "text-decoration":
		if d, err := parseTextDecoration(value); err == nil {
			style.textDecoration = &d
		} else {
			slog.Debug("unexpected input parsing text-decoration", "value", value, "err", err)
		}
	case "width":
		if decl.Value.Kind == css.NumberToken {
			w := int(decl.Value.Number)
			style.width = &w
		}
	case "height":
		if decl.Value.Kind == css.NumberToken {
			h := int(decl.Value.Number)
			style.height = &h
		}
	}
	// Unknown properties are retained in the declaration list upstream but
	// silently ignored here, per spec.md §4.3.
}

func componentValueString(v css.ComponentValue) string {
	switch v.Kind {
	case css.IdentToken, css.StringTokenKind:
		return v.Ident
	case css.HashToken:
		return v.Hash
	default:
		return ""
	}
}

func parseColorValue(value string) (Color, error) {
	if strings.HasPrefix(value, "#") {
		return ColorFromHex(value)
	}
	return ColorFromName(value)
}

func parseDisplay(value string) (DisplayKind, error) {
	switch value {
	case "block":
		return DisplayBlock, nil
	case "inline":
		return DisplayInline, nil
	case "none":
		return DisplayNone, nil
	default:
		return 0, rendererr.New(rendererr.UnexpectedInput, fmt.Sprintf("display value %q is not supported", value))
	}
}

func parseFontSize(value string) (FontSize, error) {
	switch value {
	case "medium":
		return FontMedium, nil
	case "x-large", "xlarge":
		return FontXLarge, nil
	case "xx-large", "xxlarge":
		return FontXXLarge, nil
	default:
		return 0, rendererr.New(rendererr.UnexpectedInput, fmt.Sprintf("font-size value %q is not supported", value))
	}
}

func parseTextDecoration(value string) (TextDecoration, error) {
	switch value {
	case "none":
		return TextDecorationNone, nil
	case "underline":
		return TextDecorationUnderline, nil
	default:
		return 0, rendererr.New(rendererr.UnexpectedInput, fmt.Sprintf("text-decoration value %q is not supported", value))
	}
}

// defaultingDisplay returns the intrinsic display for a node absent any
// explicit CSS, per spec.md §4.4's defaulting pass.
func defaultingDisplay(node *html.Node) DisplayKind {
	switch node.Kind {
	case html.DocumentNode:
		return DisplayBlock
	case html.TextNode:
		return DisplayInline
	default:
		if node.Element.BlockByDefault() {
			return DisplayBlock
		}
		return DisplayInline
	}
}

func defaultingFontSize(node *html.Node) FontSize {
	if node.Kind != html.ElementNode {
		return FontMedium
	}
	switch node.Element {
	case html.H1:
		return FontXXLarge
	case html.H2:
		return FontXLarge
	default:
		return FontMedium
	}
}

func defaultingTextDecoration(node *html.Node) TextDecoration {
	if node.Kind == html.ElementNode && node.Element == html.A {
		return TextDecorationUnderline
	}
	return TextDecorationNone
}

// Default fills every unset field, inheriting selectively from parent
// (background-color/color/font-size/text-decoration only inherit when
// the parent's value differs from its own initial value) and otherwise
// falling back to the fixed initial values of spec.md §4.4.
func (s *ComputedStyle) Default(node *html.Node, parent *ComputedStyle) {
	if parent != nil {
		if s.backgroundColor == nil && !parent.BackgroundColor().Equal(White()) {
			c := parent.BackgroundColor()
			s.backgroundColor = &c
		}
		if s.color == nil && !parent.Color().Equal(Black()) {
			c := parent.Color()
			s.color = &c
		}
		if s.fontSize == nil && parent.FontSize() != FontMedium {
			f := parent.FontSize()
			s.fontSize = &f
		}
		if s.textDecoration == nil && parent.TextDecoration() != TextDecorationNone {
			d := parent.TextDecoration()
			s.textDecoration = &d
		}
	}

	if s.backgroundColor == nil {
		w := White()
		s.backgroundColor = &w
	}
	if s.color == nil {
		b := Black()
		s.color = &b
	}
	if s.display == nil {
		d := defaultingDisplay(node)
		s.display = &d
	}
	if s.fontSize == nil {
		f := defaultingFontSize(node)
		s.fontSize = &f
	}
	if s.textDecoration == nil {
		d := defaultingTextDecoration(node)
		s.textDecoration = &d
	}
	if s.height == nil {
		h := 0
		s.height = &h
	}
	if s.width == nil {
		w := 0
		s.width = &w
	}
}
