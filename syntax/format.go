package syntax

import (
	"strconv"
	"strings"
)

// metaChars are escaped by Format when they appear as a literal, so
// that re-lexing the formatted text reproduces the same leaf.
const metaChars = `.?+*|()[]{}\-`

func escapeLiteral(buf *strings.Builder, c rune) {
	if strings.ContainsRune(metaChars, c) {
		buf.WriteByte('\\')
	}
	buf.WriteRune(c)
}

// Format renders an AST back into regex source text. It is the
// right inverse of Parse for the canonical (non-ambiguous) subset of
// patterns this design describes: Format(Parse(r)) need not equal r in
// general (e.g. "(?:a)" and a bare "a" parse differently but a
// non-capturing group around a single literal has no canonical
// shorter form), but for every pattern Parse accepts without needing
// to choose between equally valid surface spellings, the round trip
// holds.
func Format(n *Node) string {
	var buf strings.Builder
	formatNode(&buf, n, false)
	return buf.String()
}

// formatNode writes n's source text. needsGroup is true inside a
// multi-child sequence or group, and under a quantifier, where an
// Alternate must be wrapped in a non-capturing group to avoid widening
// its scope; other node kinds ignore it.
func formatNode(buf *strings.Builder, n *Node, needsGroup bool) {
	switch n.Kind {
	case NkLiteral:
		escapeLiteral(buf, n.Ch)
	case NkAnyChar:
		buf.WriteByte('.')
	case NkProperty:
		formatProperty(buf, n.Property)
	case NkCharRange:
		escapeLiteral(buf, n.Lo)
		buf.WriteByte('-')
		escapeLiteral(buf, n.Hi)
	case NkSequence:
		multi := len(n.Children) > 1
		for _, c := range n.Children {
			formatNode(buf, c, multi && c.Kind == NkAlternate)
		}
	case NkGroup:
		formatGroupOpen(buf, n.Group)
		multi := len(n.Children) > 1
		for _, c := range n.Children {
			formatNode(buf, c, multi && c.Kind == NkAlternate)
		}
		buf.WriteByte(')')
	case NkAlternate:
		if needsGroup {
			buf.WriteString("(?:")
		}
		for i, c := range n.Children {
			if i > 0 {
				buf.WriteByte('|')
			}
			formatNode(buf, c, false)
		}
		if needsGroup {
			buf.WriteByte(')')
		}
	case NkZeroOne, NkOneMore, NkZeroMore:
		formatNode(buf, n.Children[0], needsQuantifierGroup(n.Children[0]))
		buf.WriteByte(map[NodeKind]byte{NkZeroOne: '?', NkOneMore: '+', NkZeroMore: '*'}[n.Kind])
	case NkRepeat:
		formatNode(buf, n.Children[0], needsQuantifierGroup(n.Children[0]))
		buf.WriteByte('{')
		buf.WriteString(strconv.Itoa(n.RepeatN))
		buf.WriteByte('}')
	case NkCharClass:
		buf.WriteByte('[')
		if n.Negated {
			buf.WriteByte('^')
		}
		for _, e := range n.Children {
			formatClassElem(buf, e)
		}
		buf.WriteByte(']')
	}
}

func needsQuantifierGroup(n *Node) bool {
	switch n.Kind {
	case NkLiteral, NkAnyChar, NkProperty, NkCharClass:
		return false
	default:
		return true
	}
}

func formatClassElem(buf *strings.Builder, n *Node) {
	switch n.Kind {
	case NkLiteral:
		if n.Ch == ']' || n.Ch == '\\' || n.Ch == '-' {
			buf.WriteByte('\\')
		}
		buf.WriteRune(n.Ch)
	case NkAnyChar:
		buf.WriteByte('.')
	case NkProperty:
		formatProperty(buf, n.Property)
	case NkCharRange:
		buf.WriteRune(n.Lo)
		buf.WriteByte('-')
		buf.WriteRune(n.Hi)
	}
}

func formatProperty(buf *strings.Builder, p PropertyRef) {
	if p.Negated {
		buf.WriteString(`\P{`)
	} else {
		buf.WriteString(`\p{`)
	}
	buf.WriteString(p.Name)
	buf.WriteByte('}')
}

func formatGroupOpen(buf *strings.Builder, g GroupName) {
	switch g.Kind {
	case GroupNoCapture:
		buf.WriteString("(?:")
	case GroupLabeled:
		buf.WriteString("(?<")
		buf.WriteString(g.Label)
		buf.WriteByte('>')
	default:
		buf.WriteByte('(')
	}
}
