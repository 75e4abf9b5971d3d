package syntax

import (
	"strconv"
	"strings"

	"github.com/ashgrove/tnfa/uniset"
)

// Lexer converts a regex pattern, character by character, into a
// stream of Tokens. It does not use a regular expression to tokenize
// itself — a single pass over the rune slice, character-directed,
// exactly as the design specifies.
type Lexer struct {
	pattern string
	runes   []rune
	pos     int
	inClass bool
	groupNo int
}

// NewLexer prepares a Lexer over pattern.
func NewLexer(pattern string) *Lexer {
	return &Lexer{pattern: pattern, runes: []rune(pattern)}
}

// Lex runs the lexer to completion and returns the whole token
// stream, or the first lexical error encountered.
func Lex(pattern string) ([]Token, error) {
	l := NewLexer(pattern)
	var toks []Token
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		if tok == nil {
			return toks, nil
		}
		toks = append(toks, *tok)
	}
}

func (l *Lexer) eof() bool {
	return l.pos >= len(l.runes)
}

func (l *Lexer) peek() rune {
	return l.runes[l.pos]
}

func (l *Lexer) advance() rune {
	c := l.runes[l.pos]
	l.pos++
	return c
}

func (l *Lexer) errf(pos int, format string, args ...interface{}) error {
	return newParseError(l.pattern, pos, format, args...)
}

// next returns the next token, nil (with no error) at end of input.
func (l *Lexer) next() (*Token, error) {
	if l.eof() {
		return nil, nil
	}
	start := l.pos
	c := l.advance()

	// Inside a bracket expression only ']', '-' (as a range), '.' (kept
	// as AnyChar per the open question in this design) and escapes keep
	// their meta meaning; every other meta-character is literal.
	if l.inClass {
		switch c {
		case ']':
			l.inClass = false
			return &Token{Kind: TokEndClass, Pos: start}, nil
		case '-':
			return &Token{Kind: TokRangeTo, Pos: start}, nil
		case '.':
			return &Token{Kind: TokAnyChar, Pos: start}, nil
		case '\\':
			return l.lexEscape(start)
		default:
			return &Token{Kind: TokLiteral, Ch: c, Pos: start}, nil
		}
	}

	switch {
	case c == '.':
		return &Token{Kind: TokAnyChar, Pos: start}, nil
	case c == '?':
		return &Token{Kind: TokZeroOne, Pos: start}, nil
	case c == '+':
		return &Token{Kind: TokOneMore, Pos: start}, nil
	case c == '*':
		return &Token{Kind: TokZeroMore, Pos: start}, nil
	case c == '|':
		return &Token{Kind: TokAlternate, Pos: start}, nil
	case c == '(':
		return l.lexGroupOpen(start)
	case c == ')':
		return &Token{Kind: TokEndGroup, Pos: start}, nil
	case c == '[':
		return l.lexClassOpen(start)
	case c == ']':
		return nil, l.errf(start, "unmatched ']'")
	case c == '{':
		return l.lexRepeat(start)
	case c == '}':
		return nil, l.errf(start, "unmatched '}'")
	case c == '\\':
		return l.lexEscape(start)
	default:
		return &Token{Kind: TokLiteral, Ch: c, Pos: start}, nil
	}
}

func (l *Lexer) lexGroupOpen(start int) (*Token, error) {
	if l.eof() || l.peek() != '?' {
		l.groupNo++
		return &Token{Kind: TokBeginGroup, Group: GroupName{Kind: GroupOrdinal, Ordinal: l.groupNo}, Pos: start}, nil
	}
	// consume '?'
	l.advance()
	if l.eof() {
		return nil, l.errf(start, "unterminated group")
	}
	switch l.peek() {
	case ':':
		l.advance()
		return &Token{Kind: TokBeginGroup, Group: GroupName{Kind: GroupNoCapture}, Pos: start}, nil
	case '<':
		l.advance()
		name, err := l.lexGroupName(start)
		if err != nil {
			return nil, err
		}
		l.groupNo++
		return &Token{Kind: TokBeginGroup, Group: GroupName{Kind: GroupLabeled, Ordinal: l.groupNo, Label: name}, Pos: start}, nil
	default:
		return nil, l.errf(start, "unsupported group modifier '?%c'", l.peek())
	}
}

func (l *Lexer) lexGroupName(start int) (string, error) {
	var sb strings.Builder
	for {
		if l.eof() {
			return "", l.errf(start, "unterminated group name")
		}
		c := l.advance()
		if c == '>' {
			if sb.Len() == 0 {
				return "", l.errf(start, "empty group name")
			}
			return sb.String(), nil
		}
		if !isNameChar(c) {
			return "", l.errf(start, "illegal character %q in group name", c)
		}
		sb.WriteRune(c)
	}
}

func isNameChar(c rune) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func (l *Lexer) lexClassOpen(start int) (*Token, error) {
	if l.inClass {
		return nil, l.errf(start, "nested character classes are not allowed")
	}
	l.inClass = true
	if !l.eof() && l.peek() == '^' {
		l.advance()
		return &Token{Kind: TokNegClass, Pos: start}, nil
	}
	return &Token{Kind: TokBeginClass, Pos: start}, nil
}

func (l *Lexer) lexRepeat(start int) (*Token, error) {
	var sb strings.Builder
	for !l.eof() && l.peek() != '}' {
		sb.WriteRune(l.advance())
	}
	if l.eof() {
		return nil, l.errf(start, "unmatched '{'")
	}
	l.advance() // consume '}'
	n, err := strconv.Atoi(sb.String())
	if err != nil || n < 2 {
		return nil, l.errf(start, "illegal repeat count {%s}, must be an integer >= 2", sb.String())
	}
	return &Token{Kind: TokRepeat, N: n, Pos: start}, nil
}

var simpleEscapes = map[rune]rune{
	'a': '\a', 'b': '\b', 'e': 0x1B, 'f': '\f', 'n': '\n', 'r': '\r', 't': '\t', 'v': '\v',
}

func (l *Lexer) lexEscape(start int) (*Token, error) {
	if l.eof() {
		return nil, l.errf(start, "lone '\\' at end of pattern")
	}
	c := l.advance()

	if ch, ok := simpleEscapes[c]; ok {
		return &Token{Kind: TokLiteral, Ch: ch, Pos: start}, nil
	}

	switch c {
	case 'x':
		return l.lexHex(start, 2)
	case 'u':
		return l.lexHex(start, 4)
	case 'p', 'P':
		return l.lexProperty(start, c == 'P')
	case 'd':
		return &Token{Kind: TokProperty, Property: PropertyToken{Name: "Nd"}, Pos: start}, nil
	case 'D':
		return &Token{Kind: TokProperty, Property: PropertyToken{Negated: true, Name: "Nd"}, Pos: start}, nil
	case 'w':
		return &Token{Kind: TokProperty, Property: PropertyToken{Name: "Xwd"}, Pos: start}, nil
	case 'W':
		return &Token{Kind: TokProperty, Property: PropertyToken{Negated: true, Name: "Xwd"}, Pos: start}, nil
	case 's':
		return &Token{Kind: TokProperty, Property: PropertyToken{Name: "Xsp"}, Pos: start}, nil
	case 'S':
		return &Token{Kind: TokProperty, Property: PropertyToken{Negated: true, Name: "Xsp"}, Pos: start}, nil
	default:
		// \c for any non-letter c (and any other single char) is a literal c,
		// which also covers escaping meta-characters including '\\' itself.
		return &Token{Kind: TokLiteral, Ch: c, Pos: start}, nil
	}
}

func (l *Lexer) lexHex(start, digits int) (*Token, error) {
	if l.pos+digits > len(l.runes) {
		return nil, l.errf(start, "expected %d hex digits", digits)
	}
	s := string(l.runes[l.pos : l.pos+digits])
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return nil, l.errf(start, "illegal hex digits %q", s)
	}
	l.pos += digits
	return &Token{Kind: TokLiteral, Ch: rune(v), Pos: start}, nil
}

func (l *Lexer) lexProperty(start int, negated bool) (*Token, error) {
	if l.eof() || l.peek() != '{' {
		return nil, l.errf(start, "expected '{' after \\p or \\P")
	}
	l.advance()
	var sb strings.Builder
	for !l.eof() && l.peek() != '}' {
		sb.WriteRune(l.advance())
	}
	if l.eof() {
		return nil, l.errf(start, "unterminated property name")
	}
	l.advance() // consume '}'
	name := sb.String()
	if name == "" {
		return nil, l.errf(start, "empty property name")
	}
	if _, ok := uniset.FromProperty(name); !ok {
		return nil, l.errf(start, "unknown property name %q", name)
	}
	return &Token{Kind: TokProperty, Property: PropertyToken{Negated: negated, Name: name}, Pos: start}, nil
}
