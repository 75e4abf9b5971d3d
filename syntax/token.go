package syntax

import "fmt"

// TokenKind is the tag of a single token produced by the Lexer. It
// mirrors the conventional NodeType enum in shape (a small integer tag
// plus payload fields on the token itself) but covers the lexical
// grammar rather than the parsed tree.
type TokenKind int32

const (
	TokAnyChar TokenKind = iota
	TokZeroOne
	TokOneMore
	TokZeroMore
	TokAlternate
	TokBeginSeq
	TokEndSeq
	TokBeginGroup
	TokEndGroup
	TokBeginClass
	TokNegClass
	TokEndClass
	TokRangeTo
	TokRepeat
	TokProperty
	TokLiteral
)

func (k TokenKind) String() string {
	switch k {
	case TokAnyChar:
		return "AnyChar"
	case TokZeroOne:
		return "ZeroOne"
	case TokOneMore:
		return "OneMore"
	case TokZeroMore:
		return "ZeroMore"
	case TokAlternate:
		return "Alternate"
	case TokBeginSeq:
		return "BeginSeq"
	case TokEndSeq:
		return "EndSeq"
	case TokBeginGroup:
		return "BeginGroup"
	case TokEndGroup:
		return "EndGroup"
	case TokBeginClass:
		return "BeginClass"
	case TokNegClass:
		return "NegClass"
	case TokEndClass:
		return "EndClass"
	case TokRangeTo:
		return "RangeTo"
	case TokRepeat:
		return "Repeat"
	case TokProperty:
		return "Property"
	case TokLiteral:
		return "Literal"
	}
	return fmt.Sprintf("TokenKind(%d)", int32(k))
}

// GroupNameKind distinguishes the four group-name shapes the design
// allows: a plain ordinal, an ordinal with a label, the no-capture
// marker, and the distinguished search sentinel used by the search
// prefix wrapper.
type GroupNameKind int32

const (
	GroupOrdinal GroupNameKind = iota
	GroupLabeled
	GroupNoCapture
	GroupSearch
)

// GroupName names a capture group the way this design describes: an
// integer ordinal >= 1, a pair (ordinal, label), the distinguished
// :nocap marker, or the :search sentinel.
type GroupName struct {
	Kind    GroupNameKind
	Ordinal int
	Label   string
}

func (g GroupName) String() string {
	switch g.Kind {
	case GroupNoCapture:
		return ":nocap"
	case GroupSearch:
		return ":search"
	case GroupLabeled:
		return fmt.Sprintf("%d:%s", g.Ordinal, g.Label)
	default:
		return fmt.Sprintf("%d", g.Ordinal)
	}
}

// PropertyToken carries a \p{...}/\P{...} reference: which kind of
// lookup (category/block/script) is resolved later by the uniset
// package, the sign (positive \p vs negative \P), and the name text as
// written in the pattern (uniset normalizes it at lookup).
type PropertyToken struct {
	Negated bool
	Name    string
}

// Token is a single lexical unit. Exactly one payload field is
// meaningful depending on Kind; the rest are zero.
type Token struct {
	Kind     TokenKind
	Ch       rune          // TokLiteral
	Group    GroupName     // TokBeginGroup
	N        int           // TokRepeat: the {n} count; TokAlternate (pass-1 output only): the arity
	Property PropertyToken // TokProperty
	Pos      int           // code-point offset in the source pattern, for error messages
}
