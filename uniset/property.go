package uniset

import (
	"strings"
	"unicode"
)

// PropertyKind distinguishes the three \p{...} namespaces the lexer
// resolves against, in the order the design specifies: literal
// category table first, then the Xan/Xwd/Xsp extension set, then
// blocks, then scripts.
type PropertyKind int

const (
	KindCategory PropertyKind = iota
	KindBlock
	KindScript
)

// NormalizePropertyName case-folds and space-removes a \p{...} name
// the way the lexer must before table lookup.
func NormalizePropertyName(name string) string {
	name = strings.ReplaceAll(name, " ", "")
	return strings.ToLower(name)
}

// extension categories: composed from base unicode categories plus a
// literal run of whitespace control characters not already covered by
// the Z* categories. Xwd is the conventional word-char definition
// (L, Mn, Nd, Pc plus the joiners).
var literalWhitespace = []rune{' ', '\n', '\r', '\t', '\v', '\f'}
var wordJoiners = []rune{'‌', '‍'}

func categoryRuns(table *unicode.RangeTable) []Run {
	var runs []Run
	for _, r16 := range table.R16 {
		if r16.Stride == 1 {
			runs = append(runs, Run{Start: rune(r16.Lo), Length: int(r16.Hi-r16.Lo) + 1})
			continue
		}
		for c := r16.Lo; c <= r16.Hi; c += r16.Stride {
			runs = append(runs, Run{Start: rune(c), Length: 1})
		}
	}
	for _, r32 := range table.R32 {
		if r32.Stride == 1 {
			runs = append(runs, Run{Start: rune(r32.Lo), Length: int(r32.Hi-r32.Lo) + 1})
			continue
		}
		for c := r32.Lo; c <= r32.Hi; c += r32.Stride {
			runs = append(runs, Run{Start: rune(c), Length: 1})
		}
	}
	return runs
}

func unionTables(tables ...*unicode.RangeTable) Uniset {
	var runs []Run
	for _, t := range tables {
		runs = append(runs, categoryRuns(t)...)
	}
	return FromRuns(runs)
}

// extensionCategory resolves the three PCRE-style extension classes
// the design calls out: Xan (alphanumeric), Xwd (word char), Xsp
// (space, including literal control whitespace the Z* categories
// don't cover).
func extensionCategory(name string) (Uniset, bool) {
	switch name {
	case "xan":
		return unionTables(unicode.L, unicode.N), true
	case "xwd":
		u := unionTables(unicode.L, unicode.Mn, unicode.Nd, unicode.Pc)
		return Union(u, FromChars(wordJoiners)), true
	case "xsp":
		u := unionTables(unicode.Zs, unicode.Zl, unicode.Zp)
		return Union(u, FromChars(literalWhitespace)), true
	}
	return Uniset{}, false
}

// FromCategory resolves a general-category name ("Lu", "Nd", "L", ...)
// or one of the Xan/Xwd/Xsp extensions, or the composite alias "Any"
// (all code points, same as All()).
func FromCategory(name string) (Uniset, bool) {
	norm := NormalizePropertyName(name)
	if norm == "any" {
		return All(), true
	}
	if u, ok := extensionCategory(norm); ok {
		return u, true
	}
	for cat, table := range unicode.Categories {
		if strings.ToLower(cat) == norm {
			return unionTables(table), true
		}
	}
	return Uniset{}, false
}

// FromScript resolves a Unicode script name ("Greek", "Cyrillic", ...)
// case-insensitively against the standard library's script tables.
func FromScript(name string) (Uniset, bool) {
	norm := NormalizePropertyName(name)
	for script, table := range unicode.Scripts {
		if strings.ToLower(script) == norm {
			return unionTables(table), true
		}
	}
	return Uniset{}, false
}

// FromBlock resolves a Unicode block name against a hand-maintained
// table of commonly used blocks (the standard library does not expose
// block ranges the way it exposes categories and scripts).
func FromBlock(name string) (Uniset, bool) {
	norm := NormalizePropertyName(name)
	if r, ok := blocks[norm]; ok {
		return FromRange(r.Start, r.Start+rune(r.Length)-1), true
	}
	return Uniset{}, false
}

// FromProperty dispatches to the right table in resolution order:
// category (including Any and the Xan/Xwd/Xsp extensions, via
// FromCategory), then block, then script. The lexer calls it for every
// \p{name}/\P{name} it reads.
func FromProperty(name string) (Uniset, bool) {
	if u, ok := FromCategory(name); ok {
		return u, true
	}
	if u, ok := FromBlock(name); ok {
		return u, true
	}
	if u, ok := FromScript(name); ok {
		return u, true
	}
	return Uniset{}, false
}

// blocks is a literal table of well-known Unicode block ranges, the
// same shape as the conventional definedCategories map of literal Go
// data rather than a generated table.
var blocks = map[string]Run{
	"basiclatin":               {Start: 0x0000, Length: 0x0080},
	"latin-1supplement":        {Start: 0x0080, Length: 0x0080},
	"latinextended-a":          {Start: 0x0100, Length: 0x0080},
	"latinextended-b":          {Start: 0x0180, Length: 0x00D0},
	"greekandcoptic":           {Start: 0x0370, Length: 0x0090},
	"cyrillic":                 {Start: 0x0400, Length: 0x0100},
	"hebrew":                   {Start: 0x0590, Length: 0x0070},
	"arabic":                   {Start: 0x0600, Length: 0x0100},
	"devanagari":               {Start: 0x0900, Length: 0x0080},
	"armenian":                 {Start: 0x0530, Length: 0x0060},
	"hiragana":                 {Start: 0x3040, Length: 0x0060},
	"katakana":                 {Start: 0x30A0, Length: 0x0060},
	"cjkunifiedideographs":     {Start: 0x4E00, Length: 0x5200},
	"hangulsyllables":          {Start: 0xAC00, Length: 0x2BA4},
	"generalpunctuation":       {Start: 0x2000, Length: 0x0070},
	"currencysymbols":          {Start: 0x20A0, Length: 0x0030},
	"arrows":                   {Start: 0x2190, Length: 0x0070},
	"mathematicaloperators":    {Start: 0x2200, Length: 0x0100},
	"boxdrawing":               {Start: 0x2500, Length: 0x0080},
	"emoticons":                {Start: 0x1F600, Length: 0x0050},
	"supplementalpunctuation":  {Start: 0x2E00, Length: 0x0080},
}
