// Package parser splits class tokens into variant prefix, important flag and
// base class, and classifies the base against a taxonomy.
//
// A token such as "md:hover:!-tw-mt-[3px]" parses into the variant
// "md:hover:", the important flag and the base "-tw-mt-[3px]". Separators
// inside brackets and escaped separators do not split. A token that cannot be
// parsed or classified is opaque: it carries no group and takes no part in
// conflict resolution.
package parser

import (
	"iter"
	"strings"

	"github.com/arthur-debert/twmerge/pkg/taxonomy"
)

// DefaultSeparator separates variants from each other and from the base.
const DefaultSeparator = ":"

// ImportantMarker flags a class as important when it leads the base segment.
const ImportantMarker = '!'

// Parser parses and classifies class tokens. The zero value is not usable;
// Taxonomy must be set.
type Parser struct {
	Taxonomy *taxonomy.Taxonomy
	// Prefix is the configured utility prefix, for example "tw-". When set,
	// classes without it are opaque.
	Prefix string
	// Separator defaults to DefaultSeparator.
	Separator string
}

// New returns a parser over tx. An empty separator selects the default.
func New(tx *taxonomy.Taxonomy, prefix, separator string) *Parser {
	if separator == "" {
		separator = DefaultSeparator
	}
	return &Parser{Taxonomy: tx, Prefix: prefix, Separator: separator}
}

// ParsedClass is the parse of a single token. Every string field is a slice
// of Raw.
type ParsedClass struct {
	Raw string
	// Variant is the modifier prefix including its trailing separator, for
	// example "hover:focus:". Tokens only interact when their variants are
	// equal.
	Variant   string
	Important bool
	// Base is the class after variants and the important marker, with any
	// negative sign, prefix and postfix still in place.
	Base string
	// Postfix is set when the class was classified without its "/postfix"
	// part, as in "text-lg/7".
	Postfix bool
	Group   taxonomy.ClassGroupID
	Known   bool

	separator string
}

// Modifiers splits Variant into its ordered modifiers.
func (pc ParsedClass) Modifiers() []string {
	if pc.Variant == "" {
		return nil
	}
	sep := pc.separator
	if sep == "" {
		sep = DefaultSeparator
	}

	var mods []string
	s := pc.Variant
	start, depth := 0, 0
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '\\':
			i++
		case c == '[':
			depth++
		case c == ']':
			depth--
		case depth == 0 && strings.HasPrefix(s[i:], sep):
			mods = append(mods, s[start:i])
			i += len(sep) - 1
			start = i + 1
		}
	}
	if start < len(s) {
		mods = append(mods, s[start:])
	}
	return mods
}

// IsArbitraryVariant reports whether mod is a bracketed variant such as
// "[&>*]".
func IsArbitraryVariant(mod string) bool {
	return len(mod) >= 2 && mod[0] == '[' && mod[len(mod)-1] == ']'
}

func (p *Parser) separator() string {
	if p.Separator == "" {
		return DefaultSeparator
	}
	return p.Separator
}

// Parse parses and classifies token. It never fails; anything it cannot make
// sense of comes back with Known unset.
func (p *Parser) Parse(token string) ParsedClass {
	sep := p.separator()
	pc := ParsedClass{Raw: token, separator: sep}

	depth, baseStart, postfix := 0, 0, -1
	for i := 0; i < len(token); i++ {
		switch c := token[i]; {
		case c == '\\':
			i++
		case c == '[':
			depth++
		case c == ']':
			depth--
			if depth < 0 {
				return pc
			}
		case depth == 0 && strings.HasPrefix(token[i:], sep):
			baseStart = i + len(sep)
			postfix = -1
			i += len(sep) - 1
		case depth == 0 && c == '/':
			postfix = i
		}
	}
	if depth != 0 {
		return pc
	}

	pc.Variant = token[:baseStart]
	base := token[baseStart:]
	if len(base) > 0 && base[0] == ImportantMarker {
		pc.Important = true
		base = base[1:]
	}
	pc.Base = base
	if base == "" {
		return pc
	}

	key, ok := p.stripPrefix(base)
	if !ok || key == "" {
		return pc
	}

	// postfix offset relative to key
	cut := -1
	if postfix >= 0 {
		cut = postfix - (len(token) - len(key))
	}

	if cut > 0 {
		if g, ok := p.Taxonomy.Classify(key[:cut]); ok {
			pc.Group, pc.Known, pc.Postfix = g, true, true
			return pc
		}
	}
	if g, ok := p.Taxonomy.Classify(key); ok {
		pc.Group, pc.Known = g, true
	}
	return pc
}

// stripPrefix removes the configured prefix, which follows the negative
// sign: "-tw-mt-2". The returned key keeps no sign; negative and positive
// values share a group.
func (p *Parser) stripPrefix(base string) (string, bool) {
	if p.Prefix == "" {
		return base, true
	}
	rest := base
	if len(rest) > 1 && rest[0] == '-' {
		rest = rest[1:]
	}
	if !strings.HasPrefix(rest, p.Prefix) {
		return "", false
	}
	return rest[len(p.Prefix):], true
}

// Fields yields the whitespace-delimited tokens of every input, in order.
// Empty fragments are skipped.
func Fields(inputs ...string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, s := range inputs {
			start := -1
			for i := 0; i < len(s); i++ {
				if isSpace(s[i]) {
					if start >= 0 {
						if !yield(s[start:i]) {
							return
						}
						start = -1
					}
					continue
				}
				if start < 0 {
					start = i
				}
			}
			if start >= 0 {
				if !yield(s[start:]) {
					return
				}
			}
		}
	}
}

// LastField returns the last whitespace-delimited token of s and the text
// before it. tok is empty when s holds no token.
func LastField(s string) (tok, rest string) {
	end := len(s)
	for end > 0 && isSpace(s[end-1]) {
		end--
	}
	start := end
	for start > 0 && !isSpace(s[start-1]) {
		start--
	}
	return s[start:end], s[:start]
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}
