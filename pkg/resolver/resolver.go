// Package resolver merges class lists so that later classes win over earlier
// conflicting ones.
//
// Tokens are visited last to first. A kept class claims its own group and
// every group it overrides, scoped to its variant and important flag; an
// earlier class whose group is already claimed in the same scope is dropped.
// Opaque tokens are always kept.
package resolver

import (
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/twmerge/pkg/logging"
	"github.com/arthur-debert/twmerge/pkg/parser"
	"github.com/arthur-debert/twmerge/pkg/taxonomy"
)

type claimKey struct {
	variant   string
	important bool
	group     taxonomy.ClassGroupID
}

type scratch struct {
	// claimed maps a scope to the reverse position of the class that claimed it.
	claimed map[claimKey]int
	kept    []string
}

// Resolver applies conflict resolution. It is safe for concurrent use.
type Resolver struct {
	parser   *parser.Parser
	taxonomy *taxonomy.Taxonomy
	logger   zerolog.Logger
	pool     sync.Pool
}

// Stats counts what a Resolve call did.
type Stats struct {
	Tokens    int
	Discarded int
}

// Decision records the outcome for one token.
type Decision struct {
	// Index is the position of the token in the input, counting from zero.
	Index int
	Class parser.ParsedClass
	Kept  bool
	// OverriddenBy is the index of the class that caused the discard, or -1.
	OverriddenBy int
}

// New returns a resolver using p for parsing. p.Taxonomy supplies the
// conflict table.
func New(p *parser.Parser) *Resolver {
	r := &Resolver{
		parser:   p,
		taxonomy: p.Taxonomy,
		logger:   logging.GetLogger("resolver"),
	}
	r.pool.New = func() any {
		return &scratch{claimed: make(map[claimKey]int, 16), kept: make([]string, 0, 16)}
	}
	return r
}

// Parser returns the parser the resolver was built with.
func (r *Resolver) Parser() *parser.Parser {
	return r.parser
}

// Resolve returns the merged class list of input.
func (r *Resolver) Resolve(input string) string {
	out, _ := r.ResolveStats(input)
	return out
}

// ResolveStats is Resolve that also reports token counts.
func (r *Resolver) ResolveStats(input string) (string, Stats) {
	var stats Stats

	sc := r.pool.Get().(*scratch)
	defer r.release(sc)

	size := 0
	rest := input
	for pos := 0; ; pos++ {
		var tok string
		tok, rest = parser.LastField(rest)
		if tok == "" {
			break
		}
		stats.Tokens++

		pc := r.parser.Parse(tok)
		if keep, _ := r.decide(sc.claimed, pc, pos); !keep {
			stats.Discarded++
			r.logger.Trace().Str("class", tok).Msg("Class overridden")
			continue
		}
		sc.kept = append(sc.kept, tok)
		size += len(tok) + 1
	}

	if len(sc.kept) == 0 {
		return "", stats
	}

	var b strings.Builder
	b.Grow(size - 1)
	for i := len(sc.kept) - 1; i >= 0; i-- {
		b.WriteString(sc.kept[i])
		if i > 0 {
			b.WriteByte(' ')
		}
	}
	return b.String(), stats
}

// Explain resolves input and reports the decision taken for every token, in
// input order.
func (r *Resolver) Explain(input string) []Decision {
	var tokens []string
	for tok := range parser.Fields(input) {
		tokens = append(tokens, tok)
	}

	sc := r.pool.Get().(*scratch)
	defer r.release(sc)

	decisions := make([]Decision, len(tokens))
	for i := len(tokens) - 1; i >= 0; i-- {
		pc := r.parser.Parse(tokens[i])
		keep, by := r.decide(sc.claimed, pc, i)
		decisions[i] = Decision{Index: i, Class: pc, Kept: keep, OverriddenBy: by}
	}
	return decisions
}

// decide reports whether pc survives given what later classes claimed. A
// surviving class claims its scope under the id pos. For a discarded class by
// holds the id of the claiming class, otherwise -1.
func (r *Resolver) decide(claimed map[claimKey]int, pc parser.ParsedClass, pos int) (keep bool, by int) {
	if !pc.Known {
		return true, -1
	}

	key := claimKey{variant: pc.Variant, important: pc.Important, group: pc.Group}
	if winner, taken := claimed[key]; taken {
		return false, winner
	}

	claimed[key] = pos
	for _, g := range r.taxonomy.Conflicts(pc.Group) {
		claim(claimed, key, g, pos)
	}
	if pc.Postfix {
		for _, g := range r.taxonomy.PostfixOverrides(pc.Group) {
			claim(claimed, key, g, pos)
		}
	}
	return true, -1
}

func claim(claimed map[claimKey]int, key claimKey, g taxonomy.ClassGroupID, pos int) {
	key.group = g
	if _, taken := claimed[key]; !taken {
		claimed[key] = pos
	}
}

func (r *Resolver) release(sc *scratch) {
	clear(sc.claimed)
	clear(sc.kept)
	sc.kept = sc.kept[:0]
	r.pool.Put(sc)
}
