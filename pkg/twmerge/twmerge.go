// Package twmerge merges Tailwind CSS class lists, resolving conflicts so that
// later classes win.
//
//	twmerge.Merge("px-2 py-1 bg-red hover:bg-dark-red", "p-3 bg-[#B91C1C]")
//	// "hover:bg-dark-red p-3 bg-[#B91C1C]"
//
// Classes that are not recognised are kept as written. Merge never fails.
package twmerge

import (
	"strings"
	"sync"
	"unicode"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/twmerge/pkg/cache"
	"github.com/arthur-debert/twmerge/pkg/config"
	"github.com/arthur-debert/twmerge/pkg/errors"
	"github.com/arthur-debert/twmerge/pkg/logging"
	"github.com/arthur-debert/twmerge/pkg/metrics"
	"github.com/arthur-debert/twmerge/pkg/parser"
	"github.com/arthur-debert/twmerge/pkg/resolver"
	"github.com/arthur-debert/twmerge/pkg/taxonomy"
)

// Options configures a Merger. The zero value uses the default taxonomy, no
// prefix, the ":" separator and a cache of cache.DefaultSize entries.
type Options struct {
	Taxonomy  *taxonomy.Taxonomy
	Prefix    string
	Separator string
	// CacheSize is the number of cached results; 0 selects the default.
	CacheSize    int
	DisableCache bool
	Logger       *zerolog.Logger
	Metrics      *metrics.Metrics
}

// Merger merges class lists. It is safe for concurrent use.
type Merger struct {
	taxonomy *taxonomy.Taxonomy
	parser   *parser.Parser
	resolver *resolver.Resolver
	cache    *cache.Cache
	metrics  *metrics.Metrics
	logger   zerolog.Logger
}

// New builds a Merger.
func New(opts Options) (*Merger, error) {
	if strings.IndexFunc(opts.Separator, unicode.IsSpace) >= 0 {
		return nil, errors.Newf(errors.ErrInvalidInput, "separator %q contains whitespace", opts.Separator)
	}
	if strings.IndexFunc(opts.Prefix, unicode.IsSpace) >= 0 {
		return nil, errors.Newf(errors.ErrInvalidInput, "prefix %q contains whitespace", opts.Prefix)
	}
	if opts.CacheSize < 0 {
		return nil, errors.Newf(errors.ErrInvalidInput, "cache size must not be negative, got %d", opts.CacheSize)
	}

	tx := opts.Taxonomy
	if tx == nil {
		tx = taxonomy.Default()
	}

	logger := logging.GetLogger("twmerge")
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	size := opts.CacheSize
	if size == 0 {
		size = cache.DefaultSize
	}
	if opts.DisableCache {
		size = 0
	}

	p := parser.New(tx, opts.Prefix, opts.Separator)
	m := &Merger{
		taxonomy: tx,
		parser:   p,
		resolver: resolver.New(p),
		cache:    cache.New(size),
		metrics:  opts.Metrics,
		logger:   logger,
	}

	logger.Debug().
		Str("prefix", p.Prefix).
		Str("separator", p.Separator).
		Int("cache", m.cache.Capacity()).
		Stringer("taxonomy", tx).
		Msg("Merger ready")
	return m, nil
}

// MustNew is like New but panics on error.
func MustNew(opts Options) *Merger {
	m, err := New(opts)
	if err != nil {
		panic(err)
	}
	return m
}

// FromSettings builds a Merger from loaded settings. The default taxonomy is
// shared unless the settings extend it.
func FromSettings(s *config.Settings, opts Options) (*Merger, error) {
	if s == nil {
		return New(opts)
	}

	if s.HasExtensions() {
		cfg, err := s.TaxonomyConfig()
		if err != nil {
			return nil, err
		}
		tx, err := taxonomy.Build(cfg)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigValid, "extended taxonomy is invalid")
		}
		opts.Taxonomy = tx
	}

	opts.Prefix = s.Prefix
	opts.Separator = s.Separator
	opts.CacheSize = s.Cache.Size
	opts.DisableCache = opts.DisableCache || s.Cache.Size == 0
	return New(opts)
}

// Merge concatenates classes in order and resolves conflicts.
func (m *Merger) Merge(classes ...string) string {
	switch len(classes) {
	case 0:
		return ""
	case 1:
		return m.MergeString(classes[0])
	}
	return m.MergeString(strings.Join(classes, " "))
}

// MergeString resolves conflicts in a single space-separated class list.
func (m *Merger) MergeString(classes string) string {
	m.metrics.ObserveMerge()

	if m.cache != nil {
		if out, ok := m.cache.Get(classes); ok {
			m.metrics.ObserveCache(true)
			return out
		}
		m.metrics.ObserveCache(false)
	}

	out, stats := m.resolver.ResolveStats(classes)
	m.metrics.ObserveTokens(stats.Tokens, stats.Discarded)
	m.cache.Add(classes, out)

	m.logger.Trace().
		Int("tokens", stats.Tokens).
		Int("discarded", stats.Discarded).
		Msg("Merged classes")
	return out
}

// Join concatenates classes without resolving conflicts, collapsing
// whitespace and dropping empty fragments.
func (m *Merger) Join(classes ...string) string {
	return Join(classes...)
}

// Explain reports the decision taken for every token of the merged input.
func (m *Merger) Explain(classes ...string) []resolver.Decision {
	return m.resolver.Explain(strings.Join(classes, " "))
}

// Classify parses a single class token.
func (m *Merger) Classify(class string) parser.ParsedClass {
	return m.parser.Parse(strings.TrimSpace(class))
}

// Taxonomy returns the taxonomy the merger classifies against.
func (m *Merger) Taxonomy() *taxonomy.Taxonomy {
	return m.taxonomy
}

// Parser returns the parser the merger uses.
func (m *Merger) Parser() *parser.Parser {
	return m.parser
}

// CacheLen returns the number of cached results.
func (m *Merger) CacheLen() int {
	return m.cache.Len()
}

// ResetCache drops every cached result.
func (m *Merger) ResetCache() {
	m.cache.Purge()
}

var defaultMerger = sync.OnceValue(func() *Merger {
	return MustNew(Options{})
})

// Default returns the shared Merger used by the package-level functions.
func Default() *Merger {
	return defaultMerger()
}

// Merge merges classes with the default Merger.
func Merge(classes ...string) string {
	return Default().Merge(classes...)
}

// MergeString merges a single class list with the default Merger.
func MergeString(classes string) string {
	return Default().MergeString(classes)
}

// Join concatenates classes without resolving conflicts.
func Join(classes ...string) string {
	var b strings.Builder
	for tok := range parser.Fields(classes...) {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tok)
	}
	return b.String()
}
