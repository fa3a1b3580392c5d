// Package taxonomy describes Tailwind's utility classes as conflict groups.
//
// A Taxonomy is built from a Config: every group contributes spellings to a
// prefix index (see package trie) and the conflict table records which groups
// a class overrides. Built taxonomies are immutable and safe for concurrent
// use.
package taxonomy

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/arthur-debert/twmerge/pkg/errors"
	"github.com/arthur-debert/twmerge/pkg/logging"
	"github.com/arthur-debert/twmerge/pkg/trie"
)

// ArbitraryPropertyPrefix prefixes the group of an arbitrary property class,
// so [mask-type:luminance] belongs to "arbitrary..mask-type".
const ArbitraryPropertyPrefix = "arbitrary.."

// Taxonomy classifies base class names and answers conflict queries.
type Taxonomy struct {
	index     *trie.Index[ClassGroupID]
	groups    map[ClassGroupID]struct{}
	overrides map[ClassGroupID][]ClassGroupID
	postfix   map[ClassGroupID][]ClassGroupID
	sorted    []ClassGroupID
}

// Classification is the detailed answer to a classification query.
type Classification struct {
	Group ClassGroupID
	// Path is the literal prefix matched in the index.
	Path string
	// Value is the part accepted by Validator; empty for exact spellings.
	Value     string
	Validator string
	Negative  bool
	// Property is set for arbitrary property classes.
	Property string
}

var defaultTaxonomy = sync.OnceValue(func() *Taxonomy {
	return MustBuild(DefaultConfig())
})

// Default returns the taxonomy built from DefaultConfig. It is built once.
func Default() *Taxonomy {
	return defaultTaxonomy()
}

// MustBuild is like Build but panics on error.
func MustBuild(cfg Config) *Taxonomy {
	t, err := Build(cfg)
	if err != nil {
		panic(err)
	}
	return t
}

// Build validates cfg and builds its index. Every problem found is reported,
// joined into one error.
func Build(cfg Config) (*Taxonomy, error) {
	logger := logging.GetLogger("taxonomy")
	done := logging.LogOperationStart(logger, "build-taxonomy")
	defer done()

	t := &Taxonomy{
		index:     trie.New[ClassGroupID](),
		groups:    make(map[ClassGroupID]struct{}, len(cfg.Groups)),
		overrides: make(map[ClassGroupID][]ClassGroupID, len(cfg.Groups)),
		postfix:   make(map[ClassGroupID][]ClassGroupID, len(cfg.PostfixConflicts)),
	}

	var errs []error
	for _, g := range cfg.Groups {
		if g.ID == "" {
			errs = append(errs, errors.New(errors.ErrGroupInvalid, "group without an id"))
			continue
		}
		if strings.HasPrefix(string(g.ID), ArbitraryPropertyPrefix) {
			errs = append(errs, errors.Newf(errors.ErrGroupInvalid, "group id %q uses a reserved prefix", g.ID).
				WithDetail("group", g.ID))
			continue
		}
		if _, dup := t.groups[g.ID]; dup {
			errs = append(errs, errors.Newf(errors.ErrGroupInvalid, "group %q is declared twice", g.ID).
				WithDetail("group", g.ID))
			continue
		}
		if len(g.Definitions) == 0 {
			errs = append(errs, errors.Newf(errors.ErrGroupInvalid, "group %q has no definitions", g.ID).
				WithDetail("group", g.ID))
			continue
		}

		t.groups[g.ID] = struct{}{}
		t.sorted = append(t.sorted, g.ID)
		for _, d := range g.Definitions {
			errs = append(errs, t.add(g.ID, "", d)...)
		}
	}

	for id := range t.groups {
		t.overrides[id] = []ClassGroupID{id}
	}
	errs = append(errs, t.link(cfg.Conflicts, t.overrides, "conflict")...)
	errs = append(errs, t.link(cfg.PostfixConflicts, t.postfix, "postfix conflict")...)

	if err := errors.Join(errs...); err != nil {
		return nil, errors.Wrapf(err, errors.ErrDefinitionInvalid, "taxonomy has %d problem(s)", len(errs)).
			WithDetail("problems", len(errs))
	}

	sort.Slice(t.sorted, func(i, j int) bool { return t.sorted[i] < t.sorted[j] })

	stats := t.index.Stats()
	logger.Debug().
		Int("groups", len(t.groups)).
		Int("nodes", stats.Nodes).
		Int("terminals", stats.Terminals).
		Int("validators", stats.Validators).
		Msg("Taxonomy built")
	return t, nil
}

func (t *Taxonomy) add(id ClassGroupID, path string, d Definition) []error {
	switch d.kind {
	case kindLiteral:
		spelling := joinPath(path, d.literal)
		if spelling == "" {
			return []error{errors.Newf(errors.ErrDefinitionInvalid, "group %q has an empty top-level literal", id).
				WithDetail("group", id)}
		}
		if err := t.index.Insert(spelling, id); err != nil {
			return []error{err}
		}
	case kindValidator:
		if err := t.index.AddValidator(path, id, d.validator); err != nil {
			return []error{errors.Wrapf(err, errors.ErrDefinitionInvalid, "group %q", id).WithDetail("group", id)}
		}
	case kindNested:
		if len(d.children) == 0 {
			return []error{errors.Newf(errors.ErrDefinitionInvalid, "group %q nests %q without definitions", id, d.prefix).
				WithDetail("group", id)}
		}
		var errs []error
		next := joinPath(path, d.prefix)
		for _, c := range d.children {
			errs = append(errs, t.add(id, next, c)...)
		}
		return errs
	default:
		msg := "malformed definition"
		if d.err != nil {
			msg = d.err.Error()
		}
		return []error{errors.Newf(errors.ErrDefinitionInvalid, "group %q: %s", id, msg).WithDetail("group", id)}
	}
	return nil
}

func (t *Taxonomy) link(table, into map[ClassGroupID][]ClassGroupID, kind string) []error {
	var errs []error
	keys := make([]ClassGroupID, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	for _, from := range keys {
		if !t.Has(from) {
			errs = append(errs, errors.Newf(errors.ErrGroupUnknown, "%s declared for unknown group %q", kind, from).
				WithDetail("group", from))
			continue
		}
		for _, to := range table[from] {
			if !t.Has(to) {
				errs = append(errs, errors.Newf(errors.ErrGroupUnknown, "%s %q -> %q names an unknown group", kind, from, to).
					WithDetail("group", from).
					WithDetail("target", to))
				continue
			}
			if !containsGroup(into[from], to) {
				into[from] = append(into[from], to)
			}
		}
	}
	return errs
}

func joinPath(path, seg string) string {
	switch {
	case path == "":
		return seg
	case seg == "":
		return path
	default:
		return path + "-" + seg
	}
}

// Has reports whether id is a group declared in the configuration.
func (t *Taxonomy) Has(id ClassGroupID) bool {
	_, ok := t.groups[id]
	return ok
}

// Groups returns every declared group id, sorted.
func (t *Taxonomy) Groups() []ClassGroupID {
	return append([]ClassGroupID(nil), t.sorted...)
}

// Stats reports the shape of the underlying index.
func (t *Taxonomy) Stats() trie.Stats {
	return t.index.Stats()
}

// Classify returns the group of a base class name (no variants, no
// important marker, no postfix). A leading "-" marks a negative value and is
// ignored. Arbitrary properties such as [mask-type:luminance] form one group
// per property name.
func (t *Taxonomy) Classify(base string) (ClassGroupID, bool) {
	if len(base) > 1 && base[0] == '-' {
		base = base[1:]
	}
	if prop, ok := arbitraryProperty(base); ok {
		return ClassGroupID(ArbitraryPropertyPrefix + prop), true
	}
	return t.index.Lookup(base)
}

// Explain is Classify with the details of the match.
func (t *Taxonomy) Explain(base string) (Classification, bool) {
	var c Classification
	if len(base) > 1 && base[0] == '-' {
		base = base[1:]
		c.Negative = true
	}
	if prop, ok := arbitraryProperty(base); ok {
		c.Group = ClassGroupID(ArbitraryPropertyPrefix + prop)
		c.Property = prop
		c.Value = base
		return c, true
	}
	m, ok := t.index.Explain(base)
	if !ok {
		return Classification{}, false
	}
	c.Group = m.Group
	c.Path = m.Path
	c.Value = m.Value
	c.Validator = m.Validator
	return c, true
}

// Overrides returns the groups a class of id overrides, id included.
func (t *Taxonomy) Overrides(id ClassGroupID) []ClassGroupID {
	if o, ok := t.overrides[id]; ok {
		return append([]ClassGroupID(nil), o...)
	}
	return []ClassGroupID{id}
}

// Conflicts returns the groups id overrides besides itself. The slice is
// shared and must not be modified.
func (t *Taxonomy) Conflicts(id ClassGroupID) []ClassGroupID {
	o := t.overrides[id]
	if len(o) == 0 {
		return nil
	}
	return o[1:]
}

// PostfixOverrides returns the extra groups overridden when a class of id
// carries a postfix modifier. The slice is shared and must not be modified.
func (t *Taxonomy) PostfixOverrides(id ClassGroupID) []ClassGroupID {
	return t.postfix[id]
}

// IsArbitraryProperty reports whether id was synthesised for an arbitrary
// property class.
func IsArbitraryProperty(id ClassGroupID) bool {
	return strings.HasPrefix(string(id), ArbitraryPropertyPrefix)
}

// arbitraryProperty returns "prop" for "[prop:value]".
func arbitraryProperty(base string) (string, bool) {
	if len(base) < 4 || base[0] != '[' || base[len(base)-1] != ']' {
		return "", false
	}
	inner := base[1 : len(base)-1]
	i := strings.IndexByte(inner, ':')
	if i <= 0 || i == len(inner)-1 {
		return "", false
	}
	return inner[:i], true
}

// String implements fmt.Stringer for log output.
func (t *Taxonomy) String() string {
	s := t.index.Stats()
	return fmt.Sprintf("taxonomy(%d groups, %d spellings, %d validators)", len(t.groups), s.Terminals, s.Validators)
}
