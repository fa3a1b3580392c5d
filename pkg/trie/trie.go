// Package trie implements the prefix index used to classify class names.
//
// Nodes are keyed by one hyphen-delimited segment each. A node may own a
// group as a terminal (the exact spelling is known) and may carry validators
// that are tried against the remaining, unmatched part of the name. Lookup
// prefers the deepest node that matches, then the validators of that node in
// declaration order, and only then backtracks to shallower nodes.
package trie

import (
	"strings"

	"github.com/arthur-debert/twmerge/pkg/errors"
	"github.com/arthur-debert/twmerge/pkg/validators"
)

type entry[G comparable] struct {
	group     G
	validator validators.Validator
}

type node[G comparable] struct {
	children   map[string]*node[G]
	group      G
	terminal   bool
	validators []entry[G]
}

// Index is a hyphen-segment prefix tree. It is built once and then only read;
// concurrent lookups need no locking.
type Index[G comparable] struct {
	root  *node[G]
	stats Stats
}

// Stats summarises the shape of an index.
type Stats struct {
	Nodes      int
	Terminals  int
	Validators int
}

// Match describes how a class name was classified.
type Match[G comparable] struct {
	Group G
	// Path is the literal prefix that was matched through the tree.
	Path string
	// Value is the remainder handed to Validator, empty for exact spellings.
	Value string
	// Validator names the predicate that accepted Value.
	Validator string
}

// New returns an empty index.
func New[G comparable]() *Index[G] {
	return &Index[G]{root: &node[G]{}, stats: Stats{Nodes: 1}}
}

// Insert records path as an exact spelling owned by group. Inserting the same
// spelling for a second, different group is an error.
func (ix *Index[G]) Insert(path string, group G) error {
	if path == "" {
		return errors.New(errors.ErrDefinitionInvalid, "cannot insert an empty spelling")
	}

	n := ix.walk(path)
	if n.terminal {
		if n.group == group {
			return nil
		}
		return errors.Newf(errors.ErrDefinitionConflict, "spelling %q is claimed by two groups", path).
			WithDetail("spelling", path).
			WithDetail("existing", n.group).
			WithDetail("group", group)
	}

	n.terminal = true
	n.group = group
	ix.stats.Terminals++
	return nil
}

// AddValidator attaches a validator for group at path. An empty path attaches
// it to the root.
func (ix *Index[G]) AddValidator(path string, group G, v validators.Validator) error {
	if v.Match == nil {
		return errors.Newf(errors.ErrValidatorInvalid, "validator %q at %q has no predicate", v.Name, path)
	}

	n := ix.root
	if path != "" {
		n = ix.walk(path)
	}
	n.validators = append(n.validators, entry[G]{group: group, validator: v})
	ix.stats.Validators++
	return nil
}

// Stats returns counters describing the index.
func (ix *Index[G]) Stats() Stats {
	return ix.stats
}

// Lookup classifies base. It never allocates.
func (ix *Index[G]) Lookup(base string) (G, bool) {
	m, ok := ix.Explain(base)
	return m.Group, ok
}

// Explain classifies base and reports which node and validator decided.
func (ix *Index[G]) Explain(base string) (Match[G], bool) {
	if base == "" {
		return Match[G]{}, false
	}
	return ix.root.find(base, 0, false)
}

func (ix *Index[G]) walk(path string) *node[G] {
	n := ix.root
	for _, seg := range strings.Split(path, "-") {
		child, ok := n.children[seg]
		if !ok {
			if n.children == nil {
				n.children = make(map[string]*node[G])
			}
			child = &node[G]{}
			n.children[seg] = child
			ix.stats.Nodes++
		}
		n = child
	}
	return n
}

// find resolves base[off:]. done is set once every segment has been consumed.
func (n *node[G]) find(base string, off int, done bool) (Match[G], bool) {
	if done {
		if n.terminal {
			return Match[G]{Group: n.group, Path: base}, true
		}
		return Match[G]{}, false
	}

	rest := base[off:]
	seg, _, more := strings.Cut(rest, "-")
	if child, ok := n.children[seg]; ok {
		next := off + len(seg)
		if more {
			next++
		}
		if m, ok := child.find(base, next, !more); ok {
			return m, true
		}
	}

	for i := range n.validators {
		e := &n.validators[i]
		if e.validator.Match(rest) {
			return Match[G]{
				Group:     e.group,
				Path:      strings.TrimSuffix(base[:off], "-"),
				Value:     rest,
				Validator: e.validator.Name,
			}, true
		}
	}
	return Match[G]{}, false
}
