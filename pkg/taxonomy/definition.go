package taxonomy

import (
	"fmt"

	"github.com/arthur-debert/twmerge/pkg/validators"
)

// ClassGroupID names a set of utilities that conflict with each other,
// for example "p", "px", "inset-x", "touch-x" or "display".
type ClassGroupID string

type defKind int

const (
	kindLiteral defKind = iota
	kindValidator
	kindNested
	kindInvalid
)

// Definition is one accepted spelling rule of a group: a literal suffix, a
// validator over the remaining value, or a nested prefix with its own rules.
type Definition struct {
	kind      defKind
	literal   string
	validator validators.Validator
	prefix    string
	children  []Definition
	err       error
}

// Group ties an id to its definitions.
type Group struct {
	ID          ClassGroupID
	Definitions []Definition
}

// Lit returns literal definitions. Inside Sub an empty literal stands for
// the prefix itself ("shadow" in Sub("shadow", "")).
func Lit(values ...string) []Definition {
	defs := make([]Definition, len(values))
	for i, v := range values {
		defs[i] = Definition{kind: kindLiteral, literal: v}
	}
	return defs
}

// Val returns a validator definition.
func Val(v validators.Validator) Definition {
	return Definition{kind: kindValidator, validator: v}
}

// Sub nests items under a hyphen-separated prefix.
func Sub(prefix string, items ...any) Definition {
	return Definition{kind: kindNested, prefix: prefix, children: Defs(items...)}
}

// Defs normalises a mixed list of strings, string slices, validators and
// definitions. Unsupported items turn into invalid definitions that Build
// reports.
func Defs(items ...any) []Definition {
	defs := make([]Definition, 0, len(items))
	for _, item := range items {
		switch v := item.(type) {
		case string:
			defs = append(defs, Definition{kind: kindLiteral, literal: v})
		case []string:
			defs = append(defs, Lit(v...)...)
		case validators.Validator:
			defs = append(defs, Val(v))
		case Definition:
			defs = append(defs, v)
		case []Definition:
			defs = append(defs, v...)
		default:
			defs = append(defs, Definition{kind: kindInvalid, err: fmt.Errorf("unsupported definition item %T", item)})
		}
	}
	return defs
}

// NewGroup builds a group from a mixed item list, see Defs.
func NewGroup(id ClassGroupID, items ...any) Group {
	return Group{ID: id, Definitions: Defs(items...)}
}
