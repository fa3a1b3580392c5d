// Package view holds the render-ready results produced by CLI commands. The
// renderers in pkg/ui switch on these types.
package view

import (
	"strings"

	"github.com/arthur-debert/twmerge/pkg/parser"
	"github.com/arthur-debert/twmerge/pkg/resolver"
	"github.com/arthur-debert/twmerge/pkg/taxonomy"
)

// MergeResult is the outcome of merging one set of inputs
type MergeResult struct {
	Inputs []string `json:"inputs"`
	Output string   `json:"output"`
}

// Class describes one parsed token
type Class struct {
	Raw       string   `json:"raw"`
	Variant   string   `json:"variant,omitempty"`
	Modifiers []string `json:"modifiers,omitempty"`
	// ArbitraryModifiers marks bracketed variants such as "[&>*]".
	ArbitraryModifiers []bool `json:"arbitrary_modifiers,omitempty"`
	Important          bool   `json:"important,omitempty"`
	Base               string `json:"base"`
	Postfix            bool   `json:"postfix,omitempty"`
	Group              string `json:"group,omitempty"`
	Known              bool   `json:"known"`
	Validator          string `json:"validator,omitempty"`
	Value              string `json:"value,omitempty"`
}

// Decision is the fate of one token in an explanation
type Decision struct {
	Index        int   `json:"index"`
	Class        Class `json:"class"`
	Kept         bool  `json:"kept"`
	OverriddenBy int   `json:"overridden_by"`
}

// Explanation lists every token of a merge with its decision
type Explanation struct {
	Input     string     `json:"input"`
	Output    string     `json:"output"`
	Decisions []Decision `json:"decisions"`
}

// ClassifyResult is the classification of individual classes
type ClassifyResult struct {
	Classes []Class `json:"classes"`
}

// Group is one entry of the group listing
type Group struct {
	ID               string   `json:"id"`
	Overrides        []string `json:"overrides,omitempty"`
	PostfixOverrides []string `json:"postfix_overrides,omitempty"`
}

// GroupsResult lists taxonomy groups
type GroupsResult struct {
	Groups []Group `json:"groups"`
	// Total is the number of groups before filtering.
	Total int `json:"total"`
}

// NewClass converts a parse, adding validator detail from tx when the class
// is known.
func NewClass(pc parser.ParsedClass, tx *taxonomy.Taxonomy) Class {
	c := Class{
		Raw:       pc.Raw,
		Variant:   pc.Variant,
		Modifiers: pc.Modifiers(),
		Important: pc.Important,
		Base:      pc.Base,
		Postfix:   pc.Postfix,
		Group:     string(pc.Group),
		Known:     pc.Known,
	}
	for i, mod := range c.Modifiers {
		if parser.IsArbitraryVariant(mod) {
			if c.ArbitraryModifiers == nil {
				c.ArbitraryModifiers = make([]bool, len(c.Modifiers))
			}
			c.ArbitraryModifiers[i] = true
		}
	}
	if pc.Known && tx != nil {
		if detail, ok := tx.Explain(classifiedBase(pc)); ok && detail.Group == pc.Group {
			c.Validator = detail.Validator
			c.Value = detail.Value
		}
	}
	return c
}

// classifiedBase is the part of the base the taxonomy matched. Prefixed
// classes are left as they are and simply carry no validator detail.
func classifiedBase(pc parser.ParsedClass) string {
	base := pc.Base
	if pc.Postfix {
		if i := strings.LastIndexByte(base, '/'); i > 0 {
			base = base[:i]
		}
	}
	return base
}

// NewExplanation converts resolver decisions
func NewExplanation(input, output string, decisions []resolver.Decision, tx *taxonomy.Taxonomy) Explanation {
	e := Explanation{
		Input:     input,
		Output:    output,
		Decisions: make([]Decision, 0, len(decisions)),
	}
	for _, d := range decisions {
		e.Decisions = append(e.Decisions, Decision{
			Index:        d.Index,
			Class:        NewClass(d.Class, tx),
			Kept:         d.Kept,
			OverriddenBy: d.OverriddenBy,
		})
	}
	return e
}

// NewGroups lists the groups of tx whose id contains filter
func NewGroups(tx *taxonomy.Taxonomy, filter string) GroupsResult {
	all := tx.Groups()
	res := GroupsResult{Groups: []Group{}, Total: len(all)}
	for _, id := range all {
		if filter != "" && !strings.Contains(string(id), filter) {
			continue
		}
		res.Groups = append(res.Groups, Group{
			ID:               string(id),
			Overrides:        toStrings(tx.Conflicts(id)),
			PostfixOverrides: toStrings(tx.PostfixOverrides(id)),
		})
	}
	return res
}

func toStrings(ids []taxonomy.ClassGroupID) []string {
	if len(ids) == 0 {
		return nil
	}
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = string(id)
	}
	return out
}
