package view_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/twmerge/pkg/parser"
	"github.com/arthur-debert/twmerge/pkg/resolver"
	"github.com/arthur-debert/twmerge/pkg/taxonomy"
	"github.com/arthur-debert/twmerge/pkg/ui/view"
)

func TestNewClass(t *testing.T) {
	tx := taxonomy.Default()
	p := parser.New(tx, "", "")

	tests := []struct {
		token     string
		group     string
		modifiers []string
		important bool
		validator string
		value     string
		known     bool
	}{
		{token: "p-4", group: "p", validator: "length", value: "4", known: true},
		{token: "block", group: "display", known: true},
		{token: "md:hover:!bg-[#fff]", group: "bg-color", modifiers: []string{"md", "hover"}, important: true, validator: "arbitrary-color", value: "[#fff]", known: true},
		{token: "text-lg/7", group: "font-size", validator: "tshirt", value: "lg", known: true},
		{token: "not-a-class", known: false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			c := view.NewClass(p.Parse(tt.token), tx)
			assert.Equal(t, tt.token, c.Raw)
			assert.Equal(t, tt.group, c.Group)
			assert.Equal(t, tt.modifiers, c.Modifiers)
			assert.Equal(t, tt.important, c.Important)
			assert.Equal(t, tt.known, c.Known)
			assert.Equal(t, tt.validator, c.Validator)
			assert.Equal(t, tt.value, c.Value)
		})
	}
}

func TestNewClassArbitraryModifiers(t *testing.T) {
	tx := taxonomy.Default()
	p := parser.New(tx, "", "")

	c := view.NewClass(p.Parse("[&>*]:hover:p-2"), tx)
	assert.Equal(t, []string{"[&>*]", "hover"}, c.Modifiers)
	assert.Equal(t, []bool{true, false}, c.ArbitraryModifiers)

	c = view.NewClass(p.Parse("md:hover:p-2"), tx)
	assert.Nil(t, c.ArbitraryModifiers)
}

func TestNewExplanation(t *testing.T) {
	tx := taxonomy.Default()
	r := resolver.New(parser.New(tx, "", ""))
	input := "p-1 unknown p-2"

	e := view.NewExplanation(input, r.Resolve(input), r.Explain(input), tx)
	assert.Equal(t, "unknown p-2", e.Output)
	require.Len(t, e.Decisions, 3)

	assert.False(t, e.Decisions[0].Kept)
	assert.Equal(t, 2, e.Decisions[0].OverriddenBy)
	assert.True(t, e.Decisions[1].Kept)
	assert.False(t, e.Decisions[1].Class.Known)
	assert.Equal(t, -1, e.Decisions[2].OverriddenBy)
}

func TestNewGroups(t *testing.T) {
	tx := taxonomy.Default()

	all := view.NewGroups(tx, "")
	assert.Len(t, all.Groups, all.Total)

	touch := view.NewGroups(tx, "touch")
	require.NotEmpty(t, touch.Groups)
	for _, g := range touch.Groups {
		assert.Contains(t, g.ID, "touch")
	}
	assert.Equal(t, all.Total, touch.Total)

	none := view.NewGroups(tx, "no-such-group")
	assert.NotNil(t, none.Groups)
	assert.Empty(t, none.Groups)
}
