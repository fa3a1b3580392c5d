package validators

import (
	"testing"

	"github.com/arthur-debert/twmerge/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidators(t *testing.T) {
	tests := []struct {
		name  string
		match func(string) bool
		yes   []string
		no    []string
	}{
		{
			name:  "number",
			match: IsNumber,
			yes:   []string{"1", "1.5", "0.25", "-2", "1e3", "100"},
			no:    []string{"", "one", "1px", "1/2", "e", "-", "Inf", "NaN", "1-2"},
		},
		{
			name:  "integer",
			match: IsInteger,
			yes:   []string{"1", "10", "-3", "2.0"},
			no:    []string{"1.5", "", "auto"},
		},
		{
			name:  "percent",
			match: IsPercent,
			yes:   []string{"50%", "12.5%"},
			no:    []string{"%", "50", "a%"},
		},
		{
			name:  "fraction",
			match: IsFraction,
			yes:   []string{"1/2", "11/12"},
			no:    []string{"1/", "/2", "1/2/3", "a/b", "1.5/2"},
		},
		{
			name:  "length",
			match: IsLength,
			yes:   []string{"4", "0.5", "px", "full", "screen", "1/3"},
			no:    []string{"auto", "red-500", "[10px]"},
		},
		{
			name:  "tshirt",
			match: IsTshirtSize,
			yes:   []string{"xs", "sm", "md", "lg", "xl", "2xl", "7xl", "2.5xl"},
			no:    []string{"xxl", "2", "large"},
		},
		{
			name:  "arbitrary value",
			match: IsArbitraryValue,
			yes:   []string{"[10px]", "[color:red]", "[var(--x)]"},
			no:    []string{"[]", "10px", "[10px", "10px]"},
		},
		{
			name:  "arbitrary length",
			match: IsArbitraryLength,
			yes:   []string{"[10px]", "[3.5rem]", "[calc(100%-1rem)]", "[0]", "[length:var(--x)]", "[50%]", "[100dvh]"},
			no:    []string{"[red]", "[rgb(10px,0,0)]", "[color:red]", "10px", "[number:2]"},
		},
		{
			name:  "arbitrary number",
			match: IsArbitraryNumber,
			yes:   []string{"[0.5]", "[10]", "[number:var(--n)]"},
			no:    []string{"[10px]", "[length:2]", "0.5"},
		},
		{
			name:  "arbitrary size",
			match: IsArbitrarySize,
			yes:   []string{"[length:200px]", "[size:cover]", "[percentage:50%]"},
			no:    []string{"[200px]", "[position:top]"},
		},
		{
			name:  "arbitrary position",
			match: IsArbitraryPosition,
			yes:   []string{"[position:center_top]"},
			no:    []string{"[center_top]", "[length:1px]"},
		},
		{
			name:  "arbitrary image",
			match: IsArbitraryImage,
			yes:   []string{"[url(/img.png)]", "[linear-gradient(red,blue)]", "[repeating-radial-gradient(red,blue)]", "[image:var(--img)]", "[url:var(--u)]"},
			no:    []string{"[#fff]", "[10px]", "url(/img.png)"},
		},
		{
			name:  "arbitrary shadow",
			match: IsArbitraryShadow,
			yes:   []string{"[0_35px_60px_-15px_rgba(0,0,0,0.3)]", "[inset_0_1px_0_0]", "[0_0]"},
			no:    []string{"[shadow:0_0]", "[red]", "[10px]"},
		},
		{
			name:  "arbitrary color",
			match: IsArbitraryColor,
			yes:   []string{"[#B91C1C]", "[#fff]", "[rgb(255,0,0)]", "[hsl(0,100%,50%)]", "[rebeccapurple]", "[color:var(--brand)]"},
			no:    []string{"[10px]", "[url(/a.png)]", "[length:2px]", "#fff"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, v := range tt.yes {
				assert.True(t, tt.match(v), "%s should accept %q", tt.name, v)
			}
			for _, v := range tt.no {
				assert.False(t, tt.match(v), "%s should reject %q", tt.name, v)
			}
		})
	}
}

func TestAnyAndNever(t *testing.T) {
	assert.True(t, Any.Match("anything-at-all"))
	assert.True(t, Any.Match(""))
	assert.False(t, Never.Match("x"))
}

func TestSplitArbitrary(t *testing.T) {
	tests := []struct {
		in      string
		label   string
		content string
		ok      bool
	}{
		{"[10px]", "", "10px", true},
		{"[length:10px]", "length", "10px", true},
		{"[url(http://x)]", "", "url(http://x)", true},
		{"[:x]", "", ":x", true},
		{"[a:]", "", "a:", true},
		{"[]", "", "", false},
		{"x", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			label, content, ok := splitArbitrary(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.label, label)
			assert.Equal(t, tt.content, content)
		})
	}
}

func TestCatalogue(t *testing.T) {
	assert.True(t, Catalogue.Frozen())

	for _, name := range []string{"any", "number", "length", "arbitrary-length", "arbitrary-color", "color", "arbitrary", "size"} {
		v, err := Lookup(name)
		require.NoError(t, err, name)
		assert.NotNil(t, v.Match, name)
	}

	v, err := Lookup("color")
	require.NoError(t, err)
	assert.Equal(t, "arbitrary-color", v.Name)

	_, err = Lookup("hex")
	assert.True(t, errors.IsErrorCode(err, errors.ErrValidatorNotFound), "got %v", err)
}

func TestNumberRejectsWithoutAllocating(t *testing.T) {
	allocs := testing.AllocsPerRun(100, func() {
		_ = IsNumber("red-500")
		_ = IsLength("auto")
		_ = IsArbitraryValue("[10px]")
	})
	assert.Zero(t, allocs)
}
