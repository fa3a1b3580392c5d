package resolver

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/twmerge/pkg/parser"
	"github.com/arthur-debert/twmerge/pkg/taxonomy"
)

func newResolver() *Resolver {
	return New(parser.New(taxonomy.Default(), "", ""))
}

func TestResolve(t *testing.T) {
	r := newResolver()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"specific after general keeps both", "p-4 py-2", "p-4 py-2"},
		{"general after specific wins", "py-2 px-4 p-4", "p-4"},
		{"duplicate collapses", "p-4 p-4", "p-4"},
		{"later value wins", "p-2 p-4", "p-4"},
		{"later value wins regardless of spelling", "p-4 p-2", "p-2"},
		{"ring then shadow", "ring shadow", "ring shadow"},
		{"shadow then ring", "shadow ring", "shadow ring"},
		{"variant isolation", "inset-x-1 hover:left-1 inset-1", "hover:left-1 inset-1"},
		{"cross group conflict", "overflow-auto inline line-clamp-1", "line-clamp-1"},
		{"cross group conflict reversed", "line-clamp-1 overflow-auto inline", "line-clamp-1 overflow-auto inline"},
		{"component override", "px-2 py-1 bg-red hover:bg-dark-red p-3 bg-[#B91C1C]", "hover:bg-dark-red p-3 bg-[#B91C1C]"},
		{"postfix overrides leading", "leading-9 text-lg/7", "text-lg/7"},
		{"leading after font size", "text-lg leading-9", "text-lg leading-9"},
		{"important is its own scope", "!p-4 p-2", "!p-4 p-2"},
		{"important duplicates collapse", "!p-4 !p-2", "!p-2"},
		{"variants are order sensitive", "hover:focus:p-2 focus:hover:p-4", "hover:focus:p-2 focus:hover:p-4"},
		{"same variants conflict", "hover:focus:p-2 hover:focus:p-4", "hover:focus:p-4"},
		{"opaque tokens are never deduplicated", "foo foo bar", "foo foo bar"},
		{"opaque tokens are kept in place", "custom p-2 other p-4", "custom other p-4"},
		{"negative values share the group", "mt-2 -mt-4", "-mt-4"},
		{"arbitrary values", "p-[3px] p-[4px]", "p-[4px]"},
		{"arbitrary properties", "[mask-type:luminance] [mask-type:alpha]", "[mask-type:alpha]"},
		{"distinct arbitrary properties", "[mask-type:luminance] [--x:1]", "[mask-type:luminance] [--x:1]"},
		{"touch pan after touch", "touch-auto touch-pan-x", "touch-pan-x"},
		{"touch after touch pan", "touch-pan-x touch-auto", "touch-auto"},
		{"border width hierarchy", "border-t-2 border-2", "border-2"},
		{"border color and width coexist", "border-2 border-red-500", "border-2 border-red-500"},
		{"malformed tokens are opaque", "p-[4px p-2 p-3", "p-[4px p-3"},
		{"whitespace is normalised", "  p-4 \n\t m-2 ", "p-4 m-2"},
		{"empty", "", ""},
		{"only whitespace", " \t\n ", ""},
		{"arbitrary variant", "[&>*]:p-2 [&>*]:p-4 p-1", "[&>*]:p-4 p-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Resolve(tt.input))
		})
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	r := newResolver()

	inputs := []string{
		"py-2 px-4 p-4 hover:p-2 custom",
		"overflow-auto inline line-clamp-1 line-clamp-2",
		"px-2 py-1 bg-red hover:bg-dark-red p-3 bg-[#B91C1C]",
		"!p-4 p-2 !p-3 text-lg/7 leading-3",
		"a b a b p-1 [x:y] [x:z]",
	}
	for _, in := range inputs {
		once := r.Resolve(in)
		assert.Equal(t, once, r.Resolve(once), "input %q", in)
	}
}

func TestResolveManyDuplicates(t *testing.T) {
	r := newResolver()

	in := strings.TrimSpace(strings.Repeat("p-4 ", 100))
	out, stats := r.ResolveStats(in)
	assert.Equal(t, "p-4", out)
	assert.Equal(t, 100, stats.Tokens)
	assert.Equal(t, 99, stats.Discarded)
}

func TestResolveConcurrent(t *testing.T) {
	r := newResolver()

	done := make(chan string, 16)
	for i := 0; i < 16; i++ {
		go func() {
			var last string
			for j := 0; j < 200; j++ {
				last = r.Resolve("py-2 px-4 p-4 hover:p-1")
			}
			done <- last
		}()
	}
	for i := 0; i < 16; i++ {
		assert.Equal(t, "p-4 hover:p-1", <-done)
	}
}

func TestExplain(t *testing.T) {
	r := newResolver()

	got := r.Explain("px-2 custom p-4 hover:p-1")
	require.Len(t, got, 4)

	assert.False(t, got[0].Kept)
	assert.Equal(t, 2, got[0].OverriddenBy)
	assert.Equal(t, taxonomy.ClassGroupID("px"), got[0].Class.Group)

	assert.True(t, got[1].Kept)
	assert.False(t, got[1].Class.Known)
	assert.Equal(t, -1, got[1].OverriddenBy)

	assert.True(t, got[2].Kept)
	assert.True(t, got[3].Kept)

	for i, d := range got {
		assert.Equal(t, i, d.Index)
	}
}

func TestExplainMatchesResolve(t *testing.T) {
	r := newResolver()

	in := "px-2 py-1 bg-red hover:bg-dark-red p-3 bg-[#B91C1C] leading-9 text-lg/7"
	var kept []string
	for _, d := range r.Explain(in) {
		if d.Kept {
			kept = append(kept, d.Class.Raw)
		}
	}
	assert.Equal(t, r.Resolve(in), strings.Join(kept, " "))
}

func TestResolveWithPrefix(t *testing.T) {
	r := New(parser.New(taxonomy.Default(), "tw-", ""))

	assert.Equal(t, "tw-p-4 p-2 p-1", r.Resolve("tw-px-2 tw-p-4 p-2 p-1"))
}
