package ui_test

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/twmerge/pkg/errors"
	"github.com/arthur-debert/twmerge/pkg/twmerge"
	"github.com/arthur-debert/twmerge/pkg/ui"
	"github.com/arthur-debert/twmerge/pkg/ui/view"
)

func explanation(t *testing.T, input string) *view.Explanation {
	t.Helper()
	m := twmerge.MustNew(twmerge.Options{DisableCache: true})
	e := view.NewExplanation(input, m.MergeString(input), m.Explain(input), m.Taxonomy())
	return &e
}

func TestNewRenderer(t *testing.T) {
	tests := []struct {
		name    string
		format  ui.Format
		wantErr bool
	}{
		{name: "terminal", format: ui.FormatTerminal},
		{name: "text", format: ui.FormatText},
		{name: "json", format: ui.FormatJSON},
		{name: "auto on a buffer", format: ui.FormatAuto},
		{name: "unknown", format: ui.Format(999), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			renderer, err := ui.NewRenderer(tt.format, &bytes.Buffer{})
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, renderer)
				assert.Contains(t, err.Error(), "unknown format")
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, renderer)
		})
	}
}

func TestAutoOnPipeIsText(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()

	renderer, err := ui.NewRenderer(ui.FormatAuto, w)
	require.NoError(t, err)
	require.NoError(t, renderer.RenderResult(&view.MergeResult{Output: "p-2"}))
	require.NoError(t, w.Close())

	out, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "p-2\n", string(out))
}

func TestRenderersHandleEveryView(t *testing.T) {
	m := twmerge.MustNew(twmerge.Options{})
	groups := view.NewGroups(m.Taxonomy(), "inset")
	results := []interface{}{
		&view.MergeResult{Inputs: []string{"p-1", "p-2"}, Output: "p-2"},
		explanation(t, "px-2 p-3 foo"),
		&view.ClassifyResult{Classes: []view.Class{view.NewClass(m.Classify("hover:!bg-[#fff]"), m.Taxonomy())}},
		&groups,
	}

	for _, format := range []ui.Format{ui.FormatTerminal, ui.FormatText, ui.FormatJSON} {
		t.Run(format.String(), func(t *testing.T) {
			buf := &bytes.Buffer{}
			renderer, err := ui.NewRenderer(format, buf)
			require.NoError(t, err)

			for _, result := range results {
				require.NoError(t, renderer.RenderResult(result))
			}
			require.NoError(t, renderer.RenderMessage("done"))
			require.NoError(t, renderer.RenderError(assert.AnError))
			assert.NotEmpty(t, buf.String())
		})
	}
}

func TestTextRenderer(t *testing.T) {
	buf := &bytes.Buffer{}
	renderer, err := ui.NewRenderer(ui.FormatText, buf)
	require.NoError(t, err)

	t.Run("merge", func(t *testing.T) {
		buf.Reset()
		require.NoError(t, renderer.RenderResult(&view.MergeResult{Output: "p-3 bg-red"}))
		assert.Equal(t, "p-3 bg-red\n", buf.String())
	})

	t.Run("explanation", func(t *testing.T) {
		buf.Reset()
		require.NoError(t, renderer.RenderResult(explanation(t, "px-2 p-3 foo")))
		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 4)
		assert.Equal(t, []string{"0", "dropped", "px-2", "px", "by", "p-3"}, strings.Fields(lines[0]))
		assert.Equal(t, []string{"1", "kept", "p-3", "p", "-"}, strings.Fields(lines[1]))
		assert.Equal(t, []string{"2", "opaque", "foo", "-", "-"}, strings.Fields(lines[2]))
		assert.Equal(t, "result: p-3 foo", lines[3])
	})

	t.Run("groups", func(t *testing.T) {
		buf.Reset()
		m := twmerge.MustNew(twmerge.Options{})
		groups := view.NewGroups(m.Taxonomy(), "font-size")
		require.NoError(t, renderer.RenderResult(&groups))
		assert.Equal(t, []string{"font-size", "leading", "leading"}, strings.Fields(buf.String()))
	})

	t.Run("message", func(t *testing.T) {
		buf.Reset()
		require.NoError(t, renderer.RenderMessage("hello world"))
		assert.Equal(t, "hello world\n", buf.String())
	})

	t.Run("error", func(t *testing.T) {
		buf.Reset()
		require.NoError(t, renderer.RenderError(assert.AnError))
		assert.Equal(t, "error: "+assert.AnError.Error()+"\n", buf.String())
	})

	t.Run("unknown type", func(t *testing.T) {
		err := renderer.RenderResult(map[string]string{"foo": "bar"})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrRender))
	})
}

func TestJSONRenderer(t *testing.T) {
	buf := &bytes.Buffer{}
	renderer, err := ui.NewRenderer(ui.FormatJSON, buf)
	require.NoError(t, err)

	t.Run("explanation", func(t *testing.T) {
		buf.Reset()
		require.NoError(t, renderer.RenderResult(explanation(t, "px-2 p-3")))

		var got view.Explanation
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, "p-3", got.Output)
		require.Len(t, got.Decisions, 2)
		assert.False(t, got.Decisions[0].Kept)
		assert.Equal(t, 1, got.Decisions[0].OverriddenBy)
		assert.Equal(t, "px", got.Decisions[0].Class.Group)
	})

	t.Run("brackets are not escaped", func(t *testing.T) {
		buf.Reset()
		require.NoError(t, renderer.RenderResult(&view.MergeResult{Output: "[&>*]:p-2"}))
		assert.Contains(t, buf.String(), `"[&>*]:p-2"`)
	})

	t.Run("coded error", func(t *testing.T) {
		buf.Reset()
		cause := errors.New(errors.ErrGroupUnknown, "no such group").WithDetail("group", "nope")
		require.NoError(t, renderer.RenderError(cause))

		var got map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, string(errors.ErrGroupUnknown), got["code"])
		assert.Equal(t, map[string]interface{}{"group": "nope"}, got["details"])
	})

	t.Run("plain error", func(t *testing.T) {
		buf.Reset()
		require.NoError(t, renderer.RenderError(assert.AnError))

		var got map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, assert.AnError.Error(), got["error"])
		assert.NotContains(t, got, "code")
	})
}

func TestTerminalRenderer(t *testing.T) {
	buf := &bytes.Buffer{}
	renderer, err := ui.NewRenderer(ui.FormatTerminal, buf)
	require.NoError(t, err)

	t.Run("explanation", func(t *testing.T) {
		buf.Reset()
		require.NoError(t, renderer.RenderResult(explanation(t, "hover:px-2 hover:p-3")))
		out := buf.String()
		assert.Contains(t, out, "px-2")
		assert.Contains(t, out, "overridden by hover:p-3")
		assert.Contains(t, out, "=>")
	})

	t.Run("groups table", func(t *testing.T) {
		buf.Reset()
		m := twmerge.MustNew(twmerge.Options{})
		groups := view.NewGroups(m.Taxonomy(), "touch")
		require.NoError(t, renderer.RenderResult(&groups))
		out := buf.String()
		assert.Contains(t, out, "Overrides")
		assert.Contains(t, out, "touch-pz")
		assert.Contains(t, out, "of "+strconv.Itoa(groups.Total)+" groups")
	})

	t.Run("unknown type", func(t *testing.T) {
		err := renderer.RenderResult(42)
		assert.True(t, errors.IsErrorCode(err, errors.ErrRender))
	})
}
