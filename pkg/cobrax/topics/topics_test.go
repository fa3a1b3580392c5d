package topics

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"help/conflicts.md":       {Data: []byte("# How conflicts work\n\nLater classes win.")},
		"help/option-prefix.md":   {Data: []byte("# The --prefix flag\n\nSets the prefix.")},
		"help/notes.txt":          {Data: []byte("plain notes")},
		"help/draft.txxt":         {Data: []byte("not a topic by default")},
		"help/data.json":          {Data: []byte("{}")},
		"help/nested/variants.md": {Data: []byte("Variants are order sensitive.")},
	}
}

func TestScan(t *testing.T) {
	t.Run("default extensions", func(t *testing.T) {
		tm := New(testFS())
		require.NoError(t, tm.Scan())

		assert.Equal(t, []string{"conflicts", "notes", "option-prefix", "variants"}, tm.ListTopics())

		topic, ok := tm.GetTopic("conflicts")
		require.True(t, ok)
		assert.Equal(t, "How conflicts work", topic.Title)
		assert.Equal(t, "help/conflicts.md", topic.Path)
		assert.Contains(t, topic.Content, "Later classes win.")

		nested, ok := tm.GetTopic("variants")
		require.True(t, ok)
		assert.Empty(t, nested.Title)
	})

	t.Run("custom extensions", func(t *testing.T) {
		tm := NewWithOptions(testFS(), Options{Extensions: []string{".txxt"}})
		require.NoError(t, tm.Scan())
		assert.Equal(t, []string{"draft"}, tm.ListTopics())
	})

	t.Run("nil file system", func(t *testing.T) {
		tm := New(nil)
		require.NoError(t, tm.Scan())
		assert.Empty(t, tm.ListTopics())
	})
}

func TestGetTopic(t *testing.T) {
	tm := New(testFS())
	require.NoError(t, tm.Scan())

	tests := []struct {
		query string
		want  string
		found bool
	}{
		{query: "conflicts", want: "conflicts", found: true},
		{query: "--prefix", want: "option-prefix", found: true},
		{query: "-prefix", want: "option-prefix", found: true},
		{query: "prefix", want: "option-prefix", found: true},
		{query: "option-prefix", want: "option-prefix", found: true},
		{query: "missing", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			topic, ok := tm.GetTopic(tt.query)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.want, topic.Name)
			}
		})
	}
}

func TestWriteList(t *testing.T) {
	tm := New(testFS())
	require.NoError(t, tm.Scan())

	var buf bytes.Buffer
	tm.WriteList(&buf, "twmerge")
	out := buf.String()

	assert.Contains(t, out, "General topics:")
	assert.Contains(t, out, "How conflicts work")
	assert.Contains(t, out, "Option topics:")
	assert.Contains(t, out, "--prefix")
	assert.Contains(t, out, "Use 'twmerge help <topic>'")
	assert.Less(t, strings.Index(out, "General topics:"), strings.Index(out, "Option topics:"))

	buf.Reset()
	New(nil).WriteList(&buf, "twmerge")
	assert.Equal(t, "No help topics available.\n", buf.String())
}

type upperRenderer struct{}

func (upperRenderer) Render(content, ext string) string {
	return strings.ToUpper(content) + ext
}

func newRoot(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	root := &cobra.Command{Use: "tool", Short: "A test tool"}
	root.AddCommand(&cobra.Command{
		Use:   "run",
		Short: "Run something",
		Run:   func(*cobra.Command, []string) {},
	})
	require.NoError(t, InitializeWithOptions(root, testFS(), Options{Renderer: upperRenderer{}}))

	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	return root, &buf
}

func TestHelpCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		contains []string
	}{
		{
			name:     "topic",
			args:     []string{"help", "conflicts"},
			contains: []string{"LATER CLASSES WIN.", ".md"},
		},
		{
			name:     "option topic",
			args:     []string{"help", "prefix"},
			contains: []string{"SETS THE PREFIX."},
		},
		{
			name:     "topic list",
			args:     []string{"help", "topics"},
			contains: []string{"Available help topics:", "Use 'tool help <topic>'"},
		},
		{
			name:     "command help",
			args:     []string{"help", "run"},
			contains: []string{"Run something"},
		},
		{
			name:     "root help",
			args:     []string{"help"},
			contains: []string{"A test tool", "run"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, buf := newRoot(t)
			root.SetArgs(tt.args)
			require.NoError(t, root.Execute())
			for _, want := range tt.contains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestHelpCompletion(t *testing.T) {
	root, _ := newRoot(t)
	root.InitDefaultHelpCmd()
	help, _, err := root.Find([]string{"help"})
	require.NoError(t, err)
	require.NotNil(t, help.ValidArgsFunction)

	completions, directive := help.ValidArgsFunction(help, nil, "")
	assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
	assert.Contains(t, completions, "topics")
	assert.Contains(t, completions, "run")
	assert.Contains(t, completions, "conflicts")
}

func TestPlainRenderer(t *testing.T) {
	assert.Equal(t, "# x", (&PlainRenderer{}).Render("# x", ".md"))
}

func TestGlamourRendererPassesThroughNonMarkdown(t *testing.T) {
	r := NewGlamourRenderer()
	assert.Equal(t, "plain *text*", r.Render("plain *text*", ".txt"))

	out := (&GlamourRenderer{Style: "notty", Width: 40}).Render("# Title\n\nBody text.", ".md")
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "Body text.")
}
