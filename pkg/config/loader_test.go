package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/twmerge/pkg/errors"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func isolated(t *testing.T) Options {
	t.Helper()
	return Options{
		UserDir:    t.TempDir(),
		ProjectDir: t.TempDir(),
		SkipEnv:    true,
	}
}

func TestDefaults(t *testing.T) {
	s := Defaults()

	assert.Equal(t, "", s.Prefix)
	assert.Equal(t, ":", s.Separator)
	assert.Equal(t, 500, s.Cache.Size)
	assert.Empty(t, s.Extend.Groups)
	assert.False(t, s.HasExtensions())
	assert.Equal(t, []string{"defaults"}, s.Sources)
	assert.Contains(t, DefaultsContent(), "[cache]")
}

func TestLoadLayers(t *testing.T) {
	opts := isolated(t)

	writeFile(t, opts.UserDir, "config.toml", `
prefix = "tw-"

[cache]
size = 100

[[extend.groups]]
id = "btn"
prefix = "btn"
values = ["primary", "secondary"]
`)
	writeFile(t, opts.ProjectDir, "twmerge.yaml", `
cache:
  size: 50
extend:
  groups:
    - id: card
      prefix: card
      values: [flat, raised]
  conflicts:
    btn: [bg-color]
`)

	s, err := Load(opts)
	require.NoError(t, err)

	assert.Equal(t, "tw-", s.Prefix)
	assert.Equal(t, 50, s.Cache.Size)
	require.Len(t, s.Extend.Groups, 2)
	assert.Equal(t, "btn", s.Extend.Groups[0].ID)
	assert.Equal(t, "card", s.Extend.Groups[1].ID)
	assert.Equal(t, []string{"bg-color"}, s.Extend.Conflicts["btn"])
	assert.Len(t, s.Sources, 3)
	assert.True(t, s.HasExtensions())
}

func TestLoadExplicitFileWins(t *testing.T) {
	opts := isolated(t)
	writeFile(t, opts.ProjectDir, ".twmerge.toml", `separator = "_"`)
	opts.ConfigFile = writeFile(t, t.TempDir(), "custom.yml", "separator: \"__\"\n")

	s, err := Load(opts)
	require.NoError(t, err)
	assert.Equal(t, "__", s.Separator)
	assert.Equal(t, opts.ConfigFile, s.Sources[len(s.Sources)-1])
}

func TestLoadProjectFileOrder(t *testing.T) {
	opts := isolated(t)
	writeFile(t, opts.ProjectDir, "twmerge.toml", `prefix = "a-"`)
	writeFile(t, opts.ProjectDir, ".twmerge.toml", `prefix = "b-"`)

	s, err := Load(opts)
	require.NoError(t, err)
	assert.Equal(t, "a-", s.Prefix)
}

func TestLoadEnv(t *testing.T) {
	opts := isolated(t)
	opts.SkipEnv = false
	t.Setenv("TWMERGE_CACHE_SIZE", "42")
	t.Setenv("TWMERGE_PREFIX", "x-")

	s, err := Load(opts)
	require.NoError(t, err)
	assert.Equal(t, 42, s.Cache.Size)
	assert.Equal(t, "x-", s.Prefix)
	assert.Equal(t, "env", s.Sources[len(s.Sources)-1])
}

func TestLoadSkipsLayers(t *testing.T) {
	opts := isolated(t)
	opts.SkipUser = true
	opts.SkipProject = true
	writeFile(t, opts.UserDir, "config.toml", `prefix = "user-"`)
	writeFile(t, opts.ProjectDir, "twmerge.toml", `prefix = "project-"`)

	s, err := Load(opts)
	require.NoError(t, err)
	assert.Empty(t, s.Prefix)
}

func TestLoadConflictListAsString(t *testing.T) {
	opts := isolated(t)
	writeFile(t, opts.ProjectDir, "twmerge.toml", `
[[extend.groups]]
id = "btn"
prefix = "btn"
values = ["primary"]

[extend.conflicts]
btn = "bg-color, text-color"
`)

	s, err := Load(opts)
	require.NoError(t, err)
	assert.Equal(t, []string{"bg-color", "text-color"}, s.Extend.Conflicts["btn"])
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, opts *Options)
		code  errors.ErrorCode
	}{
		{
			name: "missing explicit file",
			setup: func(t *testing.T, opts *Options) {
				opts.ConfigFile = filepath.Join(t.TempDir(), "nope.toml")
			},
			code: errors.ErrConfigLoad,
		},
		{
			name: "unsupported extension",
			setup: func(t *testing.T, opts *Options) {
				opts.ConfigFile = writeFile(t, t.TempDir(), "config.ini", "prefix=x")
			},
			code: errors.ErrConfigParse,
		},
		{
			name: "broken toml",
			setup: func(t *testing.T, opts *Options) {
				writeFile(t, opts.ProjectDir, "twmerge.toml", "prefix = [")
			},
			code: errors.ErrConfigParse,
		},
		{
			name: "negative cache size",
			setup: func(t *testing.T, opts *Options) {
				writeFile(t, opts.ProjectDir, "twmerge.toml", "[cache]\nsize = -1\n")
			},
			code: errors.ErrConfigValid,
		},
		{
			name: "empty separator",
			setup: func(t *testing.T, opts *Options) {
				writeFile(t, opts.ProjectDir, "twmerge.toml", `separator = ""`)
			},
			code: errors.ErrConfigValid,
		},
		{
			name: "group without rules",
			setup: func(t *testing.T, opts *Options) {
				writeFile(t, opts.ProjectDir, "twmerge.toml", "[[extend.groups]]\nid = \"btn\"\n")
			},
			code: errors.ErrConfigValid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := isolated(t)
			tt.setup(t, &opts)

			s, err := Load(opts)
			require.Error(t, err)
			assert.Nil(t, s)
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)
		})
	}
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "cache.size", envKey("TWMERGE_CACHE_SIZE"))
	assert.Equal(t, "prefix", envKey("TWMERGE_PREFIX"))
}

func TestMergeMaps(t *testing.T) {
	dest := map[string]interface{}{
		"a":    1,
		"list": []interface{}{"x"},
		"nested": map[string]interface{}{
			"keep": true,
			"over": "old",
		},
	}
	mergeMaps(dest, map[string]interface{}{
		"a":    2,
		"list": []string{"y"},
		"nested": map[string]interface{}{
			"over": "new",
		},
		"fresh": "v",
	})

	assert.Equal(t, 2, dest["a"])
	assert.Equal(t, []interface{}{"x", "y"}, dest["list"])
	assert.Equal(t, map[string]interface{}{"keep": true, "over": "new"}, dest["nested"])
	assert.Equal(t, "v", dest["fresh"])
}
