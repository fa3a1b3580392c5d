package config

import (
	_ "embed"
	stderrors "errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/twmerge/pkg/errors"
	"github.com/arthur-debert/twmerge/pkg/logging"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// EnvPrefix prefixes the environment variables read by Load.
const EnvPrefix = "TWMERGE_"

// ProjectFiles are looked up, in order, in the project directory. The first
// one found is loaded.
var ProjectFiles = []string{"twmerge.toml", ".twmerge.toml", "twmerge.yaml", ".twmerge.yaml"}

var userFiles = []string{"config.toml", "config.yaml", "config.yml"}

// Options selects the sources Load reads.
type Options struct {
	// ConfigFile is an explicit file, loaded after the user and project files.
	// A missing explicit file is an error.
	ConfigFile string
	// ProjectDir is searched for ProjectFiles. Defaults to the working directory.
	ProjectDir string
	// UserDir holds the user file. Defaults to $XDG_CONFIG_HOME/twmerge.
	UserDir string
	// SkipUser, SkipProject and SkipEnv leave the matching layer out.
	SkipUser    bool
	SkipProject bool
	SkipEnv     bool
}

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("not implemented")
}

// Defaults returns the embedded default settings.
func Defaults() *Settings {
	s, err := Load(Options{SkipUser: true, SkipProject: true, SkipEnv: true})
	if err != nil {
		// the embedded file is part of the build
		panic(err)
	}
	return s
}

// DefaultsContent returns the embedded defaults file.
func DefaultsContent() string {
	return string(defaultConfig)
}

// UserDir returns the directory holding the user config file.
func UserDir() string {
	return filepath.Join(xdg.ConfigHome, "twmerge")
}

// Load resolves settings from every layer selected by opts.
func Load(opts Options) (*Settings, error) {
	logger := logging.GetLogger("config")
	done := logging.LogOperationStart(logger, "load-config")
	defer done()

	merged, err := parseLayer(&rawBytesProvider{bytes: defaultConfig}, toml.Parser())
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse embedded defaults")
	}
	sources := []string{"defaults"}

	load := func(path string) error {
		layer, err := loadFile(path)
		if err != nil {
			return err
		}
		mergeMaps(merged, layer)
		sources = append(sources, path)
		logger.Debug().Str("path", path).Msg("Loaded config file")
		return nil
	}

	if !opts.SkipUser {
		dir := opts.UserDir
		if dir == "" {
			dir = UserDir()
		}
		if path := firstExisting(dir, userFiles); path != "" {
			if err := load(path); err != nil {
				return nil, err
			}
		}
	}

	if !opts.SkipProject {
		dir := opts.ProjectDir
		if dir == "" {
			dir = "."
		}
		if path := firstExisting(dir, ProjectFiles); path != "" {
			if err := load(path); err != nil {
				return nil, err
			}
		}
	}

	if opts.ConfigFile != "" {
		if _, err := os.Stat(opts.ConfigFile); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not found", opts.ConfigFile).
				WithDetail("path", opts.ConfigFile)
		}
		if err := load(opts.ConfigFile); err != nil {
			return nil, err
		}
	}

	if !opts.SkipEnv {
		layer, err := parseLayer(env.Provider(EnvPrefix, ".", envKey), nil)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to read environment")
		}
		if len(layer) > 0 {
			mergeMaps(merged, layer)
			sources = append(sources, "env")
		}
	}

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(merged, "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load merged config")
	}

	var s Settings
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &s,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
				stringToListMapHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &s, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	s.Sources = sources

	if err := s.Validate(); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigValid, "invalid configuration")
	}
	return &s, nil
}

// envKey maps TWMERGE_CACHE_SIZE to cache.size.
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
}

func loadFile(path string) (map[string]interface{}, error) {
	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		parser = toml.Parser()
	case ".yaml", ".yml":
		parser = yaml.Parser()
	default:
		return nil, errors.Newf(errors.ErrConfigParse, "unsupported config format %q", filepath.Ext(path)).
			WithDetail("path", path)
	}

	layer, err := parseLayer(file.Provider(path), parser)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
			WithDetail("path", path)
	}
	return layer, nil
}

func parseLayer(p koanf.Provider, parser koanf.Parser) (map[string]interface{}, error) {
	k := koanf.New(".")
	if err := k.Load(p, parser); err != nil {
		return nil, err
	}
	return k.Raw(), nil
}

func firstExisting(dir string, names []string) string {
	for _, name := range names {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// mergeMaps merges src into dest. Nested maps merge, lists append, anything
// else is replaced.
func mergeMaps(dest, src map[string]interface{}) {
	for key, srcVal := range src {
		destVal, destOk := dest[key]
		if !destOk {
			dest[key] = srcVal
			continue
		}

		if srcMap, srcOk := srcVal.(map[string]interface{}); srcOk {
			if destMap, destOk := destVal.(map[string]interface{}); destOk {
				mergeMaps(destMap, srcMap)
				continue
			}
		}

		if isSlice(srcVal) && isSlice(destVal) {
			dest[key] = append(toInterfaceSlice(destVal), toInterfaceSlice(srcVal)...)
			continue
		}

		dest[key] = srcVal
	}
}

func isSlice(v interface{}) bool {
	switch v.(type) {
	case []interface{}, []string, []map[string]interface{}:
		return true
	default:
		return false
	}
}

func toInterfaceSlice(v interface{}) []interface{} {
	switch s := v.(type) {
	case []interface{}:
		return s
	case []string:
		out := make([]interface{}, len(s))
		for i, x := range s {
			out[i] = x
		}
		return out
	case []map[string]interface{}:
		out := make([]interface{}, len(s))
		for i, x := range s {
			out[i] = x
		}
		return out
	default:
		return nil
	}
}

// stringToListMapHookFunc lets conflict tables be written as
// group = "a,b" as well as group = ["a", "b"].
func stringToListMapHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.Map || t.Kind() != reflect.Map || t.Elem().Kind() != reflect.Slice {
			return data, nil
		}
		m, ok := data.(map[string]interface{})
		if !ok {
			return data, nil
		}
		out := make(map[string]interface{}, len(m))
		for k, v := range m {
			if s, ok := v.(string); ok {
				out[k] = splitList(s)
				continue
			}
			out[k] = v
		}
		return out, nil
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
