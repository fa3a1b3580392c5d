package config

import (
	"bytes"
	"strings"
	"unicode"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/twmerge/pkg/errors"
	"github.com/arthur-debert/twmerge/pkg/taxonomy"
	"github.com/arthur-debert/twmerge/pkg/validators"
)

// Settings is the resolved configuration.
type Settings struct {
	Prefix    string `koanf:"prefix" toml:"prefix" yaml:"prefix" json:"prefix"`
	Separator string `koanf:"separator" toml:"separator" yaml:"separator" json:"separator"`
	Cache     Cache  `koanf:"cache" toml:"cache" yaml:"cache" json:"cache"`
	Extend    Extend `koanf:"extend" toml:"extend" yaml:"extend" json:"extend"`

	// Sources lists the files and providers that were loaded, in order.
	Sources []string `koanf:"-" toml:"-" yaml:"-" json:"sources,omitempty"`
}

// Cache holds result cache settings.
type Cache struct {
	Size int `koanf:"size" toml:"size" yaml:"size" json:"size"`
}

// Extend adds groups and conflicts to the default taxonomy.
type Extend struct {
	Groups           []GroupSpec         `koanf:"groups" toml:"groups" yaml:"groups" json:"groups"`
	Conflicts        map[string][]string `koanf:"conflicts" toml:"conflicts" yaml:"conflicts" json:"conflicts"`
	PostfixConflicts map[string][]string `koanf:"postfix_conflicts" toml:"postfix_conflicts" yaml:"postfix_conflicts" json:"postfix_conflicts"`
}

// GroupSpec declares a class group in a config file. Values are literal
// suffixes after Prefix, Validators name entries of the validator catalogue.
// Without a prefix, values are full class names.
type GroupSpec struct {
	ID         string   `koanf:"id" toml:"id" yaml:"id" json:"id"`
	Prefix     string   `koanf:"prefix" toml:"prefix,omitempty" yaml:"prefix,omitempty" json:"prefix,omitempty"`
	Values     []string `koanf:"values" toml:"values,omitempty" yaml:"values,omitempty" json:"values,omitempty"`
	Validators []string `koanf:"validators" toml:"validators,omitempty" yaml:"validators,omitempty" json:"validators,omitempty"`
}

// Validate checks the settings for values that cannot work.
func (s *Settings) Validate() error {
	var errs []error

	if s.Separator == "" {
		errs = append(errs, errors.New(errors.ErrConfigValid, "separator must not be empty"))
	}
	if strings.IndexFunc(s.Separator, unicode.IsSpace) >= 0 {
		errs = append(errs, errors.Newf(errors.ErrConfigValid, "separator %q contains whitespace", s.Separator).
			WithDetail("key", "separator"))
	}
	if strings.IndexFunc(s.Prefix, unicode.IsSpace) >= 0 {
		errs = append(errs, errors.Newf(errors.ErrConfigValid, "prefix %q contains whitespace", s.Prefix).
			WithDetail("key", "prefix"))
	}
	if s.Cache.Size < 0 {
		errs = append(errs, errors.Newf(errors.ErrConfigValid, "cache.size must be zero or positive, got %d", s.Cache.Size).
			WithDetail("key", "cache.size"))
	}
	for i, g := range s.Extend.Groups {
		if g.ID == "" {
			errs = append(errs, errors.Newf(errors.ErrConfigValid, "extend.groups[%d] has no id", i))
			continue
		}
		if len(g.Values) == 0 && len(g.Validators) == 0 {
			errs = append(errs, errors.Newf(errors.ErrConfigValid, "group %q needs values or validators", g.ID).
				WithDetail("group", g.ID))
		}
	}

	return errors.Join(errs...)
}

// Extension converts the extend section into a taxonomy configuration,
// resolving validator names through the catalogue.
func (s *Settings) Extension() (taxonomy.Config, error) {
	ext := taxonomy.Config{
		Conflicts:        toGroupMap(s.Extend.Conflicts),
		PostfixConflicts: toGroupMap(s.Extend.PostfixConflicts),
	}

	var errs []error
	for _, g := range s.Extend.Groups {
		items := make([]any, 0, len(g.Values)+len(g.Validators))
		for _, v := range g.Values {
			items = append(items, v)
		}
		for _, name := range g.Validators {
			v, err := validators.Lookup(name)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			items = append(items, v)
		}
		ext.Groups = append(ext.Groups, taxonomy.NewGroup(taxonomy.ClassGroupID(g.ID), taxonomy.Sub(g.Prefix, items...)))
	}

	if err := errors.Join(errs...); err != nil {
		return taxonomy.Config{}, errors.Wrap(err, errors.ErrConfigValid, "invalid extend section")
	}
	return ext, nil
}

// TaxonomyConfig returns the default taxonomy extended by these settings.
func (s *Settings) TaxonomyConfig() (taxonomy.Config, error) {
	ext, err := s.Extension()
	if err != nil {
		return taxonomy.Config{}, err
	}
	return taxonomy.DefaultConfig().Extend(ext), nil
}

// HasExtensions reports whether the settings change the default taxonomy.
func (s *Settings) HasExtensions() bool {
	return len(s.Extend.Groups) > 0 || len(s.Extend.Conflicts) > 0 || len(s.Extend.PostfixConflicts) > 0
}

// ToTOML renders the settings as TOML.
func (s *Settings) ToTOML() ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(s); err != nil {
		return nil, errors.Wrap(err, errors.ErrRender, "failed to encode settings as TOML")
	}
	return buf.Bytes(), nil
}

// ToYAML renders the settings as YAML.
func (s *Settings) ToYAML() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return nil, errors.Wrap(err, errors.ErrRender, "failed to encode settings as YAML")
	}
	if err := enc.Close(); err != nil {
		return nil, errors.Wrap(err, errors.ErrRender, "failed to encode settings as YAML")
	}
	return buf.Bytes(), nil
}

func toGroupMap(in map[string][]string) map[taxonomy.ClassGroupID][]taxonomy.ClassGroupID {
	if len(in) == 0 {
		return nil
	}
	out := make(map[taxonomy.ClassGroupID][]taxonomy.ClassGroupID, len(in))
	for k, targets := range in {
		for _, v := range targets {
			out[taxonomy.ClassGroupID(k)] = append(out[taxonomy.ClassGroupID(k)], taxonomy.ClassGroupID(v))
		}
	}
	return out
}
