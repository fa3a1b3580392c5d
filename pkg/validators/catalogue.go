package validators

import (
	"github.com/arthur-debert/twmerge/pkg/errors"
	"github.com/arthur-debert/twmerge/pkg/registry"
)

// Catalogue holds every built-in validator by name. It is frozen after init.
var Catalogue = registry.New[Validator]()

func init() {
	for _, v := range []Validator{
		Any, Never, Number, Integer, Percent, Length, Fraction, TshirtSize,
		ArbitraryValue, ArbitraryLength, ArbitraryNumber, ArbitrarySize,
		ArbitraryPosition, ArbitraryImage, ArbitraryShadow, ArbitraryColor,
	} {
		registry.MustRegister(Catalogue, v.Name, v)
	}

	// short spellings accepted in config files
	for alias, name := range map[string]string{
		"arbitrary": "arbitrary-value",
		"color":     "arbitrary-color",
		"size":      "tshirt",
	} {
		if err := Catalogue.Alias(alias, name); err != nil {
			panic(err)
		}
	}

	Catalogue.Freeze()
}

// Lookup returns the validator registered under name.
func Lookup(name string) (Validator, error) {
	v, err := Catalogue.Get(name)
	if err != nil {
		return Validator{}, errors.Wrapf(err, errors.ErrValidatorNotFound, "unknown validator %q", name).
			WithDetail("known", Catalogue.List())
	}
	return v, nil
}
