// Package validators holds the value-shape predicates used by class groups.
//
// A predicate receives the part of a class name that follows the matched
// prefix: "4" for p-4, "1/2" for w-1/2, "[10px]" for w-[10px]. Arbitrary
// values are written in brackets and may carry a type hint before a colon,
// as in "[length:var(--gap)]"; when a hint is present it alone decides the
// match.
//
// Every built-in predicate is registered by name in Catalogue so that
// configuration files can attach them to custom class groups.
package validators
