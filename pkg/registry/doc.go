// Package registry provides a generic, type-safe registry of named items.
// The validator catalogue is built on it so configuration files can refer
// to value-shape predicates by name. A registry can be frozen once it is
// fully populated; frozen registries are read-only and safe to share.
package registry
