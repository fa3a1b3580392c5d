// Package config loads twmerge settings.
//
// Settings are layered, later sources overriding earlier ones:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user file, $XDG_CONFIG_HOME/twmerge/config.{toml,yaml,yml}
//  3. the project file in the working directory (twmerge.toml,
//     .twmerge.toml, twmerge.yaml, .twmerge.yaml)
//  4. an explicit file given with --config
//  5. TWMERGE_* environment variables (TWMERGE_CACHE_SIZE sets cache.size)
//
// Lists such as extend.groups are appended across layers rather than
// replaced, so a project can add groups on top of the user's.
package config
