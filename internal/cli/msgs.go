package cli

// Command descriptions
const (
	MsgRootShort = "Merge Tailwind CSS classes without style conflicts"
	MsgRootLong  = `twmerge merges Tailwind CSS class lists so that later classes win over
earlier conflicting ones, while classes it does not recognise are kept as
written.

Run 'twmerge help topics' for how conflicts, variants and configuration work.`

	MsgMergeShort = "Merge class lists, resolving conflicts"
	MsgMergeLong  = `Merge joins its arguments into one class list and drops every class that a
later class overrides. Without arguments, each line of standard input is
merged on its own.`
	MsgMergeExample = `  # Later classes win
  twmerge merge "px-2 py-1 bg-red hover:bg-dark-red" "p-3 bg-[#B91C1C]"

  # One merge per input line
  cat classes.txt | twmerge merge`

	MsgJoinShort = "Join class lists without resolving conflicts"
	MsgJoinLong  = `Join concatenates its arguments, collapsing whitespace. No class is dropped.
Without arguments, each line of standard input is joined on its own.`

	MsgClassifyShort = "Show the group of each class"
	MsgClassifyLong  = `Classify parses each class into its variants, important flag and base, and
shows the group the base belongs to. Classes without a group are opaque and
never take part in conflicts.`

	MsgExplainShort = "Show why each class was kept or dropped"
	MsgExplainLong  = `Explain merges like 'merge' and lists every input class with its group and
whether it survived. Dropped classes name the class that overrode them.`

	MsgGroupsShort = "List class groups and what they override"
	MsgGroupsLong  = `Groups lists the class groups known to the merger, with the groups each one
overrides. An optional argument keeps only groups whose id contains it.`

	MsgConfigShort = "Print the effective configuration"
	MsgConfigLong  = `Config prints the settings after every layer has been applied: defaults,
user file, project file, --config, environment and flags.`

	MsgVersionShort = "Print version information"
	MsgVersionLong  = "Print version information including commit hash and build date"

	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man page"
)

// Flag descriptions
const (
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig    = "Read settings from this file as well"
	MsgFlagPrefix    = "Tailwind prefix classes must carry, e.g. tw-"
	MsgFlagSeparator = "Variant separator"
	MsgFlagFormat    = "Output format: auto, term, text or json"
	MsgFlagNoCache   = "Disable the result cache"
	MsgFlagAs        = "Config output syntax: toml, yaml or json"
	MsgFlagDefaults  = "Print the built-in defaults instead"
)

// Output and error messages
const (
	MsgVersionFormat = "twmerge version %s\n"
	MsgCommitFormat  = "  commit: %s\n"
	MsgBuiltFormat   = "  built:  %s\n"
	MsgSourcesFormat = "# sources: %s\n"

	MsgErrReadInput  = "failed to read standard input"
	MsgErrLoadConfig = "failed to load configuration"
	MsgErrConfigAs   = "unknown config syntax %q (want toml, yaml or json)"
	MsgErrShell      = "unknown shell %q"
)
