// Package cli implements the twmerge command line.
package cli

import (
	"embed"
	"io/fs"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/twmerge/internal/version"
	"github.com/arthur-debert/twmerge/pkg/cobrax/topics"
	"github.com/arthur-debert/twmerge/pkg/config"
	"github.com/arthur-debert/twmerge/pkg/errors"
	"github.com/arthur-debert/twmerge/pkg/logging"
	"github.com/arthur-debert/twmerge/pkg/twmerge"
	"github.com/arthur-debert/twmerge/pkg/ui"
)

//go:embed help/*.md
var helpFS embed.FS

// rootOptions carries global flag values to the subcommands
type rootOptions struct {
	verbosity  int
	configFile string
	prefix     string
	separator  string
	format     string
	noCache    bool

	// load selects the config layers; ConfigFile is taken from the flag.
	load config.Options
}

// NewRootCmd returns the twmerge command tree
func NewRootCmd() *cobra.Command {
	return newRootCmd(logging.SetupLogger, config.Options{})
}

func newRootCmd(setupLogger func(int), load config.Options) *cobra.Command {
	opts := &rootOptions{load: load}

	rootCmd := &cobra.Command{
		Use:     "twmerge",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogger(opts.verbosity)
			logging.LogCommand(cmd.CommandPath(), args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	flags.StringVarP(&opts.configFile, "config", "c", "", MsgFlagConfig)
	flags.StringVar(&opts.prefix, "prefix", "", MsgFlagPrefix)
	flags.StringVar(&opts.separator, "separator", "", MsgFlagSeparator)
	flags.StringVarP(&opts.format, "format", "f", "auto", MsgFlagFormat)
	flags.BoolVar(&opts.noCache, "no-cache", false, MsgFlagNoCache)

	_ = rootCmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return ui.FormatNames, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(
		newMergeCmd(opts),
		newJoinCmd(opts),
		newClassifyCmd(opts),
		newExplainCmd(opts),
		newGroupsCmd(opts),
		newConfigCmd(opts),
		newVersionCmd(),
		newCompletionCmd(),
		newManCmd(),
	)

	help, err := fs.Sub(helpFS, "help")
	if err == nil {
		err = topics.InitializeWithOptions(rootCmd, help, topics.Options{
			Renderer: topics.NewGlamourRenderer(),
		})
	}
	if err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

// settings loads every config layer and applies the global flags on top
func (o *rootOptions) settings(cmd *cobra.Command) (*config.Settings, error) {
	load := o.load
	load.ConfigFile = o.configFile

	s, err := config.Load(load)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, MsgErrLoadConfig)
	}

	changed := false
	if cmd.Flags().Changed("prefix") {
		s.Prefix = o.prefix
		changed = true
	}
	if cmd.Flags().Changed("separator") {
		s.Separator = o.separator
		changed = true
	}
	if changed {
		s.Sources = append(s.Sources, "flags")
		if err := s.Validate(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (o *rootOptions) merger(cmd *cobra.Command) (*twmerge.Merger, error) {
	s, err := o.settings(cmd)
	if err != nil {
		return nil, err
	}
	logger := logging.WithFields(map[string]interface{}{
		"component": "cli",
		"sources":   s.Sources,
	})
	return twmerge.FromSettings(s, twmerge.Options{DisableCache: o.noCache, Logger: &logger})
}

func (o *rootOptions) renderer(cmd *cobra.Command) (ui.Renderer, error) {
	format, err := ui.ParseFormat(o.format)
	if err != nil {
		return nil, err
	}
	return ui.NewRenderer(format, cmd.OutOrStdout())
}
