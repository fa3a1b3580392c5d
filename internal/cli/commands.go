package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/twmerge/internal/version"
	"github.com/arthur-debert/twmerge/pkg/config"
	"github.com/arthur-debert/twmerge/pkg/errors"
	"github.com/arthur-debert/twmerge/pkg/parser"
	"github.com/arthur-debert/twmerge/pkg/twmerge"
	"github.com/arthur-debert/twmerge/pkg/ui/view"
)

const maxLine = 1 << 20

// eachInput calls fn once with args, or once per stdin line when args is empty
func eachInput(cmd *cobra.Command, args []string, fn func(inputs []string) error) error {
	if len(args) > 0 {
		return fn(args)
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	scanner.Buffer(make([]byte, 0, 64*1024), maxLine)
	for scanner.Scan() {
		if err := fn([]string{scanner.Text()}); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, errors.ErrInvalidInput, MsgErrReadInput)
	}
	return nil
}

func newMergeCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "merge [classes...]",
		Short:   MsgMergeShort,
		Long:    MsgMergeLong,
		Example: MsgMergeExample,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := o.merger(cmd)
			if err != nil {
				return err
			}
			r, err := o.renderer(cmd)
			if err != nil {
				return err
			}
			return eachInput(cmd, args, func(inputs []string) error {
				return r.RenderResult(&view.MergeResult{Inputs: inputs, Output: m.Merge(inputs...)})
			})
		},
	}
}

func newJoinCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "join [classes...]",
		Short: MsgJoinShort,
		Long:  MsgJoinLong,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := o.renderer(cmd)
			if err != nil {
				return err
			}
			return eachInput(cmd, args, func(inputs []string) error {
				return r.RenderResult(&view.MergeResult{Inputs: inputs, Output: twmerge.Join(inputs...)})
			})
		},
	}
}

func newClassifyCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "classify <class>...",
		Short: MsgClassifyShort,
		Long:  MsgClassifyLong,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := o.merger(cmd)
			if err != nil {
				return err
			}
			r, err := o.renderer(cmd)
			if err != nil {
				return err
			}

			res := &view.ClassifyResult{Classes: []view.Class{}}
			for tok := range parser.Fields(args...) {
				res.Classes = append(res.Classes, view.NewClass(m.Classify(tok), m.Taxonomy()))
			}
			return r.RenderResult(res)
		},
	}
}

func newExplainCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "explain [classes...]",
		Short: MsgExplainShort,
		Long:  MsgExplainLong,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := o.merger(cmd)
			if err != nil {
				return err
			}
			r, err := o.renderer(cmd)
			if err != nil {
				return err
			}
			return eachInput(cmd, args, func(inputs []string) error {
				input := strings.Join(inputs, " ")
				e := view.NewExplanation(input, m.MergeString(input), m.Explain(input), m.Taxonomy())
				return r.RenderResult(&e)
			})
		},
	}
}

func newGroupsCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "groups [filter]",
		Short: MsgGroupsShort,
		Long:  MsgGroupsLong,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := o.merger(cmd)
			if err != nil {
				return err
			}
			r, err := o.renderer(cmd)
			if err != nil {
				return err
			}

			filter := ""
			if len(args) == 1 {
				filter = args[0]
			}
			groups := view.NewGroups(m.Taxonomy(), filter)
			return r.RenderResult(&groups)
		},
	}
}

func newConfigCmd(o *rootOptions) *cobra.Command {
	var (
		as       string
		defaults bool
	)

	cmd := &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
		Long:  MsgConfigLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if defaults {
				_, err := fmt.Fprint(out, config.DefaultsContent())
				return err
			}

			s, err := o.settings(cmd)
			if err != nil {
				return err
			}

			as = strings.ToLower(as)
			var data []byte
			switch as {
			case "toml", "":
				data, err = s.ToTOML()
			case "yaml", "yml":
				data, err = s.ToYAML()
			case "json":
				data, err = json.MarshalIndent(s, "", "  ")
				data = append(data, '\n')
			default:
				return errors.Newf(errors.ErrInvalidInput, MsgErrConfigAs, as)
			}
			if err != nil {
				return err
			}

			if as != "json" {
				fmt.Fprintf(out, MsgSourcesFormat, strings.Join(s.Sources, ", "))
			}
			_, err = out.Write(data)
			return err
		},
	}

	cmd.Flags().StringVar(&as, "as", "toml", MsgFlagAs)
	cmd.Flags().BoolVar(&defaults, "defaults", false, MsgFlagDefaults)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Long:  MsgVersionLong,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, MsgVersionFormat, version.Version)
			fmt.Fprintf(out, MsgCommitFormat, version.Commit)
			fmt.Fprintf(out, MsgBuiltFormat, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: MsgCompletionShort,
		Long: `To load completions:

Bash:
  $ source <(twmerge completion bash)

Zsh:
  $ twmerge completion zsh > "${fpath[1]}/_twmerge"

Fish:
  $ twmerge completion fish | source

PowerShell:
  PS> twmerge completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return errors.Newf(errors.ErrInvalidInput, MsgErrShell, args[0])
		},
	}
}

func newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:    "man",
		Short:  MsgManShort,
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			header := &doc.GenManHeader{
				Title:   "TWMERGE",
				Section: "1",
				Source:  "twmerge " + version.Version,
				Manual:  "twmerge manual",
			}
			return doc.GenMan(cmd.Root(), header, cmd.OutOrStdout())
		},
	}
}
