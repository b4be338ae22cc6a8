package cli

import (
	"fmt"

	"github.com/arthur-debert/stamp/internal/version"
	"github.com/arthur-debert/stamp/pkg/commands"
	"github.com/arthur-debert/stamp/pkg/core"
	"github.com/arthur-debert/stamp/pkg/logging"
	"github.com/arthur-debert/stamp/pkg/ui"
	"github.com/arthur-debert/stamp/pkg/ui/confirmations"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

const (
	groupPresets = "presets"
	groupLinks   = "links"
)

// globalOptions holds the persistent flags shared by every command
type globalOptions struct {
	verbosity int
	home      string
	format    string
}

// session is what a command works with once flags are parsed
type session struct {
	env      *core.Env
	renderer ui.Renderer
	cmd      *cobra.Command
}

// open builds the environment and picks a renderer. The --format flag wins
// over output.format from the settings.
func (o *globalOptions) open(cmd *cobra.Command, overrides map[string]interface{}) (*session, error) {
	env, err := core.NewEnv(core.EnvOptions{
		BaseDir:   o.home,
		Overrides: overrides,
	})
	if err != nil {
		return nil, err
	}

	name := env.Config.Output.Format
	if o.format != "" {
		name = o.format
	}
	format, err := ui.ParseFormat(name)
	if err != nil {
		return nil, err
	}
	renderer, err := ui.NewRenderer(format, cmd.OutOrStdout())
	if err != nil {
		return nil, err
	}

	return &session{env: env, renderer: renderer, cmd: cmd}, nil
}

// confirm prompts on stderr so structured stdout stays parseable
func (s *session) confirm(msg string) (bool, error) {
	return confirmations.Confirm(s.cmd.InOrStdin(), s.cmd.ErrOrStderr(), msg)
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:           "stamp",
		Short:         MsgRootShort,
		Long:          MsgRootLong,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLoggerTo(opts.verbosity, cmd.ErrOrStderr())
			log.Debug().Str("command", cmd.CommandPath()).Strs("args", args).Msg("Command started")
		},
	}

	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&opts.home, "home", "", MsgFlagHome)
	rootCmd.PersistentFlags().StringVar(&opts.format, "format", "", MsgFlagFormat)

	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.DisableAutoGenTag = true

	initTemplateFormatting()
	rootCmd.SetUsageTemplate(usageTemplate)

	rootCmd.AddGroup(
		&cobra.Group{ID: groupLinks, Title: MsgGroupLinks},
		&cobra.Group{ID: groupPresets, Title: MsgGroupPresets},
	)

	rootCmd.AddCommand(newLinkCmd(opts))
	rootCmd.AddCommand(newUnlinkCmd(opts))
	rootCmd.AddCommand(newCommitCmd(opts))
	rootCmd.AddCommand(newListCmd(opts))
	rootCmd.AddCommand(newShowCmd(opts))
	rootCmd.AddCommand(newDeleteCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// presetCompletion completes stored preset names. With single set, only the
// first positional argument is completed.
func presetCompletion(opts *globalOptions, single bool) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if single && len(args) > 0 {
			return nil, cobra.ShellCompDirectiveDefault
		}
		env, err := core.NewEnv(core.EnvOptions{BaseDir: opts.home})
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		names, err := env.Store.List()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Long:  MsgVersionLong,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "stamp version %s\n", version.Version)
			if version.Commit != "unknown" {
				fmt.Fprintf(out, "Commit: %s\n", version.Commit)
			}
			if version.Date != "unknown" {
				fmt.Fprintf(out, "Built: %s\n", version.Date)
			}
		},
	}
}

func newLinkCmd(opts *globalOptions) *cobra.Command {
	var yes, sync, quiet, rollback bool

	cmd := &cobra.Command{
		Use:     "link <preset> [target]",
		Short:   MsgLinkShort,
		Long:    MsgLinkLong,
		Example: MsgLinkExample,
		GroupID: groupLinks,
		Args:    cobra.RangeArgs(1, 2),

		ValidArgsFunction: presetCompletion(opts, true),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := "."
			if len(args) > 1 {
				target = args[1]
			}

			var overrides map[string]interface{}
			if cmd.Flags().Changed("rollback") {
				overrides = map[string]interface{}{"link.rollback": rollback}
			}
			s, err := opts.open(cmd, overrides)
			if err != nil {
				return err
			}

			if !yes && s.env.Config.Link.ConfirmNonEmpty {
				needed, err := commands.TargetNeedsConfirmation(s.env, target)
				if err != nil {
					return err
				}
				if needed {
					ok, err := s.confirm(fmt.Sprintf(MsgConfirmNonEmpty, target))
					if err != nil {
						return err
					}
					if !ok {
						return s.renderer.RenderMessage(MsgOperationAborted)
					}
				}
			}

			result, err := commands.LinkPreset(commands.LinkOptions{
				Env:    s.env,
				Preset: args[0],
				Target: target,
				Track:  sync,
			})
			if err != nil {
				return err
			}
			if quiet {
				return nil
			}
			return s.renderer.RenderResult(result)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, MsgFlagYes)
	cmd.Flags().BoolVarP(&sync, "sync", "s", false, MsgFlagSync)
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, MsgFlagQuiet)
	cmd.Flags().BoolVar(&rollback, "rollback", false, MsgFlagRollback)

	return cmd
}

func newUnlinkCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "unlink [target]",
		Short:   MsgUnlinkShort,
		Long:    MsgUnlinkLong,
		GroupID: groupLinks,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := "."
			if len(args) > 0 {
				target = args[0]
			}

			s, err := opts.open(cmd, nil)
			if err != nil {
				return err
			}

			result, err := commands.UnlinkTarget(commands.UnlinkOptions{
				Env:    s.env,
				Target: target,
			})
			if err != nil {
				return err
			}
			return s.renderer.RenderResult(result)
		},
	}
}

func newCommitCmd(opts *globalOptions) *cobra.Command {
	var (
		patterns []string
		source   string
		sync     bool
	)

	cmd := &cobra.Command{
		Use:     "commit <name>",
		Short:   MsgCommitShort,
		Long:    MsgCommitLong,
		Example: MsgCommitExample,
		GroupID: groupPresets,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd, nil)
			if err != nil {
				return err
			}

			result, err := commands.CommitPreset(commands.CommitOptions{
				Env:      s.env,
				Name:     args[0],
				Source:   source,
				Patterns: patterns,
				Sync:     sync,
			})
			if err != nil {
				return err
			}
			return s.renderer.RenderResult(result)
		},
	}

	cmd.Flags().StringSliceVarP(&patterns, "patterns", "p", nil, MsgFlagPatterns)
	cmd.Flags().StringVar(&source, "source", ".", MsgFlagSource)
	cmd.Flags().BoolVarP(&sync, "sync", "s", false, MsgFlagResync)

	return cmd
}

func newListCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   MsgListShort,
		GroupID: groupPresets,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd, nil)
			if err != nil {
				return err
			}

			result, err := commands.ListPresets(commands.ListOptions{Env: s.env})
			if err != nil {
				return err
			}
			return s.renderer.RenderResult(result)
		},
	}
}

func newShowCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "show <preset>",
		Short:   MsgShowShort,
		GroupID: groupPresets,
		Args:    cobra.ExactArgs(1),

		ValidArgsFunction: presetCompletion(opts, true),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd, nil)
			if err != nil {
				return err
			}

			result, err := commands.ShowPreset(commands.ShowOptions{
				Env:  s.env,
				Name: args[0],
			})
			if err != nil {
				return err
			}
			return s.renderer.RenderResult(result)
		},
	}
}

func newDeleteCmd(opts *globalOptions) *cobra.Command {
	var yes, unlink bool

	cmd := &cobra.Command{
		Use:     "delete <name>...",
		Aliases: []string{"rm"},
		Short:   MsgDeleteShort,
		Long:    MsgDeleteLong,
		Example: MsgDeleteExample,
		GroupID: groupPresets,
		Args:    cobra.MinimumNArgs(1),

		ValidArgsFunction: presetCompletion(opts, false),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd, nil)
			if err != nil {
				return err
			}

			plan, err := commands.PlanDelete(commands.PlanDeleteOptions{
				Env:   s.env,
				Names: args,
			})
			if err != nil {
				return err
			}

			if !yes {
				// The plan goes to stderr alongside the prompt
				notice, err := ui.NewRenderer(ui.FormatText, cmd.ErrOrStderr())
				if err != nil {
					return err
				}
				if err := notice.RenderResult(plan); err != nil {
					return err
				}
				if plan.HasLinks() && !unlink {
					if err := notice.RenderMessage(MsgKeepSymlinks); err != nil {
						return err
					}
				}

				ok, err := s.confirm(fmt.Sprintf(MsgConfirmDelete, len(plan.Presets)))
				if err != nil {
					return err
				}
				if !ok {
					return s.renderer.RenderMessage(MsgOperationAborted)
				}
			}

			result, err := commands.DeletePresets(commands.DeleteOptions{
				Env:    s.env,
				Plan:   plan,
				Unlink: unlink,
			})
			if err != nil {
				return err
			}
			return s.renderer.RenderResult(result)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, MsgFlagYes)
	cmd.Flags().BoolVarP(&unlink, "unlink", "u", false, MsgFlagUnlink)

	return cmd
}
