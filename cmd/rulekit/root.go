package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"github.com/fenwick-labs/rulekit/internal/deploy"
	"github.com/fenwick-labs/rulekit/internal/messages"
	"github.com/fenwick-labs/rulekit/internal/picker"
	"github.com/fenwick-labs/rulekit/internal/templates"
	"github.com/fenwick-labs/rulekit/internal/terminal"
)

var deployRun = deploy.Run
var isTerminal = terminal.IsInteractive
var pickRules = func(rules []templates.Rule) ([]string, error) {
	return picker.HuhUI{}.SelectRules(rules)
}

func newRootCmd() *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := resolveTarget(args[0])
			if err != nil {
				return err
			}
			opts := deploy.Options{Out: cmd.OutOrStdout()}
			if interactive {
				if !isTerminal() {
					return errors.New(messages.RootInteractiveRequiresTerminal)
				}
				rules, err := templates.Rules()
				if err != nil {
					return err
				}
				selected, err := pickRules(rules)
				if err != nil {
					return err
				}
				opts.Rules = selected
			}
			return deployRun(target, opts)
		},
	}

	cmd.Flags().BoolVar(&interactive, "interactive", false, messages.RootFlagInteractive)

	cmd.AddCommand(newDoctorCmd())
	cmd.AddCommand(newMcpCmd())

	return cmd
}

// resolveTarget expands a leading ~ and makes the target path absolute.
func resolveTarget(arg string) (string, error) {
	expanded, err := homedir.Expand(arg)
	if err != nil {
		return "", fmt.Errorf(messages.ResolveTargetErrFmt, arg, err)
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", fmt.Errorf(messages.ResolveTargetErrFmt, arg, err)
	}
	return abs, nil
}
