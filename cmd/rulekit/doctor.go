package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/fenwick-labs/rulekit/internal/doctor"
	"github.com/fenwick-labs/rulekit/internal/messages"
)

var doctorRun = doctor.Run

func newDoctorCmd() *cobra.Command {
	var diffLines int

	cmd := &cobra.Command{
		Use:   messages.DoctorUse,
		Short: messages.DoctorShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := resolveTarget(args[0])
			if err != nil {
				return err
			}
			results, err := doctorRun(target, doctor.Options{DiffMaxLines: diffLines})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, result := range results {
				printResult(out, result)
			}
			if doctor.HasFailure(results) {
				_, _ = fmt.Fprintln(out, color.RedString(messages.DoctorFailureSummary))
				return &SilentExitError{Code: 1}
			}
			_, _ = fmt.Fprintln(out, color.GreenString(messages.DoctorSuccessSummary))
			return nil
		},
	}

	cmd.Flags().IntVar(&diffLines, "diff-lines", doctor.DefaultDiffMaxLines, messages.DoctorFlagDiffLines)

	return cmd
}

func printResult(out io.Writer, result doctor.Result) {
	var status string
	switch result.Status {
	case doctor.StatusOK:
		status = color.GreenString(messages.DoctorStatusOKLabel)
	case doctor.StatusWarn:
		status = color.YellowString(messages.DoctorStatusWarnLabel)
	default:
		status = color.RedString(messages.DoctorStatusFailLabel)
	}
	_, _ = fmt.Fprintf(out, "[%s] %s: %s\n", status, result.CheckName, result.Message)
	if result.Recommendation != "" {
		_, _ = fmt.Fprintf(out, messages.DoctorRecommendationFmt+"\n", result.Recommendation)
	}
}
