package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ToLiMaTh/wabt/pkg/executable"
)

// runCmd wraps a tool binary: it captures the child's output, forwards its
// stdout, and reports nonzero exits and signal terminations as errors.
var runCmd = &cobra.Command{
	Use:   "run <executable> [args...]",
	Short: "run an executable and report exit or signal failures",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := []executable.Option{
			executable.WithStdout(cmd.OutOrStdout()),
			executable.WithErrorCmdline(!viper.GetBool("basename-errors")),
		}
		if viper.GetBool("verbose") {
			opts = append(opts, executable.WithLogger(newLogger()))
		}
		exe := executable.New(args[0], nil, opts...)
		for _, arg := range viper.GetStringSlice("append") {
			exe.AppendArg(arg)
		}
		return exe.RunWithArgs(args[1:]...)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("basename-errors", false, "Report failures with the executable base name instead of the full command line. [$WABT_BASENAME_ERRORS]")
	viper.MustBindEnv("basename-errors", "WABT_BASENAME_ERRORS")
	runCmd.Flags().StringSliceP("append", "a", nil, "Extra argument appended after the positional arguments (repeatable).")

	if err := viper.BindPFlags(runCmd.Flags()); err != nil {
		panic(fmt.Sprintf("error while binding pflags: %v", err))
	}
}
