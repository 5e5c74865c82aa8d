package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ToLiMaTh/wabt/pkg/hexdump"
)

// hexdumpCmd prints a hex dump of a file, or of stdin when no file is given.
var hexdumpCmd = &cobra.Command{
	Use:   "hexdump [file]",
	Short: "print a hex dump of a file or stdin",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var data []byte
		var err error
		if len(args) == 1 {
			data, err = os.ReadFile(args[0])
		} else {
			data, err = io.ReadAll(cmd.InOrStdin())
		}
		if err != nil {
			return err
		}
		return hexdump.Write(cmd.OutOrStdout(), data)
	},
}

func init() {
	rootCmd.AddCommand(hexdumpCmd)
}
