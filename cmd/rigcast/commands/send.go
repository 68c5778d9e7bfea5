package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var sendFile string

var sendCmd = &cobra.Command{
	Use:   "send [command ...]",
	Short: "Send raw commands to the runtime client",
	Long: `Sends one batch of raw command strings over the local socket and
reports the runtime's verdict. Commands come from the arguments, or one per
non-empty line of --file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		commands := args
		if sendFile != "" {
			data, err := os.ReadFile(sendFile)
			if err != nil {
				return fmt.Errorf("read command file: %w", err)
			}
			for _, line := range strings.Split(string(data), "\n") {
				line = strings.TrimSpace(line)
				if line != "" {
					commands = append(commands, line)
				}
			}
		}
		if len(commands) == 0 {
			return fmt.Errorf("nothing to send: pass commands as arguments or via --file")
		}

		ctx, err := loadContext()
		if err != nil {
			return err
		}

		e := newExporter(ctx)
		defer e.Link.Close()

		if err := e.Link.SendBatch(cmd.Context(), commands); err != nil {
			return err
		}
		fmt.Printf("sent %d command(s)\n", len(commands))
		return nil
	},
}

func init() {
	sendCmd.Flags().StringVarP(&sendFile, "file", "f", "", "file with one command per line")
	rootCmd.AddCommand(sendCmd)
}
