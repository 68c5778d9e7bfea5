package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/voxrig/rigcast/pkg/statictpl"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "Work with the template blobs shipped with rigcast",
}

var templatesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List shipped template names",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range statictpl.Names() {
			fmt.Println(name)
		}
	},
}

var templatesGiveCmd = &cobra.Command{
	Use:   "give <name>",
	Short: "Deliver a shipped template to the runtime client",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := loadContext()
		if err != nil {
			return err
		}

		e := newExporter(ctx)
		defer e.Link.Close()

		if err := e.SendStatic(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Printf("delivered %q\n", args[0])
		return nil
	},
}

func init() {
	templatesCmd.AddCommand(templatesListCmd)
	templatesCmd.AddCommand(templatesGiveCmd)
	rootCmd.AddCommand(templatesCmd)
}
