package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/voxrig/rigcast/pkg/cli"
)

var (
	addEndpoint string
	addAuthor   string
	addWindowMS int
	addItemID   string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management (contexts)",
}

var configAddContextCmd = &cobra.Command{
	Use:   "add-context <name>",
	Short: "Add a named context",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := cli.LoadConfigWithPath(configPath)
		if err != nil {
			return err
		}
		return cfg.AddContext(args[0], &cli.Context{
			Endpoint:         addEndpoint,
			Author:           addAuthor,
			ResponseWindowMS: addWindowMS,
			ItemID:           addItemID,
		})
	},
}

var configUseContextCmd = &cobra.Command{
	Use:   "use-context <name>",
	Short: "Set the current context",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := cli.LoadConfigWithPath(configPath)
		if err != nil {
			return err
		}
		return cfg.UseContext(args[0])
	},
}

var configDeleteContextCmd = &cobra.Command{
	Use:   "delete-context <name>",
	Short: "Delete a context",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := cli.LoadConfigWithPath(configPath)
		if err != nil {
			return err
		}
		return cfg.DeleteContext(args[0])
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List contexts",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := cli.LoadConfigWithPath(configPath)
		if err != nil {
			return err
		}
		names := cfg.ListContexts()
		sort.Strings(names)
		for _, name := range names {
			marker := " "
			if name == cfg.CurrentContext {
				marker = "*"
			}
			fmt.Printf("%s %s\n", marker, name)
		}
		return nil
	},
}

func init() {
	configAddContextCmd.Flags().StringVar(&addEndpoint, "endpoint", "", "runtime client address (default ws://localhost:31375)")
	configAddContextCmd.Flags().StringVar(&addAuthor, "author", "", "payload author name")
	configAddContextCmd.Flags().IntVar(&addWindowMS, "response-window-ms", 0, "response window in milliseconds")
	configAddContextCmd.Flags().StringVar(&addItemID, "item-id", "", "delivery item id")

	configCmd.AddCommand(configAddContextCmd)
	configCmd.AddCommand(configUseContextCmd)
	configCmd.AddCommand(configDeleteContextCmd)
	configCmd.AddCommand(configListCmd)
	rootCmd.AddCommand(configCmd)
}
