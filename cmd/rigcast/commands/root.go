package commands

import (
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/voxrig/rigcast/pkg/cli"
	"github.com/voxrig/rigcast/pkg/codelink"
	"github.com/voxrig/rigcast/pkg/export"
)

var (
	// Global flags
	verbose     bool
	contextName string
	configPath  string
)

var rootCmd = &cobra.Command{
	Use:   "rigcast",
	Short: "Export 3D rigs and animations to the in-game code runtime",
	Long: `rigcast - exports a rig's structure and keyframe animations as a
code template and delivers it to a running runtime client over the local
socket endpoint.

Configuration lives in ~/.rigcast/config.yaml as named contexts:

  rigcast config add-context local
  rigcast config use-context local

Examples:
  # Export a rig file and deliver it
  rigcast export -f golem.yaml

  # Inspect the command without sending it
  rigcast export -f golem.yaml --dry-run

  # Deliver a shipped helper template
  rigcast templates give rig_runtime`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initLogging)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&contextName, "context", "c", "", "configuration context to use")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "configuration file path")
}

func initLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// loadContext resolves the active configuration context.
func loadContext() (*cli.Context, error) {
	cfg, err := cli.LoadConfigWithPath(configPath)
	if err != nil {
		return nil, err
	}
	return cfg.ResolveContext(contextName)
}

// newExporter builds the exporter and its link from one context.
func newExporter(ctx *cli.Context) *export.Exporter {
	link := codelink.New(codelink.Config{
		Addr:           ctx.Endpoint,
		ResponseWindow: time.Duration(ctx.ResponseWindowMS) * time.Millisecond,
	})
	return &export.Exporter{Link: link, Author: ctx.Author}
}
