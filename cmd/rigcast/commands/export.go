package commands

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/voxrig/rigcast/pkg/cli"
	"github.com/voxrig/rigcast/pkg/export"
	"github.com/voxrig/rigcast/pkg/rig"
)

var (
	exportFile        string
	exportName        string
	exportDescription string
	exportDryRun      bool
	exportOutput      string
)

// exportDocument is the on-disk export file shape.
type exportDocument struct {
	Rig        rig.Rig         `yaml:"rig"`
	Animations []rig.Animation `yaml:"animations"`
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a rig file and deliver it to the runtime client",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(exportFile)
		if err != nil {
			return fmt.Errorf("read export file: %w", err)
		}

		var doc exportDocument
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("parse export file: %w", err)
		}

		ctx, err := loadContext()
		if err != nil {
			return err
		}

		opts := &export.Options{
			TemplateName: exportName,
			Description:  exportDescription,
			ItemID:       ctx.ItemID,
		}

		e := newExporter(ctx)
		defer e.Link.Close()

		if exportDryRun {
			command, err := e.BuildCommand(&doc.Rig, doc.Animations, opts)
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "command size: %s\n", cli.FormatBytes(len(command)))
			return cli.Output(command, cli.OutputOptions{Format: cli.FormatRaw, File: exportOutput})
		}

		if err := e.Export(cmd.Context(), &doc.Rig, doc.Animations, opts); err != nil {
			return err
		}

		styles := cli.NewStyles(cli.DefaultTheme)
		fmt.Println(styles.Success.Render(fmt.Sprintf("exported %q (%d animations)", doc.Rig.Name, len(doc.Animations))))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFile, "file", "f", "", "rig export file (yaml)")
	exportCmd.Flags().StringVar(&exportName, "name", "", "template name (defaults to the rig name)")
	exportCmd.Flags().StringVar(&exportDescription, "description", "", "template description / item lore")
	exportCmd.Flags().BoolVar(&exportDryRun, "dry-run", false, "print the give command instead of sending it")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file for --dry-run")
	exportCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(exportCmd)
}
