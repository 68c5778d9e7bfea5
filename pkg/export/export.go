// Package export runs the whole pipeline: rig and animations in, give
// command out over the runtime link.
//
// An Exporter is an explicit value owned by the caller; there is no shared
// default instance. Everything except the link is stateless, so one
// Exporter handles unlimited concurrent exports as long as each call owns
// its own rig data.
package export

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/voxrig/rigcast/pkg/blockcode"
	"github.com/voxrig/rigcast/pkg/codelink"
	"github.com/voxrig/rigcast/pkg/givecmd"
	"github.com/voxrig/rigcast/pkg/rig"
	"github.com/voxrig/rigcast/pkg/statictpl"
)

// Exporter wires the pipeline together.
type Exporter struct {
	// Link delivers commands to the runtime endpoint. Required.
	Link *codelink.Client

	// Author is stamped into generated payloads.
	Author string

	// Compress overrides the payload compression; nil means gzip.
	Compress givecmd.Compressor

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Options tune one export run.
type Options struct {
	// TemplateName defaults to the rig name.
	TemplateName string

	// Description becomes payload description and item lore.
	Description string

	// ItemID overrides the default delivery item.
	ItemID string

	// Format, when set, is a literal command template (see givecmd).
	Format string

	// Metadata maps are merged into the item's custom metadata.
	Metadata []map[string]any
}

func (e *Exporter) logger() *slog.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return slog.Default()
}

// BuildCommand lowers the rig and animations into a single give command
// without sending it.
func (e *Exporter) BuildCommand(r *rig.Rig, anims []rig.Animation, opts *Options) (string, error) {
	if opts == nil {
		opts = &Options{}
	}
	name := opts.TemplateName
	if name == "" {
		name = r.Name
	}

	data := make([]blockcode.AnimationData, 0, len(anims))
	for i := range anims {
		a := &anims[i]
		data = append(data, blockcode.AnimationData{
			Name:       a.Name,
			FrameCount: a.FrameCount,
			Tracks:     rig.Tracks(r, a),
		})
	}

	tpl := blockcode.Build(name, r, data)
	builder := &givecmd.Builder{Author: e.Author, Compress: e.Compress}
	return builder.Command(&givecmd.TemplateItem{
		Template:    tpl,
		Name:        name,
		Description: opts.Description,
		ItemID:      opts.ItemID,
		Format:      opts.Format,
		Metadata:    opts.Metadata,
	})
}

// Export builds the give command and delivers it over the link. Validation
// and payload errors surface before anything is sent; transport and
// rejection errors come back from the link unchanged.
func (e *Exporter) Export(ctx context.Context, r *rig.Rig, anims []rig.Animation, opts *Options) error {
	runID := uuid.New().String()[:8]
	log := e.logger().With("run", runID, "rig", r.Name)

	start := time.Now()
	cmd, err := e.BuildCommand(r, anims, opts)
	if err != nil {
		return err
	}
	log.Debug("built give command", "len", len(cmd), "animations", len(anims), "took", time.Since(start))

	if err := e.Link.SendBatch(ctx, []string{cmd}); err != nil {
		return err
	}
	log.Info("export delivered", "rig", r.Name, "commands", 1)
	return nil
}

// SendStatic delivers one shipped template blob by name.
func (e *Exporter) SendStatic(ctx context.Context, name string) error {
	item, err := statictpl.Item(name)
	if err != nil {
		return err
	}

	builder := &givecmd.Builder{Author: e.Author, Compress: e.Compress}
	cmd, err := builder.Command(item)
	if err != nil {
		return err
	}
	return e.Link.SendBatch(ctx, []string{cmd})
}
