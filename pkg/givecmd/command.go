package givecmd

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/voxrig/rigcast/pkg/blockcode"
)

// Protocol constants shared with the runtime client. These are part of the
// remote command grammar and must match it byte for byte.
const (
	// DefaultItemID is the item the template rides on when the export unit
	// does not name one.
	DefaultItemID = "minecraft:ender_chest"

	// MetadataKey is the well-known custom-metadata key the runtime reads
	// the payload from.
	MetadataKey = "hypercube:codetemplatedata"

	// PayloadToken is the placeholder substituted into literal format
	// strings.
	PayloadToken = "{payload}"
)

// TemplateItem is one export unit: a code template or a literal payload,
// plus the item metadata it is delivered with.
type TemplateItem struct {
	// Template is the generated program; required unless RawPayload is set.
	Template *blockcode.Template

	// RawPayload is a caller-supplied literal payload. When non-empty it
	// takes precedence over Template.
	RawPayload string

	// Name is the display name and the template name in the payload.
	Name string

	// Description becomes the payload description and the item lore,
	// one lore line per non-empty description line.
	Description string

	// ItemID overrides DefaultItemID.
	ItemID string

	// Format, when set, is a literal command template; PayloadToken inside
	// it is replaced with the escaped payload and the result returned
	// verbatim.
	Format string

	// Metadata maps are merged (in order) into the item's custom metadata
	// next to the payload key.
	Metadata []map[string]any
}

// Builder assembles give commands.
type Builder struct {
	// Author is stamped into generated payloads.
	Author string

	// Compress is the payload compression capability; nil means gzip.
	Compress Compressor
}

func (b *Builder) compressor() Compressor {
	if b.Compress == nil {
		return GzipCompressor{}
	}
	return b.Compress
}

// Command builds the full give command for one export unit.
func (b *Builder) Command(item *TemplateItem) (string, error) {
	payload, err := b.buildPayload(item)
	if err != nil {
		return "", err
	}

	if item.Format != "" {
		return strings.ReplaceAll(item.Format, PayloadToken, escapeString(payload)), nil
	}

	return b.structuredCommand(item, payload)
}

// structuredCommand synthesizes a give command in the runtime's item-tag
// notation: display name, optional lore from the description, and the
// custom-metadata object carrying the payload.
func (b *Builder) structuredCommand(item *TemplateItem, payload string) (string, error) {
	itemID := item.ItemID
	if itemID == "" {
		itemID = DefaultItemID
	}

	var sb strings.Builder
	sb.WriteString("give @s ")
	sb.WriteString(itemID)
	sb.WriteString("{display:{Name:\"")
	sb.WriteString(escapeString(textComponent(item.Name)))
	sb.WriteString("\"")

	if lore := loreLines(item.Description); len(lore) > 0 {
		sb.WriteString(",Lore:[")
		for i, line := range lore {
			if i > 0 {
				sb.WriteString(",")
			}
			sb.WriteString("\"")
			sb.WriteString(escapeString(textComponent(line)))
			sb.WriteString("\"")
		}
		sb.WriteString("]")
	}

	sb.WriteString("},PublicBukkitValues:{\"")
	sb.WriteString(MetadataKey)
	sb.WriteString("\":\"")
	sb.WriteString(escapeString(payload))
	sb.WriteString("\"")

	for _, k := range sortedMetadataKeys(item.Metadata) {
		v := lookupMetadata(item.Metadata, k)
		encoded, err := json.Marshal(v)
		if err != nil {
			return "", &ValidationError{Msg: fmt.Sprintf("encode metadata field %q", k), Err: err}
		}
		sb.WriteString(",\"")
		sb.WriteString(escapeString(k))
		sb.WriteString("\":\"")
		sb.WriteString(escapeString(string(encoded)))
		sb.WriteString("\"")
	}

	sb.WriteString("}}")
	return sb.String(), nil
}

// escapeString doubles backslashes, then escapes double quotes. This is the
// only escaping the remote grammar requires, and only inside quoted spans.
func escapeString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}

// textComponent renders a plain text component.
func textComponent(text string) string {
	out, _ := json.Marshal(struct {
		Text string `json:"text"`
	}{Text: text})
	return string(out)
}

// loreLines splits a description into trimmed, non-empty lore lines.
func loreLines(description string) []string {
	var lines []string
	for _, line := range strings.Split(description, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// sortedMetadataKeys returns the union of all caller metadata keys in a
// stable order. Later maps override earlier ones on conflict.
func sortedMetadataKeys(maps []map[string]any) []string {
	seen := make(map[string]bool)
	var keys []string
	for _, m := range maps {
		for k := range m {
			if !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
		}
	}
	sort.Strings(keys)
	return keys
}

func lookupMetadata(maps []map[string]any, key string) any {
	var v any
	for _, m := range maps {
		if mv, ok := m[key]; ok {
			v = mv
		}
	}
	return v
}
