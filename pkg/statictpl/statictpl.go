// Package statictpl serves the template blobs shipped with the product.
// Blobs are raw-mode payloads; they ride through the give-command builder
// unchanged.
package statictpl

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/voxrig/rigcast/pkg/givecmd"
)

//go:embed templates/*.json
var templatesFS embed.FS

// Names lists the shipped template names in sorted order.
func Names() []string {
	entries, err := fs.ReadDir(templatesFS, "templates")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".json"))
	}
	sort.Strings(names)
	return names
}

// Get returns the raw payload for a shipped template. An unknown name is a
// validation error listing the known set.
func Get(name string) (string, error) {
	data, err := templatesFS.ReadFile("templates/" + name + ".json")
	if err != nil {
		return "", &givecmd.ValidationError{
			Msg: fmt.Sprintf("unknown static template %q (known: %s)", name, strings.Join(Names(), ", ")),
		}
	}
	return string(data), nil
}

// Item wraps a shipped template as an export unit ready for the command
// builder.
func Item(name string) (*givecmd.TemplateItem, error) {
	payload, err := Get(name)
	if err != nil {
		return nil, err
	}
	return &givecmd.TemplateItem{RawPayload: payload, Name: name}, nil
}
