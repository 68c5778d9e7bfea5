package blockcode

import "strconv"

// DefaultMaterial is the fallback material identifier used for nodes that
// carry no material of their own.
const DefaultMaterial = "minecraft:stone"

// Item is one argument value placed into a block slot.
type Item struct {
	// ID is the runtime's value type tag.
	ID string `json:"id"`

	// Data holds the type-specific fields.
	Data map[string]any `json:"data,omitempty"`
}

// VarItem references a named runtime variable.
func VarItem(name string) Item {
	return Item{ID: "var", Data: map[string]any{"name": name, "scope": "local"}}
}

// NumItem is a numeric literal. The runtime's number values carry their
// textual form.
func NumItem(v int) Item {
	return Item{ID: "num", Data: map[string]any{"name": strconv.Itoa(v)}}
}

// TextItem is a text literal.
func TextItem(s string) Item {
	return Item{ID: "txt", Data: map[string]any{"name": s}}
}

// MaterialItem is an item stack descriptor for the given material.
func MaterialItem(material string) Item {
	if material == "" {
		material = DefaultMaterial
	}
	return Item{ID: "item", Data: map[string]any{"material": material}}
}

// TextDisplayItem is an item stack descriptor carrying literal display text.
func TextDisplayItem(text string) Item {
	return Item{ID: "item", Data: map[string]any{"material": DefaultMaterial, "text": text}}
}

// ModelItem references a rig part model by owning rig and node name.
func ModelItem(rigName, nodeName string) Item {
	return Item{ID: "model", Data: map[string]any{"rig": rigName, "node": nodeName}}
}

// ParamItem declares a formal function parameter.
func ParamItem(name string) Item {
	return Item{ID: "param", Data: map[string]any{"name": name}}
}

// hiddenMarkerItem tags the declaration block as hidden in the runtime's
// function listing.
func hiddenMarkerItem() Item {
	return Item{ID: "marker", Data: map[string]any{"visibility": "hidden"}}
}
