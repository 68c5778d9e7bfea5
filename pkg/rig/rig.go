package rig

// NodeKind classifies a rig node.
type NodeKind string

// Node kinds. Struct nodes are structural only and never emitted.
const (
	KindBone         NodeKind = "bone"
	KindStruct       NodeKind = "struct"
	KindCamera       NodeKind = "camera"
	KindLocator      NodeKind = "locator"
	KindTextDisplay  NodeKind = "text_display"
	KindItemDisplay  NodeKind = "item_display"
	KindBlockDisplay NodeKind = "block_display"
)

// Node is one element of the rig hierarchy.
type Node struct {
	// Name identifies the node within its rig.
	Name string `json:"name" yaml:"name"`

	// Kind selects how the node is represented remotely.
	Kind NodeKind `json:"kind" yaml:"kind"`

	// Material is the material identifier for item_display and
	// block_display nodes (optional).
	Material string `json:"material,omitempty" yaml:"material,omitempty"`

	// Text is the display text for text_display nodes (optional).
	Text string `json:"text,omitempty" yaml:"text,omitempty"`
}

// Rig is an ordered set of nodes under one name. Node order is preserved
// through the whole export: it decides slot order remotely.
type Rig struct {
	Name  string `json:"name" yaml:"name"`
	Nodes []Node `json:"nodes" yaml:"nodes"`
}

// Frame maps node name to a 16-element column-major transform matrix for one
// sampled frame. Nodes without a sample in a given frame are skipped; sparse
// sampling is legal.
type Frame map[string][16]float64

// Animation is one named keyframe animation of a rig.
type Animation struct {
	Name       string  `json:"name" yaml:"name"`
	FrameCount int     `json:"frame_count" yaml:"frame_count"`
	Frames     []Frame `json:"frames" yaml:"frames"`
}
