package blockcode

import "github.com/voxrig/rigcast/pkg/rig"

// Runtime variable names used by the generated program. The declaration
// block exposes both as formal parameters; every chunk writes into one of
// them.
const (
	nodesVar      = "nodes"
	animationsVar = "animations"
)

// AnimationData is one animation lowered to encoded tracks, ready for
// chunking.
type AnimationData struct {
	Name       string
	FrameCount int
	Tracks     []rig.Track
}

// Build lowers a rig and its animations into a runtime code template:
// one hidden function declaration, then the node list chunks, then one
// list-building chunk sequence and one dict-store block per animation.
func Build(name string, r *rig.Rig, anims []AnimationData) *Template {
	tpl := &Template{}
	tpl.Blocks = append(tpl.Blocks, declarationBlock(name))
	tpl.Blocks = append(tpl.Blocks, nodeChunks(r)...)
	for i := range anims {
		tpl.Blocks = append(tpl.Blocks, animationBlocks(&anims[i])...)
	}
	return tpl
}

func declarationBlock(name string) Block {
	b := Block{ID: "block", Kind: KindFunction, Payload: name}
	b.append(ParamItem(nodesVar))
	b.append(ParamItem(animationsVar))
	b.append(hiddenMarkerItem())
	return b
}

// chunker accumulates items into capacity-bounded set_var chunks for one
// target variable. Slot 0 of every chunk is the variable reference; the
// first emitted chunk creates the list, later ones append to it. A chunk
// that never received an item is discarded.
type chunker struct {
	varName string
	blocks  []Block
	cur     Block
	count   int
	action  string
}

func newChunker(varName string) *chunker {
	c := &chunker{varName: varName, action: ActionCreateList}
	c.open()
	return c
}

func (c *chunker) open() {
	c.cur = Block{ID: "block", Kind: KindSetVar}
	c.cur.append(VarItem(c.varName))
	c.count = 0
}

func (c *chunker) flush() {
	if c.count == 0 {
		return
	}
	c.cur.Action = c.action
	c.blocks = append(c.blocks, c.cur)
	c.action = ActionAppendValue
	c.open()
}

// add appends one item, closing the current chunk first when full.
func (c *chunker) add(item Item) {
	if c.count == SlotCapacity {
		c.flush()
	}
	c.cur.append(item)
	c.count++
}

// addPair appends two items that must land in the same chunk.
func (c *chunker) addPair(a, b Item) {
	if c.count+2 > SlotCapacity {
		c.flush()
	}
	c.cur.append(a)
	c.cur.append(b)
	c.count += 2
}

func (c *chunker) done() []Block {
	c.flush()
	return c.blocks
}

func nodeChunks(r *rig.Rig) []Block {
	c := newChunker(nodesVar)
	for _, n := range r.Nodes {
		if n.Kind == rig.KindStruct {
			continue
		}
		c.add(nodeItem(r, &n))
	}
	return c.done()
}

// nodeItem derives the slot descriptor for one rig node.
func nodeItem(r *rig.Rig, n *rig.Node) Item {
	switch n.Kind {
	case rig.KindBone:
		return ModelItem(r.Name, n.Name)
	case rig.KindTextDisplay:
		return TextDisplayItem(n.Text)
	case rig.KindItemDisplay, rig.KindBlockDisplay:
		return MaterialItem(n.Material)
	default:
		return MaterialItem("")
	}
}

func animationBlocks(a *AnimationData) []Block {
	scratch := "anim_" + a.Name

	c := newChunker(scratch)
	c.add(NumItem(a.FrameCount))
	for _, tr := range a.Tracks {
		c.addPair(TextItem(tr.Node), TextItem(tr.Data))
	}
	blocks := c.done()

	store := Block{ID: "block", Kind: KindSetVar, Action: ActionSetDictValue}
	store.append(VarItem(animationsVar))
	store.append(TextItem(a.Name))
	store.append(VarItem(scratch))
	return append(blocks, store)
}
