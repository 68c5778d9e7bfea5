package blockcode

// Block kinds and actions understood by the runtime.
const (
	KindFunction = "func"
	KindSetVar   = "set_var"

	ActionCreateList   = "CreateList"
	ActionAppendValue  = "AppendValue"
	ActionSetDictValue = "SetDictValue"
)

// SlotCapacity is the number of items one block can carry in addition to
// the variable reference at slot 0.
const SlotCapacity = 27

// Slot pins an item to a slot index. Indices are 0-based and contiguous
// within a block.
type Slot struct {
	Item Item `json:"item"`
	Slot int  `json:"slot"`
}

// Args is a block's ordered argument list.
type Args struct {
	Items []Slot `json:"items"`
}

// Block is one executable record of the runtime program.
type Block struct {
	ID      string `json:"id"`
	Kind    string `json:"block"`
	Action  string `json:"action,omitempty"`
	Payload string `json:"data,omitempty"`
	Args    Args   `json:"args"`
}

// append places item at the next free slot.
func (b *Block) append(item Item) {
	b.Args.Items = append(b.Args.Items, Slot{Item: item, Slot: len(b.Args.Items)})
}

// Template is an ordered block sequence; order is execution order.
type Template struct {
	Blocks []Block `json:"blocks"`
}
