package blockcode

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/voxrig/rigcast/pkg/rig"
)

func bones(n int) []rig.Node {
	nodes := make([]rig.Node, n)
	for i := range nodes {
		nodes[i] = rig.Node{Name: fmt.Sprintf("bone%d", i), Kind: rig.KindBone}
	}
	return nodes
}

func TestBuildDeclarationBlock(t *testing.T) {
	tpl := Build("golem", &rig.Rig{Name: "golem"}, nil)

	if len(tpl.Blocks) != 1 {
		t.Fatalf("len(blocks) = %d; want 1", len(tpl.Blocks))
	}

	decl := tpl.Blocks[0]
	if decl.Kind != KindFunction {
		t.Errorf("kind = %s; want %s", decl.Kind, KindFunction)
	}
	if decl.Payload != "golem" {
		t.Errorf("payload = %s; want golem", decl.Payload)
	}
	if len(decl.Args.Items) != 3 {
		t.Fatalf("len(args) = %d; want 3", len(decl.Args.Items))
	}
	if decl.Args.Items[0].Item.Data["name"] != "nodes" || decl.Args.Items[1].Item.Data["name"] != "animations" {
		t.Errorf("params = %v, %v; want nodes, animations", decl.Args.Items[0].Item.Data, decl.Args.Items[1].Item.Data)
	}
	if decl.Args.Items[2].Item.ID != "marker" {
		t.Errorf("third arg id = %s; want marker", decl.Args.Items[2].Item.ID)
	}
}

func TestNodeChunkCounts(t *testing.T) {
	tests := []struct {
		nodes      int
		wantChunks int
	}{
		{0, 0},
		{1, 1},
		{26, 1},
		{27, 1},
		{28, 2},
		{54, 2},
		{55, 3},
		{81, 3},
		{82, 4},
	}

	for _, tc := range tests {
		t.Run(fmt.Sprintf("%d_nodes", tc.nodes), func(t *testing.T) {
			r := &rig.Rig{Name: "r", Nodes: bones(tc.nodes)}
			tpl := Build("r", r, nil)

			chunks := tpl.Blocks[1:]
			if len(chunks) != tc.wantChunks {
				t.Fatalf("chunks = %d; want %d", len(chunks), tc.wantChunks)
			}

			for i, b := range chunks {
				wantAction := ActionAppendValue
				if i == 0 {
					wantAction = ActionCreateList
				}
				if b.Action != wantAction {
					t.Errorf("chunk %d action = %s; want %s", i, b.Action, wantAction)
				}
				if b.Args.Items[0].Item.ID != "var" {
					t.Errorf("chunk %d slot 0 id = %s; want var", i, b.Args.Items[0].Item.ID)
				}
				if got := len(b.Args.Items) - 1; got > SlotCapacity {
					t.Errorf("chunk %d holds %d items; capacity is %d", i, got, SlotCapacity)
				}
			}

			total := 0
			for _, b := range chunks {
				total += len(b.Args.Items) - 1
			}
			if total != tc.nodes {
				t.Errorf("total items = %d; want %d", total, tc.nodes)
			}
		})
	}
}

func TestNodeChunkSlotsContiguous(t *testing.T) {
	r := &rig.Rig{Name: "r", Nodes: bones(30)}
	tpl := Build("r", r, nil)

	for _, b := range tpl.Blocks[1:] {
		for i, s := range b.Args.Items {
			if s.Slot != i {
				t.Fatalf("slot %d carries index %d; want %d", i, s.Slot, i)
			}
		}
	}
}

func TestStructNodesSkipped(t *testing.T) {
	r := &rig.Rig{
		Name: "r",
		Nodes: []rig.Node{
			{Name: "root", Kind: rig.KindStruct},
			{Name: "head", Kind: rig.KindBone},
			{Name: "pivot", Kind: rig.KindStruct},
		},
	}
	tpl := Build("r", r, nil)

	if len(tpl.Blocks) != 2 {
		t.Fatalf("len(blocks) = %d; want 2", len(tpl.Blocks))
	}
	if got := len(tpl.Blocks[1].Args.Items); got != 2 {
		t.Errorf("chunk items = %d; want 2 (var + head)", got)
	}
}

func TestOnlyStructNodesEmitsNoChunk(t *testing.T) {
	r := &rig.Rig{Name: "r", Nodes: []rig.Node{{Name: "root", Kind: rig.KindStruct}}}
	tpl := Build("r", r, nil)

	if len(tpl.Blocks) != 1 {
		t.Errorf("len(blocks) = %d; want 1 (declaration only)", len(tpl.Blocks))
	}
}

func TestNodeItemDescriptors(t *testing.T) {
	r := &rig.Rig{Name: "golem"}

	tests := []struct {
		name   string
		node   rig.Node
		wantID string
		check  func(t *testing.T, it Item)
	}{
		{
			name:   "bone references model by rig and node",
			node:   rig.Node{Name: "head", Kind: rig.KindBone},
			wantID: "model",
			check: func(t *testing.T, it Item) {
				if it.Data["rig"] != "golem" || it.Data["node"] != "head" {
					t.Errorf("model data = %v", it.Data)
				}
			},
		},
		{
			name:   "text display carries literal text",
			node:   rig.Node{Name: "label", Kind: rig.KindTextDisplay, Text: "Hello"},
			wantID: "item",
			check: func(t *testing.T, it Item) {
				if it.Data["text"] != "Hello" {
					t.Errorf("text = %v; want Hello", it.Data["text"])
				}
			},
		},
		{
			name:   "item display uses its material",
			node:   rig.Node{Name: "sword", Kind: rig.KindItemDisplay, Material: "minecraft:iron_sword"},
			wantID: "item",
			check: func(t *testing.T, it Item) {
				if it.Data["material"] != "minecraft:iron_sword" {
					t.Errorf("material = %v", it.Data["material"])
				}
			},
		},
		{
			name:   "block display without material falls back",
			node:   rig.Node{Name: "base", Kind: rig.KindBlockDisplay},
			wantID: "item",
			check: func(t *testing.T, it Item) {
				if it.Data["material"] != DefaultMaterial {
					t.Errorf("material = %v; want %s", it.Data["material"], DefaultMaterial)
				}
			},
		},
		{
			name:   "camera falls back to default material",
			node:   rig.Node{Name: "cam", Kind: rig.KindCamera},
			wantID: "item",
			check: func(t *testing.T, it Item) {
				if it.Data["material"] != DefaultMaterial {
					t.Errorf("material = %v; want %s", it.Data["material"], DefaultMaterial)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			it := nodeItem(r, &tc.node)
			if it.ID != tc.wantID {
				t.Fatalf("id = %s; want %s", it.ID, tc.wantID)
			}
			tc.check(t, it)
		})
	}
}

func TestAnimationBlocks(t *testing.T) {
	anims := []AnimationData{{
		Name:       "walk",
		FrameCount: 20,
		Tracks: []rig.Track{
			{Node: "head", Data: strings.Repeat("A", 48)},
			{Node: "arm", Data: strings.Repeat("B", 48)},
		},
	}}
	tpl := Build("r", &rig.Rig{Name: "r"}, anims)

	// declaration, one list chunk, one dict store
	if len(tpl.Blocks) != 3 {
		t.Fatalf("len(blocks) = %d; want 3", len(tpl.Blocks))
	}

	chunk := tpl.Blocks[1]
	if chunk.Action != ActionCreateList {
		t.Errorf("chunk action = %s; want %s", chunk.Action, ActionCreateList)
	}
	// var ref, frame count, then two (name, data) pairs
	if len(chunk.Args.Items) != 6 {
		t.Fatalf("chunk items = %d; want 6", len(chunk.Args.Items))
	}
	if chunk.Args.Items[1].Item.ID != "num" || chunk.Args.Items[1].Item.Data["name"] != "20" {
		t.Errorf("frame count item = %v", chunk.Args.Items[1].Item)
	}
	if chunk.Args.Items[2].Item.Data["name"] != "head" {
		t.Errorf("first pair name = %v; want head", chunk.Args.Items[2].Item.Data["name"])
	}

	store := tpl.Blocks[2]
	if store.Action != ActionSetDictValue {
		t.Fatalf("store action = %s; want %s", store.Action, ActionSetDictValue)
	}
	if store.Args.Items[1].Item.Data["name"] != "walk" {
		t.Errorf("store key = %v; want walk", store.Args.Items[1].Item.Data["name"])
	}
}

func TestAnimationPairsNeverSplit(t *testing.T) {
	// Frame count takes 1 item, so 13 pairs fill a chunk to 27; the 14th
	// pair must move whole to the next chunk.
	tracks := make([]rig.Track, 14)
	for i := range tracks {
		tracks[i] = rig.Track{Node: fmt.Sprintf("n%d", i), Data: "d"}
	}
	tpl := Build("r", &rig.Rig{Name: "r"}, []AnimationData{{Name: "a", FrameCount: 1, Tracks: tracks}})

	// declaration, two list chunks, dict store
	if len(tpl.Blocks) != 4 {
		t.Fatalf("len(blocks) = %d; want 4", len(tpl.Blocks))
	}

	first, second := tpl.Blocks[1], tpl.Blocks[2]
	if got := len(first.Args.Items) - 1; got != 27 {
		t.Errorf("first chunk items = %d; want 27", got)
	}
	if second.Action != ActionAppendValue {
		t.Errorf("second chunk action = %s; want %s", second.Action, ActionAppendValue)
	}
	if got := len(second.Args.Items) - 1; got != 2 {
		t.Errorf("second chunk items = %d; want 2 (one whole pair)", got)
	}
	if second.Args.Items[1].Item.Data["name"] != "n13" {
		t.Errorf("carried pair = %v; want n13", second.Args.Items[1].Item.Data["name"])
	}
}

func TestEmptyAnimationStillStored(t *testing.T) {
	tpl := Build("r", &rig.Rig{Name: "r"}, []AnimationData{{Name: "idle", FrameCount: 1}})

	// Even with no tracks the animation key must appear remotely: expect
	// the frame-count chunk and the dict store.
	if len(tpl.Blocks) != 3 {
		t.Fatalf("len(blocks) = %d; want 3", len(tpl.Blocks))
	}

	chunk := tpl.Blocks[1]
	if len(chunk.Args.Items) != 2 {
		t.Errorf("chunk items = %d; want 2 (var + frame count)", len(chunk.Args.Items))
	}
	if tpl.Blocks[2].Action != ActionSetDictValue {
		t.Errorf("final block action = %s; want %s", tpl.Blocks[2].Action, ActionSetDictValue)
	}
}

func TestTemplateJSONShape(t *testing.T) {
	tpl := Build("r", &rig.Rig{Name: "r", Nodes: bones(1)}, nil)

	data, err := json.Marshal(tpl)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded struct {
		Blocks []struct {
			ID    string `json:"id"`
			Block string `json:"block"`
			Args  struct {
				Items []struct {
					Slot int `json:"slot"`
				} `json:"items"`
			} `json:"args"`
		} `json:"blocks"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(decoded.Blocks) != 2 {
		t.Fatalf("blocks = %d; want 2", len(decoded.Blocks))
	}
	if decoded.Blocks[0].Block != KindFunction {
		t.Errorf("first block = %s; want %s", decoded.Blocks[0].Block, KindFunction)
	}
}
