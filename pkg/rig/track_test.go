package rig

import (
	"testing"

	"github.com/voxrig/rigcast/pkg/rigcodec"
)

func identity() [16]float64 {
	return [16]float64{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

func TestTracks(t *testing.T) {
	r := &Rig{
		Name: "golem",
		Nodes: []Node{
			{Name: "head", Kind: KindBone},
			{Name: "root", Kind: KindStruct},
			{Name: "arm", Kind: KindBone},
		},
	}

	anim := &Animation{
		Name:       "walk",
		FrameCount: 2,
		Frames: []Frame{
			{"head": identity(), "arm": identity()},
			{"head": identity()}, // arm unsampled in frame 2
		},
	}

	tracks := Tracks(r, anim)
	if len(tracks) != 2 {
		t.Fatalf("len(tracks) = %d; want 2", len(tracks))
	}

	if tracks[0].Node != "head" || tracks[1].Node != "arm" {
		t.Errorf("track order = %s, %s; want head, arm", tracks[0].Node, tracks[1].Node)
	}

	if len(tracks[0].Data) != 2*rigcodec.EncodedMatrixLen {
		t.Errorf("head track length = %d; want %d", len(tracks[0].Data), 2*rigcodec.EncodedMatrixLen)
	}
	if len(tracks[1].Data) != rigcodec.EncodedMatrixLen {
		t.Errorf("arm track length = %d; want %d", len(tracks[1].Data), rigcodec.EncodedMatrixLen)
	}
}

func TestTracksSkipsUnsampledNodes(t *testing.T) {
	r := &Rig{
		Name:  "golem",
		Nodes: []Node{{Name: "head", Kind: KindBone}, {Name: "tail", Kind: KindBone}},
	}

	anim := &Animation{
		Name:       "idle",
		FrameCount: 1,
		Frames:     []Frame{{"head": identity()}},
	}

	tracks := Tracks(r, anim)
	if len(tracks) != 1 {
		t.Fatalf("len(tracks) = %d; want 1", len(tracks))
	}
	if tracks[0].Node != "head" {
		t.Errorf("track node = %s; want head", tracks[0].Node)
	}
}

func TestTracksEmptyAnimation(t *testing.T) {
	r := &Rig{Name: "golem", Nodes: []Node{{Name: "head", Kind: KindBone}}}
	anim := &Animation{Name: "idle", FrameCount: 1}

	if tracks := Tracks(r, anim); len(tracks) != 0 {
		t.Errorf("len(tracks) = %d; want 0", len(tracks))
	}
}
