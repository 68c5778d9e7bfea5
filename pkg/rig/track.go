package rig

import "github.com/voxrig/rigcast/pkg/rigcodec"

// Track is one node's animation data: the concatenation of its encoded
// per-frame matrices, 48 characters per sampled frame.
type Track struct {
	Node string
	Data string
}

// Tracks samples an animation against the rig's node list, producing one
// track per node that has at least one sample. Track order follows node
// declaration order; within a track, frames keep their order and frames
// without a sample for the node contribute nothing.
func Tracks(r *Rig, anim *Animation) []Track {
	tracks := make([]Track, 0, len(r.Nodes))
	for _, node := range r.Nodes {
		var data []byte
		for _, frame := range anim.Frames {
			m, ok := frame[node.Name]
			if !ok {
				continue
			}
			data = append(data, rigcodec.EncodeMatrix(m)...)
		}
		if len(data) == 0 {
			continue
		}
		tracks = append(tracks, Track{Node: node.Name, Data: string(data)})
	}
	return tracks
}
