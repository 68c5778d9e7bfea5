// Package rig holds the exportable model of a 3D rig: its nodes and its
// keyframe animations, plus the sampling step that turns per-frame transform
// matrices into the encoded per-node tracks the template builder consumes.
//
// All values are plain data owned by one export run; nothing in this package
// carries state across runs.
package rig
