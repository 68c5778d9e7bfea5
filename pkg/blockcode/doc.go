// Package blockcode models the in-game code runtime's program format: block
// records with capacity-bounded argument slots, and the builder that lowers
// a rig plus its encoded animation tracks into an ordered block sequence.
//
// Block order is execution order remotely, so everything in this package is
// deterministic: inputs are ordered slices, never maps.
package blockcode
