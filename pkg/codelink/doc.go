// Package codelink is the WebSocket client for the local code runtime
// endpoint.
//
// One Client owns at most one physical connection and at most one in-flight
// connection attempt; concurrent callers share both. Batches of command
// strings are written in order, then the client collects every inbound text
// for a fixed response window and classifies the collected texts against
// the runtime's known rejection markers. Responses are loosely structured:
// any string found at any depth of a JSON message counts as a candidate
// response text.
//
// The runtime protocol has no correlation ids, so whole batches are
// serialized through the client; otherwise concurrent batches would read
// each other's responses.
package codelink
