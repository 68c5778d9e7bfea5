// Package givecmd serializes one export unit into the textual give command
// the code runtime client understands.
//
// A command carries its program either as a caller-supplied literal payload
// (raw mode) or as a generated payload wrapping the gzip-compressed,
// base64-encoded code template (generated mode). The command itself is
// either a caller-supplied format string with the payload substituted in, or
// a structured give command in the runtime's own item-tag notation.
package givecmd
