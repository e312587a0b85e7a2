// Package uvarint encodes and decodes unsigned variable-length integers.
//
// The format is the LEB128 encoding used by protocol buffers: each byte
// carries 7 payload bits (least-significant group first) and the high
// bit is set on every byte except the last. Small values take fewer
// bytes; 0 through 127 take exactly one.
//
// See the protocol-buffer documentation for the encoding format:
// https://developers.google.com/protocol-buffers/docs/encoding#varints.
//
// Encoders always emit the minimal (canonical) form. Decoding is done
// through a Mode value, either Lenient or Canonical, which fixes the
// policy for non-minimal input at the call site. The streaming
// StreamDecoder accepts bytes as they arrive; the scalar decode methods
// are one-shot drivers over the same state machine, so the two can
// never disagree.
package uvarint
