// Package blockcodec optionally compresses a closed Gorilla block's bytes a
// second time before storage or transmission.
//
// The Gorilla codec already squeezes most of the redundancy out of a stream
// of timestamps and values, but a run of closed blocks (many metrics sharing
// similar value ranges, or long stretches of constant values) can still
// compress further as opaque bytes. blockcodec operates strictly after
// Encoder.Close and strictly before Decoder reads: it never participates in
// the bit-level wire format itself.
package blockcodec
