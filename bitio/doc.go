// Package bitio provides MSB-first bit-level reading and writing over byte slices.
//
// It is the substrate the Gorilla codec in the root tsz package is built on: a
// BitWriter appends individual bits, whole bytes, and packed bit-fields to an
// owned growable buffer; a BitReader consumes the same shapes from a borrowed
// byte slice, with a peek operation that does not advance position.
//
// Bits are packed most-significant-bit first within each byte, matching the wire
// format produced by the original Gorilla paper's reference implementations:
// WriteBits(0b101, 3) followed by Close() yields the single byte 0b10100000.
package bitio
