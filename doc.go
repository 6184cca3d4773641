// Package tsz implements the Gorilla time-series compression format
// described in Facebook's "Gorilla: A Fast, Scalable, In-Memory Time Series
// Database" (VLDB 2015): delta-of-delta encoding for timestamps and XOR
// encoding with leading/trailing-zero window reuse for float64 values.
//
// # Core Features
//
//   - Bit-exact implementation of the paper's timestamp and value codecs
//   - Generic Encoder/Decoder so callers can substitute any bitio.Writer/
//     bitio.Reader implementation without virtual dispatch in the hot loop
//   - An in-band end-of-stream marker, no separate length prefix needed
//   - Optional post-encode checksum (internal/digest) and block compression
//     (blockcodec) layered strictly outside the wire format
//
// # Basic Usage
//
// Encoding a series of points:
//
//	w := bitio.NewBitWriter()
//	enc := tsz.NewEncoder(baseTime, w)
//	for _, p := range points {
//	    enc.Encode(p)
//	}
//	block := enc.Close()
//
// Decoding it back:
//
//	r := bitio.NewBitReader(block)
//	dec, err := tsz.NewDecoder(r)
//	if err != nil {
//	    return err
//	}
//	for {
//	    p, err := dec.Next()
//	    if errors.Is(err, tsz.ErrEndOfStream) {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	    // use p
//	}
//
// # Package Structure
//
// bitio provides the MSB-first bit-packing substrate; Encoder and Decoder
// (this package) implement the Gorilla protocol on top of it. internal/digest
// and blockcodec are optional, independent layers callers may add around a
// closed block; neither is required to read or write the wire format itself.
package tsz
