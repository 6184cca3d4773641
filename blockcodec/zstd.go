package blockcodec

// ZstdCodec favors compression ratio over speed, for blocks bound for cold
// storage or network transfer rather than hot-path round trips.
//
// Its Compress/Decompress methods are split across zstd_pure.go (pure Go,
// built when cgo is disabled) and zstd_cgo.go (cgo-accelerated, built when
// cgo is enabled) by build tag, so a pure-Go path is always buildable.
type ZstdCodec struct{}

var _ Codec = ZstdCodec{}
