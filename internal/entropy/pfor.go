package entropy

import "github.com/omgrid/omgrid/endian"

// Block sizes match the variant naming convention carried over from the
// TurboPFor family this package stands in for: p4n*enc8 packs 8-element
// blocks, the v16/v32 variants pack 128-element blocks, and the 64-bit
// variant packs 64-element blocks (the narrower block keeps per-block
// header overhead proportionate to payload size at 8 bytes/element).
const (
	blockSize8   = 8
	blockSize128 = 128
	blockSize64  = 64
)

// P4nzenc8 entropy-encodes n zigzag-mapped int8 elements (1 byte each,
// native layout) from src into out, returning the compressed length.
func P4nzenc8(n int, src []byte, out []byte) int {
	get := func(i int) uint64 { return zigzagEncode(int64(int8(src[i]))) }

	return encodeBlocksFunc(n, blockSize8, get, out)
}

// P4nzenc8Len returns the byte length P4nzenc8 would produce for n elements.
func P4nzenc8Len(n int, src []byte) int {
	get := func(i int) uint64 { return zigzagEncode(int64(int8(src[i]))) }

	return encodedBlocksFuncLen(n, blockSize8, get)
}

// P4nzdec8 reverses P4nzenc8, writing n native int8 elements into dst and
// returning the number of compressed bytes consumed.
func P4nzdec8(n int, compressed []byte, dst []byte) int {
	set := func(i int, v uint64) { dst[i] = byte(int8(zigzagDecode(v))) }

	return decodeBlocksFunc(compressed, n, blockSize8, set)
}

// P4nzenc128v16 entropy-encodes n zigzag-mapped int16 elements from src
// into out, returning the compressed length.
func P4nzenc128v16(engine endian.EndianEngine, n int, src []byte, out []byte) int {
	get := func(i int) uint64 { return zigzagEncode(int64(int16(engine.Uint16(src[i*2:])))) }

	return encodeBlocksFunc(n, blockSize128, get, out)
}

// P4nzenc128v16Len returns the byte length P4nzenc128v16 would produce.
func P4nzenc128v16Len(engine endian.EndianEngine, n int, src []byte) int {
	get := func(i int) uint64 { return zigzagEncode(int64(int16(engine.Uint16(src[i*2:])))) }

	return encodedBlocksFuncLen(n, blockSize128, get)
}

// P4nzdec128v16 reverses P4nzenc128v16.
func P4nzdec128v16(engine endian.EndianEngine, n int, compressed []byte, dst []byte) int {
	set := func(i int, v uint64) { engine.PutUint16(dst[i*2:], uint16(int16(zigzagDecode(v)))) }

	return decodeBlocksFunc(compressed, n, blockSize128, set)
}

// P4nzenc128v32 entropy-encodes n zigzag-mapped int32 elements from src
// into out, returning the compressed length.
func P4nzenc128v32(engine endian.EndianEngine, n int, src []byte, out []byte) int {
	get := func(i int) uint64 { return zigzagEncode(int64(int32(engine.Uint32(src[i*4:])))) }

	return encodeBlocksFunc(n, blockSize128, get, out)
}

// P4nzenc128v32Len returns the byte length P4nzenc128v32 would produce.
func P4nzenc128v32Len(engine endian.EndianEngine, n int, src []byte) int {
	get := func(i int) uint64 { return zigzagEncode(int64(int32(engine.Uint32(src[i*4:])))) }

	return encodedBlocksFuncLen(n, blockSize128, get)
}

// P4nzdec128v32 reverses P4nzenc128v32.
func P4nzdec128v32(engine endian.EndianEngine, n int, compressed []byte, dst []byte) int {
	set := func(i int, v uint64) { engine.PutUint32(dst[i*4:], uint32(int32(zigzagDecode(v)))) }

	return decodeBlocksFunc(compressed, n, blockSize128, set)
}

// P4nzenc64 entropy-encodes n zigzag-mapped int64 elements from src into
// out, returning the compressed length.
func P4nzenc64(engine endian.EndianEngine, n int, src []byte, out []byte) int {
	get := func(i int) uint64 { return zigzagEncode(int64(engine.Uint64(src[i*8:]))) }

	return encodeBlocksFunc(n, blockSize64, get, out)
}

// P4nzenc64Len returns the byte length P4nzenc64 would produce.
func P4nzenc64Len(engine endian.EndianEngine, n int, src []byte) int {
	get := func(i int) uint64 { return zigzagEncode(int64(engine.Uint64(src[i*8:]))) }

	return encodedBlocksFuncLen(n, blockSize64, get)
}

// P4nzdec64 reverses P4nzenc64.
func P4nzdec64(engine endian.EndianEngine, n int, compressed []byte, dst []byte) int {
	set := func(i int, v uint64) { engine.PutUint64(dst[i*8:], uint64(zigzagDecode(v))) }

	return decodeBlocksFunc(compressed, n, blockSize64, set)
}

// P4ndenc8 entropy-encodes n plain (unsigned, no zigzag) uint8 elements.
func P4ndenc8(n int, src []byte, out []byte) int {
	get := func(i int) uint64 { return uint64(src[i]) }

	return encodeBlocksFunc(n, blockSize8, get, out)
}

// P4ndenc8Len returns the byte length P4ndenc8 would produce.
func P4ndenc8Len(n int, src []byte) int {
	get := func(i int) uint64 { return uint64(src[i]) }

	return encodedBlocksFuncLen(n, blockSize8, get)
}

// P4nddec8 reverses P4ndenc8.
func P4nddec8(n int, compressed []byte, dst []byte) int {
	set := func(i int, v uint64) { dst[i] = byte(v) }

	return decodeBlocksFunc(compressed, n, blockSize8, set)
}

// P4ndenc128v16 entropy-encodes n plain uint16 elements.
func P4ndenc128v16(engine endian.EndianEngine, n int, src []byte, out []byte) int {
	get := func(i int) uint64 { return uint64(engine.Uint16(src[i*2:])) }

	return encodeBlocksFunc(n, blockSize128, get, out)
}

// P4ndenc128v16Len returns the byte length P4ndenc128v16 would produce.
func P4ndenc128v16Len(engine endian.EndianEngine, n int, src []byte) int {
	get := func(i int) uint64 { return uint64(engine.Uint16(src[i*2:])) }

	return encodedBlocksFuncLen(n, blockSize128, get)
}

// P4nddec128v16 reverses P4ndenc128v16.
func P4nddec128v16(engine endian.EndianEngine, n int, compressed []byte, dst []byte) int {
	set := func(i int, v uint64) { engine.PutUint16(dst[i*2:], uint16(v)) }

	return decodeBlocksFunc(compressed, n, blockSize128, set)
}

// P4ndenc128v32 entropy-encodes n plain uint32 elements.
func P4ndenc128v32(engine endian.EndianEngine, n int, src []byte, out []byte) int {
	get := func(i int) uint64 { return uint64(engine.Uint32(src[i*4:])) }

	return encodeBlocksFunc(n, blockSize128, get, out)
}

// P4ndenc128v32Len returns the byte length P4ndenc128v32 would produce.
func P4ndenc128v32Len(engine endian.EndianEngine, n int, src []byte) int {
	get := func(i int) uint64 { return uint64(engine.Uint32(src[i*4:])) }

	return encodedBlocksFuncLen(n, blockSize128, get)
}

// P4nddec128v32 reverses P4ndenc128v32.
func P4nddec128v32(engine endian.EndianEngine, n int, compressed []byte, dst []byte) int {
	set := func(i int, v uint64) { engine.PutUint32(dst[i*4:], uint32(v)) }

	return decodeBlocksFunc(compressed, n, blockSize128, set)
}

// P4ndenc64 entropy-encodes n plain uint64 elements. This is also the coder
// the LUT compressor uses directly over the raw cumulative 64-bit offsets.
func P4ndenc64(engine endian.EndianEngine, n int, src []byte, out []byte) int {
	get := func(i int) uint64 { return engine.Uint64(src[i*8:]) }

	return encodeBlocksFunc(n, blockSize64, get, out)
}

// P4ndenc64Len returns the byte length P4ndenc64 would produce.
func P4ndenc64Len(engine endian.EndianEngine, n int, src []byte) int {
	get := func(i int) uint64 { return engine.Uint64(src[i*8:]) }

	return encodedBlocksFuncLen(n, blockSize64, get)
}

// P4nddec64 reverses P4ndenc64.
func P4nddec64(engine endian.EndianEngine, n int, compressed []byte, dst []byte) int {
	set := func(i int, v uint64) { engine.PutUint64(dst[i*8:], v) }

	return decodeBlocksFunc(compressed, n, blockSize64, set)
}
