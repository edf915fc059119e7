package entropy

import (
	"math/bits"

	"github.com/omgrid/omgrid/endian"
)

// fpxenc32/64 encode float bit patterns that have already passed through
// the Delta2D XOR predictor, so most values carry a long run of leading
// (and often trailing) zero bits. Each element is stored independently as
// a control bit plus, when non-zero, a leading-zero count, a meaningful-bit
// count and the meaningful bits themselves.
//
// Grounded on _examples/arloliu-mebo/internal/encoding/numeric_gorilla.go's
// leading-zero-count bit-packing, adapted from Gorilla's stateful
// sequential scheme (each value XORed against, and its block size reused
// from, the previous value) to a stateless per-element scheme: the
// cross-row XOR already happened in the predictor stage, so the entropy
// coder here has no "previous value" of its own and packs each residual
// independently. bitWriter/bitReader are shared with the PFor family in
// bitpack.go.
const (
	fpx32LeadingBits    = 5
	fpx32MeaningfulBits = 5
	fpx64LeadingBits    = 6
	fpx64MeaningfulBits = 6
	fpx32Width          = 32
	fpx64Width          = 64
)

// Fpxenc32 entropy-encodes n 4-byte float bit patterns (already XOR-
// predicted) from src into out, returning the compressed length in bytes.
func Fpxenc32(engine endian.EndianEngine, n int, src []byte, out []byte) int {
	w := newBitWriter(out)
	for i := 0; i < n; i++ {
		v := engine.Uint32(src[i*4:])
		if v == 0 {
			w.writeBits(0, 1)
			continue
		}
		w.writeBits(1, 1)
		lead := bits.LeadingZeros32(v)
		significant := fpx32Width - lead
		w.writeBits(uint64(lead), fpx32LeadingBits)
		w.writeBits(uint64(significant-1), fpx32MeaningfulBits)
		w.writeBits(uint64(v), uint(significant))
	}

	return w.flush()
}

// Fpxenc32Len returns the upper-bound byte length Fpxenc32 would produce
// for n elements (one control bit plus, worst case, 5+5+32 bits each).
func Fpxenc32Len(n int) int {
	return (n*(1+fpx32LeadingBits+fpx32MeaningfulBits+fpx32Width) + 7) / 8
}

// Fpxdec32 reverses Fpxenc32, writing n native 4-byte bit patterns into dst
// and returning the number of compressed bytes consumed.
func Fpxdec32(engine endian.EndianEngine, n int, compressed []byte, dst []byte) int {
	r := newBitReader(compressed)
	for i := 0; i < n; i++ {
		if r.readBits(1) == 0 {
			engine.PutUint32(dst[i*4:], 0)
			continue
		}
		r.readBits(fpx32LeadingBits) // leading-zero count; implicit in the zero-extended result below
		significant := int(r.readBits(fpx32MeaningfulBits)) + 1
		engine.PutUint32(dst[i*4:], uint32(r.readBits(uint(significant))))
	}

	return r.bytesConsumed()
}

// Fpxenc64 is Fpxenc32 generalized to 8-byte float bit patterns.
func Fpxenc64(engine endian.EndianEngine, n int, src []byte, out []byte) int {
	w := newBitWriter(out)
	for i := 0; i < n; i++ {
		v := engine.Uint64(src[i*8:])
		if v == 0 {
			w.writeBits(0, 1)
			continue
		}
		w.writeBits(1, 1)
		lead := bits.LeadingZeros64(v)
		significant := fpx64Width - lead
		w.writeBits(uint64(lead), fpx64LeadingBits)
		w.writeBits(uint64(significant-1), fpx64MeaningfulBits)
		w.writeBits(v, uint(significant))
	}

	return w.flush()
}

// Fpxenc64Len returns the upper-bound byte length Fpxenc64 would produce.
func Fpxenc64Len(n int) int {
	return (n*(1+fpx64LeadingBits+fpx64MeaningfulBits+fpx64Width) + 7) / 8
}

// Fpxdec64 reverses Fpxenc64.
func Fpxdec64(engine endian.EndianEngine, n int, compressed []byte, dst []byte) int {
	r := newBitReader(compressed)
	for i := 0; i < n; i++ {
		if r.readBits(1) == 0 {
			engine.PutUint64(dst[i*8:], 0)
			continue
		}
		r.readBits(fpx64LeadingBits)
		significant := int(r.readBits(fpx64MeaningfulBits)) + 1
		engine.PutUint64(dst[i*8:], r.readBits(uint(significant)))
	}

	return r.bytesConsumed()
}
