// Package entropy implements the integer PFor-style and floating-point
// XOR entropy coders named in the chunk codec's compression configuration.
// These are treated as external, opaque primitives by the chunk package
// (gridded-data codecs normally link TurboPFor's p4nzenc*/p4ndenc* and
// fpxenc32/64 C routines); no Go module in the retrieved pack binds that
// library, so this package provides a from-scratch implementation with the
// documented signatures, grounded on the bit-packing technique demonstrated
// in _examples/other_examples/39386589_Akron-fastpfor-go__fastpfor.go.go.
//
// Simplification versus that reference: the real FastPFOR/TurboPFor layout
// interleaves four SIMD lanes per 128-element block and patches outliers
// separately. This package packs each block as a single sequential
// bitstream at one adaptively chosen width instead, which is simpler to
// verify and keeps the same asymptotic size (one header byte plus
// ceil(n*width/8) payload bytes per block) without requiring SIMD-shaped
// lane math. DESIGN.md records this as a documented, intentional deviation.
package entropy

import "math/bits"

// blockHeaderBytes is the per-block width header: one byte, enough for any
// width up to 64.
const blockHeaderBytes = 1

// requiredWidth returns the minimum number of bits needed to hold every
// value in block without truncation. Returns 0 for an all-zero block.
func requiredWidth(block []uint64) int {
	width := 0
	for _, v := range block {
		if w := bits.Len64(v); w > width {
			width = w
		}
	}

	return width
}

// packBits bit-packs values at the given width into out, LSB-first within
// each accumulated byte, and returns the number of bytes written.
//
// Values are written through bitWriter.writeBits in (at most 64-bit, but
// never more than the writer's free space) chunks rather than shifted
// directly into a single 64-bit accumulator, because a naive
// "acc |= v<<nbits" would silently lose high bits whenever width is close
// to 64 and nbits is already nonzero (width=64 plus any carried-over nbits
// exceeds 64 bits of room).
func packBits(values []uint64, width int, out []byte) int {
	if width == 0 {
		return 0
	}

	w := newBitWriter(out)
	for _, v := range values {
		w.writeBits(v, uint(width))
	}

	return w.flush()
}

// packedLen returns the number of bytes packBits writes for count values at
// the given width.
func packedLen(count, width int) int {
	return (count*width + 7) / 8
}

// unpackBits reverses packBits: reads count values of the given width from
// in and writes them into dst, returning the number of bytes consumed.
func unpackBits(in []byte, count, width int, dst []uint64) int {
	if width == 0 {
		for i := range dst[:count] {
			dst[i] = 0
		}

		return 0
	}

	r := newBitReader(in)
	for i := 0; i < count; i++ {
		dst[i] = r.readBits(uint(width))
	}

	return r.bytesConsumed()
}

// maxBlockSize bounds the block-local scratch array below at the widest
// block variant this package defines (the 128-element v16/v32 PFor
// variants), so encodeBlocksFunc/decodeBlocksFunc never allocate per call:
// the whole chunk codec pipeline promises no heap allocation in the hot
// path once the caller's scratch buffers are provisioned, so these
// adaptors read/write through caller-owned byte buffers via accessor
// closures instead of materializing an intermediate []uint64 of length n.
const maxBlockSize = 128

// encodeBlocksFunc splits n logical elements into fixed-size blocks of
// blockSize (the last block may be shorter), reading each element through
// get, bit-packing each block at its own minimal width, and writing
// [width byte][payload]... sequentially into out. Returns the total number
// of bytes written.
func encodeBlocksFunc(n, blockSize int, get func(int) uint64, out []byte) int {
	var block [maxBlockSize]uint64
	total := 0
	for off := 0; off < n; off += blockSize {
		end := off + blockSize
		if end > n {
			end = n
		}
		count := end - off
		width := 0
		for i := 0; i < count; i++ {
			block[i] = get(off + i)
			if w := bits.Len64(block[i]); w > width {
				width = w
			}
		}
		out[total] = byte(width)
		total++
		total += packBits(block[:count], width, out[total:])
	}

	return total
}

// encodedBlocksFuncLen returns the byte length encodeBlocksFunc would
// produce for n elements, without encoding.
func encodedBlocksFuncLen(n, blockSize int, get func(int) uint64) int {
	total := 0
	for off := 0; off < n; off += blockSize {
		end := off + blockSize
		if end > n {
			end = n
		}
		width := 0
		for i := off; i < end; i++ {
			if w := bits.Len64(get(i)); w > width {
				width = w
			}
		}
		total += blockHeaderBytes + packedLen(end-off, width)
	}

	return total
}

// decodeBlocksFunc reverses encodeBlocksFunc, producing n values from
// compressed and delivering each through set, returning the number of
// input bytes consumed.
func decodeBlocksFunc(compressed []byte, n, blockSize int, set func(int, uint64)) int {
	var block [maxBlockSize]uint64
	consumed := 0
	produced := 0
	for produced < n {
		width := int(compressed[consumed])
		consumed++
		count := blockSize
		if n-produced < blockSize {
			count = n - produced
		}
		consumed += unpackBits(compressed[consumed:], count, width, block[:count])
		for i := 0; i < count; i++ {
			set(produced+i, block[i])
		}
		produced += count
	}

	return consumed
}

// bitWriter accumulates bits LSB-first into out a byte at a time. writeBits
// splits any write wider than the writer's currently free space into two
// chunks so a single call can never overflow the internal accumulator, even
// at the maximum supported width of 64 bits.
type bitWriter struct {
	out  []byte
	pos  int
	acc  uint64
	nbit uint
}

func newBitWriter(out []byte) *bitWriter {
	return &bitWriter{out: out}
}

func (w *bitWriter) writeBits(v uint64, n uint) {
	for n > 0 {
		take := n
		if free := 64 - w.nbit; take > free {
			take = free
		}
		var chunk uint64
		if take == 64 {
			chunk = v
		} else {
			chunk = v & (uint64(1)<<take - 1)
		}
		w.acc |= chunk << w.nbit
		w.nbit += take
		if take < 64 {
			v >>= take
		} else {
			v = 0
		}
		n -= take

		for w.nbit >= 8 {
			w.out[w.pos] = byte(w.acc)
			w.pos++
			w.acc >>= 8
			w.nbit -= 8
		}
	}
}

func (w *bitWriter) flush() int {
	if w.nbit > 0 {
		w.out[w.pos] = byte(w.acc)
		w.pos++
		w.acc = 0
		w.nbit = 0
	}

	return w.pos
}

// bitReader is the inverse of bitWriter, reading bits LSB-first from in.
type bitReader struct {
	in   []byte
	pos  int
	acc  uint64
	nbit uint
}

func newBitReader(in []byte) *bitReader {
	return &bitReader{in: in}
}

func (r *bitReader) readBits(n uint) uint64 {
	var result uint64
	var got uint
	for got < n {
		if r.nbit == 0 {
			r.acc = uint64(r.in[r.pos])
			r.pos++
			r.nbit = 8
		}
		take := n - got
		if take > r.nbit {
			take = r.nbit
		}
		// take is bounded by r.nbit, refilled 8 bits at a time, so it never
		// reaches 64 here (unlike bitWriter's symmetric shift, which must
		// handle up to a full 64-bit write in one call).
		chunk := r.acc & (uint64(1)<<take - 1)
		result |= chunk << got
		got += take
		r.acc >>= take
		r.nbit -= take
	}

	return result
}

func (r *bitReader) bytesConsumed() int {
	return r.pos
}

func zigzagEncode(v int64) uint64 {
	return uint64((v << 1) ^ (v >> 63))
}

func zigzagDecode(v uint64) int64 {
	return int64(v>>1) ^ -int64(v&1)
}
