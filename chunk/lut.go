package chunk

import (
	"github.com/omgrid/omgrid/endian"
	"github.com/omgrid/omgrid/internal/entropy"
)

// LutChunkCount is the number of look-up table entries entropy-encoded
// together as one block, per om_encoder.c's LUT_CHUNK_COUNT.
const LutChunkCount = 256

// LutBufferSize returns the worst-case size of the buffer CompressLut needs
// to encode lookUpTable, by actually encoding every 256-entry block into
// scratch and taking the largest observed length, per
// om_encoder_lut_buffer_size. The result reserves room for every block to
// be as large as the largest one, plus 32 uint64s of encoder overrun room.
func LutBufferSize(engine endian.EndianEngine, lookUpTable []uint64) uint64 {
	var scratch [(LutChunkCount + 32) * 8]byte

	nLutChunks := divideRoundedUp(uint64(len(lookUpTable)), LutChunkCount)
	var maxLength uint64

	for i := uint64(0); i < nLutChunks; i++ {
		rangeStart := i * LutChunkCount
		rangeEnd := minU64(rangeStart+LutChunkCount, uint64(len(lookUpTable)))

		length := uint64(entropy.P4ndenc64(engine, int(rangeEnd-rangeStart), u64ToBytes(engine, lookUpTable[rangeStart:rangeEnd]), scratch[:]))
		if length > maxLength {
			maxLength = length
		}
	}

	return maxLength*nLutChunks + 32*8
}

// CompressLut encodes lookUpTable into out, one fixed-stride 256-entry
// block at a time, zero-padding each block's unused tail bytes so that
// block i always starts at a known offset during decode. out must be at
// least as large as the value LutBufferSize returned. Returns the size of
// the LUT region, compressedLutBufferSize minus the 32-uint64 overrun
// reserve, zero padding included, per om_encoder_compress_lut.
func CompressLut(engine endian.EndianEngine, lookUpTable []uint64, out []byte, compressedLutBufferSize uint64) uint64 {
	nLutChunks := divideRoundedUp(uint64(len(lookUpTable)), LutChunkCount)
	lutSize := compressedLutBufferSize - 32*8
	lutChunkLength := lutSize / nLutChunks

	for i := uint64(0); i < nLutChunks; i++ {
		rangeStart := i * LutChunkCount
		rangeEnd := minU64(rangeStart+LutChunkCount, uint64(len(lookUpTable)))
		slot := out[i*lutChunkLength : (i+1)*lutChunkLength]

		length := uint64(entropy.P4ndenc64(engine, int(rangeEnd-rangeStart), u64ToBytes(engine, lookUpTable[rangeStart:rangeEnd]), slot))
		for j := length; j < lutChunkLength; j++ {
			slot[j] = 0
		}
	}

	return lutSize
}

// DecompressLutEntry decodes the single LUT entry at logical index idx out
// of a LUT buffer laid out by CompressLut. lutChunkLength is the fixed
// per-block stride CompressLut used (lutSize / nLutChunks); lookUpTableCount
// is the original entry count passed to CompressLut.
func DecompressLutEntry(engine endian.EndianEngine, lut []byte, lutChunkLength, lookUpTableCount, idx uint64) uint64 {
	blockIndex := idx / LutChunkCount
	rangeStart := blockIndex * LutChunkCount
	rangeEnd := minU64(rangeStart+LutChunkCount, lookUpTableCount)

	blockBytes := make([]byte, (rangeEnd-rangeStart)*8)
	entropy.P4nddec64(engine, int(rangeEnd-rangeStart), lut[blockIndex*lutChunkLength:], blockBytes)

	return engine.Uint64(blockBytes[(idx-rangeStart)*8:])
}

// u64ToBytes lays out s as raw bytes in engine's byte order, the format
// internal/entropy's P4n*64 codecs read and write.
func u64ToBytes(engine endian.EndianEngine, s []uint64) []byte {
	b := make([]byte, len(s)*8)
	for i, v := range s {
		engine.PutUint64(b[i*8:], v)
	}

	return b
}
