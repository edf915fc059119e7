package chunk

import "fmt"

// CompressChunk gathers the elements of one chunk out of a (possibly
// offset, possibly partial) source array view, quantises and predicts them
// in place, and entropy-encodes the result into out. It is a direct port of
// om_encoder_compress_chunk: dimensions/chunks in desc describe the full
// logical array's shape, while arrayDimensions/arrayOffset/arrayCount
// describe the shape and position of the caller's actual in-memory source
// buffer, which may be a sub-region of that logical array (spec.md §4.4
// Scenario D).
//
// array holds arrayDimensions's elements at cfg's user element width.
// chunkBuffer is scratch of at least cfg.ChunkBufferSize(desc) bytes; out
// must be at least cfg.CompressedChunkBufferSize(desc) bytes. Returns the
// number of bytes written to out.
//
// chunkIndex addresses the chunk within desc's own chunk grid.
// chunkIndexOffsetInThisArray addresses the same chunk within the grid of
// arrayDimensions, needed when array is itself a sub-region whose own
// internal chunking differs from desc's (spec.md §4.4).
func CompressChunk(
	cfg Config,
	desc Descriptor,
	array []byte,
	arrayDimensions, arrayOffset, arrayCount []uint64,
	chunkIndex, chunkIndexOffsetInThisArray uint64,
	out, chunkBuffer []byte,
) (int, error) {
	r := desc.Rank()
	if len(arrayDimensions) != r || len(arrayOffset) != r || len(arrayCount) != r {
		return 0, fmt.Errorf("%w: arrayDimensions=%d arrayOffset=%d arrayCount=%d, rank=%d",
			ErrRankArgMismatch, len(arrayDimensions), len(arrayOffset), len(arrayCount), r)
	}

	userWidth := uint64(cfg.pipeline.userWidth)
	internalWidth := uint64(cfg.pipeline.internalWidth)

	var arrayTotalCount uint64 = 1
	for i := 0; i < r; i++ {
		arrayTotalCount *= arrayDimensions[i]
	}

	var (
		rollingMultiply             uint64 = 1
		rollingMultiplyChunkLength  uint64 = 1
		rollingMultiplyTargetCube   uint64 = 1
		readCoordinate              uint64
		writeCoordinate             uint64
		linearReadCount             uint64 = 1
		linearRead                         = true
		lengthLast                  uint64
	)

	for iForward := 0; iForward < r; iForward++ {
		i := r - iForward - 1
		dimension := desc.Dimensions[i]
		chunkExtent := desc.Chunks[i]

		nChunksInThisDimension := divideRoundedUp(dimension, chunkExtent)
		c0 := (chunkIndex / rollingMultiply) % nChunksInThisDimension
		c0Offset := (chunkIndexOffsetInThisArray / rollingMultiply) % nChunksInThisDimension
		length0 := minU64((c0+1)*chunkExtent, dimension) - c0*chunkExtent

		if i == r-1 {
			lengthLast = length0
		}

		readCoordinate += rollingMultiplyTargetCube * (c0Offset*desc.Chunks[i] + arrayOffset[i])
		if length0 > arrayCount[i] || length0 > arrayDimensions[i] {
			panic(fmt.Sprintf("chunk: invariant violated at axis %d: length0=%d arrayCount=%d arrayDimensions=%d", i, length0, arrayCount[i], arrayDimensions[i]))
		}

		if i == r-1 && !(arrayCount[i] == length0 && arrayDimensions[i] == length0) {
			linearReadCount = length0
			linearRead = false
		}
		if linearRead && arrayCount[i] == length0 && arrayDimensions[i] == length0 {
			linearReadCount *= length0
		} else {
			linearRead = false
		}

		rollingMultiply *= nChunksInThisDimension
		rollingMultiplyTargetCube *= arrayDimensions[i]
		rollingMultiplyChunkLength *= length0
	}

	lengthInChunk := rollingMultiplyChunkLength

	for {
		if readCoordinate+linearReadCount > arrayTotalCount {
			panic("chunk: read cursor would exceed source array bounds")
		}
		if writeCoordinate+linearReadCount > lengthInChunk {
			panic("chunk: write cursor would exceed chunk bounds")
		}

		cfg.pipeline.quantize(
			cfg.Engine,
			int(linearReadCount),
			cfg.ScaleFactor, cfg.AddOffset,
			array[userWidth*readCoordinate:],
			chunkBuffer[internalWidth*writeCoordinate:],
		)

		readCoordinate += linearReadCount - 1
		writeCoordinate += linearReadCount - 1
		writeCoordinate++

		rollingMultiplyTargetCube = 1
		linearRead = true
		linearReadCount = 1

		for iForward := 0; iForward < r; iForward++ {
			i := r - iForward - 1
			chunkExtent := desc.Chunks[i]

			qPos := ((readCoordinate/rollingMultiplyTargetCube)%arrayDimensions[i] - arrayOffset[i]) / chunkExtent
			length0 := minU64((qPos+1)*chunkExtent, arrayCount[i]) - qPos*chunkExtent
			readCoordinate += rollingMultiplyTargetCube

			if i == r-1 && !(arrayCount[i] == length0 && arrayDimensions[i] == length0) {
				linearReadCount = length0
				linearRead = false
			}
			if linearRead && arrayCount[i] == length0 && arrayDimensions[i] == length0 {
				linearReadCount *= length0
			} else {
				linearRead = false
			}

			q0 := ((readCoordinate/rollingMultiplyTargetCube)%arrayDimensions[i] - arrayOffset[i]) % desc.Chunks[i]
			if q0 != 0 && q0 != length0 {
				goto nextOuterIteration
			}

			readCoordinate -= length0 * rollingMultiplyTargetCube
			rollingMultiplyTargetCube *= arrayDimensions[i]

			if i == 0 {
				cfg.pipeline.predictFwd(cfg.Engine, int(lengthInChunk/lengthLast), int(lengthLast), chunkBuffer)
				n := cfg.pipeline.entropyEnc(cfg.Engine, int(lengthInChunk), chunkBuffer, out)

				return n, nil
			}
		}
	nextOuterIteration:
		continue
	}
}

// DecompressChunk is the inverse of CompressChunk: it entropy-decodes one
// chunk's compressed bytes, applies the predictor's inverse transform, and
// scatters the dequantised elements into their place inside a destination
// array view. See CompressChunk for the shared addressing semantics of
// desc/arrayDimensions/arrayOffset/arrayCount/chunkIndex.
//
// array is the caller's destination buffer, shaped per arrayDimensions, at
// cfg's user element width. chunkBuffer is scratch of at least
// cfg.ChunkBufferSize(desc) bytes. Returns the number of compressed bytes
// consumed from compressed.
func DecompressChunk(
	cfg Config,
	desc Descriptor,
	compressed []byte,
	arrayDimensions, arrayOffset, arrayCount []uint64,
	chunkIndex, chunkIndexOffsetInThisArray uint64,
	array, chunkBuffer []byte,
) (int, error) {
	r := desc.Rank()
	if len(arrayDimensions) != r || len(arrayOffset) != r || len(arrayCount) != r {
		return 0, fmt.Errorf("%w: arrayDimensions=%d arrayOffset=%d arrayCount=%d, rank=%d",
			ErrRankArgMismatch, len(arrayDimensions), len(arrayOffset), len(arrayCount), r)
	}

	userWidth := uint64(cfg.pipeline.userWidth)
	internalWidth := uint64(cfg.pipeline.internalWidth)

	var arrayTotalCount uint64 = 1
	for i := 0; i < r; i++ {
		arrayTotalCount *= arrayDimensions[i]
	}

	var (
		rollingMultiply            uint64 = 1
		rollingMultiplyChunkLength uint64 = 1
		rollingMultiplyTargetCube  uint64 = 1
		writeCoordinate            uint64
		readCoordinate             uint64
		linearWriteCount           uint64 = 1
		linearWrite                       = true
		lengthLast                 uint64
	)

	for iForward := 0; iForward < r; iForward++ {
		i := r - iForward - 1
		dimension := desc.Dimensions[i]
		chunkExtent := desc.Chunks[i]

		nChunksInThisDimension := divideRoundedUp(dimension, chunkExtent)
		c0 := (chunkIndex / rollingMultiply) % nChunksInThisDimension
		c0Offset := (chunkIndexOffsetInThisArray / rollingMultiply) % nChunksInThisDimension
		length0 := minU64((c0+1)*chunkExtent, dimension) - c0*chunkExtent

		if i == r-1 {
			lengthLast = length0
		}

		writeCoordinate += rollingMultiplyTargetCube * (c0Offset*desc.Chunks[i] + arrayOffset[i])
		if length0 > arrayCount[i] || length0 > arrayDimensions[i] {
			panic(fmt.Sprintf("chunk: invariant violated at axis %d: length0=%d arrayCount=%d arrayDimensions=%d", i, length0, arrayCount[i], arrayDimensions[i]))
		}

		if i == r-1 && !(arrayCount[i] == length0 && arrayDimensions[i] == length0) {
			linearWriteCount = length0
			linearWrite = false
		}
		if linearWrite && arrayCount[i] == length0 && arrayDimensions[i] == length0 {
			linearWriteCount *= length0
		} else {
			linearWrite = false
		}

		rollingMultiply *= nChunksInThisDimension
		rollingMultiplyTargetCube *= arrayDimensions[i]
		rollingMultiplyChunkLength *= length0
	}

	lengthInChunk := rollingMultiplyChunkLength

	consumed := cfg.pipeline.entropyDec(cfg.Engine, int(lengthInChunk), compressed, chunkBuffer)
	cfg.pipeline.predictInv(cfg.Engine, int(lengthInChunk/lengthLast), int(lengthLast), chunkBuffer)

	for {
		if writeCoordinate+linearWriteCount > arrayTotalCount {
			panic("chunk: write cursor would exceed destination array bounds")
		}
		if readCoordinate+linearWriteCount > lengthInChunk {
			panic("chunk: read cursor would exceed chunk bounds")
		}

		cfg.pipeline.dequantize(
			cfg.Engine,
			int(linearWriteCount),
			cfg.ScaleFactor, cfg.AddOffset,
			chunkBuffer[internalWidth*readCoordinate:],
			array[userWidth*writeCoordinate:],
		)

		writeCoordinate += linearWriteCount - 1
		readCoordinate += linearWriteCount - 1
		readCoordinate++

		rollingMultiplyTargetCube = 1
		linearWrite = true
		linearWriteCount = 1

		for iForward := 0; iForward < r; iForward++ {
			i := r - iForward - 1
			chunkExtent := desc.Chunks[i]

			qPos := ((writeCoordinate/rollingMultiplyTargetCube)%arrayDimensions[i] - arrayOffset[i]) / chunkExtent
			length0 := minU64((qPos+1)*chunkExtent, arrayCount[i]) - qPos*chunkExtent
			writeCoordinate += rollingMultiplyTargetCube

			if i == r-1 && !(arrayCount[i] == length0 && arrayDimensions[i] == length0) {
				linearWriteCount = length0
				linearWrite = false
			}
			if linearWrite && arrayCount[i] == length0 && arrayDimensions[i] == length0 {
				linearWriteCount *= length0
			} else {
				linearWrite = false
			}

			q0 := ((writeCoordinate/rollingMultiplyTargetCube)%arrayDimensions[i] - arrayOffset[i]) % desc.Chunks[i]
			if q0 != 0 && q0 != length0 {
				goto nextOuterIteration
			}

			writeCoordinate -= length0 * rollingMultiplyTargetCube
			rollingMultiplyTargetCube *= arrayDimensions[i]

			if i == 0 {
				return consumed, nil
			}
		}
	nextOuterIteration:
		continue
	}
}
