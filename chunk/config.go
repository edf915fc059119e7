package chunk

import (
	"fmt"

	"github.com/omgrid/omgrid/endian"
	"github.com/omgrid/omgrid/errs"
	"github.com/omgrid/omgrid/format"
	"github.com/omgrid/omgrid/internal/entropy"
	"github.com/omgrid/omgrid/internal/predictor"
	"github.com/omgrid/omgrid/internal/quantize"
)

// ElementWidths reports the user-facing and in-chunk byte width of one
// array element for a given (DataType, Compression) pair, per spec.md §6
// Supplement 1. User and Internal differ only for the Int16-quantised float
// paths (PforDelta2D_Int16, PforDelta2D_Int16_Log), where a 4-byte float is
// stored as a 2-byte quantised integer inside the chunk.
type ElementWidths struct {
	User     int
	Internal int
}

// ElementSize validates (dataType, compression) and reports the element
// widths that compression would use, without building a full Config. It
// mirrors the validating switch inside om_encoder_init, which is stricter
// than the standalone om_get_element_size query: FpxXor2D and the Int16
// variants are restricted to float data types, matching the pipeline that
// NewConfig actually wires up.
func ElementSize(dataType format.DataType, compression format.Compression) (ElementWidths, error) {
	switch compression {
	case format.PforDelta2D_Int16, format.PforDelta2D_Int16_Log:
		if dataType != format.FloatArray {
			return ElementWidths{}, fmt.Errorf("%w: %s requires FloatArray, got %s", errs.ErrInvalidDataType, compression, dataType)
		}

		return ElementWidths{User: 4, Internal: 2}, nil

	case format.PforDelta2D:
		w, ok := nativeWidth(dataType)
		if !ok {
			return ElementWidths{}, fmt.Errorf("%w: %s does not support %s", errs.ErrInvalidDataType, compression, dataType)
		}

		return ElementWidths{User: w, Internal: w}, nil

	case format.FpxXor2D:
		switch dataType {
		case format.FloatArray:
			return ElementWidths{User: 4, Internal: 4}, nil
		case format.DoubleArray:
			return ElementWidths{User: 8, Internal: 8}, nil
		default:
			return ElementWidths{}, fmt.Errorf("%w: %s requires FloatArray or DoubleArray, got %s", errs.ErrInvalidDataType, compression, dataType)
		}

	default:
		return ElementWidths{}, fmt.Errorf("%w: %d", errs.ErrInvalidCompressionType, compression)
	}
}

func nativeWidth(dataType format.DataType) (int, bool) {
	switch dataType {
	case format.Int8Array, format.UInt8Array:
		return 1, true
	case format.Int16Array, format.UInt16Array:
		return 2, true
	case format.Int32Array, format.UInt32Array, format.FloatArray:
		return 4, true
	case format.Int64Array, format.UInt64Array, format.DoubleArray:
		return 8, true
	default:
		return 0, false
	}
}

// Config holds the element type, compression pipeline, and quantisation
// parameters used to compress or decompress every chunk of one array.
// The pipeline is resolved once in NewConfig rather than re-dispatched per
// element, per spec.md §9.
type Config struct {
	DataType    format.DataType
	Compression format.Compression
	ScaleFactor float32
	AddOffset   float32
	Engine      endian.EndianEngine

	pipeline pipeline
}

// NewConfig validates dataType/compression and builds the Config's codec
// pipeline. engine selects the byte order used when interpreting multi-byte
// elements; pass endian.GetLittleEndianEngine() unless the caller has a
// specific reason to match another file's byte order.
func NewConfig(dataType format.DataType, compression format.Compression, scaleFactor, addOffset float32, engine endian.EndianEngine) (Config, error) {
	p, err := buildPipeline(dataType, compression)
	if err != nil {
		return Config{}, err
	}

	return Config{
		DataType:    dataType,
		Compression: compression,
		ScaleFactor: scaleFactor,
		AddOffset:   addOffset,
		Engine:      engine,
		pipeline:    p,
	}, nil
}

// ElementWidths reports this Config's user-facing and in-chunk element
// widths.
func (c Config) ElementWidths() ElementWidths {
	return ElementWidths{User: c.pipeline.userWidth, Internal: c.pipeline.internalWidth}
}

func buildPipeline(dataType format.DataType, compression format.Compression) (pipeline, error) {
	if _, err := ElementSize(dataType, compression); err != nil {
		return pipeline{}, err
	}

	switch compression {
	case format.PforDelta2D:
		return buildPforDelta2DPipeline(dataType)
	case format.PforDelta2D_Int16:
		return pipeline{
			userWidth: 4, internalWidth: 2,
			quantize:      quantize.Float32ToInt16Linear,
			dequantize:    quantize.Int16ToFloat32Linear,
			predictFwd:    predictor.ForwardInt16,
			predictInv:    predictor.InverseInt16,
			entropyEnc:    entropy.P4nzenc128v16,
			entropyEncLen: entropy.P4nzenc128v16Len,
			entropyDec:    entropy.P4nzdec128v16,
		}, nil
	case format.PforDelta2D_Int16_Log:
		return pipeline{
			userWidth: 4, internalWidth: 2,
			quantize:      quantize.Float32ToInt16Log10,
			dequantize:    quantize.Int16ToFloat32Log10,
			predictFwd:    predictor.ForwardInt16,
			predictInv:    predictor.InverseInt16,
			entropyEnc:    entropy.P4nzenc128v16,
			entropyEncLen: entropy.P4nzenc128v16Len,
			entropyDec:    entropy.P4nzdec128v16,
		}, nil
	case format.FpxXor2D:
		return buildFpxXor2DPipeline(dataType)
	default:
		return pipeline{}, fmt.Errorf("%w: %d", errs.ErrInvalidCompressionType, compression)
	}
}

func buildPforDelta2DPipeline(dataType format.DataType) (pipeline, error) {
	switch dataType {
	case format.Int8Array:
		return integerPipeline(1, predictInt8Fwd, predictInt8Inv, entropyP4nzenc8, entropyP4nzenc8Len, entropyP4nzdec8), nil
	case format.UInt8Array:
		return integerPipeline(1, predictInt8Fwd, predictInt8Inv, entropyP4ndenc8, entropyP4ndenc8Len, entropyP4nddec8), nil
	case format.Int16Array:
		return integerPipeline(2, predictor.ForwardInt16, predictor.InverseInt16, entropy.P4nzenc128v16, entropy.P4nzenc128v16Len, entropy.P4nzdec128v16), nil
	case format.UInt16Array:
		return integerPipeline(2, predictor.ForwardInt16, predictor.InverseInt16, entropy.P4ndenc128v16, entropy.P4ndenc128v16Len, entropy.P4nddec128v16), nil
	case format.Int32Array:
		return integerPipeline(4, predictor.ForwardInt32, predictor.InverseInt32, entropy.P4nzenc128v32, entropy.P4nzenc128v32Len, entropy.P4nzdec128v32), nil
	case format.UInt32Array:
		return integerPipeline(4, predictor.ForwardInt32, predictor.InverseInt32, entropy.P4ndenc128v32, entropy.P4ndenc128v32Len, entropy.P4nddec128v32), nil
	case format.Int64Array:
		return integerPipeline(8, predictor.ForwardInt64, predictor.InverseInt64, entropy.P4nzenc64, entropy.P4nzenc64Len, entropy.P4nzdec64), nil
	case format.UInt64Array:
		return integerPipeline(8, predictor.ForwardInt64, predictor.InverseInt64, entropy.P4ndenc64, entropy.P4ndenc64Len, entropy.P4nddec64), nil
	case format.FloatArray:
		// om_encoder_init quantises the full-width float into an int32
		// (om_common_copy_float_to_int32) rather than copying its bit
		// pattern; this is a lossy path even at "full" width.
		return pipeline{
			userWidth: 4, internalWidth: 4,
			quantize:      quantize.Float32ToInt32Linear,
			dequantize:    quantize.Int32ToFloat32Linear,
			predictFwd:    predictor.ForwardInt32,
			predictInv:    predictor.InverseInt32,
			entropyEnc:    entropy.P4nzenc128v32,
			entropyEncLen: entropy.P4nzenc128v32Len,
			entropyDec:    entropy.P4nzdec128v32,
		}, nil
	case format.DoubleArray:
		return pipeline{
			userWidth: 8, internalWidth: 8,
			quantize:      quantize.Float64ToInt64Linear,
			dequantize:    quantize.Int64ToFloat64Linear,
			predictFwd:    predictor.ForwardInt64,
			predictInv:    predictor.InverseInt64,
			entropyEnc:    entropy.P4nzenc64,
			entropyEncLen: entropy.P4nzenc64Len,
			entropyDec:    entropy.P4nzdec64,
		}, nil
	default:
		return pipeline{}, fmt.Errorf("%w: PforDelta2D does not support %s", errs.ErrInvalidDataType, dataType)
	}
}

func buildFpxXor2DPipeline(dataType format.DataType) (pipeline, error) {
	switch dataType {
	case format.FloatArray:
		return pipeline{
			userWidth: 4, internalWidth: 4,
			quantize:      quantize.Copy32,
			dequantize:    quantize.Copy32,
			predictFwd:    predictor.ForwardFloat32XOR,
			predictInv:    predictor.InverseFloat32XOR,
			entropyEnc:    entropy.Fpxenc32,
			entropyEncLen: func(_ endian.EndianEngine, n int, _ []byte) int { return entropy.Fpxenc32Len(n) },
			entropyDec:    entropy.Fpxdec32,
		}, nil
	case format.DoubleArray:
		return pipeline{
			userWidth: 8, internalWidth: 8,
			quantize:      quantize.Copy64,
			dequantize:    quantize.Copy64,
			predictFwd:    predictor.ForwardFloat64XOR,
			predictInv:    predictor.InverseFloat64XOR,
			entropyEnc:    entropy.Fpxenc64,
			entropyEncLen: func(_ endian.EndianEngine, n int, _ []byte) int { return entropy.Fpxenc64Len(n) },
			entropyDec:    entropy.Fpxdec64,
		}, nil
	default:
		return pipeline{}, fmt.Errorf("%w: FpxXor2D does not support %s", errs.ErrInvalidDataType, dataType)
	}
}

// ChunkBufferSize returns the number of internal-width bytes one chunk's
// scratch buffer must hold: product(chunks[i]) * internalWidth, per
// om_encoder_chunk_buffer_size.
func (c Config) ChunkBufferSize(desc Descriptor) uint64 {
	n := uint64(1)
	for _, v := range desc.Chunks {
		n *= v
	}

	return n * uint64(c.pipeline.internalWidth)
}

// CompressedChunkBufferSize returns the worst-case size of one chunk's
// compressed output buffer: the P4NENC256_BOUND formula
// (n+255)/256 + (n+32)*bytesPerElementCompressed, where n is the chunk's
// element count, per om_encoder_compressed_chunk_buffer_size.
func (c Config) CompressedChunkBufferSize(desc Descriptor) uint64 {
	n := uint64(1)
	for _, v := range desc.Chunks {
		n *= v
	}

	w := uint64(c.pipeline.internalWidth)

	return (n+255)/256 + (n+32)*w
}
