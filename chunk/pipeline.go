package chunk

import (
	"github.com/omgrid/omgrid/endian"
	"github.com/omgrid/omgrid/internal/entropy"
	"github.com/omgrid/omgrid/internal/predictor"
	"github.com/omgrid/omgrid/internal/quantize"
)

// predictFunc unifies internal/predictor's Forward*/Inverse* signatures.
// Int8 variants ignore the endian engine (a single byte has no byte order);
// wider variants need it to interpret the buffer as a typed row. Wrapping
// both shapes behind one type lets pipeline dispatch stay table-driven.
type predictFunc func(engine endian.EndianEngine, length0, length1 int, buf []byte)

// entropyEncodeFunc unifies internal/entropy's P4nzenc*/P4ndenc*/Fpxenc*
// encoders. Returns the number of bytes written to out.
type entropyEncodeFunc func(engine endian.EndianEngine, n int, src, out []byte) int

// entropyEncodeLenFunc returns the encoded length entropyEncodeFunc would
// produce, without writing anything: exact for the PFor coders, an upper
// bound for the FP-XOR coders.
type entropyEncodeLenFunc func(engine endian.EndianEngine, n int, src []byte) int

// entropyDecodeFunc unifies internal/entropy's P4nzdec*/P4nddec*/Fpxdec*
// decoders.
// Returns the number of compressed bytes consumed.
type entropyDecodeFunc func(engine endian.EndianEngine, n int, compressed, dst []byte) int

// pipeline is the tagged variant selected once at Config construction time
// (spec.md §9 design note: "selected once at configuration time, not
// re-dispatched per element"). It binds together the quantiser, the
// in-place 2-D predictor, and the entropy codec for one (DataType,
// Compression) pair.
type pipeline struct {
	userWidth     int
	internalWidth int
	quantize      quantize.Func
	dequantize    quantize.Func
	predictFwd    predictFunc
	predictInv    predictFunc
	entropyEnc    entropyEncodeFunc
	entropyEncLen entropyEncodeLenFunc
	entropyDec    entropyDecodeFunc
}

func ignoreEngine8Predict(f func(length0, length1 int, buf []byte)) predictFunc {
	return func(_ endian.EndianEngine, length0, length1 int, buf []byte) {
		f(length0, length1, buf)
	}
}

func ignoreEngine8EncodeLen(f func(n int, src []byte) int) entropyEncodeLenFunc {
	return func(_ endian.EndianEngine, n int, src []byte) int {
		return f(n, src)
	}
}

func ignoreEngine8Encode(f func(n int, src, out []byte) int) entropyEncodeFunc {
	return func(_ endian.EndianEngine, n int, src, out []byte) int {
		return f(n, src, out)
	}
}

func ignoreEngine8Decode(f func(n int, compressed, dst []byte) int) entropyDecodeFunc {
	return func(_ endian.EndianEngine, n int, compressed, dst []byte) int {
		return f(n, compressed, dst)
	}
}

var (
	predictInt8Fwd = ignoreEngine8Predict(predictor.ForwardInt8)
	predictInt8Inv = ignoreEngine8Predict(predictor.InverseInt8)

	entropyP4nzenc8    = ignoreEngine8Encode(entropy.P4nzenc8)
	entropyP4nzenc8Len = ignoreEngine8EncodeLen(entropy.P4nzenc8Len)
	entropyP4nzdec8    = ignoreEngine8Decode(entropy.P4nzdec8)

	entropyP4ndenc8    = ignoreEngine8Encode(entropy.P4ndenc8)
	entropyP4ndenc8Len = ignoreEngine8EncodeLen(entropy.P4ndenc8Len)
	entropyP4nddec8    = ignoreEngine8Decode(entropy.P4nddec8)
)

// integerPipeline builds the plain (lossless, no quantisation) integer
// PforDelta2D pipeline for a given width, shared by the signed Int*Array
// and unsigned UInt*Array cases of om_encoder_init's COMPRESSION_PFOR_DELTA2D
// branch.
func integerPipeline(width int, predictFwd, predictInv predictFunc, enc entropyEncodeFunc, encLen entropyEncodeLenFunc, dec entropyDecodeFunc) pipeline {
	var cp quantize.Func
	switch width {
	case 1:
		cp = quantize.Copy8
	case 2:
		cp = quantize.Copy16
	case 4:
		cp = quantize.Copy32
	case 8:
		cp = quantize.Copy64
	}

	return pipeline{
		userWidth:     width,
		internalWidth: width,
		quantize:      cp,
		dequantize:    cp,
		predictFwd:    predictFwd,
		predictInv:    predictInv,
		entropyEnc:    enc,
		entropyEncLen: encLen,
		entropyDec:    dec,
	}
}
