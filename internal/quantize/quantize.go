// Package quantize implements the twelve copy/quantisation variants that
// convert between a user's array element type and a chunk's internal
// (possibly narrower) entropy-coder input type.
//
// Grounded on _examples/original_source/c/src/om_common.c. Rounding uses
// round-half-away-from-zero (math.Round / the float32 equivalent below),
// matching the original's C round()/roundf() on every platform that ships
// the IEEE-754 rounding mode C normally uses; this package documents that
// choice once here rather than at every call site, as spec.md §4.2 requires
// picking and documenting one. Saturation clamps before cast and never
// truncates modularly. The clamp helpers below intentionally replicate C's
// fmaxf/fminf semantics (a NaN operand is ignored in favor of the non-NaN
// one) rather than Go's math.Max/math.Min (which propagate NaN) because the
// log10 quantiser path can produce a NaN from a finite, non-NaN input and
// the original source relies on fmaxf/fminf to silently clamp that case.
package quantize

import (
	"math"

	"github.com/omgrid/omgrid/endian"
)

const (
	int16Max = int16(math.MaxInt16)
	int32Max = int32(math.MaxInt32)
	int64Max = int64(math.MaxInt64)
)

// Func is the common shape of every copy/quantise variant: process length
// elements from src into dst, starting at each slice's beginning. The
// gather/scatter engine supplies correctly-offset sub-slices; Func never
// sees the surrounding array.
type Func func(engine endian.EndianEngine, length int, scaleFactor, addOffset float32, src, dst []byte)

// Copy8 moves length 1-byte elements from src to dst unchanged.
func Copy8(_ endian.EndianEngine, length int, _, _ float32, src, dst []byte) {
	copy(dst[:length], src[:length])
}

// Copy16 moves length 2-byte elements from src to dst unchanged.
func Copy16(_ endian.EndianEngine, length int, _, _ float32, src, dst []byte) {
	copy(dst[:length*2], src[:length*2])
}

// Copy32 moves length 4-byte elements from src to dst unchanged.
func Copy32(_ endian.EndianEngine, length int, _, _ float32, src, dst []byte) {
	copy(dst[:length*4], src[:length*4])
}

// Copy64 moves length 8-byte elements from src to dst unchanged.
func Copy64(_ endian.EndianEngine, length int, _, _ float32, src, dst []byte) {
	copy(dst[:length*8], src[:length*8])
}

// Float32ToInt16Linear quantises length float32 elements into int16:
// q = round(x*scale + offset), clamped to [-32768, 32767], NaN -> INT16_MAX.
func Float32ToInt16Linear(engine endian.EndianEngine, length int, scaleFactor, addOffset float32, src, dst []byte) {
	for i := 0; i < length; i++ {
		val := math.Float32frombits(engine.Uint32(src[i*4:]))
		var q int16
		if isNaN32(val) {
			q = int16Max
		} else {
			scaled := val*scaleFactor + addOffset
			clamped := clampF32(roundF32(scaled), math.MinInt16, math.MaxInt16)
			q = int16(clamped)
		}
		engine.PutUint16(dst[i*2:], uint16(q))
	}
}

// Float32ToInt32Linear quantises length float32 elements into int32:
// q = round(x*scale + offset), clamped to int32 range, NaN -> INT32_MAX.
func Float32ToInt32Linear(engine endian.EndianEngine, length int, scaleFactor, addOffset float32, src, dst []byte) {
	for i := 0; i < length; i++ {
		val := math.Float32frombits(engine.Uint32(src[i*4:]))
		var q int32
		if isNaN32(val) {
			q = int32Max
		} else {
			scaled := val*scaleFactor + addOffset
			clamped := clampF32(roundF32(scaled), math.MinInt32, math.MaxInt32)
			// float32(MaxInt32) rounds up to 2^31, which int32() cannot hold.
			if clamped >= math.MaxInt32 {
				q = int32Max
			} else {
				q = int32(clamped)
			}
		}
		engine.PutUint32(dst[i*4:], uint32(q))
	}
}

// Float64ToInt64Linear quantises length float64 elements into int64 in
// double precision: q = round(x*scale + offset), clamped to int64 range,
// NaN -> INT64_MAX.
func Float64ToInt64Linear(engine endian.EndianEngine, length int, scaleFactor, addOffset float32, src, dst []byte) {
	scale := float64(scaleFactor)
	offset := float64(addOffset)
	for i := 0; i < length; i++ {
		val := math.Float64frombits(engine.Uint64(src[i*8:]))
		var q int64
		if isNaN64(val) {
			q = int64Max
		} else {
			scaled := val*scale + offset
			clamped := clampF64(roundF64(scaled), math.MinInt64, math.MaxInt64)
			// float64(MaxInt64) rounds up to 2^63, which int64() cannot hold.
			if clamped >= math.MaxInt64 {
				q = int64Max
			} else {
				q = int64(clamped)
			}
		}
		engine.PutUint64(dst[i*8:], uint64(q))
	}
}

// Float32ToInt16Log10 quantises length float32 elements as
// q = round(log10(1+x) * scale); add_offset is ignored on both encode and
// decode to preserve round-trip symmetry (spec.md §4.2, §9(b)).
func Float32ToInt16Log10(engine endian.EndianEngine, length int, scaleFactor, _ float32, src, dst []byte) {
	for i := 0; i < length; i++ {
		val := math.Float32frombits(engine.Uint32(src[i*4:]))
		var q int16
		if isNaN32(val) {
			q = int16Max
		} else {
			scaled := log10f(1+val) * scaleFactor
			clamped := clampF32(roundF32(scaled), math.MinInt16, math.MaxInt16)
			q = int16(clamped)
		}
		engine.PutUint16(dst[i*2:], uint16(q))
	}
}

// Int16ToFloat32Linear dequantises length int16 elements into float32:
// x = q/scale - offset; the INT16_MAX sentinel maps back to NaN.
func Int16ToFloat32Linear(engine endian.EndianEngine, length int, scaleFactor, addOffset float32, src, dst []byte) {
	for i := 0; i < length; i++ {
		q := int16(engine.Uint16(src[i*2:]))
		var val float32
		if q == int16Max {
			val = float32(math.NaN())
		} else {
			val = float32(q)/scaleFactor - addOffset
		}
		engine.PutUint32(dst[i*4:], math.Float32bits(val))
	}
}

// Int32ToFloat32Linear dequantises length int32 elements into float32:
// x = q/scale - offset; the INT32_MAX sentinel maps back to NaN.
func Int32ToFloat32Linear(engine endian.EndianEngine, length int, scaleFactor, addOffset float32, src, dst []byte) {
	for i := 0; i < length; i++ {
		q := int32(engine.Uint32(src[i*4:]))
		var val float32
		if q == int32Max {
			val = float32(math.NaN())
		} else {
			val = float32(q)/scaleFactor - addOffset
		}
		engine.PutUint32(dst[i*4:], math.Float32bits(val))
	}
}

// Int64ToFloat64Linear dequantises length int64 elements into float64 in
// double precision: x = q/scale - offset; the INT64_MAX sentinel maps back
// to NaN.
func Int64ToFloat64Linear(engine endian.EndianEngine, length int, scaleFactor, addOffset float32, src, dst []byte) {
	scale := float64(scaleFactor)
	offset := float64(addOffset)
	for i := 0; i < length; i++ {
		q := int64(engine.Uint64(src[i*8:]))
		var val float64
		if q == int64Max {
			val = math.NaN()
		} else {
			val = float64(q)/scale - offset
		}
		engine.PutUint64(dst[i*8:], math.Float64bits(val))
	}
}

// Int16ToFloat32Log10 dequantises length int16 elements as
// x = 10^(q/scale) - 1; add_offset is ignored to match Float32ToInt16Log10;
// the INT16_MAX sentinel maps back to NaN.
func Int16ToFloat32Log10(engine endian.EndianEngine, length int, scaleFactor, _ float32, src, dst []byte) {
	for i := 0; i < length; i++ {
		q := int16(engine.Uint16(src[i*2:]))
		var val float32
		if q == int16Max {
			val = float32(math.NaN())
		} else {
			val = powf(10, float32(q)/scaleFactor) - 1
		}
		engine.PutUint32(dst[i*4:], math.Float32bits(val))
	}
}

func isNaN32(v float32) bool { return v != v }
func isNaN64(v float64) bool { return v != v }

// roundF32/roundF64 implement round-half-away-from-zero, matching C's
// round()/roundf().
func roundF32(v float32) float32 { return float32(math.Round(float64(v))) }
func roundF64(v float64) float64 { return math.Round(v) }

func log10f(v float32) float32 { return float32(math.Log10(float64(v))) }
func powf(base, exp float32) float32 {
	return float32(math.Pow(float64(base), float64(exp)))
}

// clampF32/clampF64 replicate C's fmaxf(lo, fminf(hi, v)): a NaN operand in
// either fmin or fmax is ignored in favor of the other, non-NaN operand.
func clampF32(v, lo, hi float32) float32 {
	return fmaxf32(lo, fminf32(hi, v))
}

func clampF64(v, lo, hi float64) float64 {
	return fmaxf64(lo, fminf64(hi, v))
}

func fminf32(a, b float32) float32 {
	if isNaN32(a) {
		return b
	}
	if isNaN32(b) {
		return a
	}
	if a < b {
		return a
	}

	return b
}

func fmaxf32(a, b float32) float32 {
	if isNaN32(a) {
		return b
	}
	if isNaN32(b) {
		return a
	}
	if a > b {
		return a
	}

	return b
}

func fminf64(a, b float64) float64 {
	if isNaN64(a) {
		return b
	}
	if isNaN64(b) {
		return a
	}
	if a < b {
		return a
	}

	return b
}

func fmaxf64(a, b float64) float64 {
	if isNaN64(a) {
		return b
	}
	if isNaN64(b) {
		return a
	}
	if a > b {
		return a
	}

	return b
}
