// Package predictor implements the Delta2D in-place row predictor used by
// every omgrid chunk codec pipeline.
//
// Forward (encode) subtracts the previous row from each row of a 2-D view of
// the chunk buffer; inverse (decode) adds it back. For floating-point
// variants, XOR against the previous row's bit pattern stands in for
// subtraction/addition, making the transform self-inverse. Both directions
// operate in place and are their own mathematical inverse.
//
// Grounded on _examples/original_source/c/src/delta2d.c. Arithmetic wraps at
// the element's bit width using Go's defined unsigned-overflow semantics
// (the original relies on C's two's-complement wraparound for signed types;
// Go gives the identical bit pattern via unsigned arithmetic of the same
// width, so every width operates through its unsigned reinterpretation).
package predictor

import "github.com/omgrid/omgrid/endian"

// ForwardInt8 transforms buf[d0,d1] -= buf[d0-1,d1] for d0 = length0-1 .. 1,
// leaving row 0 untouched. buf is a row-major [length0][length1] view of
// 1-byte elements.
func ForwardInt8(length0, length1 int, buf []byte) {
	if length0 <= 1 {
		return
	}
	for d0 := length0 - 1; d0 >= 1; d0-- {
		row := d0 * length1
		prev := (d0 - 1) * length1
		for d1 := 0; d1 < length1; d1++ {
			buf[row+d1] -= buf[prev+d1]
		}
	}
}

// InverseInt8 is the exact inverse of ForwardInt8.
func InverseInt8(length0, length1 int, buf []byte) {
	if length0 <= 1 {
		return
	}
	for d0 := 1; d0 < length0; d0++ {
		row := d0 * length1
		prev := (d0 - 1) * length1
		for d1 := 0; d1 < length1; d1++ {
			buf[row+d1] += buf[prev+d1]
		}
	}
}

// ForwardInt16 is ForwardInt8 generalized to 2-byte elements, addressed via
// engine so the transform never aliases a byte buffer as a different
// pointer type.
func ForwardInt16(engine endian.EndianEngine, length0, length1 int, buf []byte) {
	if length0 <= 1 {
		return
	}
	for d0 := length0 - 1; d0 >= 1; d0-- {
		row := d0 * length1 * 2
		prev := (d0 - 1) * length1 * 2
		for d1 := 0; d1 < length1; d1++ {
			off := d1 * 2
			cur := engine.Uint16(buf[row+off:])
			base := engine.Uint16(buf[prev+off:])
			engine.PutUint16(buf[row+off:], cur-base)
		}
	}
}

// InverseInt16 is the exact inverse of ForwardInt16.
func InverseInt16(engine endian.EndianEngine, length0, length1 int, buf []byte) {
	if length0 <= 1 {
		return
	}
	for d0 := 1; d0 < length0; d0++ {
		row := d0 * length1 * 2
		prev := (d0 - 1) * length1 * 2
		for d1 := 0; d1 < length1; d1++ {
			off := d1 * 2
			cur := engine.Uint16(buf[row+off:])
			base := engine.Uint16(buf[prev+off:])
			engine.PutUint16(buf[row+off:], cur+base)
		}
	}
}

// ForwardInt32 is ForwardInt8 generalized to 4-byte elements.
func ForwardInt32(engine endian.EndianEngine, length0, length1 int, buf []byte) {
	if length0 <= 1 {
		return
	}
	for d0 := length0 - 1; d0 >= 1; d0-- {
		row := d0 * length1 * 4
		prev := (d0 - 1) * length1 * 4
		for d1 := 0; d1 < length1; d1++ {
			off := d1 * 4
			cur := engine.Uint32(buf[row+off:])
			base := engine.Uint32(buf[prev+off:])
			engine.PutUint32(buf[row+off:], cur-base)
		}
	}
}

// InverseInt32 is the exact inverse of ForwardInt32.
func InverseInt32(engine endian.EndianEngine, length0, length1 int, buf []byte) {
	if length0 <= 1 {
		return
	}
	for d0 := 1; d0 < length0; d0++ {
		row := d0 * length1 * 4
		prev := (d0 - 1) * length1 * 4
		for d1 := 0; d1 < length1; d1++ {
			off := d1 * 4
			cur := engine.Uint32(buf[row+off:])
			base := engine.Uint32(buf[prev+off:])
			engine.PutUint32(buf[row+off:], cur+base)
		}
	}
}

// ForwardInt64 is ForwardInt8 generalized to 8-byte elements.
func ForwardInt64(engine endian.EndianEngine, length0, length1 int, buf []byte) {
	if length0 <= 1 {
		return
	}
	for d0 := length0 - 1; d0 >= 1; d0-- {
		row := d0 * length1 * 8
		prev := (d0 - 1) * length1 * 8
		for d1 := 0; d1 < length1; d1++ {
			off := d1 * 8
			cur := engine.Uint64(buf[row+off:])
			base := engine.Uint64(buf[prev+off:])
			engine.PutUint64(buf[row+off:], cur-base)
		}
	}
}

// InverseInt64 is the exact inverse of ForwardInt64.
func InverseInt64(engine endian.EndianEngine, length0, length1 int, buf []byte) {
	if length0 <= 1 {
		return
	}
	for d0 := 1; d0 < length0; d0++ {
		row := d0 * length1 * 8
		prev := (d0 - 1) * length1 * 8
		for d1 := 0; d1 < length1; d1++ {
			off := d1 * 8
			cur := engine.Uint64(buf[row+off:])
			base := engine.Uint64(buf[prev+off:])
			engine.PutUint64(buf[row+off:], cur+base)
		}
	}
}

// ForwardFloat32XOR reinterprets each 4-byte element's bit pattern as a
// uint32 and XORs it with the element directly above, preserving NaN and
// -0 bit patterns exactly. XOR is self-inverse, so Forward and Inverse are
// identical; InverseFloat32XOR is provided only for call-site symmetry with
// the integer variants.
func ForwardFloat32XOR(engine endian.EndianEngine, length0, length1 int, buf []byte) {
	xorRows32(engine, length0, length1, buf)
}

// InverseFloat32XOR undoes ForwardFloat32XOR (XOR is its own inverse).
func InverseFloat32XOR(engine endian.EndianEngine, length0, length1 int, buf []byte) {
	xorRows32(engine, length0, length1, buf)
}

func xorRows32(engine endian.EndianEngine, length0, length1 int, buf []byte) {
	if length0 <= 1 {
		return
	}
	for d0 := length0 - 1; d0 >= 1; d0-- {
		row := d0 * length1 * 4
		prev := (d0 - 1) * length1 * 4
		for d1 := 0; d1 < length1; d1++ {
			off := d1 * 4
			cur := engine.Uint32(buf[row+off:])
			base := engine.Uint32(buf[prev+off:])
			engine.PutUint32(buf[row+off:], cur^base)
		}
	}
}

// ForwardFloat64XOR is ForwardFloat32XOR generalized to 8-byte elements,
// XORing the *full* 64-bit bit pattern (not just a 32-bit lane).
func ForwardFloat64XOR(engine endian.EndianEngine, length0, length1 int, buf []byte) {
	xorRows64(engine, length0, length1, buf)
}

// InverseFloat64XOR undoes ForwardFloat64XOR.
func InverseFloat64XOR(engine endian.EndianEngine, length0, length1 int, buf []byte) {
	xorRows64(engine, length0, length1, buf)
}

func xorRows64(engine endian.EndianEngine, length0, length1 int, buf []byte) {
	if length0 <= 1 {
		return
	}
	for d0 := length0 - 1; d0 >= 1; d0-- {
		row := d0 * length1 * 8
		prev := (d0 - 1) * length1 * 8
		for d1 := 0; d1 < length1; d1++ {
			off := d1 * 8
			cur := engine.Uint64(buf[row+off:])
			base := engine.Uint64(buf[prev+off:])
			engine.PutUint64(buf[row+off:], cur^base)
		}
	}
}
