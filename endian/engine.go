// Package endian provides the one defined byte-reinterpretation primitive
// used by omgrid's predictor and quantiser stages to move typed values
// through a chunk's raw byte buffer.
//
// The original om-file-format C implementation reinterprets a chunk buffer's
// bit pattern by casting one pointer type to another (e.g. float* to int*)
// and operating through the alias. That is undefined behavior outside of C
// and is not expressible safely in Go. EndianEngine replaces it: every width
// conversion between a chunk's byte buffer and a typed element goes through
// Engine.Uint16/PutUint16 etc, which is explicit about byte order and carries
// no aliasing risk between mutable references of different types.
//
// Chunk payloads and LUT offsets are always little-endian on the wire (bit-
// exact compatibility with existing files is mandatory), but the engine is
// kept generic over byte order so predictor/quantiser round-trips can be
// tested against both orderings.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary
// into a single interface, satisfied by binary.LittleEndian and
// binary.BigEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the byte order every omgrid chunk payload and
// LUT block is encoded with.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine is provided for round-trip testing against the
// non-native byte order; omgrid never produces big-endian chunk payloads
// itself.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// CheckEndianness reports the host's native byte order.
func CheckEndianness() binary.ByteOrder {
	var probe uint16 = 0x0100
	b := (*[2]byte)(unsafe.Pointer(&probe))

	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}
