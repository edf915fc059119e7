// Package format defines the wire-level enums shared by omgrid's chunk codec.
//
// Values are bit-exact with the existing om-file format so that files
// produced by one implementation decode correctly in another; do not
// reorder or renumber them.
package format

// DataType identifies the user-facing element type of an array.
//
// Only the *Array variants carry a payload; the scalar values (Int8..Double)
// exist in the full wire enum but are never valid as a chunk's element type
// and are rejected by chunk.NewConfig.
type DataType uint8

const (
	None        DataType = 0
	Int8        DataType = 1
	UInt8       DataType = 2
	Int16       DataType = 3
	UInt16      DataType = 4
	Int32       DataType = 5
	UInt32      DataType = 6
	Int64       DataType = 7
	UInt64      DataType = 8
	Float       DataType = 9
	Double      DataType = 10
	String      DataType = 11
	StringArray DataType = 12
	Int8Array   DataType = 13
	UInt8Array  DataType = 14
	Int16Array  DataType = 15
	UInt16Array DataType = 16
	Int32Array  DataType = 17
	UInt32Array DataType = 18
	Int64Array  DataType = 19
	UInt64Array DataType = 20
	FloatArray  DataType = 21
	DoubleArray DataType = 22
)

func (t DataType) String() string {
	switch t {
	case None:
		return "None"
	case Int8:
		return "Int8"
	case UInt8:
		return "UInt8"
	case Int16:
		return "Int16"
	case UInt16:
		return "UInt16"
	case Int32:
		return "Int32"
	case UInt32:
		return "UInt32"
	case Int64:
		return "Int64"
	case UInt64:
		return "UInt64"
	case Float:
		return "Float"
	case Double:
		return "Double"
	case String:
		return "String"
	case StringArray:
		return "StringArray"
	case Int8Array:
		return "Int8Array"
	case UInt8Array:
		return "UInt8Array"
	case Int16Array:
		return "Int16Array"
	case UInt16Array:
		return "UInt16Array"
	case Int32Array:
		return "Int32Array"
	case UInt32Array:
		return "UInt32Array"
	case Int64Array:
		return "Int64Array"
	case UInt64Array:
		return "UInt64Array"
	case FloatArray:
		return "FloatArray"
	case DoubleArray:
		return "DoubleArray"
	default:
		return "Unknown"
	}
}

// Compression selects the chunk codec pipeline. Values are bit-exact with
// the existing wire format.
type Compression uint8

const (
	PforDelta2D_Int16     Compression = 0
	FpxXor2D              Compression = 1
	PforDelta2D           Compression = 2
	PforDelta2D_Int16_Log Compression = 3
)

func (c Compression) String() string {
	switch c {
	case PforDelta2D_Int16:
		return "PforDelta2D_Int16"
	case FpxXor2D:
		return "FpxXor2D"
	case PforDelta2D:
		return "PforDelta2D"
	case PforDelta2D_Int16_Log:
		return "PforDelta2D_Int16_Log"
	default:
		return "Unknown"
	}
}
