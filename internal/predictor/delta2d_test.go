package predictor

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/omgrid/omgrid/endian"
	"github.com/stretchr/testify/require"
)

func TestForwardInt16_ScenarioA(t *testing.T) {
	engine := endian.GetLittleEndianEngine()

	buf := make([]byte, 2*3*2)
	vals := []int16{1, 2, 3, 4, 6, 8}
	for i, v := range vals {
		engine.PutUint16(buf[i*2:], uint16(v))
	}

	ForwardInt16(engine, 2, 3, buf)

	row0 := readInt16Row(engine, buf, 0, 3)
	row1 := readInt16Row(engine, buf, 1, 3)
	require.Equal(t, []int16{1, 2, 3}, row0, "top row must be untouched")
	require.Equal(t, []int16{3, 4, 5}, row1)

	InverseInt16(engine, 2, 3, buf)
	row1 = readInt16Row(engine, buf, 1, 3)
	require.Equal(t, []int16{4, 6, 8}, row1)
}

func readInt16Row(engine endian.EndianEngine, buf []byte, row, length1 int) []int16 {
	out := make([]int16, length1)
	for i := range out {
		out[i] = int16(engine.Uint16(buf[(row*length1+i)*2:]))
	}

	return out
}

func TestDelta2D_SingleRowIsNoOp(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	buf := make([]byte, 4*4)
	for i := range buf {
		buf[i] = byte(i + 1)
	}
	orig := append([]byte(nil), buf...)

	ForwardInt32(engine, 1, 1, buf)
	require.Equal(t, orig, buf)

	InverseInt32(engine, 1, 1, buf)
	require.Equal(t, orig, buf)
}

func TestDelta2D_InverseIsExactInverse_AllWidths(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	rng := rand.New(rand.NewPCG(1, 2))

	for trial := 0; trial < 200; trial++ {
		length0 := rng.IntN(8) + 1
		length1 := rng.IntN(8) + 1

		t.Run("int8", func(t *testing.T) {
			buf := randomBytes(rng, length0*length1)
			orig := append([]byte(nil), buf...)
			ForwardInt8(length0, length1, buf)
			InverseInt8(length0, length1, buf)
			require.Equal(t, orig, buf)
		})
		t.Run("int16", func(t *testing.T) {
			buf := randomBytes(rng, length0*length1*2)
			orig := append([]byte(nil), buf...)
			ForwardInt16(engine, length0, length1, buf)
			InverseInt16(engine, length0, length1, buf)
			require.Equal(t, orig, buf)
		})
		t.Run("int32", func(t *testing.T) {
			buf := randomBytes(rng, length0*length1*4)
			orig := append([]byte(nil), buf...)
			ForwardInt32(engine, length0, length1, buf)
			InverseInt32(engine, length0, length1, buf)
			require.Equal(t, orig, buf)
		})
		t.Run("int64", func(t *testing.T) {
			buf := randomBytes(rng, length0*length1*8)
			orig := append([]byte(nil), buf...)
			ForwardInt64(engine, length0, length1, buf)
			InverseInt64(engine, length0, length1, buf)
			require.Equal(t, orig, buf)
		})
	}
}

func randomBytes(rng *rand.Rand, n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(rng.IntN(256))
	}

	return b
}

func TestForwardFloat32XOR_PreservesNaNAndNegativeZero(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	vals := []float32{float32(math.NaN()), 1.5, float32(math.Copysign(0, -1)), -2.25}
	buf := make([]byte, len(vals)*4)
	for i, v := range vals {
		engine.PutUint32(buf[i*4:], math.Float32bits(v))
	}

	ForwardFloat32XOR(engine, len(vals), 1, buf)
	InverseFloat32XOR(engine, len(vals), 1, buf)

	for i, v := range vals {
		got := math.Float32frombits(engine.Uint32(buf[i*4:]))
		if math.IsNaN(float64(v)) {
			require.True(t, math.IsNaN(float64(got)))
			continue
		}
		require.Equal(t, math.Float32bits(v), math.Float32bits(got))
	}
}

func TestForwardFloat64XOR_FullWidth(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	vals := []float64{math.NaN(), 1.5, math.Copysign(0, -1), -2.25, 1e300}
	buf := make([]byte, len(vals)*8)
	for i, v := range vals {
		engine.PutUint64(buf[i*8:], math.Float64bits(v))
	}

	ForwardFloat64XOR(engine, len(vals), 1, buf)
	InverseFloat64XOR(engine, len(vals), 1, buf)

	for i, v := range vals {
		got := math.Float64frombits(engine.Uint64(buf[i*8:]))
		if math.IsNaN(v) {
			require.True(t, math.IsNaN(got))
			continue
		}
		require.Equal(t, math.Float64bits(v), math.Float64bits(got))
	}
}

func TestDelta2D_IdentityPermutationIsNoOpAtLength0One(t *testing.T) {
	// Scenario C from the spec: chunk shape [100] means length0=1 in the
	// 2-D view (lengthLast = 100), so Delta2D must be a no-op.
	engine := endian.GetLittleEndianEngine()
	buf := make([]byte, 100*4)
	for i := 0; i < 100; i++ {
		engine.PutUint32(buf[i*4:], uint32(i))
	}
	orig := append([]byte(nil), buf...)

	ForwardInt32(engine, 1, 100, buf)
	require.Equal(t, orig, buf)
}
