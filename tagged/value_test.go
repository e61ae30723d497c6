package tagged

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func Test_Value_IntRoundTrip(t *testing.T) {
	v := FromInt(-42)
	require.Equal(t, int32(-42), v.AsInt())
}

func Test_Value_Float32RoundTrip(t *testing.T) {
	v := FromFloat32(3.5)
	require.Equal(t, float32(3.5), v.AsFloat32())
}

func Test_Value_PtrRoundTrip(t *testing.T) {
	x := 7
	v := FromPtr(unsafe.Pointer(&x))
	got := (*int)(v.AsPtr())
	require.Equal(t, &x, got)
	require.Equal(t, 7, *got)
}

func Test_Value_BufferRoundTrip(t *testing.T) {
	buf := make([]byte, Size*2)
	Write(buf, 0, FromInt(1234))
	Write(buf, Size, FromFloat32(-1.25))

	require.Equal(t, int32(1234), Read(buf, 0).AsInt())
	require.Equal(t, float32(-1.25), Read(buf, Size).AsFloat32())
}
