package tagged

import (
	"math"
	"unsafe"

	"github.com/cdwfs/algo/internal/layout"
)

// Size is the number of bytes a Value occupies when stored inline in a
// caller buffer (see Write/Read): 4 bytes for the int32/float32 bit pattern
// plus 8 bytes for the pointer variant, regardless of host pointer width.
const Size = 12

// Value is a tagged union: it carries exactly one of a signed 32-bit
// integer, an IEEE-754 single float, or an opaque pointer. It is not 32 bits
// wide: the int32/float32 variants share a 32-bit field and the pointer
// variant has its own pointer-sized field, so a stored Value takes Size
// bytes. No discriminator is stored; the caller alone knows which accessor
// to call.
//
// Value is plain data (no Go pointer field), so it can be copied byte-for-byte
// into and out of a caller-owned buffer with Write/Read. The pointer variant
// is carried as a uintptr, exactly as opaque to this package as void* was to
// the original C union: AsPtr hands back an unsafe.Pointer for parity, but
// the caller remains solely responsible for keeping the referent reachable
// for as long as any Value derived from it is in use.
type Value struct {
	bits uint32
	ptr  uintptr
}

// FromInt builds a Value carrying a signed 32-bit integer.
func FromInt(i int32) Value {
	return Value{bits: uint32(i)}
}

// FromFloat32 builds a Value carrying an IEEE-754 single-precision float.
func FromFloat32(f float32) Value {
	return Value{bits: math.Float32bits(f)}
}

// FromPtr builds a Value carrying an opaque pointer.
func FromPtr(p unsafe.Pointer) Value {
	return Value{ptr: uintptr(p)}
}

// AsInt reinterprets the value as a signed 32-bit integer.
func (v Value) AsInt() int32 { return int32(v.bits) }

// AsFloat32 reinterprets the value as an IEEE-754 single-precision float.
func (v Value) AsFloat32() float32 { return math.Float32frombits(v.bits) }

// AsPtr reinterprets the value as an opaque pointer. See the Value doc
// comment: the caller owns keeping the referent alive.
func (v Value) AsPtr() unsafe.Pointer { return unsafe.Pointer(v.ptr) } //nolint:govet // opaque by design, mirrors the original void* union member

// Write stores v at byte offset off in buf.
func Write(buf []byte, off int, v Value) {
	layout.PutU32(buf, off, v.bits)
	layout.PutU64(buf, off+4, uint64(v.ptr))
}

// Read loads a Value from byte offset off in buf.
func Read(buf []byte, off int) Value {
	return Value{
		bits: layout.ReadU32(buf, off),
		ptr:  uintptr(layout.ReadU64(buf, off+4)),
	}
}
