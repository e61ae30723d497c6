package layout

// HeaderSize is the size in bytes of the common header written at offset 0
// of every buffer-resident object in this module. It holds enough to make a
// stray buffer handed to the wrong FromBuffer call fail loudly instead of
// silently misreading, and to let Relocate re-derive an object's views from
// nothing but the bytes themselves.
const HeaderSize = 16

const (
	offKind       = 0
	offBufferSize = 4
	offGeneration = 8
	offReserved   = 12
)

// Object kind tags, written at offset 0 of every header.
const (
	KindPool     uint32 = 0x706f6f6c // "pool"
	KindHeap     uint32 = 0x68656170 // "heap"
	KindGraph    uint32 = 0x67726170 // "grap"
	KindBfsState uint32 = 0x62667300 // "bfs\0"
	KindDfsState uint32 = 0x64667300 // "dfs\0"
)

// WriteHeader stamps the common header fields into buf[0:HeaderSize].
func WriteHeader(buf []byte, kind uint32, bufferSize int, generation uint32) {
	PutU32(buf, offKind, kind)
	PutU32(buf, offBufferSize, uint32(bufferSize))
	PutU32(buf, offGeneration, generation)
	PutU32(buf, offReserved, 0)
}

// Kind reads the header's kind tag.
func Kind(buf []byte) uint32 { return ReadU32(buf, offKind) }

// BufferSize reads the buffer size recorded at create time.
func BufferSize(buf []byte) int { return int(ReadU32(buf, offBufferSize)) }

// Generation reads the header's generation counter.
func Generation(buf []byte) uint32 { return ReadU32(buf, offGeneration) }

// SetGeneration overwrites the header's generation counter.
func SetGeneration(buf []byte, gen uint32) { PutU32(buf, offGeneration, gen) }

// Validate checks that buf is at least minSize bytes and at least
// HeaderSize bytes, and that its kind tag matches want. It is the
// first call every FromBuffer/Relocate implementation makes.
func Validate(buf []byte, want uint32, minSize int) error {
	if len(buf) == 0 {
		return ErrNilBuffer
	}
	if len(buf) < minSize {
		return ErrTooSmall
	}
	if len(buf) < HeaderSize {
		return ErrTooSmall
	}
	if Kind(buf) != want {
		return ErrBadKind
	}
	return nil
}

// Relocate copies the live prefix of src (its recorded BufferSize, or all of
// src if that cannot be read yet) into dst and returns the number of bytes
// copied. It performs no pointer fix-up: every field in the objects built on
// this package is a byte offset or slot index, not a Go pointer, so copying
// the bytes is the entire relocation.
func Relocate(dst, src []byte) (int, error) {
	if len(dst) == 0 {
		return 0, ErrNilBuffer
	}
	n := len(src)
	if len(src) >= HeaderSize {
		if recorded := BufferSize(src); recorded > 0 && recorded <= len(src) {
			n = recorded
		}
	}
	if len(dst) < n {
		return 0, ErrTooSmall
	}
	copy(dst[:n], src[:n])
	return n, nil
}
