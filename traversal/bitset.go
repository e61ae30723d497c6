package traversal

import "github.com/cdwfs/algo/internal/layout"

// bitset words are 32-bit, matching the vertex id width they index.

func bitWordOffset(off int, i int32) int {
	return off + int(i/32)*4
}

func bitSet(buf []byte, off int, i int32) {
	wordOff := bitWordOffset(off, i)
	word := layout.ReadU32(buf, wordOff)
	word |= 1 << uint(i%32)
	layout.PutU32(buf, wordOff, word)
}

func bitTest(buf []byte, off int, i int32) bool {
	word := layout.ReadU32(buf, bitWordOffset(off, i))
	return word&(1<<uint(i%32)) != 0
}

func bitClearAll(buf []byte, off, words int) {
	for w := 0; w < words; w++ {
		layout.PutU32(buf, off+w*4, 0)
	}
}
