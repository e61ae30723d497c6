// Package tagged defines Value, the union of {int32, float32,
// unsafe.Pointer} that every other package in this module uses as its
// payload type. A Value occupies Size (12) bytes in a buffer: a 32-bit field
// for the int32/float32 bits and a 64-bit field for the pointer. No
// discriminator is stored; callers must know which field is live, exactly
// as with the untagged C union this type replaces.
package tagged
