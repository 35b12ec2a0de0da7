package raw

import (
	"unsafe"

	"github.com/dshills/slide/internal/assert"
)

// pos is a single coordinate inside one buffer.
//
// For element types with a nonzero size the position is the element's
// address, and arithmetic is pointer arithmetic. Zero-sized element types
// have no meaningful stride, so the position keeps the buffer's base pointer
// unchanged and tracks an element offset instead. Both cases share the same
// struct; the size argument threaded through each operation selects the
// representation.
//
// A pos may only be compared with or subtracted from a pos derived from the
// same buffer. The pointer is kept as unsafe.Pointer and never stored as a
// uintptr, so the garbage collector keeps tracking the buffer.
type pos struct {
	ptr unsafe.Pointer
	off int
}

// posAt returns the position of element off in the buffer starting at base.
func posAt(base unsafe.Pointer, size uintptr, off int) pos {
	if size == 0 {
		return pos{ptr: base, off: off}
	}
	return pos{ptr: unsafe.Add(base, off*int(size))}
}

// add returns the position n elements to the right. The result must stay
// within the same buffer (one past the last element is allowed).
func (p pos) add(n int, size uintptr) pos {
	if size == 0 {
		p.off += n
		return p
	}
	p.ptr = unsafe.Add(p.ptr, n*int(size))
	return p
}

// sub returns the position n elements to the left. The result must stay
// within the same buffer.
func (p pos) sub(n int, size uintptr) pos {
	if size == 0 {
		p.off -= n
		return p
	}
	p.ptr = unsafe.Add(p.ptr, -n*int(size))
	return p
}

// offsetFrom returns the number of elements between origin and p.
// origin must not be to the right of p.
func (p pos) offsetFrom(origin pos, size uintptr) int {
	assert.True(origin.notAfter(p, size), "position origin <= position")
	if size == 0 {
		return p.off - origin.off
	}
	return int((uintptr(p.ptr) - uintptr(origin.ptr)) / size)
}

// notAfter reports whether p is at or to the left of q.
func (p pos) notAfter(q pos, size uintptr) bool {
	if size == 0 {
		return p.off <= q.off
	}
	return uintptr(p.ptr) <= uintptr(q.ptr)
}
