package vector

import "unsafe"

// RawStorage is the exclusive owner of a fixed-capacity block of slots for
// values of type T. It has no notion of which slots hold live values: it only
// acquires, releases, and grants access to raw slot memory. Tracking occupancy
// and destroying live values before Release is the caller's responsibility.
//
// RawStorage is move-only. Copying the struct aliases the block and breaks
// exclusive ownership; transfer it with Move or Exchange instead.
type RawStorage[T any] struct {
	block []T // len == capacity; nil when capacity is 0
}

// NewRawStorage acquires storage for n slots. n == 0 acquires nothing: the
// returned storage has no block and zero capacity, and releasing it is free.
// Slot contents are unspecified until the caller stores values into them.
func NewRawStorage[T any](n int) RawStorage[T] {
	check(n >= 0, "vector: negative storage capacity")
	if n <= 0 {
		return RawStorage[T]{}
	}
	return RawStorage[T]{block: make([]T, n)}
}

// Capacity returns the slot count of the owned block.
func (s *RawStorage[T]) Capacity() int {
	return len(s.block)
}

// Offset returns the address of slot i. i may equal Capacity(): the
// one-past-end address is valid for computing an end of a slot range but
// must never be dereferenced.
func (s *RawStorage[T]) Offset(i int) unsafe.Pointer {
	check(i >= 0 && i <= len(s.block), "vector: storage offset out of range")
	var zero T
	return unsafe.Add(unsafe.Pointer(unsafe.SliceData(s.block)), uintptr(i)*unsafe.Sizeof(zero))
}

// At returns a reference to slot i's memory. i < Capacity() is a
// precondition; the slot need not hold a live value.
func (s *RawStorage[T]) At(i int) *T {
	check(i >= 0 && i < len(s.block), "vector: storage index out of range")
	return &s.block[i]
}

// Exchange swaps the owned block and capacity between s and other in
// constant time.
func (s *RawStorage[T]) Exchange(other *RawStorage[T]) {
	s.block, other.block = other.block, s.block
}

// Move transfers ownership of the block out of s. The source is left with
// no block and zero capacity, a valid empty state.
func (s *RawStorage[T]) Move() RawStorage[T] {
	var out RawStorage[T]
	out.Exchange(s)
	return out
}

// Release returns the block without inspecting or destroying its contents.
// No-op when there is no block. Live values must be destroyed by the caller
// first, or the references they hold stay reachable until the block itself
// is collected.
func (s *RawStorage[T]) Release() {
	s.block = nil
}

// check asserts a precondition when built with the vectordebug tag.
// Release builds leave enforcement to the caller; raw slot access still
// falls under the runtime's own slice bounds.
func check(ok bool, msg string) {
	if debugChecks && !ok {
		panic(msg)
	}
}
