// Package vector implements a generic dynamic array with manual control
// over its backing storage.
//
// # Overview
//
// The package separates storage from occupancy. RawStorage owns a block of
// uninitialized slots and knows nothing about which slots hold values; it
// only acquires, releases, and grants access to slot memory. Vector owns
// exactly one RawStorage and tracks how many of its leading slots hold live
// values. Growth policy, element lifecycle, and the failure guarantees of
// every mutating operation live in Vector. This split is useful for:
//
//   - Buffer-pool and allocator-style code that needs capacity without
//     construction
//   - Element types whose duplication or construction can fail, where each
//     mutator needs a documented failure contract
//   - Workloads that reuse capacity across fill/clear cycles
//
// # Basic Usage
//
//	v := vector.New[int]()
//	defer v.Release() // Destroy elements and drop storage
//
//	_ = v.Append(1)
//	_ = v.Append(2)
//	_ = v.Insert(0, 99)
//
//	for i, x := range v.All() {
//		fmt.Println(i, x)
//	}
//
//	// Reuse the capacity without reallocating
//	v.Clear()
//
// # Element Lifecycle Hooks
//
// Construction, duplication, relocation, and destruction default to the
// trivial operations (zero value, assignment, bitwise move, zeroing), which
// cannot fail. Types that hold external resources install hooks via Ops:
//
//	v := vector.NewOps[*Conn](vector.Ops[*Conn]{
//		Copy:    func(c *Conn) (*Conn, error) { return c.Dup() },
//		Destroy: func(c **Conn) { (*c).Close(); *c = nil },
//	})
//
// # Failure Guarantees
//
// Every reallocating path (growing Reserve and Resize, Append and Insert at
// full capacity, the reallocating branch of CopyFrom) gives the strong
// guarantee: on failure the vector is exactly as it was before the call.
// This holds because new storage is always fully built before anything in
// the old storage is destroyed, and because reallocation falls back from
// relocation to copying whenever the element type's move can fail. The
// in-place insert and erase shifts give only the basic guarantee when
// element moves can fail: the vector stays valid and destructible, but the
// arrangement is unspecified.
//
// # Thread Safety
//
// Vector is not goroutine-safe and has no synchronized variant. Callers
// serialize access to a shared instance themselves.
//
// # Performance Characteristics
//
//   - Append: O(1) amortized (capacity doubles, starting at one)
//   - Insert/Erase at position i: O(Len - i)
//   - Len, Cap, Metrics: O(1)
//   - Clear: O(Len), keeps capacity; Release: O(Len), drops it
//
// # Debug Checks
//
// Index, position, and removal preconditions are asserted only when built
// with the vectordebug tag. Release builds leave enforcement to the caller;
// raw slot access still falls under the Go runtime's slice bounds, so a
// violation cannot corrupt memory.
//
// # Metrics and Monitoring
//
// The vector tracks its own storage behavior:
//
//	m := v.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization * 100)
//	fmt.Printf("Reallocations: %d\n", m.Reallocs)
package vector
