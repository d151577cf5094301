package vector

import (
	"iter"
	"unsafe"

	"github.com/pkg/errors"
)

// Vector is a growable, ordered sequence of T values backed by one
// exclusively owned RawStorage. Slots [0, Len) hold live values; slots
// [Len, Cap) are uninitialized. Not goroutine-safe: callers serialize
// concurrent access themselves.
//
// Any operation that reallocates (growing Reserve or Resize, Append or
// Insert at full capacity) invalidates pointers and views previously
// obtained through Ptr or Slice.
type Vector[T any] struct {
	data     RawStorage[T]
	size     int
	ops      Ops[T]
	reallocs int
}

// New returns an empty vector with no storage and trivial element ops.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// NewOps returns an empty vector whose element lifecycle uses the given
// hooks.
func NewOps[T any](ops Ops[T]) *Vector[T] {
	return &Vector[T]{ops: ops}
}

// NewSize returns a vector holding n default-constructed values, with
// storage sized exactly to n. If a Default hook fails, the partially built
// prefix is destroyed, the storage dropped, and no vector escapes.
func NewSize[T any](n int, ops ...Ops[T]) (*Vector[T], error) {
	check(n >= 0, "vector: negative size")
	v := &Vector[T]{}
	if len(ops) > 0 {
		v.ops = ops[0]
	}
	if n == 0 {
		return v, nil
	}
	v.data = NewRawStorage[T](n)
	for i := 0; i < n; i++ {
		val, err := v.ops.makeDefault()
		if err != nil {
			v.ops.destroyRange(&v.data, 0, i)
			v.data.Release()
			return nil, errors.Wrapf(err, "default-construct slot %d", i)
		}
		*v.data.At(i) = val
	}
	v.size = n
	return v, nil
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the slot count of the owned storage.
func (v *Vector[T]) Cap() int {
	return v.data.Capacity()
}

// Swap exchanges the entire contents of two vectors in constant time,
// element hooks and statistics included.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.data.Exchange(&other.data)
	v.size, other.size = other.size, v.size
	v.ops, other.ops = other.ops, v.ops
	v.reallocs, other.reallocs = other.reallocs, v.reallocs
}

// Clone returns an independent copy of v: storage sized exactly to Len,
// every element duplicated through the Copy hook. A copy failure tears the
// partial clone down and returns the error; v is never modified.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	return v.cloneUsing(v.ops)
}

func (v *Vector[T]) cloneUsing(ops Ops[T]) (*Vector[T], error) {
	out := &Vector[T]{ops: ops}
	if v.size == 0 {
		return out, nil
	}
	out.data = NewRawStorage[T](v.size)
	for i := 0; i < v.size; i++ {
		val, err := ops.copyValue(*v.data.At(i))
		if err != nil {
			ops.destroyRange(&out.data, 0, i)
			out.data.Release()
			return nil, errors.Wrapf(err, "copy slot %d", i)
		}
		*out.data.At(i) = val
	}
	out.size = v.size
	return out, nil
}

// CopyFrom replicates src's elements into v (copy assignment). Three cases:
//
//  1. Cap() < src.Len(): a full temporary copy is built first and exchanged
//     in, so a failure leaves v completely untouched.
//  2. enough capacity, Len() >= src.Len(): the leading slots are overwritten
//     by element-wise assignment, then the excess live suffix is destroyed.
//  3. enough capacity, Len() < src.Len(): the live slots are overwritten,
//     the remaining slots copy-constructed fresh; size updates only after
//     both phases succeed.
//
// The in-place cases give the basic guarantee: an assignment failure midway
// leaves the already-overwritten prefix in place.
func (v *Vector[T]) CopyFrom(src *Vector[T]) error {
	if v == src {
		return nil
	}
	n := src.size
	if n > v.Cap() {
		tmp, err := src.cloneUsing(v.ops)
		if err != nil {
			return err
		}
		v.Swap(tmp)
		v.reallocs = tmp.reallocs + 1
		tmp.Release()
		return nil
	}
	overwrite := min(n, v.size)
	for i := 0; i < overwrite; i++ {
		if err := v.assignAt(i, *src.data.At(i)); err != nil {
			return errors.Wrapf(err, "assign slot %d", i)
		}
	}
	if n < v.size {
		v.ops.destroyRange(&v.data, n, v.size)
	} else {
		for i := v.size; i < n; i++ {
			val, err := v.ops.copyValue(*src.data.At(i))
			if err != nil {
				v.ops.destroyRange(&v.data, v.size, i)
				return errors.Wrapf(err, "copy slot %d", i)
			}
			*v.data.At(i) = val
		}
	}
	v.size = n
	return nil
}

// assignAt overwrites live slot i with a copy of src. The copy is made
// first, so a Copy failure leaves the slot untouched.
func (v *Vector[T]) assignAt(i int, src T) error {
	val, err := v.ops.copyValue(src)
	if err != nil {
		return err
	}
	v.ops.destroy(v.data.At(i))
	*v.data.At(i) = val
	return nil
}

// MoveFrom destroys v's current elements, releases its storage, and takes
// src's storage, size, and hooks. src is left as a valid, reusable empty
// vector, not moved-from garbage.
func (v *Vector[T]) MoveFrom(src *Vector[T]) {
	if v == src {
		return
	}
	v.ops.destroyRange(&v.data, 0, v.size)
	v.data.Release()
	v.data = src.data.Move()
	v.size, src.size = src.size, 0
	v.ops = src.ops
	v.reallocs, src.reallocs = src.reallocs, 0
}

// Release destroys all live elements in index order and drops the storage.
// The vector returns to the valid empty state and may be reused.
func (v *Vector[T]) Release() {
	v.ops.destroyRange(&v.data, 0, v.size)
	v.size = 0
	v.data.Release()
}

// Clear destroys all live elements but keeps the allocated capacity, so the
// vector can be refilled without reallocating.
func (v *Vector[T]) Clear() {
	v.ops.destroyRange(&v.data, 0, v.size)
	v.size = 0
}

// Reserve grows the storage to hold at least n slots. No-op when n <= Cap().
// All live elements are transferred into the new block per the transfer
// policy; a transfer failure releases the partial block and leaves the
// vector exactly as it was.
func (v *Vector[T]) Reserve(n int) error {
	if n <= v.Cap() {
		return nil
	}
	newData := NewRawStorage[T](n)
	if err := v.ops.transferRange(&v.data, 0, &newData, 0, v.size); err != nil {
		newData.Release()
		return err
	}
	v.adopt(&newData)
	return nil
}

// adopt destroys the old live range, swaps in the fully built storage, and
// counts the reallocation. Only called once newData holds every element.
func (v *Vector[T]) adopt(newData *RawStorage[T]) {
	v.ops.destroyRange(&v.data, 0, v.size)
	v.data.Exchange(newData)
	newData.Release()
	v.reallocs++
}

// Resize sets Len to n. Shrinking destroys the trailing elements; growing
// reserves capacity and default-constructs the new suffix. A Default
// failure destroys the partial suffix and leaves size unchanged.
func (v *Vector[T]) Resize(n int) error {
	check(n >= 0, "vector: negative size")
	if n < v.size {
		v.ops.destroyRange(&v.data, n, v.size)
		v.size = n
		return nil
	}
	if err := v.Reserve(n); err != nil {
		return err
	}
	for i := v.size; i < n; i++ {
		val, err := v.ops.makeDefault()
		if err != nil {
			v.ops.destroyRange(&v.data, v.size, i)
			return errors.Wrapf(err, "default-construct slot %d", i)
		}
		*v.data.At(i) = val
	}
	v.size = n
	return nil
}

// growthCapacity is the implicit growth policy: double the capacity,
// starting at one.
func (v *Vector[T]) growthCapacity() int {
	if c := v.Cap(); c > 0 {
		return 2 * c
	}
	return 1
}

// Append adds value at the end, growing the storage if full. Size grows by
// exactly one, and only after the new element is in place.
func (v *Vector[T]) Append(value T) error {
	_, err := v.AppendFunc(func() (T, error) { return value, nil })
	return err
}

// AppendFunc constructs a new element directly in its final slot and
// returns a pointer to it. On growth the element is built in the new block
// before anything is transferred, so a constructor failure discards the
// unused allocation and the vector is unchanged. The returned pointer is
// invalidated by the next reallocation.
func (v *Vector[T]) AppendFunc(ctor func() (T, error)) (*T, error) {
	if v.size == v.Cap() {
		newData := NewRawStorage[T](v.growthCapacity())
		val, err := ctor()
		if err != nil {
			newData.Release()
			return nil, err
		}
		*newData.At(v.size) = val
		if err := v.ops.transferRange(&v.data, 0, &newData, 0, v.size); err != nil {
			v.ops.destroy(newData.At(v.size))
			newData.Release()
			return nil, err
		}
		v.adopt(&newData)
	} else {
		val, err := ctor()
		if err != nil {
			return nil, err
		}
		*v.data.At(v.size) = val
	}
	v.size++
	return v.data.At(v.size - 1), nil
}

// RemoveLast destroys the last element and shrinks the live range by one.
// The vector must not be empty.
func (v *Vector[T]) RemoveLast() {
	check(v.size > 0, "vector: RemoveLast on empty vector")
	v.ops.destroy(v.data.At(v.size - 1))
	v.size--
}

// Insert places value at index i, shifting later elements one position
// right. i may equal Len, which appends.
func (v *Vector[T]) Insert(i int, value T) error {
	_, err := v.InsertFunc(i, func() (T, error) { return value, nil })
	return err
}

// InsertFunc constructs a new element at index i and returns a pointer to
// it. At full capacity the whole sequence is rebuilt in a new block with
// the strong guarantee; otherwise the shift happens in place, with only the
// basic guarantee when element moves or the constructor can fail.
func (v *Vector[T]) InsertFunc(i int, ctor func() (T, error)) (*T, error) {
	check(i >= 0 && i <= v.size, "vector: insert position out of range")
	if v.size == v.Cap() {
		return v.insertRealloc(i, ctor)
	}
	return v.insertInPlace(i, ctor)
}

// insertRealloc grows the storage and builds the new sequence around the
// freshly constructed element: element first, then the prefix [0, i), then
// the suffix [i, size). The original storage is not modified until the new
// block is complete, so any failure unwinds whatever was placed and leaves
// the vector exactly as it was.
func (v *Vector[T]) insertRealloc(i int, ctor func() (T, error)) (*T, error) {
	newData := NewRawStorage[T](v.growthCapacity())
	val, err := ctor()
	if err != nil {
		newData.Release()
		return nil, err
	}
	*newData.At(i) = val
	if err := v.ops.transferRange(&v.data, 0, &newData, 0, i); err != nil {
		v.ops.destroy(newData.At(i))
		newData.Release()
		return nil, err
	}
	if err := v.ops.transferRange(&v.data, i, &newData, i+1, v.size-i); err != nil {
		v.ops.destroyRange(&newData, 0, i+1)
		newData.Release()
		return nil, err
	}
	v.adopt(&newData)
	v.size++
	return v.data.At(i), nil
}

// insertInPlace opens a gap at i by relocating the last element one slot
// forward and shifting [i, size-1) right, back to front. A move or
// constructor failure after the shift has started leaves the sequence in a
// valid but unspecified arrangement (basic guarantee); it is not rolled
// back.
func (v *Vector[T]) insertInPlace(i int, ctor func() (T, error)) (*T, error) {
	if i < v.size {
		val, err := v.ops.moveValue(v.data.At(v.size - 1))
		if err != nil {
			return nil, errors.Wrapf(err, "move slot %d", v.size-1)
		}
		*v.data.At(v.size) = val
		for k := v.size - 1; k > i; k-- {
			val, err := v.ops.moveValue(v.data.At(k - 1))
			if err != nil {
				return nil, errors.Wrapf(err, "move slot %d", k-1)
			}
			v.ops.destroy(v.data.At(k))
			*v.data.At(k) = val
		}
		v.ops.destroy(v.data.At(i))
	}
	val, err := ctor()
	if err != nil {
		if i < v.size {
			// The gap is already open; drop the relocated tail copy so it
			// does not linger outside the live range.
			v.ops.destroy(v.data.At(v.size))
		}
		return nil, err
	}
	*v.data.At(i) = val
	v.size++
	return v.data.At(i), nil
}

// Erase removes the element at index i, shifting later elements one
// position left by element-wise move. Cannot fail unless the Move hook can
// fail; a mid-shift failure gives only the basic guarantee.
func (v *Vector[T]) Erase(i int) error {
	check(i >= 0 && i < v.size, "vector: erase position out of range")
	for k := i; k < v.size-1; k++ {
		val, err := v.ops.moveValue(v.data.At(k + 1))
		if err != nil {
			return errors.Wrapf(err, "move slot %d", k+1)
		}
		v.ops.destroy(v.data.At(k))
		*v.data.At(k) = val
	}
	v.RemoveLast()
	return nil
}

// At returns the element at index i. i < Len() is a precondition.
func (v *Vector[T]) At(i int) T {
	check(i >= 0 && i < v.size, "vector: index out of range")
	return *v.data.At(i)
}

// Ptr returns a pointer to the element at index i. The pointer is
// invalidated by any reallocation.
func (v *Vector[T]) Ptr(i int) *T {
	check(i >= 0 && i < v.size, "vector: index out of range")
	return v.data.At(i)
}

// Set overwrites the element at index i, destroying the previous value.
func (v *Vector[T]) Set(i int, value T) {
	check(i >= 0 && i < v.size, "vector: index out of range")
	v.ops.destroy(v.data.At(i))
	*v.data.At(i) = value
}

// Slice returns the live range [0, Len) as a mutable view into the backing
// storage. The view is invalidated by any operation that reallocates.
func (v *Vector[T]) Slice() []T {
	if v.size == 0 {
		return nil
	}
	return unsafe.Slice((*T)(v.data.Offset(0)), v.size)
}

// Values iterates over the live elements in order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(*v.data.At(i)) {
				return
			}
		}
	}
}

// All iterates over index/element pairs of the live range in order.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, *v.data.At(i)) {
				return
			}
		}
	}
}
