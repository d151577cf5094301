package vector

import "github.com/pkg/errors"

// Ops customizes the element lifecycle of a vector. Every field is optional;
// a nil field selects the trivial operation, which cannot fail:
//
//   - Default: produce a new value for sized construction and growing Resize.
//     Trivial form: the zero value.
//   - Copy: duplicate a value for Clone, CopyFrom, and copying reallocation.
//     Trivial form: plain assignment.
//   - Move: relocate a value out of *src, leaving *src destroyable.
//     Trivial form: bitwise relocation (assign, then zero the source).
//   - Destroy: release whatever a value holds before its slot is reused or
//     the storage is dropped. Trivial form: zero the slot, so references the
//     value held become collectable immediately.
//
// The nil/non-nil shape of Copy and Move also drives the reallocation
// transfer policy, see transferRange.
type Ops[T any] struct {
	Default func() (T, error)
	Copy    func(T) (T, error)
	Move    func(*T) (T, error)
	Destroy func(*T)
}

func (o Ops[T]) makeDefault() (T, error) {
	if o.Default != nil {
		return o.Default()
	}
	var zero T
	return zero, nil
}

func (o Ops[T]) copyValue(v T) (T, error) {
	if o.Copy != nil {
		return o.Copy(v)
	}
	return v, nil
}

func (o Ops[T]) moveValue(src *T) (T, error) {
	if o.Move != nil {
		return o.Move(src)
	}
	v := *src
	var zero T
	*src = zero
	return v, nil
}

func (o Ops[T]) destroy(p *T) {
	if o.Destroy != nil {
		o.Destroy(p)
		return
	}
	var zero T
	*p = zero
}

func (o Ops[T]) destroyRange(s *RawStorage[T], from, to int) {
	for i := from; i < to; i++ {
		o.destroy(s.At(i))
	}
}

// relocatable reports whether element transfer is statically known not to
// fail: with no custom Move, transfer is a bitwise relocation.
func (o Ops[T]) relocatable() bool {
	return o.Move == nil
}

// moveOnly reports whether the element type cannot be duplicated.
func (o Ops[T]) moveOnly() bool {
	return o.Copy == nil
}

// transferRange places count elements, starting at srcFrom in src, into dst
// starting at dstFrom, choosing the operation by capability: relocate when
// relocation cannot fail, move when the type cannot be copied, otherwise
// copy. The copy fallback is what keeps reallocation strongly guaranteed: a
// copy failure partway through leaves every source element untouched, and
// transferRange destroys the partially placed prefix before returning the
// error. A failing custom Move has no such rollback, since earlier sources
// are already consumed; the placed prefix is still torn down so dst can be
// released.
//
// After a successful non-copy transfer the source slots hold moved-from
// residue; the caller destroys the source range either way before adopting
// dst.
func (o Ops[T]) transferRange(src *RawStorage[T], srcFrom int, dst *RawStorage[T], dstFrom, count int) error {
	useCopy := !o.relocatable() && !o.moveOnly()
	for k := 0; k < count; k++ {
		var v T
		var err error
		if useCopy {
			v, err = o.copyValue(*src.At(srcFrom + k))
		} else {
			v, err = o.moveValue(src.At(srcFrom + k))
		}
		if err != nil {
			o.destroyRange(dst, dstFrom, dstFrom+k)
			return errors.Wrapf(err, "transfer slot %d", srcFrom+k)
		}
		*dst.At(dstFrom + k) = v
	}
	return nil
}
