package datastruct

import (
	"iter"
	"slices"
)

// Values is an ordered, random access container.
//
// The zero value is an empty container ready to use.
// Values owns its elements, so copying it must be done with Clone,
// as a plain assignment would share the backing store between the two copies.
//
// Values is not safe for concurrent use.
type Values[T any] struct {
	data []T
}

var _ Sequence[any] = (*Values[any])(nil)

func MakeValues[T any](vs ...T) *Values[T] {
	var out Values[T]
	out.Append(vs...)
	return &out
}

// Clone returns a deep copy of the container.
func (vs *Values[T]) Clone() *Values[T] {
	return &Values[T]{data: slices.Clone(vs.data)}
}

func (vs *Values[T]) Append(v ...T) {
	vs.data = append(vs.data, v...)
}

// Prepend adds elements to the beginning of the container, keeping their argument order.
// Every existing element is shifted, which makes it an O(n) operation.
func (vs *Values[T]) Prepend(v ...T) {
	if len(v) == 0 {
		return
	}
	vs.data = slices.Insert(vs.data, 0, v...)
}

func (vs *Values[T]) Len() int {
	return len(vs.data)
}

func (vs *Values[T]) IsEmpty() bool {
	return len(vs.data) == 0
}

// Clear removes every element from the container.
// Cursors made before Clear must not be used afterwards.
func (vs *Values[T]) Clear() {
	clear(vs.data)
	vs.data = vs.data[:0]
}

// Index returns the element at pos without a bounds check of its own.
// Calling it with a pos outside of [0, Len()) is a programming error.
func (vs *Values[T]) Index(pos int) T {
	return vs.data[pos]
}

func (vs *Values[T]) IndexPtr(pos int) *T {
	return &vs.data[pos]
}

func (vs *Values[T]) SetIndex(pos int, v T) {
	vs.data[pos] = v
}

// At returns the element at pos.
// When pos is not within [0, Len()), ErrOutOfRange is returned.
func (vs *Values[T]) At(pos int) (T, error) {
	if err := vs.checkRange(pos); err != nil {
		var zero T
		return zero, err
	}
	return vs.data[pos], nil
}

func (vs *Values[T]) AtPtr(pos int) (*T, error) {
	if err := vs.checkRange(pos); err != nil {
		return nil, err
	}
	return &vs.data[pos], nil
}

func (vs *Values[T]) SetAt(pos int, v T) error {
	if err := vs.checkRange(pos); err != nil {
		return err
	}
	vs.data[pos] = v
	return nil
}

func (vs *Values[T]) checkRange(pos int) error {
	if pos < 0 || len(vs.data) <= pos {
		return ErrOutOfRange.F("position %d, length %d", pos, len(vs.data))
	}
	return nil
}

// Insert places v right before the element referenced by pos, and returns an Iterator to the new element.
// When pos is CEnd, v is appended.
//
// pos is not used after the insertion, since the backing store may have moved.
// The returned Iterator is made from the distance that pos had from the beginning of the container.
func (vs *Values[T]) Insert(pos ConstIterator[T], v T) Iterator[T] {
	distance := pos.Sub(vs.CBegin())
	vs.data = slices.Insert(vs.data, distance, v)
	return vs.Begin().Add(distance)
}

func (vs *Values[T]) Lookup(index int) (T, bool) {
	v, err := vs.At(index)
	return v, err == nil
}

func (vs *Values[T]) Set(index int, v T) bool {
	return vs.SetAt(index, v) == nil
}

// InsertAt inserts the values at index, shifting the element at index and every later element.
// index equal to Len() appends.
func (vs *Values[T]) InsertAt(index int, v ...T) bool {
	if index < 0 || len(vs.data) < index {
		return false
	}
	vs.data = slices.Insert(vs.data, index, v...)
	return true
}

func (vs *Values[T]) Delete(index int) bool {
	if vs.checkRange(index) != nil {
		return false
	}
	vs.data = slices.Delete(vs.data, index, index+1)
	return true
}

func (vs *Values[T]) ToSlice() []T {
	return slices.Clone(vs.data)
}

func (vs *Values[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for it, end := vs.CBegin(), vs.CEnd(); !it.Equal(end); it.Next() {
			if !yield(it.Get()) {
				return
			}
		}
	}
}

func (vs *Values[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for it, end := vs.CRBegin(), vs.CREnd(); !it.Equal(end); it.Next() {
			if !yield(it.Get()) {
				return
			}
		}
	}
}

func (vs *Values[T]) Begin() Iterator[T] {
	return Iterator[T]{p: vs.at(0)}
}

func (vs *Values[T]) End() Iterator[T] {
	return Iterator[T]{p: vs.at(len(vs.data))}
}

func (vs *Values[T]) CBegin() ConstIterator[T] {
	return ConstIterator[T]{p: vs.at(0)}
}

func (vs *Values[T]) CEnd() ConstIterator[T] {
	return ConstIterator[T]{p: vs.at(len(vs.data))}
}

func (vs *Values[T]) RBegin() ReverseIterator[T] {
	return ReverseIterator[T]{p: vs.rat(len(vs.data) - 1)}
}

func (vs *Values[T]) REnd() ReverseIterator[T] {
	return ReverseIterator[T]{p: vs.rat(-1)}
}

func (vs *Values[T]) CRBegin() ConstReverseIterator[T] {
	return ConstReverseIterator[T]{p: vs.rat(len(vs.data) - 1)}
}

func (vs *Values[T]) CREnd() ConstReverseIterator[T] {
	return ConstReverseIterator[T]{p: vs.rat(-1)}
}

func (vs *Values[T]) at(pos int) position[T, Forward] {
	return position[T, Forward]{data: vs.data, pos: pos}
}

func (vs *Values[T]) rat(pos int) position[T, Reverse] {
	return position[T, Reverse]{data: vs.data, pos: pos}
}
