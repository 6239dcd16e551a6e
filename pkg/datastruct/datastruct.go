package datastruct

import "iter"

type List[T any] interface {
	Append(vs ...T)
	ToSlice() []T
	Iter() iter.Seq[T]
	Sizer
}

type Sequence[T any] interface {
	List[T]
	Lookup(index int) (T, bool)
	Set(index int, val T) bool
	InsertAt(index int, vs ...T) bool
	Delete(index int) bool
}

type Sizer interface {
	Len() int
}
