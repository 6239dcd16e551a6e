// Package cursorkit holds generic sequence algorithms that work over any cursor
// which can tell its value, step to its successor and compare itself to another cursor of the same kind.
//
// A range is always half-open: it is made from the first cursor up to, but not including, the last one.
package cursorkit

import "iter"

type Input[T, C any] interface {
	Get() T
	Succ() C
	Equal(C) bool
}

type Output[T, C any] interface {
	Set(T)
	Succ() C
}

type Mutable[T, C any] interface {
	Input[T, C]
	Set(T)
}

type Bidirectional[T, C any] interface {
	Input[T, C]
	Pred() C
}

type MutableBidirectional[T, C any] interface {
	Mutable[T, C]
	Pred() C
}

type RandomAccess[T, C any] interface {
	Bidirectional[T, C]
	Add(n int) C
	Sub(C) int
	Less(C) bool
}

// Copy copies the [first, last) range into dst, and returns dst past the last copied element.
func Copy[T any, In Input[T, In], Out Output[T, Out]](first, last In, dst Out) Out {
	for ; !first.Equal(last); first = first.Succ() {
		dst.Set(first.Get())
		dst = dst.Succ()
	}
	return dst
}

// CopyIf copies only the elements that satisfy the filter.
func CopyIf[T any, In Input[T, In], Out Output[T, Out]](first, last In, dst Out, filter func(T) bool) Out {
	for ; !first.Equal(last); first = first.Succ() {
		if v := first.Get(); filter(v) {
			dst.Set(v)
			dst = dst.Succ()
		}
	}
	return dst
}

func Fill[T any, C Mutable[T, C]](first, last C, v T) {
	for ; !first.Equal(last); first = first.Succ() {
		first.Set(v)
	}
}

// FindIf returns the first cursor in [first, last) which value satisfies the predicate.
// When no such element is found, last is returned.
func FindIf[T any, C Input[T, C]](first, last C, pred func(T) bool) C {
	for ; !first.Equal(last); first = first.Succ() {
		if pred(first.Get()) {
			return first
		}
	}
	return last
}

func Find[T comparable, C Input[T, C]](first, last C, v T) C {
	return FindIf[T](first, last, func(got T) bool { return got == v })
}

// Reverse reverses the order of the elements in [first, last) in place.
func Reverse[T any, C MutableBidirectional[T, C]](first, last C) {
	for !first.Equal(last) {
		last = last.Pred()
		if first.Equal(last) {
			return
		}
		a, b := first.Get(), last.Get()
		first.Set(b)
		last.Set(a)
		first = first.Succ()
	}
}

// ReverseCopy copies [first, last) into dst, starting from the last element.
func ReverseCopy[T any, In Bidirectional[T, In], Out Output[T, Out]](first, last In, dst Out) Out {
	for !first.Equal(last) {
		last = last.Pred()
		dst.Set(last.Get())
		dst = dst.Succ()
	}
	return dst
}

// Distance tells how many steps are between first and last.
// Random access cursors answer it in constant time, others are walked through.
func Distance[T any, C Input[T, C]](first, last C) int {
	if ra, ok := any(last).(interface{ Sub(C) int }); ok {
		return ra.Sub(first)
	}
	var n int
	for ; !first.Equal(last); first = first.Succ() {
		n++
	}
	return n
}

// Advance moves c by n steps, which can be negative.
func Advance[T any, C Bidirectional[T, C]](c C, n int) C {
	if ra, ok := any(c).(interface{ Add(int) C }); ok {
		return ra.Add(n)
	}
	for ; 0 < n; n-- {
		c = c.Succ()
	}
	for ; n < 0; n++ {
		c = c.Pred()
	}
	return c
}

func All[T any, C Input[T, C]](first, last C) iter.Seq[T] {
	return func(yield func(T) bool) {
		for ; !first.Equal(last); first = first.Succ() {
			if !yield(first.Get()) {
				return
			}
		}
	}
}

func Collect[T any, C Input[T, C]](first, last C) []T {
	var vs []T
	for v := range All[T](first, last) {
		vs = append(vs, v)
	}
	return vs
}
