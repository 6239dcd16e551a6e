package cursorkit

import "go.llib.dev/values/pkg/datastruct"

type Appender[T any] interface {
	Append(vs ...T)
}

type Prepender[T any] interface {
	Prepend(vs ...T)
}

type PositionInserter[T any] interface {
	Insert(pos datastruct.ConstIterator[T], v T) datastruct.Iterator[T]
}

// Inserter returns an Output which inserts every value it receives right before pos.
// After each insertion the position moves past the new element,
// so the values keep the order in which they were received.
func Inserter[T any](c PositionInserter[T], pos datastruct.ConstIterator[T]) *InsertIterator[T] {
	return &InsertIterator[T]{c: c, pos: pos}
}

type InsertIterator[T any] struct {
	c   PositionInserter[T]
	pos datastruct.ConstIterator[T]
}

func (it *InsertIterator[T]) Set(v T) {
	it.pos = datastruct.ToConst(it.c.Insert(it.pos, v)).Succ()
}

func (it *InsertIterator[T]) Succ() *InsertIterator[T] { return it }

// BackInserter returns an Output which appends every value it receives.
func BackInserter[T any](c Appender[T]) *BackInsertIterator[T] {
	return &BackInsertIterator[T]{c: c}
}

type BackInsertIterator[T any] struct {
	c Appender[T]
}

func (it *BackInsertIterator[T]) Set(v T) { it.c.Append(v) }

func (it *BackInsertIterator[T]) Succ() *BackInsertIterator[T] { return it }

// FrontInserter returns an Output which prepends every value it receives,
// so the values end up in reverse order at the front of the container.
func FrontInserter[T any](c Prepender[T]) *FrontInsertIterator[T] {
	return &FrontInsertIterator[T]{c: c}
}

type FrontInsertIterator[T any] struct {
	c Prepender[T]
}

func (it *FrontInsertIterator[T]) Set(v T) { it.c.Prepend(v) }

func (it *FrontInsertIterator[T]) Succ() *FrontInsertIterator[T] { return it }
