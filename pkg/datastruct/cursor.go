package datastruct

// Direction tells which way a single step moves a cursor over the backing store.
type Direction interface {
	Forward | Reverse
	step() int
}

// Forward cursors move towards the higher indexes.
type Forward struct{}

func (Forward) step() int { return 1 }

// Reverse cursors move towards the lower indexes.
type Reverse struct{}

func (Reverse) step() int { return -1 }

type (
	Iterator[T any]             = Cursor[T, Forward]
	ConstIterator[T any]        = ConstCursor[T, Forward]
	ReverseIterator[T any]      = Cursor[T, Reverse]
	ConstReverseIterator[T any] = ConstCursor[T, Reverse]
)

// Cursor is a mutable position in the backing store of a Values container.
//
// A Cursor holds the store it was made from, and stays valid only until the next structural change
// of the container (Append, Prepend, Insert, Clear...).
// Dereferencing an end sentinel, or using a stale Cursor is a programming error,
// and it is not reported as an error value.
type Cursor[T any, D Direction] struct {
	p position[T, D]
}

func (c Cursor[T, D]) Get() T { return c.p.get() }

// Ptr returns a pointer to the referenced element, which allows in-place modification.
func (c Cursor[T, D]) Ptr() *T { return c.p.ptr() }

func (c Cursor[T, D]) Set(v T) { *c.p.ptr() = v }

// Next moves the cursor to the next element, and returns the cursor itself.
func (c *Cursor[T, D]) Next() *Cursor[T, D] {
	c.p = c.p.moved(1)
	return c
}

// PostNext moves the cursor to the next element, and returns its previous position.
func (c *Cursor[T, D]) PostNext() Cursor[T, D] {
	prev := *c
	c.Next()
	return prev
}

func (c *Cursor[T, D]) Prev() *Cursor[T, D] {
	c.p = c.p.moved(-1)
	return c
}

func (c *Cursor[T, D]) PostPrev() Cursor[T, D] {
	prev := *c
	c.Prev()
	return prev
}

func (c Cursor[T, D]) Succ() Cursor[T, D] { return c.Add(1) }

func (c Cursor[T, D]) Pred() Cursor[T, D] { return c.Add(-1) }

// Add returns a cursor n steps ahead in the cursor's direction.
// A negative n steps backwards.
func (c Cursor[T, D]) Add(n int) Cursor[T, D] {
	return Cursor[T, D]{p: c.p.moved(n)}
}

// Sub returns how many steps are needed to reach c from oth.
func (c Cursor[T, D]) Sub(oth Cursor[T, D]) int { return c.p.sub(oth.p) }

func (c Cursor[T, D]) Equal(oth Cursor[T, D]) bool { return c.p.equal(oth.p) }

func (c Cursor[T, D]) Less(oth Cursor[T, D]) bool { return c.p.sub(oth.p) < 0 }

// Index returns the position of the referenced slot in the backing store.
// The rend sentinel is at -1.
func (c Cursor[T, D]) Index() int { return c.p.pos }

// ConstCursor is the read-only counterpart of Cursor.
type ConstCursor[T any, D Direction] struct {
	p position[T, D]
}

func (c ConstCursor[T, D]) Get() T { return c.p.get() }

func (c *ConstCursor[T, D]) Next() *ConstCursor[T, D] {
	c.p = c.p.moved(1)
	return c
}

func (c *ConstCursor[T, D]) PostNext() ConstCursor[T, D] {
	prev := *c
	c.Next()
	return prev
}

func (c *ConstCursor[T, D]) Prev() *ConstCursor[T, D] {
	c.p = c.p.moved(-1)
	return c
}

func (c *ConstCursor[T, D]) PostPrev() ConstCursor[T, D] {
	prev := *c
	c.Prev()
	return prev
}

func (c ConstCursor[T, D]) Succ() ConstCursor[T, D] { return c.Add(1) }

func (c ConstCursor[T, D]) Pred() ConstCursor[T, D] { return c.Add(-1) }

func (c ConstCursor[T, D]) Add(n int) ConstCursor[T, D] {
	return ConstCursor[T, D]{p: c.p.moved(n)}
}

func (c ConstCursor[T, D]) Sub(oth ConstCursor[T, D]) int { return c.p.sub(oth.p) }

func (c ConstCursor[T, D]) Equal(oth ConstCursor[T, D]) bool { return c.p.equal(oth.p) }

func (c ConstCursor[T, D]) Less(oth ConstCursor[T, D]) bool { return c.p.sub(oth.p) < 0 }

func (c ConstCursor[T, D]) Index() int { return c.p.pos }

// ToConst gives a read-only view of the slot referenced by a forward Iterator.
func ToConst[T any](it Iterator[T]) ConstIterator[T] {
	return ConstIterator[T]{p: it.p}
}

// position is the arithmetic shared by every cursor kind.
// pos is a raw index into data, which makes -1 and len(data) valid sentinel positions.
type position[T any, D Direction] struct {
	data []T
	pos  int
}

func stepOf[D Direction]() int {
	var d D
	return d.step()
}

func (p position[T, D]) get() T {
	if debug {
		p.check()
	}
	return p.data[p.pos]
}

func (p position[T, D]) ptr() *T {
	if debug {
		p.check()
	}
	return &p.data[p.pos]
}

func (p position[T, D]) check() {
	if p.pos < 0 || len(p.data) <= p.pos {
		panic(ErrCursorOutOfRange.F("position %d, length %d", p.pos, len(p.data)))
	}
}

func (p position[T, D]) moved(n int) position[T, D] {
	p.pos += n * stepOf[D]()
	return p
}

func (p position[T, D]) sub(oth position[T, D]) int {
	return (p.pos - oth.pos) * stepOf[D]()
}

func (p position[T, D]) equal(oth position[T, D]) bool {
	return p.pos == oth.pos && sameStore(p.data, oth.data)
}

// sameStore reports whether two slices share the same underlying array.
func sameStore[T any](a, b []T) bool {
	if cap(a) == 0 || cap(b) == 0 {
		return cap(a) == cap(b)
	}
	return &a[:1][0] == &b[:1][0]
}
