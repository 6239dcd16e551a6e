package datastruct

import "fmt"

// Value holds a single payload.
// The payload can't be changed after construction, only the whole Value can be replaced.
type Value[T any] struct {
	v T
}

func MakeValue[T any](v T) Value[T] {
	return Value[T]{v: v}
}

// Get returns the held payload.
func (v Value[T]) Get() T { return v.v }

func (v Value[T]) String() string { return fmt.Sprint(v.v) }
