package datastruct_test

import (
	"errors"
	"fmt"

	"go.llib.dev/values/pkg/datastruct"
)

func ExampleValues() {
	var vs datastruct.Values[datastruct.Value[string]]
	vs.Append(datastruct.MakeValue("String 1"))
	vs.Append(datastruct.MakeValue("String 2"))
	vs.Append(datastruct.MakeValue("String 3"))

	for it := vs.Begin(); !it.Equal(vs.End()); it.Next() {
		fmt.Println(it.Get())
	}
	for it := vs.CRBegin(); !it.Equal(vs.CREnd()); it.Next() {
		fmt.Println(it.Get())
	}
	// Output:
	// String 1
	// String 2
	// String 3
	// String 3
	// String 2
	// String 1
}

func ExampleValues_At() {
	vs := datastruct.MakeValues("foo", "bar")

	v, err := vs.At(1)
	fmt.Println(v, err)

	_, err = vs.At(2)
	fmt.Println(errors.Is(err, datastruct.ErrOutOfRange))
	// Output:
	// bar <nil>
	// true
}

func ExampleValues_Insert() {
	vs := datastruct.MakeValues("0", "1")

	it := vs.Insert(vs.CBegin().Succ(), "2")
	fmt.Println(it.Get(), vs.ToSlice())
	// Output:
	// 2 [0 2 1]
}
