package cursorkit_test

import (
	"fmt"

	"go.llib.dev/values/pkg/cursorkit"
	"go.llib.dev/values/pkg/datastruct"
)

func ExampleCopy() {
	src := datastruct.MakeValues("a", "b", "c")
	dst := datastruct.MakeValues("x", "y", "z")

	cursorkit.Copy[string](src.RBegin(), src.REnd(), dst.Begin())
	fmt.Println(dst.ToSlice())
	// Output: [c b a]
}

func ExampleInserter() {
	vs := datastruct.MakeValues("0", "1")
	src := datastruct.MakeValues("2", "3")

	cursorkit.Copy[string](src.CBegin(), src.CEnd(), cursorkit.Inserter(vs, vs.CBegin().Succ()))
	fmt.Println(vs.ToSlice())
	// Output: [0 2 3 1]
}

func ExampleFrontInserter() {
	vs := datastruct.MakeValues("0", "1")
	src := datastruct.MakeValues("2", "3")

	cursorkit.Copy[string](src.CBegin(), src.CEnd(), cursorkit.FrontInserter[string](vs))
	fmt.Println(vs.ToSlice())
	// Output: [3 2 0 1]
}
