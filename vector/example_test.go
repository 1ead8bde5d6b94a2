package vector_test

import (
	"fmt"

	"github.com/glpuga/ekucontainers/vector"
)

func ExampleVector_PushBack() {
	v := vector.New[int]()
	defer v.Close()

	v.PushBack(97)
	v.PushBack(98)
	v.PushBack(99)

	fmt.Println(v.Len(), v.Data())
	// Output: 3 [97 98 99]
}

func ExampleVector_Insert() {
	v := vector.Of(97, 98)
	defer v.Close()

	v.InsertN(1, 2, 42)
	fmt.Println(v.Data())
	// Output: [97 42 42 98]
}

func ExampleVector_Each() {
	v := vector.Of("a", "b", "c")
	defer v.Close()

	v.Each(func(pos int, value string) bool {
		fmt.Println(pos, value)
		return true
	})
	// Output:
	// 0 a
	// 1 b
	// 2 c
}

func ExampleLess() {
	a := vector.Of(2, 2)
	b := vector.Of(2, 2, 2)
	defer a.Close()
	defer b.Close()

	fmt.Println(vector.Less(a, b), vector.Less(b, a))
	// Output: true false
}
